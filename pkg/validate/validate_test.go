package validate_test

import (
	"testing"

	"github.com/Bamimore2000/borokini/pkg/validate"
)

type productInput struct {
	Name           string  `json:"name"           validate:"required,max=255"`
	Slug           string  `json:"slug"           validate:"required,slug,max=255"`
	Price          string  `json:"price"          validate:"required,decimal"`
	CompareAtPrice *string `json:"compareAtPrice" validate:"nullable,decimal"`
	Category       string  `json:"category"       validate:"required,in=necklaces,rings,earrings"`
	Stock          int     `json:"stock"          validate:"gte=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Golden Infinity Necklace",
		Slug:     "golden-infinity-necklace",
		Price:    "450000.00",
		Category: "necklaces",
		Stock:    10,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
}

func TestSlugRule(t *testing.T) {
	type in struct {
		Slug string `json:"slug" validate:"required,slug"`
	}
	for _, bad := range []string{"Has Caps", "under_score", "-leading", "trailing-", "a--b"} {
		if errs := validate.Struct(in{Slug: bad}); !validate.HasErrors(errs) {
			t.Errorf("expected slug %q to fail", bad)
		}
	}
	for _, good := range []string{"n1", "golden-infinity-necklace", "the-art-of-layering-gold"} {
		if errs := validate.Struct(in{Slug: good}); validate.HasErrors(errs) {
			t.Errorf("expected slug %q to pass, got: %v", good, errs)
		}
	}
}

func TestDecimalRule(t *testing.T) {
	type in struct {
		Price string `json:"price" validate:"required,decimal"`
	}
	for _, bad := range []string{"abc", "12.", ".50", "1,000.00", "-5.00", "1.00000"} {
		if errs := validate.Struct(in{Price: bad}); !validate.HasErrors(errs) {
			t.Errorf("expected price %q to fail", bad)
		}
	}
	for _, good := range []string{"450000.00", "1200000.00", "0.5", "12"} {
		if errs := validate.Struct(in{Price: good}); validate.HasErrors(errs) {
			t.Errorf("expected price %q to pass, got: %v", good, errs)
		}
	}
}

func TestNullablePointerSkipsWhenNil(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Classic Band Ring",
		Slug:     "r1",
		Price:    "320000.00",
		Category: "rings",
	})
	if validate.HasErrors(errs) {
		t.Errorf("nil nullable pointer must be skipped, got: %v", errs)
	}
}

func TestNullablePointerValidatesWhenset(t *testing.T) {
	bad := "not-a-price"
	errs := validate.Struct(productInput{
		Name:           "Classic Band Ring",
		Slug:           "r1",
		Price:          "320000.00",
		CompareAtPrice: &bad,
		Category:       "rings",
	})
	if _, ok := errs["compareAtPrice"]; !ok {
		t.Errorf("expected compareAtPrice error, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=draft,published"`
	}
	if errs := validate.Struct(in{Status: "archived"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	if errs := validate.Struct(in{Status: "published"}); validate.HasErrors(errs) {
		t.Errorf("expected published to pass, got: %v", errs)
	}
}

func TestInRuleFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,paid,shipped,delivered,max=20"`
	}
	if errs := validate.Struct(in{Status: "shipped"}); validate.HasErrors(errs) {
		t.Errorf("in= must keep its full parameter list, got: %v", errs)
	}
	if errs := validate.Struct(in{Status: "refunded"}); !validate.HasErrors(errs) {
		t.Error("expected value outside in= list to fail")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "client@borokini.test"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestSliceOfStructsValidatesEachElement(t *testing.T) {
	type line struct {
		ProductID string `json:"productId" validate:"required,uuid"`
		Quantity  int    `json:"quantity"  validate:"required,gte=1"`
	}
	type checkout struct {
		Items []line `json:"items"`
	}

	errs := validate.Struct(checkout{Items: []line{
		{ProductID: "0a53d64d-7a25-4dee-a0cb-0df26902a848", Quantity: 2},
		{ProductID: "not-a-uuid", Quantity: -5},
	}})
	if _, ok := errs["items.1.productId"]; !ok {
		t.Errorf("expected items.1.productId error, got: %v", errs)
	}
	if _, ok := errs["items.0.quantity"]; ok {
		t.Errorf("valid element must not produce errors, got: %v", errs)
	}

	errs = validate.Struct(checkout{Items: []line{
		{ProductID: "0a53d64d-7a25-4dee-a0cb-0df26902a848", Quantity: 1},
	}})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid items to pass, got: %v", errs)
	}
}

func TestIntZeroAllowedWithoutRequired(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"gte=0"`
	}
	if errs := validate.Struct(in{Quantity: 0}); validate.HasErrors(errs) {
		t.Errorf("zero must satisfy gte=0 without a required rule, got: %v", errs)
	}
	if errs := validate.Struct(in{Quantity: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative quantity to fail")
	}
}

func TestRequiredSlice(t *testing.T) {
	type in struct {
		Images []string `json:"images" validate:"required"`
	}
	if errs := validate.Struct(in{}); !validate.HasErrors(errs) {
		t.Error("expected empty slice to fail required")
	}
	if errs := validate.Struct(in{Images: []string{"https://cdn.borokini.test/n1.jpg"}}); validate.HasErrors(errs) {
		t.Errorf("expected non-empty slice to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Stock int `json:"stock" validate:"gte=0,lte=10000"`
	}
	if errs := validate.Struct(in{Stock: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative stock to fail")
	}
	if errs := validate.Struct(in{Stock: 25}); validate.HasErrors(errs) {
		t.Errorf("expected stock 25 to pass, got: %v", errs)
	}
}
