package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Bamimore2000/borokini/pkg/router"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/products", "products.index", ok("index"))
	r.Get("/products/{slug}", "products.show", ok("show"))

	path, found := r.Path("products.show")
	if !found {
		t.Fatal("expected products.show to be registered")
	}
	if path != "/products/{slug}" {
		t.Errorf("unexpected path %q", path)
	}

	url, err := r.URL("products.show", map[string]string{"slug": "n1"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/products/n1" {
		t.Errorf("unexpected url %q", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected missing-parameter error")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected unknown-route error")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("api"))
	admin := api.Group("/admin", tag("admin"))
	admin.Get("/dashboard", "admin.dashboard", ok("dash"), tag("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if len(order) != 3 || order[0] != "api" || order[1] != "admin" || order[2] != "route" {
		t.Errorf("middleware order %v", order)
	}

	path, _ := r.Path("admin.dashboard")
	if path != "/api/admin/dashboard" {
		t.Errorf("unexpected path %q", path)
	}
}

func TestURLParamsReachHandler(t *testing.T) {
	r := router.New()
	r.Get("/orders/{id}", "orders.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(chi.URLParam(req, "id")))
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc-123", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Body.String() != "abc-123" {
		t.Errorf("param not routed, got %q", rec.Body.String())
	}
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Post("/cart/items", "cart.items.add", ok("add"))

	req := httptest.NewRequest(http.MethodGet, "/cart/items", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
