package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Bamimore2000/borokini/app/cart"
	"github.com/Bamimore2000/borokini/app/controllers"
	"github.com/Bamimore2000/borokini/app/models"
	"github.com/Bamimore2000/borokini/pkg/database"
	"github.com/Bamimore2000/borokini/pkg/router"
	"github.com/Bamimore2000/borokini/pkg/session"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

// client keeps cookies between requests so the session scope carries over.
type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	if got := rec.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	return rec
}

func cartEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func newCartClient(t *testing.T) (*client, *gorm.DB) {
	db := setupDB(t)

	store := cart.NewMemoryStore()
	cartController := controllers.NewCartController(store)

	r := router.New()
	api := r.Group("/api", session.Middleware(session.DefaultOptions()))
	api.Get("/cart", "cart.show", cartController.Show)
	api.Delete("/cart", "cart.clear", cartController.Clear)
	api.Post("/cart/items", "cart.items.add", cartController.AddItem)
	api.Patch("/cart/items", "cart.items.update", cartController.UpdateItem)
	api.Delete("/cart/items", "cart.items.remove", cartController.RemoveItem)
	api.Post("/cart/items/increase", "cart.items.increase", cartController.IncreaseItem)
	api.Post("/cart/items/decrease", "cart.items.decrease", cartController.DecreaseItem)

	return &client{t: t, handler: r.Handler()}, db
}

func seedRing(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{
		Slug:        "classic-band-ring",
		Name:        "Classic Band Ring",
		Description: "gold band",
		Price:       decimal.RequireFromString("320000.00"),
		Images:      []string{"https://cdn.borokini.test/r1.jpg"},
		Category:    "rings",
		Material:    "Gold",
		Stock:       15,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCartFlowOverHTTP(t *testing.T) {
	c, db := newCartClient(t)
	ring := seedRing(t, db)

	// Empty cart on first contact.
	rec := c.do(http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, cartEnvelope(t, rec)["count"])

	// Add twice, same size: one line, quantity 3.
	c.do(http.MethodPost, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":1,"selectedSize":"7"}`)
	rec = c.do(http.MethodPost, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":2,"selectedSize":"7"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := cartEnvelope(t, rec)
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.EqualValues(t, 3, data["count"])

	line := items[0].(map[string]interface{})
	assert.Equal(t, "Classic Band Ring", line["name"])
	assert.EqualValues(t, 3, line["quantity"])

	// The cart survives across requests through the session cookie.
	rec = c.do(http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 3, cartEnvelope(t, rec)["count"])

	// Decrease to 2, then remove the line.
	rec = c.do(http.MethodPost, "/api/cart/items/decrease",
		`{"productId":"`+ring.ID+`","selectedSize":"7"}`)
	assert.EqualValues(t, 2, cartEnvelope(t, rec)["count"])

	rec = c.do(http.MethodDelete, "/api/cart/items",
		`{"productId":"`+ring.ID+`","selectedSize":"7"}`)
	assert.EqualValues(t, 0, cartEnvelope(t, rec)["count"])
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	c, db := newCartClient(t)
	ring := seedRing(t, db)

	c.do(http.MethodPost, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":2,"selectedSize":"7"}`)

	// Zero is an absolute set, not a missing field: the line goes away.
	rec := c.do(http.MethodPatch, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":0,"selectedSize":"7"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := cartEnvelope(t, rec)
	assert.EqualValues(t, 0, data["count"])
	assert.Empty(t, data["items"])

	// Negative quantities are still rejected at the boundary.
	rec = c.do(http.MethodPatch, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":-1,"selectedSize":"7"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCartAddUnknownProduct(t *testing.T) {
	c, _ := newCartClient(t)

	rec := c.do(http.MethodPost, "/api/cart/items",
		`{"productId":"e2b2ee01-0000-0000-0000-000000000000","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartsAreSessionScoped(t *testing.T) {
	c1, db := newCartClient(t)
	ring := seedRing(t, db)

	c1.do(http.MethodPost, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":2}`)

	// A second client has no cookie, so it gets its own scope against the
	// same store and database.
	c2 := &client{t: t, handler: c1.handler}
	rec := c2.do(http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 0, cartEnvelope(t, rec)["count"])
}

func TestCheckoutClearsSessionCart(t *testing.T) {
	db := setupDB(t)
	ring := seedRing(t, db)

	store := cart.NewMemoryStore()
	cartController := controllers.NewCartController(store)
	orderController := controllers.NewOrderController(store)

	r := router.New()
	api := r.Group("/api", session.Middleware(session.DefaultOptions()))
	api.Get("/cart", "cart.show", cartController.Show)
	api.Post("/cart/items", "cart.items.add", cartController.AddItem)
	api.Post("/checkout", "checkout", orderController.Checkout)

	c := &client{t: t, handler: r.Handler()}
	c.do(http.MethodPost, "/api/cart/items",
		`{"productId":"`+ring.ID+`","quantity":2}`)

	rec := c.do(http.MethodPost, "/api/checkout",
		`{"items":[{"productId":"`+ring.ID+`","quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	rec = c.do(http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 0, cartEnvelope(t, rec)["count"])
}

func TestCheckoutRejectsInvalidItems(t *testing.T) {
	db := setupDB(t)
	ring := seedRing(t, db)

	store := cart.NewMemoryStore()
	orderController := controllers.NewOrderController(store)

	r := router.New()
	api := r.Group("/api", session.Middleware(session.DefaultOptions()))
	api.Post("/checkout", "checkout", orderController.Checkout)

	c := &client{t: t, handler: r.Handler()}

	// A negative quantity fails item validation instead of being clamped.
	rec := c.do(http.MethodPost, "/api/checkout",
		`{"items":[{"productId":"`+ring.ID+`","quantity":-5}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "items.0.quantity")

	// So does a product id that is not a UUID.
	rec = c.do(http.MethodPost, "/api/checkout",
		`{"items":[{"productId":"not-a-uuid","quantity":1}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}
