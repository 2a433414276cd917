// Package routes wires controllers onto the named router.
package routes

import (
	"time"

	"github.com/Bamimore2000/borokini/app/cart"
	"github.com/Bamimore2000/borokini/app/controllers"
	"github.com/Bamimore2000/borokini/pkg/metrics"
	"github.com/Bamimore2000/borokini/pkg/middleware"
	"github.com/Bamimore2000/borokini/pkg/reqid"
	"github.com/Bamimore2000/borokini/pkg/router"
	"github.com/Bamimore2000/borokini/pkg/session"
)

// RegisterAPI attaches the whole HTTP surface to r.
func RegisterAPI(r *router.Router) {
	store := cart.NewRedisStore()

	catalogController := controllers.NewCatalogController()
	cartController := controllers.NewCartController(store)
	orderController := controllers.NewOrderController(store)
	newsletterController := controllers.NewNewsletterController()
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()
	collectionController := controllers.NewCollectionController()
	editorialController := controllers.NewEditorialController()
	dashboardController := controllers.NewDashboardController()
	uploadController := controllers.NewUploadController()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api", session.Middleware(session.DefaultOptions()))

	// Public catalog.
	api.Get("/products", "products.index", catalogController.Products)
	api.Get("/products/{slug}", "products.show", catalogController.Product)
	api.Get("/collections", "collections.index", catalogController.Collections)
	api.Get("/editorials", "editorials.index", catalogController.Editorials)
	api.Get("/editorials/{slug}", "editorials.show", catalogController.Editorial)

	// Session cart.
	api.Get("/cart", "cart.show", cartController.Show)
	api.Delete("/cart", "cart.clear", cartController.Clear)
	api.Post("/cart/items", "cart.items.add", cartController.AddItem)
	api.Patch("/cart/items", "cart.items.update", cartController.UpdateItem)
	api.Delete("/cart/items", "cart.items.remove", cartController.RemoveItem)
	api.Post("/cart/items/increase", "cart.items.increase", cartController.IncreaseItem)
	api.Post("/cart/items/decrease", "cart.items.decrease", cartController.DecreaseItem)
	api.Post("/cart/open", "cart.open", cartController.Open)
	api.Post("/cart/close", "cart.close", cartController.Close)

	// Checkout and newsletter are rate limited per IP.
	api.Post("/checkout", "checkout", orderController.Checkout,
		middleware.RateLimit(10, time.Minute))
	api.Post("/newsletter", "newsletter.subscribe", newsletterController.Subscribe,
		middleware.RateLimit(5, time.Minute))

	api.Post("/auth/login", "auth.login", authController.Login,
		middleware.RateLimit(10, time.Minute))

	// Admin surface behind JWT plus the configurable role gate.
	admin := api.Group("/admin", middleware.AuthMiddleware, middleware.AdminGate)

	admin.Get("/dashboard", "admin.dashboard", dashboardController.Show)

	admin.Post("/products", "admin.products.store", productController.Store)
	admin.Put("/products/{id}", "admin.products.update", productController.Update)
	admin.Delete("/products/{id}", "admin.products.destroy", productController.Destroy)
	admin.Post("/products/bulk-delete", "admin.products.bulk", productController.BulkDestroy)

	admin.Post("/collections", "admin.collections.store", collectionController.Store)
	admin.Put("/collections/{id}", "admin.collections.update", collectionController.Update)
	admin.Delete("/collections/{id}", "admin.collections.destroy", collectionController.Destroy)

	admin.Get("/editorials", "admin.editorials.index", editorialController.Index)
	admin.Post("/editorials", "admin.editorials.store", editorialController.Store)
	admin.Put("/editorials/{id}", "admin.editorials.update", editorialController.Update)
	admin.Delete("/editorials/{id}", "admin.editorials.destroy", editorialController.Destroy)

	admin.Get("/newsletter", "admin.newsletter.index", newsletterController.Index)

	admin.Get("/orders", "admin.orders.index", orderController.Index)
	admin.Get("/orders/{id}", "admin.orders.show", orderController.Show)
	admin.Patch("/orders/{id}/status", "admin.orders.status", orderController.UpdateStatus)
	admin.Patch("/orders/{id}/tracking", "admin.orders.tracking", orderController.UpdateTracking)

	admin.Post("/uploads", "admin.uploads.store", uploadController.Store)
}
