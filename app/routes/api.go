// Package routes mounts the storefront's HTTP surface.
package routes

import (
	"github.com/electro05/storefront/app/controllers"
	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/metrics"
	"github.com/electro05/storefront/pkg/middleware"
	"github.com/electro05/storefront/pkg/router"
	"github.com/electro05/storefront/pkg/ws"
)

// Deps are the long-lived components the handlers share.
type Deps struct {
	Rotator *services.HeroRotator
	Gate    *services.PromoGate
	HeroHub *ws.Hub
}

// RegisterAPI mounts every route on r.
func RegisterAPI(r *router.Router, deps Deps) {
	home := controllers.NewHomeController(deps.Rotator)
	catalog := controllers.NewCatalogController()
	promos := controllers.NewPromotionsController(deps.Gate)
	orders := controllers.NewOrdersController()
	account := controllers.NewAccountController()
	contact := controllers.NewContactController()
	sess := controllers.NewSessionController()
	admin := controllers.NewAdminController()
	hero := controllers.NewHeroController(deps.Rotator, deps.HeroHub)

	r.Get("/healthz", "healthz", controllers.Health)
	r.HandleFunc("/metrics", metrics.Handler())
	r.Get("/ws/hero", "hero.feed", hero.Feed)

	api := r.Group("/api")

	api.Get("/home", "home.index", home.Index)

	api.Get("/products", "products.index", catalog.Products)
	api.Get("/products/{id}", "products.show", catalog.Show)
	api.Get("/categories", "categories.index", catalog.Categories)
	api.Get("/brands", "brands.index", catalog.Brands)

	api.Get("/promotions", "promotions.index", promos.Index)
	api.Post("/promotions/unlock", "promotions.unlock", promos.Unlock)

	api.Get("/hero", "hero.current", hero.Current)
	api.Post("/hero/select", "hero.select", hero.Select)

	api.Get("/orders/{ref}/tracking", "orders.tracking", orders.Tracking)

	api.Post("/contact", "contact.send", contact.Send)

	// Per-visitor session state.
	api.Get("/session", "session.show", sess.Show)
	api.Post("/session/login", "session.login", account.Login)
	api.Post("/session/logout", "session.logout", account.Logout)
	api.Post("/session/theme", "session.theme", sess.SetTheme)
	api.Post("/session/language", "session.language", sess.SetLanguage)

	api.Get("/cart", "cart.show", sess.Cart)
	api.Post("/cart", "cart.add", sess.AddToCart)
	api.Put("/cart/items/{id}", "cart.update", sess.UpdateCartItem)
	api.Delete("/cart/items/{id}", "cart.remove", sess.RemoveFromCart)
	api.Get("/wishlist", "wishlist.show", sess.Wishlist)
	api.Post("/wishlist/toggle", "wishlist.toggle", sess.ToggleWishlist)

	// Routes that need a valid API-issued bearer token.
	authed := api.Group("", middleware.Auth)
	authed.Get("/my-orders", "orders.mine", orders.MyOrders)
	authed.Put("/user", "user.update", account.UpdateProfile)
	authed.Post("/user/change-password", "user.password", account.ChangePassword)

	adminGroup := api.Group("/admin", middleware.Auth, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Post("/categories", "admin.categories.create", admin.CreateCategory)
	adminGroup.Post("/categories/{id}", "admin.categories.update", admin.UpdateCategory)
	adminGroup.Delete("/categories/{id}", "admin.categories.delete", admin.DeleteCategory)
}
