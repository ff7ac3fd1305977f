package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/als344572-ai/Rahal-store/internal/handlers"
	"github.com/als344572-ai/Rahal-store/internal/models"
)

// Dependencies are the handlers and settings the router needs.
type Dependencies struct {
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Admin    *handlers.AdminHandler
	Media    *handlers.MediaHandler
	Locale   *handlers.LocaleHandler

	DefaultLocale models.Locale
	CartTTL       time.Duration
	HasBackend    bool
}

func RegisterRoutes(router *gin.Engine, d Dependencies) {
	router.GET("/healthz", handlers.Health(d.HasBackend))

	v1 := router.Group("/v1", handlers.Locale(d.DefaultLocale), handlers.CurrentUser())
	{
		v1.GET("/products", d.Products.ListProducts)
		v1.GET("/products/:id", d.Products.GetProduct)
		v1.GET("/categories", d.Products.ListCategories)
		v1.GET("/media/:id", d.Media.ServeMedia)

		v1.GET("/translations", d.Locale.Translations)
		v1.GET("/locale", d.Locale.GetLocale)
		v1.PUT("/locale", d.Locale.SetLocale)
		v1.POST("/locale/toggle", d.Locale.ToggleLocale)
	}

	cart := v1.Group("/cart", handlers.CartSession(d.CartTTL))
	{
		cart.GET("", d.Cart.GetCart)
		cart.POST("/items", d.Cart.AddItem)
		cart.DELETE("/items/:id", d.Cart.RemoveItem)
		cart.POST("/checkout", d.Cart.Checkout)
	}

	admin := v1.Group("/admin", handlers.RequireAdmin())
	{
		admin.POST("/products", d.Admin.CreateProduct)
		admin.PATCH("/products/:id", d.Admin.UpdateProduct)
		admin.DELETE("/products/:id", d.Admin.DeleteProduct)
		admin.POST("/media", d.Admin.UploadMedia)
		admin.GET("/bookings", d.Admin.ListBookings)
		admin.GET("/families", d.Admin.ListFamilies)
		admin.GET("/stats", d.Admin.Stats)
	}
}
