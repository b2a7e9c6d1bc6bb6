package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	session_cache "github.com/TechNest-Affiliates/technest-storefront-backend/cache"
	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/controllers/storefront/product_controller"
	"github.com/TechNest-Affiliates/technest-storefront-backend/controllers/storefront/view_controller"
	"github.com/TechNest-Affiliates/technest-storefront-backend/view"
)

// SetupStorefrontRoutes wires the public JSON query surface.
func SetupStorefrontRoutes(router *gin.RouterGroup, store *catalog.Store) {
	ctl := product_controller.New(store)

	// Storefront routes (public, no auth required)
	storeGroup := router.Group("/store")

	// Product routes
	products := storeGroup.Group("/products")
	{
		products.GET("", ctl.GetProducts) // List with filters

		products.GET("/featured", ctl.GetFeaturedProducts)
		products.GET("/search", ctl.SearchProducts)
		products.GET("/stats", ctl.GetProductStats)
		products.GET("/:id", ctl.GetProductByID) // Single product
	}

	// Category routes
	storeGroup.GET("/categories", ctl.GetCategories)
}

// SetupViewRoutes wires the session-scoped HTML fragment surface.
func SetupViewRoutes(router *gin.RouterGroup, store *catalog.Store, sessions *session_cache.Cache, debounce time.Duration) {
	ctl := view_controller.New(view.StoreCatalog{Store: store}, sessions, debounce)

	viewGroup := router.Group("/store/view")
	{
		viewGroup.POST("/session", ctl.CreateSession)
		viewGroup.GET("/products", ctl.GetView)

		viewGroup.PUT("/filters/category", ctl.SetCategoryFilter)
		viewGroup.PUT("/filters/search", ctl.SetSearchText)
		viewGroup.PUT("/filters/rating", ctl.SetMinRating)
		viewGroup.POST("/retry", ctl.RetryView)

		viewGroup.POST("/modal/:id", ctl.OpenModal)
		viewGroup.DELETE("/modal", ctl.CloseModal)
	}
}
