// @title TechNest Storefront API
// @version 1.0
// @description TechNest affiliate storefront backend API documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	session_cache "github.com/TechNest-Affiliates/technest-storefront-backend/cache"
	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/config"
	_ "github.com/TechNest-Affiliates/technest-storefront-backend/docs"
	"github.com/TechNest-Affiliates/technest-storefront-backend/middleware"
	"github.com/TechNest-Affiliates/technest-storefront-backend/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Failed to load configuration: %v", err)
	}

	if cfg.EnvironmentLabel == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Redis connection (rate limiter; optional)
	if err := config.ConnectRedis(cfg.RedisURL); err != nil {
		logrus.Fatalf("❌ Failed to connect to Redis: %v", err)
	}

	// Catalog store: HTTP origin wins when configured, local file otherwise.
	var source catalog.Source
	if cfg.CatalogURL != "" {
		source = catalog.NewHTTPSource(cfg.CatalogURL, cfg.CatalogTimeout)
		logrus.Info("📦 Catalog source: ", cfg.CatalogURL)
	} else {
		source = catalog.NewFileSource(cfg.CatalogPath)
		logrus.Info("📦 Catalog source: ", cfg.CatalogPath)
	}
	store := catalog.NewStore(source)

	// Eager load so a broken source is visible at boot. The store degrades
	// to an empty catalog either way; queries never fail over this.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	if err := store.Load(ctx); err != nil {
		logrus.WithError(err).Warn("⚠️ Serving with empty catalog")
	}
	cancel()

	sessions := session_cache.New(cfg.SessionTTL)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))

	storefront_routes.SetupStorefrontRoutes(api, store)
	storefront_routes.SetupViewRoutes(api, store, sessions, cfg.SearchDebounce)
	logrus.Info("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logrus.Info("🚀 Server is running on http://localhost:", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("❌ Server exited: %v", err)
	}
}
