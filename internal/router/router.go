// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/subscription-index/internal/config"
	"github.com/javajoker/subscription-index/internal/handlers"
	"github.com/javajoker/subscription-index/internal/middleware"
	"github.com/javajoker/subscription-index/internal/services"
	"github.com/javajoker/subscription-index/internal/utils"
)

// Router is the HTTP engine plus the resources it owns.
type Router struct {
	Engine      *gin.Engine
	rateLimiter *middleware.RateLimiter
}

func Initialize(cfg *config.Config, catalogService *services.CatalogService) *Router {
	// Initialize services
	productService := services.NewProductService(catalogService, cfg.Pricing.DefaultHomeCountry)
	vpnService := services.NewVpnService(catalogService, productService, cfg.Pricing.DefaultVpnCost)
	sessionService := services.NewSessionService(productService, vpnService, cfg.Pricing.DefaultVpnCost)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, catalogService)
	vpnHandler := handlers.NewVpnHandler(vpnService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	docsHandler := handlers.NewDocsHandler(cfg.Docs.SpecDir, cfg.Docs.Title)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		snap, err := catalogService.Snapshot()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "starting",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"catalog_version": snap.Version,
			"catalog_source":  snap.Source,
		})
	})

	if cfg.Docs.Enabled {
		r.GET("/docs", docsHandler.Reference)
	}

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(rateLimiter.Middleware())
	{
		v1.GET("/catalog", catalogInfoHandler(catalogService))

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		v1.GET("/countries", productHandler.GetCountries)
		v1.GET("/home-countries", productHandler.GetHomeCountries)
		v1.GET("/tags", productHandler.GetTags)

		// VPN routes
		vpn := v1.Group("/vpn")
		{
			vpn.GET("/providers", vpnHandler.GetProviders)
			vpn.POST("/calculate", vpnHandler.Calculate)
		}

		v1.POST("/session/view", sessionHandler.View)
	}

	return &Router{
		Engine:      r,
		rateLimiter: rateLimiter,
	}
}

// Close releases the background resources of the router.
func (r *Router) Close() {
	r.rateLimiter.Close()
}

func catalogInfoHandler(catalogService *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := catalogService.Snapshot()
		if err != nil {
			utils.ServiceUnavailableResponse(c)
			return
		}

		utils.SuccessResponse(c, gin.H{
			"version":        snap.Version,
			"source":         snap.Source,
			"loaded_at":      snap.LoadedAt,
			"products":       len(snap.Products),
			"vpn_providers":  len(snap.VpnProviders),
			"home_countries": snap.HomeCountries,
		})
	}
}
