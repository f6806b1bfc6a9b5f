package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coastkeeper/hotspots-backend-go/internal/config"
	"github.com/coastkeeper/hotspots-backend-go/internal/handler"
	"github.com/coastkeeper/hotspots-backend-go/internal/middleware"
)

// Handlers groups the handler set wired into the router.
type Handlers struct {
	Hotspot   *handler.HotspotHandler
	Threshold *handler.ThresholdHandler
	Catalog   *handler.CatalogHandler
	Station   *handler.StationHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hotspots Backend API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	if cfg.AuthRequired {
		api.Use(middleware.RequireAuth(cfg.JWTSecret))
	}
	{
		api.GET("/catalog", h.Catalog.GetCatalog)
		api.GET("/hotspots", h.Hotspot.GetHotspots)

		parameters := api.Group("/parameters")
		{
			parameters.GET("", h.Catalog.GetParameters)
			parameters.GET("/:code/threshold", h.Threshold.GetThreshold)
			parameters.GET("/:code/waterbodies", h.Catalog.GetWaterbodies)
		}

		stations := api.Group("/stations")
		{
			stations.GET("", h.Station.GetStations)
			stations.GET("/nearest", h.Station.GetNearest)
		}
	}

	return r
}
