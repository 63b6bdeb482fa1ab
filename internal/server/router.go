package server

import (
	"net/http"
	"player-auction/internal/feed"
	"player-auction/internal/metrics"
	handler "player-auction/services/auction/handler"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Auth    *handler.AuthHandler
	Players *handler.PlayerHandler
	Bids    *handler.BidHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers, hub *feed.Hub, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(RecoveryMiddleware)      // recover from panics with the JSON envelope
	router.Use(RequestIDMiddleware)     // propagate or assign X-Request-ID
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware(m))    // request counters and latency

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			utils.JSONResponse(c, http.StatusOK, gin.H{"clients": hub.ClientCount()}, "ok")
		})

		api.POST("/admin/auth", h.Auth.AdminAuthHandler)
		api.POST("/buyer/auth", h.Auth.BuyerAuthHandler)

		players := api.Group("/players")
		{
			players.GET("", h.Players.ListPlayersHandler)
			players.POST("", h.Players.CreatePlayerHandler)
			players.GET("/:id", h.Players.GetPlayerHandler)
			players.GET("/:id/bids", h.Players.GetPlayerBidsHandler)
		}

		api.POST("/bids", h.Bids.BidActionHandler)
		api.GET("/ws/players", hub.ServeWS)
	}

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	router.NoRoute(func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusNotFound, nil, "route not found")
	})

	return router
}
