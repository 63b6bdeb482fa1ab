package server

import (
	"fmt"
	"net/http"
	"player-auction/internal/metrics"
	"player-auction/utils"
	"time"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// RequestIDMiddleware keeps a well-formed client X-Request-ID or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := utils.RequestID(c.GetHeader(utils.RequestIDHeader))
	c.Set(requestIDKey, id)
	c.Header(utils.RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Warn("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// MetricsMiddleware records request counts and latency by route template
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// RecoveryMiddleware turns a handler panic into a 500 envelope
func RecoveryMiddleware(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("panic recovered", map[string]any{
				"path":       c.Request.URL.Path,
				"panic":      fmt.Sprint(r),
				"request_id": c.GetString(requestIDKey),
			})
			utils.JSONAbort(c, http.StatusInternalServerError, fmt.Errorf("internal error"), "internal server error")
		}
	}()
	c.Next()
}
