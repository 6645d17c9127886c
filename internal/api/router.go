// Package api wires HTTP routes and middleware for the beacon site.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oszuidwest/zwfm-beacon/internal/api/handlers"
	"github.com/oszuidwest/zwfm-beacon/internal/config"
	"github.com/oszuidwest/zwfm-beacon/internal/utils"
	"github.com/oszuidwest/zwfm-beacon/pkg/logger"
)

// SetupRouter configures and returns the router with all routes and middleware.
func SetupRouter(transmissions handlers.TransmissionLog, cfg *config.Config) (*gin.Engine, error) {
	h, err := handlers.NewHandlers(transmissions, cfg)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Environment.GinMode())

	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler))
	r.Use(requestIDMiddleware())
	r.Use(requestLogMiddleware())

	// Pages
	r.GET("/", h.Index)
	r.GET("/software", h.Software)
	r.GET("/about", h.AboutRedirect)
	r.Static("/static", cfg.Site.StaticPath)

	// SEO
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)

	// Operations
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/transmissions", h.ListTransmissions)
	}

	r.NoRoute(h.NotFound)

	return r, nil
}

// recoveryHandler turns a handler panic into a 500 problem response.
func recoveryHandler(c *gin.Context, recovered any) {
	logger.Error("Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	utils.ProblemInternalServer(c, "Unexpected server error")
}

// requestIDMiddleware tags every request with a trace ID, honouring an incoming X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(utils.TraceIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogMiddleware logs one line per request at debug level, and errors at error level.
func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		if status >= 500 {
			logger.Error("%s %s -> %d (%s) trace=%s", c.Request.Method, c.Request.URL.Path, status, elapsed, c.GetString(utils.TraceIDKey))
			return
		}
		logger.Debug("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
