// Package server wires the gin engine: middleware, CORS and routes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/docsmith-ai/docsmith/internal/api"
	"github.com/docsmith-ai/docsmith/internal/config"
	"github.com/docsmith-ai/docsmith/internal/logger"
)

// NewRouter builds the configured gin engine.
func NewRouter(cfg config.Config, log *logger.Logger, h *api.Handler) *gin.Engine {
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), Logging(log), Recovery(log))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", h.Root)
	r.HEAD("/", h.Root)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/themes", h.Themes)
		apiGroup.POST("/generate-section", h.GenerateSection)
		apiGroup.POST("/refine-section", h.RefineSection)
		apiGroup.POST("/export-document", h.ExportDocument)
		apiGroup.POST("/generate-template", h.GenerateTemplate)
	}

	return r
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range cfg.CORSAllowOrigin {
		if origin == "*" {
			// Wildcard and credentials are mutually exclusive.
			corsCfg.AllowAllOrigins = true
			corsCfg.AllowOrigins = nil
			corsCfg.AllowCredentials = false
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.CORSAllowOrigin
	return corsCfg
}

// NewHTTPServer wraps the router in an http.Server with sane timeouts.
// Write timeout is generous because exports stream generated files.
func NewHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      5 * time.Minute,
	}
}
