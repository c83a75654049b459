package http

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livekit-token-server/internal/config"
	"github.com/vovakirdan/livekit-token-server/internal/token"
)

// NewServer builds an HTTP server with the token and health routes.
func NewServer(issuer *token.Issuer, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(issuer, cfg, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewRouter builds the gin engine serving the API.
func NewRouter(issuer *token.Issuer, cfg *config.Config, logger *zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	if mw := corsMiddleware(cfg.CORSAllowedOrigins); mw != nil {
		router.Use(mw)
	}

	router.GET("/health", healthHandler)

	tokenHandlers := NewTokenHandlers(issuer, logger)
	api := router.Group("/api")
	api.Use(BodyLimitMiddleware(cfg.MaxBodyBytes))
	api.POST("/token", tokenHandlers.IssueToken)

	return router
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

// corsMiddleware returns nil when no origins are allowed.
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}

	corsCfg := cors.Config{
		AllowMethods:  []string{stdhttp.MethodPost, stdhttp.MethodOptions},
		AllowHeaders:  []string{"Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}
