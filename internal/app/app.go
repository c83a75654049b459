package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/livekit-token-server/internal/config"
	"github.com/vovakirdan/livekit-token-server/internal/token"
	"github.com/vovakirdan/livekit-token-server/internal/token/livekit"
	transporthttp "github.com/vovakirdan/livekit-token-server/internal/transport/http"
)

// App wires together the token issuer and the HTTP transport.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// NewIssuer builds the token issuer from configuration.
func NewIssuer(cfg *config.Config) *token.Issuer {
	creds := token.Credentials{
		APIKey:    cfg.LiveKit.APIKey,
		APISecret: cfg.LiveKit.APISecret,
	}
	return token.NewIssuer(creds, livekit.New(cfg.LiveKit.TokenTTL))
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	if logger.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	issuer := NewIssuer(cfg)
	if !issuer.Configured() {
		logger.Warn().
			Str("env_key", config.EnvLiveKitAPIKey).
			Str("env_secret", config.EnvLiveKitAPISecret).
			Msg("livekit credentials not configured, token requests will fail")
	} else {
		logger.Info().Dur("token_ttl", cfg.LiveKit.TokenTTL).Msg("livekit token issuer ready")
	}

	return &App{
		server:          transporthttp.NewServer(issuer, cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() stdhttp.Handler {
	return a.server.Handler
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		a.log.Info().Str("addr", a.server.Addr).Msg("http server listening")
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return <-serverErr
	}
}
