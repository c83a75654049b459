package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/livekit-token-server/internal/app"
	"github.com/vovakirdan/livekit-token-server/internal/config"
	"github.com/vovakirdan/livekit-token-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	overrides  config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tokensrv",
		Short:         "Issue LiveKit access tokens over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file (default ./config.yaml)")
	flags.StringVar(&opts.overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.DurationVar(&opts.overrides.LiveKit.TokenTTL, "token-ttl", 0, "validity of issued tokens")

	serverFlags := cmd.Flags()
	serverFlags.StringVar(&opts.overrides.Addr, "addr", "", "HTTP listen address")
	serverFlags.DurationVar(&opts.overrides.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	serverFlags.DurationVar(&opts.overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	cmd.AddCommand(newMintCmd(opts))
	return cmd
}

// loadConfig resolves configuration and builds the logger it names.
func loadConfig(opts *rootOptions) (config.Config, error) {
	bootLogger := log.New(opts.overrides.LogLevel)

	cfg, path, err := config.Load(bootLogger, opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg.UpdateFrom(opts.overrides)
	bootLogger.Debug().Str("path", path).Msg("config loaded")
	return cfg, nil
}

func runServer(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := log.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("starting token server")
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
