package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/auroraair/formkit/internal/web"
	"github.com/auroraair/formkit/pkg/config"
	"github.com/auroraair/formkit/pkg/environment"
	"github.com/auroraair/formkit/pkg/httpserver"
	"github.com/auroraair/formkit/pkg/i18n"
	"github.com/auroraair/formkit/pkg/logger"
	"github.com/auroraair/formkit/pkg/requestid"
)

func serveCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portal over HTTP",
		Long: `Serve the registration, login, prediction and upload pages.

Configuration is read from the environment and optional .env files.
The server stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}
			var cfg web.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv, err := web.New(cfg, web.WithLogger(log), web.WithRegistry(reg))
			if err != nil {
				return err
			}
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(addr string) {
					log.Info("portal listening", slog.String("addr", addr))
				}),
				httpserver.WithStopHook(func() {
					log.Info("portal stopped")
				}),
			)
			return server.Run(ctx, srv.Routes())
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	return cmd
}

func newLogger(cfg web.Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		f := logger.Format(cfg.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}
