// Package web parses web service flags and launches the team pages server.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/teamdocs/internal/platform/cmd"
	"github.com/louisbranch/teamdocs/internal/platform/logging"
	"github.com/louisbranch/teamdocs/internal/services/team/storage/sqlite"
	"github.com/louisbranch/teamdocs/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"TEAMDOCS_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"TEAMDOCS_WEB_DB_PATH" envDefault:"data/team.db"`
	AssetBaseURL string `env:"TEAMDOCS_ASSET_BASE_URL"`
	LogLevel     string `env:"TEAMDOCS_LOG_LEVEL" envDefault:"info"`

	// LogOutput overrides stdout for process logs.
	LogOutput io.Writer
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Team members SQLite database path")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Image CDN base URL for member photos")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.Named(logging.New(cfg.LogLevel, cfg.LogOutput), entrypoint.ServiceWeb)
	defer func() { _ = logger.Sync() }()

	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return fmt.Errorf("db path is required")
	}
	store, err := sqlite.Open(dbPath, sqlite.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("open team store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close team store", zap.Error(err))
		}
	}()

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:     cfg.HTTPAddr,
		AssetBaseURL: cfg.AssetBaseURL,
		Store:        store,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
