// Package rosterimport loads a team roster file into the member store.
package rosterimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/teamdocs/internal/platform/cmd"
	"github.com/louisbranch/teamdocs/internal/platform/logging"
	"github.com/louisbranch/teamdocs/internal/services/team/roster"
	"github.com/louisbranch/teamdocs/internal/services/team/storage/sqlite"
	"go.uber.org/zap"
)

// Config holds configuration for the roster importer.
type Config struct {
	RosterPath string `env:"TEAMDOCS_ROSTER_PATH"`
	DBPath     string `env:"TEAMDOCS_WEB_DB_PATH" envDefault:"data/team.db"`
	LogLevel   string `env:"TEAMDOCS_LOG_LEVEL" envDefault:"info"`
	DryRun     bool

	LogOutput io.Writer
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.RosterPath, "roster", cfg.RosterPath, "roster TOML file")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "team members SQLite database path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.RosterPath) == "" {
		return Config{}, errors.New("roster is required")
	}
	return cfg, nil
}

// Run validates the roster and, unless DryRun is set, replaces the stored
// members with it. A summary line is written to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	logger := logging.Named(logging.New(cfg.LogLevel, cfg.LogOutput), entrypoint.ServiceRosterImport)
	defer func() { _ = logger.Sync() }()

	rosterPath := strings.TrimSpace(cfg.RosterPath)
	if rosterPath == "" {
		return errors.New("roster is required")
	}
	members, err := roster.LoadFile(rosterPath)
	if err != nil {
		return err
	}
	logger.Info("roster loaded", zap.String("path", rosterPath), zap.Int("members", len(members)))

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d member(s)\n", len(members))
		return err
	}

	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return errors.New("db path is required")
	}
	store, err := sqlite.Open(dbPath, sqlite.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("open team store: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceMembers(ctx, members); err != nil {
		return fmt.Errorf("import roster: %w", err)
	}
	logger.Info("roster imported", zap.String("db_path", dbPath), zap.Int("members", len(members)))
	_, err = fmt.Fprintf(out, "imported %d member(s)\n", len(members))
	return err
}
