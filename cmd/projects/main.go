package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/projects/internal/config"
	"github.com/rpggio/projects/internal/console"
	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/mcp"
	"github.com/rpggio/projects/internal/postgres"
	"github.com/rpggio/projects/internal/sqlite"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the menu or the MCP stream.
	logWriter := io.Writer(os.Stderr)
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg.DB, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	projectSvc := project.NewService(repo, logger)

	switch cfg.Mode {
	case config.ModeMCP:
		err = runStdioMode(ctx, logger, projectSvc)
	default:
		err = console.New(projectSvc, os.Stdin, os.Stdout, logger).Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("exited with error", "mode", cfg.Mode, "error", err)
		closeStore()
		os.Exit(1)
	}
}

// openStore returns the repository for the configured driver and a function
// releasing whatever it holds.
func openStore(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (project.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.Open(ctx, cfg.URL, logger)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewProjectRepository(store), func() {}, nil
	default:
		if err := ensureDBDir(cfg.Path); err != nil {
			return nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewProjectRepository(db), func() { db.Close() }, nil
	}
}

func runStdioMode(ctx context.Context, logger *slog.Logger, projects mcp.ProjectService) error {
	logger.Info("starting stdio transport")

	server := mcp.NewServer(mcp.Config{
		Projects: projects,
		Version:  version,
		Logger:   logger,
	})

	// Run blocks until stdin closes or ctx is canceled.
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
