// Package mcp exposes the project operations as Model Context Protocol tools.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/projects/internal/domain/project"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Add(ctx context.Context, proj *project.Project) (*project.Project, error)
	List(ctx context.Context) ([]project.ProjectSummary, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Update(ctx context.Context, proj *project.Project) error
}

// Config contains server configuration.
type Config struct {
	Projects ProjectService
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "projects",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Projects)

	return server
}
