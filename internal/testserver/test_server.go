// Package testserver wires an in-memory SQLite store, the project service and
// an MCP client session for tests.
package testserver

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/mcp"
	"github.com/rpggio/projects/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	DB       *sqlite.DB
	Projects *project.Service
}

// New creates a migrated in-memory store and a service over it.
func New(t *testing.T) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		_ = db.Close()
	})

	return &TestServer{
		DB:       db,
		Projects: project.NewService(sqlite.NewProjectRepository(db), nil),
	}
}

// Connect starts the MCP server over in-memory transports and returns a
// connected client session.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(mcp.Config{Projects: ts.Projects, Version: "test"})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})

	return session
}
