package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.Migrate()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", "project").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "table project not found")

	// A second run is a no-op.
	require.NoError(t, db.Migrate())
}

// TestProjectTable verifies the project table structure and constraints
func TestProjectTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO project (project_name, estimated_hours, difficulty) VALUES (?, ?, ?)`,
		"Test Project", "10.00", 3)
	require.NoError(t, err)

	var name, hours string
	var difficulty int
	err = db.QueryRowContext(ctx,
		`SELECT project_name, estimated_hours, difficulty FROM project WHERE project_id = 1`).
		Scan(&name, &hours, &difficulty)
	require.NoError(t, err)
	require.Equal(t, "Test Project", name)
	require.Equal(t, "10.00", hours)
	require.Equal(t, 3, difficulty)

	// difficulty outside 1..5
	_, err = db.ExecContext(ctx,
		`INSERT INTO project (project_name, difficulty) VALUES (?, ?)`, "Too hard", 9)
	require.Error(t, err)
	require.True(t, isCheckViolation(err))

	// name is required
	_, err = db.ExecContext(ctx, `INSERT INTO project (project_name) VALUES (NULL)`)
	require.Error(t, err)
	require.True(t, isNotNullViolation(err))
}
