package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpggio/projects/internal/config"
	"github.com/rpggio/projects/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelWarn, parseLogLevel(""))
}

func TestEnsureDBDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "projects.db")

	require.NoError(t, ensureDBDir(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, ensureDBDir(":memory:"))
}

func TestOpenStore_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "projects.db")
	ctx := context.Background()

	repo, closeStore, err := openStore(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: path}, nil)
	require.NoError(t, err)

	created, err := repo.Insert(ctx, &project.Project{Name: "Shelf"})
	require.NoError(t, err)
	closeStore()

	// The file outlives the process.
	repo, closeStore, err = openStore(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: path}, nil)
	require.NoError(t, err)
	defer closeStore()

	_, found, err := repo.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
}

func TestLogFileWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "projects.log")

	w, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	defer file.Close()
	w.max, w.keep = 64, 32

	_, err = w.Write([]byte(strings.Repeat("a", 60)))
	require.NoError(t, err)
	_, err = w.Write([]byte(strings.Repeat("b", 10)))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 32)
	require.True(t, strings.HasSuffix(string(data), strings.Repeat("b", 10)))

	_, err = w.Write([]byte("c"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 33)
}
