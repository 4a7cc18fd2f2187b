// Package postgres stores projects in PostgreSQL. Every operation opens its
// own connection and closes it before returning; nothing is pooled.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/rpggio/projects/migrations"
)

// Store holds what is needed to reach the database, not a live connection.
type Store struct {
	connString string
	logger     *slog.Logger
}

// Open checks that databaseURL is reachable and applies the schema.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	if _, err := pgx.ParseConfig(databaseURL); err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{connString: databaseURL, logger: logger}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// withConn runs fn on a fresh connection and closes it on every path.
func (s *Store) withConn(ctx context.Context, fn func(conn *pgx.Conn) error) error {
	conn, err := pgx.Connect(ctx, s.connString)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if err := conn.Close(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to close connection", "error", err)
		}
	}()
	return fn(conn)
}

func (s *Store) migrate(ctx context.Context) error {
	data, err := migrations.FS.ReadFile(migrations.Postgres)
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	return s.withConn(ctx, func(conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		return nil
	})
}
