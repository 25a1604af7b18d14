// Package db wraps the native pgx connection with the handful of operations
// the population engine needs.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dverduzco/ecompop/internal/config"
	"github.com/dverduzco/ecompop/internal/model"
)

// ErrUnreachable marks a connectivity failure: the target database could not
// be reached or did not answer a ping. Nothing was loaded.
var ErrUnreachable = errors.New("database unreachable")

// Conn is a single pgx connection. The engine is sequential by design, so a
// pool buys nothing over one connection.
type Conn struct {
	conn *pgx.Conn
}

// Connect opens and verifies the connection. A failure here is a
// connectivity problem, not a data problem, and the caller should abort.
func Connect(ctx context.Context, cfg *config.Config) (*Conn, error) {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrUnreachable, cfg.Addr(), err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("%w at %s: %w", ErrUnreachable, cfg.Addr(), err)
	}
	return &Conn{conn: conn}, nil
}

func (c *Conn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := c.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}
	return nil
}

// InsertReturningID runs an INSERT ... RETURNING statement and scans the
// generated key.
func (c *Conn) InsertReturningID(ctx context.Context, sql string, args ...any) (int64, error) {
	var id int64
	if err := c.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}
	return id, nil
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

// CopyFrom streams rows through the binary copy protocol.
func (c *Conn) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	n, err := c.conn.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s failed: %w", table, err)
	}
	return n, nil
}

// Truncate empties every table child-first and restarts the identity
// sequences so freshly loaded rows start at id 1.
func (c *Conn) Truncate(ctx context.Context) error {
	for _, t := range model.TruncationOrder {
		stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", t.Name)
		if err := c.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", t.Name, err)
		}
	}
	return nil
}

func (c *Conn) TableCount(ctx context.Context, table string) (int64, error) {
	var n int64
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := c.conn.QueryRow(ctx, stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// DatabaseSize returns the on-disk size of the named database, formatted by
// the server.
func (c *Conn) DatabaseSize(ctx context.Context, database string) (string, error) {
	var size string
	err := c.conn.QueryRow(ctx, "SELECT pg_size_pretty(pg_database_size($1))", database).Scan(&size)
	if err != nil {
		return "", fmt.Errorf("failed to read database size: %w", err)
	}
	return size, nil
}
