// Package db provides a small storage abstraction so the loading code depends
// on interfaces rather than a specific driver. We apply dependency inversion:
// adapters exist for Postgres (pgx) and SQLite (database/sql), and each hides
// its driver's placeholder syntax behind Placeholder.
package db

import "context"

// DB is a connection capable of starting transactions and executing DDL/DML.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) error
	BeginTx(ctx context.Context) (Tx, error)
	// Placeholder returns the bind-parameter syntax for 1-based position i,
	// e.g. "$1" for Postgres or "?" for SQLite.
	Placeholder(i int) string
	Close(ctx context.Context) error
}

// Tx supports statement execution and lifecycle. Values reach the database as
// bound parameters, never formatted into SQL text.
type Tx interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Factory mints a new DB connection.
type Factory func(ctx context.Context) (DB, error)
