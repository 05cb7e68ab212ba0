package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// sqliteDB adapts database/sql with the cgo-free SQLite driver to the DB
// interface. SQLite has no "public" schema; callers target "main" or leave
// the schema empty.
type sqliteDB struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database. The DSN is passed to database/sql as-is,
// e.g. "load.db" or "file:load.db?cache=shared".
func NewSQLite(ctx context.Context, dsn string) (DB, error) {
	d, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := d.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &sqliteDB{db: d}, nil
}

func (s *sqliteDB) Exec(ctx context.Context, q string, args ...any) error {
	_, err := s.db.ExecContext(ctx, q, args...)
	return err
}

func (s *sqliteDB) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *sqliteDB) Placeholder(int) string {
	return "?"
}

func (s *sqliteDB) Close(context.Context) error {
	return s.db.Close()
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Exec(ctx context.Context, q string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, q, args...)
	return err
}

func (t *sqliteTx) Commit(context.Context) error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback(context.Context) error { return t.tx.Rollback() }
