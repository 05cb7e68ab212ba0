package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgDB adapts a single pgx connection to the DB interface.
type pgDB struct {
	conn *pgx.Conn
}

// NewPostgres connects to Postgres using dsn (keyword/value or URL form).
func NewPostgres(ctx context.Context, dsn string) (DB, error) {
	c, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &pgDB{conn: c}, nil
}

func (p *pgDB) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := p.conn.Exec(ctx, sql, args...)
	return pgDetail(err)
}

func (p *pgDB) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := p.conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: tx}, nil
}

func (p *pgDB) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func (p *pgDB) Close(ctx context.Context) error {
	return p.conn.Close(ctx)
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := t.tx.Exec(ctx, sql, args...)
	return pgDetail(err)
}

func (t *pgTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// pgDetail surfaces the detail line of a Postgres server error when present.
func pgDetail(err error) error {
	var perr *pgconn.PgError
	if errors.As(err, &perr) && perr.Detail != "" {
		return fmt.Errorf("%s: %s (%s)", perr.Message, perr.Detail, perr.SQLState())
	}
	return err
}
