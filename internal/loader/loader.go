// Package loader implements the single-shot CSV-to-table load: sanitize
// identifiers, read the CSV, create the target table if missing, and insert
// every data row inside one transaction. Run is a pure function over its
// parameters; it never parses flags, prints, or exits, so callers decide exit
// codes uniformly.
package loader

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/peterskim12/csvloader/internal/csvutil"
	"github.com/peterskim12/csvloader/internal/db"
	"github.com/peterskim12/csvloader/internal/ddl"
	"github.com/peterskim12/csvloader/internal/sanitize"
)

// Params identifies the load source and target.
type Params struct {
	Schema  string
	Table   string
	CSVPath string
}

// Result reports a completed load. Schema and Table hold the sanitized names
// actually used in SQL.
type Result struct {
	Rows   int64
	Schema string
	Table  string
	Path   string
}

// String renders the canonical completion message.
func (r Result) String() string {
	return fmt.Sprintf("Loaded %d rows from CSV '%s' into %s.%s", r.Rows, r.Path, r.Schema, r.Table)
}

// Run performs the load. Order of operations:
//
//  1. Sanitize the schema and table identifiers (fails before any I/O).
//  2. Open the CSV and read its header; a missing or empty file is reported
//     before a database connection is attempted.
//  3. Sanitize the header into the column list, used for both the CREATE
//     TABLE and every insert.
//  4. Connect, begin a transaction, create the table if absent, insert each
//     data row through the parameterized template, commit.
//
// Any error aborts the run: the transaction is rolled back unless commit
// succeeded, and the connection is closed on every exit path. There are no
// retries and no partial-success mode.
func Run(ctx context.Context, p Params, open db.Factory, log zerolog.Logger) (Result, error) {
	res := Result{Path: p.CSVPath}

	schema, err := sanitize.Identifier(p.Schema)
	if err != nil {
		return res, fmt.Errorf("schema: %w", err)
	}
	table, err := sanitize.Identifier(p.Table)
	if err != nil {
		return res, fmt.Errorf("table: %w", err)
	}
	res.Schema, res.Table = schema, table

	r, err := csvutil.Open(p.CSVPath)
	if err != nil {
		return res, err
	}
	defer r.Close()

	header, err := r.Header()
	if err != nil {
		return res, err
	}
	columns := sanitize.Columns(header)
	log.Debug().Strs("columns", columns).Str("table", schema+"."+table).Msg("header sanitized")

	conn, err := open(ctx)
	if err != nil {
		return res, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	create, err := ddl.BuildCreateTableSQL(schema, table, columns)
	if err != nil {
		return res, err
	}
	insert := insertSQL(conn, schema, table, columns)

	tx, err := conn.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	// Table creation participates in the transaction, so a failed load
	// leaves no half-created table behind.
	if err := tx.Exec(ctx, create); err != nil {
		return res, fmt.Errorf("create table: %w", err)
	}

	for {
		row, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// res.Rows+2: data starts on line 2, after the header.
			return res, fmt.Errorf("read csv row %d: %w", res.Rows+2, err)
		}
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if err := tx.Exec(ctx, insert, args...); err != nil {
			return res, fmt.Errorf("insert row %d: %w", res.Rows+2, err)
		}
		res.Rows++
	}

	if err := tx.Commit(ctx); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	committed = true

	log.Debug().Int64("rows", res.Rows).Msg("load committed")
	return res, nil
}

// insertSQL builds the parameterized insert template once. The sanitized
// column list comes from the header and is reused unchanged for every row.
func insertSQL(conn db.DB, schema, table string, columns []string) string {
	ph := make([]string, len(columns))
	for i := range columns {
		ph[i] = conn.Placeholder(i + 1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		db.QuoteQualified(schema, table),
		strings.Join(db.QuoteIdents(columns), ", "),
		strings.Join(ph, ", "),
	)
}
