// Package ddl renders the CREATE TABLE statement for a load target. Every
// identifier is quoted individually; nothing from the input reaches the SQL
// text unquoted.
package ddl

import (
	"fmt"
	"strings"

	"github.com/peterskim12/csvloader/internal/db"
)

// BuildCreateTableSQL renders an idempotent statement of the form
//
//	CREATE TABLE IF NOT EXISTS "schema"."table" ("c1" text, "c2" text, ...)
//
// with one unconstrained text column per entry of columns, in order. The
// syntax is accepted by both Postgres and SQLite.
func BuildCreateTableSQL(schema, table string, columns []string) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}

	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		if strings.TrimSpace(c) == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", table)
		}
		cols = append(cols, db.QuoteIdent(c)+" text")
	}

	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		db.QuoteQualified(schema, table),
		strings.Join(cols, ", "),
	), nil
}
