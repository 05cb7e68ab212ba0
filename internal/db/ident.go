package db

import "strings"

// QuoteIdent quotes a single identifier segment, doubling any embedded quote.
// The double-quote form is valid for both Postgres and SQLite.
func QuoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// QuoteQualified renders an optionally schema-qualified table reference like
// "public"."data". With an empty schema only the table is quoted.
func QuoteQualified(schema, table string) string {
	if schema == "" {
		return QuoteIdent(table)
	}
	return QuoteIdent(schema) + "." + QuoteIdent(table)
}

// QuoteIdents maps QuoteIdent over a list of column names.
func QuoteIdents(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = QuoteIdent(c)
	}
	return out
}
