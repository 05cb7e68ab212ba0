package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateTableSQL(t *testing.T) {
	got, err := BuildCreateTableSQL("public", "data", []string{"Permit__", "c_2nd_Street", "notes"})
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "public"."data" ("Permit__" text, "c_2nd_Street" text, "notes" text)`,
		got,
	)
}

func TestBuildCreateTableSQLNoSchema(t *testing.T) {
	got, err := BuildCreateTableSQL("", "t", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "t" ("a" text)`, got)
}

func TestBuildCreateTableSQLQuoting(t *testing.T) {
	// Sanitized input never contains quotes, but the renderer must not rely
	// on that.
	got, err := BuildCreateTableSQL("s", `ta"ble`, []string{`co"l`})
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "s"."ta""ble" ("co""l" text)`, got)
}

func TestBuildCreateTableSQLErrors(t *testing.T) {
	_, err := BuildCreateTableSQL("s", "", []string{"a"})
	assert.Error(t, err)

	_, err = BuildCreateTableSQL("s", "t", nil)
	assert.Error(t, err)

	_, err = BuildCreateTableSQL("s", "t", []string{"a", ""})
	assert.Error(t, err)
}

// Duplicate sanitized names are passed through; the database rejects them at
// creation time.
func TestBuildCreateTableSQLDuplicatesPassThrough(t *testing.T) {
	got, err := BuildCreateTableSQL("s", "t", []string{"col", "col"})
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "s"."t" ("col" text, "col" text)`, got)
}
