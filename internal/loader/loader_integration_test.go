package loader_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterskim12/csvloader/internal/db"
	"github.com/peterskim12/csvloader/internal/loader"
	"github.com/peterskim12/csvloader/internal/testinfra"
)

func TestRunPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	connStr := testinfra.ConnString(t)
	ctx := context.Background()

	csvPath := writeCSV(t, "Permit #,2nd Street,notes\n1,Main,\"multi\nline, note\"\n2,Oak,plain\n")
	factory := func(ctx context.Context) (db.DB, error) {
		return db.NewPostgres(ctx, connStr)
	}
	params := loader.Params{Schema: "public", Table: "permits_it", CSVPath: csvPath}

	res, err := loader.Run(ctx, params, factory, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Rows)

	conn, err := pgx.Connect(ctx, connStr)
	require.NoError(t, err)
	defer conn.Close(ctx)

	var n int
	err = conn.QueryRow(ctx, `SELECT count(*) FROM "public"."permits_it"`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var note string
	err = conn.QueryRow(ctx, `SELECT "notes" FROM "public"."permits_it" WHERE "Permit__" = '1'`).Scan(&note)
	require.NoError(t, err)
	assert.Equal(t, "multi\nline, note", note)

	// Re-running against the same table appends; CREATE TABLE IF NOT EXISTS
	// does not fail.
	res, err = loader.Run(ctx, params, factory, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Rows)

	err = conn.QueryRow(ctx, `SELECT count(*) FROM "public"."permits_it"`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
