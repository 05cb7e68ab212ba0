// Package testinfra starts throwaway Postgres containers for integration
// tests.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:17-alpine"
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDB       = "postgres"
)

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

func startPostgres() (string, error) {
	containerOnce.Do(func() {
		ctx := context.Background()
		ctr, err := postgres.Run(ctx,
			postgresImage,
			postgres.WithUsername(postgresUser),
			postgres.WithPassword(postgresPassword),
			postgres.WithDatabase(postgresDB),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres: %w", err)
			return
		}
		containerConn, containerErr = ctr.ConnectionString(ctx, "sslmode=disable")
	})
	return containerConn, containerErr
}

// ConnString returns a Postgres connection string for integration tests.
// Priority: CSVLOADER_TEST_CONN env var > auto-started testcontainer > skip.
func ConnString(t *testing.T) string {
	t.Helper()

	if conn := os.Getenv("CSVLOADER_TEST_CONN"); conn != "" {
		return conn
	}
	conn, err := startPostgres()
	if err != nil {
		t.Skipf("CSVLOADER_TEST_CONN not set and Docker unavailable: %v", err)
	}
	return conn
}
