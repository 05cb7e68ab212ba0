// Package config centralizes process configuration. Flags are bound by the
// CLI layer; this package owns the struct, the environment fallbacks, the
// optional dotenv file, and validation.
//
// Precedence per setting:
//
//  1. An explicit CLI flag wins.
//  2. Otherwise the environment variable, if set (optionally seeded from a
//     dotenv file via --env-file).
//  3. Otherwise the built-in default.
package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. All fields are plain values so the
// struct can be copied freely after construction.
type Config struct {
	// Driver selects the database adapter: "postgres" or "sqlite".
	Driver string

	// Discrete Postgres connection parts; ignored when DSN is set.
	Host     string
	Port     int
	DBName   string
	User     string
	Password string

	// DSN is a full connection string. Required for sqlite (the database
	// file path), optional for Postgres.
	DSN string

	CSVPath string
	Schema  string
	Table   string

	EnvFile string
	Verbose bool
}

// LoadEnvFile loads the dotenv file named by EnvFile into the process
// environment. A missing flag is a no-op; a named but unreadable file is an
// error.
func (c *Config) LoadEnvFile() error {
	if c.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Resolve applies environment fallbacks for every field whose flag was not
// explicitly set. getenv and changed are injected so tests stay hermetic.
func (c *Config) Resolve(getenv func(string) string, changed func(flag string) bool) {
	str := func(flag, key string, dst *string) {
		if !changed(flag) {
			if v := getenv(key); v != "" {
				*dst = v
			}
		}
	}
	str("driver", "DB_DRIVER", &c.Driver)
	str("host", "DB_HOST", &c.Host)
	str("dbname", "DB_NAME", &c.DBName)
	str("user", "DB_USER", &c.User)
	str("password", "DB_PASSWORD", &c.Password)
	str("dsn", "DB_DSN", &c.DSN)
	str("csv", "CSV_PATH", &c.CSVPath)
	str("schema", "DB_SCHEMA", &c.Schema)
	str("table", "DB_TABLE", &c.Table)

	if !changed("port") {
		if v := getenv("DB_PORT"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				c.Port = i
			}
		}
	}
}

// Validate checks that the selected driver has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Driver {
	case "postgres":
		if c.DSN == "" && (c.Host == "" || c.DBName == "" || c.User == "" || c.Password == "") {
			return fmt.Errorf("postgres requires --host, --dbname, --user and --password (or a full --dsn)")
		}
	case "sqlite":
		if c.DSN == "" {
			return fmt.Errorf("sqlite requires --dsn with the database file path")
		}
	default:
		return fmt.Errorf("unsupported --driver=%q", c.Driver)
	}
	return nil
}

// PostgresDSN returns the connection string for the Postgres adapter,
// building a postgres:// URL from the discrete parts when no explicit DSN was
// provided. URL encoding keeps credentials with reserved characters intact.
func (c *Config) PostgresDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	return u.String()
}
