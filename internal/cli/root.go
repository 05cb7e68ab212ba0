// Package cli wires flags, configuration, and the loader into a cobra
// command. main() stays tiny; everything testable lives here.
package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peterskim12/csvloader/internal/config"
	"github.com/peterskim12/csvloader/internal/db"
	"github.com/peterskim12/csvloader/internal/loader"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "csvloader",
	Short: "Load a CSV file into a database table",
	Long: `csvloader reads a CSV file and loads its rows into a database table,
creating the table if absent with every column typed as text. Schema, table,
and column names are sanitized before they reach SQL; row values are bound as
parameters; and the whole load commits as a single transaction or not at all.

Running twice against the same table does not fail on table creation, but it
appends duplicate data: there is no dedup, truncate, or upsert.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runLoad,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfg.Driver, "driver", "postgres", "database driver: 'postgres' or 'sqlite'")
	f.StringVar(&cfg.Host, "host", "", "database host")
	f.IntVar(&cfg.Port, "port", 5432, "database port")
	f.StringVar(&cfg.DBName, "dbname", "", "database name")
	f.StringVar(&cfg.User, "user", "", "database user")
	f.StringVar(&cfg.Password, "password", "", "database password")
	f.StringVar(&cfg.DSN, "dsn", "", "full DSN; overrides the discrete connection flags")
	f.StringVar(&cfg.CSVPath, "csv", "data.csv", "path to the CSV file")
	f.StringVar(&cfg.Schema, "schema", "public", "target schema")
	f.StringVar(&cfg.Table, "table", "data", "target table name")
	f.StringVar(&cfg.EnvFile, "env-file", "", "dotenv file with connection settings")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if err := cfg.LoadEnvFile(); err != nil {
		return err
	}
	cfg.Resolve(os.Getenv, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := loader.Run(cmd.Context(), loader.Params{
		Schema:  cfg.Schema,
		Table:   cfg.Table,
		CSVPath: cfg.CSVPath,
	}, factory(&cfg), log.Logger)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}

// factory selects the driver adapter for the resolved configuration. Validate
// has already rejected unknown drivers.
func factory(c *config.Config) db.Factory {
	if c.Driver == "sqlite" {
		return func(ctx context.Context) (db.DB, error) {
			return db.NewSQLite(ctx, c.DSN)
		}
	}
	return func(ctx context.Context) (db.DB, error) {
		return db.NewPostgres(ctx, c.PostgresDSN())
	}
}

// setupLogging configures zerolog console output on stderr; the final row
// count goes to stdout and stays machine-consumable.
func setupLogging() {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Execute runs the root command and maps every failure path to exit code 1
// with the message on stderr.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
