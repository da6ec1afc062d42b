package main

import (
	"os"
	"strings"

	"github.com/matthewsinclair/arca-dbutils/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output flags.
	verbose    bool
	quiet      bool
	jsonOutput bool

	// Connection flags, shared by the subcommands. Positional key=value
	// tokens fill in whatever the flags left unset.
	connParams models.ConnParams
)

var rootCmd = &cobra.Command{
	Use:   "arca-dbutils",
	Short: "PostgreSQL dump and load helpers",
	Long: `arca-dbutils wraps the PostgreSQL client programs for everyday use:
  - dump a database to a timestamped .sql file via pg_dump
  - load a previously produced dump file via psql
  - check that connection parameters reach a live server

Connection parameters come from flags, key=value arguments, or the
DB_URL, DB_HOST, DB_USER, DB_PASSWORD, DB_NAME and DB_FILE environment
variables. A connection URL always wins over individual parameters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(checkCmd)
}

func addConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&connParams.URL, "url", "", "connection URL (overrides all individual parameters)")
	cmd.Flags().StringVar(&connParams.Host, "host", "", "database host (env DB_HOST)")
	cmd.Flags().StringVar(&connParams.User, "user", "", "database user (env DB_USER)")
	cmd.Flags().StringVar(&connParams.Password, "password", "", "database password (env DB_PASSWORD)")
	cmd.Flags().StringVar(&connParams.Database, "dbname", "", "database name (env DB_NAME)")
	cmd.Flags().IntVar(&connParams.Port, "port", 0, "database port (only honored as part of a connection URL)")
}

func setupLogging() {
	// Set output format
	if jsonOutput {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
