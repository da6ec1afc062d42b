package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matthewsinclair/arca-dbutils/internal/services/dump"
	"github.com/matthewsinclair/arca-dbutils/internal/services/executor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [key=value ...]",
	Short: "Export a database to a timestamped .sql file",
	Long: `Export a database to a timestamped .sql file via pg_dump.

The output filename is <date>-<time>-<hostname>-<dbname>.sql in the current
directory. The password is passed to pg_dump via PGPASSWORD, never on the
command line.`,
	Args: cobra.ArbitraryArgs,
	RunE: runDump,
}

func init() {
	addConnectionFlags(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	params := connParams
	if err := applyKeyValueArgs(&params, args); err != nil {
		return err
	}

	svc := dump.New(log.Logger)
	result, err := svc.Dump(cmd.Context(), params)
	if err != nil {
		return err
	}
	if result.Error != nil {
		surfaceCommandOutput(result.Error)
		log.Error().Err(result.Error).Msg("dump failed")
		return result.Error
	}

	log.Info().
		Str("file", result.Filename).
		Dur("duration", result.Duration).
		Msg("database dumped")
	return nil
}

// surfaceCommandOutput writes the external client's combined output to
// stderr when a command failed, so diagnostics are not lost in the log line.
func surfaceCommandOutput(err error) {
	var cmdErr *executor.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Output != "" {
		fmt.Fprint(os.Stderr, cmdErr.Output)
	}
}
