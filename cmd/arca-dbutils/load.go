package main

import (
	"github.com/matthewsinclair/arca-dbutils/internal/services/load"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [key=value ...]",
	Short: "Replay a dump file into a database",
	Long: `Replay a previously produced dump file into a database via psql.

The input file comes from --file, a file=... argument, or the DB_FILE
environment variable, and must exist before psql is invoked.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLoad,
}

func init() {
	addConnectionFlags(loadCmd)
	loadCmd.Flags().StringVar(&connParams.File, "file", "", "dump file to replay (env DB_FILE)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	params := connParams
	if err := applyKeyValueArgs(&params, args); err != nil {
		return err
	}

	svc := load.New(log.Logger)
	result, err := svc.Load(cmd.Context(), params)
	if err != nil {
		return err
	}
	if result.Error != nil {
		surfaceCommandOutput(result.Error)
		log.Error().Err(result.Error).Msg("load failed")
		return result.Error
	}

	log.Info().
		Str("file", result.File).
		Dur("duration", result.Duration).
		Msg("database loaded")
	return nil
}
