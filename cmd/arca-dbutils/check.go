package main

import (
	"fmt"

	"github.com/matthewsinclair/arca-dbutils/internal/services/check"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [key=value ...]",
	Short: "Verify that connection parameters reach a live server",
	Long: `Resolve and validate connection parameters, then open and close a
real connection to the server without running any client program.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	addConnectionFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	params := connParams
	if err := applyKeyValueArgs(&params, args); err != nil {
		return err
	}

	svc := check.New(log.Logger)
	result, err := svc.Check(cmd.Context(), params)
	if err != nil {
		return err
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("connection check failed")
		return result.Error
	}

	fmt.Println("Connection OK!")
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Connection: %s\n", result.Config.Redacted())
	fmt.Printf("  Host: %s\n", result.Config.Host)
	if result.Config.Port > 0 {
		fmt.Printf("  Port: %d\n", result.Config.Port)
	}
	fmt.Printf("  User: %s\n", result.Config.User)
	fmt.Printf("  Database: %s\n", result.Config.Database)
	fmt.Printf("  Round trip: %s\n", result.Duration)

	return nil
}
