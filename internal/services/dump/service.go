// Package dump exports a database to a text dump file via pg_dump.
package dump

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/matthewsinclair/arca-dbutils/internal/config"
	"github.com/matthewsinclair/arca-dbutils/internal/models"
	"github.com/matthewsinclair/arca-dbutils/internal/services/executor"
	"github.com/matthewsinclair/arca-dbutils/internal/services/progress"
	"github.com/rs/zerolog"
)

const clientName = "pg_dump"

// Indicator is the progress feedback shown while pg_dump runs.
type Indicator interface {
	Start()
	Stop()
}

// Service defines the interface for dump operations.
type Service interface {
	Dump(ctx context.Context, params models.ConnParams) (*models.DumpResult, error)
}

// Impl implements the dump Service interface.
type Impl struct {
	executor     executor.Service
	env          config.Env
	logger       zerolog.Logger
	newIndicator func() Indicator
}

// New creates a new dump service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		executor: executor.New(logger),
		env:      config.NewEnv(),
		logger:   logger,
		newIndicator: func() Indicator {
			return progress.New(os.Stdout)
		},
	}
}

// NewWithDeps creates a new dump service with custom collaborators (for
// testing).
func NewWithDeps(logger zerolog.Logger, exec executor.Service, env config.Env, newIndicator func() Indicator) *Impl {
	return &Impl{
		executor:     exec,
		env:          env,
		logger:       logger,
		newIndicator: newIndicator,
	}
}

// Dump resolves connection parameters, validates them and runs pg_dump into
// a timestamped output file. The pg_dump lookup happens before anything
// else, so a missing client never produces a partial run. All failures are
// reported through DumpResult.Error.
func (s *Impl) Dump(ctx context.Context, params models.ConnParams) (*models.DumpResult, error) {
	start := time.Now()
	result := &models.DumpResult{}

	if _, err := s.executor.LookPath(clientName); err != nil {
		result.Error = err
		return result, nil
	}

	cfg := config.Resolve(params, s.env)
	if err := config.Validate(cfg); err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result, nil
	}

	filename := BuildFilename(cfg.Database)
	result.Filename = filename

	s.logger.Info().
		Str("connection", cfg.Redacted()).
		Str("output", filename).
		Msg("starting dump")

	indicator := s.newIndicator()
	indicator.Start()
	out, code, err := s.executor.Run(ctx, clientName, buildArgs(cfg, filename), passwordEnv(cfg))
	indicator.Stop()

	result.Output = out
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err
		return result, nil
	}
	if code != 0 {
		result.Error = &executor.CommandError{Name: clientName, ExitCode: code, Output: out}
		return result, nil
	}

	s.logger.Info().
		Str("file", filename).
		Dur("duration", result.Duration).
		Msg("dump completed")

	return result, nil
}

// BuildFilename returns the timestamped, host-qualified output filename for
// a dump of database. The timestamp is UTC, truncated to the second. A
// failed hostname lookup degrades to "unknown" rather than aborting the
// dump.
func BuildFilename(database string) string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	timestamp := time.Now().UTC().Format("20060102-150405")
	return fmt.Sprintf("%s-%s-%s.sql", timestamp, hostname, database)
}

func buildArgs(cfg models.ConnectionConfig, filename string) []string {
	args := []string{
		"-h", cfg.Host,
		"-U", cfg.User,
		"-f", filename,
		"--no-owner",
		"--no-privileges",
	}
	if cfg.Port > 0 {
		args = append(args, "-p", strconv.Itoa(cfg.Port))
	}
	return append(args, cfg.Database)
}

func passwordEnv(cfg models.ConnectionConfig) []string {
	if cfg.Password == "" {
		return nil
	}
	return []string{"PGPASSWORD=" + cfg.Password}
}
