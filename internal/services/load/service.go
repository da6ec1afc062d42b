// Package load replays a dump file into a database via psql.
package load

import (
	"context"
	"errors"
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

const clientName = "psql"

// ErrMissingFile indicates no input file was supplied for the load.
var ErrMissingFile = errors.New("no dump file specified")

// FileNotFoundError indicates the supplied dump file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("dump file not found: %s", e.Path)
}

// Indicator is the progress feedback shown while psql runs.
type Indicator interface {
	Start()
	Stop()
}

// Service defines the interface for load operations.
type Service interface {
	Load(ctx context.Context, params models.ConnParams) (*models.LoadResult, error)
}

// Impl implements the load Service interface.
type Impl struct {
	executor     executor.Service
	env          config.Env
	logger       zerolog.Logger
	newIndicator func() Indicator
}

// New creates a new load service.
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

// NewWithDeps creates a new load service with custom collaborators (for
// testing).
func NewWithDeps(logger zerolog.Logger, exec executor.Service, env config.Env, newIndicator func() Indicator) *Impl {
	return &Impl{
		executor:     exec,
		env:          env,
		logger:       logger,
		newIndicator: newIndicator,
	}
}

// Load resolves connection parameters, validates them and the input file,
// then replays the file via psql. The psql lookup happens before anything
// else, and the file must exist before the client is ever invoked. All
// failures are reported through LoadResult.Error.
func (s *Impl) Load(ctx context.Context, params models.ConnParams) (*models.LoadResult, error) {
	start := time.Now()
	result := &models.LoadResult{}

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

	file := config.ResolveFile(params, s.env)
	if file == "" {
		result.Error = ErrMissingFile
		result.Duration = time.Since(start)
		return result, nil
	}
	if _, err := os.Stat(file); err != nil {
		result.Error = &FileNotFoundError{Path: file}
		result.Duration = time.Since(start)
		return result, nil
	}
	result.File = file

	s.logger.Info().
		Str("connection", cfg.Redacted()).
		Str("file", file).
		Msg("starting load")

	indicator := s.newIndicator()
	indicator.Start()
	out, code, err := s.executor.Run(ctx, clientName, buildArgs(cfg, file), passwordEnv(cfg))
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
		Str("file", file).
		Dur("duration", result.Duration).
		Msg("load completed")

	return result, nil
}

func buildArgs(cfg models.ConnectionConfig, file string) []string {
	args := []string{
		"-h", cfg.Host,
		"-U", cfg.User,
	}
	if cfg.Port > 0 {
		args = append(args, "-p", strconv.Itoa(cfg.Port))
	}
	return append(args,
		"-d", cfg.Database,
		"-f", file,
	)
}

func passwordEnv(cfg models.ConnectionConfig) []string {
	if cfg.Password == "" {
		return nil
	}
	return []string{"PGPASSWORD=" + cfg.Password}
}
