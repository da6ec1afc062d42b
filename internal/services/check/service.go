// Package check verifies that resolved connection parameters actually reach
// a database server.
package check

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/matthewsinclair/arca-dbutils/internal/config"
	"github.com/matthewsinclair/arca-dbutils/internal/models"
	"github.com/rs/zerolog"
)

// Pinger opens and immediately closes a connection to the server.
type Pinger interface {
	Ping(ctx context.Context, connString string) error
}

type pgPinger struct{}

func (pgPinger) Ping(ctx context.Context, connString string) error {
	conn, err := pgconn.Connect(ctx, connString)
	if err != nil {
		return err
	}
	return conn.Close(ctx)
}

// Service defines the interface for connection checks.
type Service interface {
	Check(ctx context.Context, params models.ConnParams) (*models.CheckResult, error)
}

// Impl implements the check Service interface.
type Impl struct {
	pinger Pinger
	env    config.Env
	logger zerolog.Logger
}

// New creates a new check service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		pinger: pgPinger{},
		env:    config.NewEnv(),
		logger: logger,
	}
}

// NewWithDeps creates a new check service with custom collaborators (for
// testing).
func NewWithDeps(logger zerolog.Logger, pinger Pinger, env config.Env) *Impl {
	return &Impl{
		pinger: pinger,
		env:    env,
		logger: logger,
	}
}

// Check resolves and validates connection parameters, then attempts a real
// connection to the server. Failures are reported through CheckResult.Error.
func (s *Impl) Check(ctx context.Context, params models.ConnParams) (*models.CheckResult, error) {
	start := time.Now()
	result := &models.CheckResult{}

	cfg := config.Resolve(params, s.env)
	if err := config.Validate(cfg); err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result, nil
	}
	result.Config = cfg

	s.logger.Info().Str("connection", cfg.Redacted()).Msg("checking connection")

	if err := s.pinger.Ping(ctx, cfg.URL()); err != nil {
		result.Error = fmt.Errorf("connection failed: %w", err)
		result.Duration = time.Since(start)
		return result, nil
	}

	result.Duration = time.Since(start)

	s.logger.Info().
		Str("connection", cfg.Redacted()).
		Dur("duration", result.Duration).
		Msg("connection check passed")

	return result, nil
}
