// Package executor runs external client programs.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// NotFoundError indicates an external program is absent from the search path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: executable not found in PATH", e.Name)
}

// CommandError indicates an external program ran but exited nonzero. Output
// carries the program's combined stdout and stderr for diagnostics.
type CommandError struct {
	Name     string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
}

// Service defines the interface for invoking external programs.
type Service interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args []string, extraEnv []string) (output string, exitCode int, err error)
}

// Impl implements the executor Service using os/exec.
type Impl struct {
	logger zerolog.Logger
}

// New creates a new executor service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{logger: logger}
}

// LookPath reports where name lives on the search path, or a NotFoundError.
func (s *Impl) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}

// Run executes the program synchronously, merging stdout and stderr into one
// captured stream. extraEnv entries are appended to the inherited
// environment, which is how credentials reach the child without appearing in
// its argument list. A nonzero exit is not an error here; the caller decides
// what an exit status means.
func (s *Impl) Run(ctx context.Context, name string, args []string, extraEnv []string) (string, int, error) {
	s.logger.Debug().Str("command", name).Strs("args", args).Msg("running external command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), extraEnv...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode(), nil
		}
		return string(out), -1, fmt.Errorf("starting %s: %w", name, err)
	}
	return string(out), 0, nil
}
