// Package progress provides a console spinner for long-running external
// commands.
package progress

import (
	"io"
	"sync"
	"time"
)

const defaultInterval = 150 * time.Millisecond

var frames = [4]string{"|", "/", "-", "\\"}

// Spinner writes a rotating glyph to a console while an external command
// runs. It is purely cosmetic: write failures are swallowed and stopping is
// fire-and-forget, so it can never affect the outcome of the operation it
// decorates.
type Spinner struct {
	out      io.Writer
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// New creates a spinner writing to out.
func New(out io.Writer) *Spinner {
	return &Spinner{
		out:      out,
		interval: defaultInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins spinning in a background goroutine. Calling Start more than
// once has no effect.
func (s *Spinner) Start() {
	s.startOnce.Do(func() {
		go s.spin()
	})
}

// Stop signals the spinner to finish its line and exit. It does not wait for
// the goroutine; callers that need the terminal settled can use Wait.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Wait blocks until the spinner goroutine has exited. Only meaningful after
// Start and Stop.
func (s *Spinner) Wait() {
	<-s.done
}

func (s *Spinner) spin() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.stop:
			_, _ = io.WriteString(s.out, "\n")
			return
		case <-ticker.C:
			_, _ = io.WriteString(s.out, "\r"+frames[frame%len(frames)])
			frame++
		}
	}
}
