package progress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer makes bytes.Buffer safe to share with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream gone")
}

func TestSpinner_WritesFramesThenNewline(t *testing.T) {
	buf := &syncBuffer{}
	s := New(buf)

	s.Start()
	time.Sleep(500 * time.Millisecond)
	s.Stop()
	s.Wait()

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "\r")
	assert.True(t, strings.HasSuffix(out, "\n"))

	trimmed := strings.TrimSuffix(out, "\n")
	for _, frame := range strings.Split(trimmed, "\r") {
		if frame == "" {
			continue
		}
		assert.Contains(t, []string{"|", "/", "-", "\\"}, frame)
	}
}

func TestSpinner_NoOutputAfterStop(t *testing.T) {
	buf := &syncBuffer{}
	s := New(buf)

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
	s.Wait()

	settled := buf.String()
	time.Sleep(400 * time.Millisecond)

	assert.Equal(t, settled, buf.String())
}

func TestSpinner_SurvivesBrokenWriter(t *testing.T) {
	s := New(failingWriter{})

	s.Start()
	time.Sleep(350 * time.Millisecond)
	s.Stop()
	s.Wait()
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := New(&syncBuffer{})

	s.Start()
	s.Stop()
	s.Stop()
	s.Wait()
}

func TestSpinner_StartIsIdempotent(t *testing.T) {
	buf := &syncBuffer{}
	s := New(buf)

	s.Start()
	s.Start()
	s.Stop()
	s.Wait()
}
