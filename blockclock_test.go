package blockclock

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffnv/blockclock/internal/art"
	"github.com/jeffnv/blockclock/internal/term"
)

// syncBuffer can be read while Run is writing to it.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// TestRunPaintsAndRestoresCursor runs the ANSI loop end to end.
func TestRunPaintsAndRestoresCursor(t *testing.T) {
	out := &syncBuffer{}
	fc := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	cfg, err := NewConfig(WithOutput(out), WithClock(fc), WithTimezone(-5))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	fc.BlockUntil(1)
	block, err := art.ComposeString("07:00:00", cfg.Font)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), block[0])
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	s := out.String()
	assert.True(t, strings.HasPrefix(s, term.HideCursor+term.Clear+term.Home))
	assert.True(t, strings.HasSuffix(s, term.ShowCursor))
}

// TestRunTimeSourceUnavailable tests the startup clock check.
func TestRunTimeSourceUnavailable(t *testing.T) {
	out := &syncBuffer{}
	fc := clockwork.NewFakeClockAt(time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC))

	cfg, err := NewConfig(WithOutput(out), WithClock(fc))
	require.NoError(t, err)

	err = Run(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrTimeSource)
	assert.Empty(t, out.String())
}

// TestNewLogger tests the no-op and file loggers.
func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	path := filepath.Join(t.TempDir(), "clock.log")
	logger, err = NewLogger(path, true)
	require.NoError(t, err)
	logger.Debug("tick")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"tick"`)
}

// TestNewLoggerBadPath tests that an unwritable log path is a config error.
func TestNewLoggerBadPath(t *testing.T) {
	_, err := NewLogger(filepath.Join(t.TempDir(), "missing", "clock.log"), false)
	assert.ErrorIs(t, err, ErrConfig)
}
