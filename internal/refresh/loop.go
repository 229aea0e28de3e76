// Package refresh keeps the clock on screen in sync with the time.
//
// The loop polls at a short interval and repaints only when the displayed
// second changes. All loop state is carried in a State value passed from one
// tick to the next.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jeffnv/blockclock/internal/art"
	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/layout"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

// DefaultInterval is the polling interval between ticks.
const DefaultInterval = 50 * time.Millisecond

// Screen is the terminal the loop paints on.
type Screen interface {
	Setup() error
	Restore() error
	Home() error
	Clear() error
	Size() (layout.Size, error)
	WriteFrame(layout.Frame) error
}

// State is what the loop remembers between ticks.
type State struct {
	// Second is the seconds field of the frame on screen, -1 before the
	// first paint.
	Second int

	// Size is the viewport the frame on screen was laid out for.
	Size     layout.Size
	Degraded bool
}

// Initial is the state before anything has been painted.
func Initial() State {
	return State{Second: -1}
}

// Loop repaints a Screen once per second.
type Loop struct {
	Screen   Screen
	Sampler  *wallclock.Sampler
	Font     *glyph.Font
	Center   bool
	Interval time.Duration
	Clock    clockwork.Clock
	Logger   *zap.Logger
}

// Render composes wc and lays it out for size.
func Render(wc wallclock.WallClock, font *glyph.Font, center bool, size layout.Size) (layout.Frame, error) {
	block, err := art.Compose(wc, font)
	if err != nil {
		return layout.Frame{}, err
	}
	return layout.Layout(block, center, size), nil
}

func (l *Loop) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Step runs one tick. It returns the new state and whether it repainted.
// A failed repaint leaves st unchanged so the next tick tries again.
func (l *Loop) Step(st State) (State, bool) {
	wc := l.Sampler.Sample()
	if wc.Seconds == st.Second {
		return st, false
	}
	log := l.logger()

	var size layout.Size
	if l.Center {
		s, err := l.Screen.Size()
		if err != nil {
			log.Warn("skipping repaint", zap.String("time", wc.String()), zap.Error(err))
			return st, false
		}
		size = s
	}

	frame, err := Render(wc, l.Font, l.Center, size)
	if err != nil {
		log.Warn("skipping repaint", zap.String("time", wc.String()), zap.Error(err))
		return st, false
	}

	if st.Second >= 0 && size != st.Size {
		if err := l.Screen.Clear(); err != nil {
			log.Warn("clear screen", zap.Error(err))
			return st, false
		}
	}
	if err := l.Screen.Home(); err != nil {
		log.Warn("home cursor", zap.Error(err))
		return st, false
	}
	if err := l.Screen.WriteFrame(frame); err != nil {
		log.Warn("write frame", zap.Error(err))
		return st, false
	}

	if frame.Degraded && (!st.Degraded || size != st.Size) {
		log.Info("terminal too small for clock",
			zap.Int("rows", size.Rows),
			zap.Int("cols", size.Cols),
			zap.String("font", l.Font.Name))
	}

	return State{Second: wc.Seconds, Size: size, Degraded: frame.Degraded}, true
}

// Run prepares the screen and ticks until ctx is done. The cursor is
// restored on every return path.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.Screen.Setup(); err != nil {
		return fmt.Errorf("setup terminal: %w", err)
	}
	defer func() {
		if rerr := l.Screen.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()

	clock := l.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	l.logger().Debug("refresh loop started",
		zap.Duration("interval", interval),
		zap.Bool("center", l.Center),
		zap.String("font", l.Font.Name),
		zap.Int("offset", l.Sampler.Offset()))

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	st, _ := l.Step(Initial())
	for {
		select {
		case <-ctx.Done():
			l.logger().Debug("refresh loop stopped", zap.Error(ctx.Err()))
			return nil
		case <-ticker.Chan():
			st, _ = l.Step(st)
		}
	}
}
