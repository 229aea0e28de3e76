// Package wallclock turns a clock reading and a fixed UTC hour offset into
// hours, minutes and seconds.
package wallclock

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
)

// MaxOffset bounds the accepted hour offset in both directions.
const MaxOffset = 23

// ErrTimeSource is returned when the clock cannot produce a usable reading.
var ErrTimeSource = errors.New("time source unavailable")

// WallClock is a normalized time of day.
type WallClock struct {
	Hours   int
	Minutes int
	Seconds int
}

// String formats the time as HH:MM:SS.
func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.Hours, w.Minutes, w.Seconds)
}

// Mod returns a modulo n in [0, n) for any sign of a.
func Mod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// ValidOffset reports whether offset is an accepted hour shift.
func ValidOffset(offset int) bool {
	return offset >= -MaxOffset && offset <= MaxOffset
}

// FromElapsed derives the time of day from whole seconds since the Unix
// epoch shifted by offset hours.
func FromElapsed(elapsed int64, offset int) WallClock {
	return WallClock{
		Hours:   int(Mod(elapsed/3600+int64(offset), 24)),
		Minutes: int(Mod(elapsed/60, 60)),
		Seconds: int(Mod(elapsed, 60)),
	}
}

// Sampler reads a clock and applies a fixed offset.
type Sampler struct {
	clock  clockwork.Clock
	offset int
}

// NewSampler returns a Sampler over clock. A nil clock uses real time.
func NewSampler(clock clockwork.Clock, offset int) *Sampler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Sampler{clock: clock, offset: offset}
}

// Offset returns the configured hour offset.
func (s *Sampler) Offset() int {
	return s.offset
}

// Sample returns the current time of day.
func (s *Sampler) Sample() WallClock {
	return FromElapsed(s.clock.Now().Unix(), s.offset)
}

// Check verifies that clock reports a time at or after the Unix epoch.
func Check(clock clockwork.Clock) error {
	if clock == nil {
		return fmt.Errorf("%w: no clock", ErrTimeSource)
	}
	if now := clock.Now(); now.Unix() < 0 {
		return fmt.Errorf("%w: clock reads %s, before the epoch", ErrTimeSource, now.UTC().Format("2006-01-02T15:04:05Z"))
	}
	return nil
}
