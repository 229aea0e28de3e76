package blockclock

import (
	"errors"
	"fmt"

	"github.com/jeffnv/blockclock/internal/wallclock"
)

// Error classes for starting the clock. Use errors.Is to check the class.
//
//   - ErrConfig: bad flags or options, fix and restart
//   - ErrTimeSource: the system clock cannot be read
var (
	// ErrConfig indicates a configuration error that prevents startup.
	// Examples: unknown font, offset outside [-23,23], no output.
	ErrConfig = errors.New("configuration error")

	// ErrTimeSource indicates the clock cannot produce a usable reading.
	ErrTimeSource = wallclock.ErrTimeSource
)

func wrapConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrConfig, msg)
}

func wrapConfigf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
