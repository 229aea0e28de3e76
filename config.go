package blockclock

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/refresh"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

// Config holds everything needed to run the clock.
type Config struct {
	// Timezone is the hour offset from UTC, in [-23,23].
	Timezone int

	// Center places the clock in the middle of the terminal.
	Center bool

	// Font is the selected glyph set. Resolved from FontID or FontName.
	Font *glyph.Font

	// FontID selects a font by index when FontName is empty.
	FontID int

	// FontName selects a font by name, or by index when it is numeric.
	FontName string

	// Interval is the polling interval of the refresh loop.
	Interval time.Duration

	// TUI runs the clock as a bubbletea program instead of the plain
	// ANSI loop.
	TUI bool

	// Output receives the frames. Defaults to stdout.
	Output io.Writer

	// Clock is the time source. Defaults to the real clock.
	Clock clockwork.Clock

	// Logger for structured logging.
	Logger *zap.Logger

	// Fonts is the registry fonts are resolved from.
	Fonts *glyph.Registry
}

// Option configures a Config.
type Option func(*Config) error

// NewConfig creates a Config with the given options and validates it.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Interval: refresh.DefaultInterval,
		Output:   os.Stdout,
		Clock:    clockwork.NewRealClock(),
		Logger:   zap.NewNop(),
		Fonts:    glyph.Default,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !wallclock.ValidOffset(c.Timezone) {
		return wrapConfigf("timezone offset %d outside [-%d,%d]", c.Timezone, wallclock.MaxOffset, wallclock.MaxOffset)
	}
	if c.Interval <= 0 {
		return wrapConfigf("refresh interval must be positive, got %s", c.Interval)
	}
	if c.Interval > time.Second {
		return wrapConfigf("refresh interval %s is longer than a second", c.Interval)
	}
	if c.Output == nil {
		return wrapConfig("output is required")
	}
	if c.Clock == nil {
		return wrapConfig("clock is required")
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Fonts == nil {
		return wrapConfig("font registry is required")
	}

	f, err := c.resolveFont()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	c.Font = f
	return nil
}

func (c *Config) resolveFont() (*glyph.Font, error) {
	if c.FontName == "" {
		return c.Fonts.Font(c.FontID)
	}
	if id, err := strconv.Atoi(c.FontName); err == nil {
		return c.Fonts.Font(id)
	}
	return c.Fonts.ByName(c.FontName)
}

// WithTimezone sets the hour offset from UTC.
func WithTimezone(offset int) Option {
	return func(c *Config) error {
		c.Timezone = offset
		return nil
	}
}

// WithCenter enables centering.
func WithCenter(center bool) Option {
	return func(c *Config) error {
		c.Center = center
		return nil
	}
}

// WithFont selects a font by index.
func WithFont(id int) Option {
	return func(c *Config) error {
		c.FontID = id
		c.FontName = ""
		return nil
	}
}

// WithFontName selects a font by name or numeric index.
func WithFontName(name string) Option {
	return func(c *Config) error {
		c.FontName = name
		return nil
	}
}

// WithInterval sets the refresh loop polling interval.
func WithInterval(d time.Duration) Option {
	return func(c *Config) error {
		c.Interval = d
		return nil
	}
}

// WithTUI selects the bubbletea runtime.
func WithTUI(tui bool) Option {
	return func(c *Config) error {
		c.TUI = tui
		return nil
	}
}

// WithOutput sets where frames are written.
func WithOutput(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return wrapConfig("output cannot be nil")
		}
		c.Output = w
		return nil
	}
}

// WithClock sets the time source.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) error {
		if clock == nil {
			return wrapConfig("clock cannot be nil")
		}
		c.Clock = clock
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return wrapConfig("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithFonts sets the registry fonts are resolved from.
func WithFonts(r *glyph.Registry) Option {
	return func(c *Config) error {
		if r == nil {
			return wrapConfig("font registry cannot be nil")
		}
		c.Fonts = r
		return nil
	}
}
