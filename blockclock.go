// Package blockclock shows the time of day as large glyph art in a terminal.
//
// The clock is painted either by a plain ANSI refresh loop or, with the
// TUI option, by a bubbletea program. Both redraw only when the displayed
// second changes.
package blockclock

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeffnv/blockclock/internal/refresh"
	"github.com/jeffnv/blockclock/internal/term"
	"github.com/jeffnv/blockclock/internal/tui"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

// Run shows the clock until ctx is done. It returns ErrTimeSource when the
// clock cannot be read; a cancelled ctx is a normal shutdown and returns nil.
func Run(ctx context.Context, cfg *Config) error {
	if err := wallclock.Check(cfg.Clock); err != nil {
		return err
	}

	sampler := wallclock.NewSampler(cfg.Clock, cfg.Timezone)
	log := cfg.Logger.With(zap.String("font", cfg.Font.Name), zap.Int("timezone", cfg.Timezone))

	if cfg.TUI {
		return runTUI(ctx, cfg, sampler, log)
	}

	loop := &refresh.Loop{
		Screen:   term.New(cfg.Output),
		Sampler:  sampler,
		Font:     cfg.Font,
		Center:   cfg.Center,
		Interval: cfg.Interval,
		Clock:    cfg.Clock,
		Logger:   log,
	}
	return loop.Run(ctx)
}

func runTUI(ctx context.Context, cfg *Config, sampler *wallclock.Sampler, log *zap.Logger) error {
	m := tui.New(sampler, cfg.Font, cfg.Center, cfg.Interval, log)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(cfg.Output),
	)

	log.Debug("starting bubbletea program")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// NewLogger returns a no-op logger when path is empty, since stdout carries
// the clock. Otherwise it returns a JSON logger appending to path.
func NewLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: open log %s: %w", ErrConfig, path, err)
	}
	return logger, nil
}
