// Package tui hosts the clock as a bubbletea program.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeffnv/blockclock/internal/glyph"
	"github.com/jeffnv/blockclock/internal/layout"
	"github.com/jeffnv/blockclock/internal/refresh"
	"github.com/jeffnv/blockclock/internal/wallclock"
)

type tickMsg time.Time

// Model is the bubbletea model for the clock. The view is recomputed only
// when the displayed second or the window size changes.
type Model struct {
	sampler  *wallclock.Sampler
	font     *glyph.Font
	center   bool
	interval time.Duration
	log      *zap.Logger

	size   layout.Size
	second int
	view   string
}

func New(sampler *wallclock.Sampler, font *glyph.Font, center bool, interval time.Duration, log *zap.Logger) Model {
	if interval <= 0 {
		interval = refresh.DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		sampler:  sampler,
		font:     font,
		center:   center,
		interval: interval,
		log:      log,
		second:   -1,
	}
}

func doTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return doTick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.size = layout.Size{Rows: msg.Height, Cols: msg.Width}
		m.second = -1
		return m.refresh(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m.refresh(), doTick(m.interval)
	}

	return m, nil
}

func (m Model) refresh() Model {
	wc := m.sampler.Sample()
	if wc.Seconds == m.second {
		return m
	}
	frame, err := refresh.Render(wc, m.font, m.center, m.size)
	if err != nil {
		m.log.Warn("skipping repaint", zap.String("time", wc.String()), zap.Error(err))
		return m
	}
	m.view = strings.TrimSuffix(frame.String(), "\n")
	m.second = wc.Seconds
	return m
}

func (m Model) View() string {
	return m.view
}
