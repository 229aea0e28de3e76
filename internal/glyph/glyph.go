// Package glyph holds the font registry used to draw the clock.
//
// A font is a fixed set of eleven glyphs: the digits 0-9 followed by the
// time separator. Fonts are validated once when they are registered and are
// never mutated afterwards, so lookups need no locking.
package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator is the index of the separator glyph within a font.
const Separator = 10

// Count is the number of glyphs every font must provide.
const Count = 11

var (
	// ErrUnknownFont is returned for a font id or name that is not registered.
	ErrUnknownFont = errors.New("unknown font")

	// ErrInvalidSymbol is returned when a rune cannot be mapped to a glyph.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrMalformedFont is returned when a font breaks the row count or
	// row width rules.
	ErrMalformedFont = errors.New("malformed font")
)

// Glyph is one symbol drawn as equal-width text rows.
type Glyph []string

// Width returns the display width of the glyph's rows.
func (g Glyph) Width() int {
	if len(g) == 0 {
		return 0
	}
	return lipgloss.Width(g[0])
}

// Font is an immutable glyph set.
type Font struct {
	ID     int
	Name   string
	Height int

	glyphs [Count]Glyph
}

// Digit returns the glyph for d, folding any value into 0-9.
func (f *Font) Digit(d int) Glyph {
	d %= 10
	if d < 0 {
		d += 10
	}
	return f.glyphs[d]
}

// Sep returns the separator glyph.
func (f *Font) Sep() Glyph {
	return f.glyphs[Separator]
}

// Symbol maps a rune of a formatted time to its glyph.
func (f *Font) Symbol(r rune) (Glyph, error) {
	switch {
	case r >= '0' && r <= '9':
		return f.glyphs[r-'0'], nil
	case r == ':':
		return f.glyphs[Separator], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
}

// DigitWidth returns the shared width of the digit glyphs.
func (f *Font) DigitWidth() int {
	return f.glyphs[0].Width()
}

// NewFont builds a font from its glyphs and validates it.
func NewFont(name string, glyphs []Glyph) (*Font, error) {
	if len(glyphs) != Count {
		return nil, fmt.Errorf("%w: %s has %d glyphs, want %d", ErrMalformedFont, name, len(glyphs), Count)
	}

	f := &Font{Name: name, Height: len(glyphs[0])}
	if f.Height == 0 {
		return nil, fmt.Errorf("%w: %s has empty glyphs", ErrMalformedFont, name)
	}

	digitWidth := glyphs[0].Width()
	for i, g := range glyphs {
		if len(g) != f.Height {
			return nil, fmt.Errorf("%w: %s glyph %d has %d rows, want %d", ErrMalformedFont, name, i, len(g), f.Height)
		}
		w := g.Width()
		for row, s := range g {
			if lipgloss.Width(s) != w {
				return nil, fmt.Errorf("%w: %s glyph %d row %d is %d wide, want %d", ErrMalformedFont, name, i, row, lipgloss.Width(s), w)
			}
		}
		if i != Separator && w != digitWidth {
			return nil, fmt.Errorf("%w: %s digit %d is %d wide, want %d", ErrMalformedFont, name, i, w, digitWidth)
		}
		f.glyphs[i] = append(Glyph(nil), g...)
	}
	return f, nil
}

// Registry maps font ids to fonts. Ids are assigned in registration order.
type Registry struct {
	fonts []*Font
}

// Register validates and appends a font, returning its id.
func (r *Registry) Register(name string, glyphs []Glyph) (int, error) {
	if _, err := r.ByName(name); err == nil {
		return 0, fmt.Errorf("%w: duplicate font name %q", ErrMalformedFont, name)
	}
	f, err := NewFont(name, glyphs)
	if err != nil {
		return 0, err
	}
	f.ID = len(r.fonts)
	r.fonts = append(r.fonts, f)
	return f.ID, nil
}

// Font returns the font registered under id.
func (r *Registry) Font(id int) (*Font, error) {
	if id < 0 || id >= len(r.fonts) {
		return nil, fmt.Errorf("%w: id %d (have 0-%d)", ErrUnknownFont, id, len(r.fonts)-1)
	}
	return r.fonts[id], nil
}

// ByName looks a font up by name, ignoring case.
func (r *Registry) ByName(name string) (*Font, error) {
	for _, f := range r.fonts {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	return len(r.fonts)
}

// Fonts returns the registered fonts in id order.
func (r *Registry) Fonts() []*Font {
	return append([]*Font(nil), r.fonts...)
}
