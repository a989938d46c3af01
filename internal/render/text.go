package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DefaultGlyphs are the plain-text cells for blank, state 0, 1 and 2.
var DefaultGlyphs = []string{" ", ".", "o", "@"}

// TextRenderer turns display cells into terminal lines, either as colored
// blocks or as glyphs.
type TextRenderer struct {
	cells []string
}

// NewANSI renders each cell as two spaces on a background from palette, so
// cells come out roughly square. A nil renderer uses lipgloss's default,
// which drops colors when the output is not a terminal.
func NewANSI(r *lipgloss.Renderer, palette []color.RGBA) *TextRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cells := make([]string, len(palette))
	for i, c := range palette {
		cells[i] = r.NewStyle().Background(lipgloss.Color(hexColor(c))).Render("  ")
	}
	return &TextRenderer{cells: cells}
}

// NewPlain renders cells with glyphs, one per display value. Glyphs are
// padded to the widest one so columns line up with mixed-width runes.
func NewPlain(glyphs []string) (*TextRenderer, error) {
	if len(glyphs) == 0 {
		glyphs = DefaultGlyphs
	}
	width := 0
	for _, g := range glyphs {
		w := runewidth.StringWidth(g)
		if w == 0 {
			return nil, fmt.Errorf("glyph %q has no visible width", g)
		}
		width = max(width, w)
	}
	cells := make([]string, len(glyphs))
	for i, g := range glyphs {
		cells[i] = runewidth.FillRight(g, width)
	}
	return &TextRenderer{cells: cells}, nil
}

// ParseGlyphs splits a comma separated glyph list.
func ParseGlyphs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Row renders one line of display values.
func (t *TextRenderer) Row(cells []uint8) string {
	var b strings.Builder
	t.writeRow(&b, cells)
	return b.String()
}

// Rows renders lines [from, to) of a grid w cells wide.
func (t *TextRenderer) Rows(cells []uint8, w, from, to int) string {
	var b strings.Builder
	for y := from; y < to; y++ {
		if y > from {
			b.WriteByte('\n')
		}
		t.writeRow(&b, cells[y*w:(y+1)*w])
	}
	return b.String()
}

func (t *TextRenderer) writeRow(b *strings.Builder, cells []uint8) {
	last := len(t.cells) - 1
	for _, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		b.WriteString(t.cells[idx])
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
