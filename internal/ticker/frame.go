package ticker

import (
	"strings"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/column"
)

// Cell is the render data of one live column.
type Cell struct {
	// Glyph sits at Offset rows below its resting position; Next is one
	// row above it and Prev one row below. Empty means nothing to draw.
	Glyph rune
	Next  rune
	Prev  rune
	Index int

	Offset float64
	// Width is the rendered width in em.
	Width float64
	// Presence is the existence fraction.
	Presence float64
	Opacity  float64

	col column.Column
}

// GlyphAt returns the character at index i of the cell's path, or Empty.
func (c Cell) GlyphAt(i int) rune {
	g, _ := c.col.Glyph(i)
	return g
}

// Frame is everything a renderer needs for one animation frame.
type Frame struct {
	Prefix   string
	Suffix   string
	Text     string
	Progress float64
	Cells    []Cell
}

// Glyphs returns the resting glyph of every cell.
func (f Frame) Glyphs() string {
	var sb strings.Builder
	for _, c := range f.Cells {
		if c.Glyph != charlist.Empty {
			sb.WriteRune(c.Glyph)
		}
	}
	return sb.String()
}

// Width sums the rendered width of every cell in em.
func (f Frame) Width() float64 {
	w := 0.0
	for _, c := range f.Cells {
		w += c.Width
	}
	return w
}

// Frame renders the columns at the current progress.
func (t *Ticker) Frame() Frame {
	f := Frame{
		Prefix:   t.opts.Prefix,
		Suffix:   t.opts.Suffix,
		Text:     t.opts.Prefix + t.value + t.opts.Suffix,
		Progress: t.progress,
		Cells:    make([]Cell, 0, len(t.columns)),
	}

	for _, c := range t.columns {
		presence := c.WidthAt(t.progress)
		if presence <= 0 {
			continue
		}
		s := c.Sample(t.progress, false)
		glyph, _ := c.Glyph(s.GlyphIndex)
		next, _ := c.Glyph(s.GlyphIndex + 1)
		prev, _ := c.Glyph(s.GlyphIndex - 1)
		f.Cells = append(f.Cells, Cell{
			Glyph:    glyph,
			Next:     next,
			Prev:     prev,
			Index:    s.GlyphIndex,
			Offset:   s.RowOffset,
			Width:    c.RenderWidth(t.progress, t.opts.CharWidth),
			Presence: presence,
			Opacity:  c.Opacity(t.progress),
			col:      c,
		})
	}
	return f
}
