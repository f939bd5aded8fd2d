package column

import (
	"math"

	"github.com/san-kum/ticker/internal/charlist"
)

// Column is one on-screen character slot moving from CurrentChar to
// TargetChar. Columns are values: every operation returns a new Column and
// leaves the receiver untouched. CharList is shared and must not be modified.
type Column struct {
	CurrentChar rune
	TargetChar  rune

	// CharList is the sequence the path indexes into. StartIndex and
	// EndIndex may point past its first alphabet copy, or past its end when
	// a Down deletion scrolls the glyph off.
	CharList   []rune
	StartIndex int
	EndIndex   int

	// Existence fractions in [0,1]. TargetWidth 0 marks a deletion.
	SourceWidth  float64
	CurrentWidth float64
	TargetWidth  float64

	// DirectionAdj is +1 or -1, the sign of EndIndex-StartIndex.
	DirectionAdj int

	// PrevDelta is the row offset carried over from an interrupted
	// transition; CurrDelta is the offset captured mid-flight.
	PrevDelta float64
	CurrDelta float64
}

// Sample is the result of placing a column at a progress value.
type Sample struct {
	Column     Column
	GlyphIndex int
	RowOffset  float64
}

// Empty returns a column with no glyph and zero width.
func Empty() Column {
	return Column{
		CurrentChar:  charlist.Empty,
		TargetChar:   charlist.Empty,
		DirectionAdj: 1,
	}
}

// Retarget points the column at target. The first list that resolves both
// the current and the target character supplies the path; when none does the
// column cuts directly between the two glyphs.
func (c Column) Retarget(target rune, lists []*charlist.List, dir charlist.Direction) Column {
	c.TargetChar = target
	c.SourceWidth = c.CurrentWidth
	c.TargetWidth = 1
	if target == charlist.Empty {
		c.TargetWidth = 0
	}

	found := false
	for _, l := range lists {
		if l == nil {
			continue
		}
		if p, ok := l.Path(c.CurrentChar, target, dir); ok {
			c.CharList = l.Chars()
			c.StartIndex = p.Start
			c.EndIndex = p.End
			found = true
			break
		}
	}
	if !found {
		if c.CurrentChar == target {
			c.CharList = []rune{c.CurrentChar}
			c.StartIndex, c.EndIndex = 0, 0
		} else {
			c.CharList = []rune{c.CurrentChar, target}
			c.StartIndex, c.EndIndex = 0, 1
		}
	}

	c.DirectionAdj = 1
	if c.EndIndex < c.StartIndex {
		c.DirectionAdj = -1
	}
	c.PrevDelta = c.CurrDelta
	c.CurrDelta = 0
	return c
}

// Sample places the column at an eased progress. Values outside [0,1] from
// overshooting easings are accepted.
//
// When interruption is set and the column is mid-flight, the glyph under
// the path and the current row offset are persisted so a following Retarget
// continues from where the column visibly is.
func (c Column) Sample(progress float64, interruption bool) Sample {
	total := c.EndIndex - c.StartIndex
	if total < 0 {
		total = -total
	}
	pos := progress * float64(total)
	whole := math.Floor(pos)
	fraction := pos - whole
	carry := c.PrevDelta * (1 - progress)
	offset := fraction*float64(c.DirectionAdj) + carry
	glyphIndex := c.StartIndex + int(whole)*c.DirectionAdj

	if progress >= 1 {
		c.CurrentChar = c.TargetChar
		c.CurrDelta = 0
		c.PrevDelta = 0
	} else if interruption && glyphIndex >= 0 && glyphIndex < len(c.CharList) {
		c.CurrentChar = c.CharList[glyphIndex]
		c.CurrDelta = offset
	}

	c.CurrentWidth = c.WidthAt(progress)
	return Sample{Column: c, GlyphIndex: glyphIndex, RowOffset: offset}
}

// WidthAt is the existence width at progress.
func (c Column) WidthAt(progress float64) float64 {
	return c.SourceWidth + (c.TargetWidth-c.SourceWidth)*progress
}

// Glyph returns the character at index i of the column's list.
func (c Column) Glyph(i int) (rune, bool) {
	if i < 0 || i >= len(c.CharList) {
		return charlist.Empty, false
	}
	return c.CharList[i], true
}

// Idle reports whether the column has nothing left to animate.
func (c Column) Idle() bool {
	return c.CurrentChar == c.TargetChar && c.CurrentWidth == c.TargetWidth
}

// Inserting reports whether the column grows from nothing.
func (c Column) Inserting() bool { return c.SourceWidth == 0 && c.TargetWidth > 0 }

// Deleting reports whether the column shrinks to nothing.
func (c Column) Deleting() bool { return c.TargetWidth == 0 && c.SourceWidth > 0 }

// Opacity fades inserted columns in and deleted columns out.
func (c Column) Opacity(progress float64) float64 {
	switch {
	case c.Deleting():
		return 1 - progress
	case c.Inserting():
		return progress
	}
	return 1
}
