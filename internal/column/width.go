package column

// Em sizes used by renderers.
const (
	CharHeight     = 1.2
	FullWidthRatio = 1.25
	HalfWidthRatio = 0.75
)

// IsFullWidth reports whether r renders at full width: CJK punctuation and
// ideographs, Hangul syllables, fullwidth forms and the emoji block.
func IsFullWidth(r rune) bool {
	return (r >= 0x3000 && r <= 0x9FFF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF) ||
		(r >= 0x1F300 && r <= 0x1FAFF)
}

// BaseWidth is the em width of r before scaling.
func BaseWidth(r rune) float64 {
	if IsFullWidth(r) {
		return FullWidthRatio
	}
	return HalfWidthRatio
}

// RenderWidth interpolates the width class of the path's start and end
// glyphs, then scales it by the existence width and scale.
func (c Column) RenderWidth(progress, scale float64) float64 {
	start, _ := c.Glyph(c.StartIndex)
	end, _ := c.Glyph(c.EndIndex)
	w1, w2 := BaseWidth(start), BaseWidth(end)
	base := w1 + (w2-w1)*progress
	return c.WidthAt(progress) * base * scale
}
