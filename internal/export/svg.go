package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/column"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/ticker"
)

type SVGOptions struct {
	FontSize   float64
	FontFamily string
	Foreground string
	Background string
	// AffixColor is used for prefix and suffix. Defaults to Foreground.
	AffixColor string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		FontSize:   48,
		FontFamily: "monospace",
		Foreground: "#00ff88",
		Background: "#0a0a0a",
	}
}

// FrameToSVG draws one frame. Every cell is a clipped box one line high and
// Width em wide; its glyph sits Offset lines below the baseline with the next
// glyph one line above and the previous one below.
func FrameToSVG(f ticker.Frame, opts SVGOptions) string {
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultSVGOptions().FontSize
	}
	if opts.AffixColor == "" {
		opts.AffixColor = opts.Foreground
	}
	em := opts.FontSize
	line := column.CharHeight * em
	baseline := line/2 + em*0.35

	prefixW := affixWidth(f.Prefix) * em
	suffixW := affixWidth(f.Suffix) * em
	width := prefixW + f.Width()*em + suffixW

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f" font-family="%s" font-size="%.1f">
<title>%s</title>
<rect width="100%%" height="100%%" fill="%s"/>
`, width, line, width, line, html.EscapeString(opts.FontFamily), em, html.EscapeString(f.Text), opts.Background))

	if f.Prefix != "" {
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.1f" fill="%s">%s</text>
`, baseline, opts.AffixColor, html.EscapeString(f.Prefix)))
	}

	x := prefixW
	for _, c := range f.Cells {
		w := c.Width * em
		sb.WriteString(fmt.Sprintf(`<svg x="%.1f" y="0" width="%.1f" height="%.1f" overflow="hidden">
<g fill="%s" opacity="%.3f" text-anchor="middle">
`, x, w, line, opts.Foreground, clamp01(c.Opacity)))
		y := baseline + c.Offset*line
		writeGlyph(&sb, c.Next, w/2, y-line)
		writeGlyph(&sb, c.Glyph, w/2, y)
		writeGlyph(&sb, c.Prev, w/2, y+line)
		sb.WriteString("</g>\n</svg>\n")
		x += w
	}

	if f.Suffix != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, baseline, opts.AffixColor, html.EscapeString(f.Suffix)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeGlyph(sb *strings.Builder, r rune, x, y float64) {
	if r == charlist.Empty {
		return
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, x, y, html.EscapeString(string(r))))
}

// affixWidth estimates the width of plain text in em from terminal cell
// widths, which agree with the full and half width classes.
func affixWidth(s string) float64 {
	w := 0.0
	for _, r := range s {
		if runewidth.RuneWidth(r) == 2 {
			w += column.FullWidthRatio
		} else {
			w += column.HalfWidthRatio
		}
	}
	return w
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// EasingToSVG plots an easing curve over [0, 1]. Overshooting curves are
// scaled to stay inside the box.
func EasingToSVG(fn easing.Func, width, height int, strokeColor string) string {
	values := easing.Sample(fn, width)
	if len(values) < 2 {
		return ""
	}

	lo, hi := 0.0, 1.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
