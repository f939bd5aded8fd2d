package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/ticker"
)

// Rows is the number of terminal lines a frame occupies. The middle line is
// the resting position; the others show the neighbours scrolling past.
const Rows = 3

// FadeThreshold is the opacity below which a cell is drawn faint.
const FadeThreshold = 0.5

// Grid is a frame rasterized into terminal cells, one string per column and
// row, before styling.
type Grid struct {
	Cells   [][Rows]string
	Opacity []float64
}

// Rasterize places the glyphs of every cell on the row they are closest to.
func Rasterize(f ticker.Frame) Grid {
	g := Grid{
		Cells:   make([][Rows]string, 0, len(f.Cells)),
		Opacity: make([]float64, 0, len(f.Cells)),
	}

	for _, c := range f.Cells {
		var glyphs [Rows]rune
		width := 0
		shift := int(math.Round(c.Offset))
		for row := 0; row < Rows; row++ {
			r := c.GlyphAt(c.Index + shift - (row - Rows/2))
			glyphs[row] = r
			if r != charlist.Empty {
				width = max(width, runewidth.RuneWidth(r))
			}
		}
		if width == 0 {
			if c.Presence < 0.5 {
				continue
			}
			width = 1
		}

		var col [Rows]string
		for row, r := range glyphs {
			s := ""
			if r != charlist.Empty {
				s = string(r)
			}
			col[row] = runewidth.FillRight(s, width)
		}
		g.Cells = append(g.Cells, col)
		g.Opacity = append(g.Opacity, c.Opacity)
	}
	return g
}

// Lines joins the grid into plain text rows.
func (g Grid) Lines() [Rows]string {
	var out [Rows]string
	for row := range out {
		var sb strings.Builder
		for _, col := range g.Cells {
			sb.WriteString(col[row])
		}
		out[row] = sb.String()
	}
	return out
}

// Render draws a frame in the given theme, with prefix and suffix on the
// resting row.
func Render(f ticker.Frame, th Theme) string {
	g := Rasterize(f)

	center := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	edge := lipgloss.NewStyle().Foreground(th.Muted)
	affix := lipgloss.NewStyle().Foreground(th.Secondary)

	prefixW := runewidth.StringWidth(f.Prefix)
	lines := make([]string, Rows)
	for row := 0; row < Rows; row++ {
		var sb strings.Builder
		if row == Rows/2 {
			sb.WriteString(affix.Render(f.Prefix))
		} else {
			sb.WriteString(strings.Repeat(" ", prefixW))
		}
		for i, col := range g.Cells {
			st := edge
			if row == Rows/2 {
				st = center
			}
			if g.Opacity[i] < FadeThreshold {
				st = st.Faint(true)
			}
			sb.WriteString(st.Render(col[row]))
		}
		if row == Rows/2 {
			sb.WriteString(affix.Render(f.Suffix))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}
