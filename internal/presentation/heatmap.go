package presentation

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/report"
	"github.com/katalvlaran/mazesearch/search"
)

// Heatmap renders the text heat-map of m after res with each glyph
// coloured like the PNG heat-map. With the Ascii profile it equals
// report.Heatmap.
func Heatmap(p termenv.Profile, m *maze.Maze, res *search.Metrics) string {
	o := report.NewOverlay(m, res)
	var sb strings.Builder
	for _, row := range o.Marks {
		for _, mk := range row {
			glyph := string(o.Glyph(mk))
			if mk.Kind == report.MarkOpen {
				sb.WriteString(glyph)
				continue
			}
			fg := o.Fill(mk)
			if mk.Kind == report.MarkPath {
				fg = report.ColorPath
			}
			sb.WriteString(p.String(glyph).Foreground(p.Color(hex(fg))).String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
