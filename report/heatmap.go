package report

import (
	"strings"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// heatRamp shades expanded cells from first to last expanded.
var heatRamp = []rune{'░', '▒', '▓', '█'}

// Glyphs used by Heatmap besides the ramp.
const (
	GlyphPath = '*'
	GlyphOpen = ' '
)

// Heatmap renders m after res as text, one line per row: walls '#', start
// 'S', goal 'G', path '*', expanded cells shaded light to dark by the order
// they were first expanded, and untouched open cells blank.
func Heatmap(m *maze.Maze, res *search.Metrics) string {
	o := NewOverlay(m, res)
	var sb strings.Builder
	sb.Grow(m.Height() * (m.Width()*3 + 1))
	for _, row := range o.Marks {
		for _, mk := range row {
			sb.WriteRune(o.Glyph(mk))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Glyph returns the text symbol Heatmap prints for mk.
func (o Overlay) Glyph(mk Mark) rune {
	switch mk.Kind {
	case MarkWall:
		return rune(maze.CellWall)
	case MarkStart:
		return rune(maze.CellStart)
	case MarkGoal:
		return rune(maze.CellGoal)
	case MarkPath:
		return GlyphPath
	case MarkExpanded:
		return heatRamp[o.Shade(mk.Rank, len(heatRamp))]
	}

	return GlyphOpen
}
