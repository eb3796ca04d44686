package presentation

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/report"
	"github.com/katalvlaran/mazesearch/search"
)

func solvedMaze(t *testing.T) (*maze.Maze, *search.Metrics) {
	t.Helper()
	m, err := maze.ParseString("S..\n.#.\n..G")
	require.NoError(t, err)
	res, err := search.BFS(m)
	require.NoError(t, err)

	return m, res
}

func TestHeatmap_AsciiMatchesReport(t *testing.T) {
	m, res := solvedMaze(t)
	assert.Equal(t, report.Heatmap(m, res), Heatmap(termenv.Ascii, m, res))
}

func TestHeatmap_TrueColor(t *testing.T) {
	m, res := solvedMaze(t)
	out := Heatmap(termenv.TrueColor, m, res)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "38;2;224;27;27", "path glyphs use the path colour")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#e01b1b", hex(report.ColorPath))
	assert.Equal(t, "#000000", hex(color.RGBA{A: 0xff}))
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer(80)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Markdown(&buf, []*search.Metrics{{Algorithm: search.BreadthFirst, Name: "BFS", Success: true, Path: []maze.Position{}}}))
	out, err := render(buf.String())
	require.NoError(t, err)
	assert.Contains(t, out, "BFS")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
