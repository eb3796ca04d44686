package report

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// MaxPixels bounds the area of a rendered heat-map.
const MaxPixels = 1 << 24

// ErrImageTooLarge is returned when a heat-map would exceed MaxPixels.
var ErrImageTooLarge = errors.New("report: heat-map image too large")

// DefaultCellSize is the PNG cell edge in pixels when WritePNG gets cellSize <= 0.
const DefaultCellSize = 16

// Palette of the PNG heat-map.
var (
	ColorWall  = color.RGBA{A: 0xff}
	ColorOpen  = color.RGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}
	ColorGrid  = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	ColorPath  = color.RGBA{R: 0xe0, G: 0x1b, B: 0x1b, A: 0xff}
	ColorStart = color.RGBA{G: 0xff, A: 0xff}
	ColorGoal  = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}

	// expanded cells are interpolated from heatLight to heatDark
	heatLight = color.RGBA{R: 0xed, G: 0xf8, B: 0xb1, A: 0xff}
	heatDark  = color.RGBA{R: 0x08, G: 0x1d, B: 0x58, A: 0xff}
)

// HeatColor returns the colour of the cell expanded at rank out of ranked
// distinct expansions.
func HeatColor(rank, ranked int) color.RGBA {
	if ranked <= 1 || rank <= 0 {
		return heatLight
	}
	if rank >= ranked-1 {
		return heatDark
	}
	t := float64(rank) / float64(ranked-1)
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }

	return color.RGBA{
		R: lerp(heatLight.R, heatDark.R),
		G: lerp(heatLight.G, heatDark.G),
		B: lerp(heatLight.B, heatDark.B),
		A: 0xff,
	}
}

// Pixels returns the pixel count of the heat-map of m at cellSize
// (DefaultCellSize when cellSize <= 0), saturating at math.MaxInt64.
func Pixels(m *maze.Maze, cellSize int) int64 {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if cellSize > MaxPixels {
		return math.MaxInt64
	}
	w := int64(m.Width()) * int64(cellSize)
	h := int64(m.Height()) * int64(cellSize)
	if w != 0 && h > math.MaxInt64/w {
		return math.MaxInt64
	}

	return w * h
}

// Render draws the heat-map of m after res. Path cells keep their heat
// colour and get a red inset; start and goal fill their whole cell.
// Fails with ErrImageTooLarge above MaxPixels.
func Render(m *maze.Maze, res *search.Metrics, cellSize int) (*image.RGBA, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if px := Pixels(m, cellSize); px > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d cells at %dpx is %d pixels, limit %d",
			ErrImageTooLarge, m.Height(), m.Width(), cellSize, px, MaxPixels)
	}
	o := NewOverlay(m, res)
	img := image.NewRGBA(image.Rect(0, 0, m.Width()*cellSize, m.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(ColorGrid), image.Point{}, draw.Src)

	inset := cellSize / 4
	for r, row := range o.Marks {
		for c, mk := range row {
			cell := image.Rect(c*cellSize, r*cellSize, (c+1)*cellSize, (r+1)*cellSize)
			inner := cell
			if cellSize > 2 {
				// leave a 1px grid line on the right and bottom edges
				inner.Max = inner.Max.Sub(image.Pt(1, 1))
			}
			draw.Draw(img, inner, image.NewUniform(o.Fill(mk)), image.Point{}, draw.Src)
			if mk.Kind == MarkPath {
				dot := image.Rect(inner.Min.X+inset, inner.Min.Y+inset, inner.Max.X-inset, inner.Max.Y-inset)
				draw.Draw(img, dot, image.NewUniform(ColorPath), image.Point{}, draw.Src)
			}
		}
	}

	return img, nil
}

// Fill returns the colour Render paints for mk, ignoring the path inset.
func (o Overlay) Fill(mk Mark) color.RGBA {
	switch mk.Kind {
	case MarkWall:
		return ColorWall
	case MarkStart:
		return ColorStart
	case MarkGoal:
		return ColorGoal
	}
	if mk.Rank >= 0 {
		return HeatColor(mk.Rank, o.Ranked)
	}

	return ColorOpen
}

// WritePNG encodes the heat-map of m after res to w.
func WritePNG(w io.Writer, m *maze.Maze, res *search.Metrics, cellSize int) error {
	img, err := Render(m, res, cellSize)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
