// Package render draws a finished maze, and optionally its solution
// path, as a PNG image. The maze itself satisfies image.Image; start and
// end markers are composed on top with arrow glyphs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/mazeforge/mazeforge/maze"
)

// The number of pixels across, in a square cell. Must be at least 5.
const cellPixels = 9

var (
	wallColor  = color.RGBA{A: 255}
	openColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pathColor  = color.RGBA{R: 120, G: 200, B: 120, A: 255}
	startColor = color.RGBA{R: 60, G: 60, B: 220, A: 255}
	endColor   = color.RGBA{R: 220, G: 60, B: 60, A: 255}
)

// MazeImage renders a grid as an image. Wall lines are one pixel wide;
// cells on the solution path get a highlight fill.
type MazeImage struct {
	g      *maze.Grid
	onPath map[maze.CellPosition]bool
	start  maze.CellPosition
	end    maze.CellPosition
	marked bool
}

// NewMazeImage wraps the grid for drawing. path may be nil for an
// unsolved maze; otherwise its first and last cells become the start and
// end markers.
func NewMazeImage(g *maze.Grid, path []maze.CellPosition) *MazeImage {
	m := &MazeImage{g: g, onPath: make(map[maze.CellPosition]bool)}
	if len(path) > 0 {
		for _, p := range path {
			m.onPath[p] = true
		}
		m.start = path[0]
		m.end = path[len(path)-1]
		m.marked = true
	}
	return m
}

func (m *MazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *MazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Width*cellPixels+1, m.g.Height*cellPixels+1)
}

func (m *MazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}

	onVertical := x%cellPixels == 0
	onHorizontal := y%cellPixels == 0
	row, col := y/cellPixels, x/cellPixels

	switch {
	case onVertical && onHorizontal:
		return wallColor
	case onHorizontal:
		// Wall above cell (row, col); the grid boundary is always drawn.
		if row == 0 || row == m.g.Height {
			return wallColor
		}
		if m.g.Cells[row][col].NorthWall {
			return wallColor
		}
		return openColor
	case onVertical:
		if col == 0 || col == m.g.Width {
			return wallColor
		}
		if m.g.Cells[row][col].WestWall {
			return wallColor
		}
		return openColor
	}

	pos := maze.CellPosition{Row: row, Col: col}
	if m.onPath[pos] {
		return pathColor
	}
	return openColor
}

// arrowAt returns the top-left point for a marker glyph centered in the
// given cell.
func arrowAt(pos maze.CellPosition) image.Point {
	margin := (cellPixels - arrowPixels) / 2
	return image.Pt(pos.Col*cellPixels+1+margin, pos.Row*cellPixels+1+margin)
}

const arrowPixels = cellPixels - 3

// WritePNG composes the maze with its start and end markers and encodes
// the result.
func (m *MazeImage) WritePNG(w io.Writer) error {
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(m, image.Pt(0, 0)); err != nil {
		return fmt.Errorf("error setting base maze image: %w", err)
	}

	if m.marked {
		startArrow := image_utils.ResizeImage(image_utils.DownArrow(startColor), arrowPixels, arrowPixels)
		endArrow := image_utils.ResizeImage(image_utils.UpArrow(endColor), arrowPixels, arrowPixels)
		if err := composite.AddImage(startArrow, arrowAt(m.start)); err != nil {
			return fmt.Errorf("error adding start marker: %w", err)
		}
		if err := composite.AddImage(endArrow, arrowAt(m.end)); err != nil {
			return fmt.Errorf("error adding end marker: %w", err)
		}
	}

	return png.Encode(w, image_utils.ToRGBA(composite))
}

// SavePNG writes the maze image to a file.
func SavePNG(filename string, g *maze.Grid, path []maze.CellPosition) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return NewMazeImage(g, path).WritePNG(f)
}
