/*
Package maze provides the data model for rectangular grid mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry a
wall flag per side. The wall between two adjacent cells is stored on both
of them and every mutation keeps the two flags consistent. Walls on the
grid boundary are permanent: mutation operations address pairs of in-bound
adjacent cells only.

Generation algorithms mutate a grid through BreakWall and BuildWall;
solvers read it through Passages and HasWall. Utility functions enable
neighbor enumeration and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions reports a grid constructed with a non-positive
	// width or height.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")

	// ErrInvalidAdjacency reports a wall operation on two cells that do not
	// share a wall. It indicates a bug in the calling algorithm.
	ErrInvalidAdjacency = errors.New("cells are not adjacent")
)

// Grid represents a rectangular maze consisting of cells with walls.
// Dimensions are fixed at construction.
type Grid struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Cells  [][]*Cell // 2D grid of cells forming the maze
}

// New initializes a fully-walled grid of the given dimensions. Every
// internal wall is present and all cells are isolated.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// Size returns the number of cells in the grid.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// InBounds reports whether the position addresses a cell of the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// At returns the cell at the given position. The position must be in
// bounds.
func (g *Grid) At(pos CellPosition) *Cell {
	return g.Cells[pos.Row][pos.Col]
}

// Index flattens a position to a single cell index in row-major order.
func (g *Grid) Index(pos CellPosition) int {
	return pos.Row*g.Width + pos.Col
}

// Position is the inverse of Index.
func (g *Grid) Position(index int) CellPosition {
	return CellPosition{Row: index / g.Width, Col: index % g.Width}
}

// Neighbors finds all in-bound moves from a given cell position,
// regardless of wall state. The result order follows Sides.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, s := range Sides {
		next := pos.Next(s)
		if g.InBounds(next) {
			result = append(result, Move{From: pos, To: next, Direction: s})
		}
	}
	return result
}

// Passages finds all moves from a given cell position whose connecting
// wall is down. The result order follows Sides.
func (g *Grid) Passages(pos CellPosition) []Move {
	var result []Move
	for _, s := range Sides {
		next := pos.Next(s)
		if g.InBounds(next) && !g.At(pos).HasWall(s) {
			result = append(result, Move{From: pos, To: next, Direction: s})
		}
	}
	return result
}

// HasWall reports whether there is a wall on the given side of the cell.
// Sides facing out of the grid always count as walls.
func (g *Grid) HasWall(pos CellPosition, s Side) bool {
	if !g.InBounds(pos.Next(s)) {
		return true
	}
	return g.At(pos).HasWall(s)
}

// adjacency returns the side pointing from a to b, or ErrInvalidAdjacency
// if the two positions do not share a wall.
func (g *Grid) adjacency(a, b CellPosition) (Side, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return "", fmt.Errorf("%w: %v and %v", ErrInvalidAdjacency, a, b)
	}
	for _, s := range Sides {
		if a.Next(s) == b {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %v and %v", ErrInvalidAdjacency, a, b)
}

// BreakWall removes the wall between two adjacent cells, clearing the flag
// on both of them. Breaking an already-open wall is a no-op.
func (g *Grid) BreakWall(a, b CellPosition) error {
	return g.setWall(a, b, false)
}

// BuildWall raises the wall between two adjacent cells, setting the flag
// on both of them. Building an already-present wall is a no-op.
func (g *Grid) BuildWall(a, b CellPosition) error {
	return g.setWall(a, b, true)
}

func (g *Grid) setWall(a, b CellPosition, present bool) error {
	s, err := g.adjacency(a, b)
	if err != nil {
		return err
	}
	g.At(a).SetWall(s, present)
	g.At(b).SetWall(s.Opposite(), present)
	return nil
}

// Clone returns an independent copy of the grid and its wall state.
func (g *Grid) Clone() *Grid {
	cells := make([][]*Cell, g.Height)
	for i := range cells {
		cells[i] = make([]*Cell, g.Width)
		for j := range cells[i] {
			c := *g.Cells[i][j]
			cells[i][j] = &c
		}
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// OpenInterior removes every internal wall, leaving only the grid
// boundary. Wall-building generators start from this state.
func (g *Grid) OpenInterior() {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if col+1 < g.Width {
				_ = g.BreakWall(pos, pos.Next(East))
			}
			if row+1 < g.Height {
				_ = g.BreakWall(pos, pos.Next(South))
			}
		}
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.Width) + "\n"

	for row := 0; row < g.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			cellRow += "   "
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
