package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("starts fully walled", func(t *testing.T) {
		g, err := New(4, 3)
		assert.NoError(t, err)
		assert.Equal(t, 12, g.Size())
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				cell := g.Cells[row][col]
				assert.True(t, cell.NorthWall && cell.SouthWall && cell.EastWall && cell.WestWall)
			}
		}
	})
}

func TestBreakWall(t *testing.T) {
	g, err := New(3, 3)
	assert.NoError(t, err)

	t.Run("clears both flags", func(t *testing.T) {
		a := CellPosition{Row: 1, Col: 1}
		b := a.Next(East)
		assert.NoError(t, g.BreakWall(a, b))
		assert.False(t, g.At(a).EastWall)
		assert.False(t, g.At(b).WestWall)
	})

	t.Run("is idempotent", func(t *testing.T) {
		a := CellPosition{Row: 0, Col: 0}
		b := a.Next(South)
		assert.NoError(t, g.BreakWall(a, b))
		before := g.String()
		assert.NoError(t, g.BreakWall(a, b))
		assert.Equal(t, before, g.String())
	})

	t.Run("works in either argument order", func(t *testing.T) {
		a := CellPosition{Row: 2, Col: 1}
		b := a.Next(West)
		assert.NoError(t, g.BreakWall(b, a))
		assert.False(t, g.At(a).WestWall)
		assert.False(t, g.At(b).EastWall)
	})

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		cases := [][2]CellPosition{
			{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, // diagonal
			{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, // distance two
			{{Row: 1, Col: 1}, {Row: 1, Col: 1}}, // same cell
			{{Row: 0, Col: 0}, {Row: -1, Col: 0}}, // out of the grid
		}
		for _, c := range cases {
			assert.ErrorIs(t, g.BreakWall(c[0], c[1]), ErrInvalidAdjacency)
		}
	})
}

func TestBuildWall(t *testing.T) {
	g, err := New(3, 3)
	assert.NoError(t, err)
	a := CellPosition{Row: 1, Col: 0}
	b := a.Next(East)

	assert.NoError(t, g.BreakWall(a, b))
	assert.NoError(t, g.BuildWall(a, b))
	assert.True(t, g.At(a).EastWall)
	assert.True(t, g.At(b).WestWall)
}

func TestHasWall(t *testing.T) {
	g, err := New(2, 2)
	assert.NoError(t, err)

	t.Run("boundary sides always count as walls", func(t *testing.T) {
		assert.True(t, g.HasWall(CellPosition{Row: 0, Col: 0}, North))
		assert.True(t, g.HasWall(CellPosition{Row: 1, Col: 1}, South))
		assert.True(t, g.HasWall(CellPosition{Row: 0, Col: 0}, West))
		assert.True(t, g.HasWall(CellPosition{Row: 1, Col: 1}, East))
	})

	t.Run("tracks internal wall state", func(t *testing.T) {
		a := CellPosition{Row: 0, Col: 0}
		assert.True(t, g.HasWall(a, East))
		assert.NoError(t, g.BreakWall(a, a.Next(East)))
		assert.False(t, g.HasWall(a, East))
	})
}

func TestPassagesAndNeighbors(t *testing.T) {
	g, err := New(3, 3)
	assert.NoError(t, err)
	center := CellPosition{Row: 1, Col: 1}
	corner := CellPosition{Row: 0, Col: 0}

	assert.Len(t, g.Neighbors(center), 4)
	assert.Len(t, g.Neighbors(corner), 2)
	assert.Empty(t, g.Passages(center))

	assert.NoError(t, g.BreakWall(center, center.Next(North)))
	passages := g.Passages(center)
	assert.Len(t, passages, 1)
	assert.Equal(t, center.Next(North), passages[0].To)
}

func TestOpenInterior(t *testing.T) {
	g, err := New(4, 4)
	assert.NoError(t, err)
	g.OpenInterior()

	open := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if col+1 < g.Width && !g.HasWall(pos, East) {
				open++
			}
			if row+1 < g.Height && !g.HasWall(pos, South) {
				open++
			}
		}
	}
	// All 2*4*3 internal walls are down, the boundary stays up.
	assert.Equal(t, 24, open)
	assert.True(t, g.HasWall(CellPosition{Row: 0, Col: 0}, North))
}

func TestClone(t *testing.T) {
	g, err := New(2, 2)
	assert.NoError(t, err)
	a := CellPosition{Row: 0, Col: 0}
	assert.NoError(t, g.BreakWall(a, a.Next(East)))

	c := g.Clone()
	assert.Equal(t, g.String(), c.String())

	assert.NoError(t, c.BreakWall(a, a.Next(South)))
	assert.True(t, g.HasWall(a, South), "mutating the clone must not touch the original")
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := New(5, 3)
	assert.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.Position(i)))
	}
}

func TestString(t *testing.T) {
	g, err := New(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, "+---+\n|   |\n+---+\n", g.String())
}
