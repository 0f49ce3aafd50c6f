package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mazeforge/mazeforge/dsu"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// generate builds a grid, runs the given generator to completion, and
// returns the carved grid together with its recording.
func generate(t *testing.T, kind Kind, width, height int, seed int64) (*maze.Grid, *trace.Recording) {
	t.Helper()
	g, err := maze.New(width, height)
	assert.NoError(t, err)
	gen, err := New(kind, g, seed)
	assert.NoError(t, err)
	rec := trace.Capture(gen)
	assert.True(t, gen.IsDone())
	return g, rec
}

// openPassages counts internal walls that are down, scanning east and
// south once per cell so each passage is counted exactly once.
func openPassages(g *maze.Grid) int {
	n := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			if !g.HasWall(pos, maze.East) {
				n++
			}
			if !g.HasWall(pos, maze.South) {
				n++
			}
		}
	}
	return n
}

// connected reports whether every cell is reachable from the origin
// through open passages.
func connected(g *maze.Grid) bool {
	seen := make(map[maze.CellPosition]bool, g.Size())
	queue := []maze.CellPosition{{Row: 0, Col: 0}}
	seen[queue[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, m := range g.Passages(cur) {
			if !seen[m.To] {
				seen[m.To] = true
				queue = append(queue, m.To)
			}
		}
	}
	return len(seen) == g.Size()
}

func TestGeneratorsProducePerfectMazes(t *testing.T) {
	dims := [][2]int{{5, 5}, {8, 3}, {1, 6}, {6, 1}, {1, 1}, {2, 2}}
	for _, kind := range Kinds() {
		for _, d := range dims {
			width, height := d[0], d[1]
			t.Run(string(kind), func(t *testing.T) {
				g, _ := generate(t, kind, width, height, 7)
				assert.True(t, connected(g), "%s %dx%d must connect every cell", kind, width, height)
				assert.Equal(t, g.Size()-1, openPassages(g),
					"%s %dx%d must carve a spanning tree", kind, width, height)
			})
		}
	}
}

func TestWallBreaksJoinDistinctComponents(t *testing.T) {
	// Replays each recording through a fresh union-find: a break whose
	// endpoints were already connected would have closed a cycle.
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			g, rec := generate(t, kind, 6, 5, 99)
			if kind == RecursiveDivision {
				// Wall building cannot be replayed as unions.
				assert.Zero(t, rec.CountKind(trace.KindWallBroken))
				return
			}
			sets := dsu.New(g.Size())
			for _, e := range rec.Events {
				if e.Kind != trace.KindWallBroken {
					continue
				}
				assert.True(t, sets.Union(g.Index(e.From), g.Index(e.To)),
					"break %v-%v joined already-connected cells", e.From, e.To)
			}
			assert.Equal(t, 1, sets.Sets())
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			first, firstRec := generate(t, kind, 7, 6, 1234)
			second, secondRec := generate(t, kind, 7, 6, 1234)
			assert.Empty(t, cmp.Diff(firstRec.Events, secondRec.Events),
				"same seed must replay the same event sequence")
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestKruskalFixedSeed(t *testing.T) {
	g, rec := generate(t, Kruskal, 5, 5, 42)
	assert.Equal(t, 24, rec.CountKind(trace.KindWallBroken))
	assert.True(t, connected(g))
}

func TestRecursiveDivision(t *testing.T) {
	t.Run("adds no walls to a single row", func(t *testing.T) {
		_, rec := generate(t, RecursiveDivision, 8, 1, 3)
		assert.Zero(t, rec.CountKind(trace.KindWallAdded))
	})

	t.Run("adds no walls to a single column", func(t *testing.T) {
		_, rec := generate(t, RecursiveDivision, 1, 8, 3)
		assert.Zero(t, rec.CountKind(trace.KindWallAdded))
	})

	t.Run("divides larger grids", func(t *testing.T) {
		g, rec := generate(t, RecursiveDivision, 6, 6, 3)
		assert.Positive(t, rec.CountKind(trace.KindWallAdded))
		assert.True(t, connected(g))
		assert.Equal(t, g.Size()-1, openPassages(g))
	})
}

func TestStepAfterDone(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			g, err := maze.New(3, 3)
			assert.NoError(t, err)
			gen, err := New(kind, g, 11)
			assert.NoError(t, err)
			trace.Capture(gen)
			assert.True(t, gen.Step().IsDone())
			assert.True(t, gen.Step().IsDone())
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	g, err := maze.New(2, 2)
	assert.NoError(t, err)
	_, err = New(Kind("voronoi"), g, 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
