package generator

import (
	"math/rand"

	"github.com/mazeforge/mazeforge/dsu"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// kruskalGenerator builds the full list of internal walls up front,
// shuffles it, and processes one wall per step: the wall is broken when
// its two cells belong to distinct components, and left standing
// otherwise. The run ends when every wall has been processed or a single
// component remains.
type kruskalGenerator struct {
	g     *maze.Grid
	rng   *rand.Rand
	walls []maze.Move
	next  int
	sets  *dsu.DSU
	done  bool
}

func newKruskal(g *maze.Grid, rng *rand.Rand) *kruskalGenerator {
	walls := internalWalls(g)
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	return &kruskalGenerator{
		g:     g,
		rng:   rng,
		walls: walls,
		sets:  dsu.New(g.Size()),
	}
}

// internalWalls enumerates each internal wall exactly once, as the east
// and south moves of every cell, in row-major order.
func internalWalls(g *maze.Grid) []maze.Move {
	var walls []maze.Move
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			if col+1 < g.Width {
				walls = append(walls, maze.Move{From: pos, To: pos.Next(maze.East), Direction: maze.East})
			}
			if row+1 < g.Height {
				walls = append(walls, maze.Move{From: pos, To: pos.Next(maze.South), Direction: maze.South})
			}
		}
	}
	return walls
}

func (k *kruskalGenerator) IsDone() bool {
	return k.done
}

func (k *kruskalGenerator) Step() trace.Event {
	if k.done {
		return trace.Done()
	}
	if k.next >= len(k.walls) || k.sets.Sets() == 1 {
		k.done = true
		return trace.Done()
	}

	w := k.walls[k.next]
	k.next++

	var ev trace.Event
	if k.sets.Union(k.g.Index(w.From), k.g.Index(w.To)) {
		_ = k.g.BreakWall(w.From, w.To)
		ev = trace.Event{Kind: trace.KindWallBroken, From: w.From, To: w.To}
	} else {
		ev = trace.Event{Kind: trace.KindWallRejected, From: w.From, To: w.To}
	}

	if k.next >= len(k.walls) || k.sets.Sets() == 1 {
		k.done = true
	}
	return ev
}
