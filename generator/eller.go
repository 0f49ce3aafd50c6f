package generator

import (
	"math/rand"

	"github.com/mazeforge/mazeforge/dsu"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

const (
	ellerPhaseEast = iota
	ellerPhaseSouth
)

// ellerGenerator processes the grid one row at a time. Within a row it
// randomly breaks east walls between cells of distinct components; before
// moving down it breaks at least one south wall per component so every
// component reaches the next row. The last row force-merges all remaining
// distinct components through their east walls.
//
// Component tracking uses a single disjoint-set over all cell indices, so
// connectivity established by south walls carries into the next row.
type ellerGenerator struct {
	g    *maze.Grid
	rng  *rand.Rand
	sets *dsu.DSU

	row     int
	col     int
	phase   int
	groups  [][]maze.CellPosition // current row cells, grouped by component
	next    int                   // index of the next unprocessed group
	pending []maze.CellPosition   // cells of the current group awaiting a south break
	done    bool
}

func newEller(g *maze.Grid, rng *rand.Rand) *ellerGenerator {
	return &ellerGenerator{
		g:    g,
		rng:  rng,
		sets: dsu.New(g.Size()),
	}
}

func (e *ellerGenerator) IsDone() bool {
	return e.done
}

func (e *ellerGenerator) Step() trace.Event {
	if e.done {
		return trace.Done()
	}

	for {
		lastRow := e.row == e.g.Height-1

		switch e.phase {
		case ellerPhaseEast:
			if e.col >= e.g.Width-1 {
				if lastRow {
					e.done = true
					return trace.Done()
				}
				e.buildGroups()
				e.phase = ellerPhaseSouth
				continue
			}

			cur := maze.CellPosition{Row: e.row, Col: e.col}
			right := cur.Next(maze.East)
			e.col++

			joined := e.sets.Connected(e.g.Index(cur), e.g.Index(right))
			if joined || (!lastRow && e.rng.Intn(2) == 0) {
				return trace.Event{Kind: trace.KindWallRejected, From: cur, To: right}
			}
			_ = e.g.BreakWall(cur, right)
			e.sets.Union(e.g.Index(cur), e.g.Index(right))
			return trace.Event{Kind: trace.KindWallBroken, From: cur, To: right}

		case ellerPhaseSouth:
			if len(e.pending) == 0 {
				if e.next >= len(e.groups) {
					// Row fully resolved, move down.
					e.row++
					e.col = 0
					e.phase = ellerPhaseEast
					continue
				}
				e.pending = e.chooseSouthCells(e.groups[e.next])
				e.next++
			}

			cell := e.pending[0]
			e.pending = e.pending[1:]
			below := cell.Next(maze.South)
			_ = e.g.BreakWall(cell, below)
			e.sets.Union(e.g.Index(cell), e.g.Index(below))
			return trace.Event{Kind: trace.KindWallBroken, From: cell, To: below}
		}
	}
}

// buildGroups collects the current row's cells grouped by component, in
// first-seen column order.
func (e *ellerGenerator) buildGroups() {
	byRoot := make(map[int]int)
	e.groups = nil
	e.next = 0
	for col := 0; col < e.g.Width; col++ {
		pos := maze.CellPosition{Row: e.row, Col: col}
		root := e.sets.Find(e.g.Index(pos))
		i, ok := byRoot[root]
		if !ok {
			i = len(e.groups)
			byRoot[root] = i
			e.groups = append(e.groups, nil)
		}
		e.groups[i] = append(e.groups[i], pos)
	}
}

// chooseSouthCells picks a random non-empty subset of the component's
// cells to connect downward.
func (e *ellerGenerator) chooseSouthCells(cells []maze.CellPosition) []maze.CellPosition {
	picked := make([]maze.CellPosition, len(cells))
	copy(picked, cells)
	e.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	n := 1 + e.rng.Intn(len(picked))
	return picked[:n]
}
