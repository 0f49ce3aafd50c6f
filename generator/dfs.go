package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// dfsGenerator carves a maze with randomized depth-first search. It keeps
// an explicit stack of visited cells; each step either breaks a wall to a
// random unvisited neighbor and moves there, or backtracks by popping the
// stack. The run ends when the stack empties.
type dfsGenerator struct {
	g       *maze.Grid
	rng     *rand.Rand
	visited mapset.Set[maze.CellPosition]
	stack   []maze.CellPosition
	started bool
	done    bool
}

func newDFS(g *maze.Grid, rng *rand.Rand) *dfsGenerator {
	return &dfsGenerator{
		g:       g,
		rng:     rng,
		visited: mapset.New[maze.CellPosition](),
	}
}

func (d *dfsGenerator) IsDone() bool {
	return d.done
}

func (d *dfsGenerator) Step() trace.Event {
	if d.done {
		return trace.Done()
	}

	if !d.started {
		start := randomCell(d.g, d.rng)
		d.visited.Put(start)
		d.stack = append(d.stack, start)
		d.started = true
		return trace.Event{Kind: trace.KindCellVisited, From: start, To: start}
	}

	current := d.stack[len(d.stack)-1]
	moves := unvisitedMoves(d.g, current, d.visited)
	if len(moves) == 0 {
		// Dead end: backtrack one cell per step.
		d.stack = d.stack[:len(d.stack)-1]
		if len(d.stack) == 0 {
			d.done = true
		}
		return trace.Event{Kind: trace.KindCellMarked, From: current, To: current}
	}

	next := moves[d.rng.Intn(len(moves))]
	_ = d.g.BreakWall(next.From, next.To)
	d.visited.Put(next.To)
	d.stack = append(d.stack, next.To)
	return trace.Event{Kind: trace.KindWallBroken, From: next.From, To: next.To}
}
