package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// wilsonGenerator samples the maze uniformly among all spanning trees
// using loop-erased random walks. One random cell seeds the maze; each
// subsequent walk starts from a random cell outside it and wanders until
// it touches the maze, erasing any loop it closes along the way. The
// finished walk is carved in as a whole.
//
// The current walk is tracked both as an ordered move sequence (for
// erasure) and as a membership set (for O(1) loop detection), separate
// from the persistent in-maze set.
type wilsonGenerator struct {
	g      *maze.Grid
	rng    *rand.Rand
	inMaze mapset.Set[maze.CellPosition]

	inPath    mapset.Set[maze.CellPosition]
	path      []maze.Move
	pathStart maze.CellPosition

	started bool
	walking bool
	carving bool
	carve   int
	done    bool
}

func newWilson(g *maze.Grid, rng *rand.Rand) *wilsonGenerator {
	return &wilsonGenerator{
		g:      g,
		rng:    rng,
		inMaze: mapset.New[maze.CellPosition](),
		inPath: mapset.New[maze.CellPosition](),
	}
}

func (w *wilsonGenerator) IsDone() bool {
	return w.done
}

func (w *wilsonGenerator) Step() trace.Event {
	if w.done {
		return trace.Done()
	}

	if !w.started {
		seed := randomCell(w.g, w.rng)
		w.inMaze.Put(seed)
		w.started = true
		if w.inMaze.Size() == w.g.Size() {
			w.done = true
		}
		return trace.Event{Kind: trace.KindCellVisited, From: seed, To: seed}
	}

	if w.carving {
		return w.carveStep()
	}

	if !w.walking {
		start := randomUnvisitedCell(w.g, w.rng, w.inMaze)
		w.pathStart = start
		w.inPath.Put(start)
		w.walking = true
		return trace.Event{Kind: trace.KindCellVisited, From: start, To: start}
	}

	return w.walkStep()
}

// walkStep advances the random walk by one move.
func (w *wilsonGenerator) walkStep() trace.Event {
	cur := w.pathStart
	if len(w.path) > 0 {
		cur = w.path[len(w.path)-1].To
	}

	moves := w.g.Neighbors(cur)
	m := moves[w.rng.Intn(len(moves))]

	if w.inMaze.Has(m.To) {
		// The walk reached the maze; carve the loop-erased path in.
		w.path = append(w.path, m)
		w.walking = false
		w.carving = true
		w.carve = 0
		return trace.Event{Kind: trace.KindCellVisited, From: m.To, To: m.To}
	}

	if w.inPath.Has(m.To) {
		w.eraseLoop(m.To)
		return trace.Event{Kind: trace.KindCellMarked, From: m.To, To: m.To}
	}

	w.path = append(w.path, m)
	w.inPath.Put(m.To)
	return trace.Event{Kind: trace.KindCellVisited, From: m.To, To: m.To}
}

// eraseLoop truncates the walk back to the revisited cell, e.g. the walk
// a,b,c,d revisiting b becomes a,b.
func (w *wilsonGenerator) eraseLoop(revisited maze.CellPosition) {
	cut := -1 // -1 keeps only the walk start
	if revisited != w.pathStart {
		for i := range w.path {
			if w.path[i].To == revisited {
				cut = i
				break
			}
		}
	}
	for _, m := range w.path[cut+1:] {
		w.inPath.Remove(m.To)
	}
	w.path = w.path[:cut+1]
}

// carveStep breaks one wall of the finished walk per step.
func (w *wilsonGenerator) carveStep() trace.Event {
	m := w.path[w.carve]
	w.carve++
	_ = w.g.BreakWall(m.From, m.To)
	w.inMaze.Put(m.From)
	w.inMaze.Put(m.To)

	if w.carve == len(w.path) {
		w.carving = false
		w.path = w.path[:0]
		w.inPath = mapset.New[maze.CellPosition]()
		if w.inMaze.Size() == w.g.Size() {
			w.done = true
		}
	}
	return trace.Event{Kind: trace.KindWallBroken, From: m.From, To: m.To}
}
