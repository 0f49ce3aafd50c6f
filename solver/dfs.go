package solver

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// dfsFrame is one stack entry of the depth-first search: a cell and the
// passages out of it not yet tried.
type dfsFrame struct {
	cell    maze.CellPosition
	untried []maze.Move
}

// dfsSolver walks the maze with an explicit stack, remembering per cell
// which directions are still untried so no cell is entered twice. The
// order in which passages are tried is shuffled by the injected seed.
type dfsSolver struct {
	g          *maze.Grid
	start, end maze.CellPosition
	rng        *rand.Rand

	stack   []*dfsFrame
	visited mapset.Set[maze.CellPosition]
	parents map[maze.CellPosition]maze.CellPosition
	started bool

	outcome
}

func newDFS(g *maze.Grid, start, end maze.CellPosition, rng *rand.Rand) *dfsSolver {
	return &dfsSolver{
		g:       g,
		start:   start,
		end:     end,
		rng:     rng,
		visited: mapset.New[maze.CellPosition](),
		parents: make(map[maze.CellPosition]maze.CellPosition),
	}
}

func (s *dfsSolver) IsDone() bool {
	return s.done
}

func (s *dfsSolver) Result() (Path, error) {
	return s.result()
}

// pushFrame marks the cell visited and stacks its passages in a
// seed-shuffled order.
func (s *dfsSolver) pushFrame(cell maze.CellPosition) {
	s.visited.Put(cell)
	untried := s.g.Passages(cell)
	s.rng.Shuffle(len(untried), func(i, j int) {
		untried[i], untried[j] = untried[j], untried[i]
	})
	s.stack = append(s.stack, &dfsFrame{cell: cell, untried: untried})
}

func (s *dfsSolver) Step() trace.Event {
	if s.done {
		return trace.Done()
	}
	if s.tracing() {
		return s.emitPathCell()
	}

	if !s.started {
		s.started = true
		s.pushFrame(s.start)
		if s.start == s.end {
			s.finishWith(Path{s.start})
			return s.emitPathCell()
		}
		return trace.Event{Kind: trace.KindCellVisited, From: s.start, To: s.start}
	}

	if len(s.stack) == 0 {
		return s.fail()
	}

	top := s.stack[len(s.stack)-1]
	for len(top.untried) > 0 {
		m := top.untried[0]
		top.untried = top.untried[1:]
		if s.visited.Has(m.To) {
			continue
		}
		s.parents[m.To] = top.cell
		if m.To == s.end {
			s.visited.Put(m.To)
			s.finishWith(reconstruct(s.parents, s.start, s.end))
			return s.emitPathCell()
		}
		s.pushFrame(m.To)
		return trace.Event{Kind: trace.KindCellVisited, From: m.To, To: m.To}
	}

	// Dead end: backtrack.
	s.stack = s.stack[:len(s.stack)-1]
	return trace.Event{Kind: trace.KindCellMarked, From: top.cell, To: top.cell}
}
