package solver

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// bfsSolver explores the grid in strictly non-decreasing distance from
// start, so the first time it pops the end cell the recorded parents
// describe a shortest path.
type bfsSolver struct {
	g          *maze.Grid
	start, end maze.CellPosition

	queue   []maze.CellPosition
	visited mapset.Set[maze.CellPosition]
	parents map[maze.CellPosition]maze.CellPosition
	started bool

	outcome
}

func newBFS(g *maze.Grid, start, end maze.CellPosition) *bfsSolver {
	return &bfsSolver{
		g:       g,
		start:   start,
		end:     end,
		visited: mapset.New[maze.CellPosition](),
		parents: make(map[maze.CellPosition]maze.CellPosition),
	}
}

func (s *bfsSolver) IsDone() bool {
	return s.done
}

func (s *bfsSolver) Result() (Path, error) {
	return s.result()
}

func (s *bfsSolver) Step() trace.Event {
	if s.done {
		return trace.Done()
	}
	if s.tracing() {
		return s.emitPathCell()
	}

	if !s.started {
		s.started = true
		s.visited.Put(s.start)
		s.queue = append(s.queue, s.start)
		return trace.Event{Kind: trace.KindCellVisited, From: s.start, To: s.start}
	}

	if len(s.queue) == 0 {
		return s.fail()
	}

	cur := s.queue[0]
	s.queue = s.queue[1:]

	if cur == s.end {
		s.finishWith(reconstruct(s.parents, s.start, s.end))
		return s.emitPathCell()
	}

	for _, m := range s.g.Passages(cur) {
		if !s.visited.Has(m.To) {
			s.visited.Put(m.To)
			s.parents[m.To] = cur
			s.queue = append(s.queue, m.To)
		}
	}
	return trace.Event{Kind: trace.KindCellVisited, From: cur, To: cur}
}
