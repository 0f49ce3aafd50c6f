package solver

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// deadEndSolver seals dead ends instead of searching. Every cell with a
// single open connection (except start and end) is filled; filling a cell
// can turn its neighbor into a new dead end, so fills cascade. In a
// perfect maze the unfilled cells that remain form exactly the path from
// start to end, which is then walked and emitted.
type deadEndSolver struct {
	g          *maze.Grid
	start, end maze.CellPosition

	counts    map[maze.CellPosition]int // open connections per unfilled cell
	filled    mapset.Set[maze.CellPosition]
	queue     []maze.CellPosition
	started   bool
	walking   bool
	walkSteps int

	outcome
}

func newDeadEnd(g *maze.Grid, start, end maze.CellPosition) *deadEndSolver {
	return &deadEndSolver{
		g:      g,
		start:  start,
		end:    end,
		counts: make(map[maze.CellPosition]int),
		filled: mapset.New[maze.CellPosition](),
	}
}

func (s *deadEndSolver) IsDone() bool {
	return s.done
}

func (s *deadEndSolver) Result() (Path, error) {
	return s.result()
}

func (s *deadEndSolver) isEndpoint(cell maze.CellPosition) bool {
	return cell == s.start || cell == s.end
}

// scan seeds the open-connection counts and the initial dead-end queue in
// row-major order.
func (s *deadEndSolver) scan() {
	for row := 0; row < s.g.Height; row++ {
		for col := 0; col < s.g.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			n := len(s.g.Passages(pos))
			s.counts[pos] = n
			if n <= 1 && !s.isEndpoint(pos) {
				s.queue = append(s.queue, pos)
			}
		}
	}
}

func (s *deadEndSolver) Step() trace.Event {
	if s.done {
		return trace.Done()
	}

	if !s.started {
		s.started = true
		s.scan()
		if s.start == s.end {
			s.path = Path{s.start}
			s.done = true
			return trace.Event{Kind: trace.KindPathCell, From: s.start, To: s.start}
		}
		return trace.Event{Kind: trace.KindCellVisited, From: s.start, To: s.start}
	}

	if !s.walking {
		if len(s.queue) == 0 {
			s.walking = true
			s.path = Path{s.start}
			return trace.Event{Kind: trace.KindPathCell, From: s.start, To: s.start}
		}
		return s.fillStep()
	}

	return s.walkStep()
}

// fillStep seals one dead end and queues any neighbor this turns into a
// new dead end.
func (s *deadEndSolver) fillStep() trace.Event {
	cell := s.queue[0]
	s.queue = s.queue[1:]
	s.filled.Put(cell)

	for _, m := range s.g.Passages(cell) {
		if s.filled.Has(m.To) {
			continue
		}
		s.counts[m.To]--
		if s.counts[m.To] == 1 && !s.isEndpoint(m.To) {
			s.queue = append(s.queue, m.To)
		}
	}
	return trace.Event{Kind: trace.KindCellMarked, From: cell, To: cell}
}

// walkStep follows the unfilled corridor one cell per step. The walk is
// bounded: if the remaining cells do not form a simple path (an imperfect
// maze), the search concludes unreachable.
func (s *deadEndSolver) walkStep() trace.Event {
	cur := s.path[len(s.path)-1]
	if s.walkSteps > s.g.Size() {
		return s.fail()
	}
	s.walkSteps++

	var prev maze.CellPosition
	hasPrev := len(s.path) > 1
	if hasPrev {
		prev = s.path[len(s.path)-2]
	}

	for _, m := range s.g.Passages(cur) {
		if s.filled.Has(m.To) || (hasPrev && m.To == prev) {
			continue
		}
		s.path = append(s.path, m.To)
		if m.To == s.end {
			s.done = true
		}
		return trace.Event{Kind: trace.KindPathCell, From: m.To, To: m.To}
	}
	return s.fail()
}
