package solver

import (
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// clockwise orders the sides for turn arithmetic.
var clockwise = [4]maze.Side{maze.North, maze.East, maze.South, maze.West}

func sideIndex(s maze.Side) int {
	for i, c := range clockwise {
		if c == s {
			return i
		}
	}
	return 0
}

// handRuleSolver walks the maze keeping one hand on the wall: at every
// cell it tries a fixed priority of relative turns (hand side first, then
// straight, then the opposite side, then back) and takes the first open
// one. It keeps no visited set; instead the walk is loop-erased as it
// goes, so the recorded path is always simple.
//
// Wall following only guarantees an exit on mazes without isolated loops.
// The walk is therefore bounded at four times the cell count; exceeding
// the bound concludes unreachable rather than looping forever.
type handRuleSolver struct {
	g          *maze.Grid
	start, end maze.CellPosition
	rightHand  bool

	facing   maze.Side
	walk     Path
	position map[maze.CellPosition]int // index of each cell in walk
	steps    int
	started  bool

	outcome
}

func newHandRule(g *maze.Grid, start, end maze.CellPosition, rightHand bool) *handRuleSolver {
	return &handRuleSolver{
		g:         g,
		start:     start,
		end:       end,
		rightHand: rightHand,
		facing:    maze.South,
		position:  make(map[maze.CellPosition]int),
	}
}

func (s *handRuleSolver) IsDone() bool {
	return s.done
}

func (s *handRuleSolver) Result() (Path, error) {
	return s.result()
}

// turnPriority returns the relative turn offsets to try, in order, as
// rotations on the clockwise ring.
func (s *handRuleSolver) turnPriority() [4]int {
	if s.rightHand {
		return [4]int{1, 0, 3, 2} // right, straight, left, back
	}
	return [4]int{3, 0, 1, 2} // left, straight, right, back
}

func (s *handRuleSolver) Step() trace.Event {
	if s.done {
		return trace.Done()
	}
	if s.tracing() {
		return s.emitPathCell()
	}

	if !s.started {
		s.started = true
		s.walk = Path{s.start}
		s.position[s.start] = 0
		if s.start == s.end {
			s.finishWith(Path{s.start})
			return s.emitPathCell()
		}
		return trace.Event{Kind: trace.KindCellVisited, From: s.start, To: s.start}
	}

	if s.steps >= 4*s.g.Size() {
		// Safeguard against isolated loops in imperfect mazes.
		return s.fail()
	}
	s.steps++

	cur := s.walk[len(s.walk)-1]
	chosen := maze.Side("")
	for _, offset := range s.turnPriority() {
		side := clockwise[(sideIndex(s.facing)+offset)%4]
		if !s.g.HasWall(cur, side) {
			chosen = side
			break
		}
	}
	if chosen == "" {
		// Start cell fully walled in.
		return s.fail()
	}

	s.facing = chosen
	next := cur.Next(chosen)

	if at, seen := s.position[next]; seen {
		// Re-entering a cell of the walk: erase the loop behind it.
		for _, cell := range s.walk[at+1:] {
			delete(s.position, cell)
		}
		s.walk = s.walk[:at+1]
	} else {
		s.position[next] = len(s.walk)
		s.walk = append(s.walk, next)
	}

	if next == s.end {
		s.finishWith(s.walk)
		return s.emitPathCell()
	}
	return trace.Event{Kind: trace.KindCellVisited, From: next, To: next}
}
