package generator

import (
	"math/rand"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// sidewinderGenerator processes rows top to bottom. The top row is opened
// into a single corridor. In every other row it extends a "run" of
// east-connected cells with a coin flip; closing a run breaks exactly one
// north wall from a random cell of the run. The rightmost cell of a row
// always closes its run.
type sidewinderGenerator struct {
	g    *maze.Grid
	rng  *rand.Rand
	row  int
	col  int
	run  []maze.CellPosition
	done bool
}

func newSidewinder(g *maze.Grid, rng *rand.Rand) *sidewinderGenerator {
	return &sidewinderGenerator{g: g, rng: rng}
}

func (s *sidewinderGenerator) IsDone() bool {
	return s.done
}

func (s *sidewinderGenerator) Step() trace.Event {
	if s.done {
		return trace.Done()
	}

	for {
		if s.row >= s.g.Height {
			s.done = true
			return trace.Done()
		}

		if s.row == 0 {
			if s.col >= s.g.Width-1 {
				s.row++
				s.col = 0
				continue
			}
			cur := maze.CellPosition{Row: 0, Col: s.col}
			s.col++
			right := cur.Next(maze.East)
			_ = s.g.BreakWall(cur, right)
			return trace.Event{Kind: trace.KindWallBroken, From: cur, To: right}
		}

		if s.col >= s.g.Width {
			s.row++
			s.col = 0
			s.run = s.run[:0]
			continue
		}

		cur := maze.CellPosition{Row: s.row, Col: s.col}
		s.run = append(s.run, cur)
		closeRun := s.col == s.g.Width-1 || s.rng.Intn(2) == 1
		s.col++

		if closeRun {
			up := s.run[s.rng.Intn(len(s.run))]
			s.run = s.run[:0]
			above := up.Next(maze.North)
			_ = s.g.BreakWall(up, above)
			return trace.Event{Kind: trace.KindWallBroken, From: up, To: above}
		}

		right := cur.Next(maze.East)
		_ = s.g.BreakWall(cur, right)
		return trace.Event{Kind: trace.KindWallBroken, From: cur, To: right}
	}
}
