/*
Package solver implements five pathfinding strategies over a finished
maze grid behind a shared step-driven contract.

A solver treats the grid as read-only. Each Step call performs one atomic
search action and returns the corresponding trace event; once the search
concludes, the discovered path is replayed as path-cell events and Result
returns it. An unreachable end cell is a legitimate typed outcome
(ErrUnreachable), not a failure of the solver.
*/
package solver

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// Kind selects a solving algorithm.
type Kind string

const (
	AStar          Kind = "astar"
	BFS            Kind = "bfs"
	DFS            Kind = "dfs"
	DeadEndFilling Kind = "deadend"
	HandRuleLeft   Kind = "lefthand"
	HandRuleRight  Kind = "righthand"
)

var (
	// ErrUnknownKind reports a solver kind New does not recognize.
	ErrUnknownKind = errors.New("unknown solver kind")

	// ErrUnreachable reports that no path exists between start and end.
	ErrUnreachable = errors.New("end cell is unreachable from start")

	// ErrNotDone reports a Result call before the solver completed.
	ErrNotDone = errors.New("solver has not completed")

	// ErrBadEndpoint reports a start or end cell outside the grid.
	ErrBadEndpoint = errors.New("start or end cell out of bounds")
)

// Kinds lists every supported solver kind.
func Kinds() []Kind {
	return []Kind{AStar, BFS, DFS, DeadEndFilling, HandRuleLeft, HandRuleRight}
}

// Path is an ordered sequence of cells from start to end.
type Path []maze.CellPosition

// Solver is a step-driven path search over a read-only grid.
type Solver interface {
	// Step advances the search by one atomic action. After completion it
	// returns the Done event.
	Step() trace.Event
	// IsDone reports whether the search has completed.
	IsDone() bool
	// Result returns the discovered path once the search completed, or
	// ErrUnreachable when it concluded without one. Calling Result before
	// completion returns ErrNotDone.
	Result() (Path, error)
}

// New returns a solver of the given kind searching the grid from start to
// end, with all randomness drawn from the given seed.
func New(kind Kind, g *maze.Grid, start, end maze.CellPosition, seed int64) (Solver, error) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrBadEndpoint, start, end)
	}
	rng := rand.New(rand.NewSource(seed))
	switch kind {
	case AStar:
		return newAStar(g, start, end), nil
	case BFS:
		return newBFS(g, start, end), nil
	case DFS:
		return newDFS(g, start, end, rng), nil
	case DeadEndFilling:
		return newDeadEnd(g, start, end), nil
	case HandRuleLeft:
		return newHandRule(g, start, end, false), nil
	case HandRuleRight:
		return newHandRule(g, start, end, true), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// outcome holds the terminal state shared by all solvers: the discovered
// path being replayed as path-cell events, or the unreachable error.
type outcome struct {
	path Path
	next int
	err  error
	done bool
}

// finishWith switches the solver into path replay.
func (o *outcome) finishWith(path Path) {
	o.path = path
	o.next = 0
}

// fail concludes the search without a path.
func (o *outcome) fail() trace.Event {
	o.err = ErrUnreachable
	o.done = true
	return trace.Done()
}

// tracing reports whether the solver is replaying the discovered path.
func (o *outcome) tracing() bool {
	return o.path != nil
}

// emitPathCell replays one path cell per step and completes after the
// last one.
func (o *outcome) emitPathCell() trace.Event {
	cell := o.path[o.next]
	o.next++
	if o.next >= len(o.path) {
		o.done = true
	}
	return trace.Event{Kind: trace.KindPathCell, From: cell, To: cell}
}

// result implements Solver.Result over the terminal state.
func (o *outcome) result() (Path, error) {
	if !o.done {
		return nil, ErrNotDone
	}
	if o.err != nil {
		return nil, o.err
	}
	return o.path, nil
}

// manhattan is the admissible heuristic used by A*: it never
// overestimates the true remaining distance on a unit-cost grid.
func manhattan(a, b maze.CellPosition) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// reconstruct follows parent pointers from end back to start and returns
// the forward path.
func reconstruct(parents map[maze.CellPosition]maze.CellPosition, start, end maze.CellPosition) Path {
	path := Path{end}
	for cur := end; cur != start; {
		cur = parents[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
