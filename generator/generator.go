/*
Package generator implements seven randomized maze generation algorithms
behind a shared step-driven contract.

A generator owns its grid for the duration of the run and mutates it one
wall at a time. Each Step call performs exactly one atomic action and
returns the corresponding trace event, so an external driver can pause,
replay, or animate a run at any granularity. Generators are restartable
only by constructing a fresh instance.

Randomness is injected as a seeded source at construction; two generators
built with the same kind, grid dimensions, and seed produce identical
event sequences.
*/
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// Kind selects a generation algorithm.
type Kind string

const (
	DFS               Kind = "dfs"
	Eller             Kind = "eller"
	Kruskal           Kind = "kruskal"
	Prim              Kind = "prim"
	RecursiveDivision Kind = "division"
	Sidewinder        Kind = "sidewinder"
	Wilson            Kind = "wilson"
)

// ErrUnknownKind reports a generator kind New does not recognize.
var ErrUnknownKind = errors.New("unknown generator kind")

// Kinds lists every supported generator kind.
func Kinds() []Kind {
	return []Kind{DFS, Eller, Kruskal, Prim, RecursiveDivision, Sidewinder, Wilson}
}

// Generator is a step-driven maze construction run over a single grid.
type Generator interface {
	// Step advances generation by one atomic action. After completion it
	// returns the Done event.
	Step() trace.Event
	// IsDone reports whether generation has completed.
	IsDone() bool
}

// New returns a generator of the given kind operating on the grid, with
// all randomness drawn from the given seed.
func New(kind Kind, g *maze.Grid, seed int64) (Generator, error) {
	rng := rand.New(rand.NewSource(seed))
	switch kind {
	case DFS:
		return newDFS(g, rng), nil
	case Eller:
		return newEller(g, rng), nil
	case Kruskal:
		return newKruskal(g, rng), nil
	case Prim:
		return newPrim(g, rng), nil
	case RecursiveDivision:
		return newDivision(g, rng), nil
	case Sidewinder:
		return newSidewinder(g, rng), nil
	case Wilson:
		return newWilson(g, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// randomCell generates a random position within the grid.
func randomCell(g *maze.Grid, rng *rand.Rand) maze.CellPosition {
	return maze.CellPosition{Row: rng.Intn(g.Height), Col: rng.Intn(g.Width)}
}

// randomUnvisitedCell selects a random position not in the visited set.
// The caller guarantees at least one such position exists.
func randomUnvisitedCell(g *maze.Grid, rng *rand.Rand, visited mapset.Set[maze.CellPosition]) maze.CellPosition {
	for {
		pos := randomCell(g, rng)
		if !visited.Has(pos) {
			return pos
		}
	}
}

// unvisitedMoves returns the in-bound moves from pos whose destination is
// not in the visited set.
func unvisitedMoves(g *maze.Grid, pos maze.CellPosition, visited mapset.Set[maze.CellPosition]) []maze.Move {
	var result []maze.Move
	for _, m := range g.Neighbors(pos) {
		if !visited.Has(m.To) {
			result = append(result, m)
		}
	}
	return result
}
