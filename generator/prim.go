package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// primGenerator grows the maze from one random cell. The candidate set
// holds walls on the frontier of the in-maze region; each step resolves
// one random candidate, breaking it when exactly one of its two cells is
// already in the maze. The run ends when the candidate set empties.
type primGenerator struct {
	g          *maze.Grid
	rng        *rand.Rand
	inMaze     mapset.Set[maze.CellPosition]
	candidates []maze.Move
	started    bool
	done       bool
}

func newPrim(g *maze.Grid, rng *rand.Rand) *primGenerator {
	return &primGenerator{
		g:      g,
		rng:    rng,
		inMaze: mapset.New[maze.CellPosition](),
	}
}

func (p *primGenerator) IsDone() bool {
	return p.done
}

func (p *primGenerator) Step() trace.Event {
	if p.done {
		return trace.Done()
	}

	if !p.started {
		seed := randomCell(p.g, p.rng)
		p.inMaze.Put(seed)
		p.candidates = p.g.Neighbors(seed)
		p.started = true
		return trace.Event{Kind: trace.KindCellVisited, From: seed, To: seed}
	}

	if len(p.candidates) == 0 {
		p.done = true
		return trace.Done()
	}

	// Pick a uniformly random candidate and remove it regardless of
	// outcome.
	i := p.rng.Intn(len(p.candidates))
	w := p.candidates[i]
	p.candidates[i] = p.candidates[len(p.candidates)-1]
	p.candidates = p.candidates[:len(p.candidates)-1]

	var ev trace.Event
	if p.inMaze.Has(w.From) != p.inMaze.Has(w.To) {
		_ = p.g.BreakWall(w.From, w.To)
		newCell := w.To
		if p.inMaze.Has(w.To) {
			newCell = w.From
		}
		p.inMaze.Put(newCell)
		for _, m := range p.g.Neighbors(newCell) {
			if !p.inMaze.Has(m.To) {
				p.candidates = append(p.candidates, m)
			}
		}
		ev = trace.Event{Kind: trace.KindWallBroken, From: w.From, To: w.To}
	} else {
		ev = trace.Event{Kind: trace.KindWallRejected, From: w.From, To: w.To}
	}

	if len(p.candidates) == 0 {
		p.done = true
	}
	return ev
}
