package generator

import (
	"math/rand"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// divisionRegion is a rectangular sub-grid, bounds inclusive.
type divisionRegion struct {
	top, left, bottom, right int
}

func (r divisionRegion) height() int { return r.bottom - r.top + 1 }
func (r divisionRegion) width() int  { return r.right - r.left + 1 }

// divisionGenerator is the one wall-building algorithm; it starts from a
// grid with no internal walls. Each split builds a full wall across a
// region at a random offset, leaving a single random passage, then
// recurses into the two halves. Regions thinner than two cells in either
// dimension are left alone, so a 1xN grid generates no walls at all.
type divisionGenerator struct {
	g       *maze.Grid
	rng     *rand.Rand
	regions []divisionRegion
	pending []maze.Move // wall segments of the current split
	done    bool
}

func newDivision(g *maze.Grid, rng *rand.Rand) *divisionGenerator {
	g.OpenInterior()
	return &divisionGenerator{
		g:   g,
		rng: rng,
		regions: []divisionRegion{
			{top: 0, left: 0, bottom: g.Height - 1, right: g.Width - 1},
		},
	}
}

func (d *divisionGenerator) IsDone() bool {
	return d.done
}

func (d *divisionGenerator) Step() trace.Event {
	if d.done {
		return trace.Done()
	}

	for {
		if len(d.pending) > 0 {
			m := d.pending[0]
			d.pending = d.pending[1:]
			_ = d.g.BuildWall(m.From, m.To)
			return trace.Event{Kind: trace.KindWallAdded, From: m.From, To: m.To}
		}

		if len(d.regions) == 0 {
			d.done = true
			return trace.Done()
		}

		r := d.regions[len(d.regions)-1]
		d.regions = d.regions[:len(d.regions)-1]
		if r.height() < 2 || r.width() < 2 {
			continue
		}
		d.split(r)
	}
}

// split queues the wall segments of one division and pushes the two
// halves. Orientation favors cutting the longer dimension.
func (d *divisionGenerator) split(r divisionRegion) {
	horizontal := r.height() > r.width() ||
		(r.height() == r.width() && d.rng.Intn(2) == 0)

	if horizontal {
		// Wall between rows wallRow and wallRow+1.
		wallRow := r.top + d.rng.Intn(r.height()-1)
		passage := r.left + d.rng.Intn(r.width())
		for col := r.left; col <= r.right; col++ {
			if col == passage {
				continue
			}
			from := maze.CellPosition{Row: wallRow, Col: col}
			d.pending = append(d.pending, maze.Move{From: from, To: from.Next(maze.South), Direction: maze.South})
		}
		d.regions = append(d.regions,
			divisionRegion{top: r.top, left: r.left, bottom: wallRow, right: r.right},
			divisionRegion{top: wallRow + 1, left: r.left, bottom: r.bottom, right: r.right},
		)
		return
	}

	// Wall between columns wallCol and wallCol+1.
	wallCol := r.left + d.rng.Intn(r.width()-1)
	passage := r.top + d.rng.Intn(r.height())
	for row := r.top; row <= r.bottom; row++ {
		if row == passage {
			continue
		}
		from := maze.CellPosition{Row: row, Col: wallCol}
		d.pending = append(d.pending, maze.Move{From: from, To: from.Next(maze.East), Direction: maze.East})
	}
	d.regions = append(d.regions,
		divisionRegion{top: r.top, left: r.left, bottom: r.bottom, right: wallCol},
		divisionRegion{top: r.top, left: wallCol + 1, bottom: r.bottom, right: r.right},
	)
}
