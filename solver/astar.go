package solver

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// astarSolver expands cells in order of f = g + h, with h the Manhattan
// distance to the end cell. Ties on f are broken toward the most recently
// pushed frontier entry; the order is fixed so runs are reproducible.
type astarSolver struct {
	g          *maze.Grid
	start, end maze.CellPosition

	open    openSet
	closed  mapset.Set[maze.CellPosition]
	gScore  map[maze.CellPosition]int
	parents map[maze.CellPosition]maze.CellPosition
	pushes  int
	started bool

	outcome
}

func newAStar(g *maze.Grid, start, end maze.CellPosition) *astarSolver {
	return &astarSolver{
		g:       g,
		start:   start,
		end:     end,
		closed:  mapset.New[maze.CellPosition](),
		gScore:  make(map[maze.CellPosition]int),
		parents: make(map[maze.CellPosition]maze.CellPosition),
	}
}

func (s *astarSolver) IsDone() bool {
	return s.done
}

func (s *astarSolver) Result() (Path, error) {
	return s.result()
}

func (s *astarSolver) push(cell maze.CellPosition, f int) {
	s.pushes++
	heap.Push(&s.open, &openItem{cell: cell, f: f, seq: s.pushes})
}

func (s *astarSolver) Step() trace.Event {
	if s.done {
		return trace.Done()
	}
	if s.tracing() {
		return s.emitPathCell()
	}

	if !s.started {
		s.started = true
		s.gScore[s.start] = 0
		s.push(s.start, manhattan(s.start, s.end))
		return trace.Event{Kind: trace.KindCellVisited, From: s.start, To: s.start, Cost: manhattan(s.start, s.end)}
	}

	// Skip frontier entries superseded by a cheaper path to the same cell.
	var item *openItem
	for {
		if s.open.Len() == 0 {
			return s.fail()
		}
		item = heap.Pop(&s.open).(*openItem)
		if !s.closed.Has(item.cell) {
			break
		}
	}

	cur := item.cell
	s.closed.Put(cur)

	if cur == s.end {
		s.finishWith(reconstruct(s.parents, s.start, s.end))
		return s.emitPathCell()
	}

	for _, m := range s.g.Passages(cur) {
		tentative := s.gScore[cur] + 1
		best, seen := s.gScore[m.To]
		if seen && tentative >= best {
			continue
		}
		s.gScore[m.To] = tentative
		s.parents[m.To] = cur
		s.push(m.To, tentative+manhattan(m.To, s.end))
	}
	return trace.Event{Kind: trace.KindCellVisited, From: cur, To: cur, Cost: item.f}
}

// openItem is one frontier entry of the A* open set.
type openItem struct {
	cell maze.CellPosition
	f    int
	seq  int // push order, used as the tie-break
}

// openSet implements heap.Interface: minimal f first, most recently
// pushed first among equal f.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq > o[j].seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) {
	*o = append(*o, x.(*openItem))
}

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
