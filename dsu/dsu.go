// Package dsu implements the disjoint-set data structure from CLRS over a
// fixed range of integer indices. Maze generators use it to track which
// cells are already connected, so that breaking a wall never creates a
// cycle.
package dsu

// DSU is a disjoint-set forest with path compression and union by rank.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a DSU of n singleton sets, one per index in [0, n).
func New(n int) *DSU {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DSU{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}
}

// Find returns the representative root of the set containing x. May adjust
// parent pointers.
func (d *DSU) Find(x int) int {
	if d.parent[x] != x {
		d.parent[x] = d.Find(d.parent[x])
	}
	return d.parent[x]
}

// Union merges the sets containing a and b. It reports whether the two
// were previously distinct; callers use the result to avoid cycles.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] > d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[ra] = rb
	if d.rank[ra] == d.rank[rb] {
		d.rank[rb]++
	}
	d.sets--
	return true
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Sets returns the number of remaining disjoint sets.
func (d *DSU) Sets() int {
	return d.sets
}
