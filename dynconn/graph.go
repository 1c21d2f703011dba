package dynconn

import "math/bits"

// Graph is a fully dynamic undirected graph supporting polylogarithmic
// InsertEdge, DeleteEdge, and Connected, via the Holm-Lichtenberg-Thorup
// level structure over Euler-tour forests (spec §4.3). The zero value is
// not usable; construct with New or FromVertices.
type Graph[V comparable] struct {
	levels   []*level[V]
	allEdges map[V]map[V]struct{}
	vertices map[V]struct{}
	numEdges int
	logger   Logger
}

// New returns an empty Graph with no vertices or edges.
func New[V comparable](opts ...Option[V]) *Graph[V] {
	g := &Graph[V]{
		levels:   []*level[V]{newLevel[V](nil)},
		allEdges: make(map[V]map[V]struct{}),
		vertices: make(map[V]struct{}),
		logger:   noopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromVertices returns a Graph pre-populated with vs and no edges.
func FromVertices[V comparable](vs []V, opts ...Option[V]) *Graph[V] {
	g := New[V](opts...)
	for _, v := range vs {
		g.InsertVertex(v)
	}

	return g
}

// requiredLevels returns the number of levels needed for m edges: the
// classic HLT bound L = floor(log2 m) + 1 for m >= 1, or 1 (level 0 alone)
// for an edgeless graph, so queries always have a level 0 to consult.
func requiredLevels(m int) int {
	if m < 1 {
		return 1
	}

	return bits.Len(uint(m))
}

func (g *Graph[V]) vertexList() []V {
	vs := make([]V, 0, len(g.vertices))
	for v := range g.vertices {
		vs = append(vs, v)
	}

	return vs
}

// ensureLevels grows the level vector, if needed, so index n-1 exists.
// New levels start as discrete forests over every currently known vertex.
func (g *Graph[V]) ensureLevels(n int) {
	if n <= len(g.levels) {
		return
	}
	vs := g.vertexList()
	for len(g.levels) < n {
		g.levels = append(g.levels, newLevel[V](vs))
		g.logger.Debugf("dynconn: grew to %d levels", len(g.levels))
	}
}

// NumLevels returns the current number of HLT levels.
func (g *Graph[V]) NumLevels() int { return len(g.levels) }

// LevelSnapshot returns read-only statistics for level i, or ok=false if
// i is out of range. Exists for invariant audits and diagnostics (spec
// §8.3), not for the mutation surface.
func (g *Graph[V]) LevelSnapshot(i int) (stats LevelStats, ok bool) {
	if i < 0 || i >= len(g.levels) {
		return LevelStats{}, false
	}
	lvl := g.levels[i]
	sizes := make([]int, 0)
	seen := make(map[V]bool)
	for v := range g.vertices {
		if seen[v] {
			continue
		}
		comp := lvl.forest.ComponentVertices(v)
		for _, c := range comp {
			seen[c] = true
		}
		if len(comp) > 0 {
			sizes = append(sizes, len(comp))
		}
	}

	return LevelStats{
		TreeSizes:        sizes,
		TreeEdgeCount:    lvl.treeEdgeCount(),
		NonTreeEdgeCount: lvl.nonTreeEdgeCount(),
	}, true
}

// InsertVertex adds v as an isolated vertex. Returns false and is a no-op
// if v already exists.
func (g *Graph[V]) InsertVertex(v V) bool {
	if _, exists := g.vertices[v]; exists {
		return false
	}
	g.vertices[v] = struct{}{}
	g.allEdges[v] = make(map[V]struct{})
	for _, lvl := range g.levels {
		lvl.forest.InsertVertex(v)
	}

	return true
}

// DeleteVertex removes v and every edge incident to it. Returns false and
// is a no-op if v is unknown.
func (g *Graph[V]) DeleteVertex(v V) bool {
	if _, exists := g.vertices[v]; !exists {
		return false
	}
	for _, n := range neighborSnapshot(g.allEdges, v) {
		g.DeleteEdge(v, n)
	}
	for _, lvl := range g.levels {
		lvl.forest.DeleteVertex(v)
	}
	delete(g.allEdges, v)
	delete(g.vertices, v)

	return true
}

// HasEdge reports whether {u,v} is currently an edge of the graph.
func (g *Graph[V]) HasEdge(u, v V) bool {
	return hasAdj(g.allEdges, u, v)
}

// Connected reports whether u and v are in the same connected component.
// Returns TriTrue when u == v (trivially, regardless of membership — spec
// §4.3.2), TriUnknown if u != v and either vertex is absent, and otherwise
// delegates to level 0's Euler-tour forest.
func (g *Graph[V]) Connected(u, v V) Tri {
	if u == v {
		return TriTrue
	}
	result, ok := g.levels[0].forest.Connected(u, v)
	if !ok {
		return TriUnknown
	}
	if result {
		return TriTrue
	}

	return TriFalse
}

// ComponentSize returns the number of vertices reachable from v, or 0 if v
// is unknown.
func (g *Graph[V]) ComponentSize(v V) int {
	return g.levels[0].forest.ComponentSize(v)
}

// InsertEdge adds edge {u,v}. Returns false and is a no-op if u == v,
// either vertex is unknown, or the edge already exists. Otherwise grows
// the level vector if the new edge count demands it, then attempts
// ETF.InsertEdge at level 0: success makes it a tree edge, failure (the
// endpoints were already connected) makes it a non-tree edge, per spec
// §4.3.1.
func (g *Graph[V]) InsertEdge(u, v V) bool {
	if u == v {
		return false
	}
	if _, ok := g.vertices[u]; !ok {
		return false
	}
	if _, ok := g.vertices[v]; !ok {
		return false
	}
	if hasAdj(g.allEdges, u, v) {
		return false
	}

	addAdj(g.allEdges, u, v)
	g.numEdges++
	g.ensureLevels(requiredLevels(g.numEdges))

	lvl0 := g.levels[0]
	if lvl0.forest.InsertEdge(u, v) {
		lvl0.addTreeEdge(u, v)
	} else {
		lvl0.addNonTreeEdge(u, v)
	}

	return true
}

// DeleteEdge removes edge {u,v}. Returns false and is a no-op if the edge
// is not currently present. Otherwise runs the full HLT replacement
// search (spec §4.3.3): scanning levels top-down, a cut tree edge first
// promotes its smaller side's internal tree edges one level up, then
// searches that side's non-tree edges for a replacement — punishing
// internal ones by promoting them, and stopping at the first edge that
// crosses the cut.
func (g *Graph[V]) DeleteEdge(u, v V) bool {
	if !hasAdj(g.allEdges, u, v) {
		return false
	}
	removeAdj(g.allEdges, u, v)
	if u == v {
		return true
	}
	g.numEdges--

	for i := len(g.levels) - 1; i >= 0; i-- {
		lvl := g.levels[i]
		if !lvl.forest.DeleteEdge(u, v) {
			// Case A: not a tree edge at this level (or absent here).
			lvl.removeNonTreeEdge(u, v)
			continue
		}

		// Case B: it was a tree edge at this level.
		lvl.removeTreeEdge(u, v)

		uSize := lvl.forest.ComponentSize(u)
		vSize := lvl.forest.ComponentSize(v)
		var sVertices []V
		if uSize <= vSize {
			sVertices = lvl.forest.ComponentVertices(u)
		} else {
			sVertices = lvl.forest.ComponentVertices(v)
		}

		c, d, found := g.promoteAndSearch(i, lvl, sVertices)
		if found {
			lvl.removeNonTreeEdge(c, d)
			lvl.addTreeEdge(c, d)
			lvl.forest.InsertEdge(c, d)

			// (u,v) and (c,d) were both present at every level below i too
			// (tree/non-tree status is cumulative downward, spec §4.3),
			// so the same swap has to happen at each of them.
			for j := 0; j < i; j++ {
				lower := g.levels[j]
				lower.forest.DeleteEdge(u, v)
				lower.removeTreeEdge(u, v)
				lower.forest.InsertEdge(c, d)
				lower.removeNonTreeEdge(c, d)
				lower.addTreeEdge(c, d)
			}
			g.logger.Debugf("dynconn: replaced (%v,%v) with (%v,%v) at level %d", u, v, c, d, i)

			return true
		}
		g.logger.Debugf("dynconn: no replacement for (%v,%v) at level %d, descending", u, v, i)
	}

	return true
}

// promoteAndSearch performs the promotion and replacement-search steps of
// a single level i of DeleteEdge, with target level i+1 grown on demand if
// it does not already exist.
//
// Tree/non-tree status is cumulative downward (an edge classified at
// level i is, by construction, also classified the same way at every
// level below i — it was inserted once, at level 0, and every promotion
// since has only ever added it to a higher level, never removed it from
// a lower one). So promoting or punishing an edge here adds it to level
// i+1's bookkeeping without touching level i's.
func (g *Graph[V]) promoteAndSearch(i int, lvl *level[V], sVertices []V) (c, d V, found bool) {
	g.ensureLevels(i + 2)
	next := g.levels[i+1]

	sSet := make(map[V]struct{}, len(sVertices))
	for _, x := range sVertices {
		sSet[x] = struct{}{}
	}

	for _, x := range sVertices {
		for _, y := range neighborSnapshot(lvl.treeAdj, x) {
			if _, inS := sSet[y]; !inS || next.hasTreeEdge(x, y) {
				continue
			}
			next.addTreeEdge(x, y)
			next.forest.InsertEdge(x, y)
			g.logger.Debugf("dynconn: promoted tree edge (%v,%v) to level %d", x, y, i+1)
		}
	}

	for _, x := range sVertices {
		for _, y := range neighborSnapshot(lvl.nonTreeAdj, x) {
			if next.hasNonTreeEdge(x, y) || next.hasTreeEdge(x, y) {
				continue
			}
			if _, inS := sSet[y]; inS {
				next.addNonTreeEdge(x, y)
				g.logger.Debugf("dynconn: punished (%v,%v) to level %d", x, y, i+1)
				continue
			}

			return x, y, true
		}
	}

	var zero V

	return zero, zero, false
}
