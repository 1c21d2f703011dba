package dynconn

import "github.com/katalvlaran/dynconn/etf"

// level holds one HLT level's Euler-tour forest together with the
// adjacency-set bookkeeping that classifies every edge present at this
// level as a tree edge or a non-tree edge, per spec §4.3.
type level[V comparable] struct {
	forest     *etf.Forest[V]
	treeAdj    map[V]map[V]struct{}
	nonTreeAdj map[V]map[V]struct{}
}

func newLevel[V comparable](vertices []V) *level[V] {
	return &level[V]{
		forest:     etf.DiscreteForest(vertices),
		treeAdj:    make(map[V]map[V]struct{}),
		nonTreeAdj: make(map[V]map[V]struct{}),
	}
}

func addAdj[V comparable](adj map[V]map[V]struct{}, u, v V) {
	if adj[u] == nil {
		adj[u] = make(map[V]struct{})
	}
	if adj[v] == nil {
		adj[v] = make(map[V]struct{})
	}
	adj[u][v] = struct{}{}
	adj[v][u] = struct{}{}
}

func removeAdj[V comparable](adj map[V]map[V]struct{}, u, v V) {
	if m := adj[u]; m != nil {
		delete(m, v)
		if len(m) == 0 {
			delete(adj, u)
		}
	}
	if m := adj[v]; m != nil {
		delete(m, u)
		if len(m) == 0 {
			delete(adj, v)
		}
	}
}

func hasAdj[V comparable](adj map[V]map[V]struct{}, u, v V) bool {
	m, ok := adj[u]
	if !ok {
		return false
	}
	_, ok = m[v]

	return ok
}

// neighborSnapshot copies the neighbor set of x in adj so callers may
// mutate adj while iterating the result.
func neighborSnapshot[V comparable](adj map[V]map[V]struct{}, x V) []V {
	m := adj[x]
	out := make([]V, 0, len(m))
	for y := range m {
		out = append(out, y)
	}

	return out
}

func (l *level[V]) addTreeEdge(u, v V)       { addAdj(l.treeAdj, u, v) }
func (l *level[V]) removeTreeEdge(u, v V)    { removeAdj(l.treeAdj, u, v) }
func (l *level[V]) hasTreeEdge(u, v V) bool  { return hasAdj(l.treeAdj, u, v) }
func (l *level[V]) addNonTreeEdge(u, v V)    { addAdj(l.nonTreeAdj, u, v) }
func (l *level[V]) removeNonTreeEdge(u, v V) { removeAdj(l.nonTreeAdj, u, v) }
func (l *level[V]) hasNonTreeEdge(u, v V) bool {
	return hasAdj(l.nonTreeAdj, u, v)
}

func (l *level[V]) treeEdgeCount() int    { return adjCount(l.treeAdj) }
func (l *level[V]) nonTreeEdgeCount() int { return adjCount(l.nonTreeAdj) }

func adjCount[V comparable](adj map[V]map[V]struct{}) int {
	n := 0
	for _, m := range adj {
		n += len(m)
	}

	return n / 2
}
