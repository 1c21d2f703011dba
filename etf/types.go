package etf

// DirEdge is a directed occurrence of an undirected edge inside an Euler
// tour: either a genuine directed traversal (u,v) of a tree edge, or the
// self-loop (v,v) marking a vertex's single occurrence.
type DirEdge[V comparable] struct {
	From V
	To   V
}

// sizeMonoid folds per-element ints under addition. Self-loops are
// annotated 1 and every off-diagonal DirEdge is annotated 0, so the
// subtree aggregate at any node equals the number of vertices in that
// tree — the ETF's component-size monoid, per spec §3.2.
type sizeMonoid struct{}

func (sizeMonoid) Combine(l, r int) int { return l + r }
func (sizeMonoid) Identity() int        { return 0 }

// Anchor identifies the root of a sequence at the moment it was queried.
// Two Anchors compare equal exactly when they were taken from the same
// sequence at query time; Anchors are not stable across later mutations
// and exist only to let callers compare "same tree right now" without
// the etf package handing out seq.Handle values directly.
type Anchor int

// Trace is the in-order sequence of directed-edge labels of one tree in a
// Forest, as produced by Forest.Dump. It exists only for diagnostics.
type Trace[V comparable] []DirEdge[V]

// RootedTree is the caller-supplied input to FromTree: an explicit rooted
// tree to convert into its Euler-tour representation.
type RootedTree[V comparable] struct {
	Label    V
	Children []*RootedTree[V]
}
