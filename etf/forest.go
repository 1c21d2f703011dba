package etf

import (
	"fmt"

	"github.com/katalvlaran/dynconn/seq"
)

// Forest is an Euler-tour forest over vertices of type V. The zero value
// is not usable; construct with New, DiscreteForest, or FromTree.
type Forest[V comparable] struct {
	tree  *seq.Tree[DirEdge[V], int]
	nodes map[DirEdge[V]]seq.Handle
}

// New returns an empty Forest with no vertices.
func New[V comparable]() *Forest[V] {
	return &Forest[V]{
		tree:  seq.New[DirEdge[V], int](sizeMonoid{}),
		nodes: make(map[DirEdge[V]]seq.Handle),
	}
}

// DiscreteForest constructs a Forest whose trees are the singletons {v}
// for each v in vs, i.e. one self-loop per vertex and no edges.
func DiscreteForest[V comparable](vs []V) *Forest[V] {
	f := New[V]()
	for _, v := range vs {
		f.InsertVertex(v)
	}

	return f
}

// FromTree constructs the Euler tour of a single rooted tree: at each
// node l, emits (l,l), then for each child c, recurses and surrounds the
// child's tour with (l,c) before and (c,l) after.
func FromTree[V comparable](root *RootedTree[V]) *Forest[V] {
	f := New[V]()
	f.buildFromTree(root)

	return f
}

func (f *Forest[V]) buildFromTree(t *RootedTree[V]) seq.Handle {
	loopLabel := DirEdge[V]{From: t.Label, To: t.Label}
	whole := f.tree.Singleton(loopLabel, 1)
	f.nodes[loopLabel] = whole

	for _, child := range t.Children {
		childTour := f.buildFromTree(child)

		downLabel := DirEdge[V]{From: t.Label, To: child.Label}
		upLabel := DirEdge[V]{From: child.Label, To: t.Label}
		down := f.tree.Singleton(downLabel, 0)
		up := f.tree.Singleton(upLabel, 0)
		f.nodes[downLabel] = down
		f.nodes[upLabel] = up

		whole = f.tree.Concat(whole, down, childTour, up)
	}

	return whole
}

// HasVertex reports whether v is represented in the forest.
func (f *Forest[V]) HasVertex(v V) bool {
	_, ok := f.nodes[DirEdge[V]{From: v, To: v}]

	return ok
}

// HasEdge reports whether the directed occurrence (u,v) exists.
func (f *Forest[V]) HasEdge(u, v V) bool {
	_, ok := f.nodes[DirEdge[V]{From: u, To: v}]

	return ok
}

// InsertVertex adds a self-loop for v. Returns false and is a no-op if v
// is already represented.
func (f *Forest[V]) InsertVertex(v V) bool {
	label := DirEdge[V]{From: v, To: v}
	if _, exists := f.nodes[label]; exists {
		return false
	}

	f.nodes[label] = f.tree.Singleton(label, 1)

	return true
}

// DeleteVertex removes v's self-loop. Returns false and is a no-op if v
// is unknown. Panics if v is not currently isolated (component size != 1)
// — the caller (dynconn.Graph) must remove every incident edge first; a
// non-isolated vertex reaching here is an internal invariant violation,
// per spec §7.
func (f *Forest[V]) DeleteVertex(v V) bool {
	label := DirEdge[V]{From: v, To: v}
	h, ok := f.nodes[label]
	if !ok {
		return false
	}
	if size := f.tree.Aggregate(h); size != 1 {
		panic(fmt.Sprintf("etf: invariant violated: DeleteVertex(%v) called on a non-isolated vertex (component size %d)", v, size))
	}
	delete(f.nodes, label)

	return true
}

// FindRoot returns an Anchor identifying the root of v's sequence at this
// moment, or ok=false if v is unknown. Two Anchors returned from the same
// Forest state compare equal iff their vertices are currently connected.
func (f *Forest[V]) FindRoot(v V) (anchor Anchor, ok bool) {
	h, known := f.nodes[DirEdge[V]{From: v, To: v}]
	if !known {
		return Anchor(seq.Nil), false
	}

	return Anchor(f.tree.Root(h)), true
}

// Connected reports whether u and v are in the same tree. ok is false —
// and result is meaningless — if either vertex is unknown to the forest.
func (f *Forest[V]) Connected(u, v V) (result bool, ok bool) {
	ru, oku := f.FindRoot(u)
	rv, okv := f.FindRoot(v)
	if !oku || !okv {
		return false, false
	}

	return ru == rv, true
}

// ComponentSize returns the number of vertices in v's tree, or 0 if v is
// unknown.
func (f *Forest[V]) ComponentSize(v V) int {
	h, ok := f.nodes[DirEdge[V]{From: v, To: v}]
	if !ok {
		return 0
	}

	return f.tree.Aggregate(h)
}

// ComponentVertices returns the vertex labels of v's tree, in no
// particular order, by scanning the in-order tour of v's root and
// keeping only the self-loop entries. Returns nil if v is unknown.
func (f *Forest[V]) ComponentVertices(v V) []V {
	h, ok := f.nodes[DirEdge[V]{From: v, To: v}]
	if !ok {
		return nil
	}

	root := f.tree.Root(h)
	list := f.tree.ToList(root)
	out := make([]V, 0, len(list))
	for _, e := range list {
		if e.From == e.To {
			out = append(out, e.From)
		}
	}

	return out
}

// Reroot cyclic-shifts v's tree's Euler tour to start at v, without
// changing which tree it represents. Returns false and is a no-op if v
// is unknown.
func (f *Forest[V]) Reroot(v V) bool {
	h, ok := f.nodes[DirEdge[V]{From: v, To: v}]
	if !ok {
		return false
	}
	f.reroot(h)

	return true
}

// reroot splits just before x and re-concatenates [rightPart, leftPart],
// producing the same cyclic tour logically starting at x.
func (f *Forest[V]) reroot(x seq.Handle) {
	left, right := f.tree.Split(x)
	if left == seq.Nil {
		return // x was already first.
	}
	f.tree.Append(right, left)
}

// excise splays x and splices it out of its sequence entirely, returning
// (before, after): everything strictly before x, and everything strictly
// after x, as two independent sequences (either may be seq.Nil).
func (f *Forest[V]) excise(x seq.Handle) (before, after seq.Handle) {
	before, _ = f.tree.Split(x)
	_, after = f.tree.SplitAfter(x)

	return before, after
}

// InsertEdge links u's and v's trees with a new tree edge {u,v}. Returns
// false and is a no-op if u == v, either vertex is unknown, or u and v
// are already connected. Otherwise reroots v's tree at v, reroots u's
// tree so u's self-loop starts the sequence, and splices in
// [uLoop, (u,v), vTour, (v,u), restOfU].
func (f *Forest[V]) InsertEdge(u, v V) bool {
	if u == v {
		return false
	}
	uLoop, uok := f.nodes[DirEdge[V]{From: u, To: u}]
	vLoop, vok := f.nodes[DirEdge[V]{From: v, To: v}]
	if !uok || !vok {
		return false
	}
	if connected, _ := f.Connected(u, v); connected {
		return false
	}

	f.reroot(vLoop)
	vTour := f.tree.Root(vLoop)
	f.reroot(uLoop)

	uAlone, restOfU := f.tree.SplitAfter(uLoop)

	uvLabel := DirEdge[V]{From: u, To: v}
	vuLabel := DirEdge[V]{From: v, To: u}
	uvEdge := f.tree.Singleton(uvLabel, 0)
	vuEdge := f.tree.Singleton(vuLabel, 0)

	f.tree.Concat(uAlone, uvEdge, vTour, vuEdge, restOfU)

	f.nodes[uvLabel] = uvEdge
	f.nodes[vuLabel] = vuEdge

	return true
}

// DeleteEdge cuts tree edge {u,v}. Returns false and is a no-op if u == v
// or either directed occurrence is missing. Otherwise splits the sequence
// at both directed-edge nodes, discards the two singleton edge elements,
// and rejoins the outer pieces so that two independent trees remain.
//
// Cut correctness: splitting on uvEdge (arbitrarily, the "first
// encountered" occurrence per spec §4.2) yields (before, from). Testing
// whether vuEdge's root matches from's root tells us, without walking the
// sequence, which of the two directed occurrences comes first; the
// subsequence strictly between them is then excised as the subtree
// rooted at the far endpoint, and the two outer fragments are rejoined
// into the surviving tree.
func (f *Forest[V]) DeleteEdge(u, v V) bool {
	if u == v {
		return false
	}
	uvLabel := DirEdge[V]{From: u, To: v}
	vuLabel := DirEdge[V]{From: v, To: u}
	uvEdge, ok1 := f.nodes[uvLabel]
	vuEdge, ok2 := f.nodes[vuLabel]
	if !ok1 || !ok2 {
		return false
	}

	before, from := f.tree.Split(uvEdge)

	if f.tree.Root(vuEdge) == f.tree.Root(from) {
		// (u,v) occurs first: the subtree between them is rooted at v.
		// Excising uvEdge (leftmost of `from`) leaves vuEdge findable in
		// what remains; excising vuEdge from that then yields tailAfter.
		f.excise(uvEdge)
		_, tailAfter := f.excise(vuEdge)
		f.tree.Append(before, tailAfter)
	} else {
		// (v,u) occurs first: the subtree between them is rooted at u.
		// Excising vuEdge from `before` strips the leading part off the
		// between-subsequence; excising uvEdge (leftmost of `from`) then
		// yields tailAfter.
		stuff1, _ := f.excise(vuEdge)
		_, tailAfter := f.excise(uvEdge)
		f.tree.Append(stuff1, tailAfter)
	}

	delete(f.nodes, uvLabel)
	delete(f.nodes, vuLabel)

	return true
}

// Dump returns every tree currently in the forest, each as its in-order
// sequence of directed-edge labels. It exists only for diagnostics (spec
// §6); output order across trees is unspecified.
func (f *Forest[V]) Dump() []Trace[V] {
	seen := make(map[seq.Handle]bool)
	out := make([]Trace[V], 0)
	for _, h := range f.nodes {
		r := f.tree.Root(h)
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, Trace[V](f.tree.ToList(r)))
	}

	return out
}
