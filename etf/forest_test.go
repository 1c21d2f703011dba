package etf_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynconn/etf"
)

// TestDiscreteForest_AllIsolated verifies that a fresh discrete forest has
// every pair of distinct vertices disconnected and every component of
// size 1, per spec §8.2.
func TestDiscreteForest_AllIsolated(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c"})

	for _, v := range []string{"a", "b", "c"} {
		assert.Equal(t, 1, f.ComponentSize(v))
	}
	connected, ok := f.Connected("a", "b")
	require.True(t, ok)
	assert.False(t, connected)
}

// TestInsertEdge_ConnectsAndSizes checks that linking two isolated
// vertices connects them and doubles the reported component size.
func TestInsertEdge_ConnectsAndSizes(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b"})

	assert.True(t, f.InsertEdge("a", "b"))

	connected, ok := f.Connected("a", "b")
	require.True(t, ok)
	assert.True(t, connected)
	assert.Equal(t, 2, f.ComponentSize("a"))
	assert.Equal(t, 2, f.ComponentSize("b"))
	assert.True(t, f.HasEdge("a", "b"))
	assert.True(t, f.HasEdge("b", "a"))
}

// TestInsertEdge_SelfLoopRejected covers the self-loop edge case. HasEdge
// reports a directed occurrence, so (a,a) is present as a's own self-loop
// marker whether or not the insert is rejected.
func TestInsertEdge_SelfLoopRejected(t *testing.T) {
	f := etf.DiscreteForest([]string{"a"})
	assert.False(t, f.InsertEdge("a", "a"))
	assert.True(t, f.HasEdge("a", "a"))
}

// TestInsertEdge_AlreadyConnectedRejected covers inserting an edge between
// two vertices already in the same tree: no-op, returns false.
func TestInsertEdge_AlreadyConnectedRejected(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c"})
	require.True(t, f.InsertEdge("a", "b"))
	require.True(t, f.InsertEdge("b", "c"))

	before := sortedDump(t, f)
	assert.False(t, f.InsertEdge("a", "c")) // already connected via b
	assert.Equal(t, before, sortedDump(t, f))
}

// TestDeleteEdge_TriangleHasNoReplacement covers a triangle at the forest
// level: the closing edge (1,3) is rejected because 1 and 3 are already
// connected, so cutting (1,2) splits the tree. A Forest does no
// replacement search of its own; that is dynconn.Graph's job.
func TestDeleteEdge_TriangleHasNoReplacement(t *testing.T) {
	f := etf.DiscreteForest([]string{"1", "2", "3"})
	require.True(t, f.InsertEdge("1", "2"))
	require.True(t, f.InsertEdge("2", "3"))
	require.False(t, f.InsertEdge("1", "3"))

	require.True(t, f.DeleteEdge("1", "2"))

	connected, ok := f.Connected("1", "2")
	require.True(t, ok)
	assert.False(t, connected)
	assert.Equal(t, 1, f.ComponentSize("1"))
}

// TestDeleteEdge_PathSplitsWithNoReplacement covers scenario §8.4.3:
// cutting the middle edge of a 4-vertex path splits it into two trees.
func TestDeleteEdge_PathSplitsWithNoReplacement(t *testing.T) {
	f := etf.DiscreteForest([]string{"1", "2", "3", "4"})
	require.True(t, f.InsertEdge("1", "2"))
	require.True(t, f.InsertEdge("2", "3"))
	require.True(t, f.InsertEdge("3", "4"))

	require.True(t, f.DeleteEdge("2", "3"))

	c14, ok := f.Connected("1", "4")
	require.True(t, ok)
	assert.False(t, c14)

	c12, ok := f.Connected("1", "2")
	require.True(t, ok)
	assert.True(t, c12)

	c34, ok := f.Connected("3", "4")
	require.True(t, ok)
	assert.True(t, c34)

	assert.Equal(t, 2, f.ComponentSize("1"))
	assert.Equal(t, 2, f.ComponentSize("4"))
}

// TestDeleteEdge_ThenInsertEdge_RestoresSizes verifies spec §8.2's
// round-trip property: deleting then reinserting the same edge restores
// component sizes at every vertex.
func TestDeleteEdge_ThenInsertEdge_RestoresSizes(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c", "d"})
	require.True(t, f.InsertEdge("a", "b"))
	require.True(t, f.InsertEdge("b", "c"))
	require.True(t, f.InsertEdge("c", "d"))

	require.True(t, f.DeleteEdge("b", "c"))
	require.True(t, f.InsertEdge("b", "c"))

	for _, v := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, 4, f.ComponentSize(v), "vertex %s", v)
	}
}

// TestDeleteEdge_UnknownEdgeIsNoOp covers the absent-edge no-op case.
func TestDeleteEdge_UnknownEdgeIsNoOp(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b"})
	assert.False(t, f.DeleteEdge("a", "b"))
	assert.False(t, f.DeleteEdge("a", "a"))
}

// TestDeleteVertex_RequiresIsolation verifies DeleteVertex panics on a
// non-isolated vertex (an internal invariant violation per spec §7) and
// succeeds once isolated.
func TestDeleteVertex_RequiresIsolation(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b"})
	require.True(t, f.InsertEdge("a", "b"))

	assert.Panics(t, func() { f.DeleteVertex("a") })

	require.True(t, f.DeleteEdge("a", "b"))
	assert.True(t, f.DeleteVertex("a"))
	assert.False(t, f.HasVertex("a"))
}

// TestReroot_PreservesConnectivityAndSize checks that Reroot changes the
// tour's starting point without altering component membership or size.
func TestReroot_PreservesConnectivityAndSize(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c"})
	require.True(t, f.InsertEdge("a", "b"))
	require.True(t, f.InsertEdge("b", "c"))

	assert.True(t, f.Reroot("c"))

	connected, ok := f.Connected("a", "c")
	require.True(t, ok)
	assert.True(t, connected)
	assert.Equal(t, 3, f.ComponentSize("a"))
}

// TestFromTree_BuildsConnectedTour checks FromTree against a small
// explicit rooted tree: root with two children, one of which has a child
// of its own.
func TestFromTree_BuildsConnectedTour(t *testing.T) {
	root := &etf.RootedTree[string]{
		Label: "root",
		Children: []*etf.RootedTree[string]{
			{Label: "a"},
			{Label: "b", Children: []*etf.RootedTree[string]{
				{Label: "c"},
			}},
		},
	}
	f := etf.FromTree(root)

	assert.Equal(t, 4, f.ComponentSize("root"))
	for _, v := range []string{"a", "b", "c"} {
		connected, ok := f.Connected("root", v)
		require.True(t, ok)
		assert.True(t, connected, "root~%s", v)
	}
}

// TestConnected_UnknownVertexIsUnknown verifies the "unknown" sentinel
// distinguishing an absent vertex from an answer of false, per spec §6.
func TestConnected_UnknownVertexIsUnknown(t *testing.T) {
	f := etf.DiscreteForest([]string{"a"})
	_, ok := f.Connected("a", "ghost")
	assert.False(t, ok)
}

// TestComponentVertices_MatchesComponentSize checks that the vertex list
// returned for a tree has exactly as many entries as ComponentSize reports,
// and contains every vertex expected to be in that tree.
func TestComponentVertices_MatchesComponentSize(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c", "d"})
	require.True(t, f.InsertEdge("a", "b"))
	require.True(t, f.InsertEdge("b", "c"))

	vs := f.ComponentVertices("a")
	assert.Equal(t, f.ComponentSize("a"), len(vs))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, vs)
	assert.Nil(t, f.ComponentVertices("ghost"))
}

// TestComponentVertices_UnaffectedByUnrelatedMutation uses go-cmp's
// order-insensitive diff to check that an unrelated insertion elsewhere
// in the forest leaves an established tree's vertex set untouched.
func TestComponentVertices_UnaffectedByUnrelatedMutation(t *testing.T) {
	f := etf.DiscreteForest([]string{"a", "b", "c", "x", "y"})
	require.True(t, f.InsertEdge("a", "b"))
	require.True(t, f.InsertEdge("b", "c"))

	before := f.ComponentVertices("a")

	require.True(t, f.InsertEdge("x", "y"))

	after := f.ComponentVertices("a")
	if diff := cmp.Diff(before, after, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("component vertices changed after unrelated insertion (-before +after):\n%s", diff)
	}
}

func sortedDump(t *testing.T, f *etf.Forest[string]) []string {
	t.Helper()
	traces := f.Dump()
	out := make([]string, 0, len(traces))
	for _, tr := range traces {
		s := ""
		for _, e := range tr {
			s += e.From + ">" + e.To + ";"
		}
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
