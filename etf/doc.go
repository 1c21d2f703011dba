// Package etf implements an Euler-tour forest: a forest of undirected
// trees where each tree is represented as one seq.Tree sequence holding
// the directed edges of an Euler tour of that tree (plus one self-loop
// per vertex). Link, cut, connectivity, rerooting, and component-size all
// reduce to seq split/append/aggregate operations.
//
// What:
//
//   - Forest[V]: a directory M : (V×V) -> seq.Handle. For every
//     represented vertex v, M[(v,v)] exists and annotates 1 (a "self-loop"
//     marker). For every represented tree edge {u,v}, both M[(u,v)] and
//     M[(v,u)] exist, annotate 0, and share a sequence with M[(u,u)] and
//     M[(v,v)].
//   - DiscreteForest(vs): singleton trees, one per vertex.
//   - FromTree(root): builds the Euler tour of one rooted tree by DFS.
//   - InsertEdge/DeleteEdge: link/cut two trees; DeleteEdge runs the
//     split-test-split cut algorithm documented on cutBetween.
//   - Connected/FindRoot/ComponentSize/HasEdge: read-only queries.
//   - Reroot: cyclic-shifts a tree's Euler tour to start at a given
//     vertex, without changing which tree it represents.
//
// Why:
//
//   - This is the structural layer the dynconn package layers level sets
//     on top of: one Forest per HLT level.
//
// Complexity: every mutating operation here costs O(log n) amortized
// seq.Tree operations (a small constant number of Split/Append calls per
// InsertEdge/DeleteEdge); ComponentSize is O(log n) via Aggregate.
package etf
