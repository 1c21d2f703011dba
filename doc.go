// Package dynconn is the module overview for fully dynamic graph
// connectivity in Go.
//
// 🚀 What is dynconn?
//
//	A small, dependency-light library answering one question fast, however
//	long the graph has been running: "are these two vertices currently
//	connected?" — while edges are inserted and deleted in any order,
//	without ever recomputing connectivity from scratch.
//
// ✨ Why dynconn?
//
//   - Amortized polylogarithmic InsertEdge, DeleteEdge, Connected — no full
//     re-scan of the graph on every change
//   - Pure Go, no cgo, generic over any comparable vertex type
//   - Small, auditable core: three packages, each doing one thing
//
// Under the hood, everything is organized under three subpackages:
//
//	seq/     — an annotated splay-tree sequence (split/append/aggregate)
//	etf/     — Euler-tour forests, built on seq
//	dynconn/ — the Holm-Lichtenberg-Thorup level structure, built on etf
//
// The top-level type callers reach for is dynconn.Graph:
//
//	g := dynconn.FromVertices([]string{"a", "b", "c"})
//	g.InsertEdge("a", "b")
//	g.InsertEdge("b", "c")
//	g.Connected("a", "c") // dynconn.TriTrue
//	g.DeleteEdge("b", "c")
//	g.Connected("a", "c") // dynconn.TriFalse
//
// See each subpackage's example_test.go for runnable examples, and its
// own doc.go for the algorithmic detail behind it.
//
//	go get github.com/katalvlaran/dynconn
package dynconn
