// Package dynconn implements fully dynamic graph connectivity: an
// undirected graph supporting edge insertion, edge deletion, and
// same-component queries, each in amortized polylogarithmic time, via the
// Holm-Lichtenberg-Thorup level structure.
//
// A Graph maintains a stack of levels 0..L-1, each holding an Euler-tour
// forest (package etf) over the same vertex set plus a classification of
// every edge present at that level into "tree" (part of that level's
// spanning forest) or "non-tree". Level 0's forest is always a spanning
// forest of the whole graph, so Connected and ComponentSize answer
// directly from it. Deleting a tree edge triggers a level-by-level search
// for a replacement edge that reconnects the severed pieces, promoting
// edges to higher levels along the way to keep the total promotion work
// bounded — the mechanism that makes deletion practical to amortize.
//
// The level count grows as edges accumulate (L = floor(log2(m)) + 1) and,
// within DeleteEdge's replacement search, can grow further on demand if a
// promotion needs a level that does not yet exist.
package dynconn
