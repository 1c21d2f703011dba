// Package seq implements an annotated sequence: a self-adjusting binary
// search tree whose in-order traversal defines an ordered sequence of
// labeled elements, each carrying a value from a caller-supplied monoid,
// with subtree aggregates maintained under that monoid's combining
// operation.
//
// What:
//
//   - Tree[L, A]: an arena of splay-tree nodes. There is no BST key order —
//     the structure encodes a SEQUENCE, and position is implicit from
//     in-order traversal, not from comparing labels.
//   - Handle: a stable arena index identifying one element. A Handle
//     remains valid and keeps denoting the same logical element across
//     any number of splits, appends, or splays.
//   - Monoid[A]: the caller-supplied (Combine, Identity) pair a Tree folds
//     over subtrees to answer Aggregate queries in O(1) after a splay.
//
// Why:
//
//   - It is the sequence substrate the etf package represents Euler tours
//     on top of: split/append/aggregate on this package give etf its
//     link/cut/component-size operations almost for free.
//
// Key operations:
//
//   - Singleton(label, a)  — new one-element sequence.
//   - Root(x)              — the root handle of x's sequence.
//   - Connected(x, y)      — whether x and y are in the same sequence.
//   - Split(x)             — (left, right): left holds everything strictly
//     before x; right holds x and everything after.
//   - Append(s, t)         — concatenates two distinct sequences.
//   - Concat(s1..sk)       — folds Append across k distinct sequences.
//   - Aggregate(x)         — the monoid fold of x's entire sequence.
//   - ToList(x)            — in-order labels of x's sequence.
//
// Complexity:
//
//   - Split, Append: amortized O(log n) via the splay discipline.
//   - Root, Connected, Aggregate, ToList: O(depth); kept shallow in
//     practice because every structural change (Split/Append) splays,
//     which is where this package's amortized bound actually comes from.
//
// See tree.go for the splay-tree mechanics (arena-indexed, parent-linked,
// bottom-up zig/zig-zig/zig-zag) and types.go for Handle and Monoid.
package seq
