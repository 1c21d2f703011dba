package seq

// Handle identifies one element of a Tree's sequence. It is the element's
// index into the Tree's internal arena and stays valid — and keeps
// denoting the same logical element — across any number of splits,
// appends, or internal rotations.
type Handle int

// Nil is the zero-value-free sentinel Handle meaning "no node." It is
// returned by operations whose left/right fragment is empty (e.g.
// splitting at the leftmost element yields a Nil left fragment).
const Nil Handle = -1

// Monoid describes the commutative combining operation and identity
// element a Tree folds over subtrees. Combine must be associative;
// callers needing subtree sums, counts, or similar aggregates supply it
// once at tree construction, never as a package-level global.
type Monoid[A any] interface {
	// Combine folds two adjacent annotations in sequence order
	// (left, right) into one.
	Combine(left, right A) A

	// Identity returns the monoid's identity element.
	Identity() A
}
