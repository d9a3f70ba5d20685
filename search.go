package zipper

import "iter"

// Predicate reports whether a cursor placement is a match. Predicates may
// inspect the focus and, through Previous and Next, its neighbors.
type Predicate[T any] func(Zipper[T]) bool

// FindNext scans positions strictly forward and returns the first placement
// for which pred holds. The scan never moves left and never wraps; it stops
// at the first match, so when several placements match the leftmost one wins.
// Returns ErrNoMatch when the stream is exhausted.
//
// Cost is O(k) for k positions examined, each materialized in O(1).
func FindNext[T any](positions iter.Seq[Zipper[T]], pred Predicate[T]) (Zipper[T], error) {
	for z := range positions {
		if pred(z) {
			return z, nil
		}
	}
	return Zipper[T]{}, ErrNoMatch
}

// FindAll scans positions forward and collects every placement for which
// pred holds, in left-to-right order. An empty result is not an error.
func FindAll[T any](positions iter.Seq[Zipper[T]], pred Predicate[T]) []Zipper[T] {
	var out []Zipper[T]
	for z := range positions {
		if pred(z) {
			out = append(out, z)
		}
	}
	return out
}
