package zipper

import "iter"

// Positions returns every cursor placement over z's underlying sequence,
// ordered left to right. The entry at z's own offset focuses the same element
// as z. Placements are produced on demand by repeated MoveRight from the
// first position, so a full scan does O(n) total work with O(1) extra space
// per step, and an abandoned scan does no further work.
//
// The result is a pure function of z: ranging over it again restarts from the
// first position.
func (z Zipper[T]) Positions() iter.Seq[Zipper[T]] {
	return func(yield func(Zipper[T]) bool) {
		cur := z.Rewind()
		for {
			if !yield(cur) {
				return
			}
			next, err := cur.MoveRight()
			if err != nil {
				return
			}
			cur = next
		}
	}
}
