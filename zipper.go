// Package zipper provides a generic immutable zipper: an O(1) cursor into an
// ordered sequence. A zipper splits a sequence into the element under the
// cursor (the focus) and the untouched context on either side, so that moving
// the cursor or replacing the focus costs O(1) and never mutates the original.
//
// Positions derives the full set of cursor placements over the same sequence
// as a lazily generated stream, and FindNext scans that stream forward for the
// first placement satisfying a neighbor-aware predicate. Peak and RaisePeak
// are small algorithms composed entirely from those pieces.
//
// Every value in this package is immutable; concurrent use from any number of
// goroutines needs no synchronization.
package zipper

// Zipper is a cursor into a nonempty ordered sequence. It holds the focused
// element plus the elements before it (nearest-first) and after it (in
// forward order). The underlying sequence is left.Reverse() ++ [focus] ++
// right, and navigation only redistributes elements across the three parts.
//
// Zipper values are immutable: every operation returns a new value and shares
// the untouched context with its input.
type Zipper[T any] struct {
	focus T
	left  Seq[T] // elements before the focus, most recently passed first
	right Seq[T] // elements after the focus, forward order
}

// FromSeq places the cursor on the first element of s.
// Returns ErrEmptySequence when s has no elements.
func FromSeq[T any](s Seq[T]) (Zipper[T], error) {
	head, ok := s.Head()
	if !ok {
		return Zipper[T]{}, ErrEmptySequence
	}
	return Zipper[T]{focus: head, right: s.Tail()}, nil
}

// Focus returns the element under the cursor.
func (z Zipper[T]) Focus() T {
	return z.focus
}

// Left returns the elements before the focus, nearest-first.
func (z Zipper[T]) Left() Seq[T] {
	return z.left
}

// Right returns the elements after the focus, in forward order.
func (z Zipper[T]) Right() Seq[T] {
	return z.right
}

// Offset returns the focus position within the sequence, 0-indexed.
func (z Zipper[T]) Offset() int {
	return z.left.Len()
}

// Len returns the total number of elements in the underlying sequence.
func (z Zipper[T]) Len() int {
	return z.left.Len() + 1 + z.right.Len()
}

// MoveRight returns a zipper focused one position to the right.
// Returns ErrAtBoundary at the last position. O(1).
func (z Zipper[T]) MoveRight() (Zipper[T], error) {
	head, ok := z.right.Head()
	if !ok {
		return Zipper[T]{}, ErrAtBoundary
	}
	return Zipper[T]{
		focus: head,
		left:  z.left.Cons(z.focus),
		right: z.right.Tail(),
	}, nil
}

// MoveLeft returns a zipper focused one position to the left.
// Returns ErrAtBoundary at the first position. O(1).
func (z Zipper[T]) MoveLeft() (Zipper[T], error) {
	head, ok := z.left.Head()
	if !ok {
		return Zipper[T]{}, ErrAtBoundary
	}
	return Zipper[T]{
		focus: head,
		left:  z.left.Tail(),
		right: z.right.Cons(z.focus),
	}, nil
}

// Previous peeks at the element immediately before the focus without moving.
func (z Zipper[T]) Previous() (T, bool) {
	return z.left.Head()
}

// Next peeks at the element immediately after the focus without moving.
func (z Zipper[T]) Next() (T, bool) {
	return z.right.Head()
}

// ModifyFocus returns a zipper whose focus is f applied to the current focus.
// The context on either side is untouched. O(1).
func (z Zipper[T]) ModifyFocus(f func(T) T) Zipper[T] {
	z.focus = f(z.focus)
	return z
}

// WithFocus returns a zipper with the focus replaced by v. O(1).
func (z Zipper[T]) WithFocus(v T) Zipper[T] {
	z.focus = v
	return z
}

// Seq reassembles the underlying sequence. O(n); the only linearizing
// operation.
func (z Zipper[T]) Seq() Seq[T] {
	return z.left.Reverse().Concat(z.right.Cons(z.focus))
}

// Rewind returns the zipper moved to the first position.
func (z Zipper[T]) Rewind() Zipper[T] {
	for {
		prev, err := z.MoveLeft()
		if err != nil {
			return z
		}
		z = prev
	}
}

// End returns the zipper moved to the last position.
func (z Zipper[T]) End() Zipper[T] {
	for {
		next, err := z.MoveRight()
		if err != nil {
			return z
		}
		z = next
	}
}

// Seek returns the zipper moved to absolute offset i.
// Returns ErrOutOfRange when i is negative or past the last position.
func (z Zipper[T]) Seek(i int) (Zipper[T], error) {
	if i < 0 || i >= z.Len() {
		return Zipper[T]{}, ErrOutOfRange
	}
	for z.Offset() < i {
		z, _ = z.MoveRight()
	}
	for z.Offset() > i {
		z, _ = z.MoveLeft()
	}
	return z, nil
}

// InsertLeft returns a zipper with v inserted immediately before the focus.
// The focus is unchanged and its offset grows by one. O(1).
func (z Zipper[T]) InsertLeft(v T) Zipper[T] {
	z.left = z.left.Cons(v)
	return z
}

// InsertRight returns a zipper with v inserted immediately after the focus.
// The focus is unchanged. O(1).
func (z Zipper[T]) InsertRight(v T) Zipper[T] {
	z.right = z.right.Cons(v)
	return z
}

// Delete returns a zipper with the focus removed. The new focus is the next
// element to the right when one exists, otherwise the nearest element to the
// left. Returns ErrEmptySequence when the focus is the only element.
func (z Zipper[T]) Delete() (Zipper[T], error) {
	if head, ok := z.right.Head(); ok {
		return Zipper[T]{focus: head, left: z.left, right: z.right.Tail()}, nil
	}
	if head, ok := z.left.Head(); ok {
		return Zipper[T]{focus: head, left: z.left.Tail()}, nil
	}
	return Zipper[T]{}, ErrEmptySequence
}

// Equal reports whether two zippers focus the same offset of equal
// underlying sequences.
func Equal[T comparable](a, b Zipper[T]) bool {
	return a.focus == b.focus &&
		SeqEqual(a.left, b.left) &&
		SeqEqual(a.right, b.right)
}
