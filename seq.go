package zipper

import "iter"

// Seq is a persistent ordered sequence of elements. The zero value is the
// empty sequence. All operations return new values; a Seq is never mutated
// after construction, so values may be shared freely across goroutines.
//
// Cons, Head, Tail, Len and IsEmpty are O(1). Reverse, Concat and ToSlice
// are O(n).
type Seq[T any] struct {
	head *seqNode[T]
}

// seqNode is one cell of the cons list backing a Seq.
// count caches the number of cells from this one to the end.
type seqNode[T any] struct {
	val   T
	next  *seqNode[T]
	count int
}

// SeqOf builds a sequence holding vs in order.
func SeqOf[T any](vs ...T) Seq[T] {
	return FromSlice(vs)
}

// FromSlice builds a sequence holding the elements of s in order.
// The slice is not retained.
func FromSlice[T any](s []T) Seq[T] {
	var out Seq[T]
	for i := len(s) - 1; i >= 0; i-- {
		out = out.Cons(s[i])
	}
	return out
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.head == nil
}

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	if s.head == nil {
		return 0
	}
	return s.head.count
}

// Cons returns a new sequence with v prepended.
func (s Seq[T]) Cons(v T) Seq[T] {
	return Seq[T]{head: &seqNode[T]{val: v, next: s.head, count: s.Len() + 1}}
}

// Head returns the first element, or false when the sequence is empty.
func (s Seq[T]) Head() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.val, true
}

// Tail returns the sequence after the first element.
// The tail of an empty sequence is empty.
func (s Seq[T]) Tail() Seq[T] {
	if s.head == nil {
		return Seq[T]{}
	}
	return Seq[T]{head: s.head.next}
}

// Reverse returns the sequence with element order flipped.
func (s Seq[T]) Reverse() Seq[T] {
	var out Seq[T]
	for n := s.head; n != nil; n = n.next {
		out = out.Cons(n.val)
	}
	return out
}

// Concat returns the concatenation of s and other. Cells of other are shared
// with the result; cells of s are copied.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	out := other
	for n := s.Reverse().head; n != nil; n = n.next {
		out = out.Cons(n.val)
	}
	return out
}

// ToSlice copies the elements into a fresh slice in order.
func (s Seq[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// All returns an iterator over the elements in order.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// SeqEqual reports whether two sequences hold equal elements in the same
// order.
func SeqEqual[T comparable](a, b Seq[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	na, nb := a.head, b.head
	for na != nil {
		if na.val != nb.val {
			return false
		}
		na, nb = na.next, nb.next
	}
	return true
}
