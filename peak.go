package zipper

// Number is the set of built-in numeric types Peak and RaisePeak accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// IsPeak reports whether z focuses a peak: an element with neighbors on both
// sides, each strictly smaller than it. First and last positions have a
// missing neighbor and are never peaks; equality on either side does not
// count.
func IsPeak[T Number](z Zipper[T]) bool {
	prev, ok := z.Previous()
	if !ok {
		return false
	}
	next, ok := z.Next()
	if !ok {
		return false
	}
	return prev < z.Focus() && next < z.Focus()
}

// Peak returns the value of the leftmost peak in s. A single forward scan: a
// sequence with fewer than three elements can never contain a peak. Returns
// ErrEmptySequence for an empty input and ErrNoMatch when no position
// qualifies.
func Peak[T Number](s Seq[T]) (T, error) {
	z, err := FromSeq(s)
	if err != nil {
		var zero T
		return zero, err
	}
	hit, err := FindNext(z.Positions(), IsPeak[T])
	if err != nil {
		var zero T
		return zero, err
	}
	return hit.Focus(), nil
}

// RaisePeak returns s with its leftmost peak incremented by one. One forward
// scan plus one reconstruction, two linear passes in total. Errors exactly as
// Peak does.
func RaisePeak[T Number](s Seq[T]) (Seq[T], error) {
	z, err := FromSeq(s)
	if err != nil {
		return Seq[T]{}, err
	}
	hit, err := FindNext(z.Positions(), IsPeak[T])
	if err != nil {
		return Seq[T]{}, err
	}
	return hit.ModifyFocus(func(v T) T { return v + 1 }).Seq(), nil
}
