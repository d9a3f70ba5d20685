package zipper

import (
	"testing"
)

func TestFindNext(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 2, 3, 4))

	hit, err := FindNext(z.Positions(), func(p Zipper[int]) bool {
		return p.Focus() > 2
	})
	if err != nil {
		t.Fatalf("FindNext failed: %v", err)
	}
	if hit.Focus() != 3 {
		t.Errorf("Expected focus 3, got %d", hit.Focus())
	}
	if hit.Offset() != 2 {
		t.Errorf("Expected offset 2, got %d", hit.Offset())
	}
}

func TestFindNextNoMatch(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 2, 3))

	_, err := FindNext(z.Positions(), func(p Zipper[int]) bool {
		return p.Focus() > 10
	})
	if err != ErrNoMatch {
		t.Errorf("Expected ErrNoMatch, got %v", err)
	}
}

func TestFindNextLeftmostWins(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 9, 2, 9, 3))

	hit, err := FindNext(z.Positions(), func(p Zipper[int]) bool {
		return p.Focus() == 9
	})
	if err != nil {
		t.Fatalf("FindNext failed: %v", err)
	}
	if hit.Offset() != 1 {
		t.Errorf("Expected the leftmost match at offset 1, got %d", hit.Offset())
	}
}

func TestFindNextStopsScanning(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 2, 3, 4, 5))

	examined := 0
	_, err := FindNext(z.Positions(), func(p Zipper[int]) bool {
		examined++
		return p.Focus() == 2
	})
	if err != nil {
		t.Fatalf("FindNext failed: %v", err)
	}
	if examined != 2 {
		t.Errorf("Expected 2 positions examined, got %d", examined)
	}
}

func TestFindNextNeighborPredicate(t *testing.T) {
	z, _ := FromSeq(SeqOf(3, 1, 4, 1, 5))

	// First position whose left neighbor is larger than the focus.
	hit, err := FindNext(z.Positions(), func(p Zipper[int]) bool {
		prev, ok := p.Previous()
		return ok && prev > p.Focus()
	})
	if err != nil {
		t.Fatalf("FindNext failed: %v", err)
	}
	if hit.Offset() != 1 || hit.Focus() != 1 {
		t.Errorf("Expected offset 1 focus 1, got offset %d focus %d", hit.Offset(), hit.Focus())
	}
}

func TestFindAll(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 9, 2, 9, 3))

	hits := FindAll(z.Positions(), func(p Zipper[int]) bool {
		return p.Focus() == 9
	})
	if len(hits) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(hits))
	}
	if hits[0].Offset() != 1 || hits[1].Offset() != 3 {
		t.Errorf("Matches out of order: offsets %d, %d", hits[0].Offset(), hits[1].Offset())
	}
}

func TestFindAllEmpty(t *testing.T) {
	z, _ := FromSeq(SeqOf(1, 2))

	hits := FindAll(z.Positions(), func(p Zipper[int]) bool { return false })
	if len(hits) != 0 {
		t.Errorf("Expected no matches, got %d", len(hits))
	}
}
