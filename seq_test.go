package zipper

import (
	"testing"
)

func TestSeqZeroValue(t *testing.T) {
	var s Seq[int]
	if !s.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Expected length 0, got %d", s.Len())
	}
	if _, ok := s.Head(); ok {
		t.Error("Head of empty sequence should report absent")
	}
	if !s.Tail().IsEmpty() {
		t.Error("Tail of empty sequence should be empty")
	}
}

func TestSeqOf(t *testing.T) {
	s := SeqOf(1, 2, 3)
	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	head, ok := s.Head()
	if !ok || head != 1 {
		t.Errorf("Expected head 1, got %d (ok=%v)", head, ok)
	}
	got := s.ToSlice()
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSeqCons(t *testing.T) {
	s := SeqOf(2, 3)
	s2 := s.Cons(1)

	if s2.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s2.Len())
	}
	if !SeqEqual(s2, SeqOf(1, 2, 3)) {
		t.Errorf("Cons result incorrect: %v", s2.ToSlice())
	}
	// Original untouched
	if !SeqEqual(s, SeqOf(2, 3)) {
		t.Errorf("Cons mutated its receiver: %v", s.ToSlice())
	}
}

func TestSeqReverse(t *testing.T) {
	if !SeqEqual(SeqOf(1, 2, 3).Reverse(), SeqOf(3, 2, 1)) {
		t.Error("Reverse incorrect")
	}
	if !SeqEqual(Seq[int]{}.Reverse(), Seq[int]{}) {
		t.Error("Reverse of empty should be empty")
	}
	if !SeqEqual(SeqOf(7).Reverse(), SeqOf(7)) {
		t.Error("Reverse of singleton incorrect")
	}
}

func TestSeqConcat(t *testing.T) {
	a := SeqOf(1, 2)
	b := SeqOf(3, 4)

	if !SeqEqual(a.Concat(b), SeqOf(1, 2, 3, 4)) {
		t.Errorf("Concat incorrect: %v", a.Concat(b).ToSlice())
	}
	if !SeqEqual(Seq[int]{}.Concat(b), b) {
		t.Error("Concat with empty left incorrect")
	}
	if !SeqEqual(a.Concat(Seq[int]{}), a) {
		t.Error("Concat with empty right incorrect")
	}
	// Operands untouched
	if !SeqEqual(a, SeqOf(1, 2)) || !SeqEqual(b, SeqOf(3, 4)) {
		t.Error("Concat mutated an operand")
	}
}

func TestSeqAll(t *testing.T) {
	var got []int
	for v := range SeqOf(1, 2, 3).All() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("All yielded %v", got)
	}

	// Early break stops iteration
	count := 0
	for range SeqOf(1, 2, 3).All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Expected 1 element before break, got %d", count)
	}
}

func TestSeqEqual(t *testing.T) {
	if !SeqEqual(SeqOf(1, 2), SeqOf(1, 2)) {
		t.Error("Equal sequences reported unequal")
	}
	if SeqEqual(SeqOf(1, 2), SeqOf(1, 3)) {
		t.Error("Unequal elements reported equal")
	}
	if SeqEqual(SeqOf(1, 2), SeqOf(1, 2, 3)) {
		t.Error("Different lengths reported equal")
	}
}
