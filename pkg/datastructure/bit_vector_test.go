package datastructure

import "testing"

func TestBitVectorSetGetCount(t *testing.T) {
	bv := NewBitVector(70, false)
	if bv.Size() != 70 || bv.Count() != 0 {
		t.Fatalf("fresh vector should be empty, size %d count %d", bv.Size(), bv.Count())
	}

	for _, i := range []Index{0, 31, 32, 63, 69} {
		bv.Set(i, true)
	}
	if bv.Count() != 5 {
		t.Errorf("want 5 set bits, got %d", bv.Count())
	}
	if !bv.Get(31) || !bv.Get(32) || bv.Get(33) {
		t.Error("bits around the word boundary are wrong")
	}

	bv.Set(31, false)
	if bv.Get(31) || bv.Count() != 4 {
		t.Error("clearing a bit must only affect that bit")
	}

	full := NewBitVector(40, true)
	if full.Count() != 40 {
		t.Errorf("initially-set vector should have 40 bits, got %d", full.Count())
	}
}

func TestBitVectorView(t *testing.T) {
	words := []Index{0b1010}
	view := BitVectorFromWords(words, 4)

	if view.IsOwned() {
		t.Fatal("a view must not claim ownership")
	}
	if view.Get(0) || !view.Get(1) || view.Get(2) || !view.Get(3) {
		t.Error("view must read the backing words directly")
	}

	defer func() {
		if recover() == nil {
			t.Error("Set on a read-only view must panic")
		}
	}()
	view.Set(0, true)
}

func TestBitVectorClone(t *testing.T) {
	words := []Index{0b1}
	view := BitVectorFromWords(words, 2)

	clone := view.Clone()
	if !clone.IsOwned() {
		t.Fatal("a clone must be owned")
	}
	clone.Set(1, true)
	if !clone.Get(0) || !clone.Get(1) {
		t.Error("clone must start from the view's bits and be mutable")
	}
	if words[0] != 0b1 {
		t.Error("mutating the clone must not touch the backing memory of the view")
	}
}
