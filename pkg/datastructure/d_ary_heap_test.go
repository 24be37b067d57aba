package datastructure

import "testing"

func TestMinHeapExtractsInOrder(t *testing.T) {
	for _, d := range []int{2, 4} {
		pq := NewdAryHeap[int](d)
		ranks := []float64{5, 1, 4, 2, 8, 3, 7, 6, 0, 9}
		for item, rank := range ranks {
			pq.Insert(NewPriorityQueueNode(rank, item))
		}

		if pq.Size() != len(ranks) {
			t.Fatalf("d=%d: want size %d, got %d", d, len(ranks), pq.Size())
		}
		if pq.GetMinrank() != 0 {
			t.Fatalf("d=%d: want min rank 0, got %v", d, pq.GetMinrank())
		}

		prev := -1.0
		for !pq.IsEmpty() {
			node, err := pq.ExtractMin()
			if err != nil {
				t.Fatalf("d=%d: extract failed: %v", d, err)
			}
			if node.GetRank() < prev {
				t.Fatalf("d=%d: ranks extracted out of order: %v after %v", d, node.GetRank(), prev)
			}
			prev = node.GetRank()
		}

		if _, err := pq.ExtractMin(); err == nil {
			t.Errorf("d=%d: extracting from an empty heap must fail", d)
		}
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	pq := NewFourAryHeap[string]()
	a := NewPriorityQueueNode(10, "a")
	b := NewPriorityQueueNode(20, "b")
	c := NewPriorityQueueNode(30, "c")
	pq.Insert(a)
	pq.Insert(b)
	pq.Insert(c)

	if err := pq.DecreaseKey(c, 5); err != nil {
		t.Fatalf("decrease key failed: %v", err)
	}
	if err := pq.DecreaseKey(b, 25); err == nil {
		t.Fatal("increasing a key via DecreaseKey must fail")
	}

	node, _ := pq.ExtractMin()
	if node.GetItem() != "c" || node.GetRank() != 5 {
		t.Errorf("want c with rank 5 first, got %s with %v", node.GetItem(), node.GetRank())
	}
	node, _ = pq.ExtractMin()
	if node.GetItem() != "a" {
		t.Errorf("want a second, got %s", node.GetItem())
	}
}

func TestMinHeapGetMinrankEmpty(t *testing.T) {
	pq := NewBinaryHeap[int]()
	if pq.GetMinrank() <= 1e15 {
		t.Error("an empty heap must report an unreachable min rank")
	}
}
