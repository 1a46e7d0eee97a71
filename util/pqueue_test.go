package util

import (
	"testing"
)

func TestPriorityQueueOrdering(t *testing.T) {
	queue := NewPriorityQueue[string, int32](10)
	queue.Enqueue("c", 30)
	queue.Enqueue("a", 10)
	queue.Enqueue("b", 20)

	want := []string{"a", "b", "c"}
	for _, w := range want {
		item, ok := queue.Dequeue()
		if !ok {
			t.Fatalf("queue exhausted, want %v", w)
		}
		if item != w {
			t.Errorf("item = %v; want %v", item, w)
		}
	}
	if _, ok := queue.Dequeue(); ok {
		t.Errorf("queue should be empty")
	}
}

func TestPriorityQueueStableTies(t *testing.T) {
	queue := NewPriorityQueue[int, float64](10)
	for i := 0; i < 8; i++ {
		queue.Enqueue(i, 1.0)
	}
	for i := 0; i < 8; i++ {
		item, _ := queue.Dequeue()
		if item != i {
			t.Errorf("item = %v; want %v (insertion order on equal priority)", item, i)
		}
	}
}

func TestPriorityQueueInterleaved(t *testing.T) {
	queue := NewPriorityQueue[string, int32](10)
	queue.Enqueue("late", 100)
	queue.Enqueue("early", 5)
	item, _ := queue.Dequeue()
	if item != "early" {
		t.Errorf("item = %v; want early", item)
	}
	queue.Enqueue("earlier", 1)
	item, _ = queue.Dequeue()
	if item != "earlier" {
		t.Errorf("item = %v; want earlier", item)
	}
	if queue.Length() != 1 {
		t.Errorf("length = %v; want 1", queue.Length())
	}
}
