package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// PriorityQueue is a min-heap keyed by priority. Items with equal priority
// dequeue in insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap *pq_heap[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	h := pq_heap[T, P]{
		items: make([]pq_item[T, P], 0, cap),
	}
	return PriorityQueue[T, P]{heap: &h}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.heap.count += 1
	heap.Push(self.heap, pq_item[T, P]{
		value:    item,
		priority: priority,
		order:    self.heap.count,
	})
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.heap.Len() == 0 {
		var t T
		return t, false
	}
	item := heap.Pop(self.heap).(pq_item[T, P])
	return item.value, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.heap.Len()
}

type pq_item[T any, P constraints.Ordered] struct {
	value    T
	priority P
	order    int64
}

type pq_heap[T any, P constraints.Ordered] struct {
	items []pq_item[T, P]
	count int64
}

func (self *pq_heap[T, P]) Len() int {
	return len(self.items)
}

func (self *pq_heap[T, P]) Less(i, j int) bool {
	if self.items[i].priority == self.items[j].priority {
		return self.items[i].order < self.items[j].order
	}
	return self.items[i].priority < self.items[j].priority
}

func (self *pq_heap[T, P]) Swap(i, j int) {
	self.items[i], self.items[j] = self.items[j], self.items[i]
}

func (self *pq_heap[T, P]) Push(x any) {
	self.items = append(self.items, x.(pq_item[T, P]))
}

func (self *pq_heap[T, P]) Pop() any {
	old := self.items
	n := len(old)
	item := old[n-1]
	self.items = old[:n-1]
	return item
}
