package queue

import (
	"container/heap"
)

// Priorizable is the contract for items managed by the MinHeap. The stored
// index enables decrease-key updates via heap.Fix.
type Priorizable interface {
	Priority() float64
	Index() int
	SetIndex(index int)
}

type MinHeap[T Priorizable] struct {
	queue priorityQueue
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{}
	h.queue = make(priorityQueue, len(items))
	for i, item := range items {
		h.queue[i] = item
		item.SetIndex(i)
	}
	heap.Init(&h.queue)
	return h
}

func (h *MinHeap[T]) Len() int    { return h.queue.Len() }
func (h *MinHeap[T]) Push(item T) { heap.Push(&h.queue, item) }
func (h *MinHeap[T]) Pop() T      { return heap.Pop(&h.queue).(T) }

// Update restores the heap ordering after the item's priority changed.
func (h *MinHeap[T]) Update(item T) { heap.Fix(&h.queue, item.Index()) }

func (h *MinHeap[T]) Peek() T { return h.queue[0].(T) }

// Implements heap.Interface
type priorityQueue []Priorizable

func (q priorityQueue) Len() int           { return len(q) }
func (q priorityQueue) Less(i, j int) bool { return q[i].Priority() < q[j].Priority() }
func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].SetIndex(i)
	q[j].SetIndex(j)
}

func (q *priorityQueue) Push(item any) {
	n := len(*q)
	pqItem := item.(Priorizable)
	pqItem.SetIndex(n)
	*q = append(*q, pqItem)
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1) // for safety
	*q = old[:n-1]
	return item
}
