package pqueue

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmptyQueue is the panic value (wrapped) raised by Dequeue on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: dequeue from empty queue")

// item pairs a payload with its priority.
type item[V any, P constraints.Ordered] struct {
	priority P
	value    V
}

// Queue is a binary min-heap keyed by priority P.
// The zero value is an empty, ready-to-use queue.
type Queue[V any, P constraints.Ordered] struct {
	heap []item[V, P]
}

// New returns an empty queue with room for capacity entries.
func New[V any, P constraints.Ordered](capacity int) *Queue[V, P] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[V, P]{heap: make([]item[V, P], 0, capacity)}
}

// Len returns the number of queued entries.
// Complexity: O(1).
func (q *Queue[V, P]) Len() int {
	return len(q.heap)
}

// Enqueue inserts value with the given priority.
// Complexity: O(log n) amortized.
func (q *Queue[V, P]) Enqueue(priority P, value V) {
	q.heap = append(q.heap, item[V, P]{priority: priority, value: value})
	q.siftUp(len(q.heap) - 1)
}

// Dequeue removes and returns the entry with the smallest priority.
// It panics with an error wrapping ErrEmptyQueue when the queue is empty;
// callers are expected to guard with Len.
// Complexity: O(log n).
func (q *Queue[V, P]) Dequeue() (P, V) {
	n := len(q.heap)
	if n == 0 {
		panic(fmt.Errorf("%w (len=0)", ErrEmptyQueue))
	}
	root := q.heap[0]
	last := n - 1
	q.heap[0] = q.heap[last]
	q.heap[last] = item[V, P]{} // release payload reference
	q.heap = q.heap[:last]
	q.siftDown(0)

	return root.priority, root.value
}

// Peek returns the minimum entry without removing it.
// ok is false when the queue is empty.
func (q *Queue[V, P]) Peek() (priority P, value V, ok bool) {
	if len(q.heap) == 0 {
		return priority, value, false
	}
	return q.heap[0].priority, q.heap[0].value, true
}

// siftUp moves heap[i] toward the root while it is strictly less than its parent.
func (q *Queue[V, P]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown swaps heap[i] with its smaller child until parent <= both children.
func (q *Queue[V, P]) siftDown(i int) {
	n := len(q.heap)
	for 2*i+1 < n {
		left := 2*i + 1
		right := left + 1
		j := left
		if right < n && q.less(right, left) {
			j = right
		}
		if !q.less(j, i) {
			return
		}
		q.swap(i, j)
		i = j
	}
}

func (q *Queue[V, P]) less(i, j int) bool { return q.heap[i].priority < q.heap[j].priority }

func (q *Queue[V, P]) swap(i, j int) { q.heap[i], q.heap[j] = q.heap[j], q.heap[i] }
