// Package pqueue provides a generic binary min-heap priority queue.
//
// What:
//
//   - Queue[V, P] stores arbitrary payloads V keyed by any ordered priority P.
//   - Enqueue appends and sifts up; Dequeue removes the root and sifts down.
//   - There is no decrease-key: callers that need to lower a priority push a
//     duplicate entry and discard stale ones when they are popped.
//
// Complexity:
//
//   - Enqueue: O(log n) amortized.
//   - Dequeue: O(log n).
//   - Len, Peek: O(1).
//
// Errors:
//
//   - ErrEmptyQueue: Dequeue on an empty queue. This is a contract violation
//     and is raised as a panic, not returned.
//
// Ties between equal priorities are broken by heap order and are not stable.
package pqueue
