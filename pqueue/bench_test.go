package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/elevpath/pqueue"
)

// BenchmarkQueue_PushPop measures a fill-then-drain cycle of 10k entries.
// Complexity: O(n log n).
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(1))
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = r.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int, float64](n)
		for j, k := range keys {
			q.Enqueue(k, j)
		}
		for q.Len() > 0 {
			q.Dequeue()
		}
	}
}
