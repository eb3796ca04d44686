package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazesearch/frontier"
)

// BenchmarkQueue_PushPop measures steady-state FIFO throughput.
func BenchmarkQueue_PushPop(b *testing.B) {
	q := frontier.NewQueue[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		if q.Len() > 512 {
			_, _ = q.Pop()
		}
	}
}

// BenchmarkPriorityQueue_Random pushes random keys and pops half of them.
func BenchmarkPriorityQueue_Random(b *testing.B) {
	rnd := rand.New(rand.NewSource(42))
	keys := make([]float64, 4096)
	for i := range keys {
		keys[i] = float64(rnd.Intn(64))
	}
	pq := frontier.NewPriorityQueue[int](len(keys))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq.PushPriority(keys[i%len(keys)], i)
		if i%2 == 1 {
			_, _ = pq.Pop()
		}
	}
}
