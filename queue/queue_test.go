package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("MinPopsAscending", func(t *testing.T) {
		pq := NewMin(4)
		heap.Init(pq)

		for _, item := range []Item{
			{Node: 1, Distance: 3.0},
			{Node: 2, Distance: 1.0},
			{Node: 3, Distance: 2.0},
		} {
			heap.Push(pq, item)
		}

		var order []uint32
		for pq.Len() > 0 {
			order = append(order, heap.Pop(pq).(Item).Node)
		}
		assert.Equal(t, []uint32{2, 3, 1}, order)
	})

	t.Run("MaxKeepsSmallestK", func(t *testing.T) {
		// Bounded max heap: evict the current maximum when a smaller
		// distance arrives.
		const k = 3
		pq := NewMax(k)
		heap.Init(pq)

		for node, dist := range map[uint32]float32{1: 5, 2: 1, 3: 4, 4: 2, 5: 3} {
			if pq.Len() < k {
				heap.Push(pq, Item{Node: node, Distance: dist})
				continue
			}
			if dist < pq.Top().(Item).Distance {
				heap.Pop(pq)
				heap.Push(pq, Item{Node: node, Distance: dist})
			}
		}

		require.Equal(t, k, pq.Len())
		var dists []float32
		for pq.Len() > 0 {
			dists = append(dists, heap.Pop(pq).(Item).Distance)
		}
		assert.Equal(t, []float32{3, 2, 1}, dists)
	})

	t.Run("EmptyPop", func(t *testing.T) {
		pq := NewMin(0)
		assert.Equal(t, Item{}, pq.Pop())
		assert.Equal(t, Item{}, pq.Top())
	})
}
