// Package frontier provides the min-priority queue shared by uniform-cost
// and A* search.
//
// Entries are ordered by Priority ascending, then by Word ascending, so two
// runs over the same graph pop entries in the same order regardless of heap
// internals. Superseded entries are not removed: callers push a fresh entry
// on every improvement and skip stale ones when popped ("lazy decrease-key").
package frontier

import "container/heap"

// Item is one frontier entry.
//
//   - Word:     the word to expand.
//   - Priority: heap key (g for UCS, g+h for A*).
//   - Cost:     accumulated path cost g at push time, used for the stale check.
type Item struct {
	Word     string
	Priority int
	Cost     int
}

// Queue is a deterministic min-heap of Items. The zero value is ready to use.
type Queue struct {
	items itemPQ
}

// New returns an empty Queue with room for capacity entries.
func New(capacity int) *Queue {
	return &Queue{items: make(itemPQ, 0, capacity)}
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return q.items.Len() }

// Push adds an entry. Complexity: O(log n).
func (q *Queue) Push(it Item) { heap.Push(&q.items, it) }

// Pop removes and returns the smallest entry. It panics on an empty queue,
// like container/heap. Complexity: O(log n).
func (q *Queue) Pop() Item { return heap.Pop(&q.items).(Item) }

// itemPQ implements heap.Interface.
type itemPQ []Item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}

	return pq[i].Word < pq[j].Word
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(Item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
