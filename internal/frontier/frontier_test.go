package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/internal/frontier"
)

func TestQueue_OrderAndTieBreak(t *testing.T) {
	q := frontier.New(4)
	q.Push(frontier.Item{Word: "DOG", Priority: 2})
	q.Push(frontier.Item{Word: "COG", Priority: 2})
	q.Push(frontier.Item{Word: "ZAP", Priority: 1})
	q.Push(frontier.Item{Word: "CAT", Priority: 3})
	q.Push(frontier.Item{Word: "ANT", Priority: 2})

	var got []string
	for q.Len() > 0 {
		got = append(got, q.Pop().Word)
	}
	assert.Equal(t, []string{"ZAP", "ANT", "COG", "DOG", "CAT"}, got)
}

func TestQueue_ZeroValue(t *testing.T) {
	var q frontier.Queue
	q.Push(frontier.Item{Word: "A", Priority: 1, Cost: 1})
	assert.Equal(t, 1, q.Len())
	it := q.Pop()
	assert.Equal(t, "A", it.Word)
	assert.Equal(t, 1, it.Cost)
	assert.Equal(t, 0, q.Len())
}
