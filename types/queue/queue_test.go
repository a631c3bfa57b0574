package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := New[string]()
	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")

	require.Equal(t, 3, q.Len())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "first", head)

	var drained []string
	for q.Len() > 0 {
		item, ok := q.Dequeue()
		require.True(t, ok)
		drained = append(drained, item)
	}
	assert.Equal(t, []string{"first", "second", "third"}, drained)
}

func TestQueueEmpty(t *testing.T) {
	q := New[int]()

	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}
