package instantiate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AppendAndLen(t *testing.T) {
	l := NewList[string]()
	assert.Equal(t, 0, l.Len())

	l.Append("a")
	l.Append("b")
	assert.Equal(t, 2, l.Len())
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	head, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, head)

	head, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, head)

	_, ok = q.Dequeue()
	assert.False(t, ok, "dequeue from empty queue must report false")
}

func TestQueue_Concurrent(t *testing.T) {
	const workers = 8
	const perWorker = 100

	q := NewQueue[int]()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q.Enqueue(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, q.Len())
}
