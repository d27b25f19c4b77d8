package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_BuffersWithoutConsumer(t *testing.T) {
	q := newQueue[int]()

	for i := 0; i < 1000; i++ {
		q.Push(i)
	}
	q.Close()

	got := make([]int, 0, 1000)
	for v := range q.Out() {
		got = append(got, v)
	}

	assert.Len(t, got, 1000)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueue_CloseEmpty(t *testing.T) {
	q := newQueue[string]()
	q.Close()

	_, ok := <-q.Out()
	assert.False(t, ok)
}
