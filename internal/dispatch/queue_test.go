package dispatch

import (
	"sync"
	"testing"

	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue()
	first := &models.Event{EventID: "e1"}
	second := &models.Event{EventID: "e2"}
	third := &models.Event{EventID: "e3"}

	q.Enqueue(first)
	q.Enqueue(second)
	q.Enqueue(third)
	require.Equal(t, 3, q.Len())

	for _, want := range []string{"e1", "e2", "e3"} {
		event, ok := q.DequeueOne()
		require.True(t, ok)
		assert.Equal(t, want, event.EventID)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()

	event, ok := q.DequeueOne()
	assert.False(t, ok)
	assert.Nil(t, event)
}

func TestQueueConcurrentEnqueue(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Enqueue(&models.Event{EventID: "event"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())
}

func TestQueueEnqueueDuringDrain(t *testing.T) {
	q := NewQueue()
	const total = 200

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			q.Enqueue(&models.Event{EventID: "event"})
		}
	}()

	drained := 0
	for drained < total {
		if _, ok := q.DequeueOne(); ok {
			drained++
		}
	}
	<-done

	assert.Equal(t, total, drained)
	assert.Equal(t, 0, q.Len())
}
