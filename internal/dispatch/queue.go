package dispatch

import (
	"sync"

	"github.com/anonto42/notifly/backend/internal/models"
)

// Queue is an in-memory FIFO buffer of events awaiting dispatch. Contents
// do not survive a restart: an event lost here stays recorded in the event
// store but will never produce a notification (at-most-once contract).
type Queue struct {
	mu      sync.Mutex
	entries []*models.Event
}

// NewQueue creates an empty dispatch queue
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an event to the tail. Safe to call from concurrent
// request handlers while the dispatcher is draining.
func (q *Queue) Enqueue(event *models.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, event)
}

// DequeueOne removes and returns the head of the queue, or false when the
// queue is empty
func (q *Queue) DequeueOne() (*models.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return nil, false
	}
	event := q.entries[0]
	q.entries = q.entries[1:]
	return event, true
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
