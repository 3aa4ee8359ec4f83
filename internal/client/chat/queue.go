package chat

import (
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/chatapi"
)

// PendingQueue holds live hints between the receive activity that pushes
// them and the render step that drains them.
type PendingQueue struct {
	mu    sync.Mutex
	items []chatapi.Event
	ready chan struct{}
}

func NewPendingQueue() *PendingQueue {
	return &PendingQueue{ready: make(chan struct{}, 1)}
}

// Push appends ev and signals Ready. Signals coalesce.
func (q *PendingQueue) Push(ev chatapi.Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Drain removes and returns everything queued, oldest first.
func (q *PendingQueue) Drain() []chatapi.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

func (q *PendingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Ready receives once after one or more Push calls.
func (q *PendingQueue) Ready() <-chan struct{} {
	return q.ready
}
