package actionqueue

import (
	"sync"

	"github.com/google/uuid"
)

// Queue is a single-reader FIFO of actions. Enqueue is safe to call from
// any goroutine (a UI or scripting layer feeding work in); Peek/Pop are
// meant to be called only from the tick loop.
type Queue struct {
	mu    sync.Mutex
	items []Action
}

// New builds an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue stamps action with a fresh correlation ID if it doesn't already
// have one, and appends it to the back of the queue.
func (q *Queue) Enqueue(action Action) Action {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	q.mu.Lock()
	q.items = append(q.items, action)
	q.mu.Unlock()
	return action
}

// Peek returns the action at the head of the queue without removing it.
func (q *Queue) Peek() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Action{}, false
	}
	return q.items[0], true
}

// Pop removes and returns the action at the head of the queue.
func (q *Queue) Pop() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Action{}, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len returns the number of actions waiting, including the head.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear discards every queued action.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.items = nil
	q.mu.Unlock()
}
