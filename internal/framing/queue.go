package framing

import (
	"context"
	"sync"

	"github.com/bft-labs/serialframe/internal/domain"
)

// Queue is an unbounded FIFO of framed messages. It is the only
// synchronization point between the framing loop (producer) and the dispatch
// loop (consumer). There is no capacity limit: a slow receiver grows the
// queue rather than stalling the read path.
type Queue struct {
	mu       sync.Mutex
	items    []domain.Message
	head     int
	finished bool
	closed   bool
	wake     chan struct{}
}

// NewQueue returns an empty open queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Enqueue appends a message. Returns false if the queue no longer accepts
// messages because Finish or Close was called.
func (q *Queue) Enqueue(msg domain.Message) bool {
	q.mu.Lock()
	if q.finished || q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, msg)
	q.mu.Unlock()

	q.signal()
	return true
}

// Dequeue removes and returns the oldest message, blocking while the queue
// is empty. Returns ok=false when the context is done, when the queue was
// closed, or when it was finished and fully drained. A message that has been
// returned is the caller's to deliver; Dequeue never hands out the same
// message twice.
func (q *Queue) Dequeue(ctx context.Context) (domain.Message, bool) {
	for {
		q.mu.Lock()
		if !q.closed && q.head < len(q.items) {
			msg := q.items[q.head]
			q.items[q.head] = domain.Message{}
			q.head++
			if q.head == len(q.items) {
				// Fully drained; reuse the backing array from the front.
				q.items = q.items[:0]
				q.head = 0
			}
			q.mu.Unlock()
			return msg, true
		}
		done := q.closed || q.finished
		q.mu.Unlock()

		if done {
			return domain.Message{}, false
		}

		select {
		case <-ctx.Done():
			return domain.Message{}, false
		case <-q.wake:
		}
	}
}

// Finish stops accepting new messages but lets the consumer drain what is
// already queued. Used when the input stream ends cleanly.
func (q *Queue) Finish() {
	q.mu.Lock()
	q.finished = true
	q.mu.Unlock()
	q.signal()
}

// Close drops all queued messages and stops the queue. Returns how many
// messages were discarded without dispatch. Safe to call more than once;
// later calls return 0.
func (q *Queue) Close() int {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0
	}
	q.closed = true
	n := len(q.items) - q.head
	q.items = nil
	q.head = 0
	q.mu.Unlock()

	q.signal()
	return n
}

// Len returns the number of queued messages awaiting dispatch.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// signal nudges a blocked consumer. The channel is 1-buffered, so a pending
// nudge is enough; the consumer re-checks state after waking.
func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
