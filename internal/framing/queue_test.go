package framing

import (
	"context"
	"testing"
	"time"

	"github.com/bft-labs/serialframe/internal/domain"
)

func msg(s string) domain.Message {
	return domain.Message{Data: []byte(s), DelimiterLen: 1}
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()

	for _, s := range []string{"a\n", "b\n", "c\n"} {
		if !q.Enqueue(msg(s)) {
			t.Fatalf("Enqueue(%q) = false, want true", s)
		}
	}

	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}

	for _, want := range []string{"a\n", "b\n", "c\n"} {
		m, ok := q.Dequeue(ctx)
		if !ok {
			t.Fatal("Dequeue() = false with items queued")
		}
		if string(m.Data) != want {
			t.Errorf("Dequeue() = %q, want %q", m.Data, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", q.Len())
	}
}

func TestQueue_DequeueBlocksUntilEnqueue(t *testing.T) {
	q := NewQueue()

	got := make(chan domain.Message, 1)
	go func() {
		m, ok := q.Dequeue(context.Background())
		if ok {
			got <- m
		}
	}()

	// Give the consumer a moment to block, then feed it.
	time.Sleep(20 * time.Millisecond)
	q.Enqueue(msg("late\n"))

	select {
	case m := <-got:
		if string(m.Data) != "late\n" {
			t.Errorf("Dequeue() = %q, want %q", m.Data, "late\n")
		}
	case <-time.After(time.Second):
		t.Fatal("consumer did not wake after enqueue")
	}
}

func TestQueue_DequeueHonorsContext(t *testing.T) {
	q := NewQueue()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() {
		_, ok := q.Dequeue(ctx)
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case ok := <-done:
		if ok {
			t.Error("Dequeue() = true after context cancel, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not return after context cancel")
	}
}

func TestQueue_FinishDrainsThenStops(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()

	q.Enqueue(msg("a\n"))
	q.Enqueue(msg("b\n"))
	q.Finish()

	if q.Enqueue(msg("c\n")) {
		t.Error("Enqueue() after Finish = true, want false")
	}

	// Queued messages still come out, in order.
	for _, want := range []string{"a\n", "b\n"} {
		m, ok := q.Dequeue(ctx)
		if !ok {
			t.Fatalf("Dequeue() = false before queue drained, want %q", want)
		}
		if string(m.Data) != want {
			t.Errorf("Dequeue() = %q, want %q", m.Data, want)
		}
	}

	if _, ok := q.Dequeue(ctx); ok {
		t.Error("Dequeue() = true after finished queue drained, want false")
	}
}

func TestQueue_CloseDiscardsPending(t *testing.T) {
	q := NewQueue()

	q.Enqueue(msg("a\n"))
	q.Enqueue(msg("b\n"))
	q.Enqueue(msg("c\n"))

	if n := q.Close(); n != 3 {
		t.Errorf("Close() = %d discarded, want 3", n)
	}
	if n := q.Close(); n != 0 {
		t.Errorf("second Close() = %d, want 0", n)
	}

	if _, ok := q.Dequeue(context.Background()); ok {
		t.Error("Dequeue() = true after close, want false")
	}
	if q.Enqueue(msg("d\n")) {
		t.Error("Enqueue() after close = true, want false")
	}
}

func TestQueue_CloseUnblocksConsumer(t *testing.T) {
	q := NewQueue()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.Dequeue(context.Background())
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		if ok {
			t.Error("Dequeue() = true after close, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not return after close")
	}
}

func TestQueue_ProducerConsumerOrder(t *testing.T) {
	q := NewQueue()

	const count = 1000
	go func() {
		for i := 0; i < count; i++ {
			q.Enqueue(domain.Message{Data: []byte{byte(i), byte(i >> 8)}})
		}
		q.Finish()
	}()

	ctx := context.Background()
	for i := 0; i < count; i++ {
		m, ok := q.Dequeue(ctx)
		if !ok {
			t.Fatalf("Dequeue() = false at message %d", i)
		}
		got := int(m.Data[0]) | int(m.Data[1])<<8
		if got != i {
			t.Fatalf("message %d arrived out of order as %d", i, got)
		}
	}

	if _, ok := q.Dequeue(ctx); ok {
		t.Error("Dequeue() = true after all messages consumed, want false")
	}
}
