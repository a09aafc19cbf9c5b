package framing

import (
	"bytes"
	"testing"
)

func TestAccumulator_AppendAndConsume(t *testing.T) {
	a := NewAccumulator()

	if a.Len() != 0 {
		t.Fatalf("new accumulator Len() = %d, want 0", a.Len())
	}

	a.Append([]byte("hello "))
	a.Append([]byte("world"))

	if a.Len() != 11 {
		t.Errorf("Len() = %d, want 11", a.Len())
	}
	if got := a.Bytes(); !bytes.Equal(got, []byte("hello world")) {
		t.Errorf("Bytes() = %q, want %q", got, "hello world")
	}

	a.Consume(6)

	if a.Len() != 5 {
		t.Errorf("Len() after consume = %d, want 5", a.Len())
	}
	if got := a.Bytes(); !bytes.Equal(got, []byte("world")) {
		t.Errorf("Bytes() after consume = %q, want %q", got, "world")
	}
}

func TestAccumulator_AppendCopiesInput(t *testing.T) {
	a := NewAccumulator()

	chunk := []byte("abc")
	a.Append(chunk)
	chunk[0] = 'z'

	if got := a.Bytes(); !bytes.Equal(got, []byte("abc")) {
		t.Errorf("Bytes() = %q after caller mutated chunk, want %q", got, "abc")
	}
}

func TestAccumulator_ConsumeClamps(t *testing.T) {
	a := NewAccumulator()
	a.Append([]byte("abc"))

	a.Consume(-1)
	if a.Len() != 3 {
		t.Errorf("Len() after Consume(-1) = %d, want 3", a.Len())
	}

	a.Consume(100)
	if a.Len() != 0 {
		t.Errorf("Len() after over-consume = %d, want 0", a.Len())
	}
}

func TestAccumulator_Reset(t *testing.T) {
	a := NewAccumulator()
	a.Append([]byte("leftover partial message"))
	a.Consume(4)

	a.Reset()

	if a.Len() != 0 {
		t.Errorf("Len() after reset = %d, want 0", a.Len())
	}

	a.Append([]byte("fresh"))
	if got := a.Bytes(); !bytes.Equal(got, []byte("fresh")) {
		t.Errorf("Bytes() after reset+append = %q, want %q", got, "fresh")
	}
}

func TestAccumulator_CompactionPreservesContent(t *testing.T) {
	a := NewAccumulator()

	// 64KB arrives, then everything but a small tail is consumed. The tail
	// must survive compaction byte for byte.
	big := make([]byte, 64<<10)
	for i := range big {
		big[i] = byte(i % 251)
	}
	a.Append(big)
	a.Consume(len(big) - 100)

	want := big[len(big)-100:]
	if got := a.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("tail after compaction does not match original bytes")
	}
	if a.Len() != 100 {
		t.Errorf("Len() = %d, want 100", a.Len())
	}
}

func TestAccumulator_CompactionBoundsMemory(t *testing.T) {
	a := NewAccumulator()

	// Stream 4MB through in 1KB chunks, consuming each chunk as it lands.
	// Without compaction the backing array would grow to the full 4MB.
	chunk := make([]byte, 1024)
	for i := 0; i < 4096; i++ {
		a.Append(chunk)
		a.Consume(1024)
	}

	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	if c := cap(a.buf); c > 64<<10 {
		t.Errorf("backing array grew to %d bytes, want <= %d", c, 64<<10)
	}
}

func TestAccumulator_InterleavedAppendConsume(t *testing.T) {
	a := NewAccumulator()

	// Reconstruct the stream from what Consume sees and verify it matches
	// exactly what was appended, across many compactions.
	var sent, received []byte
	for i := 0; i < 2000; i++ {
		chunk := []byte{byte(i), byte(i >> 8), byte(i % 7)}
		a.Append(chunk)
		sent = append(sent, chunk...)

		if i%3 == 0 {
			n := a.Len()
			if n > 4 {
				n = 4
			}
			received = append(received, a.Bytes()[:n]...)
			a.Consume(n)
		}
	}
	received = append(received, a.Bytes()...)
	a.Consume(a.Len())

	if !bytes.Equal(sent, received) {
		t.Error("bytes observed through the accumulator differ from bytes appended")
	}
}
