// ABOUTME: Tests for the byte ring buffer
// ABOUTME: Verifies wraparound, capacity limits, and underrun zero-fill
package output

import (
	"bytes"
	"testing"
)

func TestRingWriteRead(t *testing.T) {
	rb := newByteRing(8)

	n := rb.Write([]byte{1, 2, 3, 4})
	if n != 4 {
		t.Fatalf("Write returned %d, want 4", n)
	}
	if rb.Available() != 4 {
		t.Errorf("Available() = %d, want 4", rb.Available())
	}

	out := make([]byte, 4)
	if got := rb.Read(out); got != 4 {
		t.Fatalf("Read returned %d, want 4", got)
	}
	if !bytes.Equal(out, []byte{1, 2, 3, 4}) {
		t.Errorf("Read gave %v", out)
	}
}

func TestRingCapacityLimit(t *testing.T) {
	rb := newByteRing(4)

	n := rb.Write([]byte{1, 2, 3, 4, 5, 6})
	if n != 4 {
		t.Errorf("Write returned %d, want 4 (capacity)", n)
	}
}

func TestRingUnderrunZeroFills(t *testing.T) {
	rb := newByteRing(8)
	rb.Write([]byte{9, 9})

	out := []byte{1, 1, 1, 1}
	read := rb.Read(out)

	if read != 2 {
		t.Errorf("Read returned %d, want 2", read)
	}
	if !bytes.Equal(out, []byte{9, 9, 0, 0}) {
		t.Errorf("underrun tail not zero-filled: %v", out)
	}
}

func TestRingWraparound(t *testing.T) {
	rb := newByteRing(4)
	out := make([]byte, 2)

	rb.Write([]byte{1, 2, 3})
	rb.Read(out)
	rb.Write([]byte{4, 5})

	got := make([]byte, 3)
	if n := rb.Read(got); n != 3 {
		t.Fatalf("Read returned %d, want 3", n)
	}
	if !bytes.Equal(got, []byte{3, 4, 5}) {
		t.Errorf("wraparound read gave %v", got)
	}
}
