// ABOUTME: Thread-safe byte ring buffer for callback-based playback
// ABOUTME: Feeds audio bytes from Write into the device data callback
package output

import "sync"

// byteRing is a circular byte buffer shared between the writer goroutine
// and the backend's real-time data callback.
type byteRing struct {
	buffer   []byte
	readPos  int
	writePos int
	size     int
	count    int
	mu       sync.Mutex
}

// newByteRing creates a ring buffer with the given capacity in bytes.
func newByteRing(capacity int) *byteRing {
	return &byteRing{
		buffer: make([]byte, capacity),
		size:   capacity,
	}
}

// Write adds bytes to the ring and returns how many fit.
func (rb *byteRing) Write(p []byte) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	written := 0
	for i := 0; i < len(p) && rb.count < rb.size; i++ {
		rb.buffer[rb.writePos] = p[i]
		rb.writePos = (rb.writePos + 1) % rb.size
		rb.count++
		written++
	}
	return written
}

// Read fills p from the ring, zero-filling the tail on underrun, and
// returns the number of buffered bytes consumed.
func (rb *byteRing) Read(p []byte) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	read := 0
	for i := 0; i < len(p) && rb.count > 0; i++ {
		p[i] = rb.buffer[rb.readPos]
		rb.readPos = (rb.readPos + 1) % rb.size
		rb.count--
		read++
	}

	for i := read; i < len(p); i++ {
		p[i] = 0
	}

	return read
}

// Available returns the number of buffered bytes.
func (rb *byteRing) Available() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}
