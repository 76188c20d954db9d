// ABOUTME: Audio type definitions
// ABOUTME: Defines sample encodings and stream formats
package audio

import "fmt"

// Encoding identifies a sample encoding.
type Encoding int

const (
	// S16LE is signed 16-bit PCM in little-endian byte order, the only
	// encoding the playback path accepts.
	S16LE Encoding = iota
)

// String returns a human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case S16LE:
		return "s16le"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// BytesPerSample returns the storage size of one sample, or 0 for an
// unknown encoding.
func (e Encoding) BytesPerSample() int {
	switch e {
	case S16LE:
		return 2
	default:
		return 0
	}
}

// Format describes a playback stream.
type Format struct {
	Encoding   Encoding
	SampleRate int
	Channels   int
}

// BytesPerSecond returns the byte rate of one second of audio in this
// format.
func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.Channels * f.Encoding.BytesPerSample()
}

// String formats as "s16le 44100Hz 1ch".
func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch", f.Encoding, f.SampleRate, f.Channels)
}
