// ABOUTME: Scoped stream guard tying stream lifetime to a lexical scope
// ABOUTME: Opens on construction, closes unconditionally on Close
package output

import (
	"github.com/rawaudio/rawplay-go/pkg/audio"
	"github.com/rawaudio/rawplay-go/pkg/handle"
)

// Stream ties an open playback session on a device to a lexical scope.
//
// A Stream does not own the device. It keeps the owning wrapper reference
// rather than a copy of the device value, so Close always acts on the
// handle the wrapper currently holds; a future reopen of the device cannot
// leave the guard pointing at a stale handle.
//
// The caller must keep the device wrapper alive for the lifetime of the
// Stream. That precondition is not checked at runtime.
type Stream struct {
	device *handle.Owned[Device]
}

// OpenStream opens a playback stream on the wrapped device with the given
// format parameters. A failure is routed through Check and terminates the
// process, so a returned Stream is always fully open. Pair with defer:
//
//	sink := output.OpenStream(dev, audio.S16LE, 44100, 1)
//	defer sink.Close()
func OpenStream(dev *handle.Owned[Device], encoding audio.Encoding, sampleRate, channels int) *Stream {
	format := audio.Format{
		Encoding:   encoding,
		SampleRate: sampleRate,
		Channels:   channels,
	}
	Check(dev.Get(), dev.Get().Open(format))
	return &Stream{device: dev}
}

// Close closes the stream unconditionally, even after earlier errors. The
// close result is deliberately ignored.
func (s *Stream) Close() {
	s.device.Get().CloseStream()
}
