//go:build portaudio

// ABOUTME: PortAudio-based audio output device
// ABOUTME: Blocking-mode playback via gordonklaus/portaudio
package output

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
	"github.com/rawaudio/rawplay-go/pkg/audio"
)

const portAudioFrames = 1024

// portAudioDevice plays audio through PortAudio in blocking I/O mode.
type portAudioDevice struct {
	appName    string
	streamName string
	stream     *portaudio.Stream
	buf        []int16
	channels   int
	stopped    bool
	codeLog
}

func newPortAudioDevice(appName, streamName string) (*portAudioDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	return &portAudioDevice{
		appName:    appName,
		streamName: streamName,
	}, nil
}

// Open starts a blocking-mode stream on the default output device.
func (d *portAudioDevice) Open(format audio.Format) Code {
	if format.Encoding != audio.S16LE {
		return d.fail(fmt.Errorf("unsupported encoding: %s", format.Encoding))
	}
	if d.stream != nil {
		return d.fail(fmt.Errorf("stream already open"))
	}

	d.channels = format.Channels
	d.buf = make([]int16, portAudioFrames*format.Channels)

	stream, err := portaudio.OpenDefaultStream(0, format.Channels, float64(format.SampleRate), portAudioFrames, &d.buf)
	if err != nil {
		return d.fail(fmt.Errorf("failed to open stream: %w", err))
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return d.fail(fmt.Errorf("failed to start stream: %w", err))
	}

	d.stream = stream
	d.stopped = false
	log.Printf("Audio output opened for %s: %s (portaudio)", deviceLabel(d.appName, d.streamName), format)
	return NoError
}

// Write plays p one hardware buffer at a time, zero-padding the final
// partial buffer.
func (d *portAudioDevice) Write(p []byte) Code {
	if d.stream == nil {
		return d.fail(fmt.Errorf("stream not open"))
	}

	samples := len(p) / 2
	for offset := 0; offset < samples; offset += len(d.buf) {
		n := 0
		for ; n < len(d.buf) && offset+n < samples; n++ {
			d.buf[n] = int16(binary.LittleEndian.Uint16(p[(offset+n)*2:]))
		}
		for i := n; i < len(d.buf); i++ {
			d.buf[i] = 0
		}
		if err := d.stream.Write(); err != nil {
			return d.fail(fmt.Errorf("stream write failed: %w", err))
		}
	}
	return NoError
}

// Drain stops the stream, which blocks until pending buffers have played.
func (d *portAudioDevice) Drain() Code {
	if d.stream == nil {
		return d.fail(fmt.Errorf("stream not open"))
	}
	if !d.stopped {
		if err := d.stream.Stop(); err != nil {
			return d.fail(fmt.Errorf("stream stop failed: %w", err))
		}
		d.stopped = true
	}
	return NoError
}

// CloseStream stops and closes the stream, ignoring failures.
func (d *portAudioDevice) CloseStream() {
	if d.stream == nil {
		return
	}
	if !d.stopped {
		if err := d.stream.Stop(); err != nil {
			log.Printf("Warning: portaudio stream stop error: %v", err)
		}
	}
	if err := d.stream.Close(); err != nil {
		log.Printf("Warning: portaudio stream close error: %v", err)
	}
	d.stream = nil
}

// Destroy closes any open stream and terminates PortAudio.
func (d *portAudioDevice) Destroy() {
	d.CloseStream()
	if err := portaudio.Terminate(); err != nil {
		log.Printf("Warning: portaudio terminate error: %v", err)
	}
}

// Strerror resolves a code returned by this device.
func (d *portAudioDevice) Strerror(code Code) string {
	return d.strerror(code)
}
