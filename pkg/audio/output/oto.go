// ABOUTME: Oto-based audio output device
// ABOUTME: Streams PCM through a persistent oto player fed by a pipe
package output

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rawaudio/rawplay-go/pkg/audio"
)

// otoDevice plays audio through the oto library. oto needs the stream
// format to create its context, so the context is created lazily in Open
// rather than at device creation.
type otoDevice struct {
	appName    string
	streamName string
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	format     audio.Format
	codeLog
}

func newOtoDevice(appName, streamName string) (*otoDevice, error) {
	return &otoDevice{
		appName:    appName,
		streamName: streamName,
	}, nil
}

// Open creates the oto context if needed and starts a persistent player
// reading from a pipe.
func (d *otoDevice) Open(format audio.Format) Code {
	if format.Encoding != audio.S16LE {
		return d.fail(fmt.Errorf("unsupported encoding: %s", format.Encoding))
	}
	if d.player != nil {
		return d.fail(fmt.Errorf("stream already open"))
	}

	// oto allows only one context per process; reuse it when the format
	// matches, otherwise reopening with a new format cannot work.
	if d.otoCtx != nil && (d.format.SampleRate != format.SampleRate || d.format.Channels != format.Channels) {
		return d.fail(fmt.Errorf("oto context already bound to %s, cannot reopen as %s", d.format, format))
	}

	if d.otoCtx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return d.fail(fmt.Errorf("failed to create oto context: %w", err))
		}
		<-readyChan

		d.otoCtx = ctx
		d.format = format
	}

	d.pipeReader, d.pipeWriter = io.Pipe()
	d.player = d.otoCtx.NewPlayer(d.pipeReader)
	d.player.Play()

	log.Printf("Audio output opened for %s: %s (oto)", deviceLabel(d.appName, d.streamName), format)
	return NoError
}

// Write feeds p into the pipe behind the player, blocking until consumed.
func (d *otoDevice) Write(p []byte) Code {
	if d.pipeWriter == nil {
		return d.fail(fmt.Errorf("stream not open"))
	}
	if _, err := d.pipeWriter.Write(p); err != nil {
		return d.fail(fmt.Errorf("pipe write failed: %w", err))
	}
	return NoError
}

// Drain ends the pipe and waits for the player's buffer to empty.
func (d *otoDevice) Drain() Code {
	if d.player == nil {
		return d.fail(fmt.Errorf("stream not open"))
	}

	if d.pipeWriter != nil {
		d.pipeWriter.Close()
		d.pipeWriter = nil
	}
	for d.player.IsPlaying() && d.player.BufferedSize() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	return NoError
}

// CloseStream tears down the player and pipe.
func (d *otoDevice) CloseStream() {
	if d.pipeWriter != nil {
		d.pipeWriter.Close()
		d.pipeWriter = nil
	}
	if d.player != nil {
		d.player.Close()
		d.player = nil
	}
	if d.pipeReader != nil {
		d.pipeReader.Close()
		d.pipeReader = nil
	}
}

// Destroy closes any open stream and suspends the oto context. The context
// itself cannot be freed; suspension is the closest oto offers.
func (d *otoDevice) Destroy() {
	d.CloseStream()
	if d.otoCtx != nil {
		d.otoCtx.Suspend()
		d.otoCtx = nil
	}
}

// Strerror resolves a code returned by this device.
func (d *otoDevice) Strerror(code Code) string {
	return d.strerror(code)
}
