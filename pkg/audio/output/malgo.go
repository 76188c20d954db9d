// ABOUTME: Malgo-based audio output device
// ABOUTME: Drives miniaudio playback through a ring buffer data callback
package output

import (
	"fmt"
	"log"
	"time"

	"github.com/gen2brain/malgo"
	"github.com/rawaudio/rawplay-go/pkg/audio"
	"github.com/rawaudio/rawplay-go/pkg/handle"
)

// malgoDevice plays audio through miniaudio via malgo. The malgo context
// and playback device are native handles with paired release calls, so
// both are held in owning wrappers.
type malgoDevice struct {
	appName    string
	streamName string
	ctx        *handle.Owned[*malgo.AllocatedContext]
	dev        *handle.Owned[*malgo.Device]
	ring       *byteRing
	format     audio.Format
	codeLog
}

func newMalgoDevice(appName, streamName string) (*malgoDevice, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
	}

	return &malgoDevice{
		appName:    appName,
		streamName: streamName,
		ctx: handle.Own(ctx, func(c *malgo.AllocatedContext) {
			if err := c.Uninit(); err != nil {
				log.Printf("Warning: malgo context uninit error: %v", err)
			}
			c.Free()
		}),
	}, nil
}

// Open initializes and starts the playback device.
func (d *malgoDevice) Open(format audio.Format) Code {
	if format.Encoding != audio.S16LE {
		return d.fail(fmt.Errorf("unsupported encoding: %s", format.Encoding))
	}
	if d.dev != nil && d.dev.Valid() {
		return d.fail(fmt.Errorf("stream already open"))
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = uint32(format.Channels)
	deviceConfig.SampleRate = uint32(format.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	// 500ms of buffered audio between the writer and the callback.
	d.ring = newByteRing(format.BytesPerSecond() / 2)
	d.format = format

	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutputSample, pInputSamples []byte, frameCount uint32) {
			d.ring.Read(pOutputSample)
		},
	}

	dev, err := malgo.InitDevice(d.ctx.Get().Context, deviceConfig, callbacks)
	if err != nil {
		return d.fail(fmt.Errorf("failed to initialize playback device: %w", err))
	}

	if err := dev.Start(); err != nil {
		dev.Uninit()
		return d.fail(fmt.Errorf("failed to start device: %w", err))
	}

	d.dev = handle.Own(dev, func(dv *malgo.Device) {
		if err := dv.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		dv.Uninit()
	})

	log.Printf("Audio output opened for %s: %s (malgo)", deviceLabel(d.appName, d.streamName), format)
	return NoError
}

// Write queues p for playback, blocking until the ring has accepted all of
// it.
func (d *malgoDevice) Write(p []byte) Code {
	if d.dev == nil || !d.dev.Valid() {
		return d.fail(fmt.Errorf("stream not open"))
	}

	for written := 0; written < len(p); {
		n := d.ring.Write(p[written:])
		written += n
		if n == 0 {
			// Ring is full, wait for the callback to consume some of it.
			time.Sleep(5 * time.Millisecond)
		}
	}
	return NoError
}

// Drain blocks until the ring empties, then one extra beat so the hardware
// finishes what the callback already consumed.
func (d *malgoDevice) Drain() Code {
	if d.dev == nil || !d.dev.Valid() {
		return d.fail(fmt.Errorf("stream not open"))
	}

	for d.ring.Available() > 0 {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	return NoError
}

// CloseStream stops and releases the playback device. The context stays
// alive for a possible later Open.
func (d *malgoDevice) CloseStream() {
	if d.dev == nil || !d.dev.Valid() {
		return
	}
	d.dev.Release()
	log.Printf("Audio output closed: %s (malgo)", d.format)
}

// Destroy releases the playback device and the malgo context.
func (d *malgoDevice) Destroy() {
	if d.dev != nil {
		d.dev.Release()
	}
	d.ctx.Release()
}

// Strerror resolves a code returned by this device.
func (d *malgoDevice) Strerror(code Code) string {
	return d.strerror(code)
}
