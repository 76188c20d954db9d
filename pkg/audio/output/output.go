// ABOUTME: Audio output device contract and backend selection
// ABOUTME: Defines result codes and the Device interface
package output

import (
	"fmt"
	"log"

	"github.com/rawaudio/rawplay-go/pkg/audio"
)

// Code is a native-style result code. Zero is the universal success
// sentinel; any other value identifies an error interpretable only through
// the issuing device's Strerror.
type Code int

// NoError is the success sentinel.
const NoError Code = 0

// Backend names accepted by CreateDevice.
const (
	BackendMalgo     = "malgo"
	BackendOto       = "oto"
	BackendPortAudio = "portaudio"
)

// Device represents an audio output endpoint.
//
// A device carries at most one open playback stream at a time. Write and
// Drain block until the device has accepted, respectively played, the
// audio handed to them.
type Device interface {
	// Open negotiates a playback stream on the device.
	Open(format audio.Format) Code

	// Write queues p for playback, blocking until all of p is accepted.
	Write(p []byte) Code

	// Drain blocks until all queued audio has finished playing.
	Drain() Code

	// CloseStream closes the open stream. Any failure is ignored so that
	// closing on an error path cannot itself fail.
	CloseStream()

	// Destroy releases the device. The device must not be used afterwards.
	Destroy()

	// Strerror resolves a code previously returned by this device to a
	// descriptive message.
	Strerror(code Code) string
}

// CreateDevice creates an output device using the named backend. It
// returns nil when the device cannot be created, mirroring the
// handle-or-null convention of native create calls; the failure reason is
// logged.
func CreateDevice(backend, appName, streamName string) Device {
	var (
		dev Device
		err error
	)

	switch backend {
	case BackendMalgo:
		dev, err = newMalgoDevice(appName, streamName)
	case BackendOto:
		dev, err = newOtoDevice(appName, streamName)
	case BackendPortAudio:
		dev, err = newPortAudioDevice(appName, streamName)
	default:
		err = fmt.Errorf("unknown audio backend: %q", backend)
	}

	if err != nil {
		log.Printf("Audio device creation failed: %v", err)
		return nil
	}
	return dev
}

// DestroyDevice releases a device. It is the deleter to bind into
// handle.Own when wrapping a CreateDevice result.
func DestroyDevice(d Device) {
	d.Destroy()
}

// deviceLabel formats the app metadata the backends report in their logs.
func deviceLabel(appName, streamName string) string {
	return appName + "/" + streamName
}
