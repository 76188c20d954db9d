// ABOUTME: Playback driver orchestration
// ABOUTME: Copies a raw PCM file to the audio output device chunk by chunk
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rawaudio/rawplay-go/internal/config"
	"github.com/rawaudio/rawplay-go/pkg/audio"
	"github.com/rawaudio/rawplay-go/pkg/audio/output"
	"github.com/rawaudio/rawplay-go/pkg/handle"
)

const (
	sampleRate = 44100
	channels   = 1
)

const usageText = `Plays an audio file.
Usage: rawplay <audio-file>
The file must contain raw audio data:
  * With signed 16-bit PCM encoding,
  * In little-endian byte order,
  * Has one channel, and
  * Has sample rate of 44100 Hz.
`

// createDevice is swapped out by tests.
var createDevice = output.CreateDevice

// Run executes the playback driver and returns the process exit status.
//
// Anything other than exactly one argument prints usage and succeeds
// without touching the file or the audio device. Library errors during
// playback abort the process through output.Check, which skips the
// deferred cleanup below; the operating system reclaims the device.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprint(stdout, usageText)
		return 0
	}

	filename := args[0]
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(stderr, "unable to load %s: %v\n", filename, err)
		return 1
	}
	defer file.Close()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	dev := handle.Own(createDevice(cfg.Backend, cfg.AppName, cfg.StreamName), output.DestroyDevice)
	defer dev.Release()
	if !dev.Valid() {
		fmt.Fprintf(stderr, "unable to open audio device (backend %q)\n", cfg.Backend)
		return 1
	}

	sink := output.OpenStream(dev, audio.S16LE, sampleRate, channels)
	defer sink.Close()

	// The original tool sized this as a "two-second buffer"; rate*2 bytes
	// is in fact one second of S16LE mono audio. The literal size is kept.
	buf := make([]byte, sampleRate*2)
	for {
		n, err := file.Read(buf)
		if n <= 0 {
			break
		}
		output.Check(dev.Get(), dev.Get().Write(buf[:n]))
		if err != nil {
			break
		}
	}

	output.Check(dev.Get(), dev.Get().Drain())
	return 0
}
