//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Reports the missing build tag at device creation
package output

import "fmt"

func newPortAudioDevice(appName, streamName string) (Device, error) {
	return nil, fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}
