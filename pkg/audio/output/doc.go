// ABOUTME: Audio output package for raw PCM playback
// ABOUTME: Provides the Device contract, stream guard, and backends
// Package output provides audio playback devices for raw PCM audio.
//
// A Device is an opaque output endpoint created by CreateDevice and
// released by DestroyDevice. Operations return integer result codes where
// zero means success; any other value resolves to a message through the
// device's Strerror. Check enforces the fatal abort-on-error policy used
// by the rawplay tool.
//
// Supported backends: malgo (miniaudio, the default), oto, and portaudio
// (behind the portaudio build tag).
//
// Example:
//
//	dev := handle.Own(output.CreateDevice(output.BackendMalgo, "myapp", "playback"), output.DestroyDevice)
//	defer dev.Release()
//	sink := output.OpenStream(dev, audio.S16LE, 44100, 1)
//	defer sink.Close()
//	output.Check(dev.Get(), dev.Get().Write(pcm))
//	output.Check(dev.Get(), dev.Get().Drain())
package output
