// ABOUTME: Audio fundamentals package providing core types
// ABOUTME: Defines Encoding and Format for raw PCM playback
// Package audio provides fundamental audio types for raw PCM playback.
//
// This package defines the types shared by the output backends and the
// playback driver:
//   - Encoding: Sample encoding identifier (signed 16-bit little-endian)
//   - Format: Describes a playback stream (encoding, sample rate, channels)
//
// Example:
//
//	format := audio.Format{
//	    Encoding:   audio.S16LE,
//	    SampleRate: 44100,
//	    Channels:   1,
//	}
//	chunk := make([]byte, format.BytesPerSecond())
package audio
