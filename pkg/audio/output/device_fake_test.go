// ABOUTME: In-memory fake device for output package tests
// ABOUTME: Records calls and returns scripted result codes
package output

import (
	"fmt"

	"github.com/rawaudio/rawplay-go/pkg/audio"
)

// fakeDevice records every call and returns scripted codes.
type fakeDevice struct {
	opens    int
	writes   int
	drains   int
	closes   int
	destroys int

	lastFormat   audio.Format
	bytesWritten int

	openCode  Code
	writeCode Code
	drainCode Code
}

var _ Device = (*fakeDevice)(nil)

func (f *fakeDevice) Open(format audio.Format) Code {
	f.opens++
	f.lastFormat = format
	return f.openCode
}

func (f *fakeDevice) Write(p []byte) Code {
	f.writes++
	f.bytesWritten += len(p)
	return f.writeCode
}

func (f *fakeDevice) Drain() Code {
	f.drains++
	return f.drainCode
}

func (f *fakeDevice) CloseStream() {
	f.closes++
}

func (f *fakeDevice) Destroy() {
	f.destroys++
}

func (f *fakeDevice) Strerror(code Code) string {
	return fmt.Sprintf("fake device error %d", int(code))
}
