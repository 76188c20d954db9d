// ABOUTME: Tests for the device contract and backend selection
// ABOUTME: Verifies interface compliance and handle-or-nil creation
package output

import (
	"strings"
	"testing"
)

func TestBackendsImplementDevice(t *testing.T) {
	var _ Device = (*malgoDevice)(nil)
	var _ Device = (*otoDevice)(nil)
}

func TestCreateDeviceUnknownBackendReturnsNil(t *testing.T) {
	dev := CreateDevice("bogus", "test", "test")
	if dev != nil {
		t.Errorf("expected nil device for unknown backend, got %T", dev)
	}
}

func TestDeviceLabel(t *testing.T) {
	if got := deviceLabel("rawplay", "raw-audio-player"); got != "rawplay/raw-audio-player" {
		t.Errorf("deviceLabel() = %q", got)
	}
}

func TestCodeLogRoundTrip(t *testing.T) {
	var l codeLog

	c1 := l.fail(errFake("first failure"))
	c2 := l.fail(errFake("second failure"))

	if c1 == NoError || c2 == NoError {
		t.Fatal("fail must never return the success sentinel")
	}
	if c1 == c2 {
		t.Fatal("distinct failures must get distinct codes")
	}

	if got := l.strerror(c1); got != "first failure" {
		t.Errorf("strerror(c1) = %q", got)
	}
	if got := l.strerror(c2); got != "second failure" {
		t.Errorf("strerror(c2) = %q", got)
	}
}

func TestCodeLogUnknownCode(t *testing.T) {
	var l codeLog

	if got := l.strerror(Code(42)); !strings.Contains(got, "42") {
		t.Errorf("unknown code message should name the code, got %q", got)
	}
	if got := l.strerror(NoError); !strings.Contains(got, "unknown") {
		t.Errorf("strerror(0) should report an unknown code, got %q", got)
	}
}

// errFake is a trivial error for codeLog tests.
type errFake string

func (e errFake) Error() string { return string(e) }
