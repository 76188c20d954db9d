// ABOUTME: Tests for the fatal result-code checking helper
// ABOUTME: Verifies the zero sentinel and the abort path
package output

import (
	"bytes"
	"strings"
	"testing"
)

// interceptAbort redirects Check's stderr and exit for the duration of a
// test and reports what the abort path did.
func interceptAbort(t *testing.T) (*bytes.Buffer, *[]int) {
	t.Helper()

	var buf bytes.Buffer
	var exits []int

	origStderr, origExit := stderr, exit
	stderr = &buf
	exit = func(status int) { exits = append(exits, status) }
	t.Cleanup(func() {
		stderr = origStderr
		exit = origExit
	})

	return &buf, &exits
}

func TestCheckZeroCodeIsSilent(t *testing.T) {
	buf, exits := interceptAbort(t)
	dev := &fakeDevice{}

	Check(dev, NoError)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	if len(*exits) != 0 {
		t.Errorf("expected no exit, got %v", *exits)
	}
}

func TestCheckNonzeroCodeAborts(t *testing.T) {
	buf, exits := interceptAbort(t)
	dev := &fakeDevice{}

	Check(dev, Code(3))

	got := buf.String()
	if got != "fake device error 3\n" {
		t.Errorf("expected single message line, got %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", got)
	}
	if len(*exits) != 1 || (*exits)[0] != 1 {
		t.Errorf("expected one exit with status 1, got %v", *exits)
	}
}
