// ABOUTME: Fatal result-code checking helper
// ABOUTME: Reports the device's error message and terminates the process
package output

import (
	"fmt"
	"io"
	"os"
)

// Replaced in tests to observe the abort path.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Check enforces the abort-on-error policy: a zero code returns silently;
// any other code writes the device's message for it to standard error and
// terminates the process with status 1.
//
// There is no recovery path. Note that terminating here bypasses pending
// defers, so cleanup registered by the caller does not run; the operating
// system reclaims the device.
func Check(dev Device, code Code) {
	if code == NoError {
		return
	}
	fmt.Fprintln(stderr, dev.Strerror(code))
	exit(1)
}
