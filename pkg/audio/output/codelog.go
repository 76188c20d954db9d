// ABOUTME: Result-code bookkeeping shared by backends
// ABOUTME: Maps codes to the recorded errors behind them
package output

import (
	"fmt"
	"sync"
)

// codeLog records backend errors and hands out the codes that identify
// them. Code n resolves to the nth recorded error, which keeps messages
// device-specific without a global error table.
type codeLog struct {
	mu   sync.Mutex
	errs []error
}

// fail records err and returns its code.
func (l *codeLog) fail(err error) Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
	return Code(len(l.errs))
}

// strerror resolves a recorded code to its message.
func (l *codeLog) strerror(code Code) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := int(code) - 1
	if i < 0 || i >= len(l.errs) {
		return fmt.Sprintf("unknown error code %d", int(code))
	}
	return l.errs[i].Error()
}
