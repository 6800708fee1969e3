// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the Terminal

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Overridable in tests.
var (
	panicOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RestoreOnPanic should be deferred at the top of main. On panic it resets
// the rendition, shows the cursor, leaves raw mode, prints the panic value
// and stack trace, then exits with code 1.
func RestoreOnPanic(t *Terminal) {
	r := recover()
	if r == nil {
		return
	}

	if t != nil {
		_ = t.Restore()
	}

	fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}
