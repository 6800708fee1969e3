// ABOUTME: Capability detection: whether escape sequences are honoured and cursor reports can be read
// ABOUTME: Uses go-isatty for TTY checks and termenv for the color profile and Windows VT enablement

package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities reports what the attached terminal can do.
type Capabilities interface {
	SupportsStyling() bool
	SupportsCursorQuery() bool
}

// Caps is a static Capabilities value.
type Caps struct {
	Styling     bool
	CursorQuery bool
}

func (c Caps) SupportsStyling() bool     { return c.Styling }
func (c Caps) SupportsCursorQuery() bool { return c.Styling && c.CursorQuery }

// environ adapts a getenv function to termenv.Environ.
type environ func(string) string

func (e environ) Getenv(key string) string { return e(key) }
func (e environ) Environ() []string        { return nil }

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Detect inspects in, out and the environment. Styling needs an output TTY,
// a TERM other than "dumb" and a color profile above plain ASCII (NO_COLOR
// and CLICOLOR_FORCE are honoured). Cursor queries additionally need the
// input to be a TTY so the report can be read back.
func Detect(in, out *os.File, getenv func(string) string) Caps {
	if getenv == nil {
		getenv = os.Getenv
	}
	if !isTTY(out) || getenv("TERM") == "dumb" {
		return Caps{}
	}
	o := termenv.NewOutput(out, termenv.WithEnvironment(environ(getenv)))
	if o.EnvColorProfile() == termenv.Ascii {
		return Caps{}
	}
	return Caps{Styling: true, CursorQuery: isTTY(in)}
}

// EnableVirtualTerminal turns on VT sequence processing for out on Windows
// consoles. The returned function restores the previous console mode; on
// other platforms both are no-ops.
func EnableVirtualTerminal(out *os.File) (func() error, error) {
	restore, err := termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(out))
	if err != nil {
		return func() error { return nil }, err
	}
	if restore == nil {
		restore = func() error { return nil }
	}
	return restore, nil
}
