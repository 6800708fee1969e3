// ABOUTME: ProcessTerminal implements RawInput and the byte streams on real files via golang.org/x/term
// ABOUTME: NewStdio wires stdin/stdout into a ready Terminal with detected capabilities

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/mauromedda/promptkit-go/internal/log"
)

// RawInput switches the input device between line-buffered and raw mode.
type RawInput interface {
	EnterRawMode() error
	ExitRawMode() error
}

// ProcessTerminal is a real terminal backed by an input and an output file.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading in and writing out.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the input to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the output dimensions as reported by the OS.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads from the input file.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// NewStdio builds a Terminal on os.Stdin and os.Stdout. Capabilities are
// detected unless overridden by opts. The returned function restores the
// console mode changed by VT enablement.
func NewStdio(getenv func(string) string, opts ...Option) (*Terminal, func() error, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	restore, err := EnableVirtualTerminal(os.Stdout)
	if err != nil {
		log.Debug("virtual terminal processing unavailable: %v", err)
	}

	pt := NewProcessTerminal(os.Stdin, os.Stdout)
	base := []Option{
		WithCapabilities(Detect(os.Stdin, os.Stdout, getenv)),
		WithGetenv(getenv),
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		base = append(base, WithRawInput(pt))
	}
	if lc, ok := NewLegacyConsole(os.Stdout); ok {
		base = append(base, WithLegacyConsole(lc))
	}

	t := New(NewPort(pt, pt), append(base, opts...)...)
	return t, restore, nil
}
