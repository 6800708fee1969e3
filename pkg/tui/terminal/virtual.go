// ABOUTME: VirtualTerminal is a scripted in-memory device for tests without a real TTY
// ABOUTME: Records output, serves queued input chunks, answers cursor queries and tracks raw mode

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

// VirtualTerminal is a fake device for unit tests. Each queued input chunk
// is returned by exactly one Read, mirroring how a TTY delivers one line or
// one keypress at a time.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	input      []string
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	report     func() (row, col int)
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{width: width, height: height}
}

// Open builds a Terminal wired to v for reads, writes and raw mode.
func (v *VirtualTerminal) Open(opts ...Option) *Terminal {
	return New(NewPort(v, v), append([]Option{WithRawInput(v)}, opts...)...)
}

// Type queues input chunks.
func (v *VirtualTerminal) Type(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, chunks...)
}

// AnswerCursorQueries makes every cursor position request queue a report
// built from fn ahead of any pending input.
func (v *VirtualTerminal) AnswerCursorQueries(fn func() (row, col int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.report = fn
}

// Read returns the next queued chunk, or io.EOF when none is left.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, v.input[0])
	if n < len(v.input[0]) {
		v.input[0] = v.input[0][n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	if v.report != nil {
		for range strings.Count(string(p), esc.RequestCursorPosition) {
			row, col := v.report()
			v.input = append([]string{fmt.Sprintf("\x1b[%d;%dR", row, col)}, v.input...)
		}
	}
	return n, nil
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
