// ABOUTME: Screen is an emulated terminal for tests: output is rendered by the gopyte VT engine
// ABOUTME: It answers cursor position queries, echoes cooked input and tracks raw mode like a TTY

// Package terminaltest provides an emulated screen for testing code that
// drives a terminal.Terminal.
package terminaltest

import (
	"fmt"
	"io"
	"strings"
	"sync"

	gopyte "github.com/scottpeterman/gopyte/gopyte"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
)

type chunk struct {
	data string
	echo bool
}

// Screen renders everything written to it and serves scripted input one
// chunk per Read. Cooked-mode input is echoed onto the screen as it is read,
// the way a TTY line discipline would.
type Screen struct {
	mu         sync.Mutex
	screen     *gopyte.NativeScreen
	stream     *gopyte.Stream
	input      []chunk
	transcript strings.Builder
	raw        bool
	rawEntries int
	queries    int
}

// New returns a blank cols x rows screen with the cursor at the origin.
func New(cols, rows int) *Screen {
	scr := gopyte.NewNativeScreen(cols, rows)
	return &Screen{screen: scr, stream: gopyte.NewStream(scr, false)}
}

// Open returns a cursor-query capable Terminal bound to s. Later options
// override the defaults, e.g. to force a native dialect.
func (s *Screen) Open(opts ...terminal.Option) *terminal.Terminal {
	base := []terminal.Option{
		terminal.WithCapabilities(terminal.Caps{Styling: true, CursorQuery: true}),
		terminal.WithRawInput(s),
	}
	return terminal.New(terminal.NewPort(s, s), append(base, opts...)...)
}

// Type queues input chunks, typically whole lines ending in "\n" or single
// key sequences.
func (s *Screen) Type(chunks ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range chunks {
		s.input = append(s.input, chunk{data: c, echo: true})
	}
}

// Feed renders data as if a program wrote it, without recording it.
func (s *Screen) Feed(data string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stream.Feed(data)
}

// Read serves the next chunk, or io.EOF when the script is exhausted.
func (s *Screen) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.input) == 0 {
		return 0, io.EOF
	}
	c := s.input[0]
	n := copy(p, c.data)
	if n < len(c.data) {
		s.input[0].data = c.data[n:]
	} else {
		s.input = s.input[1:]
	}
	if c.echo && !s.raw {
		s.stream.Feed(c.data[:n])
	}
	return n, nil
}

// Write renders p. Every cursor position request is answered with the
// cursor position at that point of the stream.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := string(p)
	s.transcript.WriteString(data)
	for {
		before, after, found := strings.Cut(data, esc.RequestCursorPosition)
		s.stream.Feed(before)
		if !found {
			break
		}
		s.queries++
		x, y := s.screen.GetCursor()
		report := chunk{data: fmt.Sprintf("\x1b[%d;%dR", y+1, x+1)}
		s.input = append([]chunk{report}, s.input...)
		data = after
	}
	return len(p), nil
}

// EnterRawMode disables echo.
func (s *Screen) EnterRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = true
	s.rawEntries++
	return nil
}

// ExitRawMode re-enables echo.
func (s *Screen) ExitRawMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = false
	return nil
}

// Lines returns the screen rows with trailing blanks trimmed, dropping
// empty rows at the bottom.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.screen.GetDisplay()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}

// Row returns one 1-indexed screen row without trailing blanks.
func (s *Screen) Row(row int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.screen.GetDisplay()
	if row < 1 || row > len(lines) {
		return ""
	}
	return lines[row-1]
}

// Cursor returns the 1-indexed cursor position.
func (s *Screen) Cursor() terminal.CursorPosition {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, y := s.screen.GetCursor()
	return terminal.CursorPosition{Row: y + 1, Column: x + 1}
}

// Transcript returns every byte written so far.
func (s *Screen) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transcript.String()
}

// IsRaw reports whether raw mode is active.
func (s *Screen) IsRaw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.raw
}

// RawEntries counts transitions into raw mode.
func (s *Screen) RawEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rawEntries
}

// Queries counts cursor position requests answered.
func (s *Screen) Queries() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queries
}

// Pending reports how many scripted input chunks were not consumed.
func (s *Screen) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.input)
}
