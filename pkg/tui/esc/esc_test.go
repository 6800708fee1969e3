// ABOUTME: Table-driven tests for cursor, erase, scroll, dialect and DSR sequences
// ABOUTME: Checks exact byte output against the CSI grammar terminals expect

package esc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "up", got: CursorUp(3), want: "\x1b[3A"},
		{name: "down", got: CursorDown(1), want: "\x1b[1B"},
		{name: "forward", got: CursorForward(12), want: "\x1b[12C"},
		{name: "back", got: CursorBack(2), want: "\x1b[2D"},
		{name: "zero count defaults to one", got: CursorUp(0), want: "\x1b[1A"},
		{name: "negative count defaults to one", got: CursorBack(-4), want: "\x1b[1D"},
		{name: "column", got: CursorColumn(7), want: "\x1b[7G"},
		{name: "absolute", got: CursorPosition(24, 80), want: "\x1b[24;80f"},
		{name: "absolute clamps to origin", got: CursorPosition(0, -1), want: "\x1b[1;1f"},
		{name: "next line", got: NextLine(2), want: "\x1b[2B\x1b[1G"},
		{name: "previous line", got: PreviousLine(1), want: "\x1b[1A\x1b[1G"},
		{name: "scroll up", got: ScrollUp(4), want: "\x1b[4S"},
		{name: "scroll down", got: ScrollDown(1), want: "\x1b[1T"},
		{name: "show", got: ShowCursor, want: "\x1b[?25h"},
		{name: "hide", got: HideCursor, want: "\x1b[?25l"},
		{name: "dsr", got: RequestCursorPosition, want: "\x1b[6n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEraseLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\x1b[0K", EraseLine(EraseToEnd))
	assert.Equal(t, "\x1b[1K", EraseLine(EraseToStart))
	assert.Equal(t, "\x1b[2K", EraseLine(EraseAll))
	assert.Equal(t, "\x1b[0K", EraseLine(EraseMode(9)), "unknown modes erase to end")
}

func TestDialect(t *testing.T) {
	t.Parallel()

	env := func(v string) func(string) string {
		return func(k string) string {
			if k == TermProgramEnv {
				return v
			}
			return ""
		}
	}

	assert.Equal(t, DialectDEC, DialectFromEnv(env("Apple_Terminal")))
	assert.Equal(t, DialectDEC, DialectFromEnv(env("apple_terminal")))
	assert.Equal(t, DialectANSI, DialectFromEnv(env("iTerm.app")))
	assert.Equal(t, DialectANSI, DialectFromEnv(env("")))
	assert.Equal(t, DialectANSI, DialectFromEnv(nil))

	assert.Equal(t, "\x1b[s", SaveCursor(DialectANSI))
	assert.Equal(t, "\x1b[u", RestoreCursor(DialectANSI))
	assert.Equal(t, "\x1b7", SaveCursor(DialectDEC))
	assert.Equal(t, "\x1b8", RestoreCursor(DialectDEC))
	assert.Equal(t, "dec", DialectDEC.String())
}

func TestParseCursorReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		row     int
		col     int
		wantErr bool
	}{
		{name: "bottom right", input: "\x1b[24;80R", row: 24, col: 80},
		{name: "origin", input: "\x1b[1;1R", row: 1, col: 1},
		{name: "type-ahead before report", input: "ab\x1b[3;7R", row: 3, col: 7},
		{name: "garbage", input: "\x1b[garbage", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing column", input: "\x1b[12R", wantErr: true},
		{name: "trailing bytes", input: "\x1b[1;2Rx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row, col, err := ParseCursorReport(tt.input)
			if tt.wantErr {
				var pe *ProtocolError
				require.True(t, errors.As(err, &pe), "want *ProtocolError, got %v", err)
				assert.Equal(t, tt.input, pe.Response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestProtocolErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Contains(t, (&ProtocolError{}).Error(), "no cursor position report")
	assert.Contains(t, (&ProtocolError{Response: "\x1b[x"}).Error(), "malformed")
}
