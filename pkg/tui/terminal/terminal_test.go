// ABOUTME: Byte-level tests for Terminal cursor strategies, styles, raw scopes and reads
// ABOUTME: Runs against VirtualTerminal with scripted input and canned cursor reports

package terminal

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

var (
	queryCaps  = Caps{Styling: true, CursorQuery: true}
	nativeCaps = Caps{Styling: true}
)

func env(kv ...string) func(string) string {
	m := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return func(k string) string { return m[k] }
}

func TestModeResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want CursorMode
	}{
		{name: "query capable", opts: []Option{WithCapabilities(queryCaps)}, want: CursorDSR},
		{name: "native ansi", opts: []Option{WithCapabilities(nativeCaps), WithGetenv(env())}, want: CursorANSI},
		{name: "apple terminal", opts: []Option{WithCapabilities(nativeCaps), WithGetenv(env("TERM_PROGRAM", "Apple_Terminal"))}, want: CursorDEC},
		{name: "explicit dialect", opts: []Option{WithCapabilities(nativeCaps), WithDialect(esc.DialectDEC)}, want: CursorDEC},
		{name: "legacy console", opts: []Option{WithLegacyConsole(&fakeConsole{cols: 80, rows: 24})}, want: CursorLegacy},
		{name: "nothing", opts: nil, want: CursorNone},
		{name: "forced none", opts: []Option{WithCapabilities(queryCaps), WithCursorMode(CursorNone)}, want: CursorNone},
		{name: "forced legacy without console", opts: []Option{WithCursorMode(CursorLegacy)}, want: CursorNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			term := NewVirtualTerminal(80, 24).Open(tt.opts...)
			assert.Equal(t, tt.want, term.Mode())
		})
	}
}

func TestQueryModeNeedsRawInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want CursorMode
	}{
		{name: "detected", opts: []Option{WithCapabilities(queryCaps), WithGetenv(env())}, want: CursorANSI},
		{name: "detected apple terminal", opts: []Option{WithCapabilities(queryCaps), WithGetenv(env("TERM_PROGRAM", "Apple_Terminal"))}, want: CursorDEC},
		{name: "forced", opts: []Option{WithCapabilities(queryCaps), WithDialect(esc.DialectDEC), WithCursorMode(CursorDSR)}, want: CursorDEC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(80, 24)
			term := New(NewPort(vt, vt), tt.opts...)
			assert.Equal(t, tt.want, term.Mode())
			assert.False(t, term.SupportsNestedSaves())

			_, err := term.GetCursor()
			assert.ErrorIs(t, err, ErrCursorQueryUnsupported)
			assert.Empty(t, vt.Output())
		})
	}
}

func TestParseCursorMode(t *testing.T) {
	t.Parallel()

	m, ok, err := ParseCursorMode("DEC")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, CursorDEC, m)

	_, ok, err = ParseCursorMode("auto")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParseCursorMode("vt52")
	assert.Error(t, err)
}

func TestCursorMoves(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	term := vt.Open(WithCapabilities(nativeCaps))

	require.NoError(t, term.MoveCursor(3, -2))
	require.NoError(t, term.MoveCursor(-1, 4))
	require.NoError(t, term.MoveCursorUp(0))
	require.NoError(t, term.MoveCursorAbsoluteColumn(2))
	require.NoError(t, term.MoveCursorTo(5, 10))
	require.NoError(t, term.NextLine(1))
	require.NoError(t, term.PreviousLine(2))
	require.NoError(t, term.EraseLine(esc.EraseAll))
	require.NoError(t, term.ScrollUp(1))
	require.NoError(t, term.ScrollDown(2))

	want := "\x1b[3C\x1b[2A" + "\x1b[1D\x1b[4B" + "\x1b[2G" + "\x1b[5;10f" +
		"\x1b[1B\x1b[1G" + "\x1b[2A\x1b[1G" + "\x1b[2K" + "\x1b[1S\x1b[2T"
	assert.Equal(t, want, vt.Output())
}

func TestNoneModeDropsCursorCommands(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	term := vt.Open()

	require.NoError(t, term.MoveCursorUp(2))
	require.NoError(t, term.EraseLine(esc.EraseToEnd))
	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ReserveRows(3))
	saved, err := term.SaveCursor()
	require.NoError(t, err)
	require.NoError(t, saved.Reset(true))
	require.NoError(t, term.WriteStyled(esc.Style{Fg: esc.Red}, "plain"))
	require.NoError(t, term.WriteLine("!"))

	assert.Equal(t, "plain!\n", vt.Output())

	_, err = term.GetCursor()
	assert.ErrorIs(t, err, ErrCursorQueryUnsupported)
}

func TestNativeSaveRestore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		getenv  func(string) string
		save    string
		restore string
	}{
		{name: "ansi", getenv: env(), save: "\x1b[s", restore: "\x1b[u"},
		{name: "dec", getenv: env("TERM_PROGRAM", "Apple_Terminal"), save: "\x1b7", restore: "\x1b8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(80, 24)
			term := vt.Open(WithCapabilities(nativeCaps), WithGetenv(tt.getenv))

			saved, err := term.SaveCursor()
			require.NoError(t, err)
			_, known := saved.Position()
			assert.False(t, known)
			assert.False(t, term.SupportsNestedSaves())

			require.NoError(t, saved.Restore())
			require.NoError(t, saved.Offset(5).Reset(true))

			assert.Equal(t, tt.save+tt.restore+tt.restore+"\x1b[5C\x1b[0K", vt.Output())
		})
	}
}

func TestQuerySaveRestore(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.AnswerCursorQueries(func() (int, int) { return 3, 7 })
	term := vt.Open(WithCapabilities(queryCaps))
	assert.True(t, term.SupportsNestedSaves())

	saved, err := term.SaveCursor()
	require.NoError(t, err)
	pos, known := saved.Position()
	require.True(t, known)
	assert.Equal(t, CursorPosition{Row: 3, Column: 7}, pos)
	assert.Equal(t, 1, vt.EnterCount())
	assert.Equal(t, 1, vt.ExitCount())

	require.NoError(t, term.RestoreCursor(saved))
	require.NoError(t, saved.Offset(4).Restore())

	pos, _ = saved.Offset(4).Position()
	assert.Equal(t, 11, pos.Column)
	assert.Equal(t, "\x1b[6n\x1b[3;7f\x1b[3;11f", vt.Output())
}

func TestGetCursorMalformed(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.Type("\x1b[garbageR")
	term := vt.Open(WithCapabilities(queryCaps))

	_, err := term.GetCursor()
	var pe *esc.ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "\x1b[garbageR", pe.Response)
	assert.False(t, vt.IsRawMode(), "raw mode must be left after a failed query")
}

func TestGetCursorConsumesTypeAhead(t *testing.T) {
	t.Parallel()

	t.Run("plain bytes before the report", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		vt.Type("ab\x1b[3;4R", "next\n")
		term := vt.Open(WithCapabilities(queryCaps))

		pos, err := term.GetCursor()
		require.NoError(t, err)
		assert.Equal(t, CursorPosition{Row: 3, Column: 4}, pos)

		line, err := term.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "next", line, "typed-ahead bytes are not replayed")
	})

	t.Run("typed R ends the read early", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		vt.Type("xR", "\x1b[3;4R")
		term := vt.Open(WithCapabilities(queryCaps))

		_, err := term.GetCursor()
		var pe *esc.ProtocolError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "xR", pe.Response)
	})
}

func TestGetCursorSilentTerminal(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	term := vt.Open(WithCapabilities(queryCaps))

	_, err := term.GetCursor()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetSize(t *testing.T) {
	t.Parallel()

	t.Run("from device", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(100, 30)
		term := vt.Open(WithCapabilities(nativeCaps))

		w, h, err := term.GetSize()
		require.NoError(t, err)
		assert.Equal(t, 100, w)
		assert.Equal(t, 30, h)
		assert.Empty(t, vt.Output())
	})

	t.Run("probed ahead of device size", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(100, 30)
		reports := [][2]int{{5, 3}, {24, 80}}
		vt.AnswerCursorQueries(func() (int, int) {
			r := reports[0]
			reports = reports[1:]
			return r[0], r[1]
		})
		term := vt.Open(WithCapabilities(queryCaps))

		w, h, err := term.GetSize()
		require.NoError(t, err)
		assert.Equal(t, 80, w)
		assert.Equal(t, 24, h)
		assert.Equal(t, "\x1b[?25l\x1b[6n\x1b[999;999f\x1b[6n\x1b[5;3f\x1b[?25h", vt.Output())
	})

	t.Run("native dialect", func(t *testing.T) {
		t.Parallel()
		term := NewVirtualTerminal(0, 0).Open(WithCapabilities(nativeCaps))

		_, _, err := term.GetSize()
		assert.ErrorIs(t, err, ErrCursorQueryUnsupported)
	})
}

func TestReserveRows(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	term := vt.Open(WithCapabilities(nativeCaps))

	require.NoError(t, term.ReserveRows(2))
	require.NoError(t, term.ReserveRows(0))
	assert.Equal(t, "\n\n\x1b[2A", vt.Output())
}

func TestScopedStyle(t *testing.T) {
	t.Parallel()

	t.Run("release once", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		term := vt.Open(WithCapabilities(nativeCaps))

		s, err := term.SetStyle(esc.Style{Fg: esc.Green, Attr: esc.Bold})
		require.NoError(t, err)
		require.NoError(t, term.Write("ok"))
		require.NoError(t, s.Release())
		require.NoError(t, s.Release())
		assert.True(t, s.Released())

		assert.Equal(t, "\x1b[1;32mok\x1b[0m", vt.Output())
	})

	t.Run("empty style", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		term := vt.Open(WithCapabilities(nativeCaps))

		s, err := term.SetStyle(esc.Style{})
		require.NoError(t, err)
		require.NoError(t, s.Release())
		assert.Empty(t, vt.Output())
	})

	t.Run("no styling", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		term := vt.Open()

		require.NoError(t, term.WriteStyled(esc.Style{Fg: esc.Cyan}, "Alice"))
		assert.Equal(t, "Alice", vt.Output())
	})

	t.Run("scoped release on error", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		term := vt.Open(WithCapabilities(nativeCaps))
		boom := errors.New("boom")

		err := term.WithStyle(esc.Style{Fg: esc.Red}, func() error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "\x1b[31m\x1b[0m", vt.Output())
	})

	t.Run("nested scopes reset to default", func(t *testing.T) {
		t.Parallel()
		vt := NewVirtualTerminal(80, 24)
		term := vt.Open(WithCapabilities(nativeCaps))

		err := term.WithStyle(esc.Style{Attr: esc.Bold}, func() error {
			return term.WithStyle(esc.Style{Fg: esc.Red}, func() error { return term.Write("x") })
		})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1m\x1b[31mx\x1b[0m\x1b[0m", vt.Output())
	})
}

func TestRawScopes(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.Type("\x1b[A", "\x1b[B", "\r")
	term := vt.Open(WithCapabilities(nativeCaps))

	err := term.Raw(func() error {
		for range 2 {
			if _, err := term.ReadKey(); err != nil {
				return err
			}
			if !vt.IsRawMode() {
				return errors.New("raw mode dropped inside scope")
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, vt.EnterCount())
	assert.Equal(t, 1, vt.ExitCount())

	_, err = term.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, 2, vt.EnterCount())
	assert.False(t, vt.IsRawMode())
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.Type("first\r\n", "second\n", "tail")
	term := vt.Open()

	for _, want := range []string{"first", "second", "tail"} {
		got, err := term.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := term.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	term := vt.Open(WithCapabilities(nativeCaps))
	require.NoError(t, vt.EnterRawMode())

	require.NoError(t, term.Restore())
	assert.Equal(t, "\x1b[0m\x1b[?25h", vt.Output())
	assert.False(t, vt.IsRawMode())
}
