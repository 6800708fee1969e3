// ABOUTME: Tests for YAML theme file loading and validation
// ABOUTME: Covers inheritance, unknown roles and colors, malformed YAML and missing files

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `
name: ocean
palette:
  answer: {fg: blue, attr: underline}
  alert:
    fg: white
    bg: red
`)
	th, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", th.Name)
	assert.Equal(t, esc.Style{Fg: esc.Blue, Attr: esc.Underline}, th.Palette.Answer)
	assert.Equal(t, esc.Style{Fg: esc.White, Bg: esc.Red}, th.Palette.Alert)
	// untouched roles come from the default theme
	assert.Equal(t, DefaultPalette().Marker, th.Palette.Marker)
}

func TestParseExtends(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte("extends: monochrome\npalette:\n  hint: {fg: gray}\n"))
	require.NoError(t, err)

	assert.Equal(t, "monochrome", th.Name)
	assert.Equal(t, esc.Style{Fg: esc.Gray}, th.Palette.Hint)
	assert.Equal(t, esc.Style{Attr: esc.Bold}, th.Palette.Marker)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte(`{"name": "j", "palette": {"info": {"fg": "cyan"}}}`))
	require.NoError(t, err)
	assert.Equal(t, esc.Style{Fg: esc.Cyan}, th.Palette.Info)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown role", body: "palette:\n  border: {fg: red}\n", wantErr: `unknown role "border"`},
		{name: "unknown color", body: "palette:\n  answer: {fg: teal}\n", wantErr: `unknown color "teal"`},
		{name: "unknown attr", body: "palette:\n  answer: {attr: sparkle}\n", wantErr: `unknown attribute "sparkle"`},
		{name: "unknown base", body: "extends: neon\n", wantErr: `unknown theme "neon"`},
		{name: "malformed", body: "palette: [", wantErr: "parsing theme file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	th, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "default", th.Name)

	th, err = Resolve("contrast")
	require.NoError(t, err)
	assert.Equal(t, "contrast", th.Name)

	path := writeTheme(t, "name: file\n")
	th, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "file", th.Name)
}
