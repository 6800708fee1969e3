// ABOUTME: Built-in themes: default, contrast, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"slices"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"contrast": {
		Name: "contrast",
		Palette: Palette{
			Marker:   esc.Style{Fg: esc.Yellow, Attr: esc.Bold},
			Question: esc.Style{Fg: esc.White, Attr: esc.Bold},
			Hint:     esc.Style{Fg: esc.Magenta},

			Answer:   esc.Style{Fg: esc.Black, Bg: esc.Cyan},
			Alert:    esc.Style{Fg: esc.White, Bg: esc.Red},
			Selected: esc.Style{Fg: esc.Yellow, Attr: esc.Bold},

			Success: esc.Style{Fg: esc.Green, Attr: esc.Bold},
			Warning: esc.Style{Fg: esc.Yellow, Attr: esc.Bold},
			Failure: esc.Style{Fg: esc.Red, Attr: esc.Bold},
			Info:    esc.Style{Fg: esc.Blue, Attr: esc.Bold},
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Marker:   esc.Style{Attr: esc.Bold},
			Question: esc.Style{Attr: esc.Bold},
			Hint:     esc.Style{Attr: esc.Dim},

			Answer:   esc.Style{Attr: esc.Underline},
			Alert:    esc.Style{Attr: esc.Reverse},
			Selected: esc.Style{Attr: esc.Bold},

			Success: esc.Style{Attr: esc.Bold},
			Warning: esc.Style{Attr: esc.Underline},
			Failure: esc.Style{Attr: esc.Reverse},
			Info:    esc.Style{Attr: esc.Dim},
		},
	},
}

// Builtin returns a copy of the named built-in theme, or nil.
func Builtin(name string) *Theme {
	th, ok := builtins[name]
	if !ok {
		return nil
	}
	cp := *th
	return &cp
}

// BuiltinNames returns the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the default theme.
func Default() *Theme { return Builtin("default") }
