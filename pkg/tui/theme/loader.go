// ABOUTME: YAML theme file loading with validation and fallback to a base theme
// ABOUTME: Unset roles inherit from the theme named by "extends" (default when absent)

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

// fileStyle is the on-disk form of one role.
type fileStyle struct {
	Fg   string `yaml:"fg"`
	Bg   string `yaml:"bg"`
	Attr string `yaml:"attr"`
}

type fileTheme struct {
	Name    string               `yaml:"name"`
	Extends string               `yaml:"extends"`
	Palette map[string]fileStyle `yaml:"palette"`
}

// LoadFile reads a YAML (or JSON) theme file.
//
//	name: ocean
//	extends: default
//	palette:
//	  answer: {fg: blue, attr: underline}
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a theme document.
func Parse(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	baseName := ft.Extends
	if baseName == "" {
		baseName = "default"
	}
	base := Builtin(baseName)
	if base == nil {
		return nil, fmt.Errorf("theme %q extends unknown theme %q", ft.Name, baseName)
	}

	p := base.Palette
	roles := p.roles()
	for role, fs := range ft.Palette {
		dst, ok := roles[role]
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown role %q", ft.Name, role)
		}
		st, err := fs.style()
		if err != nil {
			return nil, fmt.Errorf("theme %q role %q: %w", ft.Name, role, err)
		}
		*dst = st
	}

	name := ft.Name
	if name == "" {
		name = baseName
	}
	return &Theme{Name: name, Palette: p}, nil
}

func (fs fileStyle) style() (esc.Style, error) {
	fg, err := esc.ParseColor(fs.Fg)
	if err != nil {
		return esc.Style{}, err
	}
	bg, err := esc.ParseColor(fs.Bg)
	if err != nil {
		return esc.Style{}, err
	}
	attr, err := esc.ParseAttr(fs.Attr)
	if err != nil {
		return esc.Style{}, err
	}
	return esc.Style{Fg: fg, Bg: bg, Attr: attr}, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a file.
// The empty string resolves to the default theme.
func Resolve(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		return Builtin("default"), nil
	}
	if th := Builtin(nameOrPath); th != nil {
		return th, nil
	}
	return LoadFile(nameOrPath)
}
