// ABOUTME: Standard filesystem paths for promptkit configuration
// ABOUTME: Resolves $XDG_CONFIG_HOME/promptkit, falling back to ~/.config/promptkit

package config

import (
	"os"
	"path/filepath"
)

const dirName = "promptkit"

// Dir returns the config directory. getenv may be nil to use os.Getenv.
func Dir(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, dirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+dirName)
	}
	return filepath.Join(home, ".config", dirName)
}

// File returns the default config file path.
func File(getenv func(string) string) string {
	return filepath.Join(Dir(getenv), "config.yaml")
}

// ThemesDir returns the directory searched for theme files by name.
func ThemesDir(getenv func(string) string) string {
	return filepath.Join(Dir(getenv), "themes")
}
