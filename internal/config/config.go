// ABOUTME: Settings loading from a YAML file with CLI overrides merged on top
// ABOUTME: A missing default file yields zero Settings; an explicit path must exist

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/promptkit-go/internal/log"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
)

// Settings holds the merged configuration.
type Settings struct {
	Theme       string `yaml:"theme,omitempty"`
	Dialect     string `yaml:"dialect,omitempty"`
	NoColor     bool   `yaml:"no_color,omitempty"`
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Load reads settings from path, or from the default config file when path
// is empty. Environment references in string fields are expanded.
func Load(path string, getenv func(string) string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = File(getenv)
	}

	s, err := loadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !explicit:
		s = &Settings{}
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ResolveEnvVars(s, getenv)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// loadFile reads Settings from a YAML file.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks enumerated and numeric fields.
func (s *Settings) Validate() error {
	if _, _, err := terminal.ParseCursorMode(s.Dialect); err != nil {
		return fmt.Errorf("dialect: %w", err)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if s.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts: must not be negative, got %d", s.MaxAttempts)
	}
	return nil
}

// Merge returns base with non-zero fields of override applied.
func Merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		cp := *base
		return &cp
	}

	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Dialect != "" {
		result.Dialect = override.Dialect
	}
	if override.NoColor {
		result.NoColor = true
	}
	if override.MaxAttempts != 0 {
		result.MaxAttempts = override.MaxAttempts
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	return &result
}
