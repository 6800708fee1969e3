// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	s.Theme = expandEnv(s.Theme, getenv)
	s.Dialect = expandEnv(s.Dialect, getenv)
	s.LogFile = expandEnv(s.LogFile, getenv)
	s.LogLevel = expandEnv(s.LogLevel, getenv)
}

// expandEnv replaces ${VAR} with getenv(VAR). Unset vars become "".
// A nil getenv reads the process environment.
func expandEnv(s string, getenv func(string) string) string {
	if s == "" {
		return s
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return getenv(varName)
	})
}
