//go:build !windows

package terminal

import "os"

// NewLegacyConsole reports false: only Windows has a non-VT console API.
func NewLegacyConsole(_ *os.File) (LegacyConsole, bool) {
	return nil, false
}
