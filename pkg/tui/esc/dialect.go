// ABOUTME: Native cursor save/restore dialects: ANSI CSI s/u and the DEC ESC 7/8 pair
// ABOUTME: DialectFromEnv picks the dialect once from the terminal identity variable

package esc

import "strings"

// Dialect is a native cursor save/restore flavour.
type Dialect int

const (
	// DialectANSI uses CSI s / CSI u.
	DialectANSI Dialect = iota
	// DialectDEC uses ESC 7 / ESC 8, required by Apple Terminal.
	DialectDEC
)

// TermProgramEnv names the variable that identifies the terminal emulator.
const TermProgramEnv = "TERM_PROGRAM"

// String returns the dialect name.
func (d Dialect) String() string {
	if d == DialectDEC {
		return "dec"
	}
	return "ansi"
}

// DialectFromEnv resolves the save/restore dialect from the environment.
// A nil getenv resolves to DialectANSI.
func DialectFromEnv(getenv func(string) string) Dialect {
	if getenv == nil {
		return DialectANSI
	}
	if strings.EqualFold(getenv(TermProgramEnv), "Apple_Terminal") {
		return DialectDEC
	}
	return DialectANSI
}

// SaveCursor stores the cursor position in the terminal's single save slot.
func SaveCursor(d Dialect) string {
	if d == DialectDEC {
		return ESC + "7"
	}
	return CSI + "s"
}

// RestoreCursor returns the cursor to the position stored by SaveCursor.
func RestoreCursor(d Dialect) string {
	if d == DialectDEC {
		return ESC + "8"
	}
	return CSI + "u"
}
