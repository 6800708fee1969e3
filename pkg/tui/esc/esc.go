// ABOUTME: Pure builders for CSI cursor, erase, scroll and visibility control sequences
// ABOUTME: No I/O; every function returns the bytes a VT100-compatible terminal expects

package esc

import "strconv"

const (
	// ESC is the escape byte that starts every control sequence.
	ESC = "\x1b"
	// CSI is the Control Sequence Introducer.
	CSI = ESC + "["

	// ShowCursor makes the cursor visible.
	ShowCursor = CSI + "?25h"
	// HideCursor hides the cursor.
	HideCursor = CSI + "?25l"
	// RequestCursorPosition asks the terminal for a device status report.
	RequestCursorPosition = CSI + "6n"
	// Reset returns the graphic rendition to the terminal default.
	Reset = CSI + "0m"
)

// EraseMode selects which part of the current line EraseLine clears.
type EraseMode int

const (
	EraseToEnd   EraseMode = 0 // cursor to end of line
	EraseToStart EraseMode = 1 // start of line to cursor
	EraseAll     EraseMode = 2 // whole line
)

func count(n int) string {
	if n < 1 {
		n = 1
	}
	return strconv.Itoa(n)
}

// CursorUp moves the cursor up n rows.
func CursorUp(n int) string { return CSI + count(n) + "A" }

// CursorDown moves the cursor down n rows.
func CursorDown(n int) string { return CSI + count(n) + "B" }

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string { return CSI + count(n) + "C" }

// CursorBack moves the cursor left n columns.
func CursorBack(n int) string { return CSI + count(n) + "D" }

// CursorColumn moves the cursor to the 1-indexed column n of the current row.
func CursorColumn(n int) string { return CSI + count(n) + "G" }

// CursorPosition moves the cursor to the 1-indexed row and column.
func CursorPosition(row, col int) string {
	return CSI + count(row) + ";" + count(col) + "f"
}

// NextLine moves the cursor down n rows and to the first column.
func NextLine(n int) string { return CursorDown(n) + CursorColumn(1) }

// PreviousLine moves the cursor up n rows and to the first column.
func PreviousLine(n int) string { return CursorUp(n) + CursorColumn(1) }

// EraseLine clears part of the current line without moving the cursor.
func EraseLine(mode EraseMode) string {
	switch mode {
	case EraseToStart, EraseAll:
		return CSI + strconv.Itoa(int(mode)) + "K"
	default:
		return CSI + "0K"
	}
}

// ScrollUp scrolls the page up n lines.
func ScrollUp(n int) string { return CSI + count(n) + "S" }

// ScrollDown scrolls the page down n lines.
func ScrollDown(n int) string { return CSI + count(n) + "T" }
