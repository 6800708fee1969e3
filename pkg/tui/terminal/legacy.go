// ABOUTME: LegacyConsole is the cursor API of consoles that ignore escape sequences
// ABOUTME: Coordinates are 0-based buffer cells; the Terminal converts to 1-based positions

package terminal

// LegacyConsole positions the cursor through an OS console API instead of
// escape sequences.
type LegacyConsole interface {
	// Cursor returns the 0-based column and row of the cursor.
	Cursor() (col, row int, err error)
	// SetCursor moves the cursor to the 0-based column and row.
	SetCursor(col, row int) error
	// Window returns the visible width and height in cells.
	Window() (cols, rows int, err error)
}
