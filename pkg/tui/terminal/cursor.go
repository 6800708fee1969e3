// ABOUTME: Cursor positions and SavedCursor, the value returned by Terminal.SaveCursor
// ABOUTME: A saved cursor restores by absolute move, native sequence or console API per CursorMode

package terminal

import (
	"fmt"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

// CursorPosition is a 1-indexed screen coordinate.
type CursorPosition struct {
	Row    int
	Column int
}

func (p CursorPosition) String() string {
	return fmt.Sprintf("%d;%d", p.Row, p.Column)
}

// SavedCursor is a restorable cursor position. Absolute saves (cursor query
// and legacy console) nest freely; native saves share the terminal's single
// slot, so a later native save replaces an earlier one.
type SavedCursor struct {
	t      *Terminal
	pos    CursorPosition
	known  bool
	offset int
}

// Position returns the saved coordinate when it is known. Native saves do
// not reveal it.
func (s SavedCursor) Position() (CursorPosition, bool) {
	if !s.known {
		return CursorPosition{}, false
	}
	return CursorPosition{Row: s.pos.Row, Column: s.pos.Column + s.offset}, true
}

// Offset returns a saved cursor that restores cols columns to the right.
// It lets one native save address two anchors on the same row.
func (s SavedCursor) Offset(cols int) SavedCursor {
	s.offset += cols
	if s.offset < 0 {
		s.offset = 0
	}
	return s
}

// Restore moves the cursor back to the saved position.
func (s SavedCursor) Restore() error {
	if s.t == nil {
		return nil
	}
	t := s.t
	switch t.mode {
	case CursorDSR:
		return t.write(esc.CursorPosition(s.pos.Row, s.pos.Column+s.offset))
	case CursorANSI, CursorDEC:
		seq := esc.RestoreCursor(t.dialect)
		if s.offset > 0 {
			seq += esc.CursorForward(s.offset)
		}
		return t.write(seq)
	case CursorLegacy:
		return t.legacy.SetCursor(s.pos.Column-1+s.offset, s.pos.Row-1)
	}
	return nil
}

// Reset restores the cursor and, when clear is set, erases from there to
// the end of the line.
func (s SavedCursor) Reset(clear bool) error {
	if err := s.Restore(); err != nil {
		return err
	}
	if !clear || s.t == nil {
		return nil
	}
	return s.t.EraseLine(esc.EraseToEnd)
}
