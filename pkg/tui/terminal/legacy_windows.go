// ABOUTME: Windows console implementation of LegacyConsole using golang.org/x/sys/windows
// ABOUTME: Only available when the output handle is a real console screen buffer

//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

type windowsConsole struct {
	h windows.Handle
}

// NewLegacyConsole returns the console API for out when out is a console.
func NewLegacyConsole(out *os.File) (LegacyConsole, bool) {
	if out == nil {
		return nil, false
	}
	h := windows.Handle(out.Fd())
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return nil, false
	}
	return &windowsConsole{h: h}, true
}

func (c *windowsConsole) info() (windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err != nil {
		return info, fmt.Errorf("console buffer info: %w", err)
	}
	return info, nil
}

func (c *windowsConsole) Cursor() (int, int, error) {
	info, err := c.info()
	if err != nil {
		return 0, 0, err
	}
	return int(info.CursorPosition.X), int(info.CursorPosition.Y), nil
}

func (c *windowsConsole) SetCursor(col, row int) error {
	pos := windows.Coord{X: int16(col), Y: int16(row)}
	if err := windows.SetConsoleCursorPosition(c.h, pos); err != nil {
		return fmt.Errorf("set console cursor: %w", err)
	}
	return nil
}

func (c *windowsConsole) Window() (int, int, error) {
	info, err := c.info()
	if err != nil {
		return 0, 0, err
	}
	w := int(info.Window.Right-info.Window.Left) + 1
	h := int(info.Window.Bottom-info.Window.Top) + 1
	return w, h, nil
}
