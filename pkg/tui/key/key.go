// ABOUTME: Defines the Key type and ParseKey for decoding one keypress from raw terminal bytes
// ABOUTME: Handles printable runes, control characters, and delegates escape sequences to the legacy table

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For printable characters
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the kinds of key events a prompt can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return (CR or LF)
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyUnknown                  // Unrecognized input
)

// ParseKey decodes one complete keypress. data must hold exactly one key:
// a single byte, one UTF-8 rune, or one escape sequence.
func ParseKey(data string) Key {
	switch {
	case data == "":
		return Key{Type: KeyUnknown}
	case len(data) == 1:
		return parseByte(data[0])
	case data[0] == 0x1b:
		return parseEscape(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Type: KeyEnter}
	case b == '\t':
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case b == 0x04:
		return Key{Type: KeyCtrlD, Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscape(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	// Alt+letter arrives as ESC followed by the printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable name, used in debug logs.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
