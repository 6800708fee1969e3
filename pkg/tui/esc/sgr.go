// ABOUTME: Select Graphic Rendition composition from a small closed set of colors and attributes
// ABOUTME: SGR emits one sequence ordered attribute, foreground, background (+10 offset)

package esc

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a foreground/background color. The zero value means "unset".
type Color int

const (
	ColorNone Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
)

var colorCodes = map[Color]int{
	Black:   30,
	Red:     31,
	Green:   32,
	Yellow:  33,
	Blue:    34,
	Magenta: 35,
	Cyan:    36,
	White:   37,
	Gray:    90,
}

var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"gray":    Gray,
	"grey":    Gray,
}

// Attr is a text attribute whose value is its SGR code. The zero value
// means "unset".
type Attr int

const (
	AttrNone  Attr = 0
	Bold      Attr = 1
	Dim       Attr = 2
	Italic    Attr = 3
	Underline Attr = 4
	Blink     Attr = 5
	Reverse   Attr = 7
	Hidden    Attr = 8
)

var attrNames = map[string]Attr{
	"bold":      Bold,
	"dim":       Dim,
	"italic":    Italic,
	"underline": Underline,
	"blink":     Blink,
	"reverse":   Reverse,
	"hidden":    Hidden,
}

// Style combines an optional foreground, background and attribute.
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s.Fg == ColorNone && s.Bg == ColorNone && s.Attr == AttrNone
}

// SGR builds the rendition sequence for s: CSI [attr;][fg;][bg+10] m.
// The empty style yields "".
func SGR(s Style) string {
	var params []string
	if s.Attr != AttrNone {
		params = append(params, strconv.Itoa(int(s.Attr)))
	}
	if code, ok := colorCodes[s.Fg]; ok {
		params = append(params, strconv.Itoa(code))
	}
	if code, ok := colorCodes[s.Bg]; ok {
		params = append(params, strconv.Itoa(code+10))
	}
	if len(params) == 0 {
		return ""
	}
	return CSI + strings.Join(params, ";") + "m"
}

// ParseColor maps a color name ("green", "gray", ...) to a Color.
// The empty string maps to ColorNone.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return ColorNone, nil
	}
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return ColorNone, fmt.Errorf("unknown color %q", name)
}

// ParseAttr maps an attribute name ("bold", "underline", ...) to an Attr.
// The empty string maps to AttrNone.
func ParseAttr(name string) (Attr, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return AttrNone, nil
	}
	if a, ok := attrNames[name]; ok {
		return a, nil
	}
	return AttrNone, fmt.Errorf("unknown attribute %q", name)
}
