// ABOUTME: Semantic prompt theme types: Palette maps prompt roles to SGR styles, Theme names a palette
// ABOUTME: Apply wraps text in a role's style for callers that build strings instead of streaming

package theme

import "github.com/mauromedda/promptkit-go/pkg/tui/esc"

// Palette holds the style of every role a prompt renders.
type Palette struct {
	// Question line
	Marker   esc.Style // "? " before each question
	Question esc.Style
	Hint     esc.Style // default value and usage hints

	// Answers
	Answer   esc.Style // committed answer
	Alert    esc.Style // validation message
	Selected esc.Style // selector marker

	// Status lines
	Success esc.Style
	Warning esc.Style
	Failure esc.Style
	Info    esc.Style
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns green bold markers, bold questions, gray hints and
// cyan answers.
func DefaultPalette() Palette {
	return Palette{
		Marker:   esc.Style{Fg: esc.Green, Attr: esc.Bold},
		Question: esc.Style{Attr: esc.Bold},
		Hint:     esc.Style{Fg: esc.Gray},

		Answer:   esc.Style{Fg: esc.Cyan},
		Alert:    esc.Style{Fg: esc.Red},
		Selected: esc.Style{Fg: esc.Green, Attr: esc.Bold},

		Success: esc.Style{Fg: esc.Green},
		Warning: esc.Style{Fg: esc.Yellow},
		Failure: esc.Style{Fg: esc.Red},
		Info:    esc.Style{Fg: esc.White},
	}
}

// Apply wraps text in the style and a reset. The empty style returns text unchanged.
func Apply(s esc.Style, text string) string {
	seq := esc.SGR(s)
	if seq == "" {
		return text
	}
	return seq + text + esc.Reset
}

// roles exposes the palette fields by their file names.
func (p *Palette) roles() map[string]*esc.Style {
	return map[string]*esc.Style{
		"marker":   &p.Marker,
		"question": &p.Question,
		"hint":     &p.Hint,
		"answer":   &p.Answer,
		"alert":    &p.Alert,
		"selected": &p.Selected,
		"success":  &p.Success,
		"warning":  &p.Warning,
		"failure":  &p.Failure,
		"info":     &p.Info,
	}
}
