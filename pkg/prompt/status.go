// ABOUTME: Status lines: a coloured symbol followed by a message on its own line
// ABOUTME: Symbols fall back to ASCII when the terminal cannot style output

package prompt

import (
	"fmt"

	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
)

type status struct {
	symbol string
	ascii  string
	style  func(p *Prompt) esc.Style
}

var (
	statusSuccess = status{"✓", "/", func(p *Prompt) esc.Style { return p.palette().Success }}
	statusAlert   = status{"!", "!", func(p *Prompt) esc.Style { return p.palette().Warning }}
	statusInfo    = status{"-", "-", func(p *Prompt) esc.Style { return p.palette().Info }}
	statusFailure = status{"⨯", "x", func(p *Prompt) esc.Style { return p.palette().Failure }}
)

func (p *Prompt) status(s status, format string, args []any) error {
	sym := s.ascii
	if p.term.IsStylingSupported() {
		sym = s.symbol
	}
	if err := p.term.WriteStyled(s.style(p), sym); err != nil {
		return err
	}
	if format != "" {
		if err := p.term.Write(" " + fmt.Sprintf(format, args...)); err != nil {
			return err
		}
	}
	return p.term.WriteLine("")
}

// Success writes a check mark and the message.
func (p *Prompt) Success(format string, args ...any) error {
	return p.status(statusSuccess, format, args)
}

// Alert writes an exclamation mark and the message.
func (p *Prompt) Alert(format string, args ...any) error {
	return p.status(statusAlert, format, args)
}

// Info writes a dash and the message.
func (p *Prompt) Info(format string, args ...any) error {
	return p.status(statusInfo, format, args)
}

// Failure writes a cross and the message.
func (p *Prompt) Failure(format string, args ...any) error {
	return p.status(statusFailure, format, args)
}
