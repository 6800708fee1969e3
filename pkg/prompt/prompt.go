// ABOUTME: Prompt binds a Terminal to a theme and renders questions, selectors and status lines
// ABOUTME: Options configure the palette, the retry cap and the question marker

// Package prompt asks interactive questions on a terminal.Terminal. Each
// question ends as one committed line: the question followed by the answer.
package prompt

import (
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
	"github.com/mauromedda/promptkit-go/pkg/tui/theme"
)

const defaultMarker = "? "

// Prompt renders questions on one terminal. It is not safe for concurrent use.
type Prompt struct {
	term        *terminal.Terminal
	theme       *theme.Theme
	maxAttempts int
	marker      string
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithTheme sets the palette. A nil theme keeps the default.
func WithTheme(th *theme.Theme) Option {
	return func(p *Prompt) {
		if th != nil {
			p.theme = th
		}
	}
}

// WithMaxAttempts caps rejected answers per question; 0 means unlimited.
func WithMaxAttempts(n int) Option {
	return func(p *Prompt) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithMarker replaces the "? " drawn before every question.
func WithMarker(m string) Option {
	return func(p *Prompt) { p.marker = m }
}

// New returns a Prompt writing to term.
func New(term *terminal.Terminal, opts ...Option) *Prompt {
	p := &Prompt{
		term:   term,
		theme:  theme.Default(),
		marker: defaultMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Terminal returns the underlying terminal.
func (p *Prompt) Terminal() *terminal.Terminal { return p.term }

func (p *Prompt) palette() *theme.Palette { return &p.theme.Palette }

// begin reserves rows below the question, renders it and saves the result
// position right after it.
func (p *Prompt) begin(question string, rows int) (terminal.SavedCursor, error) {
	t := p.term
	if err := t.ReserveRows(rows); err != nil {
		return terminal.SavedCursor{}, err
	}
	if err := t.WriteStyled(p.palette().Marker, p.marker); err != nil {
		return terminal.SavedCursor{}, err
	}
	if err := t.WriteStyled(p.palette().Question, question+" "); err != nil {
		return terminal.SavedCursor{}, err
	}
	return t.SaveCursor()
}

// commit replaces everything after the question with the answer.
func (p *Prompt) commit(result terminal.SavedCursor, display string) error {
	if err := result.Reset(true); err != nil {
		return err
	}
	if err := p.term.WriteStyled(p.palette().Answer, display); err != nil {
		return err
	}
	return p.term.WriteLine("")
}
