// ABOUTME: Option selector: arrow keys move a marker over a list of choices, Enter commits
// ABOUTME: Falls back to a numbered menu answered by line when keys cannot be read

package prompt

import (
	"errors"
	"fmt"

	"github.com/mauromedda/promptkit-go/internal/log"
	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
	"github.com/mauromedda/promptkit-go/pkg/tui/key"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
)

const (
	selectorHint  = "(use arrow keys to select)"
	selectorGlyph = ">"
	optionIndent  = "   "
)

// Enum is implemented by named constant types that list their own values.
type Enum[T any] interface {
	fmt.Stringer
	Values() []T
}

// AskEnum asks the user to pick one of T's values.
func AskEnum[T Enum[T]](p *Prompt, question string) (T, error) {
	var zero T
	return AskOption(p, question, zero.Values())
}

// AskOption asks the user to pick one of choices, labelled with fmt.Sprint.
// Raw mode is held until the choice is committed.
func AskOption[T any](p *Prompt, question string, choices []T) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrNoChoices
	}
	v, err := NewOneOf(OneOfConfig[T]{Choices: choices, Required: true, AllowIndex: true})
	if err != nil {
		return zero, err
	}

	t := p.term
	if !t.HasRawInput() || t.Mode() == terminal.CursorNone {
		return askNumbered(p, question, v)
	}

	idx, err := p.selectIndex(question, v.Labels())
	if err != nil {
		return zero, err
	}
	return choices[idx], nil
}

// askNumbered prints "[n] label" rows and reads the answer by line.
func askNumbered[T any](p *Prompt, question string, v *OneOf[T]) (T, error) {
	var zero T
	for i, l := range v.Labels() {
		if err := p.term.Writef("[%d] %s\n", i+1, l); err != nil {
			return zero, err
		}
	}
	return Ask[T](p, question, v)
}

// selector tracks the marked option and the option row holding the cursor.
type selector struct {
	p     *Prompt
	rows  int
	index int
	row   int
}

func (p *Prompt) selectIndex(question string, labels []string) (index int, err error) {
	t := p.term
	n := len(labels)

	result, err := p.begin(question, n)
	if err != nil {
		return 0, err
	}
	if err := t.WriteStyled(p.palette().Hint, selectorHint); err != nil {
		return 0, err
	}
	for _, l := range labels {
		if err := t.Write("\n" + optionIndent + l); err != nil {
			return 0, err
		}
	}

	if err := t.HideCursor(); err != nil {
		return 0, err
	}
	defer func() {
		if showErr := t.ShowCursor(); showErr != nil && err == nil {
			err = showErr
		}
	}()

	s := &selector{p: p, rows: n, index: -1, row: n - 1}
	loopErr := t.Raw(func() error {
		if err := s.mark(0); err != nil {
			return err
		}
		for {
			k, err := t.ReadKey()
			if err != nil {
				return fmt.Errorf("reading key: %w", err)
			}
			switch k.Type {
			case key.KeyUp:
				err = s.mark(max(0, s.index-1))
			case key.KeyDown:
				err = s.mark(min(n-1, s.index+1))
			case key.KeyEnter:
				return nil
			case key.KeyCtrlC:
				return ErrInterrupted
			}
			if err != nil {
				return err
			}
		}
	})

	if err := s.clear(); err != nil {
		return 0, errors.Join(loopErr, err)
	}
	if loopErr != nil {
		log.With("question", question).Debugf("selector aborted: %v", loopErr)
		if err := result.Reset(true); err != nil {
			return 0, errors.Join(loopErr, err)
		}
		return 0, errors.Join(loopErr, t.WriteLine(""))
	}
	return s.index, p.commit(result, labels[s.index])
}

// mark moves the glyph to option i. The first call draws it from the end of
// the last option row; later calls expect the cursor just after the glyph.
func (s *selector) mark(i int) error {
	if i == s.index {
		return nil
	}
	t := s.p.term
	if s.index < 0 {
		if err := t.MoveCursorUp(s.row - i); err != nil {
			return err
		}
		if err := t.MoveCursorAbsoluteColumn(2); err != nil {
			return err
		}
	} else {
		if err := t.MoveCursorLeft(1); err != nil {
			return err
		}
		if err := t.Write(" "); err != nil {
			return err
		}
		if err := s.moveRows(i - s.row); err != nil {
			return err
		}
		if err := t.MoveCursorLeft(1); err != nil {
			return err
		}
	}
	if err := t.WriteStyled(s.p.palette().Selected, selectorGlyph); err != nil {
		return err
	}
	s.index, s.row = i, i
	return nil
}

func (s *selector) moveRows(delta int) error {
	if delta < 0 {
		return s.p.term.MoveCursorUp(-delta)
	}
	return s.p.term.MoveCursorDown(delta)
}

// clear erases every option row bottom-up and leaves the cursor on the
// question row.
func (s *selector) clear() error {
	t := s.p.term
	if err := s.moveRows(s.rows - 1 - s.row); err != nil {
		return err
	}
	for i := s.rows - 1; i >= 0; i-- {
		if err := t.EraseLine(esc.EraseAll); err != nil {
			return err
		}
		if err := t.MoveCursorUp(1); err != nil {
			return err
		}
	}
	s.row = -1
	return nil
}
