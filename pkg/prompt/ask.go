// ABOUTME: Scalar ask loop: read a line, validate, redraw the input region until accepted
// ABOUTME: String, integer, float and boolean wrappers build the matching validator

package prompt

import (
	"fmt"

	"github.com/mauromedda/promptkit-go/internal/log"
	"github.com/mauromedda/promptkit-go/pkg/tui/terminal"
	"github.com/mauromedda/promptkit-go/pkg/tui/width"
)

// Ask renders question and reads answers until v accepts one. Rejections
// are shown inline after the hint; the question is drawn once. The final
// screen line holds the question and the displayed answer.
func Ask[T any](p *Prompt, question string, v Validator[T]) (T, error) {
	var zero T
	t := p.term

	result, err := p.begin(question, 1)
	if err != nil {
		return zero, err
	}

	baseline := result
	if hint := v.Hint(); hint != "" {
		if err := t.WriteStyled(p.palette().Hint, hint+" "); err != nil {
			return zero, err
		}
		if baseline, err = p.baseline(result, width.VisibleWidth(hint)+1); err != nil {
			return zero, err
		}
	}

	for attempt := 1; ; attempt++ {
		raw, err := t.ReadLine()
		if err != nil {
			return zero, fmt.Errorf("reading answer: %w", err)
		}

		res := v.TryParse(raw)
		switch res.Outcome {
		case Accepted:
			return res.Value, p.commit(result, v.Display(res.Value))
		case UseDefault:
			d, _ := v.Default()
			return d, p.commit(result, v.Display(d))
		}

		log.With("question", question).Debugf("answer rejected: %s", res.Message)
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			if err := result.Reset(true); err != nil {
				return zero, err
			}
			if err := t.WriteLine(""); err != nil {
				return zero, err
			}
			return zero, fmt.Errorf("%q: %w", question, ErrTooManyAttempts)
		}
		if err := baseline.Reset(true); err != nil {
			return zero, err
		}
		if err := t.WriteStyled(p.palette().Alert, "("+res.Message+") "); err != nil {
			return zero, err
		}
	}
}

// baseline marks where input starts, cols after the result position. A
// second save is only safe when saves nest.
func (p *Prompt) baseline(result terminal.SavedCursor, cols int) (terminal.SavedCursor, error) {
	if p.term.SupportsNestedSaves() {
		return p.term.SaveCursor()
	}
	return result.Offset(cols), nil
}

// AskString asks a required free-text question, or an optional one when def is given.
func AskString(p *Prompt, question string, def Optional[string]) (string, error) {
	v, err := NewText(TextConfig{Default: def, Required: true})
	if err != nil {
		return "", err
	}
	return Ask[string](p, question, v)
}

// AskInteger asks for a whole number.
func AskInteger(p *Prompt, question string, cfg IntegerConfig) (int, error) {
	v, err := NewInteger(cfg)
	if err != nil {
		return 0, err
	}
	return Ask[int](p, question, v)
}

// AskFloat asks for a decimal number.
func AskFloat(p *Prompt, question string, cfg FloatConfig) (float64, error) {
	v, err := NewFloat(cfg)
	if err != nil {
		return 0, err
	}
	return Ask[float64](p, question, v)
}

// AskBoolean asks a yes/no question. Without a default an answer is required.
func AskBoolean(p *Prompt, question string, def Optional[bool]) (bool, error) {
	v, err := NewBoolean(BooleanConfig{Default: def, Required: true})
	if err != nil {
		return false, err
	}
	return Ask[bool](p, question, v)
}
