// ABOUTME: Text validator: trimmed free text with optional rune-length bounds
// ABOUTME: Lengths are counted in runes after NFC composition

package prompt

import (
	"fmt"
	"unicode/utf8"
)

// TextConfig configures NewText.
type TextConfig struct {
	Default   Optional[string]
	Required  bool
	MinLength Optional[int]
	MaxLength Optional[int]
}

// Text validates free-form answers.
type Text struct {
	cfg TextConfig
}

// NewText checks the bounds and returns a Text validator.
func NewText(cfg TextConfig) (*Text, error) {
	lo, hasLo := cfg.MinLength.Get()
	hi, hasHi := cfg.MaxLength.Get()
	switch {
	case hasLo && lo < 0:
		return nil, fmt.Errorf("%w: negative minimum length %d", ErrInvalidConstraint, lo)
	case hasHi && hi < 0:
		return nil, fmt.Errorf("%w: negative maximum length %d", ErrInvalidConstraint, hi)
	case hasLo && hasHi && lo > hi:
		return nil, fmt.Errorf("%w: minimum length %d exceeds maximum %d", ErrInvalidConstraint, lo, hi)
	}
	return &Text{cfg: cfg}, nil
}

func (v *Text) TryParse(raw string) Result[string] {
	if r, ok := blank(raw, v.cfg.Default, v.cfg.Required); ok {
		return r
	}
	s := normalize(raw)
	n := utf8.RuneCountInString(s)
	if lo, ok := v.cfg.MinLength.Get(); ok && n < lo {
		return Reject[string](fmt.Sprintf("must be at least %d characters", lo))
	}
	if hi, ok := v.cfg.MaxLength.Get(); ok && n > hi {
		return Reject[string](fmt.Sprintf("must be at most %d characters", hi))
	}
	return Accept(s)
}

func (v *Text) Default() (string, bool) { return v.cfg.Default.Get() }

func (v *Text) Hint() string {
	if d, ok := v.cfg.Default.Get(); ok {
		return "(" + d + ")"
	}
	return ""
}

func (v *Text) Display(s string) string { return s }
