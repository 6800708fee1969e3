// ABOUTME: Validator interface and Result, the three-way outcome of parsing one answer
// ABOUTME: Shared blank-input rule: default if supplied, else "required" or the zero value

package prompt

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Outcome classifies a parsed answer.
type Outcome int

const (
	// Accepted means Result.Value holds the answer.
	Accepted Outcome = iota
	// Rejected means Result.Message explains why the input was refused.
	Rejected
	// UseDefault means the input was blank and the validator's default applies.
	UseDefault
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case UseDefault:
		return "default"
	}
	return "unknown"
}

// Result is what TryParse returns.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Message string
}

// Accept returns an Accepted result holding v.
func Accept[T any](v T) Result[T] { return Result[T]{Outcome: Accepted, Value: v} }

// Reject returns a Rejected result with msg.
func Reject[T any](msg string) Result[T] { return Result[T]{Outcome: Rejected, Message: msg} }

// Default returns a UseDefault result.
func Default[T any]() Result[T] { return Result[T]{Outcome: UseDefault} }

// Validator parses raw answers into T. Implementations are pure and fixed at
// construction time.
type Validator[T any] interface {
	// TryParse classifies one line of input.
	TryParse(raw string) Result[T]
	// Default returns the value used for blank input, if any.
	Default() (T, bool)
	// Hint is shown dimmed after the question; "" shows nothing.
	Hint() string
	// Display renders an answer for the committed line.
	Display(T) string
}

const msgRequired = "required"

// blank applies the empty-input rule. ok is false when raw is not blank.
func blank[T any](raw string, def Optional[T], required bool) (Result[T], bool) {
	if strings.TrimSpace(raw) != "" {
		return Result[T]{}, false
	}
	if def.IsSome() {
		return Default[T](), true
	}
	if required {
		return Reject[T](msgRequired), true
	}
	var zero T
	return Accept(zero), true
}

// normalize trims surrounding whitespace and composes to NFC.
func normalize(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}
