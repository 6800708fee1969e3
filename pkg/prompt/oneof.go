// ABOUTME: OneOf validator: answers must name one of a closed set of choices
// ABOUTME: Labels compare after NFC composition; AllowIndex also accepts 1-based positions

package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// OneOfConfig configures NewOneOf.
type OneOfConfig[T any] struct {
	Choices []T
	// Label renders a choice; nil uses fmt.Sprint.
	Label func(T) string
	// Equal compares normalized input with a normalized label; nil is exact.
	Equal      func(input, label string) bool
	Default    Optional[T]
	Required   bool
	AllowIndex bool
}

// OneOf validates answers against a closed set.
type OneOf[T any] struct {
	cfg    OneOfConfig[T]
	labels []string
}

// NewOneOf checks that the choices are non-empty with distinct labels and
// that any default is among them.
func NewOneOf[T any](cfg OneOfConfig[T]) (*OneOf[T], error) {
	if len(cfg.Choices) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConstraint, ErrNoChoices)
	}
	if cfg.Label == nil {
		cfg.Label = func(v T) string { return fmt.Sprint(v) }
	}
	if cfg.Equal == nil {
		cfg.Equal = func(a, b string) bool { return a == b }
	}

	labels := make([]string, len(cfg.Choices))
	seen := make(map[string]bool, len(cfg.Choices))
	for i, c := range cfg.Choices {
		l := norm.NFC.String(cfg.Label(c))
		if seen[l] {
			return nil, fmt.Errorf("%w: duplicate choice %q", ErrInvalidConstraint, l)
		}
		seen[l] = true
		labels[i] = l
	}

	v := &OneOf[T]{cfg: cfg, labels: labels}
	if d, ok := cfg.Default.Get(); ok && v.find(norm.NFC.String(cfg.Label(d))) < 0 {
		return nil, fmt.Errorf("%w: default %q is not a choice", ErrInvalidConstraint, cfg.Label(d))
	}
	return v, nil
}

func (v *OneOf[T]) find(input string) int {
	for i, l := range v.labels {
		if v.cfg.Equal(input, l) {
			return i
		}
	}
	return -1
}

// Choices returns the configured choices in order.
func (v *OneOf[T]) Choices() []T { return v.cfg.Choices }

// Labels returns the rendered labels in order.
func (v *OneOf[T]) Labels() []string { return v.labels }

func (v *OneOf[T]) TryParse(raw string) Result[T] {
	if r, ok := blank(raw, v.cfg.Default, v.cfg.Required); ok {
		return r
	}
	s := normalize(raw)
	if i := v.find(s); i >= 0 {
		return Accept(v.cfg.Choices[i])
	}
	if v.cfg.AllowIndex {
		if n, err := strconv.Atoi(s); err == nil {
			if n >= 1 && n <= len(v.labels) {
				return Accept(v.cfg.Choices[n-1])
			}
			return Reject[T](fmt.Sprintf("must be between 1 and %d", len(v.labels)))
		}
	}
	return Reject[T]("must be one of " + strings.Join(v.labels, ", "))
}

func (v *OneOf[T]) Default() (T, bool) { return v.cfg.Default.Get() }

func (v *OneOf[T]) Hint() string {
	if d, ok := v.cfg.Default.Get(); ok {
		return "(" + v.cfg.Label(d) + ")"
	}
	return ""
}

func (v *OneOf[T]) Display(c T) string { return v.cfg.Label(c) }

// EqualFold is an Equal function that ignores case.
func EqualFold(input, label string) bool { return strings.EqualFold(input, label) }
