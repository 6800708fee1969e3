// ABOUTME: Integer and Float validators with inclusive optional bounds
// ABOUTME: Out-of-range messages name whichever bounds are configured

package prompt

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// bounds is an inclusive range with optional ends.
type bounds[T cmp.Ordered] struct {
	min, max Optional[T]
	format   func(T) string
}

func (b bounds[T]) check() error {
	lo, hasLo := b.min.Get()
	hi, hasHi := b.max.Get()
	if hasLo && hasHi && lo > hi {
		return fmt.Errorf("%w: minimum %s exceeds maximum %s", ErrInvalidConstraint, b.format(lo), b.format(hi))
	}
	return nil
}

// violation returns the rejection message for v, or "" when v is in range.
func (b bounds[T]) violation(v T) string {
	lo, hasLo := b.min.Get()
	hi, hasHi := b.max.Get()
	if (!hasLo || v >= lo) && (!hasHi || v <= hi) {
		return ""
	}
	switch {
	case hasLo && hasHi:
		return fmt.Sprintf("must be between %s and %s", b.format(lo), b.format(hi))
	case hasHi:
		return "must be less than " + b.format(hi)
	default:
		return "must be greater than " + b.format(lo)
	}
}

// IntegerConfig configures NewInteger.
type IntegerConfig struct {
	Default  Optional[int]
	Required bool
	Min      Optional[int]
	Max      Optional[int]
}

// Integer validates whole numbers.
type Integer struct {
	cfg    IntegerConfig
	bounds bounds[int]
}

// NewInteger checks the bounds and the default against them.
func NewInteger(cfg IntegerConfig) (*Integer, error) {
	b := bounds[int]{min: cfg.Min, max: cfg.Max, format: strconv.Itoa}
	if err := b.check(); err != nil {
		return nil, err
	}
	if d, ok := cfg.Default.Get(); ok {
		if msg := b.violation(d); msg != "" {
			return nil, fmt.Errorf("%w: default %d %s", ErrInvalidConstraint, d, msg)
		}
	}
	return &Integer{cfg: cfg, bounds: b}, nil
}

func (v *Integer) TryParse(raw string) Result[int] {
	if r, ok := blank(raw, v.cfg.Default, v.cfg.Required); ok {
		return r
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Reject[int]("not an integer")
	}
	if msg := v.bounds.violation(n); msg != "" {
		return Reject[int](msg)
	}
	return Accept(n)
}

func (v *Integer) Default() (int, bool) { return v.cfg.Default.Get() }

func (v *Integer) Hint() string {
	if d, ok := v.cfg.Default.Get(); ok {
		return fmt.Sprintf("(default: %d)", d)
	}
	return ""
}

func (v *Integer) Display(n int) string { return strconv.Itoa(n) }

// FloatConfig configures NewFloat.
type FloatConfig struct {
	Default  Optional[float64]
	Required bool
	Min      Optional[float64]
	Max      Optional[float64]
}

// Float validates finite decimal numbers.
type Float struct {
	cfg    FloatConfig
	bounds bounds[float64]
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// NewFloat checks the bounds and the default against them.
func NewFloat(cfg FloatConfig) (*Float, error) {
	for _, o := range []Optional[float64]{cfg.Min, cfg.Max, cfg.Default} {
		if f, ok := o.Get(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil, fmt.Errorf("%w: %v is not finite", ErrInvalidConstraint, f)
		}
	}
	b := bounds[float64]{min: cfg.Min, max: cfg.Max, format: formatFloat}
	if err := b.check(); err != nil {
		return nil, err
	}
	if d, ok := cfg.Default.Get(); ok {
		if msg := b.violation(d); msg != "" {
			return nil, fmt.Errorf("%w: default %s %s", ErrInvalidConstraint, formatFloat(d), msg)
		}
	}
	return &Float{cfg: cfg, bounds: b}, nil
}

func (v *Float) TryParse(raw string) Result[float64] {
	if r, ok := blank(raw, v.cfg.Default, v.cfg.Required); ok {
		return r
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Reject[float64]("not a number")
	}
	if msg := v.bounds.violation(f); msg != "" {
		return Reject[float64](msg)
	}
	return Accept(f)
}

func (v *Float) Default() (float64, bool) { return v.cfg.Default.Get() }

func (v *Float) Hint() string {
	if d, ok := v.cfg.Default.Get(); ok {
		return "(default: " + formatFloat(d) + ")"
	}
	return ""
}

func (v *Float) Display(f float64) string { return formatFloat(f) }
