// ABOUTME: Boolean validator for yes/no questions
// ABOUTME: Accepts yes, y, no, n under Unicode case folding

package prompt

import "golang.org/x/text/cases"

// BooleanConfig configures NewBoolean.
type BooleanConfig struct {
	Default  Optional[bool]
	Required bool
}

// Boolean validates yes/no answers.
type Boolean struct {
	cfg BooleanConfig
}

// NewBoolean returns a Boolean validator. It never fails; the error keeps
// constructors uniform.
func NewBoolean(cfg BooleanConfig) (*Boolean, error) {
	return &Boolean{cfg: cfg}, nil
}

func (v *Boolean) TryParse(raw string) Result[bool] {
	if r, ok := blank(raw, v.cfg.Default, v.cfg.Required); ok {
		return r
	}
	switch cases.Fold().String(normalize(raw)) {
	case "yes", "y":
		return Accept(true)
	case "no", "n":
		return Accept(false)
	}
	return Reject[bool]("please answer yes or no")
}

func (v *Boolean) Default() (bool, bool) { return v.cfg.Default.Get() }

func (v *Boolean) Hint() string {
	d, ok := v.cfg.Default.Get()
	switch {
	case !ok:
		return ""
	case d:
		return "(Y/n)"
	default:
		return "(y/N)"
	}
}

func (v *Boolean) Display(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
