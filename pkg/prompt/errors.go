// ABOUTME: Sentinel errors returned by validator constructors and ask loops
// ABOUTME: Validation rejections are never errors; they drive the retry loop

package prompt

import "errors"

var (
	// ErrInvalidConstraint reports a validator built with impossible bounds or choices.
	ErrInvalidConstraint = errors.New("invalid constraint")
	// ErrTooManyAttempts is returned after the configured number of rejected answers.
	ErrTooManyAttempts = errors.New("too many attempts")
	// ErrInterrupted is returned when the user presses Ctrl+C in a selector.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoChoices is returned for a selector or OneOf without options.
	ErrNoChoices = errors.New("no choices")
)
