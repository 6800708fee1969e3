// ABOUTME: ScopedStyle is the release handle for an applied SGR style
// ABOUTME: Release emits one reset; go vet flags copies through the noCopy marker

package terminal

import "github.com/mauromedda/promptkit-go/pkg/tui/esc"

// noCopy may be embedded into structs which must not be copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ScopedStyle is returned by SetStyle. Release returns the terminal to its
// default rendition exactly once. The reset is not a pop: releasing an inner
// style inside an outer one clears both.
type ScopedStyle struct {
	_        noCopy
	t        *Terminal
	released bool
}

// Release emits the reset sequence on first call; later calls do nothing.
func (s *ScopedStyle) Release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true
	if s.t == nil {
		return nil
	}
	return s.t.write(esc.Reset)
}

// Released reports whether Release already ran.
func (s *ScopedStyle) Released() bool {
	return s == nil || s.released
}
