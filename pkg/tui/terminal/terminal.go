// ABOUTME: Terminal is the semantic control surface over a Port: cursor, erase, style, reads
// ABOUTME: The cursor strategy is resolved once at construction from capabilities and options

package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/promptkit-go/internal/log"
	"github.com/mauromedda/promptkit-go/pkg/tui/esc"
	"github.com/mauromedda/promptkit-go/pkg/tui/key"
)

// ErrCursorQueryUnsupported is returned when the cursor position cannot be read.
var ErrCursorQueryUnsupported = errors.New("terminal: cursor position query unsupported")

// CursorMode is how a Terminal saves, restores and addresses the cursor.
type CursorMode int

const (
	// CursorNone drops every cursor command; text still flows.
	CursorNone CursorMode = iota
	// CursorLegacy drives the cursor through the OS console API.
	CursorLegacy
	// CursorANSI uses CSI s / CSI u with a single save slot.
	CursorANSI
	// CursorDEC uses ESC 7 / ESC 8 with a single save slot.
	CursorDEC
	// CursorDSR queries the position and restores by absolute move.
	CursorDSR
)

var cursorModeNames = map[CursorMode]string{
	CursorNone:   "none",
	CursorLegacy: "legacy",
	CursorANSI:   "ansi",
	CursorDEC:    "dec",
	CursorDSR:    "dsr",
}

func (m CursorMode) String() string {
	if s, ok := cursorModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseCursorMode maps a mode name to a CursorMode. "auto" and "" report
// ok=false, meaning the mode should be detected.
func ParseCursorMode(s string) (mode CursorMode, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return CursorNone, false, nil
	}
	for m, name := range cursorModeNames {
		if name == s {
			return m, true, nil
		}
	}
	return CursorNone, false, fmt.Errorf("unknown cursor mode %q", s)
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithRawInput supplies the collaborator that toggles raw mode for key reads.
func WithRawInput(r RawInput) Option {
	return func(t *Terminal) { t.raw = r }
}

// WithCapabilities overrides capability detection.
func WithCapabilities(c Capabilities) Option {
	return func(t *Terminal) { t.caps = c }
}

// WithLegacyConsole supplies the console API used when escape sequences are unavailable.
func WithLegacyConsole(lc LegacyConsole) Option {
	return func(t *Terminal) { t.legacy = lc }
}

// WithDialect fixes the native save/restore dialect instead of reading TERM_PROGRAM.
func WithDialect(d esc.Dialect) Option {
	return func(t *Terminal) {
		t.dialect = d
		t.dialectSet = true
	}
}

// WithGetenv replaces os.Getenv for dialect resolution.
func WithGetenv(getenv func(string) string) Option {
	return func(t *Terminal) { t.getenv = getenv }
}

// WithCursorMode forces a cursor strategy.
func WithCursorMode(m CursorMode) Option {
	return func(t *Terminal) {
		t.mode = m
		t.modeSet = true
	}
}

// Terminal issues semantic terminal operations over a Port.
// It is not safe for concurrent use.
type Terminal struct {
	port   *Port
	raw    RawInput
	caps   Capabilities
	legacy LegacyConsole
	getenv func(string) string

	dialect    esc.Dialect
	dialectSet bool
	mode       CursorMode
	modeSet    bool

	rawDepth int
	hidden   bool
}

// New returns a Terminal over port. Without WithCapabilities the terminal
// assumes neither styling nor cursor queries.
func New(port *Port, opts ...Option) *Terminal {
	t := &Terminal{port: port, caps: Caps{}}
	for _, opt := range opts {
		opt(t)
	}
	if !t.dialectSet {
		t.dialect = esc.DialectFromEnv(t.getenv)
	}
	if !t.modeSet {
		t.mode = t.resolveMode()
	}
	if t.mode == CursorLegacy && t.legacy == nil {
		t.mode = CursorNone
	}
	// A cursor report only arrives promptly in raw mode.
	if t.mode == CursorDSR && t.raw == nil {
		t.mode = CursorANSI
		if t.dialect == esc.DialectDEC {
			t.mode = CursorDEC
		}
	}
	if t.mode == CursorANSI || t.mode == CursorDEC {
		t.dialect = esc.DialectANSI
		if t.mode == CursorDEC {
			t.dialect = esc.DialectDEC
		}
	}
	log.With("mode", t.mode.String()).Debug("terminal cursor strategy resolved")
	return t
}

func (t *Terminal) resolveMode() CursorMode {
	switch {
	case t.caps.SupportsStyling() && t.caps.SupportsCursorQuery():
		return CursorDSR
	case t.caps.SupportsStyling() && t.dialect == esc.DialectDEC:
		return CursorDEC
	case t.caps.SupportsStyling():
		return CursorANSI
	case t.legacy != nil:
		return CursorLegacy
	}
	return CursorNone
}

// Mode returns the resolved cursor strategy.
func (t *Terminal) Mode() CursorMode { return t.mode }

// IsStylingSupported reports whether SGR sequences are emitted.
func (t *Terminal) IsStylingSupported() bool { return t.caps.SupportsStyling() }

// SupportsNestedSaves reports whether a second SaveCursor keeps the first valid.
func (t *Terminal) SupportsNestedSaves() bool {
	return t.mode == CursorDSR || t.mode == CursorLegacy
}

// HasRawInput reports whether single keypresses can be read.
func (t *Terminal) HasRawInput() bool { return t.raw != nil }

func (t *Terminal) vt() bool {
	return t.mode == CursorDSR || t.mode == CursorANSI || t.mode == CursorDEC
}

func (t *Terminal) write(s string) error { return t.port.WriteString(s) }

// Write writes s verbatim.
func (t *Terminal) Write(s string) error { return t.write(s) }

// WriteLine writes s followed by a newline.
func (t *Terminal) WriteLine(s string) error { return t.write(s + "\n") }

// Writef writes formatted text.
func (t *Terminal) Writef(format string, args ...any) error {
	return t.write(fmt.Sprintf(format, args...))
}

// ReadLine reads one line of input without its terminator.
func (t *Terminal) ReadLine() (string, error) { return t.port.ReadLine() }

// ReadKey reads one keypress, entering raw mode for the read unless a Raw
// scope is already open.
func (t *Terminal) ReadKey() (key.Key, error) {
	var k key.Key
	err := t.Raw(func() error {
		var err error
		k, err = t.port.ReadKey()
		return err
	})
	return k, err
}

// Raw runs fn with the input in raw mode. Scopes nest; only the outermost
// one toggles the device.
func (t *Terminal) Raw(fn func() error) (err error) {
	if t.raw != nil && t.rawDepth == 0 {
		if err := t.raw.EnterRawMode(); err != nil {
			return err
		}
	}
	t.rawDepth++
	defer func() {
		t.rawDepth--
		if t.raw != nil && t.rawDepth == 0 {
			if exitErr := t.raw.ExitRawMode(); exitErr != nil && err == nil {
				err = exitErr
			}
		}
	}()
	return fn()
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() error {
	if !t.vt() {
		return nil
	}
	t.hidden = false
	return t.write(esc.ShowCursor)
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() error {
	if !t.vt() {
		return nil
	}
	t.hidden = true
	return t.write(esc.HideCursor)
}

// MoveCursor moves dx columns (negative is left) and dy rows (negative is up).
func (t *Terminal) MoveCursor(dx, dy int) error {
	switch {
	case dx > 0:
		if err := t.MoveCursorRight(dx); err != nil {
			return err
		}
	case dx < 0:
		if err := t.MoveCursorLeft(-dx); err != nil {
			return err
		}
	}
	switch {
	case dy > 0:
		return t.MoveCursorDown(dy)
	case dy < 0:
		return t.MoveCursorUp(-dy)
	}
	return nil
}

// MoveCursorUp moves up n rows, stopping at the top row.
func (t *Terminal) MoveCursorUp(n int) error {
	return t.relative(n, esc.CursorUp, 0, -1)
}

// MoveCursorDown moves down n rows.
func (t *Terminal) MoveCursorDown(n int) error {
	return t.relative(n, esc.CursorDown, 0, 1)
}

// MoveCursorLeft moves left n columns, stopping at the first column.
func (t *Terminal) MoveCursorLeft(n int) error {
	return t.relative(n, esc.CursorBack, -1, 0)
}

// MoveCursorRight moves right n columns.
func (t *Terminal) MoveCursorRight(n int) error {
	return t.relative(n, esc.CursorForward, 1, 0)
}

func (t *Terminal) relative(n int, seq func(int) string, sx, sy int) error {
	if n <= 0 {
		return nil
	}
	switch {
	case t.vt():
		return t.write(seq(n))
	case t.mode == CursorLegacy:
		col, row, err := t.legacy.Cursor()
		if err != nil {
			return err
		}
		return t.legacy.SetCursor(max(0, col+sx*n), max(0, row+sy*n))
	}
	return nil
}

// MoveCursorAbsoluteColumn moves to the 1-indexed column of the current row.
func (t *Terminal) MoveCursorAbsoluteColumn(col int) error {
	switch {
	case t.vt():
		return t.write(esc.CursorColumn(col))
	case t.mode == CursorLegacy:
		_, row, err := t.legacy.Cursor()
		if err != nil {
			return err
		}
		return t.legacy.SetCursor(max(0, col-1), row)
	}
	return nil
}

// MoveCursorTo moves to the 1-indexed row and column.
func (t *Terminal) MoveCursorTo(row, col int) error {
	switch {
	case t.vt():
		return t.write(esc.CursorPosition(row, col))
	case t.mode == CursorLegacy:
		return t.legacy.SetCursor(max(0, col-1), max(0, row-1))
	}
	return nil
}

// NextLine moves down n rows to the first column.
func (t *Terminal) NextLine(n int) error {
	if err := t.MoveCursorDown(n); err != nil {
		return err
	}
	return t.MoveCursorAbsoluteColumn(1)
}

// PreviousLine moves up n rows to the first column.
func (t *Terminal) PreviousLine(n int) error {
	if err := t.MoveCursorUp(n); err != nil {
		return err
	}
	return t.MoveCursorAbsoluteColumn(1)
}

// EraseLine clears part of the current line without moving the cursor.
func (t *Terminal) EraseLine(mode esc.EraseMode) error {
	switch {
	case t.vt():
		return t.write(esc.EraseLine(mode))
	case t.mode == CursorLegacy:
		return t.legacyErase(mode)
	}
	return nil
}

// legacyErase overwrites the selected span with spaces and puts the cursor back.
func (t *Terminal) legacyErase(mode esc.EraseMode) error {
	col, row, err := t.legacy.Cursor()
	if err != nil {
		return err
	}
	cols, _, err := t.legacy.Window()
	if err != nil {
		return err
	}
	from, to := col, cols
	switch mode {
	case esc.EraseToStart:
		from, to = 0, col+1
	case esc.EraseAll:
		from, to = 0, cols
	}
	if to <= from {
		return nil
	}
	if err := t.legacy.SetCursor(from, row); err != nil {
		return err
	}
	if err := t.write(strings.Repeat(" ", to-from)); err != nil {
		return err
	}
	return t.legacy.SetCursor(col, row)
}

// ScrollUp scrolls the page up n lines. Legacy consoles ignore it.
func (t *Terminal) ScrollUp(n int) error {
	if !t.vt() || n <= 0 {
		return nil
	}
	return t.write(esc.ScrollUp(n))
}

// ScrollDown scrolls the page down n lines. Legacy consoles ignore it.
func (t *Terminal) ScrollDown(n int) error {
	if !t.vt() || n <= 0 {
		return nil
	}
	return t.write(esc.ScrollDown(n))
}

// ReserveRows makes sure n rows exist below the cursor by scrolling them
// into view, then returns to column 1 of the original row. Absolute saves
// taken afterwards survive output that fills those rows.
func (t *Terminal) ReserveRows(n int) error {
	if n <= 0 || t.mode == CursorNone {
		return nil
	}
	if err := t.write(strings.Repeat("\n", n)); err != nil {
		return err
	}
	return t.MoveCursorUp(n)
}

// SaveCursor captures the current position.
func (t *Terminal) SaveCursor() (SavedCursor, error) {
	switch t.mode {
	case CursorDSR, CursorLegacy:
		pos, err := t.GetCursor()
		if err != nil {
			return SavedCursor{}, err
		}
		return SavedCursor{t: t, pos: pos, known: true}, nil
	case CursorANSI, CursorDEC:
		if err := t.write(esc.SaveCursor(t.dialect)); err != nil {
			return SavedCursor{}, err
		}
		return SavedCursor{t: t}, nil
	}
	return SavedCursor{}, nil
}

// RestoreCursor returns to a saved position.
func (t *Terminal) RestoreCursor(s SavedCursor) error { return s.Restore() }

// GetCursor reads the 1-indexed cursor position. It blocks until the
// terminal answers and never retries a malformed report.
func (t *Terminal) GetCursor() (CursorPosition, error) {
	switch t.mode {
	case CursorLegacy:
		col, row, err := t.legacy.Cursor()
		if err != nil {
			return CursorPosition{}, err
		}
		return CursorPosition{Row: row + 1, Column: col + 1}, nil
	case CursorDSR:
	default:
		return CursorPosition{}, ErrCursorQueryUnsupported
	}

	var resp string
	err := t.Raw(func() error {
		if err := t.write(esc.RequestCursorPosition); err != nil {
			return err
		}
		var err error
		resp, err = t.port.ReadUntil(esc.ReportTerminator)
		return err
	})
	if err != nil {
		return CursorPosition{}, fmt.Errorf("cursor position report: %w", err)
	}
	row, col, err := esc.ParseCursorReport(resp)
	if err != nil {
		log.Debug("malformed cursor report %q", resp)
		return CursorPosition{}, err
	}
	return CursorPosition{Row: row, Column: col}, nil
}

// sizer is implemented by RawInput collaborators that know the OS window size.
type sizer interface {
	Size() (width, height int, err error)
}

// GetSize returns the terminal width and height in cells. A cursor-query
// terminal is probed; otherwise the console window or the OS size is used.
func (t *Terminal) GetSize() (w, h int, err error) {
	switch t.mode {
	case CursorDSR:
		return t.probeSize()
	case CursorLegacy:
		return t.legacy.Window()
	}
	if s, ok := t.raw.(sizer); ok {
		if w, h, err := s.Size(); err == nil && w > 0 && h > 0 {
			return w, h, nil
		}
	}
	return 0, 0, ErrCursorQueryUnsupported
}

// probeSize moves to the far corner and reads where the cursor was clamped.
func (t *Terminal) probeSize() (w, h int, err error) {
	wasHidden := t.hidden
	if err := t.HideCursor(); err != nil {
		return 0, 0, err
	}
	defer func() {
		if !wasHidden {
			if showErr := t.ShowCursor(); showErr != nil && err == nil {
				err = showErr
			}
		}
	}()

	saved, err := t.SaveCursor()
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if restoreErr := saved.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	if err := t.MoveCursorTo(999, 999); err != nil {
		return 0, 0, err
	}
	corner, err := t.GetCursor()
	if err != nil {
		return 0, 0, err
	}
	return corner.Column, corner.Row, nil
}

// SetStyle applies style until the returned handle is released. Empty
// styles and terminals without styling get a handle that emits nothing.
func (t *Terminal) SetStyle(style esc.Style) (*ScopedStyle, error) {
	if style.IsZero() || !t.caps.SupportsStyling() {
		return &ScopedStyle{}, nil
	}
	if err := t.write(esc.SGR(style)); err != nil {
		return nil, err
	}
	return &ScopedStyle{t: t}, nil
}

// WithStyle runs fn with style applied and always releases it. A release
// error is reported only when fn succeeded.
func (t *Terminal) WithStyle(style esc.Style, fn func() error) (err error) {
	s, err := t.SetStyle(style)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := s.Release(); relErr != nil && err == nil {
			err = relErr
		}
	}()
	return fn()
}

// WriteStyled writes s in style followed by a reset.
func (t *Terminal) WriteStyled(style esc.Style, s string) error {
	return t.WithStyle(style, func() error { return t.write(s) })
}

// Restore returns the terminal to a sane state: default rendition, visible
// cursor, cooked input. It is safe to call at any time.
func (t *Terminal) Restore() error {
	var errs []error
	if t.caps.SupportsStyling() {
		errs = append(errs, t.write(esc.Reset))
	}
	if t.vt() {
		errs = append(errs, t.write(esc.ShowCursor))
		t.hidden = false
	}
	if t.raw != nil {
		errs = append(errs, t.raw.ExitRawMode())
		t.rawDepth = 0
	}
	return errors.Join(errs...)
}
