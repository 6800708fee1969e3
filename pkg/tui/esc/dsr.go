// ABOUTME: Device status report parsing for cursor position responses (ESC [ row ; col R)
// ABOUTME: Malformed responses surface as *ProtocolError; nothing is retried here

package esc

import (
	"fmt"
	"regexp"
	"strconv"
)

// ReportTerminator is the final byte of a cursor position report.
const ReportTerminator = 'R'

// Anchored at the end so bytes typed ahead of the report are tolerated.
var reportPattern = regexp.MustCompile(`\x1b\[(\d+);(\d+)R$`)

// ProtocolError reports a missing or malformed device status response.
type ProtocolError struct {
	Response string
}

func (e *ProtocolError) Error() string {
	if e.Response == "" {
		return "terminal protocol: no cursor position report"
	}
	return fmt.Sprintf("terminal protocol: malformed cursor position report %q", e.Response)
}

// ParseCursorReport extracts the 1-indexed row and column from a DSR response.
func ParseCursorReport(s string) (row, col int, err error) {
	m := reportPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, &ProtocolError{Response: s}
	}
	row, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, &ProtocolError{Response: s}
	}
	col, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, &ProtocolError{Response: s}
	}
	return row, col, nil
}
