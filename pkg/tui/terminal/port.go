// ABOUTME: Port is the byte-stream pair every Terminal talks through: one writer, one buffered reader
// ABOUTME: Line reads, delimiter reads for device reports and key reads all share the same buffer

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/promptkit-go/pkg/tui/key"
)

// Port wraps the output writer and input reader of a terminal.
type Port struct {
	w    io.Writer
	r    *bufio.Reader
	keys *key.Reader
}

// NewPort returns a Port reading from r and writing to w.
func NewPort(r io.Reader, w io.Writer) *Port {
	br := bufio.NewReader(r)
	return &Port{w: w, r: br, keys: key.NewReader(br)}
}

// WriteString writes s in full.
func (p *Port) WriteString(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// ReadLine reads up to the next newline and strips the line terminator.
// io.EOF is returned only when the stream ended before any byte was read.
func (p *Port) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("terminal read line: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadUntil reads up to and including delim.
func (p *Port) ReadUntil(delim byte) (string, error) {
	s, err := p.r.ReadString(delim)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return s, io.EOF
		}
		return s, fmt.Errorf("terminal read: %w", err)
	}
	return s, nil
}

// ReadKey reads one keypress.
func (p *Port) ReadKey() (key.Key, error) {
	k, err := p.keys.ReadKey()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return k, io.EOF
		}
		return k, fmt.Errorf("terminal read key: %w", err)
	}
	return k, nil
}
