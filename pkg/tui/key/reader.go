// ABOUTME: Blocking single-key reader that splits a raw byte stream into keypresses
// ABOUTME: Escape sequences are read up to their final byte; a lone ESC with nothing buffered is Escape

package key

import (
	"bufio"
	"fmt"
	"io"
)

// maxSequence bounds how many bytes of an unterminated CSI sequence are consumed.
const maxSequence = 32

// Reader decodes keypresses from a buffered stream. It shares the buffer with
// any line reader on the same stream, so no bytes are lost between modes.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a key reader over r.
func NewReader(r *bufio.Reader) *Reader {
	return &Reader{r: r}
}

// ReadKey blocks until one complete keypress is available.
func (kr *Reader) ReadKey() (Key, error) {
	b, err := kr.r.ReadByte()
	if err != nil {
		return Key{Type: KeyUnknown}, err
	}

	switch {
	case b == 0x1b:
		return kr.readEscape()
	case b == '\r':
		// CR LF from a line-buffered source is one Enter.
		if kr.r.Buffered() > 0 {
			if next, _ := kr.r.Peek(1); len(next) == 1 && next[0] == '\n' {
				_, _ = kr.r.ReadByte()
			}
		}
		return Key{Type: KeyEnter}, nil
	case b >= 0x80:
		if err := kr.r.UnreadByte(); err != nil {
			return Key{Type: KeyUnknown}, fmt.Errorf("key: unread: %w", err)
		}
		r, _, err := kr.r.ReadRune()
		if err != nil {
			return Key{Type: KeyUnknown}, err
		}
		return ParseKey(string(r)), nil
	}
	return parseByte(b), nil
}

func (kr *Reader) readEscape() (Key, error) {
	if kr.r.Buffered() == 0 {
		return Key{Type: KeyEscape}, nil
	}
	intro, err := kr.r.ReadByte()
	if err != nil {
		return Key{Type: KeyEscape}, nil
	}

	seq := []byte{0x1b, intro}
	switch intro {
	case 'O':
		final, err := kr.r.ReadByte()
		if err != nil {
			return Key{Type: KeyUnknown}, err
		}
		seq = append(seq, final)
	case '[':
		for len(seq) < maxSequence {
			c, err := kr.r.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				return Key{Type: KeyUnknown}, err
			}
			seq = append(seq, c)
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	}
	return ParseKey(string(seq)), nil
}
