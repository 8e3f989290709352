// Package scanner streams an input file one raw line at a time.
//
// The scanner is lazy and forward-only: it never buffers the whole file, so
// memory stays bounded regardless of input size. Restarting requires
// reopening the source.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLine caps a single line at 1 MiB. Lines beyond this indicate a file that
// is not line-delimited at all.
const maxLine = 1 << 20

const utf8BOM = "\uFEFF"

// Line is one raw input line paired with its zero-based row index.
type Line struct {
	Index int
	Text  string
}

// Scanner yields lines from an underlying reader. It owns the reader and
// closes it via Close; callers must guarantee Close on every exit path.
type Scanner struct {
	rc   io.ReadCloser
	br   *bufio.Scanner
	next int
}

// New wraps rc in a line scanner. A UTF-8 BOM on the first line is stripped.
func New(rc io.ReadCloser) *Scanner {
	br := bufio.NewScanner(rc)
	br.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Scanner{rc: rc, br: br}
}

// Scan returns the next line. It returns io.EOF at end of input and wraps any
// underlying read failure with the row index at which it occurred. The check
// on ctx makes cancellation cooperative between lines.
func (s *Scanner) Scan(ctx context.Context) (Line, error) {
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if !s.br.Scan() {
		if err := s.br.Err(); err != nil {
			return Line{}, fmt.Errorf("read line %d: %w", s.next, err)
		}
		return Line{}, io.EOF
	}

	text := s.br.Text()
	if s.next == 0 {
		text = strings.TrimPrefix(text, utf8BOM)
	}
	l := Line{Index: s.next, Text: text}
	s.next++
	return l, nil
}

// Close releases the underlying reader.
func (s *Scanner) Close() error { return s.rc.Close() }
