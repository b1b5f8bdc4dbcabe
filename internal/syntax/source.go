package syntax

import (
	"io"
	"unicode/utf8"
)

// source feeds an Atlas file to the scanner one rune at a time. The scanner
// looks at ch and calls nextch; line and col always describe ch.
type source struct {
	filename string
	text     string // whole file; Atlas files are small
	next     int    // byte index of the rune after ch

	ch        rune   // -1 before the first rune and at the end
	line, col uint32 // col counts bytes, so a tab is one column

	errh func(pos Pos, msg string)
}

// newSource loads src and stops on its first rune. A failed read leaves the
// source at the end after reporting it through errh, which may be nil.
func newSource(filename string, src io.Reader, errh func(pos Pos, msg string)) *source {
	s := &source{filename: filename, ch: -1, line: 1, errh: errh}

	b, err := io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}
	s.text = string(b)
	s.nextch()
	return s
}

// nextch moves to the following rune. Stepping past '\n' starts a new line.
func (s *source) nextch() {
	switch s.ch {
	case '\n':
		s.line, s.col = s.line+1, 1
	default:
		s.col++
	}

	if s.next == len(s.text) {
		s.ch = -1
		return
	}
	r, n := utf8.DecodeRuneInString(s.text[s.next:])
	if r == utf8.RuneError && n == 1 {
		// the bad byte still becomes a character so the scanner moves on
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.next += n
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// error reports msg at ch.
func (s *source) error(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// Atlas words are ASCII: names, keywords, type names and integer constants
// all draw on the same characters.

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWordChar(r rune) bool {
	return isLetter(r) || isDigit(r)
}

// isWhitespace reports whether r only separates tokens. A newline is not
// whitespace in Atlas; it ends a statement.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
