package syntax

import (
	"io"
	"strings"
)

// Scanner performs lexical analysis on Atlas source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

// NewScanner creates a Scanner for src.
// errh is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case s.ch == '\n':
		s.nextch()
		s.tok = _Terminator
		s.lit = "\n"

	case isWordChar(s.ch):
		s.scanWord()

	case s.ch == '"':
		s.scanQuoted('"', _String, "string")

	case s.ch == '\'':
		s.scanQuoted('\'', _Char, "character")

	default:
		if s.scanOperator() {
			// comment skipped
			goto redo
		}
	}
}

// Token returns the current token kind.
func (s *Scanner) Token() Token {
	return s.tok
}

// Text returns the current token's text.
func (s *Scanner) Text() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Lexeme returns the current token as a Lexeme.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Tok: s.tok, Text: s.lit, Pos: s.tokPos}
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanWord scans a run of word characters. An all-digit run is an integer
// constant; otherwise the run is a keyword or an identifier.
func (s *Scanner) scanWord() {
	s.litBuf.Reset()
	digits := true
	for isWordChar(s.ch) {
		if !isDigit(s.ch) {
			digits = false
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()

	if digits {
		s.tok = _Int
		return
	}
	s.tok = LookupKeyword(s.lit)
}

// scanQuoted scans a string or character literal. The text between the
// delimiters is kept verbatim; backslashes have no special meaning. A literal
// must close on the line it opens.
func (s *Scanner) scanQuoted(delim rune, tok Token, what string) {
	s.nextch() // opening delimiter
	s.litBuf.Reset()

	for s.ch != delim {
		if s.ch < 0 || s.ch == '\n' {
			s.errorAt(s.tokPos, what+" literal not terminated")
			break
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	if s.ch == delim {
		s.nextch()
	}

	s.tok = tok
	s.lit = s.litBuf.String()
}

// scanOperator scans an operator or delimiter. Two-character operators are
// matched before their one-character prefix. Characters outside the language
// produce an _Invalid token.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok, s.lit = _Add, "+"
	case '-':
		if s.ch == '>' {
			s.nextch()
			s.tok, s.lit = _Arrow, "->"
		} else {
			s.tok, s.lit = _Sub, "-"
		}
	case '*':
		s.tok, s.lit = _Mul, "*"
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		s.tok, s.lit = _Div, "/"
	case '%':
		s.tok, s.lit = _Rem, "%"
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Leq, "<="
		} else {
			s.tok, s.lit = _Lss, "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Geq, ">="
		} else {
			s.tok, s.lit = _Gtr, ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Eql, "=="
		} else {
			s.tok, s.lit = _Assign, "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Neq, "!="
		} else {
			s.tok, s.lit = _Not, "!"
		}
	case ':':
		if s.ch == ':' {
			s.nextch()
			s.tok, s.lit = _DoubleColon, "::"
		} else {
			s.tok, s.lit = _Invalid, ":"
		}
	case '&':
		if s.ch == '&' {
			s.nextch()
			s.tok, s.lit = _AndAnd, "&&"
		} else {
			s.tok, s.lit = _Invalid, "&"
		}
	case '|':
		if s.ch == '|' {
			s.nextch()
			s.tok, s.lit = _OrOr, "||"
		} else {
			s.tok, s.lit = _Invalid, "|"
		}
	case '.':
		if s.ch == '{' {
			s.nextch()
			s.tok, s.lit = _DotBrace, ".{"
		} else {
			s.tok, s.lit = _Dot, "."
		}
	case ';':
		s.tok, s.lit = _Terminator, ";"
	case '(':
		s.tok, s.lit = _Lparen, "("
	case ')':
		s.tok, s.lit = _Rparen, ")"
	case '[':
		s.tok, s.lit = _Lbrack, "["
	case ']':
		s.tok, s.lit = _Rbrack, "]"
	case '{':
		s.tok, s.lit = _Lbrace, "{"
	case '}':
		s.tok, s.lit = _Rbrace, "}"
	case ',':
		s.tok, s.lit = _Comma, ","
	default:
		s.tok, s.lit = _Invalid, string(ch)
	}

	return false
}

// skipLineComment skips a // comment up to, not including, the newline.
func (s *Scanner) skipLineComment() {
	// Already consumed the first /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// Tokenize scans src completely and returns its tokens. The slice always ends
// with a single EOF token. If a lexical error occurs, the tokens scanned so
// far are returned together with the first error (an *Error).
func Tokenize(filename string, src io.Reader) ([]Lexeme, error) {
	var first *Error
	errh := func(pos Pos, msg string) {
		if first == nil {
			first = &Error{Kind: LexicalError, Pos: pos, Msg: msg}
		}
	}

	s := NewScanner(filename, src, errh)
	var toks []Lexeme
	for {
		s.Next()
		toks = append(toks, s.Lexeme())
		if s.tok == _EOF {
			break
		}
	}

	if first != nil {
		return toks, first
	}
	return toks, nil
}
