// Package syntax implements lexical and syntactic analysis for the Atlas programming language.
package syntax

import "fmt"

// Token represents the kind of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF     Token = iota // end of input
	_Invalid              // unrecognized character, diagnosed by the parser

	// Literals
	_Name   // identifier: foo, i64, Point
	_Int    // integer constant: 42
	_Char   // character literal: 'a' (verbatim, no escapes)
	_String // string literal: "hi" (verbatim, no escapes)

	// Statement separator; both '\n' and ';' scan to it.
	_Terminator

	// Operators
	_Assign // =

	_Eql // ==
	_Neq // !=

	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	_Add // +
	_Sub // -

	_Mul // *
	_Div // /
	_Rem // %

	_Dot // .

	_AndAnd // &&
	_OrOr   // ||
	_Not    // !

	// Delimiters
	_DoubleColon // ::
	_Arrow       // ->
	_DotBrace    // .{
	_Lparen      // (
	_Rparen      // )
	_Lbrack      // [
	_Rbrack      // ]
	_Lbrace      // {
	_Rbrace      // }
	_Comma       // ,

	// Keywords
	_If
	_Else
	_For
	_Type
	_Fn
	_Include
	_Cinclude

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:     "EOF",
	_Invalid: "invalid token",

	_Name:   "name",
	_Int:    "integer",
	_Char:   "character",
	_String: "string",

	_Terminator: "newline",

	_Assign: "=",
	_Eql:    "==",
	_Neq:    "!=",
	_Lss:    "<",
	_Leq:    "<=",
	_Gtr:    ">",
	_Geq:    ">=",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Rem:    "%",
	_Dot:    ".",
	_AndAnd: "&&",
	_OrOr:   "||",
	_Not:    "!",

	_DoubleColon: "::",
	_Arrow:       "->",
	_DotBrace:    ".{",
	_Lparen:      "(",
	_Rparen:      ")",
	_Lbrack:      "[",
	_Rbrack:      "]",
	_Lbrace:      "{",
	_Rbrace:      "}",
	_Comma:       ",",

	_If:       "if",
	_Else:     "else",
	_For:      "for",
	_Type:     "type",
	_Fn:       "fn",
	_Include:  "include",
	_Cinclude: "cinclude",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence levels. precNone marks tokens that cannot appear in operator
// position; precStop marks the tokens that end an expression.
const (
	precStop   = -1
	precNone   = 0
	precAssign = 1
)

// Precedence returns the binding strength of t in operator position
// (higher = binds tighter):
//
//	7: ( [
//	6: .
//	5: * / %
//	4: + -
//	3: < > <= >=
//	2: == !=
//	1: =
//
// Terminators (newline, {, ), ], ",", }, EOF) return -1. Every other token
// returns 0.
func (t Token) Precedence() int {
	switch t {
	case _Lparen, _Lbrack:
		return 7
	case _Dot:
		return 6
	case _Mul, _Div, _Rem:
		return 5
	case _Add, _Sub:
		return 4
	case _Lss, _Gtr, _Leq, _Geq:
		return 3
	case _Eql, _Neq:
		return 2
	case _Assign:
		return precAssign
	case _Terminator, _Lbrace, _Rparen, _Rbrack, _Comma, _Rbrace, _EOF:
		return precStop
	}
	return precNone
}

// IsKeyword reports whether t is a reserved word.
func (t Token) IsKeyword() bool {
	return t >= _If && t <= _Cinclude
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsTerminator reports whether t separates statements.
func (t Token) IsTerminator() bool {
	return t == _Terminator
}

// Exported operator tokens for the code generator.
const (
	Assign Token = _Assign
	Eql    Token = _Eql
	Neq    Token = _Neq
	Lss    Token = _Lss
	Leq    Token = _Leq
	Gtr    Token = _Gtr
	Geq    Token = _Geq
	Add    Token = _Add
	Sub    Token = _Sub
	Mul    Token = _Mul
	Div    Token = _Div
	Rem    Token = _Rem
	Dot    Token = _Dot
	Not    Token = _Not
)

// keywords maps reserved words to their token.
// Primitive type names (i64, u8, int, float, ...) are NOT keywords; they scan
// as _Name and are classified by LookupVarType.
var keywords = map[string]Token{
	"if":       _If,
	"else":     _Else,
	"for":      _For,
	"type":     _Type,
	"fn":       _Fn,
	"include":  _Include,
	"cinclude": _Cinclude,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Lexeme is a single scanned token: its kind, its text and where it starts.
// Lexemes are never modified after scanning.
type Lexeme struct {
	Tok  Token
	Text string
	Pos  Pos
}

// Line returns the 1-based line of the lexeme.
func (l Lexeme) Line() uint32 { return l.Pos.Line() }

// Column returns the 1-based column of the lexeme.
func (l Lexeme) Column() uint32 { return l.Pos.Col() }

// String describes the lexeme for diagnostics.
func (l Lexeme) String() string {
	switch l.Tok {
	case _EOF:
		return "EOF"
	case _Terminator:
		if l.Text == ";" {
			return "';'"
		}
		return "newline"
	case _Name, _Int, _Char, _String, _Invalid:
		return fmt.Sprintf("%s %q", l.Tok, l.Text)
	}
	if l.Tok.IsKeyword() {
		return "keyword " + l.Text
	}
	return "'" + l.Text + "'"
}
