package syntax

import (
	"errors"
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers
		{"ident", "foo", []Token{_Name}, []string{"foo"}},
		{"ident_underscore", "_bar", []Token{_Name}, []string{"_bar"}},
		{"ident_mixed", "foo123", []Token{_Name}, []string{"foo123"}},
		{"ident_digit_first", "1st", []Token{_Name}, []string{"1st"}},
		{"type_name", "i64", []Token{_Name}, []string{"i64"}},

		// Integer constants: an all-digit word
		{"int", "123", []Token{_Int}, []string{"123"}},
		{"int_zero", "0", []Token{_Int}, []string{"0"}},

		// Literals are verbatim
		{"string", `"hi there"`, []Token{_String}, []string{"hi there"}},
		{"string_backslash", `"a\nb"`, []Token{_String}, []string{`a\nb`}},
		{"string_empty", `""`, []Token{_String}, []string{""}},
		{"char", "'a'", []Token{_Char}, []string{"a"}},
		{"char_escape", `'\n'`, []Token{_Char}, []string{`\n`}},

		// Keywords
		{"keywords", "if else for type fn include cinclude",
			[]Token{_If, _Else, _For, _Type, _Fn, _Include, _Cinclude},
			[]string{"if", "else", "for", "type", "fn", "include", "cinclude"}},

		// Two-character operators win over their prefix
		{"double_colon", "::", []Token{_DoubleColon}, []string{"::"}},
		{"arrow", "->", []Token{_Arrow}, []string{"->"}},
		{"eql", "==", []Token{_Eql}, []string{"=="}},
		{"neq", "!=", []Token{_Neq}, []string{"!="}},
		{"leq", "<=", []Token{_Leq}, []string{"<="}},
		{"geq", ">=", []Token{_Geq}, []string{">="}},
		{"andand", "&&", []Token{_AndAnd}, []string{"&&"}},
		{"oror", "||", []Token{_OrOr}, []string{"||"}},
		{"dot_brace", ".{", []Token{_DotBrace}, []string{".{"}},

		// One-character fallbacks
		{"assign", "=", []Token{_Assign}, []string{"="}},
		{"not", "!", []Token{_Not}, []string{"!"}},
		{"sub", "-", []Token{_Sub}, []string{"-"}},
		{"lss_gtr", "< >", []Token{_Lss, _Gtr}, []string{"<", ">"}},
		{"dot", "a.b", []Token{_Name, _Dot, _Name}, []string{"a", ".", "b"}},
		{"lone_colon", ":", []Token{_Invalid}, []string{":"}},
		{"lone_amp", "&", []Token{_Invalid}, []string{"&"}},
		{"lone_bar", "|", []Token{_Invalid}, []string{"|"}},
		{"unknown_char", "$", []Token{_Invalid}, []string{"$"}},
		{"triple_colon", ":::", []Token{_DoubleColon, _Invalid}, []string{"::", ":"}},

		// Arithmetic
		{"arith", "a+b*c/d%e", []Token{_Name, _Add, _Name, _Mul, _Name, _Div, _Name, _Rem, _Name},
			[]string{"a", "+", "b", "*", "c", "/", "d", "%", "e"}},

		// Delimiters
		{"delims", "()[]{},", []Token{_Lparen, _Rparen, _Lbrack, _Rbrack, _Lbrace, _Rbrace, _Comma},
			[]string{"(", ")", "[", "]", "{", "}", ","}},

		// Terminators
		{"newline", "a\nb", []Token{_Name, _Terminator, _Name}, []string{"a", "\n", "b"}},
		{"semicolon", "a;b", []Token{_Name, _Terminator, _Name}, []string{"a", ";", "b"}},
		{"crlf", "a\r\nb", []Token{_Name, _Terminator, _Name}, []string{"a", "\n", "b"}},
		{"blank_lines", "\n\n", []Token{_Terminator, _Terminator}, []string{"\n", "\n"}},

		// Comments run to end of line; the newline is kept
		{"comment", "a // note\nb", []Token{_Name, _Terminator, _Name}, []string{"a", "\n", "b"}},
		{"comment_eof", "// only", nil, nil},

		// Whitespace
		{"spaces", "  a \t b  ", []Token{_Name, _Name}, []string{"a", "b"}},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize("test.atl", strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			want := append(tt.tokens, _EOF)
			if len(toks) != len(want) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(want))
			}
			for i, w := range want {
				if toks[i].Tok != w {
					t.Errorf("token %d: got %v, want %v", i, toks[i].Tok, w)
				}
				if i < len(tt.lits) && toks[i].Text != tt.lits[i] {
					t.Errorf("token %d: text %q, want %q", i, toks[i].Text, tt.lits[i])
				}
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := `main fn() {
    ::x i64 = 123
}`

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Name, 1, 1},        // main
		{_Fn, 1, 6},          // fn
		{_Lparen, 1, 8},      // (
		{_Rparen, 1, 9},      // )
		{_Lbrace, 1, 11},     // {
		{_Terminator, 1, 12}, // newline
		{_DoubleColon, 2, 5}, // ::
		{_Name, 2, 7},        // x
		{_Name, 2, 9},        // i64
		{_Assign, 2, 13},     // =
		{_Int, 2, 15},        // 123
		{_Terminator, 2, 18}, // newline
		{_Rbrace, 3, 1},      // }
		{_EOF, 3, 2},
	}

	s := NewScanner("test.atl", strings.NewReader(src), nil)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
		wantPos string
	}{
		{"unterminated_string", `::s u8 = "hello`, "string literal not terminated", "test.atl:1:10"},
		{"string_at_newline", "\"ab\ncd\"", "string literal not terminated", "test.atl:1:1"},
		{"unterminated_char", "'a", "character literal not terminated", "test.atl:1:1"},
		{"char_at_newline", "x = '\n'", "character literal not terminated", "test.atl:1:5"},
		{"invalid_utf8", "a\xffb", "invalid UTF-8 encoding", "test.atl:1:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize("test.atl", strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("expected error containing %q, got no error", tt.wantErr)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}
			if e.Kind != LexicalError {
				t.Errorf("kind = %v, want %v", e.Kind, LexicalError)
			}
			if !strings.Contains(e.Msg, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, e.Msg)
			}
			if e.Pos.String() != tt.wantPos {
				t.Errorf("error pos = %v, want %s", e.Pos, tt.wantPos)
			}
			if n := len(toks); n == 0 || toks[n-1].Tok != _EOF {
				t.Errorf("token slice does not end with EOF: %v", toks)
			}
		})
	}
}

func TestScanInvalidCharacterIsNotLexicalError(t *testing.T) {
	toks, err := Tokenize("test.atl", strings.NewReader("a @ b"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[1].Tok != _Invalid || toks[1].Text != "@" {
		t.Errorf("token 1 = %v, want invalid token \"@\"", toks[1])
	}
}

// Tokenizing two programs back to back gives the tokens of the first
// followed by the tokens of the second.
func TestTokenizeConcatenation(t *testing.T) {
	programs := []string{
		"main fn() {\n    -> 0\n}\n",
		"cinclude \"stdio.h\"\n::x i64 = 1 + 2 * 3\n",
		"Point type {\n    x i64\n    y i64\n}\n",
		"for i64::i = 0; i < 10; i = i + 1 {\n    printf(\"%d\", i)\n}\n",
		"::s [4] u8 = [1, 2, 3, 4]; ::c u8 = 'c'\n",
		"",
	}

	kinds := func(src string) []Lexeme {
		toks, err := Tokenize("test.atl", strings.NewReader(src))
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", src, err)
		}
		return toks
	}
	same := func(a, b Lexeme) bool {
		return a.Tok == b.Tok && a.Text == b.Text
	}

	for _, a := range programs {
		for _, b := range programs {
			ta, tb := kinds(a), kinds(b)
			want := append(ta[:len(ta)-1:len(ta)-1], tb...)
			got := kinds(a + b)

			if len(got) != len(want) {
				t.Errorf("%q + %q: got %d tokens, want %d", a, b, len(got), len(want))
				continue
			}
			for i := range got {
				if !same(got[i], want[i]) {
					t.Errorf("%q + %q: token %d = %v, want %v", a, b, i, got[i], want[i])
					break
				}
			}
		}
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `cinclude "stdio.h"

Point type {
    x i64
    y i64
}

add fn(a i64, b i64) -> i64 {
    -> a + b
}

main fn() -> i32 {
    static ::count i64 = 0
    ::p Point = .{1, 2}
    for i64::i = 0; i < 10; i = i + 1 {
        count = add(count, i)
    }
    if count != 45 {
        -> 1
    } else {
        -> 0
    }
}
`

	toks, err := Tokenize("test.atl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) < 100 {
		t.Errorf("expected at least 100 tokens, got %d", len(toks))
	}
	for _, tok := range toks {
		if tok.Tok == _Invalid {
			t.Errorf("unexpected %v at %v", tok, tok.Pos)
		}
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"main fn() { -> 0 }",
		`::s u8 = "hello"`,
		"for i64::i = 0; i < 10; i = i + 1 {}",
		"::x i64 = .{1, 2}",
		"'a' '\\n' \"unterminated",
		"a && b || !c",
		"// comment\nfoo",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		toks, _ := Tokenize("fuzz", strings.NewReader(src))
		if n := len(toks); n == 0 || toks[n-1].Tok != _EOF {
			t.Fatalf("token slice does not end with EOF")
		}
		for _, tok := range toks[:len(toks)-1] {
			if tok.Tok == _EOF {
				t.Fatalf("EOF before the end of the token slice")
			}
		}
	})
}
