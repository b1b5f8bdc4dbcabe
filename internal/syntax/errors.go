package syntax

// ErrorKind classifies front-end errors.
type ErrorKind uint8

const (
	LexicalError ErrorKind = iota // bad character stream: unterminated literal, invalid UTF-8
	SyntaxError                   // token stream does not match the grammar
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	}
	return "error"
}

// Error is a positioned front-end error. Parsing stops at the first one.
type Error struct {
	Kind ErrorKind
	Pos  Pos
	Msg  string
	Err  error // underlying cause, e.g. an include that could not be read
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
