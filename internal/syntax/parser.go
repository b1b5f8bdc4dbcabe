package syntax

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Parser performs syntax analysis on Atlas source code.
//
// A Parser owns the complete token slice of one file and a position into it.
// Included files get their own Parser that shares the Context and the
// FunctionTable of the including one.
type Parser struct {
	toks []Lexeme // always ends with EOF
	idx  int

	ctx      *Context
	funcs    *FunctionTable
	filename string
	log      *slog.Logger

	// Include tracking
	active   []string // resolved paths of the files being parsed, outermost first
	includes []string // resolved paths spliced into this file, in order

	lexErr error // first lexical error, reported by Parse
}

// bailout carries the first error up to Parse.
type bailout struct{ err error }

// NewParser creates a Parser for src. The source is tokenized immediately;
// a lexical error is reported by Parse. A nil ctx is an empty Context.
func NewParser(filename string, src io.Reader, ctx *Context) *Parser {
	if ctx == nil {
		ctx = &Context{}
	}
	toks, err := Tokenize(filename, src)
	p := newParser(filename, toks, ctx, NewFunctionTable(), []string{ctx.abs(filename)})
	p.lexErr = err
	return p
}

// ParseFile reads filename through ctx and parses it.
func ParseFile(filename string, ctx *Context) (*File, error) {
	if ctx == nil {
		ctx = &Context{}
	}
	src, err := ctx.readFile(ctx.abs(filename))
	if err != nil {
		return nil, err
	}
	return NewParser(filename, strings.NewReader(src), ctx).Parse()
}

func newParser(filename string, toks []Lexeme, ctx *Context, funcs *FunctionTable, active []string) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Tok != _EOF {
		toks = append(toks, Lexeme{Tok: _EOF, Pos: NewPos(filename, 1, 1)})
	}
	p := &Parser{
		toks:     toks,
		ctx:      ctx,
		funcs:    funcs,
		filename: filename,
		log:      ctx.logger(),
		active:   active,
	}
	p.dumpTokens()
	return p
}

// Parse parses the whole file. On error it returns nil and the first error,
// an *Error; no partial tree is produced.
func (p *Parser) Parse() (f *File, err error) {
	if p.lexErr != nil {
		return nil, p.lexErr
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			f, err = nil, b.err
		}
	}()

	f = &File{Filename: p.filename, Funcs: p.funcs}
	f.pos = p.tok().Pos
	f.Stmts = p.stmtList(_EOF)
	f.Includes = p.includes

	p.log.Debug("parsed file",
		slog.String("file", p.filename),
		slog.Int("stmts", len(f.Stmts)),
		slog.Int("funcs", p.funcs.Len()))
	return f, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// tok returns the current token.
func (p *Parser) tok() Lexeme {
	return p.toks[p.idx]
}

// peek returns the token after the current one, or the EOF sentinel.
func (p *Parser) peek() Lexeme {
	if p.idx+1 < len(p.toks) {
		return p.toks[p.idx+1]
	}
	return p.toks[len(p.toks)-1]
}

// next returns the current token and advances past it. The cursor never
// moves beyond EOF.
func (p *Parser) next() Lexeme {
	t := p.toks[p.idx]
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	return t
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok().Tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes and returns the current token if it is tok.
// Otherwise, it reports a syntax error.
func (p *Parser) want(tok Token) Lexeme {
	t := p.tok()
	if t.Tok != tok {
		p.syntaxError(fmt.Sprintf("expected %s, found %s", tok, t))
	}
	return p.next()
}

// skipTerminators consumes consecutive newlines and semicolons.
func (p *Parser) skipTerminators() {
	for p.tok().Tok == _Terminator {
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token and stops parsing.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.tok().Pos, msg)
}

// syntaxErrorAt reports a syntax error at pos and stops parsing.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.fail(&Error{Kind: SyntaxError, Pos: pos, Msg: msg})
}

// unexpected reports the current token as out of place.
func (p *Parser) unexpected(where string) {
	t := p.tok()
	if t.Tok == _Invalid {
		p.syntaxError(fmt.Sprintf("invalid character %q", t.Text))
	}
	p.syntaxError(fmt.Sprintf("unexpected %s %s", t, where))
}

func (p *Parser) fail(err error) {
	panic(bailout{err})
}

// dumpTokens logs the token slice, one record per token.
func (p *Parser) dumpTokens() {
	if !p.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, t := range p.toks {
		p.log.Debug("token",
			slog.String("pos", t.Pos.String()),
			slog.String("tok", t.String()))
	}
}

// trace logs the production about to be parsed.
func (p *Parser) trace(production string) {
	if !p.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	t := p.tok()
	p.log.Debug(production,
		slog.String("pos", t.Pos.String()),
		slog.String("tok", t.String()))
}
