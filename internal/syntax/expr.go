package syntax

import (
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// ExprContext tells the expression parser where an expression sits and so
// which tokens may end it. The flags are independent; with several set, any
// of their end tokens is accepted. With none set, the expression must end
// the statement (newline, ';', '}' or EOF).
type ExprContext struct {
	InCallArgs  bool // one call argument: ends at ')' or ','
	InCondition bool // if/for test: ends before '{', which is left for the body
	InArray     bool // one element of [...], a subscript or .{...}
}

func (c ExprContext) ends(tok Token) bool {
	if !c.InCallArgs && !c.InCondition && !c.InArray {
		return tok == _Terminator || tok == _Rbrace || tok == _EOF
	}
	switch {
	case c.InCallArgs && (tok == _Rparen || tok == _Comma):
		return true
	case c.InCondition && tok == _Lbrace:
		return true
	case c.InArray && (tok == _Rbrack || tok == _Comma || tok == _Rbrace || tok == _Terminator):
		return true
	}
	return false
}

func (c ExprContext) String() string {
	switch {
	case c.InCallArgs:
		return "in argument list"
	case c.InCondition:
		return "in condition"
	case c.InArray:
		return "in element list"
	}
	return "after expression"
}

// expr parses a complete expression and checks that it ends where ctx allows.
// The end token is not consumed.
func (p *Parser) expr(ctx ExprContext) Expr {
	x := p.binaryExpr(precAssign)
	if !ctx.ends(p.tok().Tok) {
		p.unexpected(ctx.String())
	}
	return x
}

// binaryExpr parses a binary expression whose operators bind at least as
// tightly as prec. Operators are left-associative except '=', which is
// right-associative and takes a full expression on its right.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		t := p.tok()
		oprec := t.Tok.Precedence()
		switch {
		case oprec == precStop:
			return x
		case oprec == precNone:
			if t.Tok == _Invalid {
				p.unexpected("")
			}
			p.syntaxError(fmt.Sprintf("unrecognized operator %s", t))
		case t.Tok == _Lparen || t.Tok == _Lbrack:
			// calls and subscripts are taken by primaryExpr; anything
			// left over follows a non-callable operand
			p.unexpected("after operand")
		}
		if oprec < prec {
			return x
		}
		p.next() // operator

		if t.Tok == _Assign {
			a := &AssignExpr{Target: x}
			a.pos = t.Pos
			a.Value = p.binaryExpr(precAssign)
			x = a
			continue
		}

		op := &BinaryExpr{Op: t.Tok, X: x}
		op.pos = t.Pos
		op.Y = p.binaryExpr(oprec + 1)
		x = op
	}
}

// unaryExpr parses the prefix operators !, * (dereference) and - (negation).
// They bind tighter than every binary operator and looser than subscripts.
func (p *Parser) unaryExpr() Expr {
	switch t := p.tok(); t.Tok {
	case _Not, _Mul, _Sub:
		p.next()
		u := &UnaryExpr{Op: t.Tok}
		u.pos = t.Pos
		u.X = p.unaryExpr()
		return u
	}
	return p.primaryExpr()
}

// primaryExpr parses an operand followed by any number of subscripts.
func (p *Parser) primaryExpr() Expr {
	x := p.operand()

	for p.tok().Tok == _Lbrack {
		s := &SubscriptExpr{X: x}
		s.pos = p.next().Pos
		s.Indexes = p.list(_Rbrack, ExprContext{InArray: true})
		x = s
	}
	return x
}

// operand parses a single operand.
func (p *Parser) operand() Expr {
	t := p.tok()
	switch t.Tok {
	case _Name:
		if p.peek().Tok == _Lparen {
			return p.callExpr()
		}
		p.next()
		v := &Variable{Name: t.Text}
		v.pos = t.Pos
		v.Type = TypeUnknown
		return v

	case _Int:
		p.next()
		val, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			p.syntaxErrorAt(t.Pos, fmt.Sprintf("integer constant %s out of range", t.Text))
		}
		c := &Constant{Text: t.Text, Value: val}
		c.pos = t.Pos
		return c

	case _String:
		p.next()
		s := &StringLit{Value: t.Text}
		s.pos = t.Pos
		return s

	case _Char:
		p.next()
		switch utf8.RuneCountInString(t.Text) {
		case 0:
			p.syntaxErrorAt(t.Pos, "empty character literal")
		case 1:
		default:
			p.log.Warn("character literal has more than one character",
				slog.String("pos", t.Pos.String()),
				slog.String("text", t.Text))
		}
		c := &CharLit{Value: t.Text}
		c.pos = t.Pos
		return c

	case _Lbrack:
		p.next()
		a := &ArrayLit{}
		a.pos = t.Pos
		a.Elems = p.list(_Rbrack, ExprContext{InArray: true})
		return a

	case _DotBrace:
		p.next()
		ti := &TypeInstExpr{}
		ti.pos = t.Pos
		ti.Values = p.list(_Rbrace, ExprContext{InArray: true})
		return ti

	case _Lparen:
		p.next()
		x := p.expr(ExprContext{InCallArgs: true})
		p.want(_Rparen)
		x.setParen()
		return x
	}

	p.unexpected("where an operand is required")
	return nil
}

// callExpr parses name(args...).
func (p *Parser) callExpr() *CallExpr {
	name := p.want(_Name)
	p.want(_Lparen)
	c := &CallExpr{Name: name.Text}
	c.pos = name.Pos
	c.Args = p.list(_Rparen, ExprContext{InCallArgs: true})
	return c
}

// list parses a comma-separated expression list up to and including end.
// The opening token has already been consumed. Element lists ('[' and '.{')
// may span lines and end with a trailing ','; argument lists may not.
func (p *Parser) list(end Token, ctx ExprContext) []Expr {
	multiline := ctx.InArray
	skip := func() {
		if multiline {
			p.skipTerminators()
		}
	}

	var list []Expr
	skip()
	for !p.got(end) {
		list = append(list, p.expr(ctx))
		skip()
		if !p.got(_Comma) {
			p.want(end)
			break
		}
		skip()
		// every ',' in an argument list is followed by an argument
		if ctx.InCallArgs && p.tok().Tok == end {
			p.unexpected("after ',' in argument list")
		}
	}
	return list
}
