package syntax

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// stmtList parses statements up to end, which is not consumed. Include
// directives are replaced by the statements of the file they name.
func (p *Parser) stmtList(end Token) []Stmt {
	var list []Stmt
	for {
		p.skipTerminators()
		if t := p.tok().Tok; t == end || t == _EOF {
			return list
		}
		if p.tok().Tok == _Include {
			list = append(list, p.include()...)
		} else {
			list = append(list, p.stmt())
		}
		p.endStmt()
	}
}

// endStmt checks that a statement is followed by a newline, ';', '}' or EOF.
func (p *Parser) endStmt() {
	switch p.tok().Tok {
	case _Terminator, _Rbrace, _EOF:
		return
	}
	p.unexpected("at end of statement")
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	p.trace("stmt")

	switch p.tok().Tok {
	case _DoubleColon:
		return p.varDecl()

	case _Name:
		switch p.peek().Tok {
		case _Fn:
			return p.funcDecl()
		case _Type:
			return p.typeDecl()
		}
		if p.declAhead() {
			return p.varDecl()
		}
		if p.funcAhead() {
			return p.funcDecl()
		}
		return p.exprStmt()

	case _Fn:
		return p.funcDecl()

	case _Type:
		return p.typeDecl()

	case _If:
		return p.ifStmt()

	case _For:
		return p.forStmt()

	case _Arrow:
		return p.returnStmt()

	case _Cinclude:
		return p.cincludeDecl()

	case _Lbrace:
		return p.blockStmt()

	case _Rbrace:
		p.unexpected("outside a block")
	}

	return p.exprStmt()
}

// simpleStmt parses the init clause of a loop: a declaration or an
// expression.
func (p *Parser) simpleStmt() Stmt {
	switch p.tok().Tok {
	case _DoubleColon:
		return p.varDecl()
	case _Name:
		if p.declAhead() {
			return p.varDecl()
		}
	}
	return p.exprStmt()
}

// declAhead reports whether a '::' occurs before the end of the current
// statement, which makes the statement a variable declaration.
func (p *Parser) declAhead() bool {
	for _, t := range p.toks[p.idx:] {
		switch t.Tok {
		case _DoubleColon:
			return true
		case _Terminator, _Lbrace, _Rbrace, _EOF:
			return false
		}
	}
	return false
}

// funcAhead reports whether the current name and the parenthesized list
// after it are followed by '->' or '{', that is, whether they form a
// function header written without fn.
func (p *Parser) funcAhead() bool {
	if p.peek().Tok != _Lparen {
		return false
	}
	depth := 0
	for i := p.idx + 1; i < len(p.toks); i++ {
		switch p.toks[i].Tok {
		case _Lparen:
			depth++
		case _Rparen:
			depth--
			if depth == 0 {
				next := p.toks[i+1].Tok // EOF follows every ')'
				return next == _Arrow || next == _Lbrace
			}
		case _Terminator, _Lbrace, _Rbrace, _EOF:
			return false
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// Declarations

// varDecl parses a variable declaration, written in either order:
//
//	[attr ,]* Type annot ::name = value
//	[attr ,]* ::name annot Type = value
//
// annot is an optional [size], [] or run of '*'. The attributes are static
// and const.
func (p *Parser) varDecl() *VarDecl {
	p.trace("varDecl")
	d := &VarDecl{}
	d.pos = p.tok().Pos

	var words []Lexeme
	comma := false // the last word was followed by ','
	for p.tok().Tok == _Name {
		words = append(words, p.next())
		comma = p.got(_Comma)
	}

	v := &Variable{}
	annotated := p.annotations(&v.TypeSpec)
	p.want(_DoubleColon)
	name := p.want(_Name)
	v.Name = name.Text
	v.pos = name.Pos

	attrs := words
	typeFirst := annotated || p.tok().Tok == _Assign
	if typeFirst {
		// The type was written before the name. A word followed by ','
		// or spelled like an attribute cannot be it.
		if n := len(words); n > 0 && !comma && !isAttribute(words[n-1].Text) {
			attrs = words[:n-1]
			v.setType(words[n-1].Text)
		}
	} else {
		p.annotations(&v.TypeSpec)
		v.setType(p.want(_Name).Text)
	}

	for _, a := range attrs {
		switch a.Text {
		case "static":
			d.Static = true
		case "const":
			d.Const = true
		default:
			p.syntaxErrorAt(a.Pos, fmt.Sprintf("invalid attribute %s", a.Text))
		}
	}
	if v.TypeName == "" {
		p.syntaxErrorAt(name.Pos, fmt.Sprintf("missing type for %s", name.Text))
	}

	d.LHS = v
	p.want(_Assign)
	d.Value = p.expr(ExprContext{})
	return d
}

func isAttribute(word string) bool {
	return word == "static" || word == "const"
}

// annotations parses an optional array or pointer annotation into ts and
// reports whether one was present.
func (p *Parser) annotations(ts *TypeSpec) bool {
	switch p.tok().Tok {
	case _Lbrack:
		p.next()
		ts.IsArray = true
		if p.tok().Tok != _Rbrack {
			ts.ArraySize = p.expr(ExprContext{InArray: true})
		}
		p.want(_Rbrack)
		return true

	case _Mul:
		for p.got(_Mul) {
			ts.PtrDepth++
		}
		return true
	}
	return false
}

// funcDecl parses a function definition or prototype:
//
//	name fn (params) [-> Type] { body }
//	fn name(params) [-> Type] { body }
//	name(params) [-> Type] { body }
//
// A header not followed by '{' is a prototype.
func (p *Parser) funcDecl() *FuncDecl {
	p.trace("funcDecl")
	d := &FuncDecl{}

	var name Lexeme
	if p.got(_Fn) {
		name = p.want(_Name)
	} else {
		name = p.want(_Name)
		p.got(_Fn)
	}
	d.pos = name.Pos
	d.Name = name.Text

	d.Params = p.paramList()

	d.ResultType = TypeUnknown
	if p.got(_Arrow) {
		d.Result = p.want(_Name).Text
		d.ResultType = LookupVarType(d.Result)
	}
	d.MangledName = MangleName(d.Name, d.Result)
	p.funcs.Add(d)

	if p.tok().Tok == _Lbrace {
		d.Body = p.blockStmt()
	} else {
		d.Prototype = true
	}
	return d
}

// paramList parses (p1, p2, ...).
func (p *Parser) paramList() []*Param {
	p.want(_Lparen)

	var params []*Param
	if p.got(_Rparen) {
		return params
	}
	for {
		params = append(params, p.param())
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_Rparen)
	return params
}

// param parses one parameter: name annot Type or Type annot ::name.
func (p *Parser) param() *Param {
	first := p.want(_Name)
	prm := &Param{}
	p.annotations(&prm.TypeSpec)

	if p.got(_DoubleColon) {
		name := p.want(_Name)
		prm.pos = name.Pos
		prm.Name = name.Text
		prm.setType(first.Text)
		return prm
	}

	prm.pos = first.Pos
	prm.Name = first.Text
	prm.setType(p.want(_Name).Text)
	return prm
}

// typeDecl parses a struct type:
//
//	Name type { fields }
//	type Name { fields }
func (p *Parser) typeDecl() *TypeDecl {
	p.trace("typeDecl")
	d := &TypeDecl{}

	var name Lexeme
	if p.got(_Type) {
		name = p.want(_Name)
	} else {
		name = p.want(_Name)
		p.want(_Type)
	}
	d.pos = name.Pos
	d.Name = name.Text

	p.want(_Lbrace)
	for {
		p.skipTerminators()
		if p.got(_Rbrace) {
			break
		}
		d.Fields = append(d.Fields, p.fieldDecl())
		if p.tok().Tok != _Rbrace {
			p.want(_Terminator)
		}
	}
	return d
}

// fieldDecl parses a struct field as a declaration without a value. Fields
// are written name [::] annot Type, or Type annot ::name when the type is
// a primitive or carries an annotation.
func (p *Parser) fieldDecl() *VarDecl {
	first := p.want(_Name)
	v := &Variable{}

	name, typ := first, Lexeme{}
	switch {
	case p.annotations(&v.TypeSpec):
		if p.got(_DoubleColon) {
			// u8 [4]::buf
			name, typ = p.want(_Name), first
		} else {
			typ = p.want(_Name)
		}
	case p.got(_DoubleColon):
		p.annotations(&v.TypeSpec)
		typ = p.want(_Name)
		if LookupVarType(first.Text).IsPrimitive() && !LookupVarType(typ.Text).IsPrimitive() {
			// i64::x
			name, typ = typ, first
		}
	default:
		typ = p.want(_Name)
	}

	if LookupVarType(name.Text).IsPrimitive() {
		p.syntaxErrorAt(name.Pos, fmt.Sprintf("type %s used as a field name", name.Text))
	}
	v.Name = name.Text
	v.pos = name.Pos
	v.setType(typ.Text)

	d := &VarDecl{LHS: v}
	d.pos = first.Pos
	return d
}

// cincludeDecl parses cinclude "header".
func (p *Parser) cincludeDecl() *CincludeDecl {
	d := &CincludeDecl{}
	d.pos = p.want(_Cinclude).Pos
	d.Path = p.want(_String).Text
	return d
}

// ----------------------------------------------------------------------------
// Statements

// blockStmt parses { stmts... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.want(_Lbrace).Pos
	b.Stmts = p.stmtList(_Rbrace)
	b.Rbrace = p.want(_Rbrace).Pos
	return b
}

// ifStmt parses: if cond { then } [else if ... | else { else }]
func (p *Parser) ifStmt() *IfStmt {
	p.trace("ifStmt")
	s := &IfStmt{}
	s.pos = p.want(_If).Pos

	if p.tok().Tok == _Lbrace {
		p.syntaxError("missing condition in if statement")
	}
	s.Cond = p.expr(ExprContext{InCondition: true})
	s.Then = p.blockStmt()

	if p.got(_Else) {
		switch p.tok().Tok {
		case _If:
			s.Else = p.ifStmt()
		case _Lbrace:
			s.Else = p.blockStmt()
		default:
			p.syntaxError(fmt.Sprintf("expected if or '{' after else, found %s", p.tok()))
		}
	}
	return s
}

// forStmt parses a loop. The shape is decided by the number of terminators
// between for and the next '{'. Two or more make a three-clause loop
//
//	for init; cond; post { body }
//
// where every clause may be empty; fewer make a condition loop
//
//	for cond { body }
func (p *Parser) forStmt() *ForStmt {
	p.trace("forStmt")
	s := &ForStmt{}
	s.pos = p.want(_For).Pos

	if p.terminatorsBeforeBody() >= 2 {
		s.Kind = ForThreeClause
		if p.tok().Tok != _Terminator {
			s.Init = p.simpleStmt()
			if d, ok := s.Init.(*VarDecl); ok {
				d.LHS.IsArray = false
			}
		}
		p.want(_Terminator)
		if p.tok().Tok != _Terminator {
			s.Cond = p.expr(ExprContext{})
		}
		p.want(_Terminator)
		if p.tok().Tok != _Lbrace {
			s.Post = p.expr(ExprContext{InCondition: true})
		}
	} else {
		if p.tok().Tok == _Lbrace {
			p.syntaxError("missing condition in for statement")
		}
		s.Cond = p.expr(ExprContext{InCondition: true})
	}

	s.Body = p.blockStmt()
	return s
}

// terminatorsBeforeBody counts the terminators from the current token up to
// the next '{'.
func (p *Parser) terminatorsBeforeBody() int {
	n := 0
	for _, t := range p.toks[p.idx:] {
		switch t.Tok {
		case _Lbrace, _EOF:
			return n
		case _Terminator:
			n++
		}
	}
	return n
}

// returnStmt parses: -> [expr]
func (p *Parser) returnStmt() *ReturnStmt {
	s := &ReturnStmt{}
	s.pos = p.want(_Arrow).Pos

	switch p.tok().Tok {
	case _Terminator, _Rbrace, _EOF:
	default:
		s.Result = p.expr(ExprContext{})
	}
	return s
}

// exprStmt parses an expression used as a statement.
func (p *Parser) exprStmt() *ExprStmt {
	s := &ExprStmt{}
	s.pos = p.tok().Pos
	s.X = p.expr(ExprContext{})
	return s
}

// ----------------------------------------------------------------------------
// Includes

// include parses an include directive and returns the statements of the
// named file. The file is tokenized on its own and parsed by a child parser
// that shares the context and the function table.
func (p *Parser) include() []Stmt {
	pos := p.want(_Include).Pos
	t := p.tok()
	if t.Tok != _String && t.Tok != _Name {
		p.syntaxError(fmt.Sprintf("expected include file name, found %s", t))
	}
	p.next()

	current := p.active[len(p.active)-1]
	path := p.ctx.resolve(current, t.Text)
	active := append(p.active[:len(p.active):len(p.active)], path)
	if slices.Contains(p.active, path) {
		p.syntaxErrorAt(pos, "include cycle: "+strings.Join(active, " -> "))
	}

	p.log.Debug("include",
		slog.String("file", path),
		slog.String("from", current))

	src, err := p.ctx.readFile(path)
	if err != nil {
		p.fail(&Error{Kind: SyntaxError, Pos: pos, Msg: err.Error(), Err: err})
	}
	toks, err := Tokenize(path, strings.NewReader(src))
	if err != nil {
		p.fail(err)
	}

	child := newParser(path, toks, p.ctx, p.funcs, active)
	stmts := child.stmtList(_EOF)

	p.includes = append(p.includes, path)
	p.includes = append(p.includes, child.includes...)
	return stmts
}
