package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labelled child at one extra level of indentation.
func (p *printer) section(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name)
		p.printf("Mangled: %s\n", n.MangledName)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, prm := range n.Params {
				p.printf("%s %s\n", prm.Name, typeString(&prm.TypeSpec))
			}
			p.indent--
		}
		if n.Result != "" {
			p.printf("Result: %s\n", n.Result)
		}
		if n.Prototype {
			p.printf("Prototype: true\n")
		} else {
			p.section("Body", n.Body)
		}
		p.indent--

	case *Param:
		p.printf("Param %s %s %s\n", n.pos, n.Name, typeString(&n.TypeSpec))

	case *TypeDecl:
		p.printf("TypeDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name)
		for _, f := range n.Fields {
			p.printf("Field: %s %s\n", f.LHS.Name, typeString(&f.LHS.TypeSpec))
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s\n", n.pos)
		p.indent++
		if n.Static {
			p.printf("Static: true\n")
		}
		if n.Const {
			p.printf("Const: true\n")
		}
		p.printf("Name: %s\n", n.LHS.Name)
		p.printf("Type: %s\n", typeString(&n.LHS.TypeSpec))
		if n.Value != nil {
			p.section("Value", n.Value)
		}
		p.indent--

	case *CincludeDecl:
		p.printf("CincludeDecl %s %q\n", n.pos, n.Path)

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s %s\n", n.pos, n.Kind)
		p.indent++
		if n.Init != nil {
			p.section("Init", n.Init)
		}
		if n.Cond != nil {
			p.section("Cond", n.Cond)
		}
		if n.Post != nil {
			p.section("Post", n.Post)
		}
		p.section("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Variable:
		p.printf("Variable %s %s%s\n", n.pos, n.Name, parenMark(n))

	case *Constant:
		p.printf("Constant %s %d%s\n", n.pos, n.Value, parenMark(n))

	case *CharLit:
		p.printf("CharLit %s '%s'%s\n", n.pos, n.Value, parenMark(n))

	case *StringLit:
		p.printf("StringLit %s %q%s\n", n.pos, n.Value, parenMark(n))

	case *CallExpr:
		p.printf("CallExpr %s %s%s\n", n.pos, n.Name, parenMark(n))
		p.printList("Args", n.Args)

	case *AssignExpr:
		p.printf("AssignExpr %s%s\n", n.pos, parenMark(n))
		p.indent++
		p.section("Target", n.Target)
		p.section("Value", n.Value)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s%s\n", n.pos, n.Op, parenMark(n))
		p.indent++
		p.section("X", n.X)
		p.section("Y", n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s%s\n", n.pos, n.Op, parenMark(n))
		p.indent++
		p.print(n.X)
		p.indent--

	case *ArrayLit:
		p.printf("ArrayLit %s%s\n", n.pos, parenMark(n))
		p.printList("Elems", n.Elems)

	case *SubscriptExpr:
		p.printf("SubscriptExpr %s%s\n", n.pos, parenMark(n))
		p.indent++
		p.section("X", n.X)
		p.indent--
		p.printList("Indexes", n.Indexes)

	case *TypeInstExpr:
		p.printf("TypeInstExpr %s%s\n", n.pos, parenMark(n))
		p.printList("Values", n.Values)

	default:
		p.printf("<%T>\n", node)
	}
}

// FprintFuncs writes one line per function in t, in declaration order:
//
//	Z_3addx add(a i64, b i64) -> i64
//	Z_4putsi puts(s *u8) -> i32 (prototype)
func FprintFuncs(w io.Writer, t *FunctionTable) {
	for _, fn := range t.Funcs() {
		params := make([]string, len(fn.Params))
		for i, prm := range fn.Params {
			params[i] = prm.Name + " " + typeString(&prm.TypeSpec)
		}
		line := fmt.Sprintf("%s %s(%s)", fn.MangledName, fn.Name, strings.Join(params, ", "))
		if fn.Result != "" {
			line += " -> " + fn.Result
		}
		if fn.Prototype {
			line += " (prototype)"
		}
		fmt.Fprintln(w, line)
	}
}

// printList prints a labelled expression list one level in. Empty lists are
// omitted.
func (p *printer) printList(label string, list []Expr) {
	if len(list) == 0 {
		return
	}
	p.indent++
	p.printf("%s:\n", label)
	p.indent++
	for _, x := range list {
		p.print(x)
	}
	p.indent -= 2
}

func parenMark(x Expr) string {
	if x.Parenthesized() {
		return " (paren)"
	}
	return ""
}

// typeString returns the written form of a declared type: its name with a
// leading [size] or '*' run.
func typeString(t *TypeSpec) string {
	var b strings.Builder
	switch {
	case t.IsArray:
		b.WriteString("[" + ExprString(t.ArraySize) + "]")
	case t.PtrDepth > 0:
		b.WriteString(strings.Repeat("*", t.PtrDepth))
	}
	b.WriteString(t.TypeName)
	return b.String()
}

// ExprString returns a compact, fully parenthesized rendering of x, e.g.
// (1 + (2 * 3)). A nil expression renders as the empty string.
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
	case *Variable:
		b.WriteString(x.Name)
	case *Constant:
		b.WriteString(x.Text)
	case *CharLit:
		b.WriteString("'" + x.Value + "'")
	case *StringLit:
		b.WriteString(`"` + x.Value + `"`)
	case *CallExpr:
		b.WriteString(x.Name)
		writeList(b, "(", x.Args, ")")
	case *AssignExpr:
		b.WriteString("(")
		writeExpr(b, x.Target)
		b.WriteString(" = ")
		writeExpr(b, x.Value)
		b.WriteString(")")
	case *BinaryExpr:
		b.WriteString("(")
		writeExpr(b, x.X)
		if x.Op == _Dot {
			b.WriteString(".")
		} else {
			b.WriteString(" " + x.Op.String() + " ")
		}
		writeExpr(b, x.Y)
		b.WriteString(")")
	case *UnaryExpr:
		b.WriteString("(" + x.Op.String())
		writeExpr(b, x.X)
		b.WriteString(")")
	case *ArrayLit:
		writeList(b, "[", x.Elems, "]")
	case *SubscriptExpr:
		writeExpr(b, x.X)
		writeList(b, "[", x.Indexes, "]")
	case *TypeInstExpr:
		writeList(b, ".{", x.Values, "}")
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}

func writeList(b *strings.Builder, open string, list []Expr, close string) {
	b.WriteString(open)
	for i, x := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, x)
	}
	b.WriteString(close)
}
