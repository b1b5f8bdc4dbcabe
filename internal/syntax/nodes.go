package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes are Expressions or Statements. Declarations (functions, types,
// variables, cinclude) are statements too: they may appear in any statement
// list, including a function body.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the token that defines the node
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	// Parenthesized reports whether the expression was written inside
	// parentheses, so it can be re-emitted the same way.
	Parenthesized() bool
	setParen()
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for declaration statements.
type Decl interface {
	Stmt
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct {
	node
	paren bool
}

func (x *expr) Parenthesized() bool { return x.paren }
func (x *expr) setParen()           { x.paren = true }
func (*expr) aExpr()                {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ stmt }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Types

// VarType is the semantic type recorded for a declared name.
type VarType uint8

const (
	TypeI8 VarType = iota
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeF32
	TypeF64
	TypeUnknown // no type written (variable references)
	TypeInvalid // written type is not a primitive; left for the generator to judge
)

var varTypeNames = [...]string{
	TypeI8:      "i8",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeU8:      "u8",
	TypeU16:     "u16",
	TypeU32:     "u32",
	TypeU64:     "u64",
	TypeF32:     "f32",
	TypeF64:     "f64",
	TypeUnknown: "unknown",
	TypeInvalid: "invalid",
}

func (t VarType) String() string {
	if int(t) < len(varTypeNames) {
		return varTypeNames[t]
	}
	return "invalid"
}

// IsPrimitive reports whether t names one of the built-in numeric types.
func (t VarType) IsPrimitive() bool {
	return t <= TypeF64
}

var primitiveTypes = map[string]VarType{
	"i8":    TypeI8,
	"i16":   TypeI16,
	"i32":   TypeI32,
	"i64":   TypeI64,
	"u8":    TypeU8,
	"u16":   TypeU16,
	"u32":   TypeU32,
	"u64":   TypeU64,
	"f32":   TypeF32,
	"f64":   TypeF64,
	"int":   TypeI64,
	"float": TypeF64,
}

// LookupVarType classifies a written type name. Unrecognized names yield
// TypeInvalid.
func LookupVarType(name string) VarType {
	if t, ok := primitiveTypes[name]; ok {
		return t
	}
	return TypeInvalid
}

// TypeSpec describes the declared type of a variable, parameter or field.
type TypeSpec struct {
	TypeName  string  // type as written ("" for references)
	Type      VarType // semantic type derived from TypeName
	PtrDepth  int     // number of '*' annotations
	IsArray   bool    // declared with [size]
	ArraySize Expr    // size expression (nil for [] or non-arrays)
}

func (t *TypeSpec) setType(name string) {
	t.TypeName = name
	t.Type = LookupVarType(name)
}

// ----------------------------------------------------------------------------
// Files and Declarations

// File is the result of parsing one source file.
type File struct {
	node
	Filename string
	Stmts    []Stmt         // top-level statements, includes already spliced
	Funcs    *FunctionTable // every function declared, in declaration order
	Includes []string       // resolved paths of all spliced files
}

// Decls returns the top-level declarations of f in source order.
func (f *File) Decls() []Decl {
	var decls []Decl
	for _, s := range f.Stmts {
		if d, ok := s.(Decl); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// FuncDecl represents a function definition or prototype.
//
//	name fn (params) -> Result { Body }
type FuncDecl struct {
	decl
	Name        string
	Params      []*Param
	Result      string     // return type name ("" for void)
	ResultType  VarType    // TypeUnknown for void
	Body        *BlockStmt // nil for prototypes
	Prototype   bool
	MangledName string
}

// Param represents one function parameter.
type Param struct {
	node
	Name string
	TypeSpec
}

// TypeDecl represents a struct type: Name type { fields }.
type TypeDecl struct {
	decl
	Name   string
	Fields []*VarDecl // Value is always nil
}

// VarDecl represents a variable declaration or a struct field.
type VarDecl struct {
	decl
	Static bool
	Const  bool
	LHS    *Variable
	Value  Expr // nil only for struct fields
}

// CincludeDecl passes a C header through to the generated program.
type CincludeDecl struct {
	decl
	Path string
}

// ----------------------------------------------------------------------------
// Expressions

// Variable is a named value. In a declaration it carries the declared type;
// as a reference its Type is TypeUnknown.
type Variable struct {
	expr
	Name string
	TypeSpec
}

// Constant represents an integer constant.
type Constant struct {
	expr
	Text  string
	Value int64
}

// CharLit represents a character literal. Value is the verbatim text between
// the quotes.
type CharLit struct {
	expr
	Value string
}

// StringLit represents a string literal. Value is the verbatim text between
// the quotes.
type StringLit struct {
	expr
	Value string
}

// CallExpr represents a call: Name(Args...).
type CallExpr struct {
	expr
	Name string
	Args []Expr
}

// AssignExpr represents Target = Value. Assignment is right-associative.
type AssignExpr struct {
	expr
	Target Expr
	Value  Expr
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr represents Op X for the prefix operators !, * and -.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// ArrayLit represents [e1, e2, ...].
type ArrayLit struct {
	expr
	Elems []Expr
}

// SubscriptExpr represents X[i1, i2, ...].
type SubscriptExpr struct {
	expr
	X       Expr
	Indexes []Expr
}

// TypeInstExpr represents a type instantiation: .{v1, v2, ...}.
type TypeInstExpr struct {
	expr
	Values []Expr
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// BlockStmt represents { Stmts... }.
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos
}

// IfStmt represents if Cond Then [else Else].
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else Stmt // nil, *IfStmt (else if) or *BlockStmt
}

// ForKind tells the two loop shapes apart.
type ForKind uint8

const (
	ForCondition   ForKind = iota // for Cond { }
	ForThreeClause                // for Init; Cond; Post { }
)

func (k ForKind) String() string {
	if k == ForThreeClause {
		return "three-clause"
	}
	return "condition"
}

// ForStmt represents a loop. Init and Post are only set for ForThreeClause.
type ForStmt struct {
	stmt
	Kind ForKind
	Init Stmt // *VarDecl or *ExprStmt, may be nil
	Cond Expr
	Post Expr // may be nil
	Body *BlockStmt
}

// ReturnStmt represents -> Result.
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}
