package syntax

import "strconv"

// FunctionTable records every function declared during a parse, including
// functions from included files, in declaration order. It holds non-owning
// references; the FuncDecl nodes belong to the statement tree.
type FunctionTable struct {
	funcs  []*FuncDecl
	byName map[string]*FuncDecl
}

// NewFunctionTable returns an empty table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{byName: make(map[string]*FuncDecl)}
}

// Add registers fn. The first declaration of a name is the one Lookup
// returns, so a prototype keeps answering for its later definition.
func (t *FunctionTable) Add(fn *FuncDecl) {
	t.funcs = append(t.funcs, fn)
	if _, ok := t.byName[fn.Name]; !ok {
		t.byName[fn.Name] = fn
	}
}

// Lookup returns the first function declared with name.
func (t *FunctionTable) Lookup(name string) (*FuncDecl, bool) {
	fn, ok := t.byName[name]
	return fn, ok
}

// Mangled resolves a call site name to the mangled name of its function.
// Names that are not in the table (C library functions) map to themselves.
func (t *FunctionTable) Mangled(name string) string {
	if fn, ok := t.byName[name]; ok {
		return fn.MangledName
	}
	return name
}

// Funcs returns the registered functions in declaration order.
func (t *FunctionTable) Funcs() []*FuncDecl {
	return t.funcs
}

// Len returns the number of registered declarations.
func (t *FunctionTable) Len() int {
	return len(t.funcs)
}

// returnTypeCodes holds the mangling suffix of each primitive return type.
var returnTypeCodes = map[string]string{
	"i64": "x",
	"u64": "y",
	"i32": "i",
	"u32": "j",
	"i16": "s",
	"u16": "t",
	"i8":  "Dh",
	"u8":  "h",
}

// MangleName derives the emitted name of a function from its name and return
// type name ("" for void):
//
//	"Z_" + len(name) + name + code
//
// where code is the primitive's letter code, "v" for void, or
// len(result) + result for any other type. main is never mangled.
func MangleName(name, result string) string {
	if name == "main" {
		return "main"
	}

	code, ok := returnTypeCodes[result]
	switch {
	case ok:
	case result == "":
		code = "v"
	default:
		code = strconv.Itoa(len(result)) + result
	}

	return "Z_" + strconv.Itoa(len(name)) + name + code
}
