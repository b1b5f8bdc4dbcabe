package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]any

func toJSON(node Node) any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		m := object{
			"type":  "File",
			"pos":   n.pos.String(),
			"file":  n.Filename,
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}
		if len(n.Includes) > 0 {
			m["includes"] = n.Includes
		}
		return m

	case *FuncDecl:
		m := object{
			"type":      "FuncDecl",
			"pos":       n.pos.String(),
			"name":      n.Name,
			"mangled":   n.MangledName,
			"params":    mapSlice(n.Params, func(p *Param) any { return toJSON(p) }),
			"prototype": n.Prototype,
		}
		if n.Result != "" {
			m["result"] = n.Result
			m["resultType"] = n.ResultType.String()
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Param:
		m := object{
			"type": "Param",
			"pos":  n.pos.String(),
			"name": n.Name,
		}
		typeSpecJSON(m, &n.TypeSpec)
		return m

	case *TypeDecl:
		return object{
			"type":   "TypeDecl",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"fields": mapSlice(n.Fields, func(f *VarDecl) any { return toJSON(f) }),
		}

	case *VarDecl:
		m := object{
			"type": "VarDecl",
			"pos":  n.pos.String(),
			"lhs":  toJSON(n.LHS),
		}
		if n.Static {
			m["static"] = true
		}
		if n.Const {
			m["const"] = true
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *CincludeDecl:
		return object{
			"type": "CincludeDecl",
			"pos":  n.pos.String(),
			"path": n.Path,
		}

	case *BlockStmt:
		return object{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *IfStmt:
		m := object{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ForStmt:
		m := object{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		return m

	case *ReturnStmt:
		m := object{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *ExprStmt:
		return object{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *Variable:
		m := exprJSON("Variable", n)
		m["name"] = n.Name
		typeSpecJSON(m, &n.TypeSpec)
		return m

	case *Constant:
		m := exprJSON("Constant", n)
		m["value"] = n.Value
		return m

	case *CharLit:
		m := exprJSON("CharLit", n)
		m["value"] = n.Value
		return m

	case *StringLit:
		m := exprJSON("StringLit", n)
		m["value"] = n.Value
		return m

	case *CallExpr:
		m := exprJSON("CallExpr", n)
		m["name"] = n.Name
		m["args"] = mapSlice(n.Args, exprJSONValue)
		return m

	case *AssignExpr:
		m := exprJSON("AssignExpr", n)
		m["target"] = toJSON(n.Target)
		m["value"] = toJSON(n.Value)
		return m

	case *BinaryExpr:
		m := exprJSON("BinaryExpr", n)
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)
		return m

	case *UnaryExpr:
		m := exprJSON("UnaryExpr", n)
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)
		return m

	case *ArrayLit:
		m := exprJSON("ArrayLit", n)
		m["elems"] = mapSlice(n.Elems, exprJSONValue)
		return m

	case *SubscriptExpr:
		m := exprJSON("SubscriptExpr", n)
		m["x"] = toJSON(n.X)
		m["indexes"] = mapSlice(n.Indexes, exprJSONValue)
		return m

	case *TypeInstExpr:
		m := exprJSON("TypeInstExpr", n)
		m["values"] = mapSlice(n.Values, exprJSONValue)
		return m

	default:
		return object{
			"type": "Unknown",
		}
	}
}

// exprJSON starts the object of an expression node.
func exprJSON(typ string, x Expr) object {
	m := object{
		"type": typ,
		"pos":  x.Pos().String(),
	}
	if x.Parenthesized() {
		m["paren"] = true
	}
	return m
}

func typeSpecJSON(m object, t *TypeSpec) {
	if t.TypeName != "" {
		m["typeName"] = t.TypeName
	}
	m["varType"] = t.Type.String()
	if t.PtrDepth > 0 {
		m["ptrDepth"] = t.PtrDepth
	}
	if t.IsArray {
		m["array"] = true
		if t.ArraySize != nil {
			m["arraySize"] = toJSON(t.ArraySize)
		}
	}
}

func stmtJSON(s Stmt) any     { return toJSON(s) }
func exprJSONValue(x Expr) any { return toJSON(x) }

func mapSlice[T any](s []T, f func(T) any) []any {
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
