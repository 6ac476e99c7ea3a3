package ast

// Dump renders a program as a tree of plain Go values (maps, slices,
// scalars) suitable for structured-format marshaling — the YAML/JSON
// dump behind the CLI's `parse --format yaml|json`, as an alternative to
// the Lisp-like Print in printer.go. Every node becomes a map with a
// "node" tag naming its node type (a class's methods are tagged
// "Method"), so the dump is self-describing without a custom schema.
func Dump(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, dumpStmt(s))
	}
	return out
}

func dumpStmt(s Stmt) map[string]any {
	switch n := s.(type) {
	case *ExpressionStmt:
		return map[string]any{"node": "ExpressionStmt", "expression": dumpExpr(n.Expression)}
	case *PrintStmt:
		return map[string]any{"node": "PrintStmt", "expression": dumpExpr(n.Expression)}
	case *VarStmt:
		m := map[string]any{"node": "VarStmt", "name": n.Name.Lexeme}
		if n.Initializer != nil {
			m["initializer"] = dumpExpr(n.Initializer)
		}
		return m
	case *BlockStmt:
		stmts := make([]any, 0, len(n.Statements))
		for _, st := range n.Statements {
			stmts = append(stmts, dumpStmt(st))
		}
		return map[string]any{"node": "BlockStmt", "statements": stmts}
	case *IfStmt:
		m := map[string]any{"node": "IfStmt", "condition": dumpExpr(n.Condition), "then": dumpStmt(n.Then)}
		if n.Else != nil {
			m["else"] = dumpStmt(n.Else)
		}
		return m
	case *WhileStmt:
		return map[string]any{"node": "WhileStmt", "condition": dumpExpr(n.Condition), "body": dumpStmt(n.Body)}
	case *FunctionStmt:
		return dumpFunction("FunctionStmt", n)
	case *ReturnStmt:
		m := map[string]any{"node": "ReturnStmt"}
		if n.Value != nil {
			m["value"] = dumpExpr(n.Value)
		}
		return m
	case *ClassStmt:
		methods := make([]any, 0, len(n.Methods))
		for _, meth := range n.Methods {
			methods = append(methods, dumpFunction("Method", meth))
		}
		m := map[string]any{"node": "ClassStmt", "name": n.Name.Lexeme, "methods": methods}
		if n.Superclass != nil {
			m["superclass"] = n.Superclass.Name.Lexeme
		}
		return m
	default:
		return map[string]any{"node": "unknown"}
	}
}

func dumpFunction(label string, fn *FunctionStmt) map[string]any {
	params := make([]any, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, p.Lexeme)
	}
	body := make([]any, 0, len(fn.Body))
	for _, st := range fn.Body {
		body = append(body, dumpStmt(st))
	}
	return map[string]any{
		"node": label, "name": fn.Name.Lexeme, "params": params, "body": body,
	}
}

func dumpExpr(e Expr) map[string]any {
	switch n := e.(type) {
	case *Literal:
		switch {
		case n.Value.IsString():
			return map[string]any{"node": "Literal", "value": n.Value.StringValue()}
		case n.Value.IsNumber():
			return map[string]any{"node": "Literal", "value": n.Value.NumberValue()}
		case n.Value.IsBool():
			return map[string]any{"node": "Literal", "value": n.Value.BoolValue()}
		default:
			return map[string]any{"node": "Literal", "value": nil}
		}
	case *Grouping:
		return map[string]any{"node": "Grouping", "expression": dumpExpr(n.Expression)}
	case *Unary:
		return map[string]any{"node": "Unary", "operator": n.Operator.Lexeme, "right": dumpExpr(n.Right)}
	case *Binary:
		return map[string]any{
			"node": "Binary", "operator": n.Operator.Lexeme,
			"left": dumpExpr(n.Left), "right": dumpExpr(n.Right),
		}
	case *Logical:
		return map[string]any{
			"node": "Logical", "operator": n.Operator.Lexeme,
			"left": dumpExpr(n.Left), "right": dumpExpr(n.Right),
		}
	case *Variable:
		return map[string]any{"node": "Variable", "name": n.Name.Lexeme, "depth": n.Depth}
	case *Assign:
		return map[string]any{"node": "Assign", "name": n.Name.Lexeme, "depth": n.Depth, "value": dumpExpr(n.Value)}
	case *Call:
		args := make([]any, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, dumpExpr(a))
		}
		return map[string]any{"node": "Call", "callee": dumpExpr(n.Callee), "arguments": args}
	case *Get:
		return map[string]any{"node": "Get", "object": dumpExpr(n.Object), "name": n.Name.Lexeme}
	case *Set:
		return map[string]any{
			"node": "Set", "object": dumpExpr(n.Object), "name": n.Name.Lexeme, "value": dumpExpr(n.Value),
		}
	case *This:
		return map[string]any{"node": "This", "depth": n.Depth}
	case *Super:
		return map[string]any{"node": "Super", "method": n.Method.Lexeme, "depth": n.Depth}
	default:
		return map[string]any{"node": "unknown"}
	}
}
