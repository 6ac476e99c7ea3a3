package ast

import (
	"fmt"
	"strings"
)

// Print renders statements as a fully-parenthesized Lisp-like tree, in
// the classic tree-walking-interpreter debug-dump style: every
// subexpression's precedence is explicit, so the dump also doubles as a
// structural-equality check between two parses (§8 "round-trip" in this
// repo's design notes).
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStmt:
		return parenthesize(";", n.Expression)
	case *PrintStmt:
		return parenthesize("print", n.Expression)
	case *VarStmt:
		if n.Initializer == nil {
			return fmt.Sprintf("(var %s)", n.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", n.Name.Lexeme, printExpr(n.Initializer))
	case *BlockStmt:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, st := range n.Statements {
			sb.WriteByte(' ')
			sb.WriteString(printStmt(st))
		}
		sb.WriteByte(')')
		return sb.String()
	case *IfStmt:
		if n.Else == nil {
			return fmt.Sprintf("(if %s %s)", printExpr(n.Condition), printStmt(n.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", printExpr(n.Condition), printStmt(n.Then), printStmt(n.Else))
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", printExpr(n.Condition), printStmt(n.Body))
	case *FunctionStmt:
		return printFunction("fun", n)
	case *ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", printExpr(n.Value))
	case *ClassStmt:
		var sb strings.Builder
		sb.WriteString("(class ")
		sb.WriteString(n.Name.Lexeme)
		if n.Superclass != nil {
			sb.WriteString(" < ")
			sb.WriteString(n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			sb.WriteByte(' ')
			sb.WriteString(printFunction("", m))
		}
		sb.WriteByte(')')
		return sb.String()
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func printFunction(label string, fn *FunctionStmt) string {
	var sb strings.Builder
	sb.WriteByte('(')
	if label != "" {
		sb.WriteString(label)
		sb.WriteByte(' ')
	}
	sb.WriteString(fn.Name.Lexeme)
	sb.WriteString(" (")
	for i, p := range fn.Params {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Lexeme)
	}
	sb.WriteString(") ")
	for i, st := range fn.Body {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(printStmt(st))
	}
	sb.WriteByte(')')
	return sb.String()
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		switch {
		case n.Value.IsString():
			return fmt.Sprintf("%q", n.Value.StringValue())
		case n.Value.IsNumber():
			return fmt.Sprintf("%v", n.Value.NumberValue())
		case n.Value.IsBool():
			return fmt.Sprintf("%v", n.Value.BoolValue())
		default:
			return "nil"
		}
	case *Grouping:
		return parenthesize("group", n.Expression)
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(= %s %s)", n.Name.Lexeme, printExpr(n.Value))
	case *Call:
		var sb strings.Builder
		fmt.Fprintf(&sb, "(call %s", printExpr(n.Callee))
		for _, a := range n.Arguments {
			sb.WriteByte(' ')
			sb.WriteString(printExpr(a))
		}
		sb.WriteByte(')')
		return sb.String()
	case *Get:
		return fmt.Sprintf("(get %s %s)", printExpr(n.Object), n.Name.Lexeme)
	case *Set:
		return fmt.Sprintf("(set %s %s %s)", printExpr(n.Object), n.Name.Lexeme, printExpr(n.Value))
	case *This:
		return "this"
	case *Super:
		return fmt.Sprintf("(super %s)", n.Method.Lexeme)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(printExpr(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
