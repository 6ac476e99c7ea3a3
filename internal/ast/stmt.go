package ast

import "github.com/cwbudde/go-lox/internal/token"

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates Expression and writes its display form to stdout.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares Name in the current environment, initialized to
// Initializer's value (or nil if Initializer is absent).
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes Then if Condition is truthy, else Else (which may be
// nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

// WhileStmt re-evaluates Condition and executes Body while it's truthy.
// `for` loops desugar into this (see the parser's forStatement).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function (or, inside a ClassStmt, a
// method). Params are bound by position when the function is invoked.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds the nearest enclosing function activation with
// Value's result (or nil if Value is absent).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

// ClassStmt declares a class, its methods, and (if present) the
// expression naming its superclass.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if the class has no superclass
	Methods    []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
