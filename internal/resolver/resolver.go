// Package resolver performs static scope analysis over the parsed AST:
// it assigns every local variable reference its lexical scope distance
// and enforces the static semantic rules spec §4.2 describes (no
// `return` outside a function, no `this`/`super` outside a method,
// no reading a local in its own initializer, and so on).
//
// It's structured the way the teacher's semantic.Analyzer is: one pass
// over the tree, a small set of "current mode" fields saved and restored
// around nested function/class bodies, and errors accumulated rather
// than raised immediately so a single run reports everything it can.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

type functionMode int

const (
	fnNone functionMode = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classMode int

const (
	classNone classMode = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (true) or is
// still mid-declaration (false, the "read in own initializer" trap).
type scope map[string]bool

// Resolver walks a parsed program and mutates its Variable/Assign/This/
// Super nodes in place, filling in their Depth field.
type Resolver struct {
	scopes          []scope
	currentFunction functionMode
	currentClass    classMode
	errors          []*errors.Diagnostic
}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Errors returns every resolve error collected during Resolve.
func (r *Resolver) Errors() []*errors.Diagnostic {
	return r.errors
}

// Resolve walks every top-level statement. Resolver errors are fatal on
// first occurrence per spec §7, but this entry point still visits the
// whole program so callers that want to collect all errors can; the
// caller should stop at the first one reported via Errors.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, ok := innermost[name.Lexeme]; ok {
		r.errors = append(r.errors, errors.New(errors.DuplicateLocal, name.Line,
			"already a variable named '%s' in this scope", name.Lexeme))
	}
	innermost[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches scopes from innermost to outermost and, if
// found, records the distance on the node via set.
func (r *Resolver) resolveLocal(name token.Token, set func(depth int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			set(len(r.scopes) - 1 - i)
			return
		}
	}
	set(ast.NoDepth)
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(n.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(n.Expression)
	case *ast.VarStmt:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	case *ast.FunctionStmt:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, fnFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errors = append(r.errors, errors.New(errors.ReturnOutsideFunction, n.Keyword.Line,
				"can't return from top-level code"))
		}
		if n.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errors = append(r.errors, errors.New(errors.ReturnValueInInitializer, n.Keyword.Line,
					"can't return a value from an initializer"))
			}
			r.resolveExpr(n.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(n)
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, mode functionMode) {
	enclosingFunction := r.currentFunction
	r.currentFunction = mode
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveClass(n *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		r.currentClass = classSubclass
		r.resolveLocal(n.Superclass.Name, func(d int) { n.Superclass.Depth = d })

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range n.Methods {
		mode := fnMethod
		if method.Name.Lexeme == "init" {
			mode = fnInitializer
		}
		r.resolveFunction(method, mode)
	}
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Grouping:
		r.resolveExpr(n.Expression)
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
				r.errors = append(r.errors, errors.New(errors.ReadInOwnInitializer, n.Name.Line,
					"can't read local variable '%s' in its own initializer", n.Name.Lexeme))
			}
		}
		r.resolveLocal(n.Name, func(d int) { n.Depth = d })
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.Name, func(d int) { n.Depth = d })
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.errors = append(r.errors, errors.New(errors.ThisOutsideClass, n.Keyword.Line,
				"can't use 'this' outside of a class"))
			return
		}
		r.resolveLocal(n.Keyword, func(d int) { n.Depth = d })
	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.errors = append(r.errors, errors.New(errors.ThisOutsideClass, n.Keyword.Line,
				"can't use 'super' outside of a class"))
			return
		case classClass:
			r.errors = append(r.errors, errors.New(errors.SuperOutsideSubclass, n.Keyword.Line,
				"can't use 'super' in a class with no superclass"))
			return
		}
		r.resolveLocal(n.Keyword, func(d int) { n.Depth = d })
	}
}
