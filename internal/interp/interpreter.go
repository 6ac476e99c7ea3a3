// Package interp is the tree-walking evaluator: it executes a resolved
// AST directly, maintaining a current environment and the globals frame,
// the way the teacher's internal/interp executes DWScript ASTs directly
// over an Environment chain rather than compiling to bytecode.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

// RuntimeError is a runtime-phase errors.Kind diagnostic raised during evaluation. It
// satisfies error so it can flow through ordinary Go error returns, and
// carries enough to build an errors.Diagnostic at the boundary.
type RuntimeError struct {
	Kind    errors.Kind
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Diagnostic converts a RuntimeError into the shared diagnostic type.
func (e *RuntimeError) Diagnostic() *errors.Diagnostic {
	return errors.New(e.Kind, e.Line, "%s", e.Message)
}

func runtimeErrorf(kind errors.Kind, line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is the non-error "return value" control-flow signal (spec
// §4.5, §4.7): it satisfies error purely so it can unwind through the
// same Go error-return plumbing as a real RuntimeError, and is unwrapped
// by the nearest enclosing FunctionObject.Call.
type returnSignal struct{ value Value }

func (returnSignal) Error() string { return "return outside of function" }

// Interpreter walks statements and expressions, writing `print` output to
// Output and sharing one globals frame across the whole run (the REPL
// reuses an Interpreter across lines so top-level bindings persist).
type Interpreter struct {
	Output  io.Writer
	globals *Environment
	env     *Environment
}

// New creates an Interpreter with a globals frame pre-populated with
// native bindings (spec §4.6).
func New(output io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", &NativeFunction{
		Name: "clock",
		Arg:  0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return NumberValue{Value: float64(time.Now().Unix())}, nil
		},
	})
	return &Interpreter{Output: output, globals: globals, env: globals}
}

// Interpret executes a resolved program top to bottom. Each top-level
// statement is executed in turn; a runtime error aborts the remaining
// statements and is returned to the caller, which (per spec §7) decides
// whether to reset (REPL) or exit 70 (file mode).
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(n.Expression)
		return err

	case *ast.PrintStmt:
		val, err := i.evaluate(n.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Output, val.String())
		return nil

	case *ast.VarStmt:
		var val Value = Nil
		if n.Initializer != nil {
			var err error
			val, err = i.evaluate(n.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(n.Name.Lexeme, val)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(n.Statements, NewEnclosedEnvironment(i.env))

	case *ast.IfStmt:
		cond, err := i.evaluate(n.Condition)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return i.execute(n.Then)
		}
		if n.Else != nil {
			return i.execute(n.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(n.Condition)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := i.execute(n.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &FunctionObject{Declaration: n, Closure: i.env}
		i.env.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		val := Value(Nil)
		if n.Value != nil {
			var err error
			val, err = i.evaluate(n.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: val}

	case *ast.ClassStmt:
		return i.executeClass(n)
	}
	return nil
}

// executeBlock runs stmts under env, restoring the interpreter's previous
// environment on every exit path (natural, Return signal, or error) per
// spec §4.5 "Block".
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// executeClass implements spec §4.5 "ClassDecl": a two-stage define so
// methods can reference their own class by name via closure, an optional
// superclass frame threaded through every method's closure, and a final
// rebinding of the class name to the constructed ClassObject.
func (i *Interpreter) executeClass(n *ast.ClassStmt) error {
	var superclass *ClassObject
	if n.Superclass != nil {
		val, err := i.evaluate(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := val.(*ClassObject)
		if !ok {
			return runtimeErrorf(errors.SuperNotClass, n.Superclass.Name.Line,
				"superclass must be a class")
		}
		superclass = sc
	}

	i.env.Define(n.Name.Lexeme, Nil)

	methodEnv := i.env
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(i.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*FunctionObject, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &FunctionObject{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &ClassObject{Name: n.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.env.Assign(n.Name.Lexeme, class)
}

func (i *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return i.evaluate(n.Expression)

	case *ast.Unary:
		return i.evalUnary(n)

	case *ast.Binary:
		return i.evalBinary(n)

	case *ast.Logical:
		return i.evalLogical(n)

	case *ast.Variable:
		return i.lookupVariable(n.Name, n.Depth)

	case *ast.Assign:
		val, err := i.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		if n.Depth != ast.NoDepth {
			i.env.AssignAt(n.Depth, n.Name.Lexeme, val)
		} else if err := i.globals.Assign(n.Name.Lexeme, val); err != nil {
			return nil, runtimeErrorf(errors.UndefinedVariable, n.Name.Line,
				"undefined variable '%s'", n.Name.Lexeme)
		}
		return val, nil

	case *ast.Call:
		return i.evalCall(n)

	case *ast.Get:
		return i.evalGet(n)

	case *ast.Set:
		return i.evalSet(n)

	case *ast.This:
		return i.lookupVariable(n.Keyword, n.Depth)

	case *ast.Super:
		return i.evalSuper(n)
	}
	panic(fmt.Sprintf("interp: unhandled expression %T", e))
}

func literalValue(lit token.Literal) Value {
	switch {
	case lit.IsString():
		return StringValue{Value: lit.StringValue()}
	case lit.IsNumber():
		return NumberValue{Value: lit.NumberValue()}
	case lit.IsBool():
		return BoolValue{Value: lit.BoolValue()}
	default:
		return Nil
	}
}

func (i *Interpreter) lookupVariable(name token.Token, depth int) (Value, error) {
	if depth != ast.NoDepth {
		return i.env.GetAt(depth, name.Lexeme), nil
	}
	if val, ok := i.globals.Get(name.Lexeme); ok {
		return val, nil
	}
	return nil, runtimeErrorf(errors.UndefinedVariable, name.Line,
		"undefined variable '%s'", name.Lexeme)
}

func (i *Interpreter) evalLogical(n *ast.Logical) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator.Kind == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else if !Truthy(left) {
		return left, nil
	}
	return i.evaluate(n.Right)
}

func (i *Interpreter) evalUnary(n *ast.Unary) (Value, error) {
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case token.MINUS:
		num, ok := right.(NumberValue)
		if !ok {
			return nil, runtimeErrorf(errors.TypeError, n.Operator.Line, "operand must be a number")
		}
		return NumberValue{Value: -num.Value}, nil
	case token.BANG:
		return BoolValue{Value: !Truthy(right)}, nil
	}
	panic("interp: unhandled unary operator " + n.Operator.Kind.String())
}

func (i *Interpreter) evalGet(n *ast.Get) (Value, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(errors.PropertyOnNonInstance, n.Name.Line,
			"only instances have properties")
	}
	if val, ok := instance.Get(n.Name.Lexeme); ok {
		return val, nil
	}
	return nil, runtimeErrorf(errors.UndefinedProperty, n.Name.Line,
		"undefined property '%s'", n.Name.Lexeme)
}

func (i *Interpreter) evalSet(n *ast.Set) (Value, error) {
	obj, err := i.evaluate(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrorf(errors.PropertyOnNonInstance, n.Name.Line,
			"only instances have fields")
	}
	val, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(n.Name.Lexeme, val)
	return val, nil
}

func (i *Interpreter) evalSuper(n *ast.Super) (Value, error) {
	superVal := i.env.GetAt(n.Depth, "super")
	superclass, ok := superVal.(*ClassObject)
	if !ok {
		return nil, runtimeErrorf(errors.SuperNotClass, n.Keyword.Line, "super must resolve to a class")
	}
	instance, _ := i.env.GetAt(n.Depth-1, "this").(*Instance)

	method, ok := superclass.FindMethod(n.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(errors.UndefinedProperty, n.Method.Line,
			"undefined property '%s'", n.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := i.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		val, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(errors.NotCallable, n.Paren.Line, "can only call functions and classes")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(errors.ArityMismatch, n.Paren.Line,
			"expected %d arguments but got %d", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}
