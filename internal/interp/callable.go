package interp

import "github.com/cwbudde/go-lox/internal/ast"

// Callable is any Value that can appear as the callee of a Call
// expression: user functions, bound methods, classes (acting as their
// own constructor), and native bindings.
type Callable interface {
	Value
	Arity() int
	Call(i *Interpreter, args []Value) (Value, error)
}

// FunctionObject is a user-defined function or method closed over the
// environment active at its declaration. Methods are represented as a
// FunctionObject bound to an instance: Bind returns a fresh FunctionObject
// whose closure nests a frame defining "this".
type FunctionObject struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *FunctionObject) Type() string   { return "FUNCTION" }
func (f *FunctionObject) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

func (f *FunctionObject) Arity() int { return len(f.Declaration.Params) }

// Call implements the invocation steps of spec §4.5 "FunctionObject
// invocation": a fresh frame over the closure, parameters bound
// positionally, the body run to one of three outcomes (natural end,
// Return signal, or error), with `init` methods always yielding the
// bound instance regardless of what the body returns.
func (f *FunctionObject) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for idx, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return Nil, nil
}

// Bind returns a copy of f whose closure is a new frame defining "this"
// as instance and enclosing f's original closure (spec §4.5 Get).
func (f *FunctionObject) Bind(instance *Instance) *FunctionObject {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &FunctionObject{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// NativeFunction is a pre-bound host function such as clock().
type NativeFunction struct {
	Name string
	Arg  int
	Fn   func(i *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Type() string   { return "NATIVE_FUNCTION" }
func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) Arity() int     { return n.Arg }

func (n *NativeFunction) Call(i *Interpreter, args []Value) (Value, error) {
	return n.Fn(i, args)
}
