package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/cwbudde/go-lox/internal/token"
)

func tok(name string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Lexeme: name, Line: 1}
}

// run parses, resolves, and interprets src, returning everything written to
// stdout and any interpretation error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, lexErrs := lexer.New(src).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	p := parser.New(toks)
	stmts := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := resolver.New()
	r.Resolve(stmts)
	if len(r.Errors()) != 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}

	var buf bytes.Buffer
	i := New(&buf)
	err := i.Interpret(stmts)
	return buf.String(), err
}

func TestFunctionCallNaturalEnd(t *testing.T) {
	out, err := run(t, `
		fun f() { print "hi"; }
		f();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\n" {
		t.Errorf("output = %q, want %q", out, "hi\n")
	}
}

func TestFunctionCallReturnsValue(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) { return a + b; }
		print add(2, 3);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Errorf("output = %q, want %q", out, "5\n")
	}
}

func TestFunctionArityMismatch(t *testing.T) {
	_, err := run(t, `
		fun f(a) { return a; }
		f();
	`)
	if err == nil || !strings.Contains(err.Error(), "expected 1 arguments but got 0") {
		t.Fatalf("got %v, want an arity mismatch error", err)
	}
}

func TestClosureCapturesOuterVariableAcrossReassignment(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n")
	}
}

func TestInitializerSetsFieldOnConstructedInstance(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init(x) {
				this.x = x;
			}
		}
		var c = Counter(5);
		print c.x;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Errorf("output = %q, want %q", out, "5\n")
	}
}

func TestMethodBindCapturesThisAcrossInvocations(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print "hi " + this.name; }
		}
		var g = Greeter("ada");
		var m = g.greet;
		m();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi ada\n" {
		t.Errorf("output = %q, want %q", out, "hi ada\n")
	}
}

func TestNativeClockArityAndInvocation(t *testing.T) {
	i := New(&bytes.Buffer{})
	clock, ok := i.globals.Get("clock")
	if !ok {
		t.Fatal("expected clock to be defined in globals")
	}
	callable, ok := clock.(Callable)
	if !ok {
		t.Fatalf("clock = %T, want Callable", clock)
	}
	if callable.Arity() != 0 {
		t.Errorf("Arity() = %d, want 0", callable.Arity())
	}
	val, err := callable.Call(i, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := val.(NumberValue); !ok {
		t.Errorf("clock() = %T, want NumberValue", val)
	}
}

// Sanity check that ast.FunctionStmt's Params/Body shape is what
// FunctionObject.Call expects — constructed directly rather than parsed,
// to exercise Arity() and Call() without going through the parser.
func TestFunctionObjectArityMatchesParamCount(t *testing.T) {
	decl := &ast.FunctionStmt{
		Name:   tok("f"),
		Params: []token.Token{tok("a"), tok("b")},
		Body:   nil,
	}
	fn := &FunctionObject{Declaration: decl, Closure: NewEnvironment()}
	if fn.Arity() != 2 {
		t.Errorf("Arity() = %d, want 2", fn.Arity())
	}
}
