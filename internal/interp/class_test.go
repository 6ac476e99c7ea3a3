package interp

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
)

func TestClassInheritedMethodLookup(t *testing.T) {
	out, err := run(t, `
		class A {
			speak() { print "A speaks"; }
		}
		class B < A {}
		var b = B();
		b.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A speaks\n" {
		t.Errorf("output = %q, want %q", out, "A speaks\n")
	}
}

func TestClassMethodResolutionOrderOverride(t *testing.T) {
	out, err := run(t, `
		class A {
			speak() { print "A"; }
		}
		class B < A {
			speak() { print "B"; }
		}
		var b = B();
		b.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "B\n" {
		t.Errorf("output = %q, want %q (own method shadows inherited)", out, "B\n")
	}
}

func TestClassSuperChainedDispatch(t *testing.T) {
	out, err := run(t, `
		class A {
			speak() { print "A"; }
		}
		class B < A {
			speak() {
				super.speak();
				print "B";
			}
		}
		B().speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A\nB\n" {
		t.Errorf("output = %q, want %q", out, "A\nB\n")
	}
}

func TestClassArityFromInitOrZero(t *testing.T) {
	noInit := &ClassObject{Name: "NoInit", Methods: map[string]*FunctionObject{}}
	if noInit.Arity() != 0 {
		t.Errorf("Arity() = %d, want 0 for a class without init", noInit.Arity())
	}

	initDecl := &FunctionObject{
		Declaration: &ast.FunctionStmt{
			Name:   tok("init"),
			Params: []token.Token{tok("a"), tok("b")},
		},
		IsInitializer: true,
	}
	withInit := &ClassObject{Name: "WithInit", Methods: map[string]*FunctionObject{"init": initDecl}}
	if withInit.Arity() != 2 {
		t.Errorf("Arity() = %d, want 2 (init's arity)", withInit.Arity())
	}
}

func TestFieldsShadowMethods(t *testing.T) {
	out, err := run(t, `
		class C {
			x() { return "method"; }
		}
		var c = C();
		c.x = "field";
		print c.x;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "field\n" {
		t.Errorf("output = %q, want %q (fields must shadow methods)", out, "field\n")
	}
}

func TestInstanceGetBindsMethodToReceiver(t *testing.T) {
	out, err := run(t, `
		class Box {
			init(v) { this.v = v; }
			get() { return this.v; }
		}
		var a = Box(1);
		var b = Box(2);
		print a.get();
		print b.get();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n")
	}
}
