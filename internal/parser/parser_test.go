package parser

import (
	"fmt"
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func parseSource(t *testing.T, src string) ([]ast.Stmt, []*errors.Diagnostic) {
	t.Helper()
	toks, lexErrs := lexer.New(src).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	p := New(toks)
	stmts := p.ParseProgram()
	return stmts, p.Errors()
}

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, errs := parseSource(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return stmts
}

func TestParsePrecedence(t *testing.T) {
	stmts := mustParse(t, "print 1 + 2 * 3;")
	got := ast.Print(stmts)
	want := "(print (+ 1 (* 2 3)))\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts := mustParse(t, "var a; a = 1; a.b = 2;")
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}
	assignStmt, ok := stmts[1].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("stmt[1] = %T", stmts[1])
	}
	if _, ok := assignStmt.Expression.(*ast.Assign); !ok {
		t.Errorf("expected *ast.Assign, got %T", assignStmt.Expression)
	}
	setStmt, ok := stmts[2].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("stmt[2] = %T", stmts[2])
	}
	if _, ok := setStmt.Expression.(*ast.Set); !ok {
		t.Errorf("expected *ast.Set, got %T", setStmt.Expression)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parseSource(t, "1 = 2;")
	if len(errs) != 1 || errs[0].Kind != errors.InvalidAssignment {
		t.Fatalf("got %v, want a single InvalidAssignment", errs)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := mustParse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("got %d top-level statements, want 1", len(stmts))
	}
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("for statement desugared to %T, want *ast.BlockStmt", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("block.Statements[0] = %T, want *ast.VarStmt", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("block.Statements[1] = %T, want *ast.WhileStmt", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("while body = %#v, want a 2-statement block (print, increment)", whileStmt.Body)
	}
}

func TestParseForWithoutClausesDefaultsConditionTrue(t *testing.T) {
	stmts := mustParse(t, "for (;;) print 1;")
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", stmts[0])
	}
	lit, ok := whileStmt.Condition.(*ast.Literal)
	if !ok || !lit.Value.IsBool() || !lit.Value.BoolValue() {
		t.Errorf("condition = %#v, want literal true", whileStmt.Condition)
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := mustParse(t, "class A {} class B < A { greet() { return 1; } }")
	classB, ok := stmts[1].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[1])
	}
	if classB.Superclass == nil || classB.Superclass.Name.Lexeme != "A" {
		t.Errorf("superclass = %#v, want A", classB.Superclass)
	}
	if len(classB.Methods) != 1 || classB.Methods[0].Name.Lexeme != "greet" {
		t.Errorf("methods = %#v", classB.Methods)
	}
}

func TestParseInheritFromSelf(t *testing.T) {
	_, errs := parseSource(t, "class A < A {}")
	if len(errs) != 1 || errs[0].Kind != errors.InheritFromSelf {
		t.Fatalf("got %v, want a single InheritFromSelf", errs)
	}
}

func TestParseArgumentLimit(t *testing.T) {
	args := make([]string, 255)
	for i := range args {
		args[i] = "1"
	}
	src := fmt.Sprintf("f(%s);", joinComma(args))
	if _, errs := parseSource(t, src); len(errs) != 0 {
		t.Fatalf("255 arguments should be accepted, got errors: %v", errs)
	}

	tooMany := make([]string, 256)
	for i := range tooMany {
		tooMany[i] = "1"
	}
	src = fmt.Sprintf("f(%s);", joinComma(tooMany))
	_, errs := parseSource(t, src)
	if len(errs) == 0 {
		t.Fatal("256 arguments should be rejected")
	}
	found := false
	for _, e := range errs {
		if e.Kind == errors.TooManyArguments {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want TooManyArguments", errs)
	}
}

func TestParseParameterLimit(t *testing.T) {
	params := make([]string, 256)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	src := fmt.Sprintf("fun f(%s) {}", joinComma(params))
	_, errs := parseSource(t, src)
	found := false
	for _, e := range errs {
		if e.Kind == errors.TooManyParameters {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want TooManyParameters", errs)
	}
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	// The first statement is malformed (missing semicolon); the error is
	// recorded and synchronize lets parsing run on to EOF instead of
	// aborting. Its first advance consumes the `var` that starts the
	// second statement, so that statement is skipped as well.
	_, errs := parseSource(t, "var a = 1\nvar b = 2;")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for the missing semicolon")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	stmts := mustParse(t, "")
	if len(stmts) != 0 {
		t.Errorf("got %d statements, want 0", len(stmts))
	}
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}
