package ast

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/token"
)

func numTok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func TestPrintBinaryExpression(t *testing.T) {
	// -123 * (45.67)
	expr := &Binary{
		Left:     &Unary{Operator: numTok(token.MINUS, "-"), Right: &Literal{Value: token.NumberLiteral(123)}},
		Operator: numTok(token.STAR, "*"),
		Right:    &Grouping{Expression: &Literal{Value: token.NumberLiteral(45.67)}},
	}
	stmts := []Stmt{&ExpressionStmt{Expression: expr}}
	got := Print(stmts)
	want := "(; (* (- 123) (group 45.67)))\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintClassWithSuperclass(t *testing.T) {
	stmt := &ClassStmt{
		Name:       numTok(token.IDENTIFIER, "B"),
		Superclass: &Variable{Name: numTok(token.IDENTIFIER, "A"), Depth: NoDepth},
		Methods: []*FunctionStmt{
			{Name: numTok(token.IDENTIFIER, "greet"), Params: nil, Body: []Stmt{&PrintStmt{Expression: &Literal{Value: token.StringLiteral("hi")}}}},
		},
	}
	got := Print([]Stmt{stmt})
	want := "(class B < A (greet () (print \"hi\")))\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestDumpRoundTripsStructure(t *testing.T) {
	stmts := []Stmt{
		&VarStmt{Name: numTok(token.IDENTIFIER, "x"), Initializer: &Literal{Value: token.NumberLiteral(1)}},
		&IfStmt{
			Condition: &Variable{Name: numTok(token.IDENTIFIER, "x"), Depth: 0},
			Then:      &PrintStmt{Expression: &Variable{Name: numTok(token.IDENTIFIER, "x"), Depth: 0}},
		},
	}
	dump := Dump(stmts)
	if len(dump) != 2 {
		t.Fatalf("Dump() returned %d nodes, want 2", len(dump))
	}
	first, ok := dump[0].(map[string]any)
	if !ok || first["node"] != "VarStmt" || first["name"] != "x" {
		t.Errorf("dump[0] = %#v", dump[0])
	}
	second, ok := dump[1].(map[string]any)
	if !ok || second["node"] != "IfStmt" {
		t.Errorf("dump[1] = %#v", dump[1])
	}
}

func TestDumpJSONEncodesNestedStructure(t *testing.T) {
	stmts := []Stmt{
		&PrintStmt{Expression: &Binary{
			Left:     &Literal{Value: token.NumberLiteral(1)},
			Operator: numTok(token.PLUS, "+"),
			Right:    &Literal{Value: token.NumberLiteral(2)},
		}},
	}
	doc, err := DumpJSON(Dump(stmts))
	if err != nil {
		t.Fatalf("DumpJSON() error: %v", err)
	}
	for _, want := range []string{`"node":"PrintStmt"`, `"node":"Binary"`, `"operator":"+"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("DumpJSON() = %s, missing %q", doc, want)
		}
	}
}
