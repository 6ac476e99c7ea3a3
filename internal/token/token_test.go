package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LEFT_PAREN, "LEFT_PAREN"},
		{BANG_EQUAL, "BANG_EQUAL"},
		{IDENTIFIER, "IDENTIFIER"},
		{CLASS, "CLASS"},
		{EOF, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	got := Kind(9999).String()
	if got != "Kind(9999)" {
		t.Errorf("unknown Kind.String() = %q, want %q", got, "Kind(9999)")
	}
}

func TestKeywords(t *testing.T) {
	want := map[string]Kind{
		"and": AND, "class": CLASS, "else": ELSE, "false": FALSE,
		"for": FOR, "fun": FUN, "if": IF, "nil": NIL, "or": OR,
		"print": PRINT, "return": RETURN, "super": SUPER, "this": THIS,
		"true": TRUE, "var": VAR, "while": WHILE,
	}
	if len(Keywords) != len(want) {
		t.Fatalf("len(Keywords) = %d, want %d", len(Keywords), len(want))
	}
	for word, kind := range want {
		if Keywords[word] != kind {
			t.Errorf("Keywords[%q] = %v, want %v", word, Keywords[word], kind)
		}
	}
	if _, ok := Keywords["not_a_keyword"]; ok {
		t.Error("Keywords contains a non-keyword identifier")
	}
}

func TestLiteralConstructors(t *testing.T) {
	s := StringLiteral("hi")
	if !s.IsString() || s.StringValue() != "hi" || s.IsPresent() != true {
		t.Errorf("StringLiteral invariants broken: %+v", s)
	}
	n := NumberLiteral(3.5)
	if !n.IsNumber() || n.NumberValue() != 3.5 {
		t.Errorf("NumberLiteral invariants broken: %+v", n)
	}
	b := BoolLiteral(true)
	if !b.IsBool() || b.BoolValue() != true {
		t.Errorf("BoolLiteral invariants broken: %+v", b)
	}
	nilLit := NilLiteral()
	if !nilLit.IsNil() {
		t.Errorf("NilLiteral invariants broken: %+v", nilLit)
	}

	var zero Literal
	if zero.IsPresent() {
		t.Error("zero-value Literal should not be present")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Lexeme: "foo", Line: 1}
	want := `IDENTIFIER "foo"`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
