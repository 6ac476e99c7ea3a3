// Package parser implements a recursive-descent parser from a token
// stream to the AST in internal/ast, with one-token lookahead and
// panic-mode error recovery synchronized on statement boundaries — the
// classic tree-walking-interpreter parser shape, structured the way the
// teacher's internal/parser package structures its own Pratt parser:
// one Parser struct, a cursor position, accumulated structured errors,
// and one method per grammar production.
package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

const maxArgs = 255

// Parser consumes a flat token slice (already terminated by an EOF
// token) and produces a program (a slice of statements).
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*errors.Diagnostic
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error collected during ParseProgram, in the
// order encountered. The first one determines the overall failure (spec
// §4.1 "Error recovery").
func (p *Parser) Errors() []*errors.Diagnostic {
	return p.errors
}

// ParseProgram parses declaration* until EOF, recovering from each error
// via synchronize so later errors can still be reported.
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// ---- token cursor helpers --------------------------------------------

func (p *Parser) peek() token.Token  { return p.tokens[p.current] }
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have kind, advancing past it; on
// mismatch it records a diagnostic and panics with parseError so the
// caller unwinds straight to the nearest synchronize point.
func (p *Parser) consume(kind token.Kind, kindErr errors.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), kindErr, message))
}

type parseError struct{ diag *errors.Diagnostic }

func (p *Parser) errorAt(tok token.Token, kind errors.Kind, message string) parseError {
	var d *errors.Diagnostic
	if tok.Kind == token.EOF {
		d = errors.New(errors.UnexpectedEOF, tok.Line, "at end: %s", message)
	} else {
		d = errors.New(kind, tok.Line, "at '%s': %s", tok.Lexeme, message)
	}
	p.errors = append(p.errors, d)
	return parseError{diag: d}
}

// synchronize discards tokens until it finds a statement boundary or the
// start of the next declaration/statement, per spec §4.1.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// recoverDeclaration wraps a declaration-parsing attempt so a parseError
// panic is caught, synchronized past, and reported as a nil statement
// (dropped from the program) rather than aborting the whole parse.
func (p *Parser) recoverDeclaration(parse func() ast.Stmt) (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return parse()
}
