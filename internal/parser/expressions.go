package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
//
// The left-hand side is parsed as a general expression first; only once
// "=" is seen do we validate it names an assignable target (spec §4.1
// "Assignment target validation"). This lets `a.b.c = x` and `a = x`
// share one code path without a separate lvalue grammar.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value, Depth: ast.NoDepth}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			panic(p.errorAt(equals, errors.InvalidAssignment, "invalid assignment target"))
		}
	}

	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality → comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison → term ((">" | ">=" | "<" | "<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term → factor (("+" | "-") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor → unary (("*" | "/") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				panic(p.errorAt(p.peek(), errors.TooManyArguments, "can't have more than 255 arguments"))
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//         | "(" expression ")" | IDENT | "this"
//         | "super" "." IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: token.BoolLiteral(false)}
	case p.match(token.TRUE):
		return &ast.Literal{Value: token.BoolLiteral(true)}
	case p.match(token.NIL):
		return &ast.Literal{Value: token.NilLiteral()}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, errors.UnexpectedToken, "expect '.' after 'super'")
		method := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect superclass method name")
		return &ast.Super{Keyword: keyword, Method: method, Depth: ast.NoDepth}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous(), Depth: ast.NoDepth}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous(), Depth: ast.NoDepth}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after expression")
		return &ast.Grouping{Expression: expr}
	default:
		panic(p.errorAt(p.peek(), errors.UnexpectedToken, "expect expression"))
	}
}
