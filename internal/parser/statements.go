package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

// declaration → classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	return p.recoverDeclaration(func() ast.Stmt {
		switch {
		case p.match(token.CLASS):
			return p.classDeclaration()
		case p.match(token.FUN):
			return p.function("function")
		case p.match(token.VAR):
			return p.varDeclaration()
		default:
			return p.statement()
		}
	})
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect class name")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superTok := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect superclass name")
		if superTok.Lexeme == name.Lexeme {
			panic(p.errorAt(superTok, errors.InheritFromSelf, "a class can't inherit from itself"))
		}
		superclass = &ast.Variable{Name: superTok, Depth: ast.NoDepth}
	}

	p.consume(token.LEFT_BRACE, errors.UnexpectedToken, "expect '{' before class body")

	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(token.RIGHT_BRACE, errors.UnexpectedToken, "expect '}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function → IDENT "(" params? ")" block
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect "+kind+" name")
	p.consume(token.LEFT_PAREN, errors.UnexpectedToken, "expect '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				panic(p.errorAt(p.peek(), errors.TooManyParameters, "can't have more than 255 parameters"))
			}
			params = append(params, p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after parameters")

	p.consume(token.LEFT_BRACE, errors.UnexpectedToken, "expect '{' before "+kind+" body")
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, errors.UnexpectedToken, "expect variable name")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, errors.UnexpectedToken, "expect ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block → "{" declaration* "}" ; the opening brace is consumed by the
// caller (statement/function), so this only consumes through the closer.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, errors.UnexpectedToken, "expect '}' after block")
	return stmts
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, errors.UnexpectedToken, "expect '(' after 'if'")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, errors.UnexpectedToken, "expect ';' after value")
	return &ast.PrintStmt{Expression: value}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, errors.UnexpectedToken, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, errors.UnexpectedToken, "expect '(' after 'while'")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt → "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugars into Block[init, While(cond, Block[body, incr])] per spec
// §4.1, with the increment's own block omitted when there's no
// increment clause.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, errors.UnexpectedToken, "expect '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, errors.UnexpectedToken, "expect ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, errors.UnexpectedToken, "expect ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: token.BoolLiteral(true)}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, errors.UnexpectedToken, "expect ';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}
