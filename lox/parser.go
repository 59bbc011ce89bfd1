package lox

import "errors"

type Parser struct {
	tokens  []Token
	current int
}

func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{
			Kind: TokenEOF,
			Line: line,
		})
	}
	return &Parser{
		tokens: tokens,
	}
}

// Parse parses a whole program.
// It stops at the first syntax error, after synchronizing to the next statement boundary.
func Parse(tokens []Token) ([]Stmt, error) {
	return NewParser(tokens).Parse()
}

// ParseAll parses a whole program, resuming after each syntax error.
// It returns the statements that parsed and all errors joined.
func ParseAll(tokens []Token) ([]Stmt, error) {
	return NewParser(tokens).ParseAll()
}

// ParseExpression parses a single expression spanning all tokens.
func ParseExpression(tokens []Token) (Expr, error) {
	return NewParser(tokens).ParseExpression()
}

func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) ParseAll() ([]Stmt, error) {
	var stmts []Stmt
	var errs []error
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errors.Join(errs...)
}

func (p *Parser) ParseExpression() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != TokenEOF {
		return nil, &ParseError{
			Kind:   UnexpectedToken,
			Line:   t.Line,
			Lexeme: t.Lexeme,
		}
	}
	return expr, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) advance() Token {
	t := p.tokens[p.current]
	if !p.atEnd() {
		p.current++
	}
	return t
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind TokenKind, errKind ParseErrorKind) error {
	if p.match(kind) {
		return nil
	}
	return &ParseError{
		Kind: errKind,
		Line: p.peek().Line,
	}
}

// synchronize discards tokens until just after a semicolon or just before a statement keyword.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		switch p.peek().Kind {
		case TokenSemicolon:
			p.advance()
			return
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	if !p.check(TokenIdentifier) {
		return nil, &ParseError{
			Kind: ExpectVariableName,
			Line: p.peek().Line,
		}
	}
	stmt := &VarStmt{
		Name: p.advance(),
	}
	if p.match(TokenEqual) {
		init, err := p.expression()
		if err != nil {
			return nil, err
		}
		stmt.Initializer = init
	}
	if err := p.expect(TokenSemicolon, ExpectSemicolonAfterVariableDeclaration); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(TokenPrint) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenSemicolon, ExpectSemicolonAfterValue); err != nil {
			return nil, err
		}
		return &PrintStmt{Expr: expr}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenSemicolon, ExpectSemicolonAfterExpression); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEqual) {
		return expr, nil
	}
	equals := p.advance()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if v, ok := expr.(*VariableExpr); ok {
		return &AssignExpr{
			Name:  v.Name,
			Value: value,
		}, nil
	}
	return nil, &ParseError{
		Kind:   UnexpectedToken,
		Line:   equals.Line,
		Lexeme: equals.Lexeme,
	}
}

// binary parses a left-associative level: operand (op operand)*
func (p *Parser) binary(operand func() (Expr, error), operators ...TokenKind) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.tokens[p.current-1]
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

func (p *Parser) unary() (Expr, error) {
	if !p.check(TokenBang) && !p.check(TokenMinus) {
		return p.primary()
	}
	operator := p.advance()
	right, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{
		Operator: operator,
		Right:    right,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	t := p.peek()
	switch t.Kind {

	case TokenTrue, TokenFalse, TokenNil, TokenNumber, TokenString:
		p.advance()
		return &LiteralExpr{
			Value: t.Literal,
		}, nil

	case TokenLeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(TokenRightParen) {
			return nil, &ParseError{
				Kind: RightParenExpected,
				Line: p.peek().Line,
			}
		}
		return &GroupingExpr{
			Inner: inner,
		}, nil

	case TokenIdentifier:
		p.advance()
		return &VariableExpr{
			Name: t,
		}, nil

	case TokenEOF:
		return nil, &ParseError{
			Kind: ExpressionExpected,
			Line: t.Line,
		}

	case TokenSemicolon:
		// left for synchronize to consume

	default:
		p.advance()
	}

	return nil, &ParseError{
		Kind:   UnexpectedToken,
		Line:   t.Line,
		Lexeme: t.Lexeme,
	}
}
