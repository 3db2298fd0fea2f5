package parser

import (
	"strconv"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/lexer"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/signature"
	"github.com/Brainrotlang/brainrot/token"
)

const (
	_ int = iota
	LOWEST
	CONDOR      // ||
	CONDAND     // &&
	EQUALS      // == or !=
	LESSGREATER // > or < or >= or <=
	SUM         // + or -
	PRODUCT     // * or / or %
	PREFIX      // -x or !x
	POSTFIX     // x++ or x--
)

var precedences = map[token.TokenType]int{
	token.OR:       CONDOR,
	token.AND:      CONDAND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.INC:      POSTFIX,
	token.DEC:      POSTFIX,
}

type (
	prefixParseFn func() ast.Node
	infixParseFn  func(ast.Node) ast.Node
)

type Parser struct {
	lexer     *lexer.Lexer
	curToken  token.Token
	peekToken token.Token

	Errors    object.Errors
	Functions FunctionTable

	// Second and subsequent definitions of the same function name. The
	// first definition wins; these are kept so that the analyzer can warn.
	Redefined []*ast.FunctionDef

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	// The declared return type of the function being parsed, NO_OBJ at the
	// top level and inside skibidi functions.
	returnType object.ObjectType
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{lexer: l, Functions: NewFunctionTable(), returnType: object.NO_OBJ}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:      p.parseIdentifier,
		token.INT_LIT:    p.parseIntegerLiteral,
		token.FLOAT_LIT:  p.parseFloatLiteral,
		token.DOUBLE_LIT: p.parseDoubleLiteral,
		token.CHAR_LIT:   p.parseCharLiteral,
		token.STRING_LIT: p.parseStringLiteral,
		token.TRUE:       p.parseBooleanLiteral,
		token.FALSE:      p.parseBooleanLiteral,
		token.BANG:       p.parsePrefixExpression,
		token.MINUS:      p.parsePrefixExpression,
		token.INC:        p.parsePrefixExpression,
		token.DEC:        p.parsePrefixExpression,
		token.LPAREN:     p.parseGroupedExpression,
		token.AURA:       p.parseSizeofExpression,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.INC:      p.parsePostfixExpression,
		token.DEC:      p.parsePostfixExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Throw(errorID string, tok token.Token, args ...any) {
	p.Errors = object.Throw(errorID, p.Errors, tok, args...)
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.Throw("parse/expect", p.peekToken, t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if precedence, ok := precedences[p.peekToken.Type]; ok {
		return precedence
	}
	return LOWEST
}

// ParseProgram parses a whole source file: a mixture of top-level
// statements, which the interpreter will execute in order, and function
// definitions, which go into the function table.
func (p *Parser) ParseProgram() (*ast.StatementList, FunctionTable) {
	program := &ast.StatementList{Token: p.curToken}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseTopLevelItem()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if stmt == nil && len(p.Errors) > 0 {
			p.recover()
		}
		p.nextToken()
	}
	p.Errors = append(p.lexer.Errors, p.Errors...)
	return program, p.Functions
}

func (p *Parser) parseTopLevelItem() ast.Node {
	if token.TokenTypeIsType(p.curToken.Type) || token.TokenTypeIsModifier(p.curToken.Type) {
		node := p.parseTyped(true)
		if fn, ok := node.(*ast.FunctionDef); ok {
			if !p.Functions.Add(fn) {
				p.Redefined = append(p.Redefined, fn)
			}
			return nil
		}
		return node
	}
	return p.parseStatement()
}

// recover skips ahead to the next plausible statement boundary after a
// parse error, so that one mistake doesn't drown the rest of the file in
// follow-on errors.
func (p *Parser) recover() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ---- Statements ----

func (p *Parser) parseStatement() ast.Node {
	switch p.curToken.Type {
	case token.EDGY:
		return p.parseIfStatement()
	case token.FLEX:
		return p.parseForStatement()
	case token.GOON:
		return p.parseWhileStatement()
	case token.MEWING:
		return p.parseDoWhileStatement()
	case token.OHIO:
		return p.parseSwitchStatement()
	case token.BRUH:
		stmt := &ast.BreakStatement{Token: p.curToken}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return stmt
	case token.BUSSIN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		return nil
	case token.AMOGUS, token.SIGMA, token.BASED, token.COLON:
		p.Throw("parse/statement", p.curToken)
		return nil
	default:
		if token.TokenTypeIsType(p.curToken.Type) || token.TokenTypeIsModifier(p.curToken.Type) {
			return p.parseTyped(false)
		}
		stmt := p.parseSimpleStatement()
		if stmt == nil || !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return stmt
	}
}

// parseTyped parses anything that begins with modifiers and/or a type
// keyword: a variable declaration, or (at the top level) a function
// definition.
func (p *Parser) parseTyped(topLevel bool) ast.Node {
	mods := object.Modifiers{}
	for token.TokenTypeIsModifier(p.curToken.Type) {
		switch p.curToken.Type {
		case token.DEADASS:
			mods.IsConst = true
		case token.NUT:
			mods.IsUnsigned = true
		case token.SCHIZO:
			mods.IsVolatile = true
		}
		p.nextToken()
	}
	if !token.TokenTypeIsType(p.curToken.Type) {
		p.Throw("parse/type", p.curToken)
		return nil
	}
	typeTok := p.curToken
	varType := typeFromToken(typeTok.Type)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	nameTok := p.curToken
	if p.peekTokenIs(token.LPAREN) {
		if !topLevel {
			p.Throw("parse/func/nested", nameTok)
			return nil
		}
		return p.parseFunctionDef(nameTok, varType)
	}
	if varType == object.NO_OBJ {
		p.Throw("parse/type", typeTok)
		return nil
	}
	return p.parseDeclarationTail(nameTok, varType, mods)
}

func (p *Parser) parseDeclarationTail(nameTok token.Token, varType object.ObjectType, mods object.Modifiers) ast.Node {
	decl := &ast.Declaration{Token: nameTok, Name: nameTok.Literal, VarType: varType, Mods: mods}
	for p.peekTokenIs(token.LBRACK) {
		p.nextToken()
		if !p.peekTokenIs(token.INT_LIT) {
			p.Throw("parse/array/dim", p.peekToken)
			return nil
		}
		p.nextToken()
		dim, err := strconv.Atoi(p.curToken.Literal)
		if err != nil || dim <= 0 {
			p.Throw("parse/array/dim", p.curToken)
			return nil
		}
		decl.Dims = append(decl.Dims, dim)
		if !p.expectPeek(token.RBRACK) {
			return nil
		}
	}
	if len(decl.Dims) > object.MaxDimensions {
		p.Throw("parse/array/dims", nameTok)
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		if len(decl.Dims) > 0 {
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			decl.ArrayInit = p.parseExpressionList(token.RBRACE)
		} else {
			p.nextToken()
			decl.Init = p.parseExpression(LOWEST)
			if decl.Init == nil {
				return nil
			}
		}
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return decl
}

func (p *Parser) parseFunctionDef(nameTok token.Token, returnType object.ObjectType) ast.Node {
	p.nextToken() // now on the LPAREN
	params, ok := p.parseParameters()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	outerReturnType := p.returnType
	p.returnType = returnType
	body := p.parseBlock()
	p.returnType = outerReturnType
	return &ast.FunctionDef{Token: nameTok, Name: nameTok.Literal,
		ReturnType: returnType, Params: params, Body: body}
}

func (p *Parser) parseParameters() (signature.Signature, bool) {
	sig := signature.Signature{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return sig, true
	}
	p.nextToken()
	for {
		mods := object.Modifiers{}
		for token.TokenTypeIsModifier(p.curToken.Type) {
			switch p.curToken.Type {
			case token.DEADASS:
				mods.IsConst = true
			case token.NUT:
				mods.IsUnsigned = true
			case token.SCHIZO:
				mods.IsVolatile = true
			}
			p.nextToken()
		}
		if !token.TokenTypeIsType(p.curToken.Type) || p.curToken.Type == token.SKIBIDI {
			p.Throw("parse/type", p.curToken)
			return sig, false
		}
		varType := typeFromToken(p.curToken.Type)
		if !p.expectPeek(token.IDENT) {
			return sig, false
		}
		sig = append(sig, signature.Parameter{VarName: p.curToken.Literal, VarType: varType, Mods: mods})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return sig, false
	}
	return sig, true
}

// parseBlock parses { statements }, entering with the current token on the
// opening brace and leaving it on the closing one.
func (p *Parser) parseBlock() *ast.StatementList {
	block := &ast.StatementList{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if stmt == nil && len(p.Errors) > 0 {
			p.recover()
		}
		p.nextToken()
	}
	return block
}

// parseSimpleStatement parses an assignment or a bare expression, without
// the trailing semicolon, so that it can serve both in statement position
// and in the header of a flex loop.
func (p *Parser) parseSimpleStatement() ast.Node {
	startTok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		switch expr.(type) {
		case *ast.Identifier, *ast.ArrayAccess:
		default:
			p.Throw("parse/target", p.peekToken)
			return nil
		}
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		return &ast.Assignment{Token: startTok, Target: expr, Value: value}
	}
	return &ast.ExpressionStatement{Token: startTok, Expr: expr}
}

func (p *Parser) parseIfStatement() ast.Node {
	stmt := &ast.IfStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil || !p.expectPeek(token.RPAREN) || !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Then = p.parseBlock()
	if p.peekTokenIs(token.AMOGUS) {
		p.nextToken()
		if p.peekTokenIs(token.EDGY) {
			p.nextToken()
			stmt.Else = p.parseIfStatement()
		} else {
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Node {
	stmt := &ast.ForStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		if token.TokenTypeIsType(p.curToken.Type) || token.TokenTypeIsModifier(p.curToken.Type) {
			stmt.Init = p.parseTyped(false) // eats its own semicolon
		} else {
			stmt.Init = p.parseSimpleStatement()
			if stmt.Init == nil || !p.expectPeek(token.SEMICOLON) {
				return nil
			}
		}
		if stmt.Init == nil {
			return nil
		}
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Cond = p.parseExpression(LOWEST)
		if stmt.Cond == nil || !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Incr = p.parseSimpleStatement()
		if stmt.Incr == nil || !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Node {
	stmt := &ast.WhileStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Cond = p.parseExpression(LOWEST)
	if stmt.Cond == nil || !p.expectPeek(token.RPAREN) || !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Node {
	stmt := &ast.DoWhileStatement{Token: p.curToken}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	if !p.expectPeek(token.GOON) || !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Cond = p.parseExpression(LOWEST)
	if stmt.Cond == nil || !p.expectPeek(token.RPAREN) || !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Node {
	stmt := &ast.SwitchStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Subject = p.parseExpression(LOWEST)
	if stmt.Subject == nil || !p.expectPeek(token.RPAREN) || !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.SIGMA:
			c := &ast.Case{Token: p.curToken}
			p.nextToken()
			c.Value = p.parseExpression(LOWEST)
			if c.Value == nil || !p.expectPeek(token.COLON) {
				return nil
			}
			c.Body = p.parseCaseBody()
			stmt.Cases = append(stmt.Cases, c)
		case token.BASED:
			c := &ast.Case{Token: p.curToken}
			if !p.expectPeek(token.COLON) {
				return nil
			}
			c.Body = p.parseCaseBody()
			stmt.Cases = append(stmt.Cases, c)
		default:
			p.Throw("parse/case", p.curToken)
			return nil
		}
	}
	return stmt
}

// parseCaseBody collects statements up to the next case label or the end
// of the ohio block, leaving the current token on whatever stopped it.
func (p *Parser) parseCaseBody() *ast.StatementList {
	body := &ast.StatementList{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.SIGMA) && !p.curTokenIs(token.BASED) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		}
		if stmt == nil && len(p.Errors) > 0 {
			p.recover()
		}
		p.nextToken()
	}
	return body
}

func (p *Parser) parseReturnStatement() ast.Node {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil || !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	if p.returnType == object.NO_OBJ {
		p.Throw("parse/return/void", stmt.Token)
		return nil
	}
	return stmt
}

// ---- Expressions ----

func (p *Parser) parseExpression(precedence int) ast.Node {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.Throw("parse/prefix", p.curToken)
		return nil
	}
	leftExp := prefix()
	for leftExp != nil && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

// parseIdentifier handles a bare name, a call f(...), and an array element
// a[i][j], all of which begin with an IDENT.
func (p *Parser) parseIdentifier() ast.Node {
	nameTok := p.curToken
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args := p.parseExpressionList(token.RPAREN)
		return &ast.CallExpression{Token: nameTok, Name: nameTok.Literal, Arguments: args}
	}
	if p.peekTokenIs(token.LBRACK) {
		access := &ast.ArrayAccess{Token: nameTok, Name: nameTok.Literal}
		for p.peekTokenIs(token.LBRACK) {
			p.nextToken()
			p.nextToken()
			index := p.parseExpression(LOWEST)
			if index == nil || !p.expectPeek(token.RBRACK) {
				return nil
			}
			access.Indices = append(access.Indices, index)
		}
		return access
	}
	return &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.Throw("parse/int", p.curToken)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: int32(value)}
}

func (p *Parser) parseFloatLiteral() ast.Node {
	value, err := strconv.ParseFloat(p.curToken.Literal, 32)
	if err != nil {
		p.Throw("parse/float", p.curToken)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: float32(value)}
}

func (p *Parser) parseDoubleLiteral() ast.Node {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.Throw("parse/float", p.curToken)
		return nil
	}
	return &ast.DoubleLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseCharLiteral() ast.Node {
	return &ast.CharLiteral{Token: p.curToken, Value: p.curToken.Literal[0]}
}

func (p *Parser) parseStringLiteral() ast.Node {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Node {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Node {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parsePostfixExpression(left ast.Node) ast.Node {
	return &ast.PostfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
}

func (p *Parser) parseInfixExpression(left ast.Node) ast.Node {
	expr := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseSizeofExpression() ast.Node {
	expr := &ast.SizeofExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Operand = p.parseExpression(LOWEST)
	if expr.Operand == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Node {
	list := []ast.Node{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	item := p.parseExpression(LOWEST)
	if item == nil {
		return nil
	}
	list = append(list, item)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		item = p.parseExpression(LOWEST)
		if item == nil {
			return nil
		}
		list = append(list, item)
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func typeFromToken(t token.TokenType) object.ObjectType {
	switch t {
	case token.RIZZ:
		return object.INTEGER_OBJ
	case token.SMOL:
		return object.SHORT_OBJ
	case token.GYATT:
		return object.FLOAT_OBJ
	case token.COOKED:
		return object.DOUBLE_OBJ
	case token.CAP:
		return object.BOOLEAN_OBJ
	case token.BUSS:
		return object.CHAR_OBJ
	case token.LIT:
		return object.STRING_OBJ
	}
	return object.NO_OBJ
}
