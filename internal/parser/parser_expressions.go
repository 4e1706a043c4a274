package parser

import (
	"strings"

	"lolcode/internal/ast"
	"lolcode/internal/token"
)

// binaryOperators take exactly two operands separated by AN
var binaryOperators = map[token.TokenType]bool{
	token.SUM_OF:      true,
	token.DIFF_OF:     true,
	token.PRODUKT_OF:  true,
	token.QUOSHUNT_OF: true,
	token.MOD_OF:      true,
	token.BIGGR_OF:    true,
	token.SMALLR_OF:   true,
	token.BOTH_OF:     true,
	token.EITHER_OF:   true,
	token.WON_OF:      true,
}

// variadicOperators take one or more operands and end with MKAY
var variadicOperators = map[token.TokenType]bool{
	token.ALL_OF: true,
	token.ANY_OF: true,
	token.SMOOSH: true,
}

func isLiteral(t token.TokenType) bool {
	switch t {
	case token.NUMBR, token.NUMBAR, token.TROOF, token.NOOB, token.STRING_DELIM:
		return true
	default:
		return false
	}
}

// startsExpression reports whether a token of type t can begin an expression
func startsExpression(t token.TokenType) bool {
	switch {
	case isLiteral(t), binaryOperators[t], variadicOperators[t]:
		return true
	}
	switch t {
	case token.VARIDENT, token.NOT, token.BOTH_SAEM, token.DIFFRINT, token.MAEK, token.I_IZ:
		return true
	default:
		return false
	}
}

// parseExpression parses one prefix-notation expression starting at curToken
func (p *Parser) parseExpression() (ast.Expression, error) {
	t := p.curToken.Type
	switch {
	case isLiteral(t):
		return p.parseLiteral()
	case binaryOperators[t]:
		return p.parseBinary()
	case variadicOperators[t]:
		return p.parseVariadic()
	}

	switch t {
	case token.VARIDENT:
		ref := &ast.VariableRef{Token: p.curToken, Name: p.curToken.Literal}
		p.nextToken()
		return ref, nil
	case token.NOT:
		op := &ast.UnaryOp{Token: p.curToken, Operator: t}
		p.nextToken()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		op.Operand = operand
		return op, nil
	case token.BOTH_SAEM, token.DIFFRINT:
		return p.parseComparison()
	case token.MAEK:
		return p.parseTypecast()
	case token.I_IZ:
		return p.parseFunctionCall()
	default:
		return nil, p.errorf("expected expression, got %s", describe(p.curToken))
	}
}

// parseLiteral parses a NUMBR, NUMBAR, TROOF, NOOB or quoted YARN literal
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	switch p.curToken.Type {
	case token.NUMBR, token.NUMBAR, token.TROOF, token.NOOB:
		lit := &ast.Literal{Token: p.curToken, Value: p.curToken.Literal, Kind: p.curToken.Type}
		p.nextToken()
		return lit, nil
	case token.STRING_DELIM:
		return p.parseQuoted()
	default:
		return nil, p.errorf("expected literal, got %s", describe(p.curToken))
	}
}

// parseQuoted parses DELIM content* DELIM. Content split across physical
// lines by an unterminated quote is joined with newlines.
func (p *Parser) parseQuoted() (*ast.Literal, error) {
	open := p.curToken
	p.nextToken()

	parts := []string{}
	for p.curTokenIs(token.YARN) {
		parts = append(parts, p.curToken.Literal)
		p.nextToken()
	}
	if _, err := p.expect(token.STRING_DELIM); err != nil {
		return nil, err
	}

	value := strings.Join(parts, "\n")
	return &ast.Literal{
		Token: token.Token{Type: token.YARN, Literal: value, Line: open.Line},
		Value: value,
		Kind:  token.YARN,
	}, nil
}

// parseBinary parses: <op> <expr> AN <expr>
func (p *Parser) parseBinary() (*ast.BinaryOp, error) {
	op := &ast.BinaryOp{Token: p.curToken, Operator: p.curToken.Type}
	p.nextToken()

	left, right, err := p.parseOperandPair()
	if err != nil {
		return nil, err
	}
	op.Left, op.Right = left, right
	return op, nil
}

// parseComparison parses: BOTH SAEM|DIFFRINT <expr> AN <expr>
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	cmp := &ast.Comparison{Token: p.curToken, Operator: p.curToken.Type}
	p.nextToken()

	left, right, err := p.parseOperandPair()
	if err != nil {
		return nil, err
	}
	cmp.Left, cmp.Right = left, right
	return cmp, nil
}

func (p *Parser) parseOperandPair() (ast.Expression, ast.Expression, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(token.AN); err != nil {
		return nil, nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// parseVariadic parses: <op> <expr> (AN <expr>)* MKAY
func (p *Parser) parseVariadic() (*ast.VariadicOp, error) {
	op := &ast.VariadicOp{Token: p.curToken, Operator: p.curToken.Type}
	p.nextToken()

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	op.Operands = append(op.Operands, first)

	for p.curTokenIs(token.AN) {
		p.nextToken()
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		op.Operands = append(op.Operands, next)
	}

	if _, err := p.expect(token.MKAY); err != nil {
		return nil, err
	}
	return op, nil
}

// parseTypecast parses: MAEK <expr> A? <type>
func (p *Parser) parseTypecast() (*ast.Typecast, error) {
	tc := &ast.Typecast{Token: p.curToken}
	p.nextToken()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	tc.Value = value

	if p.curTokenIs(token.A) {
		p.nextToken()
	}
	if tc.Target, err = p.parseTypeName(); err != nil {
		return nil, err
	}
	return tc, nil
}

// parseTypeName consumes NUMBR, NUMBAR, YARN, TROOF or NOOB
func (p *Parser) parseTypeName() (string, error) {
	name, ok := token.TypeKeyword(p.curToken.Type)
	if !ok {
		return "", p.errorf("expected type name, got %s", describe(p.curToken))
	}
	p.nextToken()
	return name, nil
}

// parseFunctionCall parses: I IZ <name> (YR <expr> (AN YR <expr>)*)? MKAY
func (p *Parser) parseFunctionCall() (*ast.FunctionCall, error) {
	call := &ast.FunctionCall{Token: p.curToken, Arguments: []ast.Expression{}}
	p.nextToken()

	name, err := p.expect(token.FUNCIDENT)
	if err != nil {
		return nil, err
	}
	call.Name = name.Literal

	if p.curTokenIs(token.YR) {
		p.nextToken()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)

		for p.curTokenIs(token.AN) && p.peekTokenIs(token.YR) {
			p.nextToken()
			p.nextToken()
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, arg)
		}
	}

	if _, err := p.expect(token.MKAY); err != nil {
		return nil, err
	}
	return call, nil
}
