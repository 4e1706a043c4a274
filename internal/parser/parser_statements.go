package parser

import (
	"lolcode/internal/ast"
	"lolcode/internal/diag"
	"lolcode/internal/token"
)

// parseStatement dispatches to specific statement parsers based on token type
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.I_HAS_A:
		return p.parseVariableDecl()
	case token.VISIBLE:
		return p.parseVisible()
	case token.GIMMEH:
		return p.parseGimmeh()
	case token.O_RLY:
		return p.parseConditional()
	case token.WTF:
		return p.parseSwitch()
	case token.IM_IN_YR:
		return p.parseLoop()
	case token.HOW_IZ_I:
		return p.parseFunctionDef()
	case token.FOUND_YR:
		return p.parseReturn()
	case token.GTFO:
		stmt := &ast.Break{Token: p.curToken}
		p.nextToken()
		return stmt, nil
	case token.VARIDENT:
		if p.peekTokenIs(token.R) {
			return p.parseAssignment()
		}
		if p.peekTokenIs(token.IS_NOW_A) {
			return p.parseRecast()
		}
	}

	if !startsExpression(p.curToken.Type) {
		return nil, p.errorf("unexpected %s", describe(p.curToken))
	}
	tok := p.curToken
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
}

// parseVariableDecl parses: I HAS A <name> (ITZ <expr>)?
func (p *Parser) parseVariableDecl() (*ast.VariableDecl, error) {
	stmt := &ast.VariableDecl{Token: p.curToken}
	p.nextToken()

	name, err := p.expect(token.VARIDENT)
	if err != nil {
		return nil, err
	}
	stmt.Name = name.Literal

	if p.curTokenIs(token.ITZ) {
		p.nextToken()
		stmt.Value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseAssignment parses: <name> R <expr>
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	stmt := &ast.Assignment{Token: p.curToken, Name: p.curToken.Literal}
	p.nextToken() // name
	p.nextToken() // R

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}

// parseRecast parses: <name> IS NOW A <type>
func (p *Parser) parseRecast() (*ast.Recast, error) {
	stmt := &ast.Recast{Token: p.curToken, Name: p.curToken.Literal}
	p.nextToken() // name
	p.nextToken() // IS NOW A

	target, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	stmt.Target = target
	return stmt, nil
}

// parseVisible parses VISIBLE followed by one or more expressions on the same
// source line, optionally separated by AN
func (p *Parser) parseVisible() (*ast.Visible, error) {
	stmt := &ast.Visible{Token: p.curToken}
	p.nextToken()

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Values = append(stmt.Values, first)

	for p.curToken.Line == p.prevToken.Line {
		if p.curTokenIs(token.AN) {
			p.nextToken()
		} else if !startsExpression(p.curToken.Type) {
			break
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, expr)
	}
	return stmt, nil
}

// parseGimmeh parses: GIMMEH <name>
func (p *Parser) parseGimmeh() (*ast.Gimmeh, error) {
	stmt := &ast.Gimmeh{Token: p.curToken}
	p.nextToken()

	name, err := p.expect(token.VARIDENT)
	if err != nil {
		return nil, err
	}
	stmt.Name = name.Literal
	return stmt, nil
}

// parseConditional parses the whole O RLY? chain; branch choice is left to
// the interpreter
func (p *Parser) parseConditional() (*ast.Conditional, error) {
	stmt := &ast.Conditional{Token: p.curToken, Elifs: []*ast.ElifClause{}, Else: []ast.Statement{}}
	p.nextToken()

	if _, err := p.expect(token.YA_RLY); err != nil {
		return nil, err
	}
	then, err := p.parseBlock(token.MEBBE, token.NO_WAI, token.OIC)
	if err != nil {
		return nil, err
	}
	stmt.Then = then

	for p.curTokenIs(token.MEBBE) {
		clause := &ast.ElifClause{Token: p.curToken}
		p.nextToken()
		if clause.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
		if clause.Body, err = p.parseBlock(token.MEBBE, token.NO_WAI, token.OIC); err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, clause)
	}

	if p.curTokenIs(token.NO_WAI) {
		p.nextToken()
		if stmt.Else, err = p.parseBlock(token.OIC); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.OIC); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSwitch parses: WTF? (OMG <literal> ...)+ (OMGWTF ...)? OIC
func (p *Parser) parseSwitch() (*ast.Switch, error) {
	stmt := &ast.Switch{Token: p.curToken, Default: []ast.Statement{}}
	p.nextToken()

	if !p.curTokenIs(token.OMG) {
		return nil, p.errorf("expected %s, got %s", token.OMG, describe(p.curToken))
	}
	for p.curTokenIs(token.OMG) {
		c := &ast.Case{Token: p.curToken}
		p.nextToken()

		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		c.Value = lit
		if c.Body, err = p.parseBlock(token.OMG, token.OMGWTF, token.OIC); err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	if p.curTokenIs(token.OMGWTF) {
		p.nextToken()
		body, err := p.parseBlock(token.OIC)
		if err != nil {
			return nil, err
		}
		stmt.Default = body
	}

	if _, err := p.expect(token.OIC); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseLoop parses a labelled loop; the closing label must equal the opening one
func (p *Parser) parseLoop() (*ast.Loop, error) {
	stmt := &ast.Loop{Token: p.curToken}
	p.nextToken()

	label, err := p.expect(token.LABEL)
	if err != nil {
		return nil, err
	}
	stmt.Label = label.Literal

	if !p.curTokenIs(token.UPPIN) && !p.curTokenIs(token.NERFIN) {
		return nil, p.errorf("expected UPPIN or NERFIN, got %s", describe(p.curToken))
	}
	stmt.Step = p.curToken.Type
	p.nextToken()

	if _, err := p.expect(token.YR); err != nil {
		return nil, err
	}
	v, err := p.expect(token.VARIDENT)
	if err != nil {
		return nil, err
	}
	stmt.Var = v.Literal

	if p.curTokenIs(token.TIL) || p.curTokenIs(token.WILE) {
		stmt.ConditionKind = p.curToken.Type
		p.nextToken()
		if stmt.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if stmt.Body, err = p.parseBlock(token.IM_OUTTA_YR); err != nil {
		return nil, err
	}
	p.nextToken() // IM OUTTA YR

	closing, err := p.expect(token.LABEL)
	if err != nil {
		return nil, err
	}
	if closing.Literal != stmt.Label {
		return nil, diag.Syntaxf(closing.Line, "loop label mismatch: IM IN YR %q closed by IM OUTTA YR %q", stmt.Label, closing.Literal)
	}
	return stmt, nil
}

// parseFunctionDef parses: HOW IZ I <name> (YR <param> (AN YR <param>)*)? ... IF U SAY SO
func (p *Parser) parseFunctionDef() (*ast.FunctionDef, error) {
	stmt := &ast.FunctionDef{Token: p.curToken, Parameters: []string{}}
	p.nextToken()

	name, err := p.expect(token.FUNCIDENT)
	if err != nil {
		return nil, err
	}
	stmt.Name = name.Literal

	if p.curTokenIs(token.YR) {
		p.nextToken()
		param, err := p.expect(token.VARIDENT)
		if err != nil {
			return nil, err
		}
		stmt.Parameters = append(stmt.Parameters, param.Literal)

		for p.curTokenIs(token.AN) && p.peekTokenIs(token.YR) {
			p.nextToken()
			p.nextToken()
			param, err := p.expect(token.VARIDENT)
			if err != nil {
				return nil, err
			}
			stmt.Parameters = append(stmt.Parameters, param.Literal)
		}
	}

	if stmt.Body, err = p.parseBlock(token.IF_U_SAY_SO); err != nil {
		return nil, err
	}
	p.nextToken() // IF U SAY SO
	return stmt, nil
}

// parseReturn parses: FOUND YR <expr>
func (p *Parser) parseReturn() (*ast.Return, error) {
	stmt := &ast.Return{Token: p.curToken}
	p.nextToken()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}
