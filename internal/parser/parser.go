package parser

import (
	"fmt"
	"strings"

	"lolcode/internal/ast"
	"lolcode/internal/diag"
	"lolcode/internal/token"
)

// Parser is a recursive-descent parser over a LineBreak-filtered token slice.
// The first grammar violation aborts the whole parse; there is no recovery.
type Parser struct {
	tokens []token.Token // Input without LineBreak tokens
	pos    int           // Index of curToken

	curToken  token.Token // Current token under examination
	prevToken token.Token // Last consumed token, used for same-line checks
}

// New creates a new parser for the given token sequence
func New(tokens []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != token.LINEBREAK {
			filtered = append(filtered, tok)
		}
	}
	p := &Parser{tokens: filtered}
	p.curToken = p.peek(0)
	return p
}

// Parse turns a token sequence into a program tree or a located syntax error.
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// peek looks offset tokens ahead of the current one without consuming.
// Past the end it returns an EOF token on the last known line.
func (p *Parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= 0 && idx < len(p.tokens) {
		return p.tokens[idx]
	}
	line := 0
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return token.Token{Type: token.EOF, Line: line}
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	if p.pos < len(p.tokens) {
		p.pos++
	}
	p.curToken = p.peek(0)
}

// curTokenIs checks if current token matches
func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs checks if the token after the current one matches
func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peek(1).Type == t
}

// expect consumes the current token if it has type t, else fails at its line
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	if p.curTokenIs(t) {
		tok := p.curToken
		p.nextToken()
		return tok, nil
	}
	return p.curToken, p.errorf("expected %s, got %s", t, describe(p.curToken))
}

// errorf builds a syntax error located at the current token
func (p *Parser) errorf(format string, args ...any) error {
	return diag.Syntaxf(p.curToken.Line, format, args...)
}

// describe renders a token for error messages
func describe(tok token.Token) string {
	switch {
	case tok.Type == token.EOF:
		return "end of input"
	case tok.Literal == string(tok.Type):
		return string(tok.Type)
	default:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	}
}

func joinTypes(types []token.TokenType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " or ")
}

// ParseProgram parses HAI version? (WAZZUP ... BUHBYE)? statements KTHXBYE
// and requires the input to end there
func (p *Parser) ParseProgram() (*ast.Program, error) {
	hai, err := p.expect(token.HAI)
	if err != nil {
		return nil, err
	}
	program := &ast.Program{Token: hai, Statements: []ast.Statement{}}

	if (p.curTokenIs(token.NUMBAR) || p.curTokenIs(token.NUMBR)) && p.curToken.Line == hai.Line {
		program.Version = p.curToken.Literal
		p.nextToken()
	}

	if p.curTokenIs(token.WAZZUP) {
		decls, err := p.parseWazzup()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, decls...)
	}

	stmts, err := p.parseBlock(token.KTHXBYE)
	if err != nil {
		return nil, err
	}
	program.Statements = append(program.Statements, stmts...)

	if _, err := p.expect(token.KTHXBYE); err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.EOF) {
		return nil, p.errorf("unexpected %s after KTHXBYE", describe(p.curToken))
	}
	return program, nil
}

// parseWazzup parses the declaration section WAZZUP (I HAS A ...)* BUHBYE
func (p *Parser) parseWazzup() ([]ast.Statement, error) {
	p.nextToken()
	decls := []ast.Statement{}
	for !p.curTokenIs(token.BUHBYE) {
		if !p.curTokenIs(token.I_HAS_A) {
			return nil, p.errorf("expected I HAS A or BUHBYE, got %s", describe(p.curToken))
		}
		decl, err := p.parseVariableDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	p.nextToken()
	return decls, nil
}

// parseBlock collects statements until one of the terminators is current.
// The terminator itself is left for the caller to consume.
func (p *Parser) parseBlock(terminators ...token.TokenType) ([]ast.Statement, error) {
	stmts := []ast.Statement{}
	for {
		for _, t := range terminators {
			if p.curTokenIs(t) {
				return stmts, nil
			}
		}
		if p.curTokenIs(token.EOF) {
			return nil, p.errorf("expected %s, got end of input", joinTypes(terminators))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}
