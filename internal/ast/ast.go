package ast

import (
	"bytes"
	"strings"

	"lolcode/internal/token"
)

// Node is the base interface for all AST nodes
// Every node must provide a TokenLiteral (for debugging) and String (for printing)
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement nodes are executed for effect
// Examples: I HAS A x, VISIBLE x, GTFO
type Statement interface {
	Node
	statementNode() // Dummy method to distinguish statements from expressions
}

// Expression nodes produce values
// Examples: 5, x, SUM OF x AN 1, I IZ f MKAY
type Expression interface {
	Node
	expressionNode() // Dummy method to distinguish expressions from statements
}

// Program is the root node of every AST
// WAZZUP declarations are flattened into Statements in source order
type Program struct {
	Token      token.Token // The HAI token
	Version    string      // Optional version after HAI, "" when absent
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return p.Token.Literal }

// String builds the program back into source code (useful for debugging)
func (p *Program) String() string {
	var out bytes.Buffer
	out.WriteString("HAI")
	if p.Version != "" {
		out.WriteString(" " + p.Version)
	}
	out.WriteString("\n")
	writeBlock(&out, p.Statements)
	out.WriteString("KTHXBYE")
	return out.String()
}

func writeBlock(out *bytes.Buffer, stmts []Statement) {
	for _, s := range stmts {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
}

func joinExpressions(exprs []Expression, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}

// VariableDecl represents: I HAS A <name> (ITZ <value>)?
type VariableDecl struct {
	Token token.Token // The I HAS A token
	Name  string
	Value Expression // nil when there is no initializer
}

func (vd *VariableDecl) statementNode()       {}
func (vd *VariableDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VariableDecl) String() string {
	s := "I HAS A " + vd.Name
	if vd.Value != nil {
		s += " ITZ " + vd.Value.String()
	}
	return s
}

// Assignment represents: <name> R <value>
type Assignment struct {
	Token token.Token // The identifier token
	Name  string
	Value Expression
}

func (as *Assignment) statementNode()       {}
func (as *Assignment) TokenLiteral() string { return as.Token.Literal }
func (as *Assignment) String() string       { return as.Name + " R " + as.Value.String() }

// Recast represents: <name> IS NOW A <type>
type Recast struct {
	Token  token.Token // The identifier token
	Name   string
	Target string
}

func (rc *Recast) statementNode()       {}
func (rc *Recast) TokenLiteral() string { return rc.Token.Literal }
func (rc *Recast) String() string       { return rc.Name + " IS NOW A " + rc.Target }

// Visible represents: VISIBLE <expr> <expr> ...
type Visible struct {
	Token  token.Token
	Values []Expression
}

func (v *Visible) statementNode()       {}
func (v *Visible) TokenLiteral() string { return v.Token.Literal }
func (v *Visible) String() string       { return "VISIBLE " + joinExpressions(v.Values, " AN ") }

// Gimmeh represents: GIMMEH <name>
type Gimmeh struct {
	Token token.Token
	Name  string
}

func (g *Gimmeh) statementNode()       {}
func (g *Gimmeh) TokenLiteral() string { return g.Token.Literal }
func (g *Gimmeh) String() string       { return "GIMMEH " + g.Name }

// ExpressionStatement is a bare expression whose value lands in IT
type ExpressionStatement struct {
	Token      token.Token // The first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string       { return es.Expression.String() }

// Literal is a NUMBR, NUMBAR, YARN, TROOF or NOOB constant.
// Kind is the literal token category; Value is the raw lexeme
// (string contents without the quotes).
type Literal struct {
	Token token.Token
	Value string
	Kind  token.TokenType
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) String() string {
	if l.Kind == token.YARN {
		return `"` + l.Value + `"`
	}
	return l.Value
}

// VariableRef reads a variable
type VariableRef struct {
	Token token.Token
	Name  string
}

func (vr *VariableRef) expressionNode()      {}
func (vr *VariableRef) TokenLiteral() string { return vr.Token.Literal }
func (vr *VariableRef) String() string       { return vr.Name }

// BinaryOp represents: <op> <left> AN <right> for arithmetic and boolean operators
type BinaryOp struct {
	Token    token.Token // The operator token
	Operator token.TokenType
	Left     Expression
	Right    Expression
}

func (b *BinaryOp) expressionNode()      {}
func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryOp) String() string {
	return string(b.Operator) + " " + b.Left.String() + " AN " + b.Right.String()
}

// UnaryOp represents: NOT <operand>
type UnaryOp struct {
	Token    token.Token
	Operator token.TokenType
	Operand  Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryOp) String() string       { return string(u.Operator) + " " + u.Operand.String() }

// VariadicOp represents: ALL OF / ANY OF / SMOOSH <expr> (AN <expr>)* MKAY
type VariadicOp struct {
	Token    token.Token
	Operator token.TokenType
	Operands []Expression
}

func (v *VariadicOp) expressionNode()      {}
func (v *VariadicOp) TokenLiteral() string { return v.Token.Literal }
func (v *VariadicOp) String() string {
	return string(v.Operator) + " " + joinExpressions(v.Operands, " AN ") + " MKAY"
}

// Comparison represents: BOTH SAEM / DIFFRINT <left> AN <right>
type Comparison struct {
	Token    token.Token
	Operator token.TokenType
	Left     Expression
	Right    Expression
}

func (c *Comparison) expressionNode()      {}
func (c *Comparison) TokenLiteral() string { return c.Token.Literal }
func (c *Comparison) String() string {
	return string(c.Operator) + " " + c.Left.String() + " AN " + c.Right.String()
}

// Typecast represents: MAEK <expr> A <type>
type Typecast struct {
	Token  token.Token
	Value  Expression
	Target string
}

func (tc *Typecast) expressionNode()      {}
func (tc *Typecast) TokenLiteral() string { return tc.Token.Literal }
func (tc *Typecast) String() string       { return "MAEK " + tc.Value.String() + " A " + tc.Target }

// FunctionCall represents: I IZ <name> (YR <arg> (AN YR <arg>)*)? MKAY
type FunctionCall struct {
	Token     token.Token
	Name      string
	Arguments []Expression
}

func (fc *FunctionCall) expressionNode()      {}
func (fc *FunctionCall) TokenLiteral() string { return fc.Token.Literal }
func (fc *FunctionCall) String() string {
	var out bytes.Buffer
	out.WriteString("I IZ " + fc.Name)
	for i, a := range fc.Arguments {
		if i > 0 {
			out.WriteString(" AN")
		}
		out.WriteString(" YR " + a.String())
	}
	out.WriteString(" MKAY")
	return out.String()
}

// ElifClause is one MEBBE branch
type ElifClause struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

// Conditional represents: O RLY? YA RLY ... (MEBBE ...)* (NO WAI ...)? OIC
// Branch selection happens at run time against IT
type Conditional struct {
	Token token.Token
	Then  []Statement
	Elifs []*ElifClause
	Else  []Statement
}

func (c *Conditional) statementNode()       {}
func (c *Conditional) TokenLiteral() string { return c.Token.Literal }
func (c *Conditional) String() string {
	var out bytes.Buffer
	out.WriteString("O RLY?\nYA RLY\n")
	writeBlock(&out, c.Then)
	for _, e := range c.Elifs {
		out.WriteString("MEBBE " + e.Condition.String() + "\n")
		writeBlock(&out, e.Body)
	}
	if len(c.Else) > 0 {
		out.WriteString("NO WAI\n")
		writeBlock(&out, c.Else)
	}
	out.WriteString("OIC")
	return out.String()
}

// Case is one OMG branch
type Case struct {
	Token token.Token
	Value *Literal
	Body  []Statement
}

// Switch represents: WTF? (OMG <literal> ...)+ (OMGWTF ...)? OIC
type Switch struct {
	Token   token.Token
	Cases   []*Case
	Default []Statement
}

func (s *Switch) statementNode()       {}
func (s *Switch) TokenLiteral() string { return s.Token.Literal }
func (s *Switch) String() string {
	var out bytes.Buffer
	out.WriteString("WTF?\n")
	for _, c := range s.Cases {
		out.WriteString("OMG " + c.Value.String() + "\n")
		writeBlock(&out, c.Body)
	}
	if len(s.Default) > 0 {
		out.WriteString("OMGWTF\n")
		writeBlock(&out, s.Default)
	}
	out.WriteString("OIC")
	return out.String()
}

// Loop represents:
// IM IN YR <label> UPPIN|NERFIN YR <var> (TIL|WILE <cond>)? ... IM OUTTA YR <label>
type Loop struct {
	Token         token.Token
	Label         string
	Step          token.TokenType // UPPIN or NERFIN
	Var           string
	Condition     Expression      // nil for an unconditional loop
	ConditionKind token.TokenType // TIL or WILE, "" without a condition
	Body          []Statement
}

func (l *Loop) statementNode()       {}
func (l *Loop) TokenLiteral() string { return l.Token.Literal }
func (l *Loop) String() string {
	var out bytes.Buffer
	out.WriteString("IM IN YR " + l.Label + " " + string(l.Step) + " YR " + l.Var)
	if l.Condition != nil {
		out.WriteString(" " + string(l.ConditionKind) + " " + l.Condition.String())
	}
	out.WriteString("\n")
	writeBlock(&out, l.Body)
	out.WriteString("IM OUTTA YR " + l.Label)
	return out.String()
}

// FunctionDef represents: HOW IZ I <name> (YR <param> (AN YR <param>)*)? ... IF U SAY SO
type FunctionDef struct {
	Token      token.Token
	Name       string
	Parameters []string
	Body       []Statement
}

func (fd *FunctionDef) statementNode()       {}
func (fd *FunctionDef) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDef) String() string {
	var out bytes.Buffer
	out.WriteString("HOW IZ I " + fd.Name)
	for i, p := range fd.Parameters {
		if i > 0 {
			out.WriteString(" AN")
		}
		out.WriteString(" YR " + p)
	}
	out.WriteString("\n")
	writeBlock(&out, fd.Body)
	out.WriteString("IF U SAY SO")
	return out.String()
}

// Return represents: FOUND YR <expr>
type Return struct {
	Token token.Token
	Value Expression
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) String() string       { return "FOUND YR " + r.Value.String() }

// Break represents: GTFO
type Break struct {
	Token token.Token
}

func (b *Break) statementNode()       {}
func (b *Break) TokenLiteral() string { return b.Token.Literal }
func (b *Break) String() string       { return "GTFO" }
