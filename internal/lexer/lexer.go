package lexer

import (
	"strings"

	"lolcode/internal/diag"
	"lolcode/internal/token"
)

// Lexer holds the state while tokenizing input
// Source is consumed one physical line at a time; the only state carried
// across lines is block-comment nesting and an unterminated string literal
type Lexer struct {
	input  string        // The source code
	tokens []token.Token // Tokens emitted so far

	inString     bool // Between an opening and a closing quote
	inComment    bool // Between OBTW and TLDR
	commentStart int  // Line of the OBTW that opened the current block
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize converts source text into an ordered token sequence.
// It fails only on malformed block comments.
func Tokenize(input string) ([]token.Token, error) {
	return New(input).Tokenize()
}

// Tokenize runs the lexer over the whole input
// A LineBreak follows every physical line that produced at least one token,
// except the last one in the stream
func (l *Lexer) Tokenize() ([]token.Token, error) {
	l.tokens = nil
	l.inString, l.inComment = false, false
	lines := strings.Split(l.input, "\n")

	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimSpace(raw)

		if !l.inString {
			skip, err := l.blockComment(line, lineNum)
			if err != nil {
				return nil, err
			}
			if skip {
				continue
			}
		}

		before := len(l.tokens)
		l.scanLine(line, lineNum)
		if len(l.tokens) > before {
			l.emit(token.LINEBREAK, `\n`, lineNum)
		}
	}

	if l.inComment {
		return nil, diag.Commentf(l.commentStart, "unterminated block comment: OBTW at line %d has no TLDR", l.commentStart)
	}

	if n := len(l.tokens); n > 0 && l.tokens[n-1].Type == token.LINEBREAK {
		l.tokens = l.tokens[:n-1]
	}
	return l.tokens, nil
}

// scanLine tokenizes one uncommented physical line left to right
func (l *Lexer) scanLine(line string, lineNum int) {
	pos := 0
	for pos < len(line) {
		if l.inString {
			pos = l.readString(line, pos, lineNum)
			continue
		}

		ch := line[pos]
		if isWhitespace(ch) {
			pos++
			continue
		}

		if ch == '"' {
			l.emit(token.STRING_DELIM, `"`, lineNum)
			l.inString = true
			pos++
			continue
		}

		// BTW drops the rest of the line
		if lineComment.MatchString(line[pos:]) {
			return
		}

		if typ, lexeme, ok := matchPattern(line[pos:]); ok {
			if typ == token.VARIDENT {
				typ = token.ClassifyIdentifier(l.prevType())
			}
			l.emit(typ, lexeme, lineNum)
			pos += len(lexeme)
			continue
		}

		// Nothing matched: swallow up to the next whitespace
		end := pos + 1
		for end < len(line) && !isWhitespace(line[end]) {
			end++
		}
		l.emit(token.UNKNOWN, line[pos:end], lineNum)
		pos = end
	}
}

// matchPattern tries the ordered pattern table against the start of text
func matchPattern(text string) (token.TokenType, string, bool) {
	for _, pt := range token.Patterns {
		if loc := pt.Re.FindStringIndex(text); loc != nil && loc[1] > 0 {
			return pt.Type, text[:loc[1]], true
		}
	}
	return "", "", false
}

func (l *Lexer) emit(t token.TokenType, literal string, line int) {
	l.tokens = append(l.tokens, token.Token{Type: t, Literal: literal, Line: line})
}

// prevType is the category of the most recently emitted token, or "" at the start
func (l *Lexer) prevType() token.TokenType {
	if len(l.tokens) == 0 {
		return ""
	}
	return l.tokens[len(l.tokens)-1].Type
}
