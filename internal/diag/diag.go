package diag

import (
	"fmt"
	"strings"
)

// Kind separates the two fatal error stages.
type Kind string

const (
	CommentError Kind = "comment"
	SyntaxError  Kind = "syntax"
)

// CodeError is a located lexer or parser failure.
type CodeError struct {
	Kind    Kind
	Message string
	Context string
	Line    int
}

func (e *CodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s error at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Commentf builds a comment-structure error.
func Commentf(line int, format string, args ...any) *CodeError {
	return &CodeError{Kind: CommentError, Message: fmt.Sprintf(format, args...), Line: line}
}

// Syntaxf builds a syntax error.
func Syntaxf(line int, format string, args ...any) *CodeError {
	return &CodeError{Kind: SyntaxError, Message: fmt.Sprintf(format, args...), Line: line}
}

// LocateContext returns the trimmed text of a 1-based source line.
func LocateContext(source string, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	ctx := strings.TrimSpace(strings.TrimRight(lines[line-1], "\r"))
	if ctx == "" {
		return "", false
	}
	return ctx, true
}

// Annotate fills Context from source when the error does not carry one yet.
func Annotate(err *CodeError, source string) *CodeError {
	if err == nil || strings.TrimSpace(err.Context) != "" {
		return err
	}
	if ctx, ok := LocateContext(source, err.Line); ok {
		err.Context = ctx
	}
	return err
}

// Render formats the error for a terminal, with the source line when known.
func Render(err *CodeError) string {
	msg := err.Error()
	if ctx := strings.TrimSpace(err.Context); ctx != "" {
		msg += fmt.Sprintf("\n    %d | %s", err.Line, ctx)
	}
	return msg
}
