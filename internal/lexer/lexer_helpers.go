package lexer

import (
	"regexp"
	"strings"

	"lolcode/internal/diag"
	"lolcode/internal/token"
)

var (
	lineComment = regexp.MustCompile(`^(?i)BTW\b`)
	blockOpen   = regexp.MustCompile(`^(?i)OBTW\b`)
	blockClose  = regexp.MustCompile(`^(?i)TLDR\b`)
)

// blockComment updates the OBTW/TLDR state for a trimmed line and reports
// whether the line is consumed by comment handling
func (l *Lexer) blockComment(line string, lineNum int) (bool, error) {
	switch {
	case blockOpen.MatchString(line):
		if l.inComment {
			return false, diag.Commentf(lineNum, "nested OBTW at line %d (block opened at line %d)", lineNum, l.commentStart)
		}
		l.inComment = true
		l.commentStart = lineNum
		return true, nil
	case blockClose.MatchString(line):
		if !l.inComment {
			return false, diag.Commentf(lineNum, "TLDR at line %d without an open OBTW", lineNum)
		}
		l.inComment = false
		return true, nil
	}
	return l.inComment, nil
}

// readString emits the content up to the closing quote as one YARN token,
// then the closing delimiter. Without a closing quote the rest of the line
// becomes content and the lexer stays in string mode.
func (l *Lexer) readString(line string, pos int, lineNum int) int {
	end := strings.IndexByte(line[pos:], '"')
	if end < 0 {
		if pos < len(line) {
			l.emit(token.YARN, line[pos:], lineNum)
		}
		return len(line)
	}
	l.emit(token.YARN, line[pos:pos+end], lineNum)
	l.emit(token.STRING_DELIM, `"`, lineNum)
	l.inString = false
	return pos + end + 1
}

// isWhitespace checks for the blanks that separate tokens on a line
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}
