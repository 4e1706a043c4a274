package lexer

import (
	"errors"
	"strings"
	"testing"

	"lolcode/internal/diag"
	"lolcode/internal/token"
)

type expectedToken struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d (%v)", len(tests), len(toks), toks)
	}
	for i, tt := range tests {
		tok := toks[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - token type wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d", i, tt.expectedLine, tok.Line)
		}
	}
}

func TestTokenizeProgram(t *testing.T) {
	input := `HAI 1.2
I HAS A x ITZ 5
VISIBLE SUM OF x AN 10
KTHXBYE`

	checkTokens(t, input, []expectedToken{
		{token.HAI, "HAI", 1},
		{token.NUMBAR, "1.2", 1},
		{token.LINEBREAK, `\n`, 1},
		{token.I_HAS_A, "I HAS A", 2},
		{token.VARIDENT, "x", 2},
		{token.ITZ, "ITZ", 2},
		{token.NUMBR, "5", 2},
		{token.LINEBREAK, `\n`, 2},
		{token.VISIBLE, "VISIBLE", 3},
		{token.SUM_OF, "SUM OF", 3},
		{token.VARIDENT, "x", 3},
		{token.AN, "AN", 3},
		{token.NUMBR, "10", 3},
		{token.LINEBREAK, `\n`, 3},
		{token.KTHXBYE, "KTHXBYE", 4},
	})
}

func TestIdentifierClassification(t *testing.T) {
	input := `HOW IZ I sq YR n
IM IN YR loop UPPIN YR i
IM OUTTA YR loop
I IZ sq YR i MKAY`

	checkTokens(t, input, []expectedToken{
		{token.HOW_IZ_I, "HOW IZ I", 1},
		{token.FUNCIDENT, "sq", 1},
		{token.YR, "YR", 1},
		{token.VARIDENT, "n", 1},
		{token.LINEBREAK, `\n`, 1},
		{token.IM_IN_YR, "IM IN YR", 2},
		{token.LABEL, "loop", 2},
		{token.UPPIN, "UPPIN", 2},
		{token.YR, "YR", 2},
		{token.VARIDENT, "i", 2},
		{token.LINEBREAK, `\n`, 2},
		{token.IM_OUTTA_YR, "IM OUTTA YR", 3},
		{token.LABEL, "loop", 3},
		{token.LINEBREAK, `\n`, 3},
		{token.I_IZ, "I IZ", 4},
		{token.FUNCIDENT, "sq", 4},
		{token.YR, "YR", 4},
		{token.VARIDENT, "i", 4},
		{token.MKAY, "MKAY", 4},
	})
}

func TestStringLiteralsAreOpaque(t *testing.T) {
	input := `VISIBLE "SUM OF BTW" AN ""`

	checkTokens(t, input, []expectedToken{
		{token.VISIBLE, "VISIBLE", 1},
		{token.STRING_DELIM, `"`, 1},
		{token.YARN, "SUM OF BTW", 1},
		{token.STRING_DELIM, `"`, 1},
		{token.AN, "AN", 1},
		{token.STRING_DELIM, `"`, 1},
		{token.YARN, "", 1},
		{token.STRING_DELIM, `"`, 1},
	})
}

func TestUnterminatedStringContinuesOnNextLine(t *testing.T) {
	input := "VISIBLE \"abc\ndef\" x"

	checkTokens(t, input, []expectedToken{
		{token.VISIBLE, "VISIBLE", 1},
		{token.STRING_DELIM, `"`, 1},
		{token.YARN, "abc", 1},
		{token.LINEBREAK, `\n`, 1},
		{token.YARN, "def", 2},
		{token.STRING_DELIM, `"`, 2},
		{token.VARIDENT, "x", 2},
	})
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `HAI
BTW whole line
VISIBLE 1 btw trailing
OBTW
  VISIBLE 2
TLDR

KTHXBYE`

	checkTokens(t, input, []expectedToken{
		{token.HAI, "HAI", 1},
		{token.LINEBREAK, `\n`, 1},
		{token.VISIBLE, "VISIBLE", 3},
		{token.NUMBR, "1", 3},
		{token.LINEBREAK, `\n`, 3},
		{token.KTHXBYE, "KTHXBYE", 8},
	})
}

func TestUnknownTokensAreSwallowed(t *testing.T) {
	input := "VISIBLE @#! x"

	checkTokens(t, input, []expectedToken{
		{token.VISIBLE, "VISIBLE", 1},
		{token.UNKNOWN, "@#!", 1},
		{token.VARIDENT, "x", 1},
	})
}

func TestBlockCommentErrors(t *testing.T) {
	tests := []struct {
		input    string
		line     int
		contains string
	}{
		{"HAI\nOBTW\nOBTW\nTLDR\nKTHXBYE", 3, "block opened at line 2"},
		{"HAI\nTLDR\nKTHXBYE", 2, "without an open OBTW"},
		{"HAI\nOBTW\nKTHXBYE", 2, "unterminated"},
	}

	for i, tt := range tests {
		_, err := Tokenize(tt.input)
		if err == nil {
			t.Fatalf("tests[%d] expected comment error, got none", i)
		}
		var ce *diag.CodeError
		if !errors.As(err, &ce) {
			t.Fatalf("tests[%d] expected *diag.CodeError, got=%T", i, err)
		}
		if ce.Kind != diag.CommentError {
			t.Fatalf("tests[%d] kind wrong. expected=%q, got=%q", i, diag.CommentError, ce.Kind)
		}
		if ce.Line != tt.line {
			t.Fatalf("tests[%d] line wrong. expected=%d, got=%d", i, tt.line, ce.Line)
		}
		if !strings.Contains(ce.Message, tt.contains) {
			t.Fatalf("tests[%d] message %q missing %q", i, ce.Message, tt.contains)
		}
	}
}

func TestKeywordOnlyProgramHasNoUnknownTokens(t *testing.T) {
	input := `HAI
WAZZUP
I HAS A flag ITZ WIN
BUHBYE
flag
O RLY?
YA RLY
VISIBLE SMOOSH "a" AN 1.5 AN NOOB MKAY
MEBBE BOTH SAEM 1 AN 2
VISIBLE MAEK 3 A YARN
NO WAI
GTFO
OIC
WTF?
OMG 1
VISIBLE "one"
OMGWTF
VISIBLE NOT FAIL
OIC
flag IS NOW A NUMBR
KTHXBYE`

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	for i, tok := range toks {
		if tok.Type == token.UNKNOWN {
			t.Fatalf("toks[%d] unexpected Unknown token %q", i, tok.Literal)
		}
	}
	if last := toks[len(toks)-1]; last.Type != token.KTHXBYE {
		t.Fatalf("last token wrong. expected=%q, got=%q", token.KTHXBYE, last.Type)
	}
}

func TestEmptyInput(t *testing.T) {
	toks, err := Tokenize("\n\n   \n")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got=%v", toks)
	}
}
