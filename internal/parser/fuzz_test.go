package parser

import (
	"testing"

	"lolcode/internal/lexer"
)

// FuzzParserNoPanic ensures parsing never panics for arbitrary input.
func FuzzParserNoPanic(f *testing.F) {
	seeds := []string{
		"",
		"HAI\nKTHXBYE",
		"HAI 1.2\nWAZZUP\nI HAS A x ITZ 5\nBUHBYE\nVISIBLE x\nKTHXBYE",
		"HAI\nI HAS A x ITZ SUM OF 1 AN\nKTHXBYE",
		"HAI\nBOTH SAEM 1 AN 1\nO RLY?\nYA RLY\nVISIBLE 1\nNO WAI\nOIC\nKTHXBYE",
		"HAI\nWTF?\nOMG 1\nGTFO\nOMGWTF\nOIC\nKTHXBYE",
		"HAI\nIM IN YR l UPPIN YR i TIL BOTH SAEM i AN 3\nIM OUTTA YR l\nKTHXBYE",
		"HAI\nHOW IZ I f YR a\nFOUND YR a\nIF U SAY SO\nI IZ f YR 1 MKAY\nKTHXBYE",
		"HAI\nVISIBLE SMOOSH \"a\" AN \"b\nKTHXBYE",
		"HAI\nMAEK\nKTHXBYE",
		"HAI\nIM IN YR a UPPIN YR i\nIM OUTTA YR b\nKTHXBYE",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("parser panicked for input %q: %v", input, r)
			}
		}()

		toks, err := lexer.Tokenize(input)
		if err != nil {
			return
		}
		program, err := Parse(toks)
		if err == nil {
			_ = program.String()
		}
	})
}
