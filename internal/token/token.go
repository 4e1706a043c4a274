package token

import "regexp"

// TokenType is a string alias for token types
// The value doubles as the human-readable classification shown in token tables
type TokenType string

// Token struct holds the type, literal value and the physical source line
// For example: Token{Type: NUMBR, Literal: "5", Line: 2}
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// Token constants - these are the vocabulary of our language
const (
	// Special
	UNKNOWN   TokenType = "Unknown"    // Unmatched run of non-whitespace
	LINEBREAK TokenType = "Line Break" // End of a physical line that produced tokens
	EOF       TokenType = "EOF"        // Synthesized by the parser, never emitted by the lexer

	// Program structure
	HAI     TokenType = "HAI"
	KTHXBYE TokenType = "KTHXBYE"
	WAZZUP  TokenType = "WAZZUP"
	BUHBYE  TokenType = "BUHBYE"

	// Variables
	I_HAS_A  TokenType = "I HAS A"
	ITZ      TokenType = "ITZ"
	R        TokenType = "R"
	IS_NOW_A TokenType = "IS NOW A"

	// Input/output
	VISIBLE TokenType = "VISIBLE"
	GIMMEH  TokenType = "GIMMEH"

	// Arithmetic
	SUM_OF      TokenType = "SUM OF"
	DIFF_OF     TokenType = "DIFF OF"
	PRODUKT_OF  TokenType = "PRODUKT OF"
	QUOSHUNT_OF TokenType = "QUOSHUNT OF"
	MOD_OF      TokenType = "MOD OF"
	BIGGR_OF    TokenType = "BIGGR OF"
	SMALLR_OF   TokenType = "SMALLR OF"

	// Boolean
	BOTH_OF   TokenType = "BOTH OF"
	EITHER_OF TokenType = "EITHER OF"
	WON_OF    TokenType = "WON OF"
	NOT       TokenType = "NOT"
	ALL_OF    TokenType = "ALL OF"
	ANY_OF    TokenType = "ANY OF"

	// Comparison, concatenation, casting
	BOTH_SAEM TokenType = "BOTH SAEM"
	DIFFRINT  TokenType = "DIFFRINT"
	SMOOSH    TokenType = "SMOOSH"
	MAEK      TokenType = "MAEK"
	A         TokenType = "A"

	// Conditionals and switch
	O_RLY  TokenType = "O RLY?"
	YA_RLY TokenType = "YA RLY"
	MEBBE  TokenType = "MEBBE"
	NO_WAI TokenType = "NO WAI"
	OIC    TokenType = "OIC"
	WTF    TokenType = "WTF?"
	OMG    TokenType = "OMG"
	OMGWTF TokenType = "OMGWTF"

	// Loops
	IM_IN_YR    TokenType = "IM IN YR"
	IM_OUTTA_YR TokenType = "IM OUTTA YR"
	UPPIN       TokenType = "UPPIN"
	NERFIN      TokenType = "NERFIN"
	YR          TokenType = "YR"
	TIL         TokenType = "TIL"
	WILE        TokenType = "WILE"

	// Functions and jumps
	HOW_IZ_I    TokenType = "HOW IZ I"
	IF_U_SAY_SO TokenType = "IF U SAY SO"
	I_IZ        TokenType = "I IZ"
	FOUND_YR    TokenType = "FOUND YR"
	GTFO        TokenType = "GTFO"

	// Separators
	AN   TokenType = "AN"
	MKAY TokenType = "MKAY"

	// Literals
	NUMBR        TokenType = "NUMBR Literal"
	NUMBAR       TokenType = "NUMBAR Literal"
	YARN         TokenType = "YARN Literal"
	TROOF        TokenType = "TROOF Literal"
	NOOB         TokenType = "NOOB Literal"
	STRING_DELIM TokenType = "String Delimiter"

	// Type names
	TYPE_NUMBR  TokenType = "NUMBR"
	TYPE_NUMBAR TokenType = "NUMBAR"
	TYPE_YARN   TokenType = "YARN"
	TYPE_TROOF  TokenType = "TROOF"

	// Identifiers
	VARIDENT  TokenType = "Variable Identifier"
	FUNCIDENT TokenType = "Function Identifier"
	LABEL     TokenType = "Loop Label"
)

// Pattern pairs an anchored expression with the category it produces.
type Pattern struct {
	Re   *regexp.Regexp
	Type TokenType
}

func pat(expr string, t TokenType) Pattern {
	return Pattern{Re: regexp.MustCompile(`^(?:` + expr + `)`), Type: t}
}

// Patterns is tried top to bottom and the first match wins.
// Multi-word keywords come before their single-word prefixes, literals before
// type keywords, and the generic identifier last.
var Patterns = []Pattern{
	pat(`I\s+HAS\s+A\b`, I_HAS_A),
	pat(`SUM\s+OF\b`, SUM_OF),
	pat(`DIFF\s+OF\b`, DIFF_OF),
	pat(`PRODUKT\s+OF\b`, PRODUKT_OF),
	pat(`QUOSHUNT\s+OF\b`, QUOSHUNT_OF),
	pat(`MOD\s+OF\b`, MOD_OF),
	pat(`BIGGR\s+OF\b`, BIGGR_OF),
	pat(`SMALLR\s+OF\b`, SMALLR_OF),
	pat(`BOTH\s+OF\b`, BOTH_OF),
	pat(`EITHER\s+OF\b`, EITHER_OF),
	pat(`WON\s+OF\b`, WON_OF),
	pat(`ALL\s+OF\b`, ALL_OF),
	pat(`ANY\s+OF\b`, ANY_OF),
	pat(`BOTH\s+SAEM\b`, BOTH_SAEM),
	pat(`IS\s+NOW\s+A\b`, IS_NOW_A),
	pat(`O\s+RLY\?`, O_RLY),
	pat(`YA\s+RLY\b`, YA_RLY),
	pat(`NO\s+WAI\b`, NO_WAI),
	pat(`IM\s+IN\s+YR\b`, IM_IN_YR),
	pat(`IM\s+OUTTA\s+YR\b`, IM_OUTTA_YR),
	pat(`HOW\s+IZ\s+I\b`, HOW_IZ_I),
	pat(`IF\s+U\s+SAY\s+SO\b`, IF_U_SAY_SO),
	pat(`I\s+IZ\b`, I_IZ),
	pat(`FOUND\s+YR\b`, FOUND_YR),
	pat(`WTF\?`, WTF),

	pat(`HAI\b`, HAI),
	pat(`KTHXBYE\b`, KTHXBYE),
	pat(`WAZZUP\b`, WAZZUP),
	pat(`BUHBYE\b`, BUHBYE),
	pat(`ITZ\b`, ITZ),
	pat(`R\b`, R),
	pat(`VISIBLE\b`, VISIBLE),
	pat(`GIMMEH\b`, GIMMEH),
	pat(`DIFFRINT\b`, DIFFRINT),
	pat(`NOT\b`, NOT),
	pat(`SMOOSH\b`, SMOOSH),
	pat(`MAEK\b`, MAEK),
	pat(`MEBBE\b`, MEBBE),
	pat(`OIC\b`, OIC),
	pat(`OMG\b`, OMG),
	pat(`OMGWTF\b`, OMGWTF),
	pat(`UPPIN\b`, UPPIN),
	pat(`NERFIN\b`, NERFIN),
	pat(`YR\b`, YR),
	pat(`TIL\b`, TIL),
	pat(`WILE\b`, WILE),
	pat(`GTFO\b`, GTFO),
	pat(`AN\b`, AN),
	pat(`MKAY\b`, MKAY),

	pat(`-?\d+\.\d+`, NUMBAR),
	pat(`-?\d+`, NUMBR),
	pat(`(?:WIN|FAIL)\b`, TROOF),
	pat(`NOOB\b`, NOOB),

	pat(`NUMBR\b`, TYPE_NUMBR),
	pat(`NUMBAR\b`, TYPE_NUMBAR),
	pat(`YARN\b`, TYPE_YARN),
	pat(`TROOF\b`, TYPE_TROOF),
	pat(`A\b`, A),

	pat(`[a-zA-Z][a-zA-Z0-9_]*`, VARIDENT),
}

// IsIdentifier reports whether t is one of the three identifier categories.
func IsIdentifier(t TokenType) bool {
	return t == VARIDENT || t == FUNCIDENT || t == LABEL
}

// TypeKeyword maps a token usable as a cast target to its type name.
// NOOB lexes as a literal but also names the null type.
func TypeKeyword(t TokenType) (string, bool) {
	switch t {
	case TYPE_NUMBR:
		return "NUMBR", true
	case TYPE_NUMBAR:
		return "NUMBAR", true
	case TYPE_YARN:
		return "YARN", true
	case TYPE_TROOF:
		return "TROOF", true
	case NOOB:
		return "NOOB", true
	default:
		return "", false
	}
}

// ClassifyIdentifier picks the identifier category for a generic match based
// on the category of the token emitted just before it.
func ClassifyIdentifier(prev TokenType) TokenType {
	switch prev {
	case HOW_IZ_I, I_IZ:
		return FUNCIDENT
	case IM_IN_YR, IM_OUTTA_YR:
		return LABEL
	default:
		return VARIDENT
	}
}
