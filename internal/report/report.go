// Package report renders the artifacts exposed to collaborators: the token
// table and the final symbol table, as aligned text or YAML.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"lolcode/internal/object"
	"lolcode/internal/token"
)

// Format selects how tables are written
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config file
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, YAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or yaml)", s)
	}
}

// TokenRow is one lexeme with its classification label
type TokenRow struct {
	Lexeme         string `yaml:"lexeme"`
	Classification string `yaml:"classification"`
	Line           int    `yaml:"line"`
}

// TokenTable is the token sequence as displayed. Line Break rows are left
// out unless requested; HiddenLineBreaks counts the ones dropped.
type TokenTable struct {
	Rows             []TokenRow `yaml:"tokens"`
	HiddenLineBreaks int        `yaml:"hidden_linebreaks,omitempty"`
}

// Tokens builds the display table for toks
func Tokens(toks []token.Token, showLineBreaks bool) TokenTable {
	table := TokenTable{Rows: make([]TokenRow, 0, len(toks))}
	for _, tok := range toks {
		if tok.Type == token.LINEBREAK && !showLineBreaks {
			table.HiddenLineBreaks++
			continue
		}
		table.Rows = append(table.Rows, TokenRow{
			Lexeme:         tok.Literal,
			Classification: string(tok.Type),
			Line:           tok.Line,
		})
	}
	return table
}

// SymbolRow is one variable of the final table
type SymbolRow struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// Symbols lists every variable of env sorted by name, IT included
func Symbols(env *object.Environment) []SymbolRow {
	if env == nil {
		return nil
	}
	names := env.Names()
	rows := make([]SymbolRow, 0, len(names))
	for _, name := range names {
		val, _ := env.Get(name)
		rows = append(rows, SymbolRow{
			Name:  name,
			Type:  string(val.Type()),
			Value: object.Text(val),
		})
	}
	return rows
}

// WriteTokens writes table to w in the given format
func WriteTokens(w io.Writer, table TokenTable, f Format) error {
	if f == YAML {
		return writeYAML(w, table)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEXEME\tCLASSIFICATION\tLINE")
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Lexeme, row.Classification, row.Line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if table.HiddenLineBreaks > 0 {
		_, err := fmt.Fprintf(w, "(%d line breaks hidden)\n", table.HiddenLineBreaks)
		return err
	}
	return nil
}

// WriteSymbols writes rows to w in the given format
func WriteSymbols(w io.Writer, rows []SymbolRow, f Format) error {
	if f == YAML {
		return writeYAML(w, struct {
			Symbols []SymbolRow `yaml:"symbols"`
		}{rows})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tTYPE\tVALUE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Type, row.Value)
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
