package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lolcode/internal/config"
	"lolcode/internal/diag"
	"lolcode/internal/evaluator"
	"lolcode/internal/lexer"
	"lolcode/internal/parser"
	"lolcode/internal/report"
)

const usage = "Usage: lolcode [flags] <file.lol | ->"

// Exit codes
const (
	exitOK     = 0
	exitUsage  = 1
	exitSyntax = 2
)

var exitFn = os.Exit

func main() {
	exitFn(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lolcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML file with default options")
	tokens := fs.Bool("tokens", false, "print the token table before running")
	lineBreaks := fs.Bool("linebreaks", false, "include Line Break tokens in the token table")
	symbols := fs.Bool("symbols", false, "print the final symbol table")
	format := fs.String("format", "text", "table format: text or yaml")
	noRun := fs.Bool("no-run", false, "stop after parsing")
	prompt := fs.String("prompt", "", "GIMMEH prompt when reading from a terminal")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	opts := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "lolcode: %v\n", err)
			return exitUsage
		}
		opts = loaded
	}

	// Flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tokens":
			opts.Tokens = *tokens
		case "linebreaks":
			opts.LineBreaks = *lineBreaks
			if *lineBreaks {
				opts.Tokens = true
			}
		case "symbols":
			opts.Symbols = *symbols
		case "format":
			opts.Format = *format
		case "no-run":
			opts.NoRun = *noRun
		case "prompt":
			opts.Prompt = *prompt
		}
	})
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "lolcode: %v\n", err)
		return exitUsage
	}
	tableFormat, err := report.ParseFormat(opts.Format)
	if err != nil {
		fmt.Fprintf(stderr, "lolcode: %v\n", err)
		return exitUsage
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	source, name, err := readSource(path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "lolcode: %v\n", err)
		return exitUsage
	}

	toks, err := lexer.Tokenize(source)
	if err != nil {
		printCodeError(stderr, name, source, err)
		return exitSyntax
	}
	if opts.Tokens {
		if err := report.WriteTokens(stdout, report.Tokens(toks, opts.LineBreaks), tableFormat); err != nil {
			fmt.Fprintf(stderr, "lolcode: %v\n", err)
			return exitUsage
		}
	}

	program, err := parser.Parse(toks)
	if err != nil {
		printCodeError(stderr, name, source, err)
		return exitSyntax
	}
	if opts.NoRun {
		return exitOK
	}

	in, closeIn := newInputSource(stdin, opts.Prompt)
	defer closeIn()

	env := evaluator.Execute(program, func(line string) {
		_, _ = io.WriteString(stdout, line)
	}, in)

	if opts.Symbols {
		if err := report.WriteSymbols(stdout, report.Symbols(env), tableFormat); err != nil {
			fmt.Fprintf(stderr, "lolcode: %v\n", err)
			return exitUsage
		}
	}
	return exitOK
}

// readSource loads the program from path, or from stdin when path is "-".
// Files must carry the .lol extension.
func readSource(path string, stdin io.Reader) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	if !strings.HasSuffix(path, ".lol") {
		return "", "", fmt.Errorf("%s: not a .lol file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

// printCodeError writes a lexer or parser failure with its source line
func printCodeError(w io.Writer, name, source string, err error) {
	var ce *diag.CodeError
	if !errors.As(err, &ce) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	diag.Annotate(ce, source)
	fmt.Fprintln(w, diag.Render(ce))
	if ce.Line > 0 {
		fmt.Fprintf(w, "  --> %s:%d\n", name, ce.Line)
	}
}
