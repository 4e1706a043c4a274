package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"lolcode/internal/evaluator"
)

var isTerminalFn = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// newInputSource returns the GIMMEH source for stdin and a func releasing it.
// A terminal gets line editing with history; anything else is read line by line.
func newInputSource(stdin io.Reader, prompt string) (evaluator.Source, func()) {
	if f, ok := stdin.(*os.File); ok && isTerminalFn(f) {
		return linerSource(prompt)
	}
	return readerSource(stdin), func() {}
}

func linerSource(prompt string) (evaluator.Source, func()) {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	source := func() (string, bool) {
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", false
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		return line, true
	}
	return source, func() { _ = ln.Close() }
}

func readerSource(r io.Reader) evaluator.Source {
	br := bufio.NewReader(r)
	return func() (string, bool) {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		return strings.TrimRight(line, "\r\n"), true
	}
}
