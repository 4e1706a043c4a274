package evaluator

import (
	"lolcode/internal/ast"
	"lolcode/internal/object"
)

// Sink receives one fully rendered VISIBLE line, trailing newline included
type Sink func(line string)

// Source supplies one line of input per GIMMEH. ok=false means no input,
// which is stored as NOOB.
type Source func() (line string, ok bool)

// Interpreter executes one program at a time. It owns the global symbol
// table and the function table for the duration of Execute.
type Interpreter struct {
	out Sink
	in  Source

	globals   *object.Environment
	functions map[string]*ast.FunctionDef
}

// New creates an interpreter writing to out and reading from in.
// Either callback may be nil: output is then discarded and input is empty.
func New(out Sink, in Source) *Interpreter {
	if out == nil {
		out = func(string) {}
	}
	if in == nil {
		in = func() (string, bool) { return "", false }
	}
	return &Interpreter{out: out, in: in}
}

// Execute runs program against fresh tables and returns the final global
// symbol table. A GTFO or FOUND YR that reaches top level stops the program.
func (i *Interpreter) Execute(program *ast.Program) *object.Environment {
	i.globals = object.NewEnvironment()
	i.functions = make(map[string]*ast.FunctionDef)
	if program == nil {
		return i.globals
	}

	// Functions are bound before anything runs so calls may refer forward
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*ast.FunctionDef); ok {
			i.functions[fn.Name] = fn
		}
	}

	i.execBlock(program.Statements, i.globals)
	return i.globals
}

// Globals is the symbol table of the last Execute, or nil before the first run
func (i *Interpreter) Globals() *object.Environment { return i.globals }

// Execute is a convenience wrapper around New(out, in).Execute(program)
func Execute(program *ast.Program, out Sink, in Source) *object.Environment {
	return New(out, in).Execute(program)
}

// signal is the kind of non-local exit a statement produced
type signal int

const (
	signalNone signal = iota
	signalBreak
	signalReturn
)

// outcome is the result of executing a statement. value is set only for
// signalReturn.
type outcome struct {
	signal signal
	value  object.Object
}

var normal = outcome{}

func (i *Interpreter) execBlock(stmts []ast.Statement, env *object.Environment) outcome {
	for _, stmt := range stmts {
		if res := i.exec(stmt, env); res.signal != signalNone {
			return res
		}
	}
	return normal
}
