// Package plorth is the embedding API: construct a runtime, construct a
// context, compile source text into a quote, and execute it (§6.1).
package plorth

import (
	"github.com/plorth/interpreter/internal/compiler"
	"github.com/plorth/interpreter/internal/interpreter"
	"github.com/plorth/interpreter/internal/parser"
	"github.com/plorth/interpreter/internal/scanner"
	"github.com/plorth/interpreter/internal/token"
)

// Re-exported so embedders need only import this package for everyday use.
type (
	Value    = interpreter.Value
	Runtime  = interpreter.Runtime
	Context  = interpreter.Context
	Quote    = interpreter.Quote
	Error    = interpreter.Error
	Input    = interpreter.Input
	Output   = interpreter.Output
	Position = token.Position
)

// NewRuntime constructs a runtime with optional input/output handles and
// wires its compiler hook to this package's scanner/parser/compiler
// pipeline (§6.1).
func NewRuntime(input Input, output Output) *Runtime {
	rt := interpreter.NewRuntime(input, output)
	rt.Compile = compileSource
	return rt
}

// NewContext constructs a context bound to rt.
func NewContext(rt *Runtime) *Context {
	return interpreter.NewContext(rt)
}

// Compile compiles source text into a quote. Syntax errors are reported
// as a Go error; the caller typically wraps them into the context's error
// slot via Context.SetErr when compiling on behalf of running code.
func Compile(source, file string) (*Quote, error) {
	return compileSource(source, file, Position{File: file, Line: 1, Column: 1})
}

func compileSource(source, file string, pos token.Position) (*Quote, error) {
	line, column := pos.Line, pos.Column
	s := scanner.New(source, file, line, column)
	tokens, err := s.Scan()
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)
	nodes, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return compiler.CompileQuote(nodes)
}

// Run executes v (typically a compiled quote) against ctx, returning
// whether it completed without leaving an error in the context's error
// slot. A quote is called; any other value is executed with Exec.
func Run(ctx *Context, v Value) bool {
	if q, ok := v.(*Quote); ok {
		return q.Call(ctx)
	}
	return interpreter.Exec(ctx, v)
}

// Eval evaluates v against ctx functionally, per §4.6's eval entry point.
func Eval(ctx *Context, v Value) (Value, bool) {
	return interpreter.Eval(ctx, v)
}
