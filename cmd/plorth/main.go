// Command plorth is a minimal embedder of the plorth package: a REPL and
// a script runner. The REPL and argument parsing are themselves outside
// the core's scope; this is a thin demonstration of the embedding API.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/plorth/interpreter"
)

type stdOutput struct {
	w io.Writer
}

func (o stdOutput) Write(v plorth.Value) error {
	_, err := fmt.Fprintln(o.w, v.String())
	return err
}

type stdInput struct {
	r *bufio.Reader
}

func (stdInput) Read() (plorth.Value, error) {
	return nil, io.EOF
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rt := plorth.NewRuntime(stdInput{bufio.NewReader(os.Stdin)}, stdOutput{os.Stdout})

	switch len(args) {
	case 0:
		return runPrompt(rt)
	case 1:
		return runFile(rt, args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: plorth [script]")
		return 64
	}
}

func runFile(rt *plorth.Runtime, path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 74
	}

	ctx := plorth.NewContext(rt)
	if !execSource(ctx, string(source), path) {
		reportError(ctx)
		return 1
	}
	return 0
}

func runPrompt(rt *plorth.Runtime) int {
	rl, err := readline.New("plorth> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 74
	}
	defer rl.Close()

	ctx := plorth.NewContext(rt)
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 74
		}
		if !execSource(ctx, line, "<repl>") {
			reportError(ctx)
		}
	}
}

func execSource(ctx *plorth.Context, source, file string) bool {
	quote, err := plorth.Compile(source, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return plorth.Run(ctx, quote)
}

func reportError(ctx *plorth.Context) {
	if e := ctx.Error(); e != nil {
		fmt.Fprintln(os.Stderr, e.String())
		ctx.ClearError()
	}
}
