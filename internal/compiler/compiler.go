// Package compiler walks a parser.Node AST and produces the interpreter's
// value tree, per §4.2.
package compiler

import (
	"github.com/plorth/interpreter/internal/interpreter"
	"github.com/plorth/interpreter/internal/parser"
)

// Compile turns nodes into the value sequence a compiled quote holds.
func Compile(nodes []parser.Node) ([]interpreter.Value, error) {
	values := make([]interpreter.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := compileNode(n)
		if err != nil {
			return nil, err
		}
		if v != nil {
			values = append(values, v)
		}
	}
	return values, nil
}

// CompileQuote compiles nodes directly into a compiled quote value.
func CompileQuote(nodes []parser.Node) (*interpreter.Quote, error) {
	values, err := Compile(nodes)
	if err != nil {
		return nil, err
	}
	return interpreter.NewCompiledQuote(values), nil
}

func compileNode(n parser.Node) (interpreter.Value, error) {
	switch node := n.(type) {
	case *parser.Array:
		elements := make([]interpreter.Value, 0, len(node.Elements))
		for _, e := range node.Elements {
			v, err := compileNode(e)
			if err != nil {
				return nil, err
			}
			if v != nil {
				elements = append(elements, v)
			}
		}
		return interpreter.NewArray(elements), nil

	case *parser.Object:
		props := make([]interpreter.Property, 0, len(node.Properties))
		for _, p := range node.Properties {
			v, err := compileNode(p.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, interpreter.Property{Key: p.Key, Value: v})
		}
		return interpreter.NewObject(props), nil

	case *parser.Quote:
		children, err := Compile(node.Children)
		if err != nil {
			return nil, err
		}
		return interpreter.NewCompiledQuote(children), nil

	case *parser.String:
		return interpreter.String(node.Value), nil

	case *parser.Symbol:
		return interpreter.NewSymbol(node.ID, node.Pos), nil

	case *parser.Word:
		body, err := Compile(node.Body.Children)
		if err != nil {
			return nil, err
		}
		sym := interpreter.NewSymbol(node.Symbol.ID, node.Symbol.Pos)
		return interpreter.NewWord(sym, interpreter.NewCompiledQuote(body)), nil

	default:
		return nil, nil
	}
}
