package interpreter

// Eval constructs a fresh value by evaluating any embedded symbols inside
// v, per §4.6. It never mutates the stack except through the special
// `drop` convenience symbol.
func Eval(ctx *Context, v Value) (Value, bool) {
	switch val := v.(type) {
	case *Array:
		elements := make([]Value, 0, len(val.Elements))
		for _, e := range val.Elements {
			ev, ok := Eval(ctx, e)
			if !ok {
				return nil, false
			}
			elements = append(elements, ev)
		}
		return NewArray(elements), true

	case *Object:
		props := make([]Property, 0, len(val.Properties))
		for _, p := range val.Properties {
			ev, ok := Eval(ctx, p.Value)
			if !ok {
				return nil, false
			}
			props = append(props, Property{Key: p.Key, Value: ev})
		}
		return NewObject(props), true

	case *Symbol:
		return evalSymbol(ctx, val)

	case *Word:
		ctx.SetError(NewError(ErrSyntax, "Unexpected word declaration; Missing value.", val.Symbol.Pos))
		return nil, false

	default:
		return v, true
	}
}

func evalSymbol(ctx *Context, sym *Symbol) (Value, bool) {
	switch sym.ID {
	case "null":
		return ctx.Runtime.Null, true
	case "true":
		return ctx.Runtime.True, true
	case "false":
		return ctx.Runtime.False, true
	case "drop":
		v, ok := ctx.Pop()
		if !ok {
			return nil, false
		}
		return v, true
	}
	if isValidNumberLiteral(sym.ID) {
		return parseNumberLiteral(sym.ID), true
	}
	ctx.SetError(NewError(ErrSyntax, "Unexpected `"+sym.ID+"'; Missing value.", sym.Pos))
	return nil, false
}
