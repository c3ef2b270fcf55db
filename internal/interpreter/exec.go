package interpreter

// Exec performs the side-effecting execution of v against ctx, per §4.6.
func Exec(ctx *Context, v Value) bool {
	switch val := v.(type) {
	case Null:
		ctx.Push(ctx.Runtime.Null)
		return true

	case *Symbol:
		return execSymbol(ctx, val)

	case *Word:
		return execWord(ctx, val)

	default:
		ev, ok := Eval(ctx, v)
		if !ok {
			return false
		}
		ctx.Push(ev)
		return true
	}
}

func execSymbol(ctx *Context, sym *Symbol) bool {
	if !sym.Pos.IsZero() {
		ctx.SetPosition(sym.Pos)
	}

	if top := ctx.Peek(); top != nil {
		if proto := top.Prototype(ctx.Runtime); proto != nil {
			if v, ok := lookupChain(ctx.Runtime, proto, sym.ID); ok {
				return dispatch(ctx, v)
			}
		}
	}

	if v, ok := ctx.locals[sym.ID]; ok {
		return dispatch(ctx, v)
	}

	if v, ok := ctx.Runtime.Global(sym.ID); ok {
		return dispatch(ctx, v)
	}

	if isValidNumberLiteral(sym.ID) {
		ctx.Push(parseNumberLiteral(sym.ID))
		return true
	}

	ctx.SetError(NewError(ErrReference, "Unrecognized word: `"+sym.ID+"'", sym.Pos))
	return false
}

// dispatch calls v if it is a quote, else pushes it, matching the
// quote-vs-value dispatch used at every resolution layer.
func dispatch(ctx *Context, v Value) bool {
	if q, ok := v.(*Quote); ok {
		return q.Call(ctx)
	}
	ctx.Push(v)
	return true
}

func execWord(ctx *Context, w *Word) bool {
	ctx.DefineLocal(w.Symbol.ID, w.Body)
	return true
}

// lookupChain walks the __proto__ chain starting at start, looking for
// key. It stops on direct self-reference (§3.5, §8.1 invariant 5).
func lookupChain(rt *Runtime, start *Object, key string) (Value, bool) {
	obj := start
	for obj != nil {
		if v, ok := obj.Own(key); ok {
			return v, true
		}
		next := obj.Prototype(rt)
		if next == obj {
			break
		}
		obj = next
	}
	return nil, false
}
