package interpreter

// arrayWords implements §4.7.f, installed on the array prototype.
func arrayWords() map[string]NativeFn {
	return map[string]NativeFn{
		"length": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			ctx.Push(a)
			ctx.PushInt(int64(len(a.Elements)))
			return nil
		},
		">flatten": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			ctx.PushArray(a.Flatten())
			return nil
		},
		">reverse": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			n := len(a.Elements)
			reversed := make([]Value, n)
			for i, e := range a.Elements {
				reversed[n-1-i] = e
			}
			ctx.PushArray(reversed)
			return nil
		},
		">quote": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			ctx.Push(NewCompiledQuote(a.Elements))
			return nil
		},
		"+": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			b, ok := ctx.PopArray()
			if !ok {
				ctx.Push(a)
				return nil
			}
			result := make([]Value, 0, len(a.Elements)+len(b.Elements))
			result = append(result, a.Elements...)
			result = append(result, b.Elements...)
			ctx.PushArray(result)
			return nil
		},
		"*": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			n, ok := ctx.PopNumber()
			if !ok {
				ctx.Push(a)
				return nil
			}
			count := n.IntValue()
			if count < 0 {
				ctx.SetError(NewError(ErrRange, "Invalid repeat count.", ctx.Position()))
				return nil
			}
			result := make([]Value, 0, len(a.Elements)*int(count))
			for i := int64(0); i < count; i++ {
				result = append(result, a.Elements...)
			}
			ctx.PushArray(result)
			return nil
		},
		"&": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			b, ok := ctx.PopArray()
			if !ok {
				ctx.Push(a)
				return nil
			}
			var result []Value
			for _, v1 := range b.Elements {
				if !containsValue(a.Elements, v1) {
					continue
				}
				if !containsValue(result, v1) {
					result = append(result, v1)
				}
			}
			ctx.PushArray(result)
			return nil
		},
		"|": func(ctx *Context) error {
			a, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			b, ok := ctx.PopArray()
			if !ok {
				ctx.Push(a)
				return nil
			}
			var result []Value
			for _, v1 := range b.Elements {
				if !containsValue(result, v1) {
					result = append(result, v1)
				}
			}
			for _, v1 := range a.Elements {
				if !containsValue(result, v1) {
					result = append(result, v1)
				}
			}
			ctx.PushArray(result)
			return nil
		},
	}
}

// arrayCombinatorWords implements the quote-taking array combinators of
// §4.7.f. These are registered into the global dictionary (not just the
// array prototype): spec.md's own calling convention (`[1 2 3] (2 *)
// map`) leaves the quote on top of the stack at call time, not the array,
// so a bare symbol resolved only through the literal top-of-stack's
// prototype chain would never reach them on `arrayPrototype`. The pop
// order here (quote popped first/top, array second) matches that calling
// convention, the reverse of the reference's `pop_array` first/
// `pop_quote` second (`original_source/src/api/array.cpp`'s `w_for_each`/
// `w_map`/`w_filter`/`w_reduce`, which read as array-on-top).
func arrayCombinatorWords() map[string]NativeFn {
	return map[string]NativeFn{
		"for-each": func(ctx *Context) error {
			q, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			a, ok := ctx.PopArray()
			if !ok {
				ctx.Push(q)
				return nil
			}
			for _, e := range a.Elements {
				ctx.Push(e)
				if !q.Call(ctx) {
					return nil
				}
			}
			return nil
		},
		"map": func(ctx *Context) error {
			q, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			a, ok := ctx.PopArray()
			if !ok {
				ctx.Push(q)
				return nil
			}
			result := make([]Value, 0, len(a.Elements))
			for _, e := range a.Elements {
				ctx.Push(e)
				if !q.Call(ctx) {
					return nil
				}
				v, ok := ctx.Pop()
				if !ok {
					return nil
				}
				result = append(result, v)
			}
			ctx.PushArray(result)
			return nil
		},
		"filter": func(ctx *Context) error {
			q, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			a, ok := ctx.PopArray()
			if !ok {
				ctx.Push(q)
				return nil
			}
			var result []Value
			for _, e := range a.Elements {
				ctx.Push(e)
				if !q.Call(ctx) {
					return nil
				}
				b, ok := ctx.PopBoolean()
				if !ok {
					return nil
				}
				if bool(b) {
					result = append(result, e)
				}
			}
			ctx.PushArray(result)
			return nil
		},
		"reduce": func(ctx *Context) error {
			q, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			a, ok := ctx.PopArray()
			if !ok {
				ctx.Push(q)
				return nil
			}
			if len(a.Elements) == 0 {
				ctx.SetError(NewError(ErrRange, "Cannot reduce empty array.", ctx.Position()))
				return nil
			}
			acc := a.Elements[0]
			for _, e := range a.Elements[1:] {
				ctx.Push(acc)
				ctx.Push(e)
				if !q.Call(ctx) {
					return nil
				}
				v, ok := ctx.Pop()
				if !ok {
					return nil
				}
				acc = v
			}
			ctx.Push(acc)
			return nil
		},
	}
}

func containsValue(vs []Value, v Value) bool {
	for _, e := range vs {
		if e.Equal(v) {
			return true
		}
	}
	return false
}
