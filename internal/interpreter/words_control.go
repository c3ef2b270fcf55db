package interpreter

// controlWords implements §4.7.e.
func controlWords() map[string]NativeFn {
	return map[string]NativeFn{
		"if": func(ctx *Context) error {
			then, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			cond, ok := ctx.PopBoolean()
			if !ok {
				ctx.Push(then)
				return nil
			}
			if bool(cond) {
				then.Call(ctx)
			}
			return nil
		},
		"if-else": func(ctx *Context) error {
			elseq, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			then, ok := ctx.PopQuote()
			if !ok {
				ctx.Push(elseq)
				return nil
			}
			cond, ok := ctx.PopBoolean()
			if !ok {
				ctx.Push(then)
				ctx.Push(elseq)
				return nil
			}
			if bool(cond) {
				then.Call(ctx)
			} else {
				elseq.Call(ctx)
			}
			return nil
		},
		"while": func(ctx *Context) error {
			body, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			test, ok := ctx.PopQuote()
			if !ok {
				ctx.Push(body)
				return nil
			}
			for {
				if !test.Call(ctx) {
					return nil
				}
				cond, ok := ctx.PopBoolean()
				if !ok {
					return nil
				}
				if !bool(cond) {
					return nil
				}
				if !body.Call(ctx) {
					return nil
				}
			}
		},
		"try": func(ctx *Context) error {
			catch, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			body, ok := ctx.PopQuote()
			if !ok {
				ctx.Push(catch)
				return nil
			}
			runTry(ctx, body, catch, nil)
			return nil
		},
		"try-else": func(ctx *Context) error {
			elseq, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			catch, ok := ctx.PopQuote()
			if !ok {
				ctx.Push(elseq)
				return nil
			}
			body, ok := ctx.PopQuote()
			if !ok {
				ctx.Push(catch)
				ctx.Push(elseq)
				return nil
			}
			runTry(ctx, body, catch, elseq)
			return nil
		},
		"times": func(ctx *Context) error {
			body, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			n, ok := ctx.PopNumber()
			if !ok {
				ctx.Push(body)
				return nil
			}
			for i := int64(0); i < n.IntValue(); i++ {
				if !body.Call(ctx) {
					return nil
				}
			}
			return nil
		},
		"nop": func(ctx *Context) error {
			return nil
		},
		"2drop": func(ctx *Context) error {
			if _, ok := ctx.Pop(); !ok {
				return nil
			}
			if _, ok := ctx.Pop(); !ok {
				return nil
			}
			return nil
		},
		"2dup": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.Push(a)
			ctx.Push(b)
			ctx.Push(a)
			ctx.Push(b)
			return nil
		},
		"=": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.PushBool(a.Equal(b))
			return nil
		},
		"!=": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.PushBool(!a.Equal(b))
			return nil
		},
	}
}

// runTry runs body; on failure it pushes the error value and clears the
// slot before running catch. On success it runs elseq, if given.
func runTry(ctx *Context, body, catch, elseq *Quote) {
	if body.Call(ctx) {
		if elseq != nil {
			elseq.Call(ctx)
		}
		return
	}
	e := ctx.Error()
	if e == nil {
		return
	}
	ctx.ClearError()
	ctx.Push(e)
	catch.Call(ctx)
}
