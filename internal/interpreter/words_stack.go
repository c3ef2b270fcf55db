package interpreter

// stackWords implements §4.7.a: conventional Forth-family stack
// manipulation, installed into the global dictionary (every type
// inherits them transitively through the prototype chain only if pushed
// there too, but per the reference library these live globally).
func stackWords() map[string]NativeFn {
	return map[string]NativeFn{
		"depth": func(ctx *Context) error {
			ctx.PushInt(int64(ctx.Depth()))
			return nil
		},
		"clear": func(ctx *Context) error {
			ctx.Clear()
			return nil
		},
		"drop": func(ctx *Context) error {
			_, ok := ctx.Pop()
			if !ok {
				return nil
			}
			return nil
		},
		"dup": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.Push(v)
			ctx.Push(v)
			return nil
		},
		"nip": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			_ = a
			ctx.Push(b)
			return nil
		},
		"over": func(ctx *Context) error {
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
			return nil
		},
		"rot": func(ctx *Context) error {
			c, ok := ctx.Pop()
			if !ok {
				return nil
			}
			b, ok := ctx.Pop()
			if !ok {
				ctx.Push(c)
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				ctx.Push(c)
				return nil
			}
			ctx.Push(b)
			ctx.Push(c)
			ctx.Push(a)
			return nil
		},
		"swap": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.Push(b)
			ctx.Push(a)
			return nil
		},
		"tuck": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.Push(b)
			ctx.Push(a)
			ctx.Push(b)
			return nil
		},
	}
}
