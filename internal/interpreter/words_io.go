package interpreter

// ioWords implements §4.7.j plus the print/println/emit convenience words
// supplemented from the reference implementation's globals.
func ioWords() map[string]NativeFn {
	return map[string]NativeFn{
		"write": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			if ctx.Runtime.Output == nil {
				ctx.Push(v)
				return ctx.errf(ErrIO, "No output installed.")
			}
			if err := ctx.Runtime.Output.Write(v); err != nil {
				ctx.Push(v)
				return ctx.errf(ErrIO, "%s", err.Error())
			}
			return nil
		},
		"read": func(ctx *Context) error {
			if ctx.Runtime.Input == nil {
				return ctx.errf(ErrIO, "No input installed.")
			}
			v, err := ctx.Runtime.Input.Read()
			if err != nil {
				return ctx.errf(ErrIO, "%s", err.Error())
			}
			ctx.Push(v)
			return nil
		},
		"print": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			return writeString(ctx, v.String())
		},
		"println": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			return writeString(ctx, v.String()+"\n")
		},
		"emit": func(ctx *Context) error {
			s, ok := ctx.PopString()
			if !ok {
				return nil
			}
			return writeString(ctx, string(s))
		},
		"nread": func(ctx *Context) error {
			n, ok := ctx.PopNumber()
			if !ok {
				return nil
			}
			if ctx.Runtime.Input == nil {
				return ctx.errf(ErrIO, "No input installed.")
			}
			count := n.IntValue()
			if count < 0 {
				return ctx.errf(ErrRange, "Negative read count.")
			}
			values := make([]Value, 0, count)
			for i := int64(0); i < count; i++ {
				v, err := ctx.Runtime.Input.Read()
				if err != nil {
					return ctx.errf(ErrIO, "%s", err.Error())
				}
				values = append(values, v)
			}
			ctx.PushArray(values)
			return nil
		},
	}
}

func writeString(ctx *Context, s string) error {
	if ctx.Runtime.Output == nil {
		return ctx.errf(ErrIO, "No output installed.")
	}
	if err := ctx.Runtime.Output.Write(String(s)); err != nil {
		return ctx.errf(ErrIO, "%s", err.Error())
	}
	return nil
}
