package interpreter

// isWordChar reports whether r may appear inside a symbol, mirroring the
// scanner's separator set (§4.1): a symbol cannot be empty and cannot
// contain whitespace or any of the reserved punctuation characters.
func isWordChar(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '[', ']', '{', '}', '(', ')', ':', ';', ',', '"', '#':
		return false
	}
	return true
}

// stringWords implements §4.7.h.
func stringWords() map[string]NativeFn {
	return map[string]NativeFn{
		">quote": func(ctx *Context) error {
			s, ok := ctx.PopString()
			if !ok {
				return nil
			}
			if ctx.Runtime.Compile == nil {
				return ctx.errf(ErrIO, "No compiler installed.")
			}
			q, err := ctx.Runtime.Compile(string(s), ctx.Position().File, ctx.Position())
			if err != nil {
				return ctx.errf(ErrSyntax, "%s", err.Error())
			}
			ctx.Push(q)
			return nil
		},
		">symbol": func(ctx *Context) error {
			s, ok := ctx.PopString()
			if !ok {
				return nil
			}
			if len(s) == 0 {
				ctx.SetError(NewError(ErrValue, "Cannot construct empty symbol.", ctx.Position()))
				return nil
			}
			for _, r := range string(s) {
				if !isWordChar(r) {
					ctx.SetError(NewError(ErrValue, "Cannot convert "+s.Source()+" into symbol.", ctx.Position()))
					return nil
				}
			}
			ctx.Push(NewSymbol(string(s), ctx.Position()))
			return nil
		},
	}
}
