package interpreter

// errorConstructor pops an optional message (null or string), constructs
// an error of kind at the current position, and pushes it (§4.7.i).
func errorConstructor(kind ErrorKind) NativeFn {
	return func(ctx *Context) error {
		v, ok := ctx.Pop()
		if !ok {
			return nil
		}
		var message string
		switch m := v.(type) {
		case Null:
			// no message
		case String:
			message = string(m)
		default:
			ctx.Push(v)
			return ctx.errf(ErrType, "Expected string or null, got %s instead.", typeName(v))
		}
		ctx.Push(NewError(kind, message, ctx.Position()))
		return nil
	}
}

// errorWords implements §4.7.i's constructors plus throw.
func errorWords() map[string]NativeFn {
	words := map[string]NativeFn{
		"syntax-error":    errorConstructor(ErrSyntax),
		"reference-error": errorConstructor(ErrReference),
		"type-error":      errorConstructor(ErrType),
		"value-error":     errorConstructor(ErrValue),
		"range-error":     errorConstructor(ErrRange),
		"import-error":    errorConstructor(ErrImport),
		"io-error":        errorConstructor(ErrIO),
		"unknown-error":   errorConstructor(ErrUnknown),
		"throw": func(ctx *Context) error {
			e, ok := ctx.PopError()
			if !ok {
				return nil
			}
			ctx.SetError(e)
			return nil
		},
	}
	return words
}

// errorPrototypeWords implements the accessors available on an error value
// itself: its kind's integer code, its message, and the source position it
// was raised at (object with file/line/column, or null if none), matching
// §7's "user code distinguishes by the integer code word" plus the
// reference's error prototype.
func errorPrototypeWords() map[string]NativeFn {
	return map[string]NativeFn{
		"code": func(ctx *Context) error {
			e, ok := ctx.PopError()
			if !ok {
				return nil
			}
			ctx.Push(e)
			ctx.PushInt(e.ErrKind.Code())
			return nil
		},
		"message": func(ctx *Context) error {
			e, ok := ctx.PopError()
			if !ok {
				return nil
			}
			ctx.Push(e)
			ctx.PushString(e.Message)
			return nil
		},
		"position": func(ctx *Context) error {
			e, ok := ctx.PopError()
			if !ok {
				return nil
			}
			ctx.Push(e)
			if e.Pos.File == "" && e.Pos.Line == 0 && e.Pos.Column == 0 {
				ctx.Push(ctx.Runtime.Null)
				return nil
			}
			ctx.Push(NewObject([]Property{
				{Key: "file", Value: String(e.Pos.File)},
				{Key: "line", Value: Int(int64(e.Pos.Line))},
				{Key: "column", Value: Int(int64(e.Pos.Column))},
			}))
			return nil
		},
	}
}
