package interpreter

// typeWords implements §4.7.b: each predicate pops, pushes back the
// original value, then pushes a boolean.
func typeWords() map[string]NativeFn {
	predicate := func(match func(Value) bool) NativeFn {
		return func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.Push(v)
			ctx.PushBool(match(v))
			return nil
		}
	}

	return map[string]NativeFn{
		"array?":   predicate(func(v Value) bool { _, ok := v.(*Array); return ok }),
		"boolean?": predicate(func(v Value) bool { _, ok := v.(Boolean); return ok }),
		"error?":   predicate(func(v Value) bool { _, ok := v.(*Error); return ok }),
		"null?":    predicate(func(v Value) bool { _, ok := v.(Null); return ok }),
		"number?":  predicate(func(v Value) bool { _, ok := v.(Number); return ok }),
		"object?":  predicate(func(v Value) bool { _, ok := v.(*Object); return ok }),
		"quote?":   predicate(func(v Value) bool { _, ok := v.(*Quote); return ok }),
		"string?":  predicate(func(v Value) bool { _, ok := v.(String); return ok }),
		"symbol?":  predicate(func(v Value) bool { _, ok := v.(*Symbol); return ok }),
		"word?":    predicate(func(v Value) bool { _, ok := v.(*Word); return ok }),
	}
}
