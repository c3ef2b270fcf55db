package interpreter

// intBinaryOp mirrors numberBinaryOp's pop order but coerces both
// operands to int64 first, per §3.2 (reals are coerced for bitwise ops).
func intBinaryOp(fn func(a, b int64) int64) NativeFn {
	return func(ctx *Context) error {
		a, ok := ctx.PopNumber()
		if !ok {
			return nil
		}
		b, ok := ctx.PopNumber()
		if !ok {
			ctx.Push(a)
			return nil
		}
		ctx.PushInt(fn(a.IntValue(), b.IntValue()))
		return nil
	}
}

// bitwiseWords implements §4.7.d, wired onto the number prototype.
func bitwiseWords() map[string]NativeFn {
	return map[string]NativeFn{
		"&": intBinaryOp(func(a, b int64) int64 { return a & b }),
		"|": intBinaryOp(func(a, b int64) int64 { return a | b }),
		"^": intBinaryOp(func(a, b int64) int64 { return a ^ b }),
		"~": func(ctx *Context) error {
			n, ok := ctx.PopNumber()
			if !ok {
				return nil
			}
			ctx.PushInt(^n.IntValue())
			return nil
		},
		"<<": intBinaryOp(func(a, b int64) int64 { return a << uint(b) }),
		">>": intBinaryOp(func(a, b int64) int64 { return a >> uint(b) }),
	}
}
