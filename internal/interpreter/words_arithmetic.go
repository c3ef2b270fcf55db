package interpreter

// numberBinaryOp pops two numbers and computes fn(a, b), where a is popped
// first (the original top of stack) and b second. This mirrors the
// reference library's literal pop order (§9 design notes): `3 5 -` pops
// a=5 then b=3 and computes a-b=2, not the naively expected 3-5.
func numberBinaryOp(fn func(a, b Number) Number) NativeFn {
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
		ctx.Push(fn(a, b))
		return nil
	}
}

// arithmeticWords implements §4.7.c, wired onto the number prototype.
func arithmeticWords() map[string]NativeFn {
	return map[string]NativeFn{
		"+": numberBinaryOp(addNumbers),
		"-": numberBinaryOp(subNumbers),
		"*": numberBinaryOp(mulNumbers),
		"/": numberBinaryOp(divNumbers),
		"%": numberBinaryOp(modNumbers),
	}
}
