package interpreter

import (
	"fmt"

	"github.com/plorth/interpreter/internal/token"
)

// Context holds per-execution state: a data stack, a local dictionary, the
// current error slot and the current source position (§3.3). A Context is
// single-owner and must not be mutated concurrently.
type Context struct {
	Runtime *Runtime

	stack    []Value
	locals   map[string]Value
	err      error
	position token.Position
}

// NewContext constructs a Context bound to rt.
func NewContext(rt *Runtime) *Context {
	return &Context{Runtime: rt, locals: make(map[string]Value)}
}

// Position returns the context's current source position.
func (c *Context) Position() token.Position { return c.position }

// SetPosition updates the context's current source position.
func (c *Context) SetPosition(pos token.Position) { c.position = pos }

// Depth returns the number of values on the stack.
func (c *Context) Depth() int { return len(c.stack) }

// Stack returns the live stack slice, top last.
func (c *Context) Stack() []Value { return c.stack }

// Clear empties the stack.
func (c *Context) Clear() { c.stack = nil }

// Locals returns the context-local dictionary.
func (c *Context) Locals() map[string]Value { return c.locals }

// DefineLocal binds name to value in the local dictionary.
func (c *Context) DefineLocal(name string, value Value) { c.locals[name] = value }

// DeleteLocal unbinds name from the local dictionary, reporting whether it
// was present.
func (c *Context) DeleteLocal(name string) bool {
	_, ok := c.locals[name]
	delete(c.locals, name)
	return ok
}

// Error returns the current error slot contents, or nil if healthy.
func (c *Context) Error() *Error {
	if c.err == nil {
		return nil
	}
	e, _ := c.err.(runtimeErrorValue)
	return e.err
}

// HasError reports whether the error slot is non-empty.
func (c *Context) HasError() bool { return c.err != nil }

// ClearError empties the error slot. Within the word library only
// try/try-else call this (§4.7.e, §7); an embedder may call it after
// reporting an error.
func (c *Context) ClearError() { c.err = nil }

// SetErr installs a Go error into the context's error slot, wrapping it as
// an unknown-error Value if it is not already one.
func (c *Context) SetErr(err error) {
	if err == nil {
		return
	}
	if rv, ok := err.(runtimeErrorValue); ok {
		c.err = rv
		return
	}
	c.err = runtimeErrorValue{err: NewError(ErrUnknown, err.Error(), c.position)}
}

// SetError installs an *Error value into the context's error slot.
func (c *Context) SetError(e *Error) {
	c.err = runtimeErrorValue{err: e}
}

// runtimeErrorValue adapts an *Error into the `error` interface so it can
// flow through Go's ordinary error-return plumbing inside native words.
type runtimeErrorValue struct {
	err *Error
}

func (r runtimeErrorValue) Error() string { return r.err.String() }

// errf is a convenience constructor matching runtimeErrorValue to the
// common case of a formatted message at the context's current position.
func (c *Context) errf(kind ErrorKind, format string, args ...any) error {
	return runtimeErrorValue{err: NewError(kind, fmt.Sprintf(format, args...), c.position)}
}

// Push appends a value to the top of the stack, coercing a nil Value (Go
// nil, not the Null value) to the runtime's null singleton.
func (c *Context) Push(v Value) {
	if v == nil {
		v = c.Runtime.Null
	}
	c.stack = append(c.stack, v)
}

func (c *Context) PushBool(b bool)      { c.Push(c.Runtime.Bool(b)) }
func (c *Context) PushInt(v int64)      { c.Push(Int(v)) }
func (c *Context) PushReal(v float64)   { c.Push(Real(v)) }
func (c *Context) PushString(v string)  { c.Push(String(v)) }
func (c *Context) PushArray(vs []Value) { c.Push(NewArray(vs)) }

// Pop is the untyped pop: range error on empty stack, else pop and return.
func (c *Context) Pop() (Value, bool) {
	if len(c.stack) == 0 {
		c.SetError(NewError(ErrRange, "Stack underflow.", c.position))
		return nil, false
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v, true
}

// Peek returns the top of the stack without popping, or nil if empty.
func (c *Context) Peek() Value {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func typeName(v Value) string {
	return v.Kind().String()
}

// popTyped implements the uniform typed-pop contract of §4.5: range error
// on empty stack; type error (without popping) on a mismatch; else pop.
func popTyped[T Value](c *Context, wantName string) (T, bool) {
	var zero T
	if len(c.stack) == 0 {
		c.SetError(NewError(ErrRange, "Stack underflow.", c.position))
		return zero, false
	}
	top := c.stack[len(c.stack)-1]
	v, ok := top.(T)
	if !ok {
		c.SetError(NewError(ErrType, fmt.Sprintf("Expected %s, got %s instead.", wantName, typeName(top)), c.position))
		return zero, false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return v, true
}

func (c *Context) PopArray() (*Array, bool)     { return popTyped[*Array](c, "array") }
func (c *Context) PopObject() (*Object, bool)   { return popTyped[*Object](c, "object") }
func (c *Context) PopError() (*Error, bool)     { return popTyped[*Error](c, "error") }
func (c *Context) PopQuote() (*Quote, bool)     { return popTyped[*Quote](c, "quote") }
func (c *Context) PopSymbol() (*Symbol, bool)   { return popTyped[*Symbol](c, "symbol") }
func (c *Context) PopWord() (*Word, bool)       { return popTyped[*Word](c, "word") }
func (c *Context) PopString() (String, bool)    { return popTyped[String](c, "string") }
func (c *Context) PopBoolean() (Boolean, bool)  { return popTyped[Boolean](c, "boolean") }
func (c *Context) PopNumber() (Number, bool)    { return popTyped[Number](c, "number") }
