package interpreter

import (
	"testing"

	"github.com/plorth/interpreter/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullEquality(t *testing.T) {
	t.Parallel()
	assert.True(t, Null{}.Equal(Null{}))
	assert.False(t, Null{}.Equal(Boolean(false)))
}

func TestBooleanDisplay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "false", Boolean(false).String())
}

func TestStringSourceEscaping(t *testing.T) {
	t.Parallel()
	s := String("a\"b\\c\nd")
	assert.Equal(t, `"a\"b\\c\nd"`, s.Source())
}

func TestArrayEquality(t *testing.T) {
	t.Parallel()
	a := NewArray([]Value{Int(1), Int(2)})
	b := NewArray([]Value{Int(1), Int(2)})
	c := NewArray([]Value{Int(1), Int(3)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestArrayFlattenIsDeep(t *testing.T) {
	t.Parallel()
	nested := NewArray([]Value{
		Int(1),
		NewArray([]Value{Int(2), NewArray([]Value{Int(3), Int(4)})}),
		Int(5),
	})
	flat := nested.Flatten()
	require.Len(t, flat, 5)
	for i, want := range []int64{1, 2, 3, 4, 5} {
		n, ok := flat[i].(Number)
		require.True(t, ok)
		assert.Equal(t, want, n.IntValue())
	}
}

func TestObjectWithPreservesOrderAndOverwrites(t *testing.T) {
	t.Parallel()
	o := NewObject([]Property{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}})
	updated := o.With("a", Int(99))
	require.Len(t, updated.Properties, 2)
	assert.Equal(t, "a", updated.Properties[0].Key)
	v, ok := updated.Own("a")
	require.True(t, ok)
	assert.Equal(t, Int(99), v)

	appended := o.With("c", Int(3))
	require.Len(t, appended.Properties, 3)
	assert.Equal(t, "c", appended.Properties[2].Key)
}

func TestObjectEquality(t *testing.T) {
	t.Parallel()
	a := NewObject([]Property{{Key: "x", Value: Int(1)}, {Key: "y", Value: Int(2)}})
	b := NewObject([]Property{{Key: "y", Value: Int(2)}, {Key: "x", Value: Int(1)}})
	assert.True(t, a.Equal(b), "order should not affect equality")
}

func TestObjectPrototypeFromOwnProperty(t *testing.T) {
	t.Parallel()
	rt := NewRuntime(nil, nil)
	parent := NewObject(nil)
	child := NewObject([]Property{{Key: "__proto__", Value: parent}})
	assert.Same(t, parent, child.Prototype(rt))
}

func TestObjectPrototypeDefaultsToObjectPrototype(t *testing.T) {
	t.Parallel()
	rt := NewRuntime(nil, nil)
	o := NewObject(nil)
	assert.Same(t, rt.objectPrototype, o.Prototype(rt))
}

func TestObjectPrototypeNonObjectProtoTerminates(t *testing.T) {
	t.Parallel()
	rt := NewRuntime(nil, nil)
	o := NewObject([]Property{{Key: "__proto__", Value: rt.Null}})
	assert.Nil(t, o.Prototype(rt))
}

func TestErrorDisplayAndSource(t *testing.T) {
	t.Parallel()
	e := NewError(ErrType, "boom", token.Position{})
	assert.Equal(t, "type-error: boom", e.String())
	assert.Equal(t, "<type-error: boom>", e.Source())

	withoutMessage := NewError(ErrType, "", token.Position{})
	assert.Equal(t, "type-error", withoutMessage.String())
}

func TestErrorEqualityIgnoresPosition(t *testing.T) {
	t.Parallel()
	a := NewError(ErrValue, "bad", token.Position{File: "a", Line: 1})
	b := NewError(ErrValue, "bad", token.Position{File: "b", Line: 99})
	assert.True(t, a.Equal(b))
}

func TestQuoteEqualityNativeIsIdentity(t *testing.T) {
	t.Parallel()
	fn := func(ctx *Context) error { return nil }
	q1 := NewNativeQuote("dup", fn)
	q2 := NewNativeQuote("dup", fn)
	assert.True(t, q1.Equal(q1))
	assert.False(t, q1.Equal(q2))
}

func TestQuoteEqualityCompiledIsStructural(t *testing.T) {
	t.Parallel()
	a := NewCompiledQuote([]Value{Int(1), String("x")})
	b := NewCompiledQuote([]Value{Int(1), String("x")})
	assert.True(t, a.Equal(b))
}

func TestQuoteNativeNeverEqualsCompiled(t *testing.T) {
	t.Parallel()
	native := NewNativeQuote("n", func(ctx *Context) error { return nil })
	compiled := NewCompiledQuote(nil)
	assert.False(t, native.Equal(compiled))
}

func TestSymbolHashIsMemoizedAndConsistent(t *testing.T) {
	t.Parallel()
	s := NewSymbol("dup", token.Position{})
	h1 := s.Hash()
	h2 := s.Hash()
	assert.Equal(t, h1, h2)

	other := NewSymbol("dup", token.Position{})
	assert.Equal(t, h1, other.Hash())
}

func TestSymbolEqualityIgnoresPosition(t *testing.T) {
	t.Parallel()
	a := NewSymbol("x", token.Position{Line: 1})
	b := NewSymbol("x", token.Position{Line: 5})
	assert.True(t, a.Equal(b))
}

func TestWordSource(t *testing.T) {
	t.Parallel()
	body := NewCompiledQuote([]Value{NewSymbol("dup", token.Position{}), NewSymbol("*", token.Position{})})
	w := NewWord(NewSymbol("square", token.Position{}), body)
	assert.Equal(t, ": square dup * ;", w.Source())
}

var errorInterfaceChecks = []Value{
	Null{},
	Boolean(true),
	String(""),
	NewArray(nil),
	NewObject(nil),
	NewError(ErrUnknown, "", token.Position{}),
	NewNativeQuote("", nil),
	NewSymbol("", token.Position{}),
	NewWord(NewSymbol("", token.Position{}), NewCompiledQuote(nil)),
	Int(0),
}
