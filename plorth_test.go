package plorth_test

import (
	"errors"
	"testing"

	"github.com/plorth/interpreter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueInput hands out values from a fixed queue, then reports EOF.
type queueInput struct {
	values []plorth.Value
}

func (q *queueInput) Read() (plorth.Value, error) {
	if len(q.values) == 0 {
		return nil, errors.New("EOF")
	}
	v := q.values[0]
	q.values = q.values[1:]
	return v, nil
}

// sinkOutput records every value written to it, in order.
type sinkOutput struct {
	written []plorth.Value
}

func (s *sinkOutput) Write(v plorth.Value) error {
	s.written = append(s.written, v)
	return nil
}

func run(t *testing.T, rt *plorth.Runtime, source string) (*plorth.Context, bool) {
	t.Helper()
	ctx := plorth.NewContext(rt)
	quote, err := plorth.Compile(source, "<test>")
	require.NoError(t, err)
	return ctx, plorth.Run(ctx, quote)
}

func TestCompileAndRunSimpleExpression(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	ctx, ok := run(t, rt, "1 2 +")
	require.True(t, ok, "execution failed: %v", ctx.Error())
	require.Equal(t, 1, ctx.Depth())
	assert.Equal(t, "3", ctx.Stack()[0].Source())
}

func TestCompileSyntaxErrorIsReportedAsGoError(t *testing.T) {
	t.Parallel()
	_, err := plorth.Compile("[1, 2", "<test>")
	require.Error(t, err)
}

func TestEvalReturnsValueWithoutPushingTwice(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	ctx := plorth.NewContext(rt)
	quote, err := plorth.Compile("1 2 +", "<test>")
	require.NoError(t, err)

	v, ok := plorth.Eval(ctx, quote)
	require.True(t, ok)
	assert.Equal(t, "(1 2 +)", v.Source())
	assert.Equal(t, 0, ctx.Depth())
}

func TestCustomOutputReceivesWrite(t *testing.T) {
	t.Parallel()
	out := &sinkOutput{}
	rt := plorth.NewRuntime(nil, out)
	ctx, ok := run(t, rt, `"hello" write`)
	require.True(t, ok, "execution failed: %v", ctx.Error())
	require.Len(t, out.written, 1)
	assert.Equal(t, `"hello"`, out.written[0].Source())
}

func TestCustomOutputPrintAppendsNoQuotes(t *testing.T) {
	t.Parallel()
	out := &sinkOutput{}
	rt := plorth.NewRuntime(nil, out)
	ctx, ok := run(t, rt, `"hello" print`)
	require.True(t, ok, "execution failed: %v", ctx.Error())
	require.Len(t, out.written, 1)
	assert.Equal(t, "hello", out.written[0].String())
}

func TestCustomInputFeedsReadWord(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	in := &queueInput{values: []plorth.Value{interpreterNumberOne(rt)}}
	rt.Input = in

	ctx, ok := run(t, rt, "read")
	require.True(t, ok, "execution failed: %v", ctx.Error())
	require.Equal(t, 1, ctx.Depth())
	assert.Equal(t, "1", ctx.Stack()[0].Source())
}

func TestCustomInputFeedsNreadWord(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	in := &queueInput{values: []plorth.Value{
		interpreterNumberOne(rt),
		interpreterNumberOne(rt),
	}}
	rt.Input = in

	ctx, ok := run(t, rt, "2 nread")
	require.True(t, ok, "execution failed: %v", ctx.Error())
	require.Equal(t, 1, ctx.Depth())
	assert.Equal(t, "[1, 1]", ctx.Stack()[0].Source())
}

func TestReadWithNoInputInstalledIsIOError(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	ctx, ok := run(t, rt, "read")
	require.False(t, ok)
	assert.Contains(t, ctx.Error().String(), "io-error")
}

func TestWriteWithNoOutputInstalledIsIOError(t *testing.T) {
	t.Parallel()
	rt := plorth.NewRuntime(nil, nil)
	ctx, ok := run(t, rt, `"x" write`)
	require.False(t, ok)
	assert.Contains(t, ctx.Error().String(), "io-error")
}

// interpreterNumberOne compiles a literal "1" to obtain a concrete Value
// without reaching into the interpreter package's unexported constructors.
func interpreterNumberOne(rt *plorth.Runtime) plorth.Value {
	ctx := plorth.NewContext(rt)
	quote, err := plorth.Compile("1", "<helper>")
	if err != nil {
		panic(err)
	}
	plorth.Run(ctx, quote)
	return ctx.Stack()[0]
}
