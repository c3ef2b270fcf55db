package parser_test

import (
	"testing"

	"github.com/plorth/interpreter/internal/parser"
	"github.com/plorth/interpreter/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) ([]parser.Node, error) {
	t.Helper()
	s := scanner.New(source, "<test>", 1, 1)
	tokens, err := s.Scan()
	require.NoError(t, err)
	return parser.New(tokens).Parse()
}

func TestParseSymbol(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, "dup")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	sym, ok := nodes[0].(*parser.Symbol)
	require.True(t, ok)
	assert.Equal(t, "dup", sym.ID)
}

func TestParseString(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, `"hello"`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	str, ok := nodes[0].(*parser.String)
	require.True(t, ok)
	assert.Equal(t, "hello", str.Value)
}

func TestParseArray(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, "[1, 2, 3]")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	arr, ok := nodes[0].(*parser.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	for i, want := range []string{"1", "2", "3"} {
		sym, ok := arr.Elements[i].(*parser.Symbol)
		require.True(t, ok)
		assert.Equal(t, want, sym.ID)
	}
}

func TestParseArrayTrailingComma(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, "[1, 2,]")
	require.NoError(t, err)
	arr, ok := nodes[0].(*parser.Array)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 2)
}

func TestParseEmptyArray(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, "[]")
	require.NoError(t, err)
	arr, ok := nodes[0].(*parser.Array)
	require.True(t, ok)
	assert.Empty(t, arr.Elements)
}

func TestParseObject(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, `{"a": 1, "b": 2}`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	obj, ok := nodes[0].(*parser.Object)
	require.True(t, ok)
	require.Len(t, obj.Properties, 2)
	assert.Equal(t, "a", obj.Properties[0].Key)
	assert.Equal(t, "b", obj.Properties[1].Key)
}

func TestParseObjectRequiresStringKey(t *testing.T) {
	t.Parallel()
	_, err := parse(t, `{a: 1}`)
	require.Error(t, err)
}

func TestParseQuote(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, "(1 2 +)")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	q, ok := nodes[0].(*parser.Quote)
	require.True(t, ok)
	require.Len(t, q.Children, 3)
}

func TestParseWord(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, ": square ( dup * ) ;")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	w, ok := nodes[0].(*parser.Word)
	require.True(t, ok)
	assert.Equal(t, "square", w.Symbol.ID)
	require.Len(t, w.Body.Children, 2)
}

func TestParseNestedArrayOfObjects(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, `[{"a": 1}, {"b": 2}]`)
	require.NoError(t, err)
	arr, ok := nodes[0].(*parser.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 2)
	_, ok = arr.Elements[0].(*parser.Object)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		input string
	}{
		{"unterminated array", "[1, 2"},
		{"unterminated object", `{"a": 1`},
		{"unterminated quote", "(1 2"},
		{"unterminated word", ": square dup *"},
		{"word missing name", ": ( dup ) ;"},
		{"unexpected closing bracket", "]"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := parse(t, tc.input)
			require.Error(t, err)
		})
	}
}

func TestParseMultipleTopLevelTokens(t *testing.T) {
	t.Parallel()
	nodes, err := parse(t, `1 "two" [3]`)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
}
