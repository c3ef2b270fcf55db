package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntArithmeticStaysInt(t *testing.T) {
	t.Parallel()
	r := addNumbers(Int(2), Int(3))
	assert.True(t, r.IsInt())
	assert.Equal(t, int64(5), r.IntValue())
}

func TestIntOverflowPromotesToReal(t *testing.T) {
	t.Parallel()
	r := addNumbers(Int(math.MaxInt64), Int(1))
	assert.False(t, r.IsInt())
}

func TestMixedArithmeticIsReal(t *testing.T) {
	t.Parallel()
	r := addNumbers(Int(2), Real(0.5))
	assert.False(t, r.IsInt())
	assert.Equal(t, 2.5, r.RealValue())
}

func TestDivisionIsAlwaysReal(t *testing.T) {
	t.Parallel()
	r := divNumbers(Int(4), Int(2))
	assert.False(t, r.IsInt())
	assert.Equal(t, 2.0, r.RealValue())
}

func TestDivisionByZeroIsInfNotError(t *testing.T) {
	t.Parallel()
	r := divNumbers(Int(1), Int(0))
	assert.True(t, math.IsInf(r.RealValue(), 1))
}

func TestModuloFloorsTowardDivisorSign(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		a, b, want int64
	}{
		{5, 3, 2},
		{-5, 3, 1},
		{5, -3, -1},
		{-5, -3, -2},
	}
	for _, tc := range testcases {
		r := modNumbers(Int(tc.a), Int(tc.b))
		assert.Equal(t, tc.want, r.IntValue(), "%d %% %d", tc.a, tc.b)
	}
}

func TestNumberStringFormsSpecialReals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "nan", Real(math.NaN()).String())
	assert.Equal(t, "inf", Real(math.Inf(1)).String())
	assert.Equal(t, "-inf", Real(math.Inf(-1)).String())
	assert.Equal(t, "42", Int(42).String())
}

func TestNumberEqualityCrossesIntRealWhenEqualValue(t *testing.T) {
	t.Parallel()
	assert.True(t, Int(3).Equal(Real(3.0)))
	assert.False(t, Int(3).Equal(Real(3.5)))
}

func TestIsValidNumberLiteral(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		want bool
	}{
		{"0", true},
		{"-1", true},
		{"+1", true},
		{"1.5", true},
		{"1e10", true},
		{"1.5e-3", true},
		{"nan", true},
		{"inf", true},
		{"-inf", true},
		{"", false},
		{".5", false},
		{"1.", false},
		{"1e", false},
		{"abc", false},
		{"1a", false},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, isValidNumberLiteral(tc.text), tc.text)
	}
}

func TestParseNumberLiteralIntVsReal(t *testing.T) {
	t.Parallel()
	n := parseNumberLiteral("42")
	assert.True(t, n.IsInt())
	assert.Equal(t, int64(42), n.IntValue())

	f := parseNumberLiteral("1.5")
	assert.False(t, f.IsInt())
	assert.Equal(t, 1.5, f.RealValue())
}

func TestParseIntSaturatesOnOverflow(t *testing.T) {
	t.Parallel()
	v, ok := parseIntSaturating("99999999999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	v, ok = parseIntSaturating("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = parseIntSaturating("not a number")
	assert.False(t, ok)
}
