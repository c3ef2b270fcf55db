package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// Number is a tagged union of int64 and float64, per §3.2.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// Int returns an integer-tagged Number.
func Int(v int64) Number { return Number{isInt: true, i: v} }

// Real returns a real-tagged Number.
func Real(v float64) Number { return Number{isInt: false, f: v} }

func (Number) Kind() Kind                      { return KindNumber }
func (n Number) Prototype(rt *Runtime) *Object   { return rt.numberPrototype }

// IsInt reports whether this Number carries an integer.
func (n Number) IsInt() bool { return n.isInt }

// IntValue truncates a real toward zero; returns the integer unchanged.
func (n Number) IntValue() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// RealValue exactly widens an integer; returns the real unchanged.
func (n Number) RealValue() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return "nan"
	case math.IsInf(n.f, 1):
		return "inf"
	case math.IsInf(n.f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

func (n Number) Source() string { return n.String() }

func (n Number) JSON() any {
	if n.isInt {
		return n.i
	}
	return n.f
}

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	if n.isInt && o.isInt {
		return n.i == o.i
	}
	return n.RealValue() == o.RealValue()
}

// canFitInt64 reports whether a float64 real-domain result can be
// represented exactly as an int64.
func canFitInt64(f float64) bool {
	return f >= -9223372036854775808.0 && f < 9223372036854775808.0 && f == math.Trunc(f)
}

// promoteBinary applies the int/real promotion rule from §3.2/§8.1: integer
// arithmetic is used only when both operands are ints and the real-domain
// result still fits in int64; otherwise the result is real.
func promoteBinary(a, b Number, intOp func(a, b int64) (int64, bool), realOp func(a, b float64) float64) Number {
	if a.isInt && b.isInt {
		if v, ok := intOp(a.i, b.i); ok {
			return Int(v)
		}
	}
	return Real(realOp(a.RealValue(), b.RealValue()))
}

func addNumbers(a, b Number) Number {
	return promoteBinary(a, b,
		func(x, y int64) (int64, bool) {
			r := x + y
			if canFitInt64(float64(x) + float64(y)) {
				return r, true
			}
			return 0, false
		},
		func(x, y float64) float64 { return x + y },
	)
}

func subNumbers(a, b Number) Number {
	return promoteBinary(a, b,
		func(x, y int64) (int64, bool) {
			r := x - y
			if canFitInt64(float64(x) - float64(y)) {
				return r, true
			}
			return 0, false
		},
		func(x, y float64) float64 { return x - y },
	)
}

func mulNumbers(a, b Number) Number {
	return promoteBinary(a, b,
		func(x, y int64) (int64, bool) {
			r := x * y
			if canFitInt64(float64(x) * float64(y)) {
				return r, true
			}
			return 0, false
		},
		func(x, y float64) float64 { return x * y },
	)
}

// divNumbers always performs real division, per §9: `1 0 /` yields inf
// rather than raising.
func divNumbers(a, b Number) Number {
	return Real(a.RealValue() / b.RealValue())
}

// modNumbers implements floor-modulo: the result takes the sign of b. Like
// divNumbers, this always computes in the real domain and always returns a
// real, per §9: the reference's w_mod works from real_value()/std::fmod
// unconditionally rather than special-casing an int/int pair.
func modNumbers(a, b Number) Number {
	x, y := a.RealValue(), b.RealValue()
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return Real(m)
}

// isValidNumberLiteral reports whether text is a valid number literal per
// §3.2's grammar: optional sign, digits, optional fraction, optional
// exponent; or one of the three special reals.
func isValidNumberLiteral(text string) bool {
	switch text {
	case "nan", "inf", "-inf":
		return true
	}
	if text == "" {
		return false
	}

	i := 0
	n := len(text)
	if text[i] == '+' || text[i] == '-' {
		i++
	}
	digitsStart := i
	for i < n && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return false
	}
	if i < n && text[i] == '.' {
		i++
		fracStart := i
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == fracStart {
			return false
		}
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		expStart := i
		for i < n && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == n
}

// parseNumberLiteral parses a validated literal into a Number, choosing
// int or real the same way the scanner/evaluator numeric fallback does:
// an int literal (no '.', no exponent, not a special real) that fits
// int64 stays an int; everything else is real.
func parseNumberLiteral(text string) Number {
	switch text {
	case "nan":
		return Real(math.NaN())
	case "inf":
		return Real(math.Inf(1))
	case "-inf":
		return Real(math.Inf(-1))
	}
	if !strings.ContainsAny(text, ".eE") {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(v)
		}
	}
	v, _ := strconv.ParseFloat(text, 64)
	return Real(v)
}

// parseIntSaturating implements the documented parse_int quirk (§9): on
// overflow it saturates to 0 rather than clamping or signalling.
func parseIntSaturating(text string) (int64, bool) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if isValidIntegerShape(text) {
			return 0, true
		}
		return 0, false
	}
	return v, true
}

func isValidIntegerShape(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	if text[i] == '+' || text[i] == '-' {
		i++
	}
	if i == len(text) {
		return false
	}
	for ; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

var _ Value = Number{}
