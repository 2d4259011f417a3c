package lang

import (
	"math"
	"strconv"
	"strings"
)

// canonicalNaN is the bit pattern every NaN collapses to for ordering,
// equality and hashing.
const canonicalNaN = 0x7ff8000000000000

func doubleBits(x float64) int64 {
	if math.IsNaN(x) {
		return canonicalNaN
	}
	return int64(math.Float64bits(x))
}

// CompareDouble orders two doubles totally: -0.0 sorts before 0.0 and NaN
// sorts after every other value, including +Inf. NaN equals NaN.
func CompareDouble(x, y float64) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	xb, yb := doubleBits(x), doubleBits(y)
	switch {
	case xb == yb:
		return 0
	case xb < yb:
		return -1
	default:
		return 1
	}
}

// EqualsDouble reports whether other is a double with the same bits as x.
// NaN equals NaN; 0.0 does not equal -0.0.
func EqualsDouble(x float64, other any) bool {
	var y float64
	switch o := other.(type) {
	case float64:
		y = o
	case Double:
		y = float64(o)
	default:
		return false
	}
	return doubleBits(x) == doubleBits(y)
}

// HashDouble folds the 64 bits of x into 32.
func HashDouble(x float64) int32 {
	bits := uint64(doubleBits(x))
	return int32(bits ^ bits>>32)
}

// FormatDouble renders x the way Double.toString does: integral values keep
// a ".0", magnitudes outside [1e-3, 1e7) use "1.0E10" notation.
func FormatDouble(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(x)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(x, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}

// Double is the boxed form of a numeric value.
type Double float64

func unboxDouble(v any) float64 {
	switch o := v.(type) {
	case float64:
		return o
	case Double:
		return float64(o)
	}
	panic(&ClassCastError{Value: v, Target: "Double"})
}

func (d Double) CompareTo(other any) int { return CompareDouble(float64(d), unboxDouble(other)) }
func (d Double) Equals(other any) bool   { return EqualsDouble(float64(d), other) }
func (d Double) HashCode() int32         { return HashDouble(float64(d)) }
func (d Double) String() string          { return FormatDouble(float64(d)) }
