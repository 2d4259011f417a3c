package lang

import "unicode/utf16"

// units returns the UTF-16 code units of s. Invalid UTF-8 reads as U+FFFD.
func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// CompareString compares lexicographically by UTF-16 code unit. The result
// is the difference of the first mismatching units, or of the lengths when
// one string is a prefix of the other.
func CompareString(x, y string) int {
	if x == y {
		return 0
	}
	xs, ys := units(x), units(y)
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if xs[i] != ys[i] {
			return int(xs[i]) - int(ys[i])
		}
	}
	return len(xs) - len(ys)
}

func EqualsString(x string, other any) bool {
	switch o := other.(type) {
	case string:
		return x == o
	case String:
		return x == string(o)
	}
	return false
}

// HashString is s[0]*31^(n-1) + ... + s[n-1] over UTF-16 code units, with
// int32 overflow.
func HashString(s string) int32 {
	var h int32
	for _, u := range units(s) {
		h = 31*h + int32(u)
	}
	return h
}

// String is the boxed form of a textual value.
type String string

func unboxString(v any) string {
	switch o := v.(type) {
	case string:
		return o
	case String:
		return string(o)
	}
	panic(&ClassCastError{Value: v, Target: "String"})
}

func (s String) CompareTo(other any) int { return CompareString(string(s), unboxString(other)) }
func (s String) Equals(other any) bool   { return EqualsString(string(s), other) }
func (s String) HashCode() int32         { return HashString(string(s)) }
func (s String) String() string          { return string(s) }
