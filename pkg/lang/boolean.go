package lang

import "strconv"

// CompareBoolean orders false before true.
func CompareBoolean(x, y bool) int {
	switch {
	case x == y:
		return 0
	case x:
		return 1
	default:
		return -1
	}
}

func EqualsBoolean(x bool, other any) bool {
	switch o := other.(type) {
	case bool:
		return x == o
	case Boolean:
		return x == bool(o)
	}
	return false
}

func HashBoolean(x bool) int32 {
	if x {
		return 1231
	}
	return 1237
}

// Boolean is the boxed form of a boolean value.
type Boolean bool

func unboxBoolean(v any) bool {
	switch o := v.(type) {
	case bool:
		return o
	case Boolean:
		return bool(o)
	}
	panic(&ClassCastError{Value: v, Target: "Boolean"})
}

func (b Boolean) CompareTo(other any) int { return CompareBoolean(bool(b), unboxBoolean(other)) }
func (b Boolean) Equals(other any) bool   { return EqualsBoolean(bool(b), other) }
func (b Boolean) HashCode() int32         { return HashBoolean(bool(b)) }
func (b Boolean) String() string          { return strconv.FormatBool(bool(b)) }
