// Package lang provides the boxed value types and the per-shape method
// implementations that package dispatch routes to.
//
// Numeric, boolean and textual values travel as plain float64, bool and
// string. The functions in this package (CompareDouble, EqualsString, ...)
// are the devirtualized forms of the boxed types' methods: they take the
// receiver as a primitive. The boxed types Double, Boolean and String wrap
// the same primitives as ordinary objects.
package lang

import (
	"fmt"
	"hash/fnv"
)

// Comparable is implemented by object values that define a total order.
// CompareTo returns a negative number, zero, or a positive number.
type Comparable interface {
	CompareTo(other any) int
}

// Equaler overrides the default identity equality of an object value.
type Equaler interface {
	Equals(other any) bool
}

// Hasher overrides the default hash code of an object value.
type Hasher interface {
	HashCode() int32
}

// ClassCastError is the panic value raised when a boxed method receives an
// argument of the wrong type.
type ClassCastError struct {
	Value  any
	Target string
}

func (e *ClassCastError) Error() string {
	return fmt.Sprintf("lang: %T cannot be cast to %s", e.Value, e.Target)
}

// NullPointerError is the panic value raised when an Object method is
// invoked on a nil receiver.
type NullPointerError struct {
	Method string
}

func (e *NullPointerError) Error() string {
	return fmt.Sprintf("lang: %s invoked on nil receiver", e.Method)
}

// ObjectEquals is the object-shaped equals: it defers to Equaler and falls
// back to Go equality of the dynamic values.
func ObjectEquals(recv, other any) bool {
	if recv == nil {
		panic(&NullPointerError{Method: "equals"})
	}
	if e, ok := recv.(Equaler); ok {
		return e.Equals(other)
	}
	return identical(recv, other)
}

// ObjectHashCode is the object-shaped hashCode. Without a Hasher the hash
// is derived from the %v rendering, so it agrees with identity equality
// for comparable values.
func ObjectHashCode(recv any) int32 {
	if recv == nil {
		panic(&NullPointerError{Method: "hashCode"})
	}
	if h, ok := recv.(Hasher); ok {
		return h.HashCode()
	}
	return hashString(fmt.Sprintf("%T:%v", recv, recv))
}

// ObjectToString is the object-shaped toString.
func ObjectToString(recv any) string {
	if recv == nil {
		panic(&NullPointerError{Method: "toString"})
	}
	if s, ok := recv.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(recv)
}

func identical(a, b any) (eq bool) {
	defer func() {
		// uncomparable dynamic types (slices, maps, funcs) are never equal
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func hashString(s string) int32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int32(h.Sum32())
}
