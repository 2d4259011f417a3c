package dispatch

import (
	"slices"
	"sync"

	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/pkg/lang"
)

var equalsSlot = sync.OnceValue(func() *Binary[any, bool] {
	m := &Binary[any, bool]{
		Name:    config.EqualsMethod,
		Numeric: lang.EqualsDouble,
		Boolean: lang.EqualsBoolean,
		Textual: lang.EqualsString,
		Object:  lang.ObjectEquals,
	}
	logSlot(m.Name)
	return m
})

var hashCodeSlot = sync.OnceValue(func() *Unary[int32] {
	m := NewUnary(config.HashCodeMethod, lang.HashDouble, lang.HashBoolean, lang.HashString, lang.ObjectHashCode)
	logSlot(m.Name())
	return m
})

var toStringSlot = sync.OnceValue(func() *Unary[string] {
	m := NewUnary(config.ToStringMethod, lang.FormatDouble, formatBoolean, identity, lang.ObjectToString)
	logSlot(m.Name())
	return m
})

func formatBoolean(b bool) string { return lang.Boolean(b).String() }

func identity(s string) string { return s }

// Equals invokes equals on a. Unlike CompareTo, b may have any shape; a
// value of a different shape is simply unequal.
func Equals(a, b any) bool {
	return equalsSlot().Dispatch(a, b)
}

// HashCode invokes hashCode on a.
func HashCode(a any) int32 {
	return hashCodeSlot().Dispatch(a)
}

// ToString invokes toString on a.
func ToString(a any) string {
	return toStringSlot().Dispatch(a)
}

// Slots returns the names of the dispatched methods.
func Slots() []string {
	return slices.Clone(config.MethodNames)
}
