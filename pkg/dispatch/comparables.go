package dispatch

import (
	"sync"

	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/pkg/interop"
	"github.com/funvibe/devirt/pkg/lang"
)

var compareToSlot = sync.OnceValue(func() *Binary[any, int] {
	m := &Binary[any, int]{
		Name: config.CompareToMethod,
		Numeric: func(a float64, b any) int {
			return lang.CompareDouble(a, interop.UnsafeCastToDouble(b))
		},
		Boolean: func(a bool, b any) int {
			return lang.CompareBoolean(a, interop.UnsafeCastToBoolean(b))
		},
		Textual: func(a string, b any) int {
			return lang.CompareString(a, interop.UnsafeCastToString(b))
		},
		Object: func(a any, b any) int {
			return a.(lang.Comparable).CompareTo(b)
		},
	}
	logSlot(m.Name)
	return m
})

// CompareTo invokes compareTo on a with argument b. b must have the same
// shape as a; it is reinterpreted, not converted.
func CompareTo(a, b any) int {
	return compareToSlot().Dispatch(a, b)
}
