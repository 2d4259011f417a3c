// Package interop holds the unchecked value operations used by generated
// dispatch call sites and by package dispatch.
//
// None of these functions validate their input. Reinterpreting a value whose
// dynamic type does not match the requested shape is undefined behaviour;
// callers must classify the value with package shape first.
package interop

import (
	"unsafe"

	"google.golang.org/protobuf/types/known/structpb"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the designated "no value" sentinel. It is distinct from nil,
// which stands for a null reference.
var Undefined any = undefined{}

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func dataOf(v *any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(v)).data
}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	return v == Undefined
}

// UnsafeCastToDouble reads v as a float64 without checking its dynamic type.
func UnsafeCastToDouble(v any) float64 {
	return *(*float64)(dataOf(&v))
}

// UnsafeCastToBoolean reads v as a bool without checking its dynamic type.
func UnsafeCastToBoolean(v any) bool {
	return *(*bool)(dataOf(&v))
}

// UnsafeCastToString reads v as a string without checking its dynamic type.
func UnsafeCastToString(v any) string {
	return *(*string)(dataOf(&v))
}

// UncheckedCast changes the static type of v. With T = any it is the
// identity, nil included; any other T panics on a mismatched dynamic type.
// A nil v yields the zero T.
func UncheckedCast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// GetProperty looks key up in a map-like value. It returns Undefined when
// the key is missing or m is not map-like. Values held in a protobuf Struct
// are returned in their native Go form (see structpb.Value.AsInterface).
func GetProperty(m any, key string) any {
	switch m := m.(type) {
	case map[string]any:
		if v, ok := m[key]; ok {
			return v
		}
	case *structpb.Struct:
		if v, ok := m.GetFields()[key]; ok {
			return v.AsInterface()
		}
	}
	return Undefined
}
