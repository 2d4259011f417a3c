// Package shape classifies values by their primitive runtime representation.
package shape

import "strconv"

// Shape is the runtime representation category of a value. Shapes are
// mutually exclusive and exhaustive.
type Shape uint8

const (
	// Object is the catch-all: boxed values, user types, nil, and the
	// interop.Undefined sentinel.
	Object Shape = iota
	Numeric
	Boolean
	Textual

	// Count is the number of shapes.
	Count = int(Textual) + 1
)

var names = [Count]string{
	Object:  "object",
	Numeric: "numeric",
	Boolean: "boolean",
	Textual: "textual",
}

func (s Shape) String() string {
	if int(s) < Count {
		return names[s]
	}
	return "shape(" + strconv.Itoa(int(s)) + ")"
}

// All returns every shape in declaration order.
func All() []Shape {
	return []Shape{Object, Numeric, Boolean, Textual}
}

// Classify reports the shape of v. It inspects the dynamic type directly,
// since primitive values carry no method table to ask.
func Classify(v any) Shape {
	switch v.(type) {
	case float64:
		return Numeric
	case bool:
		return Boolean
	case string:
		return Textual
	default:
		return Object
	}
}

