// Package dispatch routes interface method calls by the runtime shape of the
// receiver.
//
// Numeric, boolean and textual values have no method table of their own, so
// each method slot carries one implementation per primitive shape and
// switches on shape.Classify. Object-shaped receivers are handed back to
// their own methods through a Go interface call, which keeps overrides
// intact.
//
// Callers are expected to pass statically compatible receivers and
// arguments. The router does not check that an argument has the receiver's
// shape, and a nil receiver fails inside the object implementation.
package dispatch

import (
	"fmt"

	"github.com/funvibe/devirt/internal/logging"
	"github.com/funvibe/devirt/pkg/interop"
	"github.com/funvibe/devirt/pkg/shape"
	"go.uber.org/zap"
)

// Binary is a method slot taking one argument besides the receiver.
type Binary[A, R any] struct {
	Name    string
	Numeric func(recv float64, arg A) R
	Boolean func(recv bool, arg A) R
	Textual func(recv string, arg A) R
	Object  func(recv any, arg A) R
}

// Dispatch classifies recv and invokes the matching implementation.
func (m *Binary[A, R]) Dispatch(recv any, arg A) R {
	switch s := shape.Classify(recv); s {
	case shape.Numeric:
		if m.Numeric == nil {
			panic(m.missing(s))
		}
		return m.Numeric(interop.UnsafeCastToDouble(recv), arg)
	case shape.Boolean:
		if m.Boolean == nil {
			panic(m.missing(s))
		}
		return m.Boolean(interop.UnsafeCastToBoolean(recv), arg)
	case shape.Textual:
		if m.Textual == nil {
			panic(m.missing(s))
		}
		return m.Textual(interop.UnsafeCastToString(recv), arg)
	case shape.Object:
		if m.Object == nil {
			panic(m.missing(s))
		}
		return m.Object(recv, arg)
	default:
		panic(fmt.Sprintf("dispatch: %s: unhandled shape %s", m.Name, s))
	}
}

func (m *Binary[A, R]) missing(s shape.Shape) string {
	return fmt.Sprintf("dispatch: %s has no %s implementation", m.Name, s)
}

// Unary is a method slot without arguments.
type Unary[R any] struct {
	b Binary[struct{}, R]
}

// NewUnary builds a Unary slot from its four shape implementations.
func NewUnary[R any](name string, numeric func(float64) R, boolean func(bool) R, textual func(string) R, object func(any) R) *Unary[R] {
	u := &Unary[R]{b: Binary[struct{}, R]{Name: name}}
	if numeric != nil {
		u.b.Numeric = func(recv float64, _ struct{}) R { return numeric(recv) }
	}
	if boolean != nil {
		u.b.Boolean = func(recv bool, _ struct{}) R { return boolean(recv) }
	}
	if textual != nil {
		u.b.Textual = func(recv string, _ struct{}) R { return textual(recv) }
	}
	if object != nil {
		u.b.Object = func(recv any, _ struct{}) R { return object(recv) }
	}
	return u
}

func (u *Unary[R]) Name() string { return u.b.Name }

// Dispatch classifies recv and invokes the matching implementation.
func (u *Unary[R]) Dispatch(recv any) R {
	return u.b.Dispatch(recv, struct{}{})
}

func logSlot(name string) {
	logging.Logger().Debug("dispatch slot initialized", zap.String("slot", name))
}
