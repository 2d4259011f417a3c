package cases

import (
	"context"
	"fmt"

	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/internal/logging"
	"github.com/funvibe/devirt/pkg/dispatch"
	"github.com/funvibe/devirt/pkg/interop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one case.
type Result struct {
	Case  Case
	Value any
	Err   error
}

func (r Result) Passed() bool { return r.Err == nil }

// Invoke dispatches method on recv. Argument-less methods ignore arg.
func Invoke(method string, recv, arg any) (any, error) {
	switch method {
	case config.CompareToMethod:
		return dispatch.CompareTo(recv, arg), nil
	case config.EqualsMethod:
		return dispatch.Equals(recv, arg), nil
	case config.HashCodeMethod:
		return dispatch.HashCode(recv), nil
	case config.ToStringMethod:
		return dispatch.ToString(recv), nil
	}
	return nil, fmt.Errorf("unknown method %q", method)
}

// Run evaluates cases with at most workers in flight. Results keep the
// order of cases. A panic inside a dispatch fails only its own case. The
// returned error is non-nil only when ctx was cancelled.
func Run(ctx context.Context, cases []Case, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = config.DefaultWorkers
	}
	results := make([]Result, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(cases[i])
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func runCase(c Case) (res Result) {
	res.Case = c
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
		logging.Logger().Debug("case evaluated",
			zap.String("case", c.Name),
			zap.String("method", c.Method),
			zap.Bool("passed", res.Err == nil))
	}()

	v, err := Invoke(c.Method, c.Receiver, c.Argument)
	if err != nil {
		res.Err = err
		return res
	}
	res.Value = v
	res.Err = check(c.Method, v, c.Expect)
	return res
}

func check(method string, got, expect any) error {
	if interop.IsUndefined(expect) {
		return nil
	}

	switch method {
	case config.CompareToMethod:
		n := got.(int)
		if want, ok := expect.(float64); ok {
			if float64(n) != want {
				return fmt.Errorf("got %d, want %v", n, want)
			}
			return nil
		}
		if gotSign := signName(n); gotSign != expect {
			return fmt.Errorf("got %s (%d), want %v", gotSign, n, expect)
		}
	case config.HashCodeMethod:
		if n := got.(int32); float64(n) != expect {
			return fmt.Errorf("got %d, want %v", n, expect)
		}
	default:
		if got != expect {
			return fmt.Errorf("got %v, want %v", Format(got), Format(expect))
		}
	}
	return nil
}

func signName(n int) string {
	switch {
	case n < 0:
		return config.ExpectNegative
	case n > 0:
		return config.ExpectPositive
	}
	return config.ExpectZero
}

// Format renders a decoded value for display. Textual values are quoted so
// they stay distinguishable from numbers and booleans.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	}
	if interop.IsUndefined(v) {
		return "undefined"
	}
	return dispatch.ToString(v)
}
