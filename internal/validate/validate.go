// Package validate holds the low-level validation outcome type and the
// error accumulator the schema validators build on. Field failures
// accumulate rather than short-circuiting, so a caller sees every broken
// field in one pass.
package validate

import (
	"fmt"
	"strings"

	"github.com/paybr/cielo_facade/internal/result"
)

// Result is a local validation outcome: either the normalized record or
// the accumulated field errors. It never crosses the HTTP boundary; the
// ToAPI adapter translates it into a result.Result first.
type Result[T any] struct {
	Success bool
	Data    T
	Errors  []string
}

// OK wraps a normalized record in a passing result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps accumulated errors in a failing result.
func Fail[T any](errs []string) Result[T] {
	return Result[T]{Success: false, Errors: errs}
}

// Errs accumulates field-qualified error messages of the form
// "<field>: <message>".
type Errs struct {
	list []string
}

// Add records a failure against a field.
func (e *Errs) Add(field, msg string) {
	e.list = append(e.list, field+": "+msg)
}

// Addf records a formatted failure against a field.
func (e *Errs) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Empty reports whether no failure was recorded.
func (e *Errs) Empty() bool { return len(e.list) == 0 }

// List returns the recorded failures in insertion order.
func (e *Errs) List() []string { return e.list }

// ToAPI is the single translation point between the many-small-errors
// validation shape and the one-error API shape: a pass carries the data
// through with status 200, a failure joins the field errors with ", "
// into a 400 VALIDATION_ERROR. No other component performs this join.
func ToAPI[T any](r Result[T]) result.Result[T] {
	if !r.Success {
		msg := strings.Join(r.Errors, ", ")
		if msg == "" {
			msg = "Validation failed"
		}
		return result.Invalid[T](msg)
	}
	return result.OK(r.Data)
}
