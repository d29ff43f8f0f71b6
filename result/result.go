// Package result carries a value or an error through chains of fn.Function
// values, short-circuiting at the first failure.
//
// Example:
//
//	parse := result.Try(strconv.Atoi)
//	half := result.Lift(fn.Lift(func(n int) int { return n / 2 }))
//	res := fn.Compose(parse, half).Apply("84")
//	value, err := res.Unwrap()
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) so
// pipelines built from them can be regrouped freely.
package result

import (
	"errors"

	"github.com/charmingruby/arrow/fn"
)

var errNil = errors.New("result: nil error")

// Result is the output of a stage that may fail: a value of type T or an
// error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok is a successful Result. As a Function it is Return.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err is a failed Result. A nil err is replaced by a "result: nil error"
// sentinel so a failing stage can never be read as a success.
//
// Example:
//
//	validate := fn.Lift(func(port int) result.Result[int] {
//		if port <= 0 {
//			return result.Err[int](errInvalidPort)
//		}
//		return result.Ok(port)
//	})
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil
	}
	return Result[T]{err: err}
}

// FromTuple adapts Go's (value, error) convention. Try is its Function form.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Fold is case analysis on r: onErr receives the error, onOk the value.
// Exactly one of them runs.
//
// Example:
//
//	status := result.Fold(pipeline.Apply(input),
//		func(err error) string { return "rejected: " + err.Error() },
//		func(n int) string { return "accepted " + strconv.Itoa(n) },
//	)
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the error, or nil when r is ok.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap leaves the result algebra at the edge of a pipeline, returning the
// usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnsafeUnwrap returns the value and panics with the stored error when r
// failed. Use it only after checking IsOk.
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the value, or fallback when r failed.
//
// Example:
//
//	port := result.Compose(parse, validate).Apply(raw).UnwrapOr(8080)
func (r Result[T]) UnwrapOr(fallback T) T {
	return Fold(r, func(error) T { return fallback }, func(v T) T { return v })
}

// Map is the value form of Lift.
func Map[T any, U any](r Result[T], f func(T) U) Result[U] {
	return Lift[T, U](fn.Lift(f)).Apply(r)
}

// FlatMap is the value form of Bind.
func FlatMap[T any, U any](r Result[T], f func(T) Result[U]) Result[U] {
	return Bind[T, U](fn.Lift(f)).Apply(r)
}

type ret[T any] struct{}

func (ret[T]) Apply(v T) Result[T] {
	return Ok(v)
}

// Return is the shared Function wrapping any value into a successful Result.
//
// Example:
//
//	wrap := result.Return[string]()
//	res := wrap.Apply("ready")
func Return[T any]() fn.Function[T, Result[T]] {
	return fn.Shared(func() ret[T] { return ret[T]{} })
}

// Bind lifts a fallible Function so it accepts a Result. A failed input is
// passed through without invoking f.
//
// Example:
//
//	check := result.Bind(validate)
//	port := check.Apply(result.Try(strconv.Atoi).Apply(raw))
func Bind[A, B any](f fn.Function[A, Result[B]]) fn.Func[Result[A], Result[B]] {
	return func(r Result[A]) Result[B] {
		if r.err != nil {
			return Err[B](r.err)
		}
		return f.Apply(r.value)
	}
}

// Lift maps a total Function over the success case.
//
// Example:
//
//	length := result.Lift(fn.Lift(func(s string) int { return len(s) }))
func Lift[A, B any](f fn.Function[A, B]) fn.Func[Result[A], Result[B]] {
	return Bind[A, B](fn.Compose[A, B, Result[B]](f, Return[B]()))
}

// Compose sequences two fallible Functions, stopping at the first error.
//
// Example:
//
//	parseThenValidate := result.Compose(parse, validate)
func Compose[A, B, C any](f fn.Function[A, Result[B]], g fn.Function[B, Result[C]]) fn.Composed[A, Result[B], Result[C]] {
	return fn.Compose[A, Result[B], Result[C]](f, Bind(g))
}

// Try lifts a Go function with an (value, error) signature into a Function
// returning a Result.
//
// Example:
//
//	parse := result.Try(strconv.Atoi)
//	res := parse.Apply("42")
func Try[A, B any](op func(A) (B, error)) fn.Func[A, Result[B]] {
	return func(a A) Result[B] {
		value, err := op(a)
		return FromTuple(value, err)
	}
}
