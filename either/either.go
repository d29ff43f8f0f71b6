// Package either implements a two-case tagged union and the sum algebra over
// fn.Function values.
//
// Every Either holds exactly one of its cases. The zero value is a Left
// holding the zero L, so an Either is never in a "neither" state. Fold is the
// single place the case tag is read; every other operation is built on it.
package either

import (
	"fmt"

	"github.com/charmingruby/arrow/option"
	"github.com/charmingruby/arrow/result"
)

// Either holds a value of type L (the left case) or of type R (the right
// case). L and R are expected to be distinct, unrelated types so that the
// case carries meaning beyond the value itself; when they coincide the tag
// still tells the cases apart.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either in the left case.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs an Either in the right case.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Fold collapses e by applying onLeft or onRight to the case it holds.
// Exactly one of the two functions runs.
func Fold[L, R, C any](e Either[L, R], onLeft func(L) C, onRight func(R) C) C {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// IsLeft reports whether e holds the left case.
func (e Either[L, R]) IsLeft() bool {
	return Fold(e, constant[L](true), constant[R](false))
}

// IsRight reports whether e holds the right case.
func (e Either[L, R]) IsRight() bool {
	return Fold(e, constant[L](false), constant[R](true))
}

// LeftOption returns the left value, or None for a right case.
func (e Either[L, R]) LeftOption() option.Option[L] {
	return Fold(e, option.Some[L], func(R) option.Option[L] { return option.None[L]() })
}

// RightOption returns the right value, or None for a left case.
func (e Either[L, R]) RightOption() option.Option[R] {
	return Fold(e, func(L) option.Option[R] { return option.None[R]() }, option.Some[R])
}

// Swap exchanges the cases: a Left becomes a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	return Fold(e, Right[R, L], Left[R, L])
}

// String implements fmt.Stringer for debugging.
func (e Either[L, R]) String() string {
	return Fold(e,
		func(l L) string { return fmt.Sprintf("Left(%v)", l) },
		func(r R) string { return fmt.Sprintf("Right(%v)", r) },
	)
}

// FlatMapRight chains a computation on the right case, passing a left case
// through unchanged.
func FlatMapRight[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	return Fold(e, Left[L, U], f)
}

// FromResult converts a Result into an Either carrying the error on the left.
func FromResult[T any](r result.Result[T]) Either[error, T] {
	return result.Fold(r, Left[error, T], Right[error, T])
}

// ToResult converts an Either with an error on the left into a Result.
func ToResult[T any](e Either[error, T]) result.Result[T] {
	return Fold(e, result.Err[T], result.Ok[T])
}

func constant[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}
