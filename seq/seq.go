// Package seq implements the list algebra over fn.Function values and a few
// eager slice helpers.
//
// Every function returns a fresh slice that shares no backing array with its
// input; an empty input yields an empty, non-nil slice.
package seq

import (
	"github.com/charmingruby/arrow/fn"
	"github.com/charmingruby/arrow/tuple"
)

// Map transforms each element using f and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, f func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// FlatMap applies f to each element and concatenates the resulting slices in
// input order.
func FlatMap[A any, B any](in []A, f func(A) []B) []B {
	out := []B{}
	for _, v := range in {
		out = append(out, f(v)...)
	}
	return out
}

// Filter keeps values satisfying predicate.
func Filter[T any](in []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, f func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}

// Zip combines two slices into a slice of pairs up to the shortest length.
func Zip[A any, B any](a []A, b []B) []tuple.Pair[A, B] {
	limit := min(len(a), len(b))
	result := make([]tuple.Pair[A, B], limit)
	for i := range limit {
		result[i] = tuple.New(a[i], b[i])
	}
	return result
}

type ret[T any] struct{}

func (ret[T]) Apply(v T) []T {
	return []T{v}
}

// Return is the shared Function producing a one-element slice.
func Return[T any]() fn.Function[T, []T] {
	return fn.Shared(func() ret[T] { return ret[T]{} })
}

// Lift maps f over every element, preserving length and order.
func Lift[A, B any](f fn.Function[A, B]) fn.Func[[]A, []B] {
	return func(in []A) []B {
		return Map(in, f.Apply)
	}
}

// Bind applies f to every element and flattens the results in input order.
func Bind[A, B any](f fn.Function[A, []B]) fn.Func[[]A, []B] {
	return func(in []A) []B {
		return FlatMap(in, f.Apply)
	}
}

// FanOut applies every Function in fns to the same input and collects the
// outputs in the order of fns.
func FanOut[A, B any](fns []fn.Function[A, B]) fn.Func[A, []B] {
	stages := make([]fn.Function[A, B], len(fns))
	copy(stages, fns)
	return func(a A) []B {
		out := make([]B, len(stages))
		for i, f := range stages {
			out[i] = f.Apply(a)
		}
		return out
	}
}
