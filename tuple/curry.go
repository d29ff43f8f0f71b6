package tuple

import "github.com/charmingruby/arrow/fn"

// Partial is a Function over Pair inputs with its first component already
// supplied.
type Partial[A, B, C any] struct {
	first A
	f     fn.Function[Pair[A, B], C]
}

// Apply calls the underlying Function with the captured first component and b.
func (p Partial[A, B, C]) Apply(b B) C {
	return p.f.Apply(Pair[A, B]{First: p.first, Second: b})
}

// Curried is the Function produced by Curry.
type Curried[A, B, C any] struct {
	f fn.Function[Pair[A, B], C]
}

// Apply captures a and returns a Function waiting for the second component.
func (c Curried[A, B, C]) Apply(a A) fn.Function[B, C] {
	return Partial[A, B, C]{first: a, f: c.f}
}

// Curry turns a Function over pairs into one that takes the first component
// and returns a Function of the second.
//
//	add := tuple.FromBinary(func(a, b int) int { return a + b })
//	addFive := tuple.Curry(add).Apply(5)
//	value := addFive.Apply(3) // 8
func Curry[A, B, C any](f fn.Function[Pair[A, B], C]) Curried[A, B, C] {
	return Curried[A, B, C]{f: f}
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, C any](g fn.Function[A, fn.Function[B, C]]) fn.Func[Pair[A, B], C] {
	return func(p Pair[A, B]) C {
		return g.Apply(p.First).Apply(p.Second)
	}
}

// FromBinary lifts a two-argument Go function into a Function over pairs.
func FromBinary[A, B, C any](op func(A, B) C) fn.Func[Pair[A, B], C] {
	return func(p Pair[A, B]) C {
		return op(p.First, p.Second)
	}
}

// ToBinary lowers a Function over pairs into a two-argument Go function.
func ToBinary[A, B, C any](f fn.Function[Pair[A, B], C]) func(A, B) C {
	return func(a A, b B) C {
		return f.Apply(Pair[A, B]{First: a, Second: b})
	}
}
