package either

import "github.com/charmingruby/arrow/fn"

type injectLeft[A, B any] struct{}

func (injectLeft[A, B]) Apply(a A) Either[A, B] {
	return Left[A, B](a)
}

type injectRight[A, B any] struct{}

func (injectRight[A, B]) Apply(b B) Either[A, B] {
	return Right[A, B](b)
}

// InjectLeft is the shared Function placing its input in the left case.
func InjectLeft[A, B any]() fn.Function[A, Either[A, B]] {
	return fn.Shared(func() injectLeft[A, B] { return injectLeft[A, B]{} })
}

// InjectRight is the shared Function placing its input in the right case.
func InjectRight[A, B any]() fn.Function[B, Either[A, B]] {
	return fn.Shared(func() injectRight[A, B] { return injectRight[A, B]{} })
}

// Case is case analysis over Functions: a left value goes to f, a right value
// to g. The other Function is never invoked.
func Case[L, R, C any](f fn.Function[L, C], g fn.Function[R, C]) fn.Func[Either[L, R], C] {
	return func(e Either[L, R]) C {
		return Fold(e, f.Apply, g.Apply)
	}
}

// Bimap applies f to a left value and g to a right value, keeping the case.
func Bimap[A, B, C, D any](f fn.Function[A, B], g fn.Function[C, D]) fn.Func[Either[A, C], Either[B, D]] {
	return Case[A, C, Either[B, D]](
		fn.Compose[A, B, Either[B, D]](f, InjectLeft[B, D]()),
		fn.Compose[C, D, Either[B, D]](g, InjectRight[B, D]()),
	)
}

// MapLeft transforms the left case and leaves a right value of type C
// untouched.
func MapLeft[C, A, B any](f fn.Function[A, B]) fn.Func[Either[A, C], Either[B, C]] {
	return Bimap(f, fn.Identity[C]())
}

// MapRight transforms the right case and leaves a left value of type C
// untouched.
func MapRight[C, A, B any](f fn.Function[A, B]) fn.Func[Either[C, A], Either[C, B]] {
	return Bimap(fn.Identity[C](), f)
}

// LeftOf runs f and injects its output into the left case of an Either whose
// right type C is fixed by the caller.
func LeftOf[C, A, B any](f fn.Function[A, B]) fn.Composed[A, B, Either[B, C]] {
	return fn.Compose[A, B, Either[B, C]](f, InjectLeft[B, C]())
}

// RightOf runs f and injects its output into the right case of an Either
// whose left type C is fixed by the caller.
func RightOf[C, A, B any](f fn.Function[A, B]) fn.Composed[A, B, Either[C, B]] {
	return fn.Compose[A, B, Either[C, B]](f, InjectRight[C, B]())
}

// SwapF is Either.Swap as a Function.
func SwapF[L, R any]() fn.Function[Either[L, R], Either[R, L]] {
	return fn.Lift(Either[L, R].Swap)
}

// Merge collapses an Either whose cases share a type.
func Merge[T any]() fn.Function[Either[T, T], T] {
	return Case[T, T, T](fn.Identity[T](), fn.Identity[T]())
}
