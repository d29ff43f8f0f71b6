package option

import "github.com/charmingruby/arrow/fn"

type ret[T any] struct{}

func (ret[T]) Apply(v T) Option[T] {
	return Some(v)
}

// Return is the shared Function that wraps every input in Some.
func Return[T any]() fn.Function[T, Option[T]] {
	return fn.Shared(func() ret[T] { return ret[T]{} })
}

// Bind lifts an Option-returning Function so it accepts an Option. None
// propagates without invoking f.
func Bind[A, B any](f fn.Function[A, Option[B]]) fn.Func[Option[A], Option[B]] {
	return func(o Option[A]) Option[B] {
		if !o.ok {
			return None[B]()
		}
		return f.Apply(o.value)
	}
}

// Lift maps a total Function over the present case. It is
// Bind(Compose(f, Return)).
func Lift[A, B any](f fn.Function[A, B]) fn.Func[Option[A], Option[B]] {
	return Bind[A, B](fn.Compose[A, B, Option[B]](f, Return[B]()))
}

// Compose is Kleisli composition: run f, then g on its value if there is one.
func Compose[A, B, C any](f fn.Function[A, Option[B]], g fn.Function[B, Option[C]]) fn.Composed[A, Option[B], Option[C]] {
	return fn.Compose[A, Option[B], Option[C]](f, Bind(g))
}

// Sink runs the effect f on the contained value, doing nothing on None.
func Sink[A any](f fn.Function[A, fn.Unit]) fn.Func[Option[A], fn.Unit] {
	return func(o Option[A]) fn.Unit {
		if o.ok {
			f.Apply(o.value)
		}
		return fn.Unit{}
	}
}

// Discard runs f for its effect and always yields None. The output element
// type B is chosen by the caller:
//
//	flush := option.Discard[Snapshot](fn.Effect(writer.Flush))
func Discard[B, A, C any](f fn.Function[A, C]) fn.Func[A, Option[B]] {
	return func(a A) Option[B] {
		f.Apply(a)
		return None[B]()
	}
}

// Tap runs the effect f on the contained value and passes the Option through
// unchanged.
func Tap[A any](f fn.Function[A, fn.Unit]) fn.Func[Option[A], Option[A]] {
	return func(o Option[A]) Option[A] {
		if o.ok {
			f.Apply(o.value)
		}
		return o
	}
}
