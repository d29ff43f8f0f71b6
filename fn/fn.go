// Package fn reifies unary functions as values and composes them.
//
// A Function is anything with an Apply method. Plain Go functions become
// Functions through Lift, and pipelines are assembled with Compose:
//
//	increment := fn.Lift(func(n int) int { return n + 1 })
//	triple := fn.Lift(func(n int) int { return n * 3 })
//	pipeline := fn.Compose(triple, increment)
//	value := pipeline.Apply(1) // 4
package fn

// Function maps a value of type A to a value of type B.
//
// Implementations must return for every input; a Function that needs to
// report absence or failure does so through its output type (for example
// option.Option or result.Result), never by panicking.
type Function[A, B any] interface {
	Apply(A) B
}

// Unit is the informationless output of effectful Functions.
type Unit = struct{}

// Func adapts an ordinary Go function into a Function.
//
// Example:
//
//	var length Function[string, int] = Func[string, int](func(s string) int {
//		return len(s)
//	})
type Func[A, B any] func(A) B

// Apply calls f with a.
func (f Func[A, B]) Apply(a A) B {
	return f(a)
}

// Lift wraps op into a Function, inferring the input and output types from
// the signature of op.
//
// Example:
//
//	upper := Lift(strings.ToUpper)
//	value := upper.Apply("go")
func Lift[A, B any](op func(A) B) Func[A, B] {
	return Func[A, B](op)
}

// Effect lifts a procedure into a Function returning Unit.
//
// Example:
//
//	printer := Effect(func(s string) { fmt.Println(s) })
//	printer.Apply("hello")
func Effect[A any](op func(A)) Func[A, Unit] {
	return func(a A) Unit {
		op(a)
		return Unit{}
	}
}

type identity[T any] struct{}

func (identity[T]) Apply(v T) T {
	return v
}

// Identity returns the shared identity Function for T. It is the left and
// right unit of Compose.
//
// Example:
//
//	id := Identity[int]()
//	value := id.Apply(42)
func Identity[T any]() Function[T, T] {
	return Shared(func() identity[T] { return identity[T]{} })
}

// Constant returns a Function that ignores its input and always yields v.
//
// Example:
//
//	fallback := Constant[string](time.Minute)
//	fmt.Println(fallback.Apply("anything"))
func Constant[A, B any](v B) Func[A, B] {
	return func(A) B {
		return v
	}
}

// Composed is the Function produced by Compose. It owns both stages.
type Composed[A, B, C any] struct {
	first  Function[A, B]
	second Function[B, C]
}

// Apply runs the first stage on a and feeds its output to the second.
func (c Composed[A, B, C]) Apply(a A) C {
	return c.second.Apply(c.first.Apply(a))
}

// Compose sequences f and g left to right: Compose(f, g).Apply(x) is
// g.Apply(f.Apply(x)). The output type of f must be the input type of g.
//
// Example:
//
//	fn := Compose(
//		Lift(func(n int) int { return n * 2 }),
//		Lift(func(n int) int { return n + 3 }),
//	)
//	value := fn.Apply(5) // 13
func Compose[A, B, C any](f Function[A, B], g Function[B, C]) Composed[A, B, C] {
	return Composed[A, B, C]{first: f, second: g}
}

// Chain sequences same-typed Functions left to right. An empty chain is the
// identity.
//
// Example:
//
//	normalize := Chain(Lift(strings.TrimSpace), Lift(strings.ToLower))
func Chain[T any](fns ...Function[T, T]) Func[T, T] {
	stages := make([]Function[T, T], len(fns))
	copy(stages, fns)
	return func(value T) T {
		result := value
		for _, stage := range stages {
			result = stage.Apply(result)
		}
		return result
	}
}

// Pipe applies a sequence of same-typed Functions to value.
//
// Example:
//
//	result := Pipe(2,
//		Lift(func(n int) int { return n * 2 }),
//		Lift(func(n int) int { return n + 1 }),
//	)
func Pipe[T any](value T, fns ...Function[T, T]) T {
	return Chain(fns...).Apply(value)
}
