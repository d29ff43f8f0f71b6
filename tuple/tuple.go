// Package tuple implements ordered pairs and the product algebra over
// fn.Function values: fan-out, parallel application, projections, swapping,
// currying, and distributing Option over a pair.
package tuple

import (
	"fmt"

	"github.com/charmingruby/arrow/fn"
	"github.com/charmingruby/arrow/option"
)

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// New builds a Pair from its two components.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with the components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type left[A, B any] struct{}

func (left[A, B]) Apply(p Pair[A, B]) A {
	return p.First
}

type right[A, B any] struct{}

func (right[A, B]) Apply(p Pair[A, B]) B {
	return p.Second
}

type swap[A, B any] struct{}

func (swap[A, B]) Apply(p Pair[A, B]) Pair[B, A] {
	return p.Swap()
}

// Left is the shared projection onto the first component.
func Left[A, B any]() fn.Function[Pair[A, B], A] {
	return fn.Shared(func() left[A, B] { return left[A, B]{} })
}

// Right is the shared projection onto the second component.
func Right[A, B any]() fn.Function[Pair[A, B], B] {
	return fn.Shared(func() right[A, B] { return right[A, B]{} })
}

// Swap is the shared Function exchanging the components of a Pair.
func Swap[A, B any]() fn.Function[Pair[A, B], Pair[B, A]] {
	return fn.Shared(func() swap[A, B] { return swap[A, B]{} })
}

// Fanout feeds the same input to f and g and pairs their outputs. Both
// Functions always run.
func Fanout[A, B, C any](f fn.Function[A, B], g fn.Function[A, C]) fn.Func[A, Pair[B, C]] {
	return func(a A) Pair[B, C] {
		return Pair[B, C]{First: f.Apply(a), Second: g.Apply(a)}
	}
}

// Both applies f to the first component and g to the second.
func Both[A, B, C, D any](f fn.Function[A, B], g fn.Function[C, D]) fn.Func[Pair[A, C], Pair[B, D]] {
	return Fanout[Pair[A, C], B, D](
		fn.Compose[Pair[A, C], A, B](Left[A, C](), f),
		fn.Compose[Pair[A, C], C, D](Right[A, C](), g),
	)
}

// MapFirst transforms the first component and leaves a second component of
// type C untouched.
func MapFirst[C, A, B any](f fn.Function[A, B]) fn.Func[Pair[A, C], Pair[B, C]] {
	return Both(f, fn.Identity[C]())
}

// MapSecond transforms the second component and leaves a first component of
// type C untouched.
func MapSecond[C, A, B any](f fn.Function[A, B]) fn.Func[Pair[C, A], Pair[C, B]] {
	return Both(fn.Identity[C](), f)
}

// Distribute turns a pair of Options into an Option of a pair. The result is
// present only when both components are present.
func Distribute[A, B any](p Pair[option.Option[A], option.Option[B]]) option.Option[Pair[A, B]] {
	a, ok := p.First.Get()
	if !ok {
		return option.None[Pair[A, B]]()
	}
	b, ok := p.Second.Get()
	if !ok {
		return option.None[Pair[A, B]]()
	}
	return option.Some(Pair[A, B]{First: a, Second: b})
}

// DistributeOption is Distribute as a Function.
func DistributeOption[A, B any]() fn.Function[Pair[option.Option[A], option.Option[B]], option.Option[Pair[A, B]]] {
	return fn.Lift(Distribute[A, B])
}
