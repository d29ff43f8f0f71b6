// Package option implements a generic Option type for presence/absence
// semantics and the Maybe algebra over fn.Function values.
//
// Absence is an ordinary value: it flows through Bind and Compose without
// invoking later stages.
//
//	port := option.Compose(lookup, parsePort)
//	addr := option.Map(port.Apply("api"), formatAddr).GetOrElse("localhost:80")
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/arrow/fn"
	"github.com/charmingruby/arrow/result"
)

// Option holds zero or one value of type T. The zero value is None. A present
// nil (Some(nil) for pointer-like T) is still present.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk adapts the comma-ok form used by map lookups and type assertions.
//
//	stage := fn.Lift(func(key string) option.Option[int] {
//		limit, ok := limits[key]
//		return option.FromOk(limit, ok)
//	})
func FromOk[T any](value T, ok bool) Option[T] {
	if ok {
		return Some(value)
	}
	return None[T]()
}

// FromPtr treats a nil pointer as None and copies the pointee otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// Fold is case analysis on o: onNone runs when it is empty, onSome receives
// the value otherwise.
//
//	label := option.Fold(o,
//		func() string { return "-" },
//		strconv.Itoa,
//	)
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if !o.ok {
		return onNone()
	}
	return onSome(o.value)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the value and panics on None. Call it only after IsSome;
// reading an absent value is a bug, not a recoverable state.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse collapses o to a plain value, using fallback for None. It is the
// usual last step of a pipeline:
//
//	timeout := option.Compose(lookup, parseSeconds).Apply("timeout").GetOrElse(30)
func (o Option[T]) GetOrElse(fallback T) T {
	return o.GetOrElseFunc(func() T { return fallback })
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback; supply runs
// only for None.
func (o Option[T]) GetOrElseFunc(supply func() T) T {
	if !o.ok {
		return supply()
	}
	return o.value
}

// OrElse keeps o when present and otherwise falls back to other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	return o.OrElseFunc(func() Option[T] { return other })
}

// OrElseFunc is OrElse with a lazily built alternative, for example a second
// lookup stage that should run only when the first finds nothing:
//
//	found := primary.Apply(key).OrElseFunc(func() option.Option[User] {
//		return secondary.Apply(key)
//	})
func (o Option[T]) OrElseFunc(supply func() Option[T]) Option[T] {
	if !o.ok {
		return supply()
	}
	return o
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Filter turns a present value that fails predicate into None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	return FlatMap(o, func(v T) Option[T] {
		return FromOk(v, predicate(v))
	})
}

// Map is the value form of Lift.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	return Lift[T, U](fn.Lift(f)).Apply(o)
}

// FlatMap is the value form of Bind.
func FlatMap[T any, U any](o Option[T], f func(T) Option[U]) Option[U] {
	return Bind[T, U](fn.Lift(f)).Apply(o)
}

var errMissing = errors.New("option: missing value")

// ToResult moves o into the result algebra, turning None into the error built
// by errFactory. A nil factory, or one returning nil, yields a generic
// "option: missing value" error so absence never becomes success.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	return Fold(o,
		func() result.Result[T] {
			var err error
			if errFactory != nil {
				err = errFactory()
			}
			if err == nil {
				err = errMissing
			}
			return result.Err[T](err)
		},
		result.Ok[T],
	)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	return Fold(o,
		func() string { return "None" },
		func(v T) string { return fmt.Sprintf("Some(%v)", v) },
	)
}
