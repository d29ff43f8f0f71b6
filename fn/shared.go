package fn

import (
	"reflect"
	"sync"
)

var sharedValues sync.Map // reflect.Type -> func() any

// Shared returns the process-wide value of type F, calling construct the
// first time F is requested. Later calls, including concurrent first calls,
// observe that same value and never call construct again. Once the value
// exists a lookup does not allocate.
//
// Shared is meant for stateless Function types whose instances are
// interchangeable:
//
//	type trim struct{}
//
//	func (trim) Apply(s string) string { return strings.TrimSpace(s) }
//
//	stage := Shared(func() trim { return trim{} })
func Shared[F any](construct func() F) F {
	key := reflect.TypeFor[F]()
	get, ok := sharedValues.Load(key)
	if !ok {
		// Only the stored getter ever runs, so losers of this race never
		// call construct.
		get, _ = sharedValues.LoadOrStore(key, sync.OnceValue(func() any { return construct() }))
	}
	return get.(func() any)().(F)
}
