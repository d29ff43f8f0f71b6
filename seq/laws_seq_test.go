package seq_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/charmingruby/arrow/fn"
	"github.com/charmingruby/arrow/seq"
)

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

// spread maps n to the first k multiples of n, k = |n| mod 3.
var spread = fn.Lift(func(n int) []int {
	k := n % 3
	if k < 0 {
		k = -k
	}
	out := make([]int, k)
	for i := range out {
		out[i] = n * (i + 1)
	}
	return out
})

func TestListMapPreservesShape(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("length and order are preserved", prop.ForAll(
		func(in []int, offset int) bool {
			out := seq.Lift(fn.Lift(func(v int) int { return v + offset })).Apply(in)
			if len(out) != len(in) {
				return false
			}
			for i := range in {
				if out[i] != in[i]+offset {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()), gen.Int(),
	))

	properties.Property("identity and composition laws", prop.ForAll(
		func(in []int, a, b int) bool {
			f := fn.Lift(func(v int) int { return v*a + 1 })
			g := fn.Lift(func(v int) int { return v - b })
			if !slices.Equal(seq.Lift(fn.Identity[int]()).Apply(in), in) {
				return false
			}
			left := fn.Compose(seq.Lift(f), seq.Lift(g)).Apply(in)
			right := seq.Lift(fn.Compose(f, g)).Apply(in)
			return slices.Equal(left, right)
		},
		gen.SliceOf(gen.Int()), gen.IntRange(-10, 10), gen.IntRange(-10, 10),
	))

	properties.TestingRun(t)
}

func TestListMonadLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("left identity", prop.ForAll(
		func(x int) bool {
			return slices.Equal(seq.Bind(spread).Apply(seq.Return[int]().Apply(x)), spread.Apply(x))
		},
		gen.Int(),
	))

	properties.Property("right identity", prop.ForAll(
		func(in []int) bool {
			return slices.Equal(seq.Bind(seq.Return[int]()).Apply(in), in)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("associativity", prop.ForAll(
		func(in []int) bool {
			twice := fn.Compose(spread, seq.Bind(spread))
			left := fn.Compose(seq.Bind(spread), seq.Bind(spread)).Apply(in)
			right := seq.Bind(twice).Apply(in)
			return slices.Equal(left, right)
		},
		gen.SliceOfN(8, gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}
