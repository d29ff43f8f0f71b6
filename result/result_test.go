package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/arrow/fn"
	"github.com/charmingruby/arrow/result"
)

func TestErrNilBecomesDescriptive(t *testing.T) {
	res := result.Err[int](nil)
	require.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "result: nil error")
}

func TestFromTuple(t *testing.T) {
	ok := result.FromTuple(5, nil)
	assert.True(t, ok.IsOk())
	assert.Equal(t, 5, ok.UnwrapOr(0))

	boom := errors.New("boom")
	failed := result.FromTuple(5, boom)
	assert.True(t, failed.IsErr())
	assert.ErrorIs(t, failed.Err(), boom)
	assert.Equal(t, -1, failed.UnwrapOr(-1))
}

func TestUnsafeUnwrapPanicsWithStoredError(t *testing.T) {
	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		result.Err[int](boom).UnsafeUnwrap()
	})
	assert.Equal(t, 3, result.Ok(3).UnsafeUnwrap())
}

func TestBindSkipsFunctionOnErr(t *testing.T) {
	calls := 0
	half := result.Bind(fn.Lift(func(n int) result.Result[int] {
		calls++
		if n%2 != 0 {
			return result.Err[int](errors.New("odd"))
		}
		return result.Ok(n / 2)
	}))

	boom := errors.New("boom")
	got := half.Apply(result.Err[int](boom))
	assert.ErrorIs(t, got.Err(), boom)
	assert.Zero(t, calls)

	assert.Equal(t, 4, half.Apply(result.Ok(8)).UnwrapOr(0))
	assert.True(t, half.Apply(result.Ok(3)).IsErr())
	assert.Equal(t, 2, calls)
}

func TestTryAndCompose(t *testing.T) {
	parse := result.Try(strconv.Atoi)
	positive := fn.Lift(func(n int) result.Result[int] {
		if n <= 0 {
			return result.Err[int](errors.New("not positive"))
		}
		return result.Ok(n)
	})
	pipeline := result.Compose(parse, positive)

	value, err := pipeline.Apply("42").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	assert.EqualError(t, pipeline.Apply("-3").Err(), "not positive")
	var numErr *strconv.NumError
	assert.ErrorAs(t, pipeline.Apply("x").Err(), &numErr)
}

func TestLiftAndFold(t *testing.T) {
	length := result.Lift(fn.Lift(func(s string) int { return len(s) }))
	describe := func(r result.Result[int]) string {
		return result.Fold(r,
			func(err error) string { return "failed: " + err.Error() },
			func(n int) string { return "ok: " + strconv.Itoa(n) },
		)
	}
	assert.Equal(t, "ok: 5", describe(length.Apply(result.Ok("arrow"))))
	assert.Equal(t, "failed: nope", describe(length.Apply(result.Err[string](errors.New("nope")))))
}

func TestMapFlatMapValues(t *testing.T) {
	res := result.Map(result.Ok("go"), func(s string) int { return len(s) })
	assert.Equal(t, 2, res.UnwrapOr(0))

	chained := result.FlatMap(res, func(n int) result.Result[string] {
		return result.Ok(strconv.Itoa(n * 10))
	})
	assert.Equal(t, "20", chained.UnwrapOr(""))
}

func TestValueHelpersSkipFunctionOnErr(t *testing.T) {
	boom := errors.New("boom")
	failed := result.Err[int](boom)

	mapped := result.Map(failed, func(int) string {
		t.Fatal("map function called on Err")
		return ""
	})
	assert.ErrorIs(t, mapped.Err(), boom)

	chained := result.FlatMap(failed, func(int) result.Result[int] {
		t.Fatal("bind function called on Err")
		return result.Ok(0)
	})
	assert.ErrorIs(t, chained.Err(), boom)

	port := result.Compose(result.Try(strconv.Atoi), result.Return[int]())
	assert.Equal(t, 8080, port.Apply("http").UnwrapOr(8080))
	assert.Equal(t, 9000, port.Apply("9000").UnwrapOr(8080))
}
