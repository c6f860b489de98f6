package okerr_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/next-trace/scg-okerr/okerr"
)

func TestResult_OfAndGet(t *testing.T) {
	t.Parallel()

	r := okerr.Of(strconv.Atoi("5"))
	require.True(t, r.IsOk())
	require.NoError(t, r.Err())
	require.Equal(t, 5, r.Must())

	v, err := r.Get()
	require.NoError(t, err)
	require.Nil(t, err)
	require.Equal(t, 5, v)

	failed := okerr.Of(strconv.Atoi("five"))
	require.False(t, failed.IsOk())
	require.ErrorIs(t, failed.Err(), strconv.ErrSyntax)

	_, err = failed.Get()
	var e *okerr.Error
	require.ErrorAs(t, err, &e)
	require.Panics(t, func() { failed.Must() })
}

func TestResult_OkAndFailed(t *testing.T) {
	t.Parallel()

	require.Equal(t, "v", okerr.Ok("v").Value())

	f := okerr.Failed[int](errors.New("boom"))
	require.EqualError(t, f.Err(), "boom")
	require.Zero(t, f.Value())

	require.True(t, okerr.Failed[int](nil).IsOk(), "nil error is not a failure")
}

func TestResult_Context(t *testing.T) {
	t.Parallel()

	step1 := func() (int, error) { return 10, nil }
	step2 := func(v int) (int, error) {
		if v < 100 {
			return okerr.Err[int]("value too small")
		}

		return v, nil
	}

	r := okerr.Of(step1()).Context("step1 failed")
	require.True(t, r.IsOk())

	r = okerr.Of(step2(r.Value())).Context("step2 failed")
	require.EqualError(t, r.Err(), "step2 failed")

	var e *okerr.Error
	require.ErrorAs(t, r.Err(), &e)
	require.Equal(t, []string{"step2 failed", "value too small"}, e.Messages())

	called := false
	ok := okerr.Ok(1).WithContext(func() string { called = true; return "x" })
	require.True(t, ok.IsOk())
	require.False(t, called)

	multi := okerr.Failed[int](errors.New("base error")).
		WithContext(func() string { return "first context" }).
		WithContext(func() string { return "second context" })
	require.EqualError(t, multi.Err(), "second context")
}

func TestResult_OverChannels(t *testing.T) {
	t.Parallel()

	inputs := []string{"1", "2", "x", "4"}
	out := make(chan okerr.Result[int], len(inputs))

	var wg sync.WaitGroup
	for _, in := range inputs {
		wg.Add(1)

		go func() {
			defer wg.Done()
			out <- okerr.Of(strconv.Atoi(in)).Context("parsing " + in)
		}()
	}

	wg.Wait()
	close(out)

	var results []okerr.Result[int]
	for r := range out {
		results = append(results, r)
	}

	values, err := okerr.Collect(results...)
	require.ElementsMatch(t, []int{1, 2, 4}, values)
	require.EqualError(t, err, "parsing x")
}

func TestCollect(t *testing.T) {
	t.Parallel()

	values, err := okerr.Collect(okerr.Ok(1), okerr.Ok(2))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, values)

	values, err = okerr.Collect[int]()
	require.NoError(t, err)
	require.Empty(t, values)

	a, b := okerr.New("a"), okerr.New("b")
	values, err = okerr.Collect(okerr.Ok(1), okerr.Failed[int](a), okerr.Ok(3), okerr.Failed[int](b))
	require.Equal(t, []int{1, 3}, values)
	require.EqualError(t, err, "a; b")
	require.ErrorIs(t, err, a)
	require.ErrorIs(t, err, b)

	var e *okerr.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, []error{a, b}, multierr.Errors(e.Unwrap()))
}
