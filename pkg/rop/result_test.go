package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()

	r := Success[int, string](5)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.True(t, r.IsOkAnd(func(v int) bool { return v > 1 }))
	assert.False(t, r.IsOkAnd(func(v int) bool { return v > 10 }))
	assert.False(t, r.IsErrAnd(func(string) bool { return true }))

	v, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = r.GetErr()
	assert.False(t, ok)

	assert.True(t, OptionEqual(Some(5), r.Ok()))
	assert.True(t, r.Err().IsNone())
	assert.Equal(t, 5, r.Unwrap())
	assert.Equal(t, 5, r.UnwrapOr(7))
	assert.Equal(t, 5, r.UnwrapOrElse(func(string) int { return 7 }))
	assert.Equal(t, 5, r.UnwrapOrZero())
	assert.Equal(t, "Ok(5)", r.String())
	assert.PanicsWithValue(t, "called UnwrapErr on an Ok value: 5", func() { r.UnwrapErr() })
}

func TestFail_Accessors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.True(t, r.IsErrAnd(func(err error) bool { return errors.Is(err, boom) }))
	assert.False(t, r.IsOkAnd(func(int) bool { return true }))

	e, ok := r.GetErr()
	require.True(t, ok)
	assert.ErrorIs(t, e, boom)

	assert.True(t, r.Ok().IsNone())
	assert.True(t, r.Err().IsSome())
	assert.Equal(t, boom, r.UnwrapErr())
	assert.Equal(t, 7, r.UnwrapOr(7))
	assert.Equal(t, 4, r.UnwrapOrElse(func(err error) int { return len(err.Error()) }))
	assert.Equal(t, 0, r.UnwrapOrZero())
	assert.Equal(t, "Err(boom)", r.String())
	assert.PanicsWithValue(t, "need value: boom", func() { r.Expect("need value") })
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var seen []string
	ok := Success[string, string]("a").
		Inspect(func(v string) { seen = append(seen, "ok:"+v) }).
		InspectErr(func(e string) { seen = append(seen, "err:"+e) })
	_ = Fail[string]("b").
		Inspect(func(v string) { seen = append(seen, "ok:"+v) }).
		InspectErr(func(e string) { seen = append(seen, "err:"+e) })

	assert.True(t, Equal(ok, Success[string, string]("a")))
	assert.Equal(t, []string{"ok:a", "err:b"}, seen)
}

func TestOption_Accessors(t *testing.T) {
	t.Parallel()

	some := Some("x")
	none := None[string]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = none.Get()
	assert.False(t, ok)

	assert.Equal(t, "x", some.UnwrapOr("y"))
	assert.Equal(t, "y", none.UnwrapOr("y"))
	assert.Equal(t, "Some(x)", some.String())
	assert.Equal(t, "None", none.String())
}

func TestFrom(t *testing.T) {
	t.Parallel()

	adj := AdjacentOf(Fail[int]("nope"))
	r := From[int, string](adj)

	assert.True(t, Equal(Fail[int]("nope"), r))
	assert.True(t, Equal(Success[int, string](3), From[int, string](Success[int, string](3))))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("one"), errors.New("two")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{e1}, GetErrors(e1))
	assert.Equal(t, []error{e1, e2}, GetErrors(errors.Join(e1, e2)))
}
