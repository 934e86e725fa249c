package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rustresult/pkg/rop"
)

func TestGo_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(ctx, func(context.Context) (int, error) { return 42, nil })
	r := f.Await(ctx)

	assert.True(t, rop.Equal(rop.Success[int, error](42), r))
}

func TestGo_ErrorAndPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	r := Go(ctx, func(context.Context) (int, error) { return 0, boom }).Await(ctx)
	assert.True(t, r.IsErrAnd(func(err error) bool { return errors.Is(err, boom) }))

	r = Go(ctx, func(context.Context) (int, error) { panic("bad") }).Await(ctx)
	require.True(t, r.IsErr())
	assert.EqualError(t, r.UnwrapErr(), "panic: bad")
}

func TestGo_CancelledBeforeStart(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	r := Go(ctx, func(context.Context) (int, error) { called = true; return 1, nil }).Await(context.Background())

	assert.True(t, IsCancelled(r))
	assert.False(t, called)
}

func TestAwait_ContextTimeout(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	f := Go(context.Background(), func(context.Context) (string, error) {
		<-release
		return "late", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := f.Await(ctx)
	assert.True(t, IsCancelled(r))
	assert.ErrorIs(t, r.UnwrapErr(), context.DeadlineExceeded)
}

func TestThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Then(ctx, Resolved(2), func(_ context.Context, v int) (string, error) {
		if v != 2 {
			return "", errors.New("unexpected")
		}
		return "two", nil
	})
	assert.True(t, rop.Equal(rop.Success[string, error]("two"), f.Await(ctx)))

	boom := errors.New("boom")
	called := false
	failed := Then(ctx, Rejected[int](boom), func(_ context.Context, v int) (string, error) {
		called = true
		return "", nil
	}).Await(ctx)
	assert.ErrorIs(t, failed.UnwrapErr(), boom)
	assert.False(t, called)
}

func TestAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := All(ctx, Resolved(1), Go(ctx, func(context.Context) (int, error) { return 2, nil }), Resolved(3))
	assert.Equal(t, []int{1, 2, 3}, ok.Unwrap())

	first, second := errors.New("first"), errors.New("second")
	failed := All(ctx, Resolved(1), Rejected[int](first), Rejected[int](second))
	assert.ErrorIs(t, failed.UnwrapErr(), first)
}

func TestToChan_Collect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := []rop.Result[int, string]{rop.Success[int, string](1), rop.Fail[int]("x"), rop.Success[int, string](3)}
	out := Collect(ctx, ToChan(ctx, in...))

	require.Len(t, out, 3)
	for i := range in {
		assert.True(t, rop.Equal(in[i], out[i]), "index %d: %v != %v", i, in[i], out[i])
	}
}
