package async

import (
	"context"

	"github.com/ib-77/rustresult/pkg/rop"
	"github.com/ib-77/rustresult/pkg/rop/solo"
)

type Future[S any] struct {
	done   chan struct{}
	result rop.Result[S, error]
}

// Go runs fn on a new goroutine. Errors and panics become failures.
func Go[S any](ctx context.Context, fn func(ctx context.Context) (S, error)) *Future[S] {
	f := &Future[S]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if ctx.Err() != nil {
			f.result = rop.Fail[S](ctx.Err())
			return
		}
		f.result = solo.Try(func() (S, error) { return fn(ctx) })
	}()

	return f
}

func Resolved[S any](v S) *Future[S] {
	return completed(rop.Success[S, error](v))
}

func Rejected[S any](err error) *Future[S] {
	return completed(rop.Fail[S](err))
}

func completed[S any](r rop.Result[S, error]) *Future[S] {
	f := &Future[S]{done: make(chan struct{}), result: r}
	close(f.done)
	return f
}

// Done is closed once the result is available.
func (f *Future[S]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the result. If ctx ends first the failure is ctx.Err();
// the work itself keeps running.
func (f *Future[S]) Await(ctx context.Context) rop.Result[S, error] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		select {
		case <-f.done:
			return f.result
		default:
		}
		return rop.Fail[S](ctx.Err())
	}
}

// Then starts onSuccess once f succeeds. A failure is passed through.
func Then[S, Out any](ctx context.Context, f *Future[S],
	onSuccess func(ctx context.Context, v S) (Out, error)) *Future[Out] {

	return Go(ctx, func(ctx context.Context) (Out, error) {
		r := f.Await(ctx)
		v, ok := r.Get()
		if !ok {
			var zero Out
			return zero, r.UnwrapErr()
		}
		return onSuccess(ctx, v)
	})
}

// All waits for every future and returns their values in order, or the
// first failure in order.
func All[S any](ctx context.Context, futures ...*Future[S]) rop.Result[[]S, error] {
	results := make([]rop.Result[S, error], 0, len(futures))
	for _, f := range futures {
		r := f.Await(ctx)
		if r.IsErr() {
			return rop.Fail[[]S](r.UnwrapErr())
		}
		results = append(results, r)
	}
	return solo.Join(results...)
}

// IsCancelled reports whether r failed because a context ended.
func IsCancelled[S any](r rop.Result[S, error]) bool {
	return r.IsErrAnd(rop.IsCancellationError)
}

// ToChan sends each result on the returned channel and closes it. Sending
// stops when ctx ends.
func ToChan[S, F any](ctx context.Context, results ...rop.Result[S, F]) <-chan rop.Result[S, F] {
	out := make(chan rop.Result[S, F])

	go func() {
		defer close(out)

		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains in until it is closed or ctx ends.
func Collect[S, F any](ctx context.Context, in <-chan rop.Result[S, F]) []rop.Result[S, F] {
	res := make([]rop.Result[S, F], 0)

	for {
		select {
		case r, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}
