package chain

import (
	"context"

	"github.com/ib-77/rustresult/pkg/rop"
	"github.com/ib-77/rustresult/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[S, F any] struct {
	ctx    context.Context
	result rop.Result[S, F]
}

// Start creates a new chain from a rop.Result
func Start[S, F any](ctx context.Context, result rop.Result[S, F]) *Chain[S, F] {
	return &Chain[S, F]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](ctx context.Context, value S) *Chain[S, F] {
	return &Chain[S, F]{
		ctx:    ctx,
		result: rop.Success[S, F](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

func (c *Chain[S, F]) IsOk() bool {
	return c.result.IsOk()
}

func (c *Chain[S, F]) Get() (S, bool) {
	return c.result.Get()
}

func (c *Chain[S, F]) GetErr() (F, bool) {
	return c.result.GetErr()
}

// Then chains a function that keeps the success type
func (c *Chain[S, F]) Then(onSuccess func(context.Context, S) rop.Result[S, F]) *Chain[S, F] {
	return ThenTo(c, onSuccess)
}

// Map chains a transformation that keeps the success type
func (c *Chain[S, F]) Map(onSuccess func(context.Context, S) S) *Chain[S, F] {
	return MapTo(c, onSuccess)
}

// MapErr rewrites the failure payload, keeping its type
func (c *Chain[S, F]) MapErr(onFail func(context.Context, F) F) *Chain[S, F] {
	return &Chain[S, F]{
		ctx: c.ctx,
		result: solo.MapErr(c.result, func(e F) F {
			return onFail(c.ctx, e)
		}),
	}
}

// Ensure performs side effects without changing the result
func (c *Chain[S, F]) Ensure(onSuccess func(context.Context, S), onFail func(context.Context, F)) *Chain[S, F] {
	c.result.
		Inspect(func(v S) {
			if onSuccess != nil {
				onSuccess(c.ctx, v)
			}
		}).
		InspectErr(func(e F) {
			if onFail != nil {
				onFail(c.ctx, e)
			}
		})
	return c
}

// ThenTo chains a function that returns rop.Result[Out, F]
func ThenTo[S, F, Out any](c *Chain[S, F], onSuccess func(context.Context, S) rop.Result[Out, F]) *Chain[Out, F] {
	return &Chain[Out, F]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v S) rop.Result[Out, F] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (Out, error)
func ThenTry[S, Out any](c *Chain[S, error], tryOnSuccess func(context.Context, S) (Out, error)) *Chain[Out, error] {
	return ThenTo(c, func(ctx context.Context, v S) rop.Result[Out, error] {
		return solo.Try(func() (Out, error) { return tryOnSuccess(ctx, v) })
	})
}

// MapTo chains a pure transformation function
func MapTo[S, F, Out any](c *Chain[S, F], onSuccess func(context.Context, S) Out) *Chain[Out, F] {
	return &Chain[Out, F]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v S) Out {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[S, F, Out any](c *Chain[S, F], onSuccess func(context.Context, S) Out, onFail func(context.Context, F) Out) Out {
	return solo.Match(c.result,
		func(v S) Out { return onSuccess(c.ctx, v) },
		func(e F) Out { return onFail(c.ctx, e) })
}
