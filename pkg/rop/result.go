package rop

import "fmt"

// Result holds either a success payload of type S or a failure payload of
// type F. The inactive slot always holds its zero value.
type Result[S, F any] struct {
	ok        S
	err       F
	isSuccess bool
}

func Success[S, F any](v S) Result[S, F] {
	return Result[S, F]{
		ok:        v,
		isSuccess: true,
	}
}

func Fail[S, F any](e F) Result[S, F] {
	return Result[S, F]{
		err:       e,
		isSuccess: false,
	}
}

func (r Result[S, F]) IsOk() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsErr() bool {
	return !r.isSuccess
}

// IsOkAnd reports whether r is a success whose payload satisfies f.
func (r Result[S, F]) IsOkAnd(f func(S) bool) bool {
	return r.isSuccess && f(r.ok)
}

// IsErrAnd reports whether r is a failure whose payload satisfies f.
func (r Result[S, F]) IsErrAnd(f func(F) bool) bool {
	return !r.isSuccess && f(r.err)
}

// Ok converts r into an Option holding the success payload, if any.
func (r Result[S, F]) Ok() Option[S] {
	if r.isSuccess {
		return Some(r.ok)
	}
	return None[S]()
}

// Err converts r into an Option holding the failure payload, if any.
func (r Result[S, F]) Err() Option[F] {
	if r.isSuccess {
		return None[F]()
	}
	return Some(r.err)
}

func (r Result[S, F]) Get() (S, bool) {
	return r.ok, r.isSuccess
}

func (r Result[S, F]) GetErr() (F, bool) {
	return r.err, !r.isSuccess
}

// Expect returns the success payload and panics with msg on a failure.
func (r Result[S, F]) Expect(msg string) S {
	if !r.isSuccess {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.ok
}

// ExpectErr returns the failure payload and panics with msg on a success.
func (r Result[S, F]) ExpectErr(msg string) F {
	if r.isSuccess {
		panic(fmt.Sprintf("%s: %v", msg, r.ok))
	}
	return r.err
}

func (r Result[S, F]) Unwrap() S {
	return r.Expect("called Unwrap on an Err value")
}

func (r Result[S, F]) UnwrapErr() F {
	return r.ExpectErr("called UnwrapErr on an Ok value")
}

func (r Result[S, F]) UnwrapOr(fallback S) S {
	if r.isSuccess {
		return r.ok
	}
	return fallback
}

func (r Result[S, F]) UnwrapOrElse(f func(F) S) S {
	if r.isSuccess {
		return r.ok
	}
	return f(r.err)
}

func (r Result[S, F]) UnwrapOrZero() S {
	return r.ok
}

// Inspect calls f with the success payload and returns r unchanged.
func (r Result[S, F]) Inspect(f func(S)) Result[S, F] {
	if r.isSuccess {
		f(r.ok)
	}
	return r
}

// InspectErr calls f with the failure payload and returns r unchanged.
func (r Result[S, F]) InspectErr(f func(F)) Result[S, F] {
	if !r.isSuccess {
		f(r.err)
	}
	return r
}

func (r Result[S, F]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
