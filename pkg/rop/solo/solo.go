package solo

import (
	"errors"
	"fmt"

	"github.com/ib-77/rustresult/pkg/rop"
)

func Succeed[S, F any](input S) rop.Result[S, F] {
	return rop.Success[S, F](input)
}

func Fail[S, F any](err F) rop.Result[S, F] {
	return rop.Fail[S](err)
}

// Map transforms the success payload and leaves a failure untouched.
func Map[S, F, Out any](input rop.Result[S, F], onSuccess func(S) Out) rop.Result[Out, F] {
	if v, ok := input.Get(); ok {
		return rop.Success[Out, F](onSuccess(v))
	}
	e, _ := input.GetErr()
	return rop.Fail[Out](e)
}

// MapErr transforms the failure payload and leaves a success untouched.
func MapErr[S, F, Out any](input rop.Result[S, F], onFail func(F) Out) rop.Result[S, Out] {
	if e, ok := input.GetErr(); ok {
		return rop.Fail[S](onFail(e))
	}
	v, _ := input.Get()
	return rop.Success[S, Out](v)
}

func MapOr[S, F, Out any](input rop.Result[S, F], fallback Out, onSuccess func(S) Out) Out {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return fallback
}

func MapOrElse[S, F, Out any](input rop.Result[S, F], onFail func(F) Out, onSuccess func(S) Out) Out {
	return Match(input, onSuccess, onFail)
}

// Match reduces input to a concrete value; exactly one handler runs.
func Match[S, F, Out any](input rop.Result[S, F], onSuccess func(S) Out, onFail func(F) Out) Out {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	e, _ := input.GetErr()
	return onFail(e)
}

// AndThen calls onSuccess with the success payload. A failure short-circuits.
func AndThen[S, F, Out any](input rop.Result[S, F], onSuccess func(S) rop.Result[Out, F]) rop.Result[Out, F] {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	e, _ := input.GetErr()
	return rop.Fail[Out](e)
}

// And returns next if input is a success, otherwise input's failure.
func And[S, F, Out any](input rop.Result[S, F], next rop.Result[Out, F]) rop.Result[Out, F] {
	return AndThen(input, func(S) rop.Result[Out, F] { return next })
}

// Or returns input if it is a success, otherwise alternative.
func Or[S, F, Out any](input rop.Result[S, F], alternative rop.Result[S, Out]) rop.Result[S, Out] {
	return OrElse(input, func(F) rop.Result[S, Out] { return alternative })
}

// OrElse calls onFail with the failure payload. A success short-circuits.
func OrElse[S, F, Out any](input rop.Result[S, F], onFail func(F) rop.Result[S, Out]) rop.Result[S, Out] {
	if e, ok := input.GetErr(); ok {
		return onFail(e)
	}
	v, _ := input.Get()
	return rop.Success[S, Out](v)
}

// Flatten removes one level of nesting from a success.
func Flatten[S, F any](input rop.Result[rop.Result[S, F], F]) rop.Result[S, F] {
	return AndThen(input, func(inner rop.Result[S, F]) rop.Result[S, F] { return inner })
}

// Transpose turns Ok(None) into None, Ok(Some(v)) into Some(Ok(v)) and
// Err(e) into Some(Err(e)).
func Transpose[S, F any](input rop.Result[rop.Option[S], F]) rop.Option[rop.Result[S, F]] {
	if opt, ok := input.Get(); ok {
		v, some := opt.Get()
		if !some {
			return rop.None[rop.Result[S, F]]()
		}
		return rop.Some(rop.Success[S, F](v))
	}
	e, _ := input.GetErr()
	return rop.Some(rop.Fail[S](e))
}

// Try converts a (value, error) pair into a Result. A panic inside the call
// is reported as a failure.
func Try[S any](onTryExecute func() (S, error)) (res rop.Result[S, error]) {
	defer func() {
		if p := recover(); p != nil {
			res = rop.Fail[S](fmt.Errorf("panic: %v", p))
		}
	}()

	out, err := onTryExecute()
	if err != nil {
		return rop.Fail[S](err)
	}
	return rop.Success[S, error](out)
}

func Validate[S any](input S, validate func(in S) (isValid bool, errMsg string)) rop.Result[S, error] {
	return AndValidate(Succeed[S, error](input), validate)
}

func AndValidate[S any](input rop.Result[S, error],
	validate func(in S) (valid bool, errMsg string)) rop.Result[S, error] {

	return AndThen(input, func(v S) rop.Result[S, error] {
		if isValid, errMsg := validate(v); !isValid {
			return rop.Fail[S](errors.New(errMsg))
		}
		return rop.Success[S, error](v)
	})
}

// ValidateAll runs every validator against input and joins the failures.
// With breakOnError it stops at the first failure.
func ValidateAll[S any](input rop.Result[S, error], breakOnError bool,
	validators ...func(in S) (valid bool, errMsg string)) rop.Result[S, error] {

	v, ok := input.Get()
	if !ok {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if valid, errMsg := validate(v); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return rop.Fail[S](errors.Join(errs...))
}

// Join collects the success payloads of inputs in order, or returns the
// first failure.
func Join[S, F any](inputs ...rop.Result[S, F]) rop.Result[[]S, F] {
	out := make([]S, 0, len(inputs))
	for _, in := range inputs {
		v, ok := in.Get()
		if !ok {
			e, _ := in.GetErr()
			return rop.Fail[[]S](e)
		}
		out = append(out, v)
	}
	return rop.Success[[]S, F](out)
}

// Partition splits inputs into success and failure payloads, keeping order.
func Partition[S, F any](inputs ...rop.Result[S, F]) (successes []S, failures []F) {
	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			successes = append(successes, v)
		} else {
			e, _ := in.GetErr()
			failures = append(failures, e)
		}
	}
	return successes, failures
}
