package rop

// Equal reports whether a and b hold the same variant with payloads that
// compare equal under ==. A payload that is unequal to itself, such as a NaN
// float, makes the results unequal too, at any nesting depth.
func Equal[S, F comparable](a, b Result[S, F]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return a.ok == b.ok
	}
	return a.err == b.err
}

// EqualFunc is like Equal but compares payloads with eqS and eqF.
func EqualFunc[S, F any](a, b Result[S, F], eqS func(S, S) bool, eqF func(F, F) bool) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return eqS(a.ok, b.ok)
	}
	return eqF(a.err, b.err)
}

func OptionEqual[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
