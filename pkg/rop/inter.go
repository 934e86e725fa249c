package rop

// Outcome is implemented by Result and by every wrapper that carries one,
// such as Adjacent or a chain.
type Outcome[S, F any] interface {
	// IsOk returns true if the success variant is active
	IsOk() bool
	// Get returns the success payload and whether it is active
	Get() (S, bool)
	// GetErr returns the failure payload and whether it is active
	GetErr() (F, bool)
}

// From copies the active variant of o into a plain Result.
func From[S, F any](o Outcome[S, F]) Result[S, F] {
	if v, ok := o.Get(); ok {
		return Success[S, F](v)
	}
	e, _ := o.GetErr()
	return Fail[S](e)
}
