// Package solo contains single-value, synchronous combinators over
// rop.Result[S, F]. They are the function forms of operations that need a
// type parameter of their own, which Go methods cannot declare.
//
// Highlights:
// - Succeed/Fail: construct Result[S, F]
// - Map/MapErr/MapOr/MapOrElse: transform one side of a result
// - AndThen/And/Or/OrElse: chain on success or recover on failure
// - Flatten/Transpose: reshape nested results and options
// - Try: call a function (S, error) and convert error to failure
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Join/Partition: work on many results at once
// - Match: reduce to a concrete value via success/failure handlers
package solo
