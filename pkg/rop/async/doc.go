// Package async runs result-producing work on goroutines.
//
// A Future[S] is the asynchronous counterpart of rop.Result[S, error]:
// - Go: start work and get a Future
// - Resolved/Rejected: build already completed futures
// - Await: block until the work finishes or the context ends
// - Then: continue with more work once a future succeeds
// - All: wait for many futures, failing on the first failure in order
// - ToChan/Collect: move results through channels
package async
