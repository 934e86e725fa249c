// Package chain provides a fluent wrapper around Result[S, F]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[S, F] or value
// - Then/ThenTo: continue with a function returning a Result
// - ThenTry: call a function (Out, error) and convert error to failure
// - Map/MapTo/MapErr: transform one side of the result
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
