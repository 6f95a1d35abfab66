// Package result provides Result[T, E], a success value of type T or a
// failure value of type E, and the combinators to compose fallible steps.
//
// Construction:
// - Ok / Error: strict, both panic with *monet.ArgumentError on a nil payload
// - From: picks the branch from the dynamic type of a bare value
// - Of: a (T, error) pair as Result[T, error]
// - Try / TryE: run a computation, a panic becomes Error carrying what was raised
// - FromOption: Some becomes Ok, None becomes the supplied error
//
// Combinators:
// - Map / MapError: transform one side, the other passes through
// - Bind / BindProject: sequence Result-returning steps, first Error wins
// - AsError: widen any error type to error so different chains can be joined
// - Match: total elimination, both branches required
package result
