// Package option provides Option[T], a value of type T or nothing, and the
// combinators that compose chains of possibly absent computations.
//
// Construction:
// - Some: strict, panics with *monet.ArgumentError on a nil value
// - Of: lenient, a nil value collapses to None; 0, "" and false are Some
// - None / Nothing + FromNone: the absent Option
// - FromPtr / Flatten: collapse an already optional source to one level
// - Try / TryE: run a computation, any panic (or error) becomes None
//
// Combinators:
// - Map: transform the present value
// - Bind / BindProject: sequence Option-returning steps, first None wins
// - Match: total elimination, both branches required
package option
