// Package monet holds the pieces shared by the option and result packages:
// the single definition of an absent (nil) value, the invalid-argument error
// raised by strict constructors and combinators, and the error used to carry
// a recovered panic.
//
// Subpackages:
// - option: Option[T], a value of type T or nothing
// - result: Result[T, E], a success of type T or a failure of type E
// - chain: a fluent same-type chain over Result[T, E]
package monet
