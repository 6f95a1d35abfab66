// Package chain provides a minimal fluent Chain[T, E] for composing
// same-typed steps over result.Result[T, E].
//
// - Start/FromValue: create a Chain
// - Then/Map: compose Result-returning or plain functions
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Or/And: pick between chains
// - Ensure: side effects per branch
// - Finally: reduce to a concrete value via handlers
//
// For steps that change the value type use result.Bind and result.Map.
package chain
