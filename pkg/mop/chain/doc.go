// Package chain provides a fluent wrapper around Maybe[T]
// for building synchronous presence-aware chains from the mop primitives.
//
// It composes functions like Bind, Map, Filter, Tee, and Match behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// unwrapping at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe[T] or value
// - Then: bind to a new Maybe[U] via a function
// - ThenTry: call a function (U, error) and collapse error to absence
// - Map: transform the present value (T -> U)
// - Filter/Or/OrElse: narrow the value or fall back when absent
// - Ensure: run side effects on a present value without changing the chain
// - Finally: collapse the chain into a final value via handlers
package chain
