package chain

import (
	"github.com/ib-77/mop/pkg/mop"
)

// Chain wraps a mop.Maybe to enable fluent chaining
type Chain[T any] struct {
	m mop.Maybe[T]
}

// Start creates a new chain from a mop.Maybe
func Start[T any](m mop.Maybe[T]) *Chain[T] {
	return &Chain[T]{m: m}
}

// FromValue creates a new chain from a value, absent when it is a nil
// reference
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{m: mop.From(value)}
}

// Maybe returns the underlying mop.Maybe
func (c *Chain[T]) Maybe() mop.Maybe[T] {
	return c.m
}

// Then chains a function that returns mop.Maybe[U]
func Then[T, U any](c *Chain[T], f func(T) mop.Maybe[U]) *Chain[U] {
	return &Chain[U]{m: mop.Bind(c.m, f)}
}

// ThenTry chains a function that returns (U, error), collapsing an error to
// absence
func ThenTry[T, U any](c *Chain[T], f func(T) (U, error)) *Chain[U] {
	return &Chain[U]{m: mop.Bind(c.m, func(v T) mop.Maybe[U] {
		return mop.FromErr(f(v))
	})}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	return &Chain[U]{m: mop.Map(c.m, f)}
}

// Filter keeps the value only when pred holds for it
func (c *Chain[T]) Filter(pred func(T) bool) *Chain[T] {
	return &Chain[T]{m: c.m.Filter(pred)}
}

// FilterAll keeps the value only when every predicate holds for it.
// Predicates run in order and stop at the first miss.
func (c *Chain[T]) FilterAll(preds ...func(T) bool) *Chain[T] {
	out := c
	for _, pred := range preds {
		out = out.Filter(pred)
	}
	return out
}

// Or falls back to alt when the chain is absent
func (c *Chain[T]) Or(alt mop.Maybe[T]) *Chain[T] {
	return &Chain[T]{m: c.m.Or(alt)}
}

// OrElse falls back to the factory result when the chain is absent
func (c *Chain[T]) OrElse(fn func() mop.Maybe[T]) *Chain[T] {
	return &Chain[T]{m: c.m.OrElse(fn)}
}

// Ensure performs a side effect on a present value without changing the
// chain
func (c *Chain[T]) Ensure(onSome func(T)) *Chain[T] {
	return &Chain[T]{m: c.m.Tee(onSome)}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U any](c *Chain[T], onSome func(T) U, onNone func() U) U {
	return mop.Match(c.m, onSome, onNone)
}
