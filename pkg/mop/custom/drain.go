package custom

import (
	"context"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/core"
)

// FlushRemainingMaybes drains the remaining inputs of a cancelled stage,
// emitting None for each. An item that never ran has no value, so absence is
// what flows downstream. Flushing is skipped when the context disables it.
func FlushRemainingMaybes[In, Out any](ctx context.Context,
	inputCh <-chan mop.Maybe[In], outCh chan<- mop.Maybe[Out]) {

	if core.FlushRemainingEnabled(ctx, true) {
		for range inputCh {
			outCh <- mop.None[Out]()
		}
	}
}

// FlushRemainingMaybe emits None for a single unprocessed input.
func FlushRemainingMaybe[In, Out any](ctx context.Context, in mop.Maybe[In],
	outCh chan<- mop.Maybe[Out]) {

	if core.FlushRemainingEnabled(ctx, true) {
		outCh <- mop.None[Out]()
	}
}

// FlushRemainingValue routes a single unprocessed input through brokenF.
func FlushRemainingValue[In, Out any](ctx context.Context, in mop.Maybe[In],
	brokenF func(ctx context.Context, in mop.Maybe[In]) Out, outCh chan<- Out) {

	if core.FlushRemainingEnabled(ctx, true) {
		outCh <- brokenF(ctx, in)
	}
}

// FlushRemainingValues routes all remaining inputs through brokenF.
func FlushRemainingValues[In, Out any](ctx context.Context, inputCh <-chan mop.Maybe[In],
	brokenF func(ctx context.Context, in mop.Maybe[In]) Out, outCh chan<- Out) {

	if core.FlushRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- brokenF(ctx, in)
		}
	}
}

// FlushResult forwards an already-computed result that cancellation caught
// in flight.
func FlushResult[T any](ctx context.Context, out T, outCh chan<- T) {
	if core.FlushRemainingEnabled(ctx, true) {
		outCh <- out
	}
}

// FlushResults forwards all already-computed results still queued.
func FlushResults[T any](ctx context.Context, inputCh <-chan T, outCh chan<- T) {
	if core.FlushRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- in
		}
	}
}
