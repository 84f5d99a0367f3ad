package mass

import (
	"context"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/guard"
)

// Binding lifts mop.Bind over a channel. The bind callback runs to
// completion before the result is readable; an absent input never invokes
// it. The callback is checked before any goroutine starts.
func Binding[In, Out any](ctx context.Context, input mop.Maybe[In],
	bind func(ctx context.Context, in In) mop.Maybe[Out],
	onCancel func(ctx context.Context, in mop.Maybe[In])) <-chan mop.Maybe[Out] {

	guard.NotNil(bind, "bind")

	ch := make(chan mop.Maybe[Out])
	out := make(chan mop.Maybe[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- mop.Bind(input, func(v In) mop.Maybe[Out] {
				return bind(ctx, v)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Mapping lifts mop.Map over a channel.
func Mapping[In, Out any](ctx context.Context, input mop.Maybe[In],
	f func(ctx context.Context, in In) Out,
	onCancel func(ctx context.Context, in mop.Maybe[In])) <-chan mop.Maybe[Out] {

	guard.NotNil(f, "f")

	ch := make(chan mop.Maybe[Out])
	out := make(chan mop.Maybe[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- mop.Map(input, func(v In) Out {
				return f(ctx, v)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Filtering lifts Maybe.Filter over a channel.
func Filtering[T any](ctx context.Context, input mop.Maybe[T],
	pred func(ctx context.Context, in T) bool,
	onCancel func(ctx context.Context, in mop.Maybe[T])) <-chan mop.Maybe[T] {

	guard.NotNil(pred, "pred")

	ch := make(chan mop.Maybe[T])
	out := make(chan mop.Maybe[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- input.Filter(func(v T) bool {
				return pred(ctx, v)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// OrTrying lifts Maybe.OrElse over a channel: the alternative is produced
// only for an absent input.
func OrTrying[T any](ctx context.Context, input mop.Maybe[T],
	alt func(ctx context.Context) mop.Maybe[T],
	onCancel func(ctx context.Context, in mop.Maybe[T])) <-chan mop.Maybe[T] {

	guard.NotNil(alt, "alt")

	ch := make(chan mop.Maybe[T])
	out := make(chan mop.Maybe[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- input.OrElse(func() mop.Maybe[T] {
				return alt(ctx)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Teeing lifts Maybe.Tee over a channel; the effect sees present values
// only.
func Teeing[T any](ctx context.Context, input mop.Maybe[T],
	effect func(ctx context.Context, in T),
	onCancel func(ctx context.Context, in mop.Maybe[T])) <-chan mop.Maybe[T] {

	guard.NotNil(effect, "effect")

	ch := make(chan mop.Maybe[T])
	out := make(chan mop.Maybe[T])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- input.Tee(func(v T) {
				effect(ctx, v)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Getting lifts Maybe.GetOrElse over a channel, yielding the plain value.
// The fallback is produced only for an absent input.
func Getting[T any](ctx context.Context, input mop.Maybe[T],
	fallback func(ctx context.Context) T,
	onCancel func(ctx context.Context, in mop.Maybe[T])) <-chan T {

	guard.NotNil(fallback, "fallback")

	ch := make(chan T)
	out := make(chan T)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- input.GetOrElse(func() T {
				return fallback(ctx)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Matching lifts mop.Match over a channel: exactly one handler runs and its
// result is delivered unwrapped.
func Matching[In, Out any](ctx context.Context, input mop.Maybe[In],
	onSome func(ctx context.Context, in In) Out,
	onNone func(ctx context.Context) Out,
	onCancel func(ctx context.Context, in mop.Maybe[In])) <-chan Out {

	guard.NotNil(onSome, "onSome")
	guard.NotNil(onNone, "onNone")

	ch := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- mop.Match(input,
				func(v In) Out { return onSome(ctx, v) },
				func() Out { return onNone(ctx) })
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

type MatchHandlers[In, Out any] struct {
	OnSome func(ctx context.Context, in In) Out
	OnNone func(ctx context.Context) Out
}

type FinalizeCancelHandlers[In, Out any] struct {
	OnBreak       func(ctx context.Context, in mop.Maybe[In]) Out
	OnCancelValue func(ctx context.Context, in mop.Maybe[In],
		brokenF func(ctx context.Context, in mop.Maybe[In]) Out, outCh chan<- Out)
	OnCancelValues func(ctx context.Context, inputCh <-chan mop.Maybe[In],
		brokenF func(ctx context.Context, in mop.Maybe[In]) Out, outCh chan<- Out)
	OnCancelResult  func(ctx context.Context, out Out, outCh chan<- Out)
	OnCancelResults func(ctx context.Context, inputCh <-chan Out, outCh chan<- Out)
}

// Finalizing collapses a stream of Maybe values into plain results with
// per-item Match semantics. Cancellation routes unprocessed values and
// already-computed results through the cancel handlers.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan mop.Maybe[In],
	handlers MatchHandlers[In, Out],
	cancelHandlers FinalizeCancelHandlers[In, Out],
	onDelivered func(ctx context.Context, out Out)) <-chan Out {

	guard.NotNil(handlers.OnSome, "handlers.OnSome")
	guard.NotNil(handlers.OnNone, "handlers.OnNone")

	ch := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			if cancelHandlers.OnCancelValues != nil {
				cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
			}
			return
		}

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelValues != nil {
					cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := mop.Match(in,
					func(v In) Out { return handlers.OnSome(ctx, v) },
					func() Out { return handlers.OnNone(ctx) })
				if ctx.Err() != nil {
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				case ch <- res:
				}
			}
		}
	}()

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelResults != nil {
					cancelHandlers.OnCancelResults(ctx, ch, out)
				}
				return
			case finalized, ok := <-ch:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelResult != nil {
						cancelHandlers.OnCancelResult(ctx, finalized, out)
					}
					return
				case out <- finalized:
					if onDelivered != nil {
						onDelivered(ctx, finalized)
					}
				}
			}
		}
	}()

	return out
}
