package custom

import (
	"context"
	"sync"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/core"
	"github.com/ib-77/mop/pkg/mop/guard"
	"github.com/ib-77/mop/pkg/mop/mass"
)

func Run[T any](ctx context.Context, inputCh <-chan mop.Maybe[T],
	engine func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T],
	handlers core.CancellationHandlers[T, T],
	onDelivered func(ctx context.Context, out mop.Maybe[T]), lines int) <-chan mop.Maybe[T] {

	guard.Positive(lines, "lines")

	out := make(chan mop.Maybe[T])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan mop.Maybe[In],
	engine func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out],
	handlers core.CancellationHandlers[In, Out],
	onDelivered func(ctx context.Context, out mop.Maybe[Out]), lines int) <-chan mop.Maybe[Out] {

	guard.Positive(lines, "lines")

	out := make(chan mop.Maybe[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func RunSingle[T any](ctx context.Context, inputCh <-chan mop.Maybe[T],
	engine func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T],
	handlers core.CancellationHandlers[T, T],
	onDelivered func(ctx context.Context, out mop.Maybe[T])) <-chan mop.Maybe[T] {
	return Run[T](ctx, inputCh, engine, handlers, onDelivered, 1)
}

func Filter[T any](pred func(ctx context.Context, in T) bool,
	onCancel func(ctx context.Context, in mop.Maybe[T])) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.Filtering(ctx, input, pred, onCancel)
	}
}

func Bind[In, Out any](bind func(ctx context.Context, in In) mop.Maybe[Out],
	onCancel func(ctx context.Context, in mop.Maybe[In])) func(ctx context.Context,
	input mop.Maybe[In]) <-chan mop.Maybe[Out] {
	return func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out] {
		return mass.Binding(ctx, input, bind, onCancel)
	}
}

func Map[In, Out any](f func(ctx context.Context, in In) Out,
	onCancel func(ctx context.Context, in mop.Maybe[In])) func(ctx context.Context,
	input mop.Maybe[In]) <-chan mop.Maybe[Out] {
	return func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out] {
		return mass.Mapping(ctx, input, f, onCancel)
	}
}

func OrTry[T any](alt func(ctx context.Context) mop.Maybe[T],
	onCancel func(ctx context.Context, in mop.Maybe[T])) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.OrTrying(ctx, input, alt, onCancel)
	}
}

func Tee[T any](effect func(ctx context.Context, in T),
	onCancel func(ctx context.Context, in mop.Maybe[T])) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.Teeing(ctx, input, effect, onCancel)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan mop.Maybe[In],
	handlers mass.MatchHandlers[In, Out],
	cancelHandlers mass.FinalizeCancelHandlers[In, Out],
	onDelivered func(ctx context.Context, out Out)) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, cancelHandlers, onDelivered)
}
