package lite

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
	lines int) <-chan mop.Maybe[T] {

	guard.Positive(lines, "lines")

	out := make(chan mop.Maybe[T])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[T, T]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan mop.Maybe[In],
	engine func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out],
	lines int) <-chan mop.Maybe[Out] {

	guard.Positive(lines, "lines")

	out := make(chan mop.Maybe[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Filter[T any](pred func(ctx context.Context, in T) bool) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.Filtering(ctx, input, pred, nil)
	}
}

func Bind[In, Out any](bind func(ctx context.Context, in In) mop.Maybe[Out]) func(ctx context.Context,
	input mop.Maybe[In]) <-chan mop.Maybe[Out] {
	return func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out] {
		return mass.Binding(ctx, input, bind, nil)
	}
}

func Map[In, Out any](f func(ctx context.Context, in In) Out) func(ctx context.Context,
	input mop.Maybe[In]) <-chan mop.Maybe[Out] {
	return func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out] {
		return mass.Mapping(ctx, input, f, nil)
	}
}

func OrTry[T any](alt func(ctx context.Context) mop.Maybe[T]) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.OrTrying(ctx, input, alt, nil)
	}
}

func Tee[T any](effect func(ctx context.Context, in T)) func(ctx context.Context,
	input mop.Maybe[T]) <-chan mop.Maybe[T] {
	return func(ctx context.Context, input mop.Maybe[T]) <-chan mop.Maybe[T] {
		return mass.Teeing(ctx, input, effect, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan mop.Maybe[In],
	handlers mass.MatchHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, mass.FinalizeCancelHandlers[In, Out]{}, nil)
}
