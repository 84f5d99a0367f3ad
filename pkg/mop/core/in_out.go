package core

import (
	"context"
	"sync"

	"github.com/ib-77/mop/pkg/mop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSent      func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsMaybes[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan mop.Maybe[T] {
	in := make(chan mop.Maybe[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- mop.From(v):
				if handlers.OnSent != nil {
					handlers.OnSent(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyMaybesWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan mop.Maybe[T] {
	return ToChanFromArgsMaybes[T](ctx, handlers, values...)
}

func ToChanManyMaybes[T any](ctx context.Context, values []T) <-chan mop.Maybe[T] {
	return ToChanFromArgsMaybes[T](ctx, ToChanHandlers[T]{}, values...)
}

func FromChanFirstOr[T any](ctx context.Context, out <-chan T, fallback T) T {
	res := fallback
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
			return
		case <-ctx.Done():
			return
		}
	}()
	wg.Wait()
	return res
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
