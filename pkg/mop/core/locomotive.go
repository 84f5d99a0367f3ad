package core

import (
	"context"
	"sync"

	"github.com/ib-77/mop/pkg/mop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan mop.Maybe[In], outCh chan<- mop.Maybe[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed mop.Maybe[In], outCh chan<- mop.Maybe[Out])
	OnCancelProcessed   func(ctx context.Context, in mop.Maybe[In], processed mop.Maybe[Out], outCh chan<- mop.Maybe[Out])
}

// Locomotive drains inputCh through engine into outCh until the input closes
// or ctx is cancelled. Cancellation routes through the handlers depending on
// how far the current item got.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan mop.Maybe[In], outCh chan<- mop.Maybe[Out],
	engine func(ctx context.Context, input mop.Maybe[In]) <-chan mop.Maybe[Out],
	handlers CancellationHandlers[In, Out],
	onDelivered func(ctx context.Context, out mop.Maybe[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
