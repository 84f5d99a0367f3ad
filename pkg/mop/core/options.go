package core

import (
	"context"

	"github.com/ib-77/mop/pkg/mop/guard"
)

type optionKey string

const (
	workerKey optionKey = "mop_worker_options"
	drainKey  optionKey = "mop_drain_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DrainOptions struct {
	FlushRemaining bool
}

// WithWorkers stores the pipeline fan-out width on the context. The count
// must be positive.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	guard.Positive(maxWorkers, "maxWorkers")
	return context.WithValue(ctx, workerKey, WorkerOptions{MaxCount: maxWorkers})
}

// Workers reads the fan-out width, falling back when none was stored.
func Workers(ctx context.Context, fallback int) int {
	if o, ok := ctx.Value(workerKey).(WorkerOptions); ok {
		return o.MaxCount
	}
	return fallback
}

// WithFlushRemaining stores whether cancelled pipelines flush unprocessed
// items as absent results.
func WithFlushRemaining(ctx context.Context, flush bool) context.Context {
	return context.WithValue(ctx, drainKey, DrainOptions{FlushRemaining: flush})
}

// FlushRemainingEnabled reads the flush setting, falling back when none was
// stored.
func FlushRemainingEnabled(ctx context.Context, fallback bool) bool {
	if o, ok := ctx.Value(drainKey).(DrainOptions); ok {
		return o.FlushRemaining
	}
	return fallback
}
