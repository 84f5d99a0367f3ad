package mop

import (
	"iter"

	"github.com/ib-77/mop/pkg/mop/guard"
)

// Values yields the payloads of the present elements of seq in order,
// skipping absent ones. The result is lazy and single-pass whenever seq is.
func Values[T any](seq iter.Seq[Maybe[T]]) iter.Seq[T] {
	guard.NotNil(seq, "seq")

	return func(yield func(T) bool) {
		for m := range seq {
			if m.present {
				if !yield(m.value) {
					return
				}
			}
		}
	}
}

// SliceValues is Values over a slice, collected eagerly.
func SliceValues[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.present {
			out = append(out, m.value)
		}
	}
	return out
}
