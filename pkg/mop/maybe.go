package mop

import (
	"fmt"

	"github.com/ib-77/mop/pkg/mop/guard"
)

// Maybe wraps a value that may be absent. The zero value is the absent
// Maybe. A present Maybe never holds a nil reference and an absent one never
// holds a payload, so == on Maybe[T] of comparable T compares presence first
// and values second, and Maybe[T] works as a map key.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some wraps a value that must exist. A nil reference raises a
// guard.NotFoundError; use From to normalize instead.
func Some[T any](v T) Maybe[T] {
	guard.NotNil(v, "value")
	return Maybe[T]{value: v, present: true}
}

// None returns the absent Maybe, identical to the zero value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From wraps v, normalizing nil references to None.
func From[T any](v T) Maybe[T] {
	if guard.IsNil(v) {
		return Maybe[T]{}
	}
	return Maybe[T]{value: v, present: true}
}

// FromPtr dereferences p when non-nil, normalizing like From.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Maybe[T]{}
	}
	return From(*p)
}

// FromOk adapts a comma-ok pair.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Maybe[T]{}
	}
	return From(v)
}

// FromErr adapts a (value, error) pair; any error collapses to None.
func FromErr[T any](v T, err error) Maybe[T] {
	if err != nil {
		return Maybe[T]{}
	}
	return From(v)
}

func (m Maybe[T]) IsSome() bool {
	return m.present
}

func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// MustGet returns the value, raising a guard.ContractError when absent.
func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic(&guard.ContractError{Msg: "no value present"})
	}
	return m.value
}

// Expect is MustGet with a caller-supplied failure message.
func (m Maybe[T]) Expect(msg string) T {
	if !m.present {
		panic(&guard.ContractError{Msg: msg})
	}
	return m.value
}

// OkOr returns the value, or the zero value and err when absent. The failure
// is required up front: a nil err raises a guard.NotFoundError even when the
// value is present.
func (m Maybe[T]) OkOr(err error) (T, error) {
	guard.NotNil(err, "err")
	if !m.present {
		var zero T
		return zero, err
	}
	return m.value, nil
}

// OkOrElse is OkOr with a lazy failure factory, resolved only when absent.
func (m Maybe[T]) OkOrElse(errFn func() error) (T, error) {
	guard.NotNil(errFn, "errFn")
	if !m.present {
		var zero T
		return zero, guard.Failure(errFn)
	}
	return m.value, nil
}

// GetOr returns the value, or fallback when absent.
func (m Maybe[T]) GetOr(fallback T) T {
	if !m.present {
		return fallback
	}
	return m.value
}

// GetOrZero returns the value, or the zero value of T when absent.
func (m Maybe[T]) GetOrZero() T {
	// absent values always hold a zero payload
	return m.value
}

// GetOrElse returns the value, or the factory result when absent.
func (m Maybe[T]) GetOrElse(fn func() T) T {
	guard.NotNil(fn, "fn")
	if !m.present {
		return fn()
	}
	return m.value
}

// Or returns m when present, alt otherwise.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alt
}

// OrElse returns m when present, the factory result otherwise.
func (m Maybe[T]) OrElse(fn func() Maybe[T]) Maybe[T] {
	guard.NotNil(fn, "fn")
	if m.present {
		return m
	}
	return fn()
}

// Filter keeps the value only when pred holds for it.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	guard.NotNil(pred, "pred")
	if m.present && pred(m.value) {
		return m
	}
	return Maybe[T]{}
}

// Tee runs onSome for a present value and returns m unchanged.
func (m Maybe[T]) Tee(onSome func(T)) Maybe[T] {
	guard.NotNil(onSome, "onSome")
	if m.present {
		onSome(m.value)
	}
	return m
}

// TeeNone runs onNone when absent and returns m unchanged.
func (m Maybe[T]) TeeNone(onNone func()) Maybe[T] {
	guard.NotNil(onNone, "onNone")
	if !m.present {
		onNone()
	}
	return m
}

// DoubleTee runs exactly one of the two effects and returns m unchanged.
// Unlike the other traversals a nil handler here is a no-op, not a failure.
func (m Maybe[T]) DoubleTee(onSome func(T), onNone func()) Maybe[T] {
	if m.present {
		if onSome != nil {
			onSome(m.value)
		}
	} else {
		if onNone != nil {
			onNone()
		}
	}
	return m
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (m Maybe[T]) ToPtr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// ToSlice returns a zero- or one-element slice.
func (m Maybe[T]) ToSlice() []T {
	if !m.present {
		return []T{}
	}
	return []T{m.value}
}

// String renders for debugging only; it is not a wire format.
func (m Maybe[T]) String() string {
	if !m.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}
