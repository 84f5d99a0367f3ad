package mop

import "github.com/ib-77/mop/pkg/mop/guard"

// Match collapses m into a plain value: exactly one of the two handlers
// runs. Both handlers are required even though only one will run.
func Match[T, Out any](m Maybe[T], onSome func(T) Out, onNone func() Out) Out {
	guard.NotNil(onSome, "onSome")
	guard.NotNil(onNone, "onNone")

	if m.present {
		return onSome(m.value)
	}
	return onNone()
}

// Map transforms a present value with f. A nil f result normalizes to None,
// keeping present values non-nil.
func Map[In, Out any](m Maybe[In], f func(In) Out) Maybe[Out] {
	guard.NotNil(f, "f")

	if m.present {
		return From(f(m.value))
	}
	return Maybe[Out]{}
}

// Bind chains a present value into a Maybe-producing step; absence
// propagates without invoking f.
func Bind[In, Out any](m Maybe[In], f func(In) Maybe[Out]) Maybe[Out] {
	guard.NotNil(f, "f")

	if m.present {
		return f(m.value)
	}
	return Maybe[Out]{}
}

// Combine merges two values with f; either side absent yields None and f is
// not invoked.
func Combine[A, B, Out any](a Maybe[A], b Maybe[B], f func(A, B) Out) Maybe[Out] {
	guard.NotNil(f, "f")

	return Bind(a, func(av A) Maybe[Out] {
		return Map(b, func(bv B) Out {
			return f(av, bv)
		})
	})
}

// And keeps b only when a is present.
func And[A, B any](a Maybe[A], b Maybe[B]) Maybe[B] {
	if a.present {
		return b
	}
	return Maybe[B]{}
}

// Flatten collapses one level of nesting.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return Bind(m, func(inner Maybe[T]) Maybe[T] {
		return inner
	})
}

// Cast converts the payload via type assertion. A value that is not an Out
// yields None; conversion failure is absence, not a contract failure.
func Cast[Out, In any](m Maybe[In]) Maybe[Out] {
	if !m.present {
		return Maybe[Out]{}
	}

	v, ok := any(m.value).(Out)
	if !ok {
		return Maybe[Out]{}
	}
	return From(v)
}
