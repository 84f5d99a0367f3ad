package guard

import "fmt"

// NotNilResult0 wraps f so its result is checked for nil on every call. The
// wrapped call raises a ContractError naming the function when f returns a
// nil reference.
func NotNilResult0[R any](f func() R, name string) func() R {
	NotNil(f, name)

	return func() R {
		r := f()
		if IsNil(r) {
			panic(&ContractError{Msg: name + "() returned nil"})
		}
		return r
	}
}

// NotNilResult1 is NotNilResult0 for single-argument functions. The failure
// message carries the argument the call was made with.
func NotNilResult1[A, R any](f func(A) R, name string) func(A) R {
	NotNil(f, name)

	return func(a A) R {
		r := f(a)
		if IsNil(r) {
			panic(&ContractError{Msg: fmt.Sprintf("%s(%v) returned nil", name, a)})
		}
		return r
	}
}

// NotNilResult2 is NotNilResult0 for two-argument functions.
func NotNilResult2[A, B, R any](f func(A, B) R, name string) func(A, B) R {
	NotNil(f, name)

	return func(a A, b B) R {
		r := f(a, b)
		if IsNil(r) {
			panic(&ContractError{Msg: fmt.Sprintf("%s(%v, %v) returned nil", name, a, b)})
		}
		return r
	}
}
