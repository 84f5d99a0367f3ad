package guard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Number covers the built-in numeric types accepted by the range checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NotNil checks that v is not a nil reference and returns it. A nil v raises
// a NotFoundError naming the parameter.
func NotNil[T any](v T, name string) T {
	if IsNil(v) {
		panic(&NotFoundError{Param: name})
	}
	return v
}

// NotNilErr is NotNil with a caller-supplied failure. The factory itself is
// checked; a factory yielding a nil error raises an InvariantError.
func NotNilErr[T any](v T, errFn func() error) T {
	if IsNil(v) {
		panic(Failure(errFn))
	}
	return v
}

// That checks that cond holds, raising a ContractError with msg when it does
// not.
func That(cond bool, msg string) {
	if !cond {
		panic(&ContractError{Msg: msg})
	}
}

// ThatErr is That with a caller-supplied failure.
func ThatErr(cond bool, errFn func() error) {
	if !cond {
		panic(Failure(errFn))
	}
}

// Not checks that cond does not hold.
func Not(cond bool, msg string) {
	That(!cond, msg)
}

// Positive checks that n is greater than zero and returns it.
func Positive[N Number](n N, name string) N {
	if n <= 0 {
		panic(&ContractError{Msg: fmt.Sprintf("%s must be positive, got %v", name, n)})
	}
	return n
}

// NonNegative checks that n is not less than zero and returns it.
func NonNegative[N Number](n N, name string) N {
	if n < 0 {
		panic(&ContractError{Msg: fmt.Sprintf("%s must not be negative, got %v", name, n)})
	}
	return n
}

// NotEmpty checks that s contains something other than whitespace and
// returns it.
func NotEmpty(s string, name string) string {
	if strings.TrimSpace(s) == "" {
		panic(&ContractError{Msg: name + " must not be blank"})
	}
	return s
}

// NotEmptySlice checks that xs is non-nil and non-empty and returns it. A nil
// slice is a missing reference, an empty one an invalid value; the two raise
// different failure kinds.
func NotEmptySlice[T any](xs []T, name string) []T {
	if xs == nil {
		panic(&NotFoundError{Param: name})
	}
	if len(xs) == 0 {
		panic(&ContractError{Msg: name + " must not be empty"})
	}
	return xs
}

// ElementsNotNil checks that no element of xs is a nil reference and returns
// xs. All offending indexes are reported in one joined failure.
func ElementsNotNil[T any](xs []T, name string) []T {
	var errs []error
	for i, v := range xs {
		if IsNil(v) {
			errs = append(errs, &ContractError{Msg: fmt.Sprintf("%s[%d] must not be nil", name, i)})
		}
	}
	if len(errs) > 0 {
		panic(errors.Join(errs...))
	}
	return xs
}

// NotNilUUID checks that id is not the zero uuid and returns it.
func NotNilUUID(id uuid.UUID, name string) uuid.UUID {
	if id == uuid.Nil {
		panic(&ContractError{Msg: name + " must not be the nil uuid"})
	}
	return id
}

// NotZeroTime checks that t is not the zero time and returns it.
func NotZeroTime(t time.Time, name string) time.Time {
	if t.IsZero() {
		panic(&ContractError{Msg: name + " must not be the zero time"})
	}
	return t
}
