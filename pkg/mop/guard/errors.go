package guard

import "errors"

// ContractError reports that a caller supplied an invalid value or called an
// operation it was not allowed to call.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return "contract violation: " + e.Msg
}

// InvariantError reports that internal state assumed to be true was false.
// It is generally fatal to the operation in progress.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Msg
}

// NotFoundError reports that a required reference was absent. Param names the
// missing argument or field.
type NotFoundError struct {
	Param string
}

func (e *NotFoundError) Error() string {
	return "required value not found: " + e.Param
}

func IsContract(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// Errors splits a joined failure into its parts. A nil error yields an empty
// slice, an unjoined error a single-element one.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Failure resolves a failure factory: the factory must not be nil and must
// not yield a nil error.
func Failure(errFn func() error) error {
	if errFn == nil {
		panic(&NotFoundError{Param: "errFn"})
	}

	err := errFn()
	if IsNil(err) {
		panic(&InvariantError{Msg: "cannot fail with no failure"})
	}

	return err
}
