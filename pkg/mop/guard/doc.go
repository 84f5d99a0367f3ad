// Package guard contains contract-enforcement primitives: checks that verify
// a condition and stop the current operation with a classified failure when
// it does not hold. Guards protect boundaries and internal assumptions; they
// are not an error channel for expected runtime conditions.
//
// Failure kinds:
// - ContractError: the caller supplied an invalid value
// - InvariantError: internal state assumed true was false
// - NotFoundError: a required reference was absent
//
// Highlights:
// - NotNil/NotNilErr: required-reference checks that return the checked value
// - That/ThatErr/Not: boolean contract checks
// - Positive/NonNegative: numeric range checks over any built-in number
// - NotEmpty/NotEmptySlice/ElementsNotNil: text and collection checks
// - NotNilUUID/NotZeroTime: domain emptiness checks
// - NotNilResult0/1/2: wrap a function so its result is nil-checked
//
// Failures are raised as panics carrying the typed error value. Recover at
// the operation boundary to report them; IsContract, IsInvariant and
// IsNotFound classify recovered failures.
package guard
