// Package text holds small guarded string helpers: sequence joining with a
// render function and display-name lookups for enumerated values.
package text
