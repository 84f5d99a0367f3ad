// Package period defines a guarded time-range value object. Constructors
// enforce their contracts up front; queries that may have no answer, like
// Intersect, yield a Maybe instead of a sentinel.
package period
