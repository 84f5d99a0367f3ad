// Package mass implements channel-based building blocks that lift the mop
// primitives and provide orchestration (binding, mapping, filtering,
// finalizing) with control over cancellation behavior.
//
// Every lift preserves the branch outcomes of its synchronous counterpart:
// the present branch runs to completion before the result is readable, an
// absent input never invokes the callback, and at most one branch runs per
// value. It is typically used by higher-level packages (lite/custom) to
// compose concurrent pipelines, integrating cancellation handlers and select
// loops.
package mass
