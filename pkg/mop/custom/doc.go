// Package custom exposes higher-level concurrent helpers that build on mass
// to add cancellation strategies and multi-worker orchestration. It is suited
// for pipelines that need explicit handling of unprocessed, processed, and
// remaining values on cancel.
//
// Key constructs:
// - Run/RunSingle/Turnout: orchestrate engines with handlers and delivery callbacks
// - Filter, Bind, Map, OrTry, Tee: channel-lifted operations with onCancel
// - FlushRemaining* utilities: define how remaining items drain on cancel
package custom
