// Package history is the step-recording layer behind tracked values.
//
// A Log records operations applied to some state as Steps, each carrying
// the state before and after it. Logs compose two ways:
//
//   - Parent propagation: a log built with WithParent mirrors every step
//     onto its parent, suffixed with the child's tag (" on left side"),
//     while the parent recomputes its own state through the
//     WithCombinedState hook.
//   - Combined scopes: BeginCombined buffers the steps recorded until
//     End into one grouped step whose Children hold the substeps, so an
//     operation applied to both sides of an equation reads as a single
//     entry.
//
// Logs sharing an IndexSource number their steps on one sequence, which
// keeps a parent and its children in chronological order.
//
// Sinks receive the rendered record. Attach one with AttachSink to
// stream steps as they happen, or catch a late sink up with ReplayTo.
package history
