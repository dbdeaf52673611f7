// Package output renders recorded derivations to human-readable
// documents.
//
// The Markdown sink turns mixed fragments of text and math into a
// Markdown document with inline ($...$) and display ($$...$$) math.
// Anything exposing a LaTeX() string method renders as math; strings and
// fmt.Stringer values render as text. A Markdown sink satisfies
// history.Sink, so it can be attached to a log directly.
package output
