// Package derivkit records algebraic derivations step by step: wrap an
// expression or an equation, transform it, and get back an annotated,
// human-readable derivation log ready for documentation.
//
// What derivkit gives you:
//
//	A small, deterministic library that brings together:
//		• Working histories: every mutation appends one immutable work step
//		• Hierarchical composition: "on both sides" operations collapse into
//		  a single combined step with full per-side detail as children
//		• Live sinks: attach a markdown accumulator and watch the derivation
//		  render itself as you work
//		• A bundled exact-rational symbolic kernel (no cgo, no FFI)
//
// Everything is organized under four subpackages plus a demo CLI:
//
//	history/ — index source, work steps, the append-only working history
//	symbol/  — the symbolic-algebra kernel (expressions, equations, LaTeX)
//	derive/  — Expression and Equation wrappers that record every operation
//	output/  — markdown sink with inline/block math and file flushing
//	cmd/     — the derivkit CLI (canned demo derivation, terminal rendering)
//
// Quick sketch:
//
//	eq, _ := derive.NewEquation(..., ...)   // x^2 + 3 = y*(y - 2) + 4
//	md := output.NewMarkdown()
//	eq.AttachSink(md, false)
//	_ = eq.MultiplyBy(2)                    // one combined step, two children
//	_ = eq.Right().Factor()                 // one side-wise step
//	fmt.Println(md.Text())
//
// A derivation session is strictly sequential: nothing in this module is
// safe for concurrent mutation, and nothing needs to be.
//
//	go get github.com/derivkit/derivkit
package derivkit
