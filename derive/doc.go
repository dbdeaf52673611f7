// Package derive wraps symbolic values so that every transformation is
// recorded as a readable derivation step.
//
// An Expression pairs a symbol.Expr with a history.Log: each mutating
// method (Add, MultiplyBy, Factor, ...) replaces the value and appends
// one step carrying the states before and after. An Equation tracks two
// Expressions as its sides; equation-wide operations apply to the left
// side then the right and surface as one combined step with the side
// steps nested as children.
//
// Attach an output sink (for example output.NewMarkdown) to stream the
// derivation as it happens, or replay it afterwards with WriteHistoryTo:
//
//	x := symbol.Var("x")
//	e, _ := derive.NewExpression(symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Int(3)))
//	_ = e.MultiplyBy(2)
//	_ = e.WriteHistoryTo(md, false)
//
// Operands may be tracked expressions, plain symbol.Expr values, or Go
// ints and floats. A derivation session is strictly sequential; nothing
// here is safe for concurrent use.
package derive
