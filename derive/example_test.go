package derive_test

import (
	"fmt"

	"github.com/derivkit/derivkit/derive"
	"github.com/derivkit/derivkit/output"
	"github.com/derivkit/derivkit/symbol"
)

// ExampleExpression tracks a small arithmetic derivation.
func ExampleExpression() {
	x := symbol.Var("x")
	e, _ := derive.NewExpression(symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Int(3)))

	_ = e.Add(2)
	_ = e.MultiplyBy(2)

	fmt.Println(e)
	for _, step := range e.History().Steps() {
		fmt.Println(step.Index, step.Description)
	}
	// Output:
	// 2*x^2 + 10
	// 1 Add
	// 2 Multiply by
}

// ExampleEquation doubles both sides of an equation and groups the two
// side steps under one combined entry.
func ExampleEquation() {
	x, y := symbol.Var("x"), symbol.Var("y")
	eq, _ := derive.NewEquation(
		symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Int(3)),
		symbol.Add(symbol.Mul(y, symbol.Sub(y, symbol.Int(2))), symbol.Int(4)),
	)

	_ = eq.MultiplyBy(2)

	fmt.Println(eq)
	fmt.Println(eq.History().Len(), "combined entry with",
		len(eq.History().Steps()[0].Children), "children")
	// Output:
	// 2*x^2 + 6 = 2*y*(y - 2) + 8
	// 1 combined entry with 2 children
}

// ExampleEquation_swapSides exchanges the sides through arithmetic
// moves, keeping each side's history attached to its identity.
func ExampleEquation_swapSides() {
	x := symbol.Var("x")
	eq, _ := derive.NewEquation(symbol.Add(x, symbol.Int(1)), symbol.Int(5))

	_ = eq.SwapSides()

	fmt.Println(eq)
	// Output:
	// 5 = x + 1
}

// ExampleExpression_markdown streams a derivation into a markdown
// document.
func ExampleExpression_markdown() {
	x := symbol.Var("x")
	e, _ := derive.NewExpression(symbol.Add(x, symbol.Int(1)))

	md := output.NewMarkdown()
	_ = e.AttachSink(md, false)
	_ = e.MultiplyBy(3)

	fmt.Println(md.Text())
	// Output:
	// Initial expression:
	// $$x + 1$$
	//
	// Multiply by $3$
	// $$3 x + 3$$
}
