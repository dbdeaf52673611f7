package symbol_test

import (
	"testing"

	"github.com/derivkit/derivkit/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpand_DistributesProducts verifies full distribution of products
// over sums.
func TestExpand_DistributesProducts(t *testing.T) {
	x, y := symbol.Var("x"), symbol.Var("y")

	e := symbol.Mul(symbol.Int(2), symbol.Add(symbol.Mul(y, symbol.Sub(y, symbol.Int(2))), symbol.Int(4)))
	require.Equal(t, "2*y*(y - 2) + 8", e.String())
	assert.Equal(t, "2*y^2 - 4*y + 8", symbol.Expand(e).String())

	binomials := symbol.Mul(symbol.Add(x, symbol.Int(1)), symbol.Add(x, symbol.Int(2)))
	assert.Equal(t, "x^2 + 3*x + 2", symbol.Expand(binomials).String())
}

// TestExpand_IntegerPowersOfSums checks the term-wise cross-product
// expansion of small integer powers.
func TestExpand_IntegerPowersOfSums(t *testing.T) {
	x := symbol.Var("x")

	square := symbol.Pow(symbol.Add(x, symbol.Int(1)), symbol.Int(2))
	assert.Equal(t, "x^2 + 2*x + 1", symbol.Expand(square).String())

	cube := symbol.Pow(symbol.Sub(x, symbol.Int(1)), symbol.Int(3))
	assert.Equal(t, "x^3 - 3*x^2 + 3*x - 1", symbol.Expand(cube).String())
}

// TestExpand_PowerBases verifies that integer powers of atomic and
// product bases terminate and distribute over the factors, and that
// expansion is a fixpoint on already-expanded forms.
func TestExpand_PowerBases(t *testing.T) {
	x, y := symbol.Var("x"), symbol.Var("y")

	assert.Equal(t, "x^2", symbol.Expand(symbol.Pow(x, symbol.Int(2))).String())
	assert.Equal(t, "x^2*y^2", symbol.Expand(symbol.Pow(symbol.Mul(x, y), symbol.Int(2))).String())

	square := symbol.Expand(symbol.Pow(symbol.Add(x, symbol.Int(1)), symbol.Int(2)))
	assert.True(t, symbol.Expand(square).Equal(square))
}

// TestCanonical_IdentifiesEqualPolynomials verifies that algebraically
// equal polynomials share one canonical form.
func TestCanonical_IdentifiesEqualPolynomials(t *testing.T) {
	x := symbol.Var("x")

	a := symbol.Mul(symbol.Add(x, symbol.Int(1)), symbol.Add(x, symbol.Int(1)))
	b := symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Mul(symbol.Int(2), x), symbol.Int(1))
	assert.True(t, symbol.Canonical(a).Equal(symbol.Canonical(b)))
}

// TestFactor_PullsRationalContent checks content extraction over an
// irreducible quadratic and that the result survives rendering intact.
func TestFactor_PullsRationalContent(t *testing.T) {
	y := symbol.Var("y")

	e := symbol.Add(
		symbol.Mul(symbol.Int(2), symbol.Pow(y, symbol.Int(2))),
		symbol.Mul(symbol.Int(-4), y),
		symbol.Int(8),
	)
	f := symbol.Factor(e)
	assert.Equal(t, "2*(y^2 - 2*y + 4)", f.String())

	// The factored form still cancels against itself.
	assert.Equal(t, "0", symbol.Sub(f, f).String())
}

// TestFactor_SplitsRationalRoots checks the quadratic root splitting.
func TestFactor_SplitsRationalRoots(t *testing.T) {
	x := symbol.Var("x")

	e := symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Mul(symbol.Int(3), x), symbol.Int(2))
	assert.Equal(t, "(x + 1)*(x + 2)", symbol.Factor(e).String())
}

// TestFactor_ReturnsExpandedWhenIrreducible verifies the fallback for
// expressions with nothing to pull out.
func TestFactor_ReturnsExpandedWhenIrreducible(t *testing.T) {
	x := symbol.Var("x")

	e := symbol.Add(symbol.Pow(x, symbol.Int(2)), x, symbol.Int(1))
	assert.Equal(t, "x^2 + x + 1", symbol.Factor(e).String())

	assert.Equal(t, "x", symbol.Factor(x).String(), "non-sums pass through")
}

// TestCollect_GroupsByDegree verifies the collect-by-variable view.
func TestCollect_GroupsByDegree(t *testing.T) {
	x := symbol.Var("x")

	e := symbol.Mul(symbol.Add(x, symbol.Int(1)), symbol.Add(x, symbol.Int(2)))
	assert.Equal(t, "x^2 + 3*x + 2", symbol.Collect(e, "x").String())
}

// TestDegree reports the polynomial degree in a named variable.
func TestDegree(t *testing.T) {
	x, y := symbol.Var("x"), symbol.Var("y")

	e := symbol.Add(
		symbol.Mul(symbol.Int(3), symbol.Pow(x, symbol.Int(2)), y),
		symbol.Mul(symbol.Int(2), x),
		symbol.Int(5),
	)
	assert.Equal(t, 2, symbol.Degree(e, "x"))
	assert.Equal(t, 1, symbol.Degree(e, "y"))
	assert.Equal(t, 0, symbol.Degree(e, "z"))
}

// TestCoeffs extracts per-degree coefficients.
func TestCoeffs(t *testing.T) {
	x := symbol.Var("x")

	e := symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Mul(symbol.Int(3), x), symbol.Int(2))
	coeffs := symbol.Coeffs(e, "x")

	require.Len(t, coeffs, 3)
	assert.Equal(t, "1", coeffs[2].String())
	assert.Equal(t, "3", coeffs[1].String())
	assert.Equal(t, "2", coeffs[0].String())
}

// TestSubst replaces a named variable and re-simplifies.
func TestSubst(t *testing.T) {
	x, y := symbol.Var("x"), symbol.Var("y")

	e := symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Int(3))
	assert.Equal(t, "7", symbol.Subst(e, "x", symbol.Int(2)).String())
	assert.Equal(t, "y^2 + 3", symbol.Subst(e, "x", y).String())
	assert.Equal(t, "x^2 + 3", symbol.Subst(e, "z", symbol.Int(9)).String(),
		"unknown names substitute nothing")
}

// TestReplace substitutes whole structurally equal subtrees.
func TestReplace(t *testing.T) {
	x, u := symbol.Var("x"), symbol.Var("u")

	e := symbol.Add(symbol.Sin(symbol.Pow(x, symbol.Int(2))), symbol.Pow(x, symbol.Int(2)))
	got := symbol.Replace(e, symbol.Pow(x, symbol.Int(2)), u)
	assert.Equal(t, "sin(u) + u", got.String())
}

// TestFraction splits an expression into numerator and denominator.
func TestFraction(t *testing.T) {
	x, y := symbol.Var("x"), symbol.Var("y")

	num, den := symbol.Fraction(symbol.Div(x, y))
	assert.Equal(t, "x", num.String())
	assert.Equal(t, "y", den.String())

	num, den = symbol.Fraction(symbol.Frac(3, 4))
	assert.Equal(t, "3", num.String())
	assert.Equal(t, "4", den.String())

	num, den = symbol.Fraction(x)
	assert.Equal(t, "x", num.String())
	assert.Equal(t, "1", den.String())
}
