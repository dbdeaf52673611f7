package symbol

import "math/big"

// Power is base^exp.
type Power struct{ base, exp Expr }

// Pow returns the simplified power base^exp.
func Pow(base, exp Expr) Expr { return (&Power{base: base, exp: exp}).Simplify() }

// Sqrt returns the square root of e, represented as e^(1/2).
func Sqrt(e Expr) Expr { return Pow(e, Frac(1, 2)) }

// RootN returns the nth root of e, represented as e^(1/n).
func RootN(e Expr, n int64) Expr { return Pow(e, Frac(1, n)) }

// Base returns the base expression.
func (p *Power) Base() Expr { return p.base }

// Exp returns the exponent expression.
func (p *Power) Exp() Expr { return p.exp }

const maxFoldExp = 20

func (p *Power) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Number); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}

	// 0^exp: zero for positive exponents, kept indeterminate otherwise.
	if bn, ok := base.(*Number); ok && bn.IsZero() {
		if en, ok2 := exp.(*Number); ok2 && (en.IsZero() || en.IsNegative()) {
			return &Power{base: base, exp: exp}
		}
		return Int(0)
	}
	if bn, ok := base.(*Number); ok && bn.IsOne() {
		return Int(1)
	}

	if bn, ok := base.(*Number); ok {
		if en, ok2 := exp.(*Number); ok2 {
			if folded, ok3 := foldNumPow(bn, en); ok3 {
				return folded
			}
		}
	}

	// (a^b)^c collapses to a^(b*c), treating symbols as positive reals.
	if inner, ok := base.(*Power); ok {
		return Pow(inner.base, Mul(inner.exp, exp))
	}

	return &Power{base: base, exp: exp}
}

// foldNumPow evaluates number^number exactly where that stays rational:
// small integer exponents and exact square roots of integers.
func foldNumPow(base, exp *Number) (Expr, bool) {
	if exp.IsInteger() {
		e := exp.Int64()
		abs := e
		if abs < 0 {
			abs = -abs
		}
		if abs > maxFoldExp {
			return nil, false
		}
		result := Int(1)
		for i := int64(0); i < abs; i++ {
			result = numMul(result, base)
		}
		if e < 0 {
			result = numRecip(result)
		}
		return result, true
	}
	// p/2 exponents of non-negative perfect-square integers.
	if base.IsInteger() && !base.IsNegative() && exp.Rat().Denom().Cmp(big.NewInt(2)) == 0 {
		n := base.Rat().Num()
		root := new(big.Int).Sqrt(n)
		if new(big.Int).Mul(root, root).Cmp(n) == 0 {
			return foldNumPow(&Number{val: new(big.Rat).SetInt(root)},
				&Number{val: new(big.Rat).SetInt(exp.Rat().Num())})
		}
	}
	return nil, false
}

func (p *Power) String() string {
	baseStr := p.base.String()
	if needsParens(p.base) {
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	if needsParens(p.exp) {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Power) LaTeX() string {
	if n, ok := p.exp.(*Number); ok && n.Rat().Cmp(big.NewRat(1, 2)) == 0 {
		return "\\sqrt{" + p.base.LaTeX() + "}"
	}
	baseStr := p.base.LaTeX()
	if needsParens(p.base) {
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

// needsParens reports whether e must be parenthesized when used as the
// base or exponent of a power.
func needsParens(e Expr) bool {
	switch v := e.(type) {
	case *Sum, *Product:
		return true
	case *Number:
		return v.IsNegative() || !v.IsInteger()
	}
	return false
}

func (p *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
