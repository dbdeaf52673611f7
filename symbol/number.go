package symbol

import (
	"math/big"
)

// Number is an exact rational constant.
type Number struct{ val *big.Rat }

// Int returns the integer constant n.
func Int(n int64) *Number { return &Number{val: new(big.Rat).SetInt64(n)} }

// Frac returns the exact fraction p/q. A zero denominator is a programmer
// error and panics.
func Frac(p, q int64) *Number {
	if q == 0 {
		panic("symbol: zero denominator")
	}
	return &Number{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float returns the exact rational value of f (the binary representation,
// not a decimal approximation). Prefer Int and Frac where possible.
func Float(f float64) *Number { return &Number{val: new(big.Rat).SetFloat64(f)} }

// Rat returns an independent copy of the underlying rational.
func (n *Number) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// Int64 returns the numerator as an int64; meaningful only when IsInteger.
func (n *Number) Int64() int64 { return n.val.Num().Int64() }

// Float64 returns the nearest float64 value.
func (n *Number) Float64() float64 { f, _ := n.val.Float64(); return f }

func (n *Number) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Number) IsOne() bool      { return n.val.Cmp(ratOne) == 0 }
func (n *Number) IsNegOne() bool   { return n.val.Cmp(ratNegOne) == 0 }
func (n *Number) IsInteger() bool  { return n.val.IsInt() }
func (n *Number) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Number) Sign() int        { return n.val.Sign() }

func (n *Number) Simplify() Expr { return n }

func (n *Number) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Number) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return sign + "\\frac{" + v.Num().String() + "}{" + v.Denom().String() + "}"
}

func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.val.Cmp(o.val) == 0
}

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func numAdd(a, b *Number) *Number { return &Number{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Number) *Number { return &Number{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Number) *Number    { return &Number{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Number) *Number {
	if a.IsZero() {
		panic("symbol: division by zero")
	}
	return &Number{val: new(big.Rat).Inv(a.val)}
}

func numAbs(a *Number) *Number {
	r := new(big.Rat).Set(a.val)
	if r.Sign() < 0 {
		r.Neg(r)
	}
	return &Number{val: r}
}

// numGCD is the rational GCD: gcd of numerators over lcm of denominators.
// Used by Factor for content extraction.
func numGCD(a, b *Number) *Number {
	an, bn := new(big.Int).Abs(a.val.Num()), new(big.Int).Abs(b.val.Num())
	ad, bd := a.val.Denom(), b.val.Denom()
	g := new(big.Int).GCD(nil, nil, an, bn)
	l := new(big.Int).Div(new(big.Int).Mul(ad, bd), new(big.Int).GCD(nil, nil, ad, bd))
	if g.Sign() == 0 {
		return Int(0)
	}
	return &Number{val: new(big.Rat).SetFrac(g, l)}
}
