package symbol

import (
	"math/big"
	"sort"
)

// Simplify returns the rule-simplified form of e.
func Simplify(e Expr) Expr { return e.Simplify() }

// Canonical fully distributes and simplifies e. Two algebraically equal
// polynomial expressions have Equal canonical forms.
func Canonical(e Expr) Expr { return Expand(e) }

// Expand distributes products over sums and expands small integer powers
// of sums, then simplifies.
func Expand(e Expr) Expr { return expand(e).Simplify() }

const maxExpandExp = 10

func expand(e Expr) Expr {
	switch v := e.(type) {
	case *Product:
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expand(f)
		}
		for i, f := range expanded {
			sum, ok := f.(*Sum)
			if !ok {
				continue
			}
			rest := make([]Expr, 0, len(expanded)-1)
			for j, ef := range expanded {
				if j != i {
					rest = append(rest, ef)
				}
			}
			terms := make([]Expr, len(sum.terms))
			for k, t := range sum.terms {
				terms[k] = expand(Mul(append([]Expr{t}, rest...)...))
			}
			return expand(Add(terms...))
		}
		return Mul(expanded...)
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expand(t)
		}
		return Add(terms...)
	case *Power:
		base := expand(v.base)
		if n, ok := v.exp.(*Number); ok && n.IsInteger() {
			d := n.Int64()
			if d >= 0 && d <= maxExpandExp {
				// Distribute term-wise instead of through Mul, whose
				// repeated-base merging would rebuild this power node.
				switch b := base.(type) {
				case *Sum:
					acc := []Expr{Int(1)}
					for i := int64(0); i < d; i++ {
						acc = crossTerms(acc, b.terms)
					}
					return Add(acc...)
				case *Product:
					pows := make([]Expr, len(b.factors))
					for i, f := range b.factors {
						pows[i] = expand(Pow(f, Int(d)))
					}
					return Mul(pows...)
				}
			}
		}
		return Pow(base, expand(v.exp))
	case *Call:
		return call(v.name, expand(v.arg))
	}
	return e
}

// crossTerms multiplies every accumulated term by every sum term,
// building the distributed cross product directly.
func crossTerms(acc, terms []Expr) []Expr {
	out := make([]Expr, 0, len(acc)*len(terms))
	for _, a := range acc {
		for _, t := range terms {
			out = append(out, Mul(a, t))
		}
	}
	return out
}

// Subst replaces every occurrence of the named variable with value.
func Subst(e Expr, name string, value Expr) Expr {
	switch v := e.(type) {
	case *Variable:
		if v.name == name {
			return Clone(value).Simplify()
		}
		return v
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Subst(t, name, value)
		}
		return Add(terms...)
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Subst(f, name, value)
		}
		return Mul(factors...)
	case *Power:
		return Pow(Subst(v.base, name, value), Subst(v.exp, name, value))
	case *Call:
		return call(v.name, Subst(v.arg, name, value))
	}
	return e
}

// Replace substitutes every subtree structurally equal to pattern with
// replacement. A bare variable pattern behaves exactly like Subst.
func Replace(e, pattern, replacement Expr) Expr {
	if e.Equal(pattern) {
		return Clone(replacement).Simplify()
	}
	switch v := e.(type) {
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Replace(t, pattern, replacement)
		}
		return Add(terms...)
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Replace(f, pattern, replacement)
		}
		return Mul(factors...)
	case *Power:
		return Pow(Replace(v.base, pattern, replacement), Replace(v.exp, pattern, replacement))
	case *Call:
		return call(v.name, Replace(v.arg, pattern, replacement))
	}
	return e
}

// Degree returns the polynomial degree of e in the named variable, zero
// for anything that does not depend on it polynomially.
func Degree(e Expr, name string) int {
	switch v := e.Simplify().(type) {
	case *Variable:
		if v.name == name {
			return 1
		}
	case *Power:
		if sym, ok := v.base.(*Variable); ok && sym.name == name {
			if n, ok2 := v.exp.(*Number); ok2 && n.IsInteger() {
				return int(n.Int64())
			}
		}
	case *Sum:
		max := 0
		for _, t := range v.terms {
			if d := Degree(t, name); d > max {
				max = d
			}
		}
		return max
	case *Product:
		total := 0
		for _, f := range v.factors {
			total += Degree(f, name)
		}
		return total
	}
	return 0
}

// Coeffs extracts the coefficient of each power of the named variable
// without altering e, the "collect without evaluation" view.
func Coeffs(e Expr, name string) map[int]Expr {
	out := map[int]Expr{}
	extractCoeffs(e.Simplify(), name, out)
	return out
}

func extractCoeffs(e Expr, name string, out map[int]Expr) {
	switch v := e.(type) {
	case *Number:
		addCoeff(out, 0, v)
	case *Variable:
		if v.name == name {
			addCoeff(out, 1, Int(1))
		} else {
			addCoeff(out, 0, v)
		}
	case *Power:
		if sym, ok := v.base.(*Variable); ok && sym.name == name {
			if n, ok2 := v.exp.(*Number); ok2 && n.IsInteger() {
				addCoeff(out, int(n.Int64()), Int(1))
				return
			}
		}
		addCoeff(out, 0, e)
	case *Product:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.factors {
			if d := Degree(f, name); d > 0 {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		switch len(coeffFactors) {
		case 0:
			addCoeff(out, deg, Int(1))
		case 1:
			addCoeff(out, deg, coeffFactors[0])
		default:
			addCoeff(out, deg, Mul(coeffFactors...))
		}
	case *Sum:
		for _, t := range v.terms {
			extractCoeffs(t, name, out)
		}
	default:
		addCoeff(out, 0, e)
	}
}

func addCoeff(out map[int]Expr, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = Add(existing, val)
	} else {
		out[deg] = val.Simplify()
	}
}

// Collect groups the expanded expression by powers of the named variable,
// highest degree first.
func Collect(e Expr, name string) Expr {
	coeffs := Coeffs(Expand(e), name)
	if len(coeffs) == 0 {
		return Int(0)
	}
	degrees := make([]int, 0, len(coeffs))
	for d := range coeffs {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))
	terms := make([]Expr, 0, len(degrees))
	for _, d := range degrees {
		c := coeffs[d]
		if n, ok := c.(*Number); ok && n.IsZero() {
			continue
		}
		switch d {
		case 0:
			terms = append(terms, c)
		case 1:
			terms = append(terms, keepCoeffTerm(c, Var(name)))
		default:
			terms = append(terms, keepCoeffTerm(c, Pow(Var(name), Int(int64(d)))))
		}
	}
	if len(terms) == 0 {
		return Int(0)
	}
	return Add(terms...)
}

// keepCoeffTerm builds c*x without distributing a sum coefficient.
func keepCoeffTerm(c, x Expr) Expr {
	if n, ok := c.(*Number); ok {
		if n.IsOne() {
			return x
		}
		return &Product{factors: []Expr{n, x}}
	}
	return &Product{factors: []Expr{c, x}}
}

// Factor expands e, pulls out the common rational content of its terms,
// and splits monic quadratics with rational roots into linear factors.
// When nothing factors, the expanded form is returned.
func Factor(e Expr) Expr {
	exp := Expand(e)
	sum, ok := exp.(*Sum)
	if !ok {
		return exp
	}

	content := contentOf(sum)
	inner := exp
	if !content.IsOne() {
		scaled := make([]Expr, len(sum.terms))
		inv := numRecip(content)
		for i, t := range sum.terms {
			scaled[i] = distributeNum(inv, t)
		}
		inner = Add(scaled...)
	}

	if factored, ok := factorQuadratic(inner); ok {
		inner = factored
	} else if content.IsOne() {
		return exp
	}

	if content.IsOne() {
		return inner
	}
	// Keep the coefficient attached without re-distribution.
	if p, ok := inner.(*Product); ok {
		if n, ok2 := p.factors[0].(*Number); ok2 {
			return &Product{factors: append([]Expr{numMul(content, n)}, p.factors[1:]...)}
		}
		return &Product{factors: append([]Expr{content}, p.factors...)}
	}
	return &Product{factors: []Expr{content, inner}}
}

// contentOf is the positive rational GCD of the term coefficients.
func contentOf(s *Sum) *Number {
	content := Int(0)
	for _, t := range s.terms {
		var c *Number
		if n, ok := t.(*Number); ok {
			c = n
		} else {
			c, _ = splitCoeff(t)
		}
		if content.IsZero() {
			content = numAbs(c)
			continue
		}
		content = numGCD(content, c)
		if content.IsOne() {
			return content
		}
	}
	if content.IsZero() {
		return Int(1)
	}
	return content
}

// factorQuadratic splits a univariate quadratic with numeric coefficients
// and rational roots into a*(x - r1)*(x - r2).
func factorQuadratic(e Expr) (Expr, bool) {
	vars := FreeVars(e)
	if len(vars) != 1 {
		return nil, false
	}
	name := vars[0]
	if Degree(e, name) != 2 {
		return nil, false
	}
	coeffs := Coeffs(e, name)
	a, ok := numCoeff(coeffs, 2)
	if !ok || a.IsZero() {
		return nil, false
	}
	b, ok := numCoeff(coeffs, 1)
	if !ok {
		return nil, false
	}
	c, ok := numCoeff(coeffs, 0)
	if !ok {
		return nil, false
	}

	// Discriminant must be a perfect rational square.
	disc := new(big.Rat).Sub(new(big.Rat).Mul(b.val, b.val),
		new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a.val, c.val)))
	if disc.Sign() < 0 {
		return nil, false
	}
	root, ok := ratSqrt(disc)
	if !ok {
		return nil, false
	}

	twoA := new(big.Rat).Mul(big.NewRat(2, 1), a.val)
	r1 := &Number{val: new(big.Rat).Quo(new(big.Rat).Sub(root, b.val), twoA)}
	r2 := &Number{val: new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Neg(root), b.val), twoA)}

	x := Var(name)
	f1, f2 := Sub(x, r1), Sub(x, r2)
	if a.IsOne() {
		return Mul(f1, f2), true
	}
	return &Product{factors: []Expr{a, f1, f2}}, true
}

func numCoeff(coeffs map[int]Expr, deg int) (*Number, bool) {
	c, ok := coeffs[deg]
	if !ok {
		return Int(0), true
	}
	n, ok := c.(*Number)
	return n, ok
}

// ratSqrt returns the exact square root of a non-negative rational, if
// numerator and denominator are both perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	num, den := r.Num(), r.Denom()
	sn := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 {
		return nil, false
	}
	sd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(sn, sd), true
}

// Fraction splits e into numerator and denominator by collecting negative
// powers and rational denominators; expressions with no denominator
// structure return (e, 1).
func Fraction(e Expr) (num, den Expr) {
	switch v := e.(type) {
	case *Number:
		r := v.Rat()
		return &Number{val: new(big.Rat).SetInt(r.Num())},
			&Number{val: new(big.Rat).SetInt(r.Denom())}
	case *Power:
		if n, ok := v.exp.(*Number); ok && n.IsNegative() {
			return Int(1), Pow(v.base, numNeg(n))
		}
		return v, Int(1)
	case *Product:
		nums := []Expr{}
		dens := []Expr{}
		for _, f := range v.factors {
			fn, fd := Fraction(f)
			if !isOne(fn) {
				nums = append(nums, fn)
			}
			if !isOne(fd) {
				dens = append(dens, fd)
			}
		}
		return mulOrOne(nums), mulOrOne(dens)
	}
	return e, Int(1)
}

func isOne(e Expr) bool {
	n, ok := e.(*Number)
	return ok && n.IsOne()
}

func mulOrOne(factors []Expr) Expr {
	switch len(factors) {
	case 0:
		return Int(1)
	case 1:
		return factors[0]
	}
	return Mul(factors...)
}
