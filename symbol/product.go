package symbol

import (
	"sort"
	"strings"
)

// Product is a flattened product of factors. The leading factor is the
// numeric coefficient when it differs from one.
type Product struct{ factors []Expr }

// Mul returns the simplified product of the given factors.
func Mul(factors ...Expr) Expr { return (&Product{factors: factors}).Simplify() }

// Div returns the simplified quotient a / b, represented as a * b^-1.
func Div(a, b Expr) Expr { return Mul(a, Pow(b, Int(-1))) }

// Neg returns the simplified negation -e.
func Neg(e Expr) Expr { return Mul(Int(-1), e) }

// Factors returns the factor list (shared; callers must not modify it).
func (p *Product) Factors() []Expr { return p.factors }

// Simplify flattens nested products, folds numeric factors into a single
// leading coefficient, merges repeated bases into powers, and orders the
// remaining factors deterministically. A numeric coefficient distributes
// over a sum only when that sum is the sole companion factor, which
// mirrors how the wrapped operations expect n*(a+b) to behave while
// leaving multi-factor products such as 2*y*(y-2) intact.
func (p *Product) Simplify() Expr {
	flat := make([]Expr, 0, len(p.factors))
	for _, f := range p.factors {
		sf := f.Simplify()
		if inner, ok := sf.(*Product); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, sf)
		}
	}

	coeff := Int(1)
	type entry struct {
		base     Expr
		exps     []Expr
		original Expr // set while the base occurs exactly once
		key      string
	}
	order := []string{}
	byKey := map[string]*entry{}
	for _, f := range flat {
		if n, ok := f.(*Number); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := Expr(f), Expr(Int(1))
		if pw, ok := f.(*Power); ok {
			base, exp = pw.base, pw.exp
		}
		key := base.String()
		if e, seen := byKey[key]; seen {
			e.exps = append(e.exps, exp)
			e.original = nil
		} else {
			byKey[key] = &entry{base: base, exps: []Expr{exp}, original: f, key: key}
			order = append(order, key)
		}
	}
	if coeff.IsZero() {
		return Int(0)
	}

	others := make([]Expr, 0, len(order))
	for _, k := range order {
		e := byKey[k]
		if e.original != nil {
			others = append(others, e.original)
			continue
		}
		merged := Pow(e.base, Add(e.exps...))
		if n, ok := merged.(*Number); ok {
			coeff = numMul(coeff, n)
			continue
		}
		others = append(others, merged)
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].String() < others[j].String()
	})

	if len(others) == 0 {
		return coeff
	}
	if len(others) == 1 {
		if coeff.IsOne() {
			return others[0]
		}
		// n*(a+b) distributes; everything else keeps the coefficient.
		if sum, ok := others[0].(*Sum); ok {
			terms := make([]Expr, len(sum.terms))
			for i, t := range sum.terms {
				terms[i] = distributeNum(coeff, t)
			}
			return Add(terms...)
		}
	}
	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Product{factors: others}
	}
	return &Product{factors: append([]Expr{coeff}, others...)}
}

// distributeNum multiplies a simplified non-sum term by a rational
// coefficient without a full re-simplification pass.
func distributeNum(n *Number, term Expr) Expr {
	if t, ok := term.(*Number); ok {
		return numMul(n, t)
	}
	c, rest := splitCoeff(term)
	return scaleTerm(numMul(n, c), rest)
}

func (p *Product) String() string { return p.render(func(e Expr) string { return e.String() }, "*") }

func (p *Product) LaTeX() string { return p.render(func(e Expr) string { return e.LaTeX() }, " ") }

func (p *Product) render(show func(Expr) string, sep string) string {
	if len(p.factors) == 0 {
		return "1"
	}
	factors := p.factors
	prefix := ""
	if n, ok := factors[0].(*Number); ok && n.IsNegOne() && len(factors) > 1 {
		prefix = "-"
		factors = factors[1:]
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		if _, isSum := f.(*Sum); isSum {
			if sep == "*" {
				parts[i] = "(" + show(f) + ")"
			} else {
				parts[i] = "\\left(" + show(f) + "\\right)"
			}
		} else {
			parts[i] = show(f)
		}
	}
	return prefix + strings.Join(parts, sep)
}

func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(p.factors) != len(o.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}
