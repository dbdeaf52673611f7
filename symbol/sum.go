package symbol

import (
	"sort"
	"strings"
)

// Sum is a flattened sum of terms.
type Sum struct{ terms []Expr }

// Add returns the simplified sum of the given terms.
func Add(terms ...Expr) Expr { return (&Sum{terms: terms}).Simplify() }

// Sub returns the simplified difference a - b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Terms returns the term list (shared; callers must not modify it).
func (s *Sum) Terms() []Expr { return s.terms }

// Simplify flattens nested sums, folds numeric terms, and combines like
// terms by splitting each into a rational coefficient and a canonical
// remainder. Non-numeric terms are ordered by descending weight, then by
// remainder string; the numeric constant comes last.
func (s *Sum) Simplify() Expr {
	flat := make([]Expr, 0, len(s.terms))
	for _, t := range s.terms {
		st := t.Simplify()
		if inner, ok := st.(*Sum); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, st)
		}
	}

	acc := Int(0)
	type entry struct {
		coeff *Number
		rest  Expr
		key   string
	}
	order := []string{}
	byKey := map[string]*entry{}
	for _, t := range flat {
		if n, ok := t.(*Number); ok {
			acc = numAdd(acc, n)
			continue
		}
		coeff, rest := splitCoeff(t)
		key := rest.String()
		if e, seen := byKey[key]; seen {
			e.coeff = numAdd(e.coeff, coeff)
		} else {
			byKey[key] = &entry{coeff: coeff, rest: rest, key: key}
			order = append(order, key)
		}
	}

	kept := make([]*entry, 0, len(order))
	for _, k := range order {
		if e := byKey[k]; !e.coeff.IsZero() {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		wi, wj := weight(kept[i].rest), weight(kept[j].rest)
		if wi != wj {
			return wi > wj
		}
		return kept[i].key < kept[j].key
	})

	terms := make([]Expr, 0, len(kept)+1)
	for _, e := range kept {
		terms = append(terms, scaleTerm(e.coeff, e.rest))
	}
	if !acc.IsZero() {
		terms = append(terms, acc)
	}

	switch len(terms) {
	case 0:
		return Int(0)
	case 1:
		return terms[0]
	}
	return &Sum{terms: terms}
}

// splitCoeff separates a simplified term into its leading rational
// coefficient and the remaining factor structure.
func splitCoeff(e Expr) (*Number, Expr) {
	if p, ok := e.(*Product); ok && len(p.factors) > 0 {
		if n, ok2 := p.factors[0].(*Number); ok2 {
			rest := p.factors[1:]
			if len(rest) == 1 {
				return n, rest[0]
			}
			return n, &Product{factors: rest}
		}
	}
	return Int(1), e
}

// scaleTerm rebuilds coeff*rest without re-simplifying rest.
func scaleTerm(coeff *Number, rest Expr) Expr {
	if coeff.IsOne() {
		return rest
	}
	if p, ok := rest.(*Product); ok {
		return &Product{factors: append([]Expr{coeff}, p.factors...)}
	}
	return &Product{factors: []Expr{coeff, rest}}
}

// termSign splits a rendered term into its sign and absolute form, so
// sums print "a - b" rather than "a + -1*b".
func termSign(e Expr) (neg bool, abs Expr) {
	switch v := e.(type) {
	case *Number:
		if v.IsNegative() {
			return true, numNeg(v)
		}
	case *Product:
		if len(v.factors) > 0 {
			if n, ok := v.factors[0].(*Number); ok && n.IsNegative() {
				return true, scaleTerm(numNeg(n), restOf(v))
			}
		}
	}
	return false, e
}

func restOf(p *Product) Expr {
	rest := p.factors[1:]
	if len(rest) == 1 {
		return rest[0]
	}
	return &Product{factors: rest}
}

func (s *Sum) String() string { return s.render(func(e Expr) string { return e.String() }) }

func (s *Sum) LaTeX() string { return s.render(func(e Expr) string { return e.LaTeX() }) }

func (s *Sum) render(show func(Expr) string) string {
	if len(s.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range s.terms {
		neg, abs := termSign(t)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(show(abs))
	}
	return b.String()
}

func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}
