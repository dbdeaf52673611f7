package derive

import (
	"github.com/derivkit/derivkit/symbol"
)

// Substitution names what a substitute operation should rewrite: either
// an explicit pattern/replacement pair, or an equation whose left side
// is the pattern and right side the replacement. The zero value is
// invalid and surfaces as ErrBadSubstitution.
type Substitution struct {
	kind        subKind
	pattern     any
	replacement any
	eq          *Equation
	symEq       *symbol.Equation
}

type subKind int

const (
	subNone subKind = iota
	subPair
	subEquation
	subSymbolEquation
)

// Pair substitutes replacement for every occurrence of pattern.
func Pair(pattern, replacement any) Substitution {
	return Substitution{kind: subPair, pattern: pattern, replacement: replacement}
}

// FromEquation substitutes the equation's right side for its left side.
func FromEquation(eq *Equation) Substitution {
	return Substitution{kind: subEquation, eq: eq}
}

// FromSymbolEquation is FromEquation for an untracked equation.
func FromSymbolEquation(eq *symbol.Equation) Substitution {
	return Substitution{kind: subSymbolEquation, symEq: eq}
}

// resolve yields the concrete pattern and replacement.
func (s Substitution) resolve() (pattern, replacement symbol.Expr, err error) {
	switch s.kind {
	case subPair:
		pattern, err = toExpr(s.pattern)
		if err != nil {
			return nil, nil, err
		}
		replacement, err = toExpr(s.replacement)
		if err != nil {
			return nil, nil, err
		}
		return pattern, replacement, nil
	case subEquation:
		if s.eq == nil {
			return nil, nil, ErrBadSubstitution
		}
		return s.eq.Left().Value(), s.eq.Right().Value(), nil
	case subSymbolEquation:
		if s.symEq == nil {
			return nil, nil, ErrBadSubstitution
		}
		return s.symEq.LHS, s.symEq.RHS, nil
	}
	return nil, nil, ErrBadSubstitution
}
