package symbol

import "sort"

// Expr is a symbolic value: an immutable expression tree node.
// All implementations live in this package; consumers treat Expr as an
// opaque type and build values through the constructor functions.
type Expr interface {
	// Simplify returns the rule-simplified form of the expression.
	// Constructors simplify eagerly, so values obtained from this
	// package are already in simplified form.
	Simplify() Expr

	// String renders a plain-text form, e.g. "2*x^2 - 2*y + 4".
	String() string

	// LaTeX renders a typeset form, e.g. "2 x^{2} - 2 y + 4".
	LaTeX() string

	// Equal reports structural equality with another expression.
	// Simplified expressions are canonically ordered, so Equal is a
	// reliable identity test for values built through this package.
	Equal(other Expr) bool
}

// Variable is a named symbolic variable.
type Variable struct{ name string }

// Var returns the variable with the given name.
func Var(name string) *Variable { return &Variable{name: name} }

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Simplify() Expr { return v }
func (v *Variable) String() string { return v.name }
func (v *Variable) LaTeX() string  { return v.name }

func (v *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && v.name == o.name
}

// Clone returns a structurally independent deep copy of e, so the caller
// may hold it across later operations without aliasing concerns.
func Clone(e Expr) Expr {
	switch v := e.(type) {
	case nil:
		return nil
	case *Number:
		return &Number{val: v.Rat()}
	case *Variable:
		return &Variable{name: v.name}
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Clone(t)
		}
		return &Sum{terms: terms}
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Clone(f)
		}
		return &Product{factors: factors}
	case *Power:
		return &Power{base: Clone(v.base), exp: Clone(v.exp)}
	case *Call:
		return &Call{name: v.name, arg: Clone(v.arg)}
	}
	return e
}

// FreeVars returns the sorted names of all variables occurring in e.
func FreeVars(e Expr) []string {
	set := map[string]struct{}{}
	collectVars(e, set)
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Variable:
		out[v.name] = struct{}{}
	case *Sum:
		for _, t := range v.terms {
			collectVars(t, out)
		}
	case *Product:
		for _, f := range v.factors {
			collectVars(f, out)
		}
	case *Power:
		collectVars(v.base, out)
		collectVars(v.exp, out)
	case *Call:
		collectVars(v.arg, out)
	}
}

// weight is the total syntactic degree of an expression, used only for
// deterministic term ordering inside sums (higher weight first).
func weight(e Expr) int {
	switch v := e.(type) {
	case *Variable:
		return 1
	case *Sum:
		max := 0
		for _, t := range v.terms {
			if w := weight(t); w > max {
				max = w
			}
		}
		return max
	case *Product:
		total := 0
		for _, f := range v.factors {
			total += weight(f)
		}
		return total
	case *Power:
		if n, ok := v.exp.(*Number); ok && n.IsInteger() {
			d := int(n.Int64())
			if d > 0 {
				return d * weight(v.base)
			}
		}
		return weight(v.base)
	case *Call:
		return 1
	}
	return 0
}
