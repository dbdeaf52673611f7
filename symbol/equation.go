package symbol

// Equation pairs a left-hand and right-hand expression. It is a plain
// value: it carries no history and no simplification of its own.
type Equation struct {
	LHS Expr
	RHS Expr
}

// NewEquation returns the equation lhs = rhs.
func NewEquation(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func (e *Equation) String() string { return e.LHS.String() + " = " + e.RHS.String() }

func (e *Equation) LaTeX() string { return e.LHS.LaTeX() + " = " + e.RHS.LaTeX() }

// Residual returns lhs - rhs simplified; zero means the equation holds
// identically.
func (e *Equation) Residual() Expr { return Sub(e.LHS, e.RHS) }

// Equal reports structural equality of both sides.
func (e *Equation) Equal(other *Equation) bool {
	return other != nil && e.LHS.Equal(other.LHS) && e.RHS.Equal(other.RHS)
}
