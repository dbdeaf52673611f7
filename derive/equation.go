package derive

import (
	"fmt"

	"github.com/derivkit/derivkit/history"
	"github.com/derivkit/derivkit/symbol"
)

// Equation tracks two expressions as the sides of one equation. The
// sides share an index source and parent their histories to the
// equation's combined log, so side-wise operations surface there with
// an " on left side"/" on right side" qualifier, while equation-wide
// operations group both side steps under a single combined entry.
type Equation struct {
	left  *Expression
	right *Expression
	hist  *history.Log
}

// NewEquation builds an equation from a left and right value. A nil
// right defaults to zero. Passing a *symbol.Equation as left splits it
// into the two sides; combining that with a non-nil right is rejected.
func NewEquation(left, right any, opts ...Option) (*Equation, error) {
	c := config{}
	for _, o := range opts {
		o(&c)
	}

	var lv, rv symbol.Expr
	var err error
	switch t := left.(type) {
	case *symbol.Equation:
		if right != nil {
			return nil, fmt.Errorf("%w: equation plus explicit right side", ErrBadEquation)
		}
		lv, rv = symbol.Clone(t.LHS), symbol.Clone(t.RHS)
	default:
		lv, err = toExpr(left)
		if err != nil {
			return nil, err
		}
		if right == nil {
			rv = symbol.Int(0)
		} else if rv, err = toExpr(right); err != nil {
			return nil, err
		}
	}

	q := &Equation{}
	combinedOpts := append([]history.Option{
		history.WithCombinedState(func() any { return q.AsSymbol() }),
	}, c.histOpts...)
	q.hist = history.New(combinedOpts...)

	q.left = &Expression{value: lv, hist: history.New(
		history.WithParent(q.hist.AsParent("left side")),
		history.WithState(lv),
		history.WithLogger(c.logger),
	)}
	q.right = &Expression{value: rv, hist: history.New(
		history.WithParent(q.hist.AsParent("right side")),
		history.WithState(rv),
		history.WithLogger(c.logger),
	)}

	q.hist.Update(q.AsSymbol())
	return q, nil
}

// Left returns the tracked left side.
func (q *Equation) Left() *Expression { return q.left }

// Right returns the tracked right side.
func (q *Equation) Right() *Expression { return q.right }

// History exposes the equation's combined step log.
func (q *Equation) History() *history.Log { return q.hist }

// AsSymbol returns the current symbolic form of the equation.
func (q *Equation) AsSymbol() *symbol.Equation {
	return symbol.NewEquation(q.left.value, q.right.value)
}

// String renders the equation as plain text.
func (q *Equation) String() string { return q.AsSymbol().String() }

// LaTeX renders the equation for typesetting.
func (q *Equation) LaTeX() string { return q.AsSymbol().LaTeX() }

// both runs an operation on the left side then the right side inside
// one combined scope, so the pair reads as a single history entry.
func (q *Equation) both(fn func(*Expression) error) error {
	scope := q.hist.BeginCombined("on both sides")
	defer scope.End()
	if err := fn(q.left); err != nil {
		return err
	}
	return fn(q.right)
}

// Add adds the operand to both sides.
func (q *Equation) Add(other any, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Add(other, opts...) })
}

// Subtract subtracts the operand from both sides.
func (q *Equation) Subtract(other any, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Subtract(other, opts...) })
}

// MultiplyBy multiplies both sides by the operand.
func (q *Equation) MultiplyBy(other any, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.MultiplyBy(other, opts...) })
}

// DivideBy divides both sides by the operand.
func (q *Equation) DivideBy(other any, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.DivideBy(other, opts...) })
}

// ToPower raises both sides to the given power.
func (q *Equation) ToPower(power any, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.ToPower(power, opts...) })
}

// Sqrt takes the square root of both sides.
func (q *Equation) Sqrt(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Sqrt(opts...) })
}

// RootN takes the nth root of both sides.
func (q *Equation) RootN(n int64, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.RootN(n, opts...) })
}

// Expand expands both sides.
func (q *Equation) Expand(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Expand(opts...) })
}

// Factor factors both sides.
func (q *Equation) Factor(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Factor(opts...) })
}

// Simplify rewrites both sides into canonical form.
func (q *Equation) Simplify(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Simplify(opts...) })
}

// Collect groups both sides by powers of the named variable.
func (q *Equation) Collect(name string, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Collect(name, opts...) })
}

// Substitute rewrites both sides according to the substitution.
func (q *Equation) Substitute(sub Substitution, opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Substitute(sub, opts...) })
}

// Sin applies the sine function to both sides.
func (q *Equation) Sin(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Sin(opts...) })
}

// Cos applies the cosine function to both sides.
func (q *Equation) Cos(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Cos(opts...) })
}

// Tan applies the tangent function to both sides.
func (q *Equation) Tan(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Tan(opts...) })
}

// Asin applies the arcsine function to both sides.
func (q *Equation) Asin(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Asin(opts...) })
}

// Acos applies the arccosine function to both sides.
func (q *Equation) Acos(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Acos(opts...) })
}

// Atan applies the arctangent function to both sides.
func (q *Equation) Atan(opts ...StepOption) error {
	return q.both(func(e *Expression) error { return e.Atan(opts...) })
}

// Apply runs an arbitrary transform over both sides. Unlike the other
// equation-wide operations it records two plain side entries rather
// than one combined step.
func (q *Equation) Apply(fn func(symbol.Expr) (symbol.Expr, error), opts ...StepOption) error {
	if err := q.left.Apply(fn, opts...); err != nil {
		return err
	}
	return q.right.Apply(fn, opts...)
}

// SwapSides exchanges the two sides. The swap runs as arithmetic moves
// rather than a reference swap, so each side's history stays bound to
// its "left side"/"right side" identity; the whole sequence records as
// one combined step.
func (q *Equation) SwapSides() error {
	lhs, rhs := q.left.Value(), q.right.Value()

	scope := q.hist.BeginCombined("",
		history.WithScopeDescription("Swap left and right sides"),
		history.WithScopeArgs(nil),
	)
	defer scope.End()

	if err := q.left.Subtract(lhs); err != nil {
		return err
	}
	if err := q.left.Subtract(rhs); err != nil {
		return err
	}
	if err := q.right.Subtract(lhs); err != nil {
		return err
	}
	if err := q.right.Subtract(rhs); err != nil {
		return err
	}
	if err := q.right.MultiplyBy(-1); err != nil {
		return err
	}
	return q.left.MultiplyBy(-1)
}

// AttachSink streams future steps to the sink. Unless skipStart is set,
// the current equation is framed first.
func (q *Equation) AttachSink(s history.Sink, skipStart bool) error {
	if s == nil {
		return history.ErrNilSink
	}
	if !skipStart {
		s.WriteBlock("Initial equation:")
		s.WriteBlock(q.AsSymbol())
	}
	return q.hist.AttachSink(s)
}

// DetachSink stops streaming to the sink.
func (q *Equation) DetachSink(s history.Sink) { q.hist.DetachSink(s) }

// DetachAllSinks stops streaming entirely.
func (q *Equation) DetachAllSinks() { q.hist.DetachAllSinks() }

// WriteHistoryTo replays the combined history to a sink.
func (q *Equation) WriteHistoryTo(s history.Sink, skipStart bool) error {
	return q.hist.ReplayTo(s, skipStart)
}
