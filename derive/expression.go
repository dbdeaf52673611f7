package derive

import (
	"github.com/derivkit/derivkit/history"
	"github.com/derivkit/derivkit/symbol"
)

// Default step descriptions, overridable per call with WithDescription.
const (
	descAdd        = "Add"
	descSubtract   = "Subtract"
	descMultiplyBy = "Multiply by"
	descDivideBy   = "Divide by"
	descToPower    = "Raised to the power of"
	descSqrt       = "Applied square root"
	descRootN      = "Applied root of order"
	descExpand     = "Expand terms"
	descFactor     = "Factor terms"
	descSimplify   = "Simplify"
	descCollect    = "Collect the terms"
	descSubstitute = "Substitute"
	descSin        = "Applied sine"
	descCos        = "Applied cosine"
	descTan        = "Applied tangent"
	descAsin       = "Applied arcsine"
	descAcos       = "Applied arccosine"
	descAtan       = "Applied arctangent"
	descApply      = "Apply function"
)

// Expression is a symbolic value that records every mutation in a step
// log. Mutating methods replace the value and append one step; on error
// the value is left untouched and nothing is recorded.
type Expression struct {
	value symbol.Expr
	hist  *history.Log
}

// NewExpression wraps an initial value. The value may be a symbol.Expr,
// another Expression (snapshotted), or a supported numeric type.
func NewExpression(value any, opts ...Option) (*Expression, error) {
	v, err := toExpr(value)
	if err != nil {
		return nil, err
	}
	c := config{}
	for _, o := range opts {
		o(&c)
	}
	histOpts := append([]history.Option{history.WithState(v)}, c.histOpts...)
	return &Expression{value: v, hist: history.New(histOpts...)}, nil
}

// Value returns an independent copy of the current symbolic value.
func (e *Expression) Value() symbol.Expr { return symbol.Clone(e.value) }

// String renders the current value as plain text.
func (e *Expression) String() string { return e.value.String() }

// LaTeX renders the current value for typesetting.
func (e *Expression) LaTeX() string { return e.value.LaTeX() }

// History exposes the expression's step log.
func (e *Expression) History() *history.Log { return e.hist }

// record commits a successful mutation.
func (e *Expression) record(desc string, args []any, next symbol.Expr, opts []StepOption) {
	desc, args = resolveStep(desc, args, opts)
	e.value = next
	e.hist.Append(desc, args, next)
}

// Add adds the operand to the value.
func (e *Expression) Add(other any, opts ...StepOption) error {
	operand, err := toExpr(other)
	if err != nil {
		return err
	}
	e.record(descAdd, []any{operand}, symbol.Add(e.value, operand), opts)
	return nil
}

// Subtract subtracts the operand from the value.
func (e *Expression) Subtract(other any, opts ...StepOption) error {
	operand, err := toExpr(other)
	if err != nil {
		return err
	}
	e.record(descSubtract, []any{operand}, symbol.Sub(e.value, operand), opts)
	return nil
}

// MultiplyBy multiplies the value by the operand.
func (e *Expression) MultiplyBy(other any, opts ...StepOption) error {
	operand, err := toExpr(other)
	if err != nil {
		return err
	}
	e.record(descMultiplyBy, []any{operand}, symbol.Mul(e.value, operand), opts)
	return nil
}

// DivideBy divides the value by the operand. A literal zero divisor is
// rejected with ErrZeroDivisor.
func (e *Expression) DivideBy(other any, opts ...StepOption) error {
	operand, err := toExpr(other)
	if err != nil {
		return err
	}
	if n, ok := operand.(*symbol.Number); ok && n.IsZero() {
		return ErrZeroDivisor
	}
	e.record(descDivideBy, []any{operand}, symbol.Div(e.value, operand), opts)
	return nil
}

// ToPower raises the value to the given power.
func (e *Expression) ToPower(power any, opts ...StepOption) error {
	operand, err := toExpr(power)
	if err != nil {
		return err
	}
	e.record(descToPower, []any{operand}, symbol.Pow(e.value, operand), opts)
	return nil
}

// Sqrt takes the square root of the value.
func (e *Expression) Sqrt(opts ...StepOption) error {
	e.record(descSqrt, nil, symbol.Sqrt(e.value), opts)
	return nil
}

// RootN takes the nth root of the value.
func (e *Expression) RootN(n int64, opts ...StepOption) error {
	e.record(descRootN, []any{symbol.Int(n)}, symbol.RootN(e.value, n), opts)
	return nil
}

// Expand distributes products over sums.
func (e *Expression) Expand(opts ...StepOption) error {
	e.record(descExpand, nil, symbol.Expand(e.value), opts)
	return nil
}

// Factor pulls out common content and splits quadratics with rational
// roots.
func (e *Expression) Factor(opts ...StepOption) error {
	e.record(descFactor, nil, symbol.Factor(e.value), opts)
	return nil
}

// Simplify rewrites the value into its canonical form.
func (e *Expression) Simplify(opts ...StepOption) error {
	e.record(descSimplify, nil, symbol.Canonical(e.value), opts)
	return nil
}

// Collect groups the value by powers of the named variable.
func (e *Expression) Collect(name string, opts ...StepOption) error {
	e.record(descCollect, []any{symbol.Var(name)}, symbol.Collect(e.value, name), opts)
	return nil
}

// Substitute rewrites the value according to the substitution.
func (e *Expression) Substitute(sub Substitution, opts ...StepOption) error {
	pattern, replacement, err := sub.resolve()
	if err != nil {
		return err
	}
	next := symbol.Replace(e.value, pattern, replacement)
	e.record(descSubstitute, []any{pattern, replacement}, next, opts)
	return nil
}

// Sin applies the sine function to the value.
func (e *Expression) Sin(opts ...StepOption) error {
	e.record(descSin, nil, symbol.Sin(e.value), opts)
	return nil
}

// Cos applies the cosine function to the value.
func (e *Expression) Cos(opts ...StepOption) error {
	e.record(descCos, nil, symbol.Cos(e.value), opts)
	return nil
}

// Tan applies the tangent function to the value.
func (e *Expression) Tan(opts ...StepOption) error {
	e.record(descTan, nil, symbol.Tan(e.value), opts)
	return nil
}

// Asin applies the arcsine function to the value.
func (e *Expression) Asin(opts ...StepOption) error {
	e.record(descAsin, nil, symbol.Asin(e.value), opts)
	return nil
}

// Acos applies the arccosine function to the value.
func (e *Expression) Acos(opts ...StepOption) error {
	e.record(descAcos, nil, symbol.Acos(e.value), opts)
	return nil
}

// Atan applies the arctangent function to the value.
func (e *Expression) Atan(opts ...StepOption) error {
	e.record(descAtan, nil, symbol.Atan(e.value), opts)
	return nil
}

// Apply runs an arbitrary transform over the value. When the transform
// fails, the value is untouched and no step is recorded.
func (e *Expression) Apply(fn func(symbol.Expr) (symbol.Expr, error), opts ...StepOption) error {
	next, err := fn(e.value)
	if err != nil {
		return err
	}
	e.record(descApply, nil, next, opts)
	return nil
}

// Coeffs returns the per-degree coefficients in the named variable
// without touching the value or the history.
func (e *Expression) Coeffs(name string) map[int]symbol.Expr {
	return symbol.Coeffs(e.value, name)
}

// AsFraction splits the value into numerator and denominator without
// touching the value or the history.
func (e *Expression) AsFraction() (num, den symbol.Expr) {
	return symbol.Fraction(e.value)
}

// AttachSink streams future steps to the sink. Unless skipStart is set,
// the current value is framed first.
func (e *Expression) AttachSink(s history.Sink, skipStart bool) error {
	if s == nil {
		return history.ErrNilSink
	}
	if !skipStart {
		s.WriteBlock("Initial expression:")
		s.WriteBlock(e.value)
	}
	return e.hist.AttachSink(s)
}

// DetachSink stops streaming to the sink.
func (e *Expression) DetachSink(s history.Sink) { e.hist.DetachSink(s) }

// DetachAllSinks stops streaming entirely.
func (e *Expression) DetachAllSinks() { e.hist.DetachAllSinks() }

// WriteHistoryTo replays the recorded steps to a sink.
func (e *Expression) WriteHistoryTo(s history.Sink, skipStart bool) error {
	return e.hist.ReplayTo(s, skipStart)
}
