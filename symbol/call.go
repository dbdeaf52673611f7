package symbol

// Call is a named unary function application such as sin(x).
type Call struct {
	name string
	arg  Expr
}

func call(name string, arg Expr) Expr { return (&Call{name: name, arg: arg}).Simplify() }

// Sin, Cos, Tan apply the trigonometric functions.
func Sin(arg Expr) Expr { return call("sin", arg) }
func Cos(arg Expr) Expr { return call("cos", arg) }
func Tan(arg Expr) Expr { return call("tan", arg) }

// Asin, Acos, Atan apply the inverse trigonometric functions.
func Asin(arg Expr) Expr { return call("asin", arg) }
func Acos(arg Expr) Expr { return call("acos", arg) }
func Atan(arg Expr) Expr { return call("atan", arg) }

// Exp and Ln apply the exponential and natural logarithm.
func Exp(arg Expr) Expr { return call("exp", arg) }
func Ln(arg Expr) Expr  { return call("ln", arg) }

// Abs applies the absolute value.
func Abs(arg Expr) Expr { return call("abs", arg) }

// FuncName returns the function's name, e.g. "sin".
func (c *Call) FuncName() string { return c.name }

// Arg returns the argument expression.
func (c *Call) Arg() Expr { return c.arg }

// Simplify folds the exact identities only; inexact numeric arguments
// stay symbolic so derivations keep exact forms.
func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()
	switch c.name {
	case "sin", "tan", "asin", "atan":
		if isZero(arg) {
			return Int(0)
		}
	case "cos":
		if isZero(arg) {
			return Int(1)
		}
	case "exp":
		if isZero(arg) {
			return Int(1)
		}
		if inner, ok := arg.(*Call); ok && inner.name == "ln" {
			return inner.arg
		}
	case "ln":
		if n, ok := arg.(*Number); ok && n.IsOne() {
			return Int(0)
		}
		if inner, ok := arg.(*Call); ok && inner.name == "exp" {
			return inner.arg
		}
	case "abs":
		if n, ok := arg.(*Number); ok {
			return numAbs(n)
		}
	}
	return &Call{name: c.name, arg: arg}
}

func isZero(e Expr) bool {
	n, ok := e.(*Number)
	return ok && n.IsZero()
}

func (c *Call) String() string { return c.name + "(" + c.arg.String() + ")" }

func (c *Call) LaTeX() string {
	switch c.name {
	case "sin", "cos", "tan", "exp", "ln":
		return "\\" + c.name + "\\left(" + c.arg.LaTeX() + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + c.arg.LaTeX() + "\\right)"
	case "acos":
		return "\\arccos\\left(" + c.arg.LaTeX() + "\\right)"
	case "atan":
		return "\\arctan\\left(" + c.arg.LaTeX() + "\\right)"
	case "abs":
		return "\\left|" + c.arg.LaTeX() + "\\right|"
	}
	return "\\operatorname{" + c.name + "}\\left(" + c.arg.LaTeX() + "\\right)"
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.name == o.name && c.arg.Equal(o.arg)
}
