package derive

import (
	"fmt"

	"github.com/derivkit/derivkit/symbol"
)

// toExpr converts an operand into a symbolic value. Tracked expressions
// contribute a snapshot of their current value, so later mutations of
// the operand do not rewrite recorded history.
func toExpr(v any) (symbol.Expr, error) {
	switch t := v.(type) {
	case *Expression:
		if t == nil {
			return nil, fmt.Errorf("%w: nil expression", ErrBadOperand)
		}
		return t.Value(), nil
	case symbol.Expr:
		return t, nil
	case int:
		return symbol.Int(int64(t)), nil
	case int64:
		return symbol.Int(t), nil
	case float64:
		return symbol.Float(t), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrBadOperand, v)
}
