package derive

import "errors"

var (
	// ErrBadOperand is returned when an operand is not a tracked
	// expression, a symbolic value, or a supported numeric type.
	ErrBadOperand = errors.New("derive: unsupported operand")

	// ErrBadSubstitution is returned when a Substitution value names
	// neither a pair nor an equation.
	ErrBadSubstitution = errors.New("derive: empty substitution")

	// ErrZeroDivisor is returned when dividing by a literal zero.
	ErrZeroDivisor = errors.New("derive: division by zero")

	// ErrBadEquation is returned when an equation is constructed from an
	// inconsistent argument combination.
	ErrBadEquation = errors.New("derive: invalid equation arguments")
)
