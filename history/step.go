package history

// Step is one recorded operation: what was done, to what, and the states
// on either side of it. Steps recorded inside a combined scope carry the
// grouped substeps in Children.
type Step struct {
	// Index is the step's position on the log's shared numbering.
	Index int

	// Description says what the operation did, e.g. "Multiply by".
	Description string

	// Args are the operands shown after the description, if any.
	Args []any

	// Before and After are the tracked states around the operation.
	Before any
	After  any

	// Suffix qualifies steps that were propagated from a child log,
	// e.g. " on left side". Empty for locally recorded steps.
	Suffix string

	// Children holds the substeps of a combined step, in order.
	Children []*Step
}

// clone returns a copy whose Args and Children slices are independent.
func (s *Step) clone() *Step {
	cp := *s
	if len(s.Args) > 0 {
		cp.Args = append([]any(nil), s.Args...)
	}
	if len(s.Children) > 0 {
		cp.Children = append([]*Step(nil), s.Children...)
	}
	return &cp
}
