package history

import "errors"

var (
	// ErrNoSteps is returned when a replay is requested on a log that has
	// not recorded any steps yet.
	ErrNoSteps = errors.New("history: no steps recorded")

	// ErrNilSink is returned when a nil sink is attached or replayed to.
	ErrNilSink = errors.New("history: nil sink")
)
