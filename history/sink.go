package history

import (
	"strings"

	"github.com/google/uuid"
)

// Sink receives a rendered record of the log's steps. Implementations
// decide how fragments become text; the log only dictates the order and
// grouping of what is written.
//
// ID distinguishes sinks for attach and detach bookkeeping, so two
// distinct sinks of the same type never shadow each other.
type Sink interface {
	ID() uuid.UUID

	// WriteInline renders the items as one line of running text.
	WriteInline(items ...any)

	// WriteBlock renders each item as its own display block.
	WriteBlock(items ...any)

	// Text returns everything written so far.
	Text() string
}

// writeStep renders one step to a sink: the description line, then the
// resulting state as a block.
func writeStep(s Sink, step *Step) {
	items := make([]any, 0, len(step.Args)+2)
	items = append(items, step.Description)
	items = append(items, step.Args...)
	if step.Suffix != "" {
		items = append(items, strings.TrimSpace(step.Suffix))
	}
	s.WriteInline(items...)
	s.WriteBlock(step.After)
}

// writeStart renders the framing that precedes the first step.
func writeStart(s Sink, first *Step) {
	s.WriteBlock("Initial state")
	s.WriteBlock(first.Before)
}
