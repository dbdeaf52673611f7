package history

import "go.uber.org/zap"

// Log records a sequence of steps applied to a tracked value. Every step
// notes the state before and after it; steps from a child log propagate
// to the parent with a qualifying suffix, and a combined scope groups
// several substeps under one parent step.
//
// A Log is not safe for concurrent use.
type Log struct {
	src   *IndexSource
	steps []*Step
	state any

	parent *Log
	tag    string

	// combinedState recomputes the parent's own state after a child
	// operation, e.g. re-reading both sides of an equation.
	combinedState func() any

	scope *CombinedScope
	sinks []Sink
	log   *zap.Logger
}

// Option configures a Log at construction.
type Option func(*Log)

// WithIndexSource shares an existing index source. Logs sharing a source
// interleave their steps on one numbering.
func WithIndexSource(src *IndexSource) Option {
	return func(h *Log) {
		if src != nil {
			h.src = src
		}
	}
}

// WithParent subordinates the new log to a parent: every recorded step
// also propagates there, and the parent's index source is adopted so the
// two logs number their steps together.
func WithParent(ref ParentRef) Option {
	return func(h *Log) {
		h.parent = ref.log
		h.tag = ref.tag
		if ref.log != nil {
			h.src = ref.log.src
		}
	}
}

// WithState seeds the tracked state before any step is recorded.
func WithState(state any) Option {
	return func(h *Log) { h.state = state }
}

// WithCombinedState installs the hook that recomputes this log's state
// after a child operation.
func WithCombinedState(fn func() any) Option {
	return func(h *Log) { h.combinedState = fn }
}

// WithLogger attaches a logger for step tracing. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(h *Log) {
		if l != nil {
			h.log = l
		}
	}
}

// New returns an empty log.
func New(opts ...Option) *Log {
	h := &Log{log: zap.NewNop()}
	for _, o := range opts {
		o(h)
	}
	if h.src == nil {
		h.src = NewIndexSource(1)
	}
	return h
}

// ParentRef names a log as the parent for a child log, under the given
// qualifier tag. Obtain one from AsParent.
type ParentRef struct {
	tag string
	log *Log
}

// AsParent returns a reference that makes this log the parent of logs
// constructed with WithParent. Steps propagated through the reference
// carry the suffix " on <tag>".
func (h *Log) AsParent(tag string) ParentRef {
	return ParentRef{tag: tag, log: h}
}

// Update replaces the tracked state without recording a step. Use it to
// seed the state a later step's Before will refer to.
func (h *Log) Update(state any) {
	h.state = state
	h.log.Debug("state updated")
}

// Append records one step: Before is the current state, After becomes
// the new current state. The recorded step is returned.
func (h *Log) Append(description string, args []any, state any) *Step {
	step := &Step{
		Index:       h.src.Take(),
		Description: description,
		Args:        args,
		Before:      h.state,
		After:       state,
	}
	h.state = state
	h.appendStep(step)
	if h.parent != nil {
		h.parent.appendByChild(step, h.tag)
	}
	return step
}

// appendByChild mirrors a child's step onto this log: same index and
// description, this log's own states, and the child's qualifier suffix.
func (h *Log) appendByChild(child *Step, tag string) {
	after := h.state
	if h.combinedState != nil {
		after = h.combinedState()
	}
	step := child.clone()
	step.Suffix = " on " + tag
	step.Before = h.state
	step.After = after
	h.state = after
	if h.scope != nil {
		h.scope.substeps = append(h.scope.substeps, step)
		return
	}
	h.appendStep(step)
	if h.parent != nil {
		h.parent.appendByChild(step, h.tag)
	}
}

func (h *Log) appendStep(step *Step) {
	h.steps = append(h.steps, step)
	h.log.Debug("step recorded",
		zap.Int("index", step.Index),
		zap.String("description", step.Description),
		zap.Int("children", len(step.Children)))
	for _, s := range h.sinks {
		writeStep(s, step)
	}
}

// Steps returns the recorded steps in order. The slice is a copy; the
// steps themselves are shared.
func (h *Log) Steps() []*Step {
	return append([]*Step(nil), h.steps...)
}

// Len returns the number of recorded steps.
func (h *Log) Len() int { return len(h.steps) }

// Source returns the log's index source, for sharing with sibling logs.
func (h *Log) Source() *IndexSource { return h.src }

// CurrentState returns the most recent tracked state.
func (h *Log) CurrentState() any { return h.state }

// AttachSink registers a sink to receive every step recorded from now
// on. Attaching an already attached sink is a no-op; use ReplayTo to
// catch a late sink up on earlier steps.
func (h *Log) AttachSink(s Sink) error {
	if s == nil {
		return ErrNilSink
	}
	for _, existing := range h.sinks {
		if existing.ID() == s.ID() {
			return nil
		}
	}
	h.sinks = append(h.sinks, s)
	h.log.Debug("sink attached", zap.String("sink", s.ID().String()))
	return nil
}

// DetachSink removes a previously attached sink. Unknown sinks are
// ignored.
func (h *Log) DetachSink(s Sink) {
	if s == nil {
		return
	}
	for i, existing := range h.sinks {
		if existing.ID() == s.ID() {
			h.sinks = append(h.sinks[:i], h.sinks[i+1:]...)
			return
		}
	}
}

// DetachAllSinks removes every attached sink.
func (h *Log) DetachAllSinks() { h.sinks = nil }

// ReplayTo writes the whole recorded history to a sink. Unless skipStart
// is set, the initial state is framed before the first step. A log with
// no steps returns ErrNoSteps.
func (h *Log) ReplayTo(s Sink, skipStart bool) error {
	if s == nil {
		return ErrNilSink
	}
	if len(h.steps) == 0 {
		return ErrNoSteps
	}
	if !skipStart {
		writeStart(s, h.steps[0])
	}
	for _, st := range h.steps {
		writeStep(s, st)
	}
	return nil
}

// CombinedScope groups the steps recorded while it is open into one
// combined step, created when End is called. Obtain one from
// BeginCombined and End it exactly once; extra End calls are no-ops, and
// a scope that saw no steps records nothing.
type CombinedScope struct {
	h        *Log
	tag      string
	substeps []*Step
	desc     *string
	args     []any
	argsSet  bool
	done     bool
}

// ScopeOption configures a combined scope.
type ScopeOption func(*CombinedScope)

// WithScopeDescription overrides the combined step's description, which
// otherwise comes from the first substep.
func WithScopeDescription(desc string) ScopeOption {
	return func(c *CombinedScope) { c.desc = &desc }
}

// WithScopeArgs overrides the combined step's args, which otherwise come
// from the first substep.
func WithScopeArgs(args []any) ScopeOption {
	return func(c *CombinedScope) {
		c.args = args
		c.argsSet = true
	}
}

// BeginCombined opens a combined scope. Steps recorded on this log while
// the scope is open, including steps propagated from children, buffer as
// substeps of one combined step. The tag, when non-empty, renders after
// the combined step's description, e.g. "Multiply by 2 on both sides".
func (h *Log) BeginCombined(tag string, opts ...ScopeOption) *CombinedScope {
	c := &CombinedScope{h: h, tag: tag}
	for _, o := range opts {
		o(c)
	}
	h.scope = c
	h.log.Debug("combined scope opened", zap.String("tag", tag))
	return c
}

// End closes the scope and records the combined step.
func (c *CombinedScope) End() {
	if c.done {
		return
	}
	c.done = true
	c.h.scope = nil
	if len(c.substeps) == 0 {
		return
	}

	desc := c.substeps[0].Description
	args := c.substeps[0].Args
	if c.desc != nil {
		desc = *c.desc
	}
	if c.argsSet {
		args = c.args
	}
	suffix := ""
	if c.tag != "" {
		suffix = " " + c.tag
	}

	step := &Step{
		Index:       c.h.src.Take(),
		Description: desc,
		Args:        args,
		Before:      c.substeps[0].Before,
		After:       c.substeps[len(c.substeps)-1].After,
		Suffix:      suffix,
		Children:    c.substeps,
	}
	c.h.appendStep(step)
	if c.h.parent != nil {
		c.h.parent.appendByChild(step, c.h.tag)
	}
}
