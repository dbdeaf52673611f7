package history_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/derivkit/derivkit/history"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a minimal sink that keeps every write as one line.
type recorder struct {
	id    uuid.UUID
	lines []string
}

func newRecorder() *recorder { return &recorder{id: uuid.New()} }

func (r *recorder) ID() uuid.UUID { return r.id }

func (r *recorder) WriteInline(items ...any) {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}
	r.lines = append(r.lines, strings.Join(parts, " "))
}

func (r *recorder) WriteBlock(items ...any) {
	for _, it := range items {
		r.lines = append(r.lines, fmt.Sprint(it))
	}
}

func (r *recorder) Text() string { return strings.Join(r.lines, "\n") }

// TestLog_AppendRecordsStates verifies Before/After tracking through a
// seeded state and successive appends.
func TestLog_AppendRecordsStates(t *testing.T) {
	h := history.New(history.WithState("a"))

	h.Append("first", nil, "b")
	h.Append("second", []any{2}, "c")

	steps := h.Steps()
	require.Len(t, steps, 2)

	assert.Equal(t, "a", steps[0].Before)
	assert.Equal(t, "b", steps[0].After)
	assert.Equal(t, "b", steps[1].Before)
	assert.Equal(t, "c", steps[1].After)
	assert.Equal(t, []any{2}, steps[1].Args)
	assert.Equal(t, "c", h.CurrentState())
}

// TestLog_IndicesAreMonotonic checks numbering on a shared source.
func TestLog_IndicesAreMonotonic(t *testing.T) {
	src := history.NewIndexSource(1)
	a := history.New(history.WithIndexSource(src))
	b := history.New(history.WithIndexSource(src))

	s1 := a.Append("one", nil, 1)
	s2 := b.Append("two", nil, 2)
	s3 := a.Append("three", nil, 3)

	assert.Equal(t, 1, s1.Index)
	assert.Equal(t, 2, s2.Index)
	assert.Equal(t, 3, s3.Index)
	assert.Equal(t, 4, src.Peek())
}

// TestLog_ParentPropagation verifies that a child's step mirrors onto the
// parent with the qualifier suffix and a recomputed parent state.
func TestLog_ParentPropagation(t *testing.T) {
	left := "L0"
	parent := history.New(
		history.WithCombinedState(func() any { return "eq(" + left + ")" }),
		history.WithState("eq(L0)"),
	)
	child := history.New(
		history.WithParent(parent.AsParent("left side")),
		history.WithState(left),
	)

	left = "L1"
	child.Append("Multiply by", []any{2}, left)

	require.Equal(t, 1, parent.Len())
	step := parent.Steps()[0]
	assert.Equal(t, "Multiply by", step.Description)
	assert.Equal(t, " on left side", step.Suffix)
	assert.Equal(t, "eq(L0)", step.Before)
	assert.Equal(t, "eq(L1)", step.After)
	assert.Equal(t, step.Index, child.Steps()[0].Index, "mirrored steps share the index")
	assert.Empty(t, child.Steps()[0].Suffix)
}

// TestLog_CombinedScope groups two child steps under one parent step.
func TestLog_CombinedScope(t *testing.T) {
	state := "S0"
	parent := history.New(
		history.WithCombinedState(func() any { return state }),
		history.WithState(state),
	)
	leftLog := history.New(history.WithParent(parent.AsParent("left side")))
	rightLog := history.New(history.WithParent(parent.AsParent("right side")))

	scope := parent.BeginCombined("on both sides")
	state = "S1"
	leftLog.Append("Multiply by", []any{2}, "l1")
	state = "S2"
	rightLog.Append("Multiply by", []any{2}, "r1")
	scope.End()

	require.Equal(t, 1, parent.Len())
	combined := parent.Steps()[0]
	assert.Equal(t, "Multiply by", combined.Description)
	assert.Equal(t, []any{2}, combined.Args)
	assert.Equal(t, " on both sides", combined.Suffix)
	assert.Equal(t, "S0", combined.Before)
	assert.Equal(t, "S2", combined.After)

	require.Len(t, combined.Children, 2)
	assert.Equal(t, " on left side", combined.Children[0].Suffix)
	assert.Equal(t, " on right side", combined.Children[1].Suffix)
	assert.Greater(t, combined.Index, combined.Children[1].Index,
		"the combined step numbers after its substeps")

	scope.End()
	assert.Equal(t, 1, parent.Len(), "End is idempotent")
}

// TestLog_DeepPropagationKeepsChildren verifies that a combined step
// propagated up a three-level chain still carries its substeps.
func TestLog_DeepPropagationKeepsChildren(t *testing.T) {
	grand := history.New()
	parent := history.New(history.WithParent(grand.AsParent("eq")))
	child := history.New(history.WithParent(parent.AsParent("left side")))

	scope := parent.BeginCombined("on both sides")
	child.Append("Add", []any{1}, "l1")
	child.Append("Add", []any{2}, "l2")
	scope.End()

	require.Equal(t, 1, grand.Len())
	mirrored := grand.Steps()[0]
	assert.Equal(t, " on eq", mirrored.Suffix)
	assert.Equal(t, parent.Steps()[0].Index, mirrored.Index)

	require.Len(t, mirrored.Children, 2)
	assert.Equal(t, " on left side", mirrored.Children[0].Suffix)
	assert.Equal(t, []any{2}, mirrored.Children[1].Args)
}

// TestLog_CombinedScopeOverrides checks the description and args
// overrides, used by whole-equation rewrites such as a side swap.
func TestLog_CombinedScopeOverrides(t *testing.T) {
	parent := history.New()
	child := history.New(history.WithParent(parent.AsParent("left side")))

	scope := parent.BeginCombined("",
		history.WithScopeDescription("Swap left and right sides"),
		history.WithScopeArgs(nil),
	)
	child.Append("Subtract", []any{"x"}, "s1")
	scope.End()

	require.Equal(t, 1, parent.Len())
	combined := parent.Steps()[0]
	assert.Equal(t, "Swap left and right sides", combined.Description)
	assert.Nil(t, combined.Args)
	assert.Empty(t, combined.Suffix)
}

// TestLog_EmptyCombinedScope records nothing when no step was buffered.
func TestLog_EmptyCombinedScope(t *testing.T) {
	h := history.New()
	scope := h.BeginCombined("on both sides")
	scope.End()

	assert.Zero(t, h.Len())
	h.Append("after", nil, 1)
	assert.Equal(t, 1, h.Len(), "the log records normally once the scope closed")
}

// TestLog_SinkStreaming verifies the per-step live writes.
func TestLog_SinkStreaming(t *testing.T) {
	h := history.New(history.WithState("x"))
	r := newRecorder()
	require.NoError(t, h.AttachSink(r))

	h.Append("Add", []any{1}, "x + 1")

	assert.Equal(t, []string{
		"Add 1",
		"x + 1",
	}, r.lines)
}

// TestLog_AttachSinkIsIdempotent attaches the same sink twice and
// expects single writes.
func TestLog_AttachSinkIsIdempotent(t *testing.T) {
	h := history.New(history.WithState(0))
	r := newRecorder()
	require.NoError(t, h.AttachSink(r))
	require.NoError(t, h.AttachSink(r))

	h.Append("step", nil, 1)

	assert.Len(t, r.lines, 2, "one step, written once")
}

// TestLog_DetachSink stops writes to a detached sink.
func TestLog_DetachSink(t *testing.T) {
	h := history.New(history.WithState(0))
	r := newRecorder()
	require.NoError(t, h.AttachSink(r))

	h.Append("one", nil, 1)
	h.DetachSink(r)
	h.Append("two", nil, 2)

	assert.NotContains(t, r.Text(), "two")
}

// TestLog_ReplayMatchesStreaming checks that a late sink caught up with
// ReplayTo sees exactly what an early sink saw.
func TestLog_ReplayMatchesStreaming(t *testing.T) {
	h := history.New(history.WithState("x"))
	early := newRecorder()
	require.NoError(t, h.AttachSink(early))

	h.Append("Add", []any{1}, "x + 1")
	h.Append("Multiply by", []any{2}, "2*x + 2")

	late := newRecorder()
	require.NoError(t, h.ReplayTo(late, true))

	assert.Empty(t, cmp.Diff(early.lines, late.lines))

	framed := newRecorder()
	require.NoError(t, h.ReplayTo(framed, false))
	assert.Equal(t, "Initial state", framed.lines[0])
	assert.Equal(t, "x", framed.lines[1])
}

// TestLog_ReplayErrors covers the replay sentinels.
func TestLog_ReplayErrors(t *testing.T) {
	h := history.New()

	assert.ErrorIs(t, h.ReplayTo(newRecorder(), false), history.ErrNoSteps)
	assert.ErrorIs(t, h.ReplayTo(nil, false), history.ErrNilSink)
	assert.ErrorIs(t, h.AttachSink(nil), history.ErrNilSink)
}

// TestLog_ReplaySkipStart omits the initial-state framing.
func TestLog_ReplaySkipStart(t *testing.T) {
	h := history.New(history.WithState("x"))
	h.Append("Add", []any{1}, "x + 1")

	r := newRecorder()
	require.NoError(t, h.ReplayTo(r, true))

	assert.Equal(t, []string{"Add 1", "x + 1"}, r.lines)
}
