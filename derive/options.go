package derive

import (
	"go.uber.org/zap"

	"github.com/derivkit/derivkit/history"
)

// Option configures a tracked expression or equation at construction.
type Option func(*config)

type config struct {
	histOpts []history.Option
	logger   *zap.Logger
}

// WithLogger attaches a logger that traces every recorded step. The
// default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
		c.histOpts = append(c.histOpts, history.WithLogger(l))
	}
}

// StepOption adjusts how one operation is recorded.
type StepOption func(*stepConfig)

type stepConfig struct {
	desc     string
	descSet  bool
	args     []any
	argsSet  bool
	hideArgs bool
}

// WithDescription overrides the operation's default description.
func WithDescription(desc string) StepOption {
	return func(c *stepConfig) {
		c.desc = desc
		c.descSet = true
	}
}

// WithArgs overrides the operands shown in the recorded step.
func WithArgs(args ...any) StepOption {
	return func(c *stepConfig) {
		c.args = args
		c.argsSet = true
	}
}

// HideArgs omits the operands from the recorded step. Useful when a
// substitution's operands would clutter the rendered derivation.
func HideArgs() StepOption {
	return func(c *stepConfig) { c.hideArgs = true }
}

// resolveStep folds the options over an operation's defaults.
func resolveStep(desc string, args []any, opts []StepOption) (string, []any) {
	c := stepConfig{}
	for _, o := range opts {
		o(&c)
	}
	if c.descSet {
		desc = c.desc
	}
	if c.argsSet {
		args = c.args
	}
	if c.hideArgs {
		args = nil
	}
	return desc, args
}
