package output

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ErrNoFileName is returned by Write when no file name was given and
// none was configured.
var ErrNoFileName = errors.New("output: no file name")

// Markdown accumulates a Markdown document line by line. The zero value
// is not usable; construct with NewMarkdown.
type Markdown struct {
	id       uuid.UUID
	lines    []string
	fileName string
}

// MarkdownOption configures a Markdown sink.
type MarkdownOption func(*Markdown)

// WithFile sets the file the document flushes to on Close.
func WithFile(name string) MarkdownOption {
	return func(m *Markdown) { m.fileName = name }
}

// NewMarkdown returns an empty Markdown document.
func NewMarkdown(opts ...MarkdownOption) *Markdown {
	m := &Markdown{id: uuid.New()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// ID returns the sink's identity.
func (m *Markdown) ID() uuid.UUID { return m.id }

// WriteInline renders the items as one line, math fragments wrapped in
// $...$.
func (m *Markdown) WriteInline(items ...any) {
	frags := toFragments(items)
	elements := make([]string, 0, len(frags))
	for _, f := range frags {
		if f.math {
			elements = append(elements, "$"+f.text+"$")
			continue
		}
		if f.text == "" {
			continue
		}
		elements = append(elements, f.text)
	}
	m.lines = append(m.lines, strings.Join(elements, " "))
}

// WriteBlock renders each item on its own line, math fragments as
// $$...$$ display blocks.
func (m *Markdown) WriteBlock(items ...any) {
	for _, f := range toFragments(items) {
		if f.math {
			m.lines = append(m.lines, "$$"+f.text+"$$\n")
		} else {
			m.lines = append(m.lines, f.text)
		}
	}
}

// Text returns the document accumulated so far.
func (m *Markdown) Text() string { return strings.Join(m.lines, "\n") }

// Write saves the document to the named file, falling back to the
// configured file name when name is empty.
func (m *Markdown) Write(name string) error {
	if name == "" {
		name = m.fileName
	}
	if name == "" {
		return ErrNoFileName
	}
	return os.WriteFile(name, []byte(m.Text()), 0o644)
}

// Close flushes the document to the configured file, if any.
func (m *Markdown) Close() error {
	if m.fileName == "" {
		return nil
	}
	return m.Write(m.fileName)
}
