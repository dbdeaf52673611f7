package output

import "fmt"

// LaTeXer is anything that can typeset itself. Values implementing it
// render as math fragments; everything else renders as text.
type LaTeXer interface {
	LaTeX() string
}

// fragment is one renderable unit: either plain text or math.
type fragment struct {
	text string
	math bool
}

// toFragments classifies a mixed item list into fragments.
func toFragments(items []any) []fragment {
	out := make([]fragment, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			continue
		case LaTeXer:
			out = append(out, fragment{text: v.LaTeX(), math: true})
		case string:
			out = append(out, fragment{text: v})
		case fmt.Stringer:
			out = append(out, fragment{text: v.String()})
		default:
			out = append(out, fragment{text: fmt.Sprint(v)})
		}
	}
	return out
}
