// Package labelwrap splits long chart axis captions into display lines.
//
// Chart axes only have room for short captions, so anything longer than the
// wrap threshold is broken on word boundaries into stacked lines. Consumers
// that need the original caption back (tooltip titles) join the lines with
// single spaces, which reconstructs the input exactly.
package labelwrap

import "strings"

// Threshold is the maximum caption length, in characters, before a label is
// split into multiple display lines.
const Threshold = 16

// Label is either a plain caption or an ordered list of wrapped lines.
// The zero value is a plain empty caption.
type Label struct {
	text  string
	lines []string
}

// Plain returns an unwrapped label.
func Plain(s string) Label { return Label{text: s} }

// Wrapped reports whether the label was split into multiple lines.
func (l Label) Wrapped() bool { return l.lines != nil }

// Lines returns the display lines. A plain label yields a single line.
func (l Label) Lines() []string {
	if l.lines != nil {
		return l.lines
	}
	return []string{l.text}
}

// Display reconstructs the original caption: wrapped lines are joined with
// single spaces, plain labels are returned as-is. This is the reverse
// mapping used for tooltip titles.
func (l Label) Display() string {
	if l.lines != nil {
		return strings.Join(l.lines, " ")
	}
	return l.text
}

// Wrap splits s into lines of at most limit characters, breaking only on
// single spaces. Words are packed greedily: a word moves to a new line when
// appending it (with its separating space) would exceed the limit. A single
// word longer than the limit is never split mid-word; it becomes its own
// line and may exceed the limit. Labels of length <= limit are returned
// plain, not wrapped.
func Wrap(s string, limit int) Label {
	if len(s) <= limit {
		return Label{text: s}
	}
	words := strings.Split(s, " ")
	lines := make([]string, 0, 2)
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) <= limit {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	lines = append(lines, cur)
	return Label{text: s, lines: lines}
}

// WrapAll wraps each label in order, preserving sequence length.
func WrapAll(labels []string, limit int) []Label {
	out := make([]Label, len(labels))
	for i, s := range labels {
		out[i] = Wrap(s, limit)
	}
	return out
}
