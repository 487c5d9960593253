// Package capture hides UI chrome around a rasterization step and guarantees
// the chrome is restored afterwards.
//
// The lifecycle is a scoped resource: Begin hides the given elements and
// remembers their prior visibility, End restores them. End is idempotent and
// is expected to run via defer so restoration happens on success, failure
// and panic paths alike.
package capture

import "image"

// Hideable is the minimal visibility surface of a chrome element.
// fyne.CanvasObject satisfies it directly.
type Hideable interface {
	Hide()
	Show()
	Visible() bool
}

// Session records which elements were hidden so they can be restored.
// Lifetime is exactly one capture operation.
type Session struct {
	hidden []Hideable
	done   bool
}

// Begin hides each element and remembers it for restoration. Nil elements
// and elements that are already hidden are skipped: absent chrome is
// tolerated, and an element the session did not hide is not an element the
// session should show.
func Begin(items ...Hideable) *Session {
	s := &Session{}
	for _, it := range items {
		if it == nil || !it.Visible() {
			continue
		}
		it.Hide()
		s.hidden = append(s.hidden, it)
	}
	return s
}

// End restores every element hidden by Begin to visible. Calling End more
// than once is a no-op, so the restore-exactly-once invariant holds even
// when both a defer and an explicit call run.
func (s *Session) End() {
	if s == nil || s.done {
		return
	}
	s.done = true
	for _, it := range s.hidden {
		it.Show()
	}
}

// Run hides items, invokes shoot, and restores the items before returning,
// whatever shoot does. The shoot error is passed through untouched so the
// caller decides how to report it.
func Run(items []Hideable, shoot func() (image.Image, error)) (image.Image, error) {
	s := Begin(items...)
	defer s.End()
	return shoot()
}
