// Package anchor turns same-page fragment links into offset smooth scrolls.
package anchor

import (
	"strings"

	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
)

// Fragment extracts the target id from an in-page href. ok is false for anything that is not
// a fragment and for the bare "#".
func Fragment(href string) (id string, ok bool) {
	if !strings.HasPrefix(href, "#") {
		return "", false
	}
	id = strings.TrimPrefix(href, "#")
	if id == "" {
		return "", false
	}
	return id, true
}

// Scroller intercepts fragment link clicks.
type Scroller struct {
	window   dom.Window
	document dom.Document
}

// New returns a scroller for the given window and document.
func New(win dom.Window, doc dom.Document) *Scroller {
	return &Scroller{window: win, document: doc}
}

// Attach registers the click handler on every link.
func (s *Scroller) Attach(links []dom.Element) {
	for _, link := range links {
		link := link
		link.On(dom.EventClick, func(e dom.Event) {
			s.Follow(e, link.Attr("href"))
		})
	}
}

// Follow handles one activation of a link with href. It reports whether a scroll happened.
func (s *Scroller) Follow(e dom.Event, href string) bool {
	if !strings.HasPrefix(href, "#") {
		return false
	}
	e.PreventDefault()

	id, ok := Fragment(href)
	if !ok {
		return false
	}
	target := s.document.ByID(id)
	if target == nil {
		return false
	}
	s.window.ScrollTo(target.OffsetTop()-model.AnchorOffset, true)
	return true
}
