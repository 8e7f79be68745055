// Package scroll reacts to the window scroll position: the hiding header,
// reveal-on-scroll animations and the back-to-top control's visibility.
package scroll

import (
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
)

// Header hides the site header while scrolling down and shows it again when scrolling up.
type Header struct {
	el   dom.Element
	last float64
}

// NewHeader tracks el starting from offset 0.
func NewHeader(el dom.Element) *Header {
	return &Header{el: el}
}

// Update applies the transition for the new vertical offset.
func (h *Header) Update(offset float64) {
	defer func() { h.last = offset }()

	if offset <= 0 {
		h.el.RemoveClass(model.ClassScrollUp)
		h.el.RemoveClass(model.ClassScrollDown)
		return
	}
	switch {
	case offset > h.last && !h.el.HasClass(model.ClassScrollDown):
		h.el.RemoveClass(model.ClassScrollUp)
		h.el.AddClass(model.ClassScrollDown)
	case offset < h.last && h.el.HasClass(model.ClassScrollDown):
		h.el.RemoveClass(model.ClassScrollDown)
		h.el.AddClass(model.ClassScrollUp)
	}
}

// Last is the offset seen by the previous update.
func (h *Header) Last() float64 { return h.last }

// Reveal marks animation targets visible once they approach the viewport.
type Reveal struct {
	window  dom.Window
	targets func() []dom.Element
}

// NewReveal reveals the elements returned by targets, queried on every pass.
func NewReveal(win dom.Window, targets func() []dom.Element) *Reveal {
	return &Reveal{window: win, targets: targets}
}

// Update marks every target whose top edge sits above the reveal line. Visible targets stay visible.
func (r *Reveal) Update() int {
	line := r.window.InnerHeight() - model.RevealOffset
	revealed := 0
	for _, el := range r.targets() {
		if el.HasClass(model.ClassVisible) {
			continue
		}
		if el.BoundingTop() < line {
			el.AddClass(model.ClassVisible)
			revealed++
		}
	}
	return revealed
}

// BackToTop shows the floating control past the threshold offset.
type BackToTop struct {
	el dom.Element
}

// NewBackToTop governs el's visibility.
func NewBackToTop(el dom.Element) *BackToTop {
	return &BackToTop{el: el}
}

// Update shows or hides the control for offset.
func (b *BackToTop) Update(offset float64) {
	if offset > model.BackToTopThreshold {
		b.el.AddClass(model.ClassShow)
		return
	}
	b.el.RemoveClass(model.ClassShow)
}

// Reactor attaches the scroll effects to the window. Nil effects are skipped.
type Reactor struct {
	Window    dom.Window
	Header    *Header
	Reveal    *Reveal
	BackToTop *BackToTop
}

// Attach registers one scroll listener per configured effect.
func (r *Reactor) Attach() {
	if r.Header != nil {
		r.Window.On(dom.EventScroll, func(dom.Event) {
			r.Header.Update(r.Window.ScrollY())
		})
	}
	if r.Reveal != nil {
		r.Window.On(dom.EventScroll, func(dom.Event) {
			r.Reveal.Update()
		})
	}
	if r.BackToTop != nil {
		r.Window.On(dom.EventScroll, func(dom.Event) {
			r.BackToTop.Update(r.Window.ScrollY())
		})
	}
}
