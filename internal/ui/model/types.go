package model

import (
	"time"

	"github.com/Its-donkey/landing/internal/ui/dom"
)

// Layout thresholds shared by the interaction layer.
const (
	// NarrowViewportMax is the widest viewport, in CSS pixels, that still uses the mobile layout.
	NarrowViewportMax = 992
	// RevealOffset is how far above the viewport bottom an element's top must be before it is revealed.
	RevealOffset = 150
	// AnchorOffset compensates for the fixed header when scrolling to an in-page target.
	AnchorOffset = 80
	// BackToTopThreshold is the vertical offset past which the back-to-top control shows.
	BackToTopThreshold = 300
)

// Preloader timings.
const (
	PreloaderHold   = 1000 * time.Millisecond
	PreloaderRemove = 500 * time.Millisecond
)

// Element ids and selectors the page markup must provide.
const (
	MobileNavID        = "mobileNav"
	MenuToggleID       = "menuToggle"
	CloseMenuID        = "closeMenu"
	NavLinkSelector    = ".mobile-nav .nav-links a"
	HeaderSelector     = ".header"
	RevealSelector     = ".fade-in, .slide-in, .scale-in"
	ContactSelector    = ".contact-form"
	NewsletterSelector = ".newsletter-form"
	EmailSelector      = `input[type="email"]`
	AnchorSelector     = `a[href^="#"]`
)

// Class names toggled by the interaction layer.
const (
	ClassActive     = "active"
	ClassScrollUp   = "scroll-up"
	ClassScrollDown = "scroll-down"
	ClassVisible    = "visible"
	ClassShow       = "show"
	ClassHidden     = "hidden"
	ClassLoaded     = "loaded"
)

// Confirmation messages shown after a form submission.
const (
	ContactThanks    = "Thank you for your message! We will get back to you soon."
	NewsletterThanks = "Thank you for subscribing to our newsletter!"
)

// FormSnapshot maps form field names to their submitted values.
type FormSnapshot map[string]string

// SnapshotOf flattens fields into a snapshot. Later fields with a repeated name win.
func SnapshotOf(fields []dom.Field) FormSnapshot {
	snapshot := make(FormSnapshot, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		snapshot[f.Name] = f.Value
	}
	return snapshot
}

// Fields converts the snapshot into log fields.
func (s FormSnapshot) Fields() map[string]any {
	fields := make(map[string]any, len(s))
	for k, v := range s {
		fields[k] = v
	}
	return fields
}
