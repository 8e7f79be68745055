// Package dom describes the slice of the browser DOM the interaction layer touches.
// The browser adapter lives in internal/ui/wasm; domtest provides an in-memory page for tests.
package dom

import "time"

// Event names used by the interaction layer.
const (
	EventClick  = "click"
	EventScroll = "scroll"
	EventSubmit = "submit"
	EventLoad   = "load"
)

// Handler reacts to a dispatched event.
type Handler func(Event)

// Event is a dispatched DOM event.
type Event interface {
	Target() Element
	PreventDefault()
	StopPropagation()
}

// Element is a node in the page. A missing element is represented by a nil Element.
type Element interface {
	ID() string
	Attr(name string) string
	// Value is the current value of a form control, empty for other elements.
	Value() string
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetStyle(property, value string)
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	// OffsetTop is the element's distance from the top of the document.
	OffsetTop() float64
	// BoundingTop is the element's top edge relative to the viewport.
	BoundingTop() float64
	// AppendHTML parses markup and appends it as the last child, returning the first created element.
	AppendHTML(markup string) Element
	// PrependHTML parses markup and inserts it as the first child, returning the first created element.
	PrependHTML(markup string) Element
	Remove()
	On(event string, fn Handler)
}

// Form is a form element whose controls can be read and reset.
type Form interface {
	Element
	// Values returns every named control value in document order.
	Values() []Field
	// Query returns the first descendant matching selector, or nil.
	Query(selector string) Element
	Reset()
}

// Field is a named control value.
type Field struct {
	Name  string
	Value string
}

// Document exposes element lookups and document-level listeners.
type Document interface {
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Form(selector string) Form
	Body() Element
	Head() Element
	On(event string, fn Handler)
}

// Window exposes the viewport and scheduling.
type Window interface {
	InnerWidth() float64
	InnerHeight() float64
	ScrollY() float64
	ScrollTo(top float64, smooth bool)
	Alert(message string)
	AfterFunc(d time.Duration, fn func())
	On(event string, fn Handler)
}
