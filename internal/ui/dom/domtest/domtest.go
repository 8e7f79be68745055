// Package domtest is an in-memory dom.Document/dom.Window built on goquery, used to
// drive the interaction layer from plain Go tests.
//
// Geometry comes from markup: an element's offsetTop is its data-top attribute and
// its bounding top is offsetTop minus the current scroll offset.
package domtest

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Its-donkey/landing/internal/ui/dom"
)

// ScrollCall records a Window.ScrollTo invocation.
type ScrollCall struct {
	Top    float64
	Smooth bool
}

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// Page is a fake browser page: one document plus its window.
type Page struct {
	doc          *goquery.Document
	listeners    map[*html.Node]map[string][]dom.Handler
	winListeners map[string][]dom.Handler
	styles       map[*html.Node]map[string]string
	values       map[*html.Node]string

	Width   float64
	Height  float64
	scrollY float64

	// Scrolls lists every ScrollTo call in order.
	Scrolls []ScrollCall
	// Alerts lists every alert message in order.
	Alerts []string
	// Writes counts class and style mutations.
	Writes int

	now    time.Duration
	seq    int
	timers []timer
}

// New parses markup into a page with the given viewport size.
func New(markup string, width, height float64) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &Page{
		doc:          doc,
		listeners:    make(map[*html.Node]map[string][]dom.Handler),
		winListeners: make(map[string][]dom.Handler),
		styles:       make(map[*html.Node]map[string]string),
		values:       make(map[*html.Node]string),
		Width:        width,
		Height:       height,
	}, nil
}

// MustNew is New for fixed test markup.
func MustNew(markup string, width, height float64) *Page {
	p, err := New(markup, width, height)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Page) wrap(sel *goquery.Selection) *Element {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	return &Element{page: p, node: sel.Nodes[0]}
}

// Find returns the first element matching selector, or nil.
func (p *Page) Find(selector string) *Element {
	return p.wrap(p.doc.Find(selector).First())
}

// Len reports how many elements match selector.
func (p *Page) Len(selector string) int {
	return p.doc.Find(selector).Length()
}

// HTML renders the current document.
func (p *Page) HTML() string {
	out, _ := p.doc.Html()
	return out
}

// Document returns the page's document.
func (p *Page) Document() dom.Document { return (*document)(p) }

// Window returns the page's window.
func (p *Page) Window() dom.Window { return (*window)(p) }

// Click dispatches a bubbling click on el and returns the event.
func (p *Page) Click(el *Element) *Event {
	return p.dispatch(el, dom.EventClick)
}

// Submit dispatches a bubbling submit on the form.
func (p *Page) Submit(el *Element) *Event {
	return p.dispatch(el, dom.EventSubmit)
}

// Type sets the current value of a control.
func (p *Page) Type(el *Element, value string) {
	p.values[el.node] = value
}

// Scroll moves the viewport and fires the window scroll listeners.
func (p *Page) Scroll(y float64) {
	p.scrollY = y
	p.fireWindow(dom.EventScroll)
}

// Load fires the window load listeners.
func (p *Page) Load() {
	p.fireWindow(dom.EventLoad)
}

// Advance moves the fake clock forward, running timers that fall due in order.
func (p *Page) Advance(d time.Duration) {
	target := p.now + d
	for {
		idx := -1
		for i, t := range p.timers {
			if t.due > target {
				continue
			}
			if idx < 0 || t.due < p.timers[idx].due || (t.due == p.timers[idx].due && t.seq < p.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		t := p.timers[idx]
		p.timers = append(p.timers[:idx], p.timers[idx+1:]...)
		p.now = t.due
		t.fn()
	}
	p.now = target
}

// PendingTimers reports how many timers have not fired yet.
func (p *Page) PendingTimers() int { return len(p.timers) }

// Style returns an inline style value set through SetStyle.
func (p *Page) Style(el *Element, property string) string {
	return p.styles[el.node][property]
}

func (p *Page) fireWindow(name string) {
	ev := &Event{}
	for _, fn := range append([]dom.Handler(nil), p.winListeners[name]...) {
		fn(ev)
	}
}

func (p *Page) dispatch(el *Element, name string) *Event {
	ev := &Event{target: el}
	for n := el.node; n != nil; n = n.Parent {
		for _, fn := range append([]dom.Handler(nil), p.listeners[n][name]...) {
			fn(ev)
		}
		if ev.Stopped {
			break
		}
	}
	return ev
}

func (p *Page) listen(n *html.Node, name string, fn dom.Handler) {
	byName := p.listeners[n]
	if byName == nil {
		byName = make(map[string][]dom.Handler)
		p.listeners[n] = byName
	}
	byName[name] = append(byName[name], fn)
}

// Listeners reports how many handlers are registered on el for an event.
func (p *Page) Listeners(el *Element, name string) int {
	return len(p.listeners[el.node][name])
}

// DocumentListeners reports how many document-level handlers exist for an event.
func (p *Page) DocumentListeners(name string) int {
	return len(p.listeners[p.doc.Nodes[0]][name])
}

// WindowListeners reports how many window handlers exist for an event.
func (p *Page) WindowListeners(name string) int {
	return len(p.winListeners[name])
}

// Event is a recorded dispatch.
type Event struct {
	target           *Element
	DefaultPrevented bool
	Stopped          bool
}

func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) PreventDefault()  { e.DefaultPrevented = true }
func (e *Event) StopPropagation() { e.Stopped = true }

// Element wraps one parsed node.
type Element struct {
	page *Page
	node *html.Node
}

func (e *Element) sel() *goquery.Selection {
	return e.page.doc.FindNodes(e.node)
}

func (e *Element) ID() string { return e.Attr("id") }

func (e *Element) Attr(name string) string {
	v, _ := e.sel().Attr(name)
	return v
}

func (e *Element) Value() string {
	if v, ok := e.page.values[e.node]; ok {
		return v
	}
	if e.node.Data == "textarea" {
		return e.sel().Text()
	}
	return e.Attr("value")
}

func (e *Element) AddClass(name string) {
	e.page.Writes++
	e.sel().AddClass(name)
}

func (e *Element) RemoveClass(name string) {
	e.page.Writes++
	e.sel().RemoveClass(name)
}

func (e *Element) HasClass(name string) bool { return e.sel().HasClass(name) }

func (e *Element) SetStyle(property, value string) {
	e.page.Writes++
	styles := e.page.styles[e.node]
	if styles == nil {
		styles = make(map[string]string)
		e.page.styles[e.node] = styles
	}
	styles[property] = value
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *Element) OffsetTop() float64 {
	top, _ := strconv.ParseFloat(e.Attr("data-top"), 64)
	return top
}

func (e *Element) BoundingTop() float64 {
	return e.OffsetTop() - e.page.scrollY
}

func (e *Element) AppendHTML(markup string) dom.Element {
	sel := e.sel()
	sel.AppendHtml(markup)
	if created := e.page.wrap(sel.Children().Last()); created != nil {
		return created
	}
	return nil
}

func (e *Element) PrependHTML(markup string) dom.Element {
	sel := e.sel()
	sel.PrependHtml(markup)
	if created := e.page.wrap(sel.Children().First()); created != nil {
		return created
	}
	return nil
}

func (e *Element) Remove() { e.sel().Remove() }

func (e *Element) On(name string, fn dom.Handler) { e.page.listen(e.node, name, fn) }

// Detached reports whether the element has been removed from the document.
func (e *Element) Detached() bool {
	root := e.page.doc.Nodes[0]
	for n := e.node; n != nil; n = n.Parent {
		if n == root {
			return false
		}
	}
	return true
}

// form adds control access to an Element.
type form struct{ *Element }

func (f form) Values() []dom.Field {
	var fields []dom.Field
	f.sel().Find("input[name], textarea[name], select[name]").Each(func(_ int, s *goquery.Selection) {
		ctrl := &Element{page: f.page, node: s.Nodes[0]}
		name := ctrl.Attr("name")
		switch ctrl.node.Data {
		case "input":
			switch strings.ToLower(ctrl.Attr("type")) {
			case "submit", "button", "reset", "image", "file":
				return
			case "checkbox", "radio":
				if _, checked := s.Attr("checked"); !checked {
					return
				}
				value := ctrl.Attr("value")
				if value == "" {
					value = "on"
				}
				fields = append(fields, dom.Field{Name: name, Value: value})
				return
			}
		case "select":
			if v, ok := f.page.values[ctrl.node]; ok {
				fields = append(fields, dom.Field{Name: name, Value: v})
				return
			}
			opt := s.Find("option[selected]").First()
			if opt.Length() == 0 {
				opt = s.Find("option").First()
			}
			v, _ := opt.Attr("value")
			fields = append(fields, dom.Field{Name: name, Value: v})
			return
		}
		fields = append(fields, dom.Field{Name: name, Value: ctrl.Value()})
	})
	return fields
}

func (f form) Query(selector string) dom.Element {
	if el := f.page.wrap(f.sel().Find(selector).First()); el != nil {
		return el
	}
	return nil
}

func (f form) Reset() {
	for n := range f.page.values {
		if f.Contains(&Element{page: f.page, node: n}) {
			delete(f.page.values, n)
		}
	}
}

type document Page

func (d *document) page() *Page { return (*Page)(d) }

func (d *document) ByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.doc.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			found = d.page().wrap(s)
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return found
}

func (d *document) Query(selector string) dom.Element {
	if el := d.page().Find(selector); el != nil {
		return el
	}
	return nil
}

func (d *document) QueryAll(selector string) []dom.Element {
	var out []dom.Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, d.page().wrap(s))
	})
	return out
}

func (d *document) Form(selector string) dom.Form {
	el := d.page().Find(selector)
	if el == nil || el.node.Data != "form" {
		return nil
	}
	return form{el}
}

func (d *document) Body() dom.Element {
	if el := d.page().Find("body"); el != nil {
		return el
	}
	return nil
}

func (d *document) Head() dom.Element {
	if el := d.page().Find("head"); el != nil {
		return el
	}
	return nil
}

func (d *document) On(name string, fn dom.Handler) {
	d.page().listen(d.doc.Nodes[0], name, fn)
}

type window Page

func (w *window) page() *Page { return (*Page)(w) }

func (w *window) InnerWidth() float64  { return w.Width }
func (w *window) InnerHeight() float64 { return w.Height }
func (w *window) ScrollY() float64     { return w.scrollY }

func (w *window) ScrollTo(top float64, smooth bool) {
	w.Scrolls = append(w.Scrolls, ScrollCall{Top: top, Smooth: smooth})
}

func (w *window) Alert(message string) {
	w.Alerts = append(w.Alerts, message)
}

func (w *window) AfterFunc(d time.Duration, fn func()) {
	w.seq++
	w.timers = append(w.timers, timer{due: w.now + d, seq: w.seq, fn: fn})
	sort.SliceStable(w.timers, func(i, j int) bool { return w.timers[i].due < w.timers[j].due })
}

func (w *window) On(name string, fn dom.Handler) {
	w.winListeners[name] = append(w.winListeners[name], fn)
}
