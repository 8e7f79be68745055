//go:build js && wasm

package wasm

import (
	"strings"
	"syscall/js"
	"time"

	"github.com/Its-donkey/landing/internal/ui/dom"
)

// handlers keeps every js.Func alive for the lifetime of the page.
var handlers []js.Func

func listen(target js.Value, name string, fn dom.Handler) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			fn(event{})
			return nil
		}
		fn(event{v: args[0]})
		return nil
	})
	handlers = append(handlers, cb)
	target.Call("addEventListener", name, cb)
}

type event struct {
	v js.Value
}

func (e event) Target() dom.Element {
	if !e.v.Truthy() {
		return nil
	}
	return wrapElement(e.v.Get("target"))
}

func (e event) PreventDefault() {
	if e.v.Truthy() {
		e.v.Call("preventDefault")
	}
}

func (e event) StopPropagation() {
	if e.v.Truthy() {
		e.v.Call("stopPropagation")
	}
}

type element struct {
	v js.Value
}

// wrapElement returns nil for null/undefined so callers can compare against nil.
func wrapElement(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return element{v: v}
}

func (e element) ID() string { return e.v.Get("id").String() }

func (e element) Attr(name string) string {
	attr := e.v.Call("getAttribute", name)
	if attr.Type() != js.TypeString {
		return ""
	}
	return attr.String()
}

func (e element) Value() string {
	value := e.v.Get("value")
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}

func (e element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e element) SetStyle(property, value string) {
	e.v.Get("style").Set(property, value)
}

func (e element) Contains(other dom.Element) bool {
	o, ok := other.(element)
	if !ok {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e element) OffsetTop() float64 { return e.v.Get("offsetTop").Float() }

func (e element) BoundingTop() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

func (e element) fragment(markup string) js.Value {
	tmpl := js.Global().Get("document").Call("createElement", "template")
	tmpl.Set("innerHTML", strings.TrimSpace(markup))
	return tmpl.Get("content")
}

func (e element) AppendHTML(markup string) dom.Element {
	content := e.fragment(markup)
	first := content.Get("firstElementChild")
	e.v.Call("appendChild", content)
	return wrapElement(first)
}

func (e element) PrependHTML(markup string) dom.Element {
	content := e.fragment(markup)
	first := content.Get("firstElementChild")
	e.v.Call("prepend", content)
	return wrapElement(first)
}

func (e element) Remove() { e.v.Call("remove") }

func (e element) On(name string, fn dom.Handler) { listen(e.v, name, fn) }

type form struct {
	element
}

func (f form) Values() []dom.Field {
	var fields []dom.Field
	data := js.Global().Get("FormData").New(f.v)
	iter := data.Call("entries")
	for {
		next := iter.Call("next")
		if next.Get("done").Bool() {
			break
		}
		pair := next.Get("value")
		value := pair.Index(1)
		if value.Type() != js.TypeString {
			// File inputs yield File objects; only text values are collected.
			continue
		}
		fields = append(fields, dom.Field{Name: pair.Index(0).String(), Value: value.String()})
	}
	return fields
}

func (f form) Query(selector string) dom.Element {
	return wrapElement(f.v.Call("querySelector", selector))
}

func (f form) Reset() { f.v.Call("reset") }

type document struct {
	v js.Value
}

func (d document) ByID(id string) dom.Element {
	return wrapElement(d.v.Call("getElementById", id))
}

func (d document) Query(selector string) dom.Element {
	return wrapElement(d.v.Call("querySelector", selector))
}

func (d document) QueryAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, element{v: list.Index(i)})
	}
	return out
}

func (d document) Form(selector string) dom.Form {
	v := d.v.Call("querySelector", selector)
	if !v.Truthy() || !strings.EqualFold(v.Get("tagName").String(), "form") {
		return nil
	}
	return form{element{v: v}}
}

func (d document) Body() dom.Element { return wrapElement(d.v.Get("body")) }
func (d document) Head() dom.Element { return wrapElement(d.v.Get("head")) }

func (d document) On(name string, fn dom.Handler) { listen(d.v, name, fn) }

type window struct {
	v js.Value
}

func (w window) InnerWidth() float64  { return w.v.Get("innerWidth").Float() }
func (w window) InnerHeight() float64 { return w.v.Get("innerHeight").Float() }
func (w window) ScrollY() float64     { return w.v.Get("pageYOffset").Float() }

func (w window) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.v.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

func (w window) Alert(message string) { w.v.Call("alert", message) }

// AfterFunc schedules fn with setTimeout; the callback releases itself once it has run.
func (w window) AfterFunc(d time.Duration, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		cb.Release()
		return nil
	})
	w.v.Call("setTimeout", cb, d.Milliseconds())
}

func (w window) On(name string, fn dom.Handler) { listen(w.v, name, fn) }
