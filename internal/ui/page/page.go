// Package page binds the markup contract to typed accessors.
package page

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
)

// View holds every element the interaction layer uses, looked up once at bind time.
// Optional pieces are nil when the markup omits them.
type View struct {
	Window   dom.Window
	Document dom.Document

	Body        dom.Element
	Head        dom.Element
	MobileNav   dom.Element
	MenuTrigger dom.Element
	CloseMenu   dom.Element
	NavLinks    []dom.Element
	Header      dom.Element
	Anchors     []dom.Element

	ContactForm     dom.Form
	NewsletterForm  dom.Form
	NewsletterEmail dom.Element
}

// Bind looks up the contract elements in doc.
func Bind(win dom.Window, doc dom.Document) *View {
	v := &View{
		Window:      win,
		Document:    doc,
		Body:        doc.Body(),
		Head:        doc.Head(),
		MobileNav:   doc.ByID(model.MobileNavID),
		MenuTrigger: doc.ByID(model.MenuToggleID),
		CloseMenu:   doc.ByID(model.CloseMenuID),
		NavLinks:    doc.QueryAll(model.NavLinkSelector),
		Header:      doc.Query(model.HeaderSelector),
		Anchors:     doc.QueryAll(model.AnchorSelector),
		ContactForm: doc.Form(model.ContactSelector),
	}
	if form := doc.Form(model.NewsletterSelector); form != nil {
		v.NewsletterForm = form
		v.NewsletterEmail = form.Query(model.EmailSelector)
	}
	return v
}

// RevealTargets returns the elements tagged for a reveal animation.
// It queries on every call so late-added elements are picked up.
func (v *View) RevealTargets() []dom.Element {
	return v.Document.QueryAll(model.RevealSelector)
}

// Presence records which contract elements the page provides.
type Presence struct {
	Body            bool
	Head            bool
	MobileNav       bool
	MenuTrigger     bool
	CloseMenu       bool
	NavLinks        int
	Header          bool
	Anchors         int
	ContactForm     bool
	NewsletterForm  bool
	NewsletterEmail bool
}

// Presence reports which contract elements were found.
func (v *View) Presence() Presence {
	return Presence{
		Body:            v.Body != nil,
		Head:            v.Head != nil,
		MobileNav:       v.MobileNav != nil,
		MenuTrigger:     v.MenuTrigger != nil,
		CloseMenu:       v.CloseMenu != nil,
		NavLinks:        len(v.NavLinks),
		Header:          v.Header != nil,
		Anchors:         len(v.Anchors),
		ContactForm:     v.ContactForm != nil,
		NewsletterForm:  v.NewsletterForm != nil,
		NewsletterEmail: v.NewsletterEmail != nil,
	}
}

// Fields converts the report into log fields.
func (p Presence) Fields() map[string]any {
	return map[string]any{
		"body":             p.Body,
		"head":             p.Head,
		"mobile_nav":       p.MobileNav,
		"menu_trigger":     p.MenuTrigger,
		"close_menu":       p.CloseMenu,
		"nav_links":        p.NavLinks,
		"header":           p.Header,
		"anchors":          p.Anchors,
		"contact_form":     p.ContactForm,
		"newsletter_form":  p.NewsletterForm,
		"newsletter_email": p.NewsletterEmail,
	}
}

// MissingError reports that a component could not attach because required elements are absent.
type MissingError struct {
	Component string
	Elements  []string
}

func (e *MissingError) Error() string {
	elements := append([]string(nil), e.Elements...)
	sort.Strings(elements)
	return fmt.Sprintf("%s: missing %s", e.Component, strings.Join(elements, ", "))
}

// Require returns a MissingError naming every nil element in required, or nil when all are present.
func Require(component string, required map[string]dom.Element) error {
	var missing []string
	for name, el := range required {
		if el == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingError{Component: component, Elements: missing}
}
