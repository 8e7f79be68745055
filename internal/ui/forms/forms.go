// Package forms intercepts the contact and newsletter forms.
//
// Submissions are not transmitted anywhere: each one is logged under the "forms"
// category and confirmed to the visitor. The log record is where a backend
// submission would hook in.
package forms

import (
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/internal/ui/page"
	"github.com/Its-donkey/landing/logging"
)

const logCategory = "forms"

// Contact handles the contact form.
type Contact struct {
	form   dom.Form
	window dom.Window
	logger *logging.Logger
}

// NewContact binds the view's contact form.
func NewContact(v *page.View, logger *logging.Logger) (*Contact, error) {
	if v.ContactForm == nil {
		return nil, &page.MissingError{Component: "contact form", Elements: []string{model.ContactSelector}}
	}
	return &Contact{form: v.ContactForm, window: v.Window, logger: logger}, nil
}

// Attach registers the submit listener.
func (c *Contact) Attach() {
	c.form.On(dom.EventSubmit, func(e dom.Event) {
		c.Submit(e)
	})
}

// Submit collects every named field, logs and confirms the snapshot, then clears the form.
func (c *Contact) Submit(e dom.Event) model.FormSnapshot {
	e.PreventDefault()

	snapshot := model.SnapshotOf(c.form.Values())
	c.logger.Info(logCategory, "Form submitted", snapshot.Fields())
	c.window.Alert(model.ContactThanks)
	c.form.Reset()
	return snapshot
}

// Newsletter handles the newsletter sign-up form.
type Newsletter struct {
	form   dom.Form
	email  dom.Element
	window dom.Window
	logger *logging.Logger
}

// NewNewsletter binds the view's newsletter form and its email input.
func NewNewsletter(v *page.View, logger *logging.Logger) (*Newsletter, error) {
	if v.NewsletterForm == nil {
		return nil, &page.MissingError{Component: "newsletter form", Elements: []string{model.NewsletterSelector}}
	}
	if v.NewsletterEmail == nil {
		return nil, &page.MissingError{
			Component: "newsletter form",
			Elements:  []string{model.NewsletterSelector + " " + model.EmailSelector},
		}
	}
	return &Newsletter{form: v.NewsletterForm, email: v.NewsletterEmail, window: v.Window, logger: logger}, nil
}

// Attach registers the submit listener.
func (n *Newsletter) Attach() {
	n.form.On(dom.EventSubmit, func(e dom.Event) {
		n.Submit(e)
	})
}

// Submit reads the email, logs and confirms it, then clears the form.
func (n *Newsletter) Submit(e dom.Event) string {
	e.PreventDefault()

	email := n.email.Value()
	n.logger.Info(logCategory, "Newsletter subscription", map[string]any{"email": email})
	n.window.Alert(model.NewsletterThanks)
	n.form.Reset()
	return email
}
