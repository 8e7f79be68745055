// Package contract checks rendered page markup against the ids, classes and
// selectors the browser interaction layer binds to.
package contract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/landing/internal/ui/model"
)

// ErrRequiredMissing is returned by Report.Err when a required element is absent.
var ErrRequiredMissing = errors.New("required markup missing")

// Check is one selector the page is expected to match.
type Check struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	// Required checks fail the report. Optional ones only disable a feature.
	Required bool `json:"required"`
	// When names a selector that makes this check required once it matches.
	When string `json:"when,omitempty"`
}

// Result is the outcome of a single Check.
type Result struct {
	Check
	Count int  `json:"count"`
	OK    bool `json:"ok"`
}

// Report collects the results for one page.
type Report struct {
	Source  string   `json:"source"`
	Results []Result `json:"results"`
}

// Checks lists the markup the interaction layer looks for.
func Checks() []Check {
	return []Check{
		{Name: "body", Selector: "body", Required: true},
		{Name: "mobile_nav", Selector: "#" + model.MobileNavID, Required: true},
		{Name: "menu_trigger", Selector: "#" + model.MenuToggleID, Required: true},
		{Name: "header", Selector: model.HeaderSelector, Required: true},
		{Name: "close_menu", Selector: "#" + model.CloseMenuID},
		{Name: "nav_links", Selector: model.NavLinkSelector},
		{Name: "anchors", Selector: model.AnchorSelector},
		{Name: "reveal_targets", Selector: model.RevealSelector},
		{Name: "contact_form", Selector: model.ContactSelector},
		{Name: "newsletter_form", Selector: model.NewsletterSelector},
		{Name: "newsletter_email", Selector: model.NewsletterSelector + " " + model.EmailSelector, When: model.NewsletterSelector},
	}
}

// Inspect parses r as HTML and runs every check against it.
func Inspect(source string, r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse %s: %w", source, err)
	}
	return InspectDocument(source, doc), nil
}

// InspectDocument runs every check against an already parsed document.
func InspectDocument(source string, doc *goquery.Document) Report {
	report := Report{Source: source}
	for _, c := range Checks() {
		count := doc.Find(c.Selector).Length()
		required := c.Required || (c.When != "" && doc.Find(c.When).Length() > 0)
		report.Results = append(report.Results, Result{
			Check: Check{Name: c.Name, Selector: c.Selector, Required: required, When: c.When},
			Count: count,
			OK:    count > 0 || !required,
		})
	}
	return report
}

// OK reports whether every required check matched.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the names of required checks that did not match.
func (r Report) Failed() []string {
	var names []string
	for _, res := range r.Results {
		if !res.OK {
			names = append(names, res.Name)
		}
	}
	return names
}

// Absent returns the names of optional checks that did not match.
func (r Report) Absent() []string {
	var names []string
	for _, res := range r.Results {
		if res.OK && res.Count == 0 {
			names = append(names, res.Name)
		}
	}
	return names
}

// Err wraps ErrRequiredMissing with the failed check names, or returns nil.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %w: %s", r.Source, ErrRequiredMissing, strings.Join(failed, ", "))
}
