// Package app wires every interaction component onto a bound page.
package app

import (
	"errors"

	"github.com/Its-donkey/landing/internal/ui/anchor"
	"github.com/Its-donkey/landing/internal/ui/chrome"
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/forms"
	"github.com/Its-donkey/landing/internal/ui/menu"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/internal/ui/page"
	"github.com/Its-donkey/landing/internal/ui/scroll"
	"github.com/Its-donkey/landing/logging"
)

// App is the set of components attached to one page.
type App struct {
	View       *page.View
	Menu       *menu.Controller
	Header     *scroll.Header
	Reveal     *scroll.Reveal
	BackToTop  dom.Element
	Contact    *forms.Contact
	Newsletter *forms.Newsletter
	Preloader  *chrome.Preloader

	logger *logging.Logger
}

// Start binds the page, attaches every component whose elements are present and
// registers the load-time sequence. A component with missing elements is skipped
// with a warning; Start itself only fails if the chrome templates cannot be parsed.
func Start(win dom.Window, doc dom.Document, logger *logging.Logger) (*App, error) {
	renderer, err := chrome.NewRenderer()
	if err != nil {
		return nil, err
	}

	v := page.Bind(win, doc)
	a := &App{View: v, logger: logger}
	logger.Debug("page", "Bound page elements", v.Presence().Fields())

	if c, err := menu.New(v); a.skip(err, "Mobile navigation elements not found") {
		c.Attach(doc, v.NavLinks)
		a.Menu = c
	}

	anchor.New(win, doc).Attach(v.Anchors)

	if v.Header != nil {
		a.Header = scroll.NewHeader(v.Header)
	} else {
		logger.Warn("scroll", "Header element not found", map[string]any{"selector": model.HeaderSelector})
	}
	a.Reveal = scroll.NewReveal(win, v.RevealTargets)

	if button, err := chrome.MountBackToTop(v, renderer); a.skip(err, "Back-to-top control not mounted") {
		a.BackToTop = button
	}

	reactor := &scroll.Reactor{Window: win, Header: a.Header, Reveal: a.Reveal}
	if a.BackToTop != nil {
		reactor.BackToTop = scroll.NewBackToTop(a.BackToTop)
	}
	reactor.Attach()

	if c, err := forms.NewContact(v, logger); a.skipQuiet(err) {
		c.Attach()
		a.Contact = c
	}
	n, err := forms.NewNewsletter(v, logger)
	switch {
	case err == nil:
		n.Attach()
		a.Newsletter = n
	case v.NewsletterForm == nil:
		a.skipQuiet(err)
	default:
		a.skip(err, "Newsletter form has no email field")
	}

	if p, err := chrome.NewPreloader(v, renderer); a.skip(err, "Preloader not available") {
		a.Preloader = p
	}

	win.On(dom.EventLoad, func(dom.Event) {
		a.Loaded()
	})
	return a, nil
}

// Loaded runs the load-time sequence: an initial reveal pass, the loaded body class and the preloader.
func (a *App) Loaded() {
	a.Reveal.Update()
	if a.View.Body != nil {
		a.View.Body.AddClass(model.ClassLoaded)
	}
	if a.Preloader != nil {
		if err := a.Preloader.Run(); err != nil {
			a.logger.Error("chrome", "Preloader failed", err, nil)
		}
	}
}

// skip logs a MissingError as a warning and reports whether the component can attach.
func (a *App) skip(err error, message string) bool {
	if err == nil {
		return true
	}
	var missing *page.MissingError
	if !errors.As(err, &missing) {
		a.logger.Error("page", message, err, nil)
		return false
	}
	a.logger.Warn("page", message, map[string]any{
		"component": missing.Component,
		"missing":   missing.Elements,
	})
	return false
}

// skipQuiet is skip for optional components: absence is logged at debug level.
func (a *App) skipQuiet(err error) bool {
	if err == nil {
		return true
	}
	var missing *page.MissingError
	if errors.As(err, &missing) {
		a.logger.Debug("page", "Optional component skipped", map[string]any{
			"component": missing.Component,
			"missing":   missing.Elements,
		})
		return false
	}
	a.logger.Error("page", "Component failed", err, nil)
	return false
}
