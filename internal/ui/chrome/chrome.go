package chrome

import (
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/internal/ui/page"
)

// styleTarget prefers the document head and falls back to the body.
func styleTarget(v *page.View) dom.Element {
	if v.Head != nil {
		return v.Head
	}
	return v.Body
}

// MountBackToTop appends the back-to-top control and its styles. Clicking it smooth-scrolls to the top.
func MountBackToTop(v *page.View, r *Renderer) (dom.Element, error) {
	if err := page.Require("back-to-top", map[string]dom.Element{"body": v.Body}); err != nil {
		return nil, err
	}
	style, err := StyleBlock(StyleBackToTop)
	if err != nil {
		return nil, err
	}
	markup, err := r.BackToTop()
	if err != nil {
		return nil, err
	}

	styleTarget(v).AppendHTML(style)
	button := v.Body.AppendHTML(markup)
	if button == nil {
		return nil, &page.MissingError{Component: "back-to-top", Elements: []string{"button.back-to-top"}}
	}
	win := v.Window
	button.On(dom.EventClick, func(dom.Event) {
		win.ScrollTo(0, true)
	})
	return button, nil
}

// Preloader shows an overlay once the page has loaded, fades it after PreloaderHold
// and removes it PreloaderRemove later. It runs at most once.
type Preloader struct {
	view     *page.View
	renderer *Renderer
	overlay  dom.Element
	started  bool
}

// NewPreloader prepares the preloader for the view.
func NewPreloader(v *page.View, r *Renderer) (*Preloader, error) {
	if err := page.Require("preloader", map[string]dom.Element{"body": v.Body}); err != nil {
		return nil, err
	}
	return &Preloader{view: v, renderer: r}, nil
}

// Run inserts the overlay and schedules its fade and removal. Later calls do nothing.
func (p *Preloader) Run() error {
	if p.started {
		return nil
	}
	p.started = true

	markup, err := p.renderer.Preloader()
	if err != nil {
		return err
	}
	style, err := StyleBlock(StylePreloader)
	if err != nil {
		return err
	}

	overlay := p.view.Body.PrependHTML(markup)
	styleTarget(p.view).AppendHTML(style)
	if overlay == nil {
		return &page.MissingError{Component: "preloader", Elements: []string{"div.preloader"}}
	}
	p.overlay = overlay

	win := p.view.Window
	win.AfterFunc(model.PreloaderHold, func() {
		overlay.AddClass(model.ClassHidden)
		win.AfterFunc(model.PreloaderRemove, overlay.Remove)
	})
	return nil
}

// Overlay is the inserted overlay element, nil before Run.
func (p *Preloader) Overlay() dom.Element { return p.overlay }
