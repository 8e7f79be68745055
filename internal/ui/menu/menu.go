// Package menu drives the mobile navigation drawer.
package menu

import (
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/internal/ui/page"
	"github.com/Its-donkey/landing/internal/ui/viewport"
)

// Controller owns the drawer's open/closed state. It starts Closed and lives for the page.
type Controller struct {
	drawer   dom.Element
	trigger  dom.Element
	closeBtn dom.Element
	body     dom.Element
	viewport viewport.Query
	open     bool
}

// New builds a controller over the view's drawer elements. The drawer and trigger are required;
// the close control is optional.
func New(v *page.View) (*Controller, error) {
	if err := page.Require("menu", map[string]dom.Element{
		"#" + model.MobileNavID:  v.MobileNav,
		"#" + model.MenuToggleID: v.MenuTrigger,
	}); err != nil {
		return nil, err
	}
	return &Controller{
		drawer:   v.MobileNav,
		trigger:  v.MenuTrigger,
		closeBtn: v.CloseMenu,
		body:     v.Body,
		viewport: viewport.Query{Window: v.Window},
	}, nil
}

// IsOpen reports whether the drawer is open.
func (c *Controller) IsOpen() bool { return c.open }

// Open shows the drawer, hides the trigger and locks background scrolling.
func (c *Controller) Open() {
	c.drawer.AddClass(model.ClassActive)
	c.trigger.SetStyle("display", "none")
	if c.body != nil {
		c.body.SetStyle("overflow", "hidden")
	}
	c.open = true
}

// Close hides the drawer, restores the trigger and unlocks scrolling. Closing a closed drawer does nothing.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.drawer.RemoveClass(model.ClassActive)
	c.trigger.SetStyle("display", "block")
	if c.body != nil {
		c.body.SetStyle("overflow", "auto")
	}
	c.open = false
}

// Toggle flips the drawer state.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// Attach registers the trigger, close, nav-link, drawer and document listeners.
func (c *Controller) Attach(doc dom.Document, links []dom.Element) {
	c.trigger.On(dom.EventClick, func(e dom.Event) {
		e.StopPropagation()
		c.Toggle()
	})

	if c.closeBtn != nil {
		c.closeBtn.On(dom.EventClick, func(e dom.Event) {
			e.StopPropagation()
			c.Close()
		})
	}

	for _, link := range links {
		link.On(dom.EventClick, func(dom.Event) {
			if c.viewport.Narrow() {
				c.Close()
			}
		})
	}

	doc.On(dom.EventClick, func(e dom.Event) {
		if !c.viewport.Narrow() {
			return
		}
		if !c.inside(e.Target()) && c.open {
			c.Close()
		}
	})

	// Clicks inside the drawer never reach the document listener.
	c.drawer.On(dom.EventClick, func(e dom.Event) {
		e.StopPropagation()
	})
}

func (c *Controller) inside(target dom.Element) bool {
	if target == nil {
		return false
	}
	if c.drawer.Contains(target) || c.trigger.Contains(target) {
		return true
	}
	return c.closeBtn != nil && c.closeBtn.Contains(target)
}
