// Package viewport classifies the current window width.
package viewport

import (
	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/model"
)

// Query reads the window width on every call; it never caches.
type Query struct {
	Window dom.Window
}

// Narrow reports whether the mobile layout applies.
func (q Query) Narrow() bool {
	return IsNarrow(q.Window.InnerWidth())
}

// IsNarrow reports whether width falls inside the mobile layout.
func IsNarrow(width float64) bool {
	return width <= model.NarrowViewportMax
}
