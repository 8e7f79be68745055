package chrome

import (
	"strings"
	"testing"

	"github.com/Its-donkey/landing/internal/ui/dom/domtest"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/internal/ui/page"
)

const chromeMarkup = `<html><head><title>t</title></head><body><main id="content" data-top="0">Hi</main></body></html>`

func setup(t *testing.T) (*domtest.Page, *page.View, *Renderer) {
	t.Helper()
	p := domtest.MustNew(chromeMarkup, 1280, 800)
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return p, page.Bind(p.Window(), p.Document()), r
}

func TestRendererMarkup(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	button, err := r.BackToTop()
	if err != nil {
		t.Fatalf("back to top: %v", err)
	}
	if !strings.Contains(button, `class="back-to-top"`) || !strings.Contains(button, "↑") {
		t.Fatalf("unexpected button markup: %s", button)
	}
	overlay, err := r.Preloader()
	if err != nil {
		t.Fatalf("preloader: %v", err)
	}
	if !strings.Contains(overlay, `class="preloader"`) || !strings.Contains(overlay, `class="preloader-spinner"`) {
		t.Fatalf("unexpected preloader markup: %s", overlay)
	}
}

func TestStylesheetsUseThemeColors(t *testing.T) {
	for _, name := range []string{StyleBackToTop, StylePreloader} {
		css, err := Stylesheet(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(css, "var(--primary-color)") {
			t.Fatalf("%s should use the primary color property", name)
		}
	}
	if _, err := Stylesheet("missing"); err == nil {
		t.Fatal("expected error for unknown stylesheet")
	}
}

func TestMountBackToTop(t *testing.T) {
	p, v, r := setup(t)

	button, err := MountBackToTop(v, r)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if p.Len("body > button.back-to-top") != 1 {
		t.Fatalf("expected one button appended to body: %s", p.HTML())
	}
	if p.Len(`head > style[data-chrome="back_to_top"]`) != 1 {
		t.Fatal("expected back-to-top styles in head")
	}

	p.Click(p.Find("button.back-to-top"))
	if len(p.Scrolls) != 1 || p.Scrolls[0].Top != 0 || !p.Scrolls[0].Smooth {
		t.Fatalf("expected smooth scroll to top got %+v", p.Scrolls)
	}
	if button.HasClass(model.ClassShow) {
		t.Fatal("button starts hidden")
	}
}

func TestPreloaderSequence(t *testing.T) {
	p, v, r := setup(t)
	pre, err := NewPreloader(v, r)
	if err != nil {
		t.Fatalf("new preloader: %v", err)
	}

	if err := pre.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if p.Len("body > div.preloader:first-child") != 1 {
		t.Fatalf("expected overlay at the start of body: %s", p.HTML())
	}
	if p.Len(`head > style[data-chrome="preloader"]`) != 1 {
		t.Fatal("expected preloader styles in head")
	}
	overlay := p.Find("div.preloader")

	p.Advance(999 * model.PreloaderHold / 1000)
	if overlay.HasClass(model.ClassHidden) {
		t.Fatal("overlay should not hide before the hold delay")
	}

	p.Advance(model.PreloaderHold / 1000)
	if !overlay.HasClass(model.ClassHidden) {
		t.Fatal("overlay should hide after the hold delay")
	}
	if overlay.Detached() {
		t.Fatal("overlay should stay in the document during the fade")
	}

	p.Advance(model.PreloaderRemove)
	if !overlay.Detached() || p.Len("div.preloader") != 0 {
		t.Fatal("overlay should be removed after the fade")
	}
	if p.PendingTimers() != 0 {
		t.Fatalf("expected no pending timers got %d", p.PendingTimers())
	}
}

func TestPreloaderRunsOnce(t *testing.T) {
	p, v, r := setup(t)
	pre, err := NewPreloader(v, r)
	if err != nil {
		t.Fatalf("new preloader: %v", err)
	}
	_ = pre.Run()
	_ = pre.Run()
	if p.Len("div.preloader") != 1 {
		t.Fatalf("expected a single overlay got %d", p.Len("div.preloader"))
	}
	if p.PendingTimers() != 1 {
		t.Fatalf("expected one scheduled fade got %d", p.PendingTimers())
	}
}

func TestMountRequiresBody(t *testing.T) {
	p := domtest.MustNew(chromeMarkup, 1280, 800)
	v := page.Bind(p.Window(), p.Document())
	v.Body = nil
	r, _ := NewRenderer()
	if _, err := MountBackToTop(v, r); err == nil {
		t.Fatal("expected error without body")
	}
	if _, err := NewPreloader(v, r); err == nil {
		t.Fatal("expected error without body")
	}
}
