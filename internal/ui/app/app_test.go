package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Its-donkey/landing/internal/ui/dom/domtest"
	"github.com/Its-donkey/landing/internal/ui/model"
	"github.com/Its-donkey/landing/logging"
)

const landingMarkup = `<html><head><title>Landing</title></head><body>
<header class="header">
  <a href="#">Brand</a>
  <button id="menuToggle">Menu</button>
</header>
<nav class="mobile-nav" id="mobileNav">
  <button id="closeMenu">Close</button>
  <ul class="nav-links"><li><a href="#features">Features</a></li></ul>
</nav>
<section id="features" class="fade-in" data-top="500">Features</section>
<section id="pricing" class="slide-in" data-top="1400">Pricing</section>
<form class="contact-form"><input name="name"><textarea name="message"></textarea></form>
<form class="newsletter-form"><input type="email" name="email"></form>
<p id="outside">x</p>
</body></html>`

func start(t *testing.T, markup string, width float64) (*domtest.Page, *App, *bytes.Buffer) {
	t.Helper()
	p := domtest.MustNew(markup, width, 800)
	var buf bytes.Buffer
	a, err := Start(p.Window(), p.Document(), logging.New("browser", logging.DEBUG, &buf))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return p, a, &buf
}

func TestStartAttachesEveryComponent(t *testing.T) {
	_, a, _ := start(t, landingMarkup, 600)
	if a.Menu == nil || a.Header == nil || a.Reveal == nil || a.BackToTop == nil {
		t.Fatalf("expected menu, header, reveal and back-to-top: %+v", a)
	}
	if a.Contact == nil || a.Newsletter == nil || a.Preloader == nil {
		t.Fatalf("expected forms and preloader: %+v", a)
	}
}

func TestLoadSequence(t *testing.T) {
	p, _, _ := start(t, landingMarkup, 1280)

	p.Load()

	body := p.Find("body")
	if !body.HasClass(model.ClassLoaded) {
		t.Fatal("expected loaded body class")
	}
	if !p.Find("#features").HasClass(model.ClassVisible) || p.Find("#pricing").HasClass(model.ClassVisible) {
		t.Fatal("initial reveal pass should only reveal elements above the line")
	}
	if p.Len("body > div.preloader") != 1 {
		t.Fatal("expected preloader overlay after load")
	}
	p.Advance(model.PreloaderHold + model.PreloaderRemove)
	if p.Len("div.preloader") != 0 {
		t.Fatal("expected preloader removed")
	}
}

func TestScrollDrivesHeaderRevealAndBackToTop(t *testing.T) {
	p, _, _ := start(t, landingMarkup, 1280)
	header := p.Find(".header")
	button := p.Find("button.back-to-top")

	p.Scroll(900)
	if !header.HasClass(model.ClassScrollDown) || !button.HasClass(model.ClassShow) {
		t.Fatal("scrolling down past the threshold hides the header and shows back-to-top")
	}
	if !p.Find("#pricing").HasClass(model.ClassVisible) {
		t.Fatal("pricing should be revealed at offset 900")
	}

	p.Scroll(100)
	if !header.HasClass(model.ClassScrollUp) || button.HasClass(model.ClassShow) {
		t.Fatal("scrolling up shows the header and hides back-to-top")
	}
}

func TestMenuAndAnchorsTogether(t *testing.T) {
	p, a, _ := start(t, landingMarkup, 600)

	p.Click(p.Find("#menuToggle"))
	if !a.Menu.IsOpen() {
		t.Fatal("expected drawer open")
	}

	ev := p.Click(p.Find(`.nav-links a[href="#features"]`))
	if !ev.DefaultPrevented {
		t.Fatal("anchor click should prevent default")
	}
	if a.Menu.IsOpen() {
		t.Fatal("nav link should close the drawer on narrow viewports")
	}
	if len(p.Scrolls) != 1 || p.Scrolls[0].Top != 420 {
		t.Fatalf("expected scroll to 420 got %+v", p.Scrolls)
	}

	brand := p.Click(p.Find(`.header a[href="#"]`))
	if !brand.DefaultPrevented || len(p.Scrolls) != 1 {
		t.Fatal("bare hash link should be suppressed without scrolling")
	}
}

func TestMissingMenuIsLoggedAndSkipped(t *testing.T) {
	markup := `<html><head></head><body><header class="header"></header></body></html>`
	p, a, buf := start(t, markup, 600)

	if a.Menu != nil {
		t.Fatal("menu should be skipped")
	}
	if !strings.Contains(buf.String(), "Mobile navigation elements not found") {
		t.Fatalf("expected diagnostic, got %s", buf.String())
	}
	if p.DocumentListeners("click") != 0 {
		t.Fatal("no document click listener without a drawer")
	}
	// The rest of the page still works.
	p.Scroll(400)
	if !p.Find("button.back-to-top").HasClass(model.ClassShow) {
		t.Fatal("back-to-top should still attach")
	}
}

func TestMissingHeaderIsLogged(t *testing.T) {
	_, a, buf := start(t, `<html><head></head><body></body></html>`, 1280)
	if a.Header != nil {
		t.Fatal("header effect should be skipped")
	}
	if !strings.Contains(buf.String(), "Header element not found") {
		t.Fatalf("expected header diagnostic, got %s", buf.String())
	}
}
