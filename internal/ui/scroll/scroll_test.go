package scroll

import (
	"testing"

	"github.com/Its-donkey/landing/internal/ui/dom"
	"github.com/Its-donkey/landing/internal/ui/dom/domtest"
	"github.com/Its-donkey/landing/internal/ui/model"
)

const scrollMarkup = `<html><body>
<header class="header">Brand</header>
<section class="fade-in" id="first" data-top="300">One</section>
<section class="slide-in" id="second" data-top="900">Two</section>
<section class="scale-in" id="third" data-top="2000">Three</section>
<section class="plain" id="plain" data-top="100">Plain</section>
<button class="back-to-top">Up</button>
</body></html>`

func newPage() *domtest.Page {
	return domtest.MustNew(scrollMarkup, 1280, 800)
}

func TestHeaderOffsetSequence(t *testing.T) {
	p := newPage()
	header := p.Find(".header")
	r := &Reactor{Window: p.Window(), Header: NewHeader(header)}
	r.Attach()

	p.Scroll(0)
	if header.HasClass(model.ClassScrollDown) || header.HasClass(model.ClassScrollUp) {
		t.Fatal("expected neutral header at offset 0")
	}

	p.Scroll(50)
	if !header.HasClass(model.ClassScrollDown) || header.HasClass(model.ClassScrollUp) {
		t.Fatal("expected hidden header after scrolling down")
	}

	p.Scroll(30)
	if header.HasClass(model.ClassScrollDown) || !header.HasClass(model.ClassScrollUp) {
		t.Fatal("expected header shown on scroll up")
	}
}

func TestHeaderEqualOffsetCausesNoTransition(t *testing.T) {
	p := newPage()
	header := p.Find(".header")
	h := NewHeader(header)

	h.Update(120)
	writes := p.Writes
	h.Update(120)

	if p.Writes != writes {
		t.Fatalf("equal offset should not mutate the header, got %d writes", p.Writes-writes)
	}
	if h.Last() != 120 {
		t.Fatalf("expected last offset 120 got %v", h.Last())
	}
}

func TestHeaderKeepsHiddenWhileScrollingDown(t *testing.T) {
	p := newPage()
	header := p.Find(".header")
	h := NewHeader(header)

	h.Update(10)
	writes := p.Writes
	h.Update(20)
	h.Update(400)

	if p.Writes != writes {
		t.Fatalf("already hidden header should not be touched, got %d writes", p.Writes-writes)
	}
	if !header.HasClass(model.ClassScrollDown) {
		t.Fatal("expected header to stay hidden")
	}
}

func TestHeaderReturnsToNeutralAtTop(t *testing.T) {
	p := newPage()
	header := p.Find(".header")
	h := NewHeader(header)

	h.Update(200)
	h.Update(100)
	h.Update(-5)

	if header.HasClass(model.ClassScrollUp) || header.HasClass(model.ClassScrollDown) {
		t.Fatal("expected neutral header at or above the top")
	}
}

func TestRevealMarksElementsNearViewport(t *testing.T) {
	p := newPage()
	doc := p.Document()
	reveal := NewReveal(p.Window(), func() []dom.Element { return doc.QueryAll(model.RevealSelector) })

	if got := reveal.Update(); got != 1 {
		t.Fatalf("expected 1 element revealed at load got %d", got)
	}
	if !p.Find("#first").HasClass(model.ClassVisible) || p.Find("#second").HasClass(model.ClassVisible) {
		t.Fatal("only the first section is above the reveal line at offset 0")
	}
	if p.Find("#plain").HasClass(model.ClassVisible) {
		t.Fatal("untagged elements are never revealed")
	}
}

func TestRevealBoundaryIsStrict(t *testing.T) {
	p := domtest.MustNew(`<html><body><div class="fade-in" id="edge" data-top="650"></div></body></html>`, 1280, 800)
	doc := p.Document()
	reveal := NewReveal(p.Window(), func() []dom.Element { return doc.QueryAll(model.RevealSelector) })

	reveal.Update()
	if p.Find("#edge").HasClass(model.ClassVisible) {
		t.Fatal("top exactly on the reveal line should not reveal")
	}
	p.Scroll(1)
	reveal.Update()
	if !p.Find("#edge").HasClass(model.ClassVisible) {
		t.Fatal("top above the reveal line should reveal")
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	p := newPage()
	doc := p.Document()
	r := &Reactor{
		Window: p.Window(),
		Reveal: NewReveal(p.Window(), func() []dom.Element { return doc.QueryAll(model.RevealSelector) }),
	}
	r.Attach()

	for _, y := range []float64{0, 500, 1800, 0, 300, 0} {
		p.Scroll(y)
	}

	for _, id := range []string{"#first", "#second", "#third"} {
		if !p.Find(id).HasClass(model.ClassVisible) {
			t.Fatalf("%s should stay visible after scrolling back", id)
		}
	}
}

func TestBackToTopVisibility(t *testing.T) {
	p := newPage()
	button := p.Find(".back-to-top")
	r := &Reactor{Window: p.Window(), BackToTop: NewBackToTop(button)}
	r.Attach()

	steps := []struct {
		offset float64
		shown  bool
	}{
		{offset: 100, shown: false},
		{offset: 300, shown: false},
		{offset: 301, shown: true},
		{offset: 1200, shown: true},
		{offset: 40, shown: false},
	}
	for _, step := range steps {
		p.Scroll(step.offset)
		if got := button.HasClass(model.ClassShow); got != step.shown {
			t.Fatalf("offset %v: expected shown=%v got %v", step.offset, step.shown, got)
		}
	}
}

func TestReactorSkipsMissingEffects(t *testing.T) {
	p := newPage()
	r := &Reactor{Window: p.Window()}
	r.Attach()
	if n := p.WindowListeners("scroll"); n != 0 {
		t.Fatalf("expected no scroll listeners got %d", n)
	}
}
