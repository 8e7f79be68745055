package contract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullPage = `<html><body>
<header class="header"><button id="menuToggle"></button></header>
<nav id="mobileNav" class="mobile-nav"><button id="closeMenu"></button>
  <ul class="nav-links"><li><a href="#features">Features</a></li></ul></nav>
<section id="features" class="fade-in"></section>
<form class="contact-form"><input name="name"></form>
<form class="newsletter-form"><input type="email" name="email"></form>
</body></html>`

func inspect(t *testing.T, markup string) Report {
	t.Helper()
	report, err := Inspect("test", strings.NewReader(markup))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	return report
}

func result(t *testing.T, r Report, name string) Result {
	t.Helper()
	for _, res := range r.Results {
		if res.Name == name {
			return res
		}
	}
	t.Fatalf("no result named %q", name)
	return Result{}
}

func TestInspectFullPage(t *testing.T) {
	report := inspect(t, fullPage)
	if !report.OK() {
		t.Fatalf("expected report to pass, failed: %v", report.Failed())
	}
	if absent := report.Absent(); len(absent) != 0 {
		t.Fatalf("expected nothing absent, got %v", absent)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result(t, report, "anchors").Count; got != 1 {
		t.Fatalf("expected 1 anchor got %d", got)
	}
}

func TestInspectMissingRequired(t *testing.T) {
	report := inspect(t, `<html><body><header class="header"></header></body></html>`)
	if report.OK() {
		t.Fatalf("expected failure")
	}
	failed := strings.Join(report.Failed(), ",")
	if failed != "mobile_nav,menu_trigger" {
		t.Fatalf("unexpected failed set %q", failed)
	}
	err := report.Err()
	if !errors.Is(err, ErrRequiredMissing) {
		t.Fatalf("expected ErrRequiredMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "mobile_nav, menu_trigger") {
		t.Fatalf("error should name failures: %v", err)
	}
}

func TestOptionalFeaturesOnlyReportedAbsent(t *testing.T) {
	report := inspect(t, `<html><body><header class="header"></header>
<nav id="mobileNav"></nav><button id="menuToggle"></button></body></html>`)
	if !report.OK() {
		t.Fatalf("optional features must not fail: %v", report.Failed())
	}
	absent := strings.Join(report.Absent(), ",")
	want := "close_menu,nav_links,anchors,reveal_targets,contact_form,newsletter_form,newsletter_email"
	if absent != want {
		t.Fatalf("expected absent %q got %q", want, absent)
	}
}

func TestNewsletterWithoutEmailFails(t *testing.T) {
	markup := strings.Replace(fullPage, `<input type="email" name="email">`, `<input type="text" name="email">`, 1)
	report := inspect(t, markup)
	res := result(t, report, "newsletter_email")
	if !res.Required || res.OK {
		t.Fatalf("expected required failing email check, got %+v", res)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"index.html", "nested/about.html", "nested/deeper/faq.html", "notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(fullPage), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	sources, err := Expand([]string{filepath.Join(dir, "**", "*.html"), "https://example.com/"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(sources) != 4 {
		t.Fatalf("expected 3 files and 1 url, got %v", sources)
	}
	if sources[3] != "https://example.com/" {
		t.Fatalf("url should pass through, got %v", sources)
	}

	if _, err := Expand([]string{filepath.Join(dir, "*.md")}); err == nil {
		t.Fatalf("expected error for pattern with no matches")
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(fullPage))
	}))
	defer srv.Close()

	report, err := Load(context.Background(), srv.Client(), srv.URL+"/")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !report.OK() || report.Source != srv.URL+"/" {
		t.Fatalf("unexpected report %+v", report)
	}

	if _, err := Load(context.Background(), srv.Client(), srv.URL+"/missing"); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(fullPage), 0o644); err != nil {
		t.Fatal(err)
	}
	report, err := Load(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected pass, failed %v", report.Failed())
	}
}
