// Package content renders the marketing copy sections from Markdown.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed sections/*.md
var embedded embed.FS

// revealClasses cycles through the reveal animation categories section by section.
var revealClasses = []string{"fade-in", "slide-in", "scale-in"}

// Section is one rendered block of copy on the home page.
type Section struct {
	ID     string
	Title  string
	Reveal string
	HTML   template.HTML
}

// Load renders every NN-slug.md file in dir, or the embedded copy when dir is empty.
func Load(dir string) ([]Section, error) {
	var fsys fs.FS
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(embedded, "sections")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return Render(fsys)
}

// Render converts the Markdown files at the root of fsys into sections ordered by file name.
func Render(fsys fs.FS) ([]Section, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	sort.Strings(names)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	sections := make([]Section, 0, len(names))
	for i, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", name, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render section %s: %w", name, err)
		}
		sections = append(sections, Section{
			ID:     slug(name),
			Title:  title(src),
			Reveal: revealClasses[i%len(revealClasses)],
			HTML:   template.HTML(buf.String()),
		})
	}
	return sections, nil
}

// slug turns "02-pricing.md" into "pricing".
func slug(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if i := strings.IndexByte(base, '-'); i >= 0 && strings.Trim(base[:i], "0123456789") == "" {
		base = base[i+1:]
	}
	return strings.ToLower(base)
}

// title returns the text of the first Markdown heading.
func title(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
