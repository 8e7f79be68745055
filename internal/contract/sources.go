package contract

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Expand resolves file globs (including **) into paths. URLs pass through unchanged.
func Expand(args []string) ([]string, error) {
	var sources []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}
	for _, arg := range args {
		if IsURL(arg) {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return sources, nil
}

// Load inspects a file path or URL.
func Load(ctx context.Context, client *http.Client, source string) (Report, error) {
	if !IsURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return Report{}, err
		}
		defer f.Close()
		return Inspect(source, f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return Report{}, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch %s: %w", source, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("fetch %s: unexpected status %d", source, resp.StatusCode)
	}
	return Inspect(source, resp.Body)
}
