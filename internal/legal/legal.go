// Package legal serves the privacy, terms and cookie pages.
package legal

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed pages/*.md
var pages embed.FS

// ErrUnknownPage is returned for a slug with no page.
var ErrUnknownPage = errors.New("unknown legal page")

// Slugs lists the pages in footer order.
var Slugs = []string{"privacy-policy", "terms-of-service", "cookie-policy"}

// Document is one legal page.
type Document struct {
	Slug     string
	Title    string
	Markdown string
}

// Page loads the page for slug.
func Page(slug string) (Document, error) {
	known := false
	for _, s := range Slugs {
		if s == slug {
			known = true
			break
		}
	}
	if !known {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownPage, slug)
	}

	data, err := pages.ReadFile("pages/" + slug + ".md")
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", slug, err)
	}

	md := string(data)
	return Document{Slug: slug, Title: title(md), Markdown: md}, nil
}

// Render formats the page as styled terminal text wrapped to width.
func Render(slug string, width int, dark bool) (string, error) {
	doc, err := Page(slug)
	if err != nil {
		return "", err
	}

	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(doc.Markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", slug, err)
	}
	return out, nil
}

func title(md string) string {
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}
