// Package catalog holds the tool catalog: categories, the tools they
// contain and the routes that address them.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Veraticus/freemium-tools/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// RelatedLimit is how many related tools a tool page lists.
const RelatedLimit = 3

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Tool is a single entry in a category.
type Tool struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// ColorPair is a category accent colour for light and dark themes.
type ColorPair struct {
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

// Category groups related tools.
type Category struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Icon        string    `yaml:"icon" json:"icon"`
	Color       ColorPair `yaml:"color" json:"color"`
	Tools       []Tool    `yaml:"tools" json:"tools"`
}

// Tool returns the tool with the given id.
func (c *Category) Tool(id string) (Tool, bool) {
	for _, t := range c.Tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// Match is a search hit.
type Match struct {
	CategoryID string
	Tool       Tool
}

// Catalog is an immutable, validated set of categories.
type Catalog struct {
	categories []Category
	byID       map[string]int
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// Parse decodes and validates catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		categories: doc.Categories,
		byID:       make(map[string]int, len(doc.Categories)),
	}
	for i, cat := range doc.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		c.byID[cat.ID] = i

		seen := make(map[string]struct{}, len(cat.Tools))
		for _, t := range cat.Tools {
			if t.ID == "" {
				return nil, fmt.Errorf("%w: tool without id in %q", ErrInvalidCatalog, cat.ID)
			}
			if _, dup := seen[t.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate tool %q in %q", ErrInvalidCatalog, t.ID, cat.ID)
			}
			seen[t.ID] = struct{}{}
		}
	}
	return c, nil
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

var defaultCatalog = sync.OnceValues(Load)

// Default returns the shared embedded catalog.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, id)
	}
	return c.categories[i], nil
}

// Tool looks up a tool within a category.
func (c *Catalog) Tool(categoryID, toolID string) (Category, Tool, error) {
	cat, err := c.Category(categoryID)
	if err != nil {
		return Category{}, Tool{}, err
	}
	t, ok := cat.Tool(toolID)
	if !ok {
		return Category{}, Tool{}, fmt.Errorf("%w: %q in %q", common.ErrUnknownTool, toolID, categoryID)
	}
	return cat, t, nil
}

// Related returns up to n other tools from the same category, in catalog
// order.
func (c *Catalog) Related(categoryID, toolID string, n int) []Tool {
	cat, err := c.Category(categoryID)
	if err != nil || n <= 0 {
		return nil
	}
	out := make([]Tool, 0, n)
	for _, t := range cat.Tools {
		if t.ID == toolID {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

// Search returns tools whose title or description contains query,
// case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Match
	for _, cat := range c.categories {
		for _, t := range cat.Tools {
			if strings.Contains(strings.ToLower(t.Title), q) ||
				strings.Contains(strings.ToLower(t.Description), q) {
				out = append(out, Match{CategoryID: cat.ID, Tool: t})
			}
		}
	}
	return out
}
