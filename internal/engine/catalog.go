package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrCatalogGap indicates a category that has no templates yet.
var ErrCatalogGap = errors.New("no templates for category")

// Template is a parameterized crisis skeleton. Placeholders of the form
// {name} in the three text fields are filled from Variables, or from the
// sampled tuple for the reserved names severity and company_type.
type Template struct {
	ID                  string
	TitleTemplate       string
	DescriptionTemplate string
	ContextTemplate     string
	Variables           map[string][]string
}

// Catalog is the immutable template store, built once at startup and safe for
// concurrent readers.
type Catalog struct {
	templates map[Category][]Template
	baseline  Category
}

// NewCatalog builds a catalog from the given per-category template lists.
// The baseline category (the fallback for unpopulated categories) is the
// first category in Categories order that has at least one template.
func NewCatalog(templates map[Category][]Template) (*Catalog, error) {
	c := &Catalog{templates: make(map[Category][]Template, len(templates))}
	for cat, list := range templates {
		if _, ok := ParseCategory(string(cat)); !ok {
			return nil, fmt.Errorf("unknown category %q in catalog", cat)
		}
		c.templates[cat] = append([]Template(nil), list...)
	}
	for _, cat := range Categories {
		if len(c.templates[cat]) > 0 {
			c.baseline = cat
			break
		}
	}
	if c.baseline == "" {
		return nil, errors.New("catalog has no templates at all")
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog. It panics on a broken data
// table, which can only happen from a programming error in builtinTemplates.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinTemplates)
	if err != nil {
		panic(fmt.Sprintf("engine: builtin catalog is invalid: %v", err))
	}
	return c
}

// TemplatesFor returns the templates of a category. The returned slice must
// not be mutated.
func (c *Catalog) TemplatesFor(cat Category) []Template {
	return c.templates[cat]
}

// Pick draws a random template from the category. Returns ErrCatalogGap when
// the category is unpopulated; the caller decides the fallback policy.
func (c *Catalog) Pick(cat Category, rng *rand.Rand) (Template, error) {
	list := c.templates[cat]
	if len(list) == 0 {
		return Template{}, fmt.Errorf("%w: %s", ErrCatalogGap, cat)
	}
	return pick(rng, list), nil
}

// Baseline returns the fallback category used when a requested category has
// no templates.
func (c *Catalog) Baseline() Category {
	return c.baseline
}

// PopulatedStats reports how many templates each category actually carries.
// Categories absent from the map have zero templates.
func (c *Catalog) PopulatedStats() map[Category]int {
	stats := make(map[Category]int, len(c.templates))
	for cat, list := range c.templates {
		if len(list) > 0 {
			stats[cat] = len(list)
		}
	}
	return stats
}
