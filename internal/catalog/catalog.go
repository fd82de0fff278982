// Package catalog holds the static, hand-authored recipe dataset and the
// lookup helpers over it. The dataset is immutable after construction.
package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
)

// Compile-time interface check.
var _ domain.Catalog = (*Catalog)(nil)

// Catalog is the in-memory recipe dataset. Safe for concurrent reads; no
// writes exist after New returns.
type Catalog struct {
	proteins []domain.Protein
	bases    []domain.UpgradeBase
	flat     []domain.Recipe // declaration order: proteins first, then bases
	byID     map[string]int  // index into flat
	log      *zap.SugaredLogger
}

// New builds the catalog from the built-in dataset and verifies its
// integrity. A malformed dataset is an authoring defect, so New returns the
// error for main to treat as fatal rather than designing around it.
func New(log *zap.SugaredLogger) (*Catalog, error) {
	c := &Catalog{
		proteins: builtinProteins(),
		bases:    builtinBases(),
		byID:     make(map[string]int),
		log:      log,
	}

	for _, p := range c.proteins {
		c.flat = append(c.flat, p.Recipes...)
	}
	for _, b := range c.bases {
		c.flat = append(c.flat, b.Recipes...)
	}

	if err := c.verify(); err != nil {
		return nil, err
	}

	for i, r := range c.flat {
		c.byID[r.ID] = i
	}
	log.Debugw("catalog loaded", "proteins", len(c.proteins), "bases", len(c.bases), "recipes", len(c.flat))
	return c, nil
}

// verify checks that every recipe id is unique and belongs to exactly one
// grouping. Flat already concatenates every grouping's recipes, so a
// duplicate id is exactly a multi-grouping (or repeated) recipe.
func (c *Catalog) verify() error {
	seen := make(map[string]bool, len(c.flat))
	for _, r := range c.flat {
		if r.ID == "" {
			return fmt.Errorf("recipe %q has an empty id", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("recipe id %q appears in more than one grouping", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// Proteins returns the protein groupings in declaration order.
func (c *Catalog) Proteins() []domain.Protein { return c.proteins }

// Bases returns the upgrade-base groupings in declaration order.
func (c *Catalog) Bases() []domain.UpgradeBase { return c.bases }

// AllRecipes flattens every grouping's recipes into one list: groupings in
// declaration order, recipes within a grouping in declaration order. The
// result is stable across calls.
func (c *Catalog) AllRecipes() []domain.Recipe {
	out := make([]domain.Recipe, len(c.flat))
	copy(out, c.flat)
	return out
}

// ByID looks up a recipe. Returns domain.ErrNotFound for unknown ids so
// callers can render a not-found view instead of crashing.
func (c *Catalog) ByID(id string) (*domain.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		c.log.Debugw("recipe not found", "id", id)
		return nil, domain.ErrNotFound
	}
	r := c.flat[i]
	return &r, nil
}

// ContextOf returns the grouping that owns the recipe. First match is also
// the only match in a verified catalog.
func (c *Catalog) ContextOf(id string) (domain.RecipeContext, error) {
	for i := range c.proteins {
		for _, r := range c.proteins[i].Recipes {
			if r.ID == id {
				return domain.RecipeContext{Kind: domain.GroupProtein, Protein: &c.proteins[i]}, nil
			}
		}
	}
	for i := range c.bases {
		for _, r := range c.bases[i].Recipes {
			if r.ID == id {
				return domain.RecipeContext{Kind: domain.GroupBase, Base: &c.bases[i]}, nil
			}
		}
	}
	return domain.RecipeContext{}, domain.ErrNotFound
}

// Search returns recipes whose name or any ingredient contains the query,
// case-insensitively, in catalog order.
func (c *Catalog) Search(query string) []domain.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Recipe
	for _, r := range c.flat {
		if c.matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) matches(r domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}
