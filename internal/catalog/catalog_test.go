package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(logging.Nop())
	require.NoError(t, err)
	return c
}

func TestEveryRecipeResolvesToItself(t *testing.T) {
	c := newTestCatalog(t)

	all := c.AllRecipes()
	require.NotEmpty(t, all)

	for _, r := range all {
		got, err := c.ByID(r.ID)
		require.NoError(t, err, "recipe %s", r.ID)
		assert.Equal(t, r, *got)

		ctx, err := c.ContextOf(r.ID)
		require.NoError(t, err, "recipe %s", r.ID)

		// The owning grouping actually contains the recipe.
		var owned []domain.Recipe
		switch ctx.Kind {
		case domain.GroupProtein:
			require.NotNil(t, ctx.Protein)
			owned = ctx.Protein.Recipes
		case domain.GroupBase:
			require.NotNil(t, ctx.Base)
			owned = ctx.Base.Recipes
		}
		found := false
		for _, o := range owned {
			if o.ID == r.ID {
				found = true
			}
		}
		assert.True(t, found, "grouping %s does not contain %s", ctx.GroupName(), r.ID)
	}
}

func TestFlattenOrderIsDeclarationOrder(t *testing.T) {
	c := newTestCatalog(t)

	all := c.AllRecipes()
	// Proteins come first in declaration order, bases after.
	assert.Equal(t, "chicken-rice-broccoli", all[0].ID)
	assert.Equal(t, "beans-rice-salsa", all[len(all)-1].ID)

	// Stable across calls.
	assert.Equal(t, all, c.AllRecipes())
}

func TestByIDNotFound(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.ByID("no-such-recipe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = c.ContextOf("no-such-recipe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCookTimeMinutes(t *testing.T) {
	tests := []struct {
		label  string
		want   int
		wantOK bool
	}{
		{"25 minutes", 25, true},
		{"5 minutes (no cooking)", 5, true},
		{"8 minutes", 8, true},
		{"about an hour", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := CookTimeMinutes(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMaxMinutes(t *testing.T) {
	c := newTestCatalog(t)

	fast := c.MaxMinutes(10)
	require.NotEmpty(t, fast)
	for _, r := range fast {
		m, ok := CookTimeMinutes(r.CookTime)
		require.True(t, ok)
		assert.LessOrEqual(t, m, 10, "recipe %s", r.ID)
	}

	// Nothing cooks in zero minutes.
	assert.Empty(t, c.MaxMinutes(0))
}

func TestQuickPicksSkipUnknownIDs(t *testing.T) {
	c := newTestCatalog(t)

	picks := c.QuickPicks()
	require.NotEmpty(t, picks)
	// The curated list names some recipes the dataset doesn't carry; those
	// are skipped rather than erroring.
	for _, r := range picks {
		_, err := c.ByID(r.ID)
		assert.NoError(t, err)
	}
	assert.Less(t, len(picks), len(quickPickIDs))
}

func TestProteinsForDiet(t *testing.T) {
	c := newTestCatalog(t)

	ids := func(ps []domain.Protein) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	tests := []struct {
		diet domain.Dietary
		want []string
	}{
		{domain.DietNoPreference, []string{"chicken", "ground-beef", "eggs", "canned-tuna", "bacon"}},
		{domain.DietNoRedMeat, []string{"chicken", "eggs", "canned-tuna"}},
		{domain.DietPescatarian, []string{"eggs", "canned-tuna"}},
		{domain.DietVegetarian, []string{"eggs"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.diet), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.ProteinsForDiet(tt.diet)))
		})
	}
}

func TestSplitVeggie(t *testing.T) {
	c := newTestCatalog(t)

	meat, veggie := SplitVeggie(c.Proteins())
	require.Len(t, veggie, 1)
	assert.Equal(t, "eggs", veggie[0].ID)
	assert.Len(t, meat, 4)
}

func TestSearch(t *testing.T) {
	c := newTestCatalog(t)

	hits := c.Search("quesadilla")
	require.Len(t, hits, 1)
	assert.Equal(t, "chicken-tortilla-cheese", hits[0].ID)

	// Ingredient text matches too.
	hits = c.Search("marinara")
	assert.Len(t, hits, 2)

	assert.Empty(t, c.Search("   "))
	assert.Empty(t, c.Search("sushi"))
}
