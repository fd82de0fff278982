package grocery

import (
	"sort"

	"github.com/GitHubUser106/magic-meal/internal/domain"
)

// Section is one display bucket of shopping items.
type Section struct {
	Category Category
	Info     Info
	Items    []domain.ShoppingItem
}

// Grouped is the derived, non-persisted display view of a shopping list.
type Grouped struct {
	Custom   []domain.ShoppingItem // user-typed items, leading section
	Sections []Section             // recipe-sourced items by category, rank order
}

// Group partitions items into custom and recipe-sourced, buckets the
// recipe-sourced ones by category, and orders buckets by sort rank with
// unmapped categories last. Insertion order is preserved inside every
// bucket and in the custom section.
func Group(items []domain.ShoppingItem) Grouped {
	var g Grouped
	buckets := make(map[Category][]domain.ShoppingItem)

	for _, item := range items {
		if item.IsCustom {
			g.Custom = append(g.Custom, item)
			continue
		}
		c := Categorize(item.Ingredient)
		buckets[c] = append(buckets[c], item)
	}

	for c, bucket := range buckets {
		g.Sections = append(g.Sections, Section{Category: c, Info: InfoFor(c), Items: bucket})
	}
	sort.SliceStable(g.Sections, func(i, j int) bool {
		return g.Sections[i].Info.SortRank < g.Sections[j].Info.SortRank
	})
	return g
}
