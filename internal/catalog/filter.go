package catalog

import "github.com/GitHubUser106/magic-meal/internal/domain"

// Curated quick picks: popular, fast recipes surfaced on the home screen.
// Ids not present in the dataset are skipped, so the list can run ahead of
// the data.
var quickPickIDs = []string{
	"chicken-tortilla-cheese",
	"beef-buns-cheese",
	"eggs-bread-cheese",
	"cheese-grilled-tomato-soup",
	"chicken-honey-garlic",
	"tofu-stirfry-rice",
}

// Protein groupings considered meat-free for the veggie split.
var veggieProteinIDs = map[string]bool{
	"eggs":        true,
	"black-beans": true,
	"cheese":      true,
	"tofu":        true,
}

// Protein groupings excluded per dietary preference. Upgrade bases are
// never excluded; recipes that merely mention meat in an upgrade stay
// visible, matching how the protein-level split works in the app.
var dietExcluded = map[domain.Dietary]map[string]bool{
	domain.DietNoRedMeat: {
		"ground-beef": true,
		"bacon":       true,
	},
	domain.DietPescatarian: {
		"ground-beef": true,
		"bacon":       true,
		"chicken":     true,
	},
	domain.DietVegetarian: {
		"ground-beef": true,
		"bacon":       true,
		"chicken":     true,
		"canned-tuna": true,
	},
}

// CookTimeMinutes extracts the leading integer of a cook-time label, e.g.
// "25 minutes" -> 25 and "5 minutes (no cooking)" -> 5. Labels that do not
// start with a digit report ok=false and never match a time filter.
func CookTimeMinutes(label string) (minutes int, ok bool) {
	for _, ch := range label {
		if ch < '0' || ch > '9' {
			break
		}
		minutes = minutes*10 + int(ch-'0')
		ok = true
	}
	return minutes, ok
}

// MaxMinutes returns recipes whose cook-time label parses to at most n
// minutes, in catalog order.
func (c *Catalog) MaxMinutes(n int) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range c.flat {
		if m, ok := CookTimeMinutes(r.CookTime); ok && m <= n {
			out = append(out, r)
		}
	}
	return out
}

// QuickPicks returns the curated quick-pick recipes present in the dataset.
func (c *Catalog) QuickPicks() []domain.Recipe {
	var out []domain.Recipe
	for _, id := range quickPickIDs {
		if i, ok := c.byID[id]; ok {
			out = append(out, c.flat[i])
		}
	}
	return out
}

// ProteinsForDiet returns the protein groupings compatible with the given
// dietary preference, in declaration order.
func (c *Catalog) ProteinsForDiet(d domain.Dietary) []domain.Protein {
	excluded := dietExcluded[d]
	if len(excluded) == 0 {
		return c.Proteins()
	}
	var out []domain.Protein
	for _, p := range c.proteins {
		if !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// SplitVeggie partitions protein groupings into meat and meat-free.
func SplitVeggie(proteins []domain.Protein) (meat, veggie []domain.Protein) {
	for _, p := range proteins {
		if veggieProteinIDs[p.ID] {
			veggie = append(veggie, p)
		} else {
			meat = append(meat, p)
		}
	}
	return meat, veggie
}
