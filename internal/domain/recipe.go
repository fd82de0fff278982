// Package domain defines the core types and interfaces for magic-meal.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is one curated three-ingredient meal. Recipes are immutable once
// loaded and owned by exactly one grouping (a Protein or an UpgradeBase).
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"recipeName"`
	Emoji       string   `json:"emoji,omitempty"`
	Ingredients []string `json:"ingredients"`
	CookTime    string   `json:"cookTime"` // display label, e.g. "25 minutes"
	Difficulty  string   `json:"difficulty,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Servings    int      `json:"servings,omitempty"`
	Steps       []string `json:"instructions"` // execution order, 1-indexed for display
	ProTips     []string `json:"proTips,omitempty"`
	Rationale   string   `json:"whyThesePairings,omitempty"`
}

// Protein groups the recipes built around one primary protein.
type Protein struct {
	ID          string
	Name        string
	Emoji       string
	Category    string // "fresh", "canned", ...
	WhyIncluded string
	BuyingTip   string
	StorageTip  string
	Recipes     []Recipe
}

// UpgradeBase groups the "doctor it up" recipes built on a pantry staple.
type UpgradeBase struct {
	ID          string
	Name        string
	Emoji       string
	WhyIncluded string
	Recipes     []Recipe
}

// GroupKind tags which variant of grouping a recipe belongs to.
type GroupKind string

const (
	GroupProtein GroupKind = "protein"
	GroupBase    GroupKind = "base"
)

// RecipeContext is the reverse lookup result: the grouping that owns a
// recipe. Exactly one of Protein/Base is set, matching Kind.
type RecipeContext struct {
	Kind    GroupKind
	Protein *Protein
	Base    *UpgradeBase
}

// GroupName returns the display name of whichever grouping is set.
func (c RecipeContext) GroupName() string {
	if c.Kind == GroupProtein && c.Protein != nil {
		return c.Protein.Name
	}
	if c.Base != nil {
		return c.Base.Name
	}
	return ""
}
