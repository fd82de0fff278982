// Package grocery maps free-text ingredient strings to grocery aisle
// categories and groups shopping list items for display.
package grocery

import "strings"

// Category is a grocery aisle bucket key.
type Category string

const (
	Produce    Category = "Produce"
	Meat       Category = "Meat & Seafood"
	Dairy      Category = "Dairy & Eggs"
	Frozen     Category = "Frozen"
	Bakery     Category = "Bread & Bakery"
	Canned     Category = "Canned Goods"
	Pantry     Category = "Pantry & Dry Goods"
	Condiments Category = "Condiments & Sauces"
	Other      Category = "Other"
)

// Info is display metadata for a category.
type Info struct {
	Label    string
	Emoji    string
	SortRank int
}

// categoryInfo drives display grouping order. Unknown categories sort after
// everything here (see SortRank).
var categoryInfo = map[Category]Info{
	Produce:    {Label: "Produce", Emoji: "🥬", SortRank: 0},
	Meat:       {Label: "Meat & Seafood", Emoji: "🥩", SortRank: 1},
	Dairy:      {Label: "Dairy & Eggs", Emoji: "🧀", SortRank: 2},
	Frozen:     {Label: "Frozen", Emoji: "🧊", SortRank: 3},
	Bakery:     {Label: "Bread & Bakery", Emoji: "🍞", SortRank: 4},
	Canned:     {Label: "Canned Goods", Emoji: "🥫", SortRank: 5},
	Pantry:     {Label: "Pantry & Dry Goods", Emoji: "🫙", SortRank: 6},
	Condiments: {Label: "Condiments & Sauces", Emoji: "🍯", SortRank: 7},
	Other:      {Label: "Other", Emoji: "🛒", SortRank: 8},
}

// rule is one (substring, category) entry in the match table.
type rule struct {
	substring string
	category  Category
}

// matchTable is scanned first to last; the first substring contained in the
// input wins. Order is load-bearing: specific entries ("chicken breast")
// must precede general ones ("chicken") or the specific rule is unreachable.
// Do not sort or dedupe this table.
var matchTable = []rule{
	// Produce
	{"banana", Produce},
	{"tomato", Produce},
	{"lettuce", Produce},
	{"celery", Produce},
	{"green onion", Produce},
	{"onion", Produce},
	{"garlic", Produce},

	// Meat & Seafood
	{"chicken breast", Meat},
	{"chicken", Meat},
	{"ground beef", Meat},
	{"bacon", Meat},
	{"hot dog", Meat},

	// Dairy & Eggs
	{"egg", Dairy},
	{"cheese", Dairy},
	{"cheddar", Dairy},
	{"american cheese", Dairy},
	{"parmesan", Dairy},
	{"butter", Dairy},
	{"milk", Dairy},

	// Frozen
	{"frozen broccoli", Frozen},
	{"frozen mixed", Frozen},
	{"frozen peas", Frozen},
	{"frozen", Frozen},

	// Bread & Bakery
	{"bread", Bakery},
	{"bun", Bakery},
	{"hamburger bun", Bakery},
	{"english muffin", Bakery},
	{"tortilla", Bakery},
	{"taco shell", Bakery},
	{"cracker", Bakery},
	{"tortilla chip", Bakery},

	// Canned Goods
	{"canned tuna", Canned},
	{"canned chicken", Canned},
	{"canned black bean", Canned},
	{"canned bean", Canned},
	{"campbell", Canned},
	{"cream of mushroom", Canned},
	{"tomato soup", Canned},

	// Pantry & Dry Goods
	{"instant rice", Pantry},
	{"rice", Pantry},
	{"pasta", Pantry},
	{"spaghetti", Pantry},
	{"penne", Pantry},
	{"rotini", Pantry},
	{"elbow macaroni", Pantry},
	{"ramen", Pantry},
	{"instant ramen", Pantry},
	{"mac & cheese", Pantry},
	{"oat", Pantry},
	{"flour", Pantry},

	// Condiments & Sauces
	{"marinara", Condiments},
	{"bbq sauce", Condiments},
	{"salsa", Condiments},
	{"soy sauce", Condiments},
	{"hot sauce", Condiments},
	{"mayo", Condiments},
	{"ketchup", Condiments},
	{"mustard", Condiments},
}

// Categorize maps an ingredient string to its grocery category: lower-case
// the input, scan the table in order, return the first match, fall back to
// Other.
func Categorize(ingredient string) Category {
	lower := strings.ToLower(ingredient)
	for _, r := range matchTable {
		if strings.Contains(lower, r.substring) {
			return r.category
		}
	}
	return Other
}

// InfoFor returns display metadata for a category. Unknown categories get
// the Other glyphs but a sort rank after every known category, so they
// render last.
func InfoFor(c Category) Info {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return Info{Label: string(c), Emoji: categoryInfo[Other].Emoji, SortRank: len(categoryInfo)}
}
