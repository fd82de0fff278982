package catalog

// PantryStaples are the assumed-free items recipes may reference without
// listing. Grouped for display.
type PantryStaples struct {
	Basics      []string
	Condiments  []string
	Sweeteners  []string
	DriedSpices []string
	Baking      []string
	Liquids     []string
}

// MasterList is the one-trip shopping list covering every recipe in the
// catalog.
type MasterList struct {
	Proteins           []string
	PairingIngredients []string
	UpgradeBases       []string
	EstimatedCost      string
}

// Staples returns the free pantry staples list.
func Staples() PantryStaples {
	return PantryStaples{
		Basics:      []string{"salt", "black pepper", "cooking oil (vegetable, canola, or olive)", "butter"},
		Condiments:  []string{"ketchup", "mustard (yellow)", "mayonnaise", "soy sauce", "hot sauce (Tabasco/Frank's/Sriracha)"},
		Sweeteners:  []string{"sugar", "honey"},
		DriedSpices: []string{"garlic powder", "onion powder", "paprika", "Italian seasoning", "chili powder", "cumin"},
		Baking:      []string{"all-purpose flour", "baking powder"},
		Liquids:     []string{"chicken or beef bouillon cubes", "vinegar (white or apple cider)"},
	}
}

// ShoppingMasterList returns the one-trip master shopping list.
func ShoppingMasterList() MasterList {
	return MasterList{
		Proteins: []string{
			"1 pack boneless skinless chicken breasts (1-1.5 lbs)",
			"1 lb ground beef (80/20)",
			"1 dozen large eggs",
			"2-3 cans chunk light tuna",
			"1 pack regular sliced bacon",
		},
		PairingIngredients: []string{
			"1 box instant/minute rice",
			"1 bag frozen broccoli",
			"1 bag frozen mixed vegetables or peas/carrots",
			"1 pack flour tortillas (large)",
			"1 bag shredded Mexican cheese blend",
			"1 pack American cheese slices",
			"1 box spaghetti or penne",
			"1 jar marinara sauce",
			"1 pack hamburger buns",
			"1 loaf sandwich bread",
			"1 bottle BBQ sauce",
			"2-3 ripe bananas",
			"1 container quick oats",
			"1 tomato",
			"1 bunch green onions",
		},
		UpgradeBases: []string{
			"2-3 packs instant ramen",
			"2 cans Campbell's soup (cream of mushroom + tomato)",
			"2 boxes Kraft Mac & Cheese",
			"2 cans black beans",
		},
		EstimatedCost: "$45-65 depending on region and store",
	}
}
