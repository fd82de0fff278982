package catalog

import "github.com/GitHubUser106/magic-meal/internal/domain"

// builtinBases returns the "doctor it up" groupings in display order.
func builtinBases() []domain.UpgradeBase {
	return []domain.UpgradeBase{
		ramenUpgrade(),
		cannedSoupUpgrade(),
		macAndCheeseUpgrade(),
		cannedBeansUpgrade(),
	}
}

func ramenUpgrade() domain.UpgradeBase {
	return domain.UpgradeBase{
		ID:          "ramen-upgrade",
		Name:        "Instant Ramen",
		Emoji:       "🍜",
		WhyIncluded: "One of the most purchased items in North America, especially for non-cooks. Dirt cheap and everywhere.",
		Recipes: []domain.Recipe{
			{
				ID:          "ramen-egg-greenonion",
				Name:        "Upgraded Ramen",
				Emoji:       "🍜",
				Ingredients: []string{"instant ramen", "egg", "green onions"},
				CookTime:    "8 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot"},
				Servings:    1,
				Steps: []string{
					"Cook ramen noodles per package directions with the seasoning packet. Keep it a bit soupy.",
					"While broth is simmering, crack an egg directly into the pot.",
					"Let egg cook 2 minutes without stirring for a poached egg, or stir it in for egg-drop style.",
					"Pour into a bowl. Chop green onions and scatter on top.",
					"Optional: drizzle soy sauce and/or hot sauce (Sriracha). Squeeze of sesame oil if you have it.",
				},
				ProTips: []string{
					"For a soft-boiled egg instead: boil 6.5 min, ice bath, peel, halve, place on top. Instagram-worthy.",
				},
			},
		},
	}
}

func cannedSoupUpgrade() domain.UpgradeBase {
	return domain.UpgradeBase{
		ID:          "canned-soup-upgrade",
		Name:        "Campbell's Soup",
		Emoji:       "🍲",
		WhyIncluded: "Most iconic canned soup brand in NA. Cream of mushroom and tomato are the top sellers.",
		Recipes: []domain.Recipe{
			{
				ID:          "soup-cheese-bread",
				Name:        "Tomato Soup & Grilled Cheese",
				Emoji:       "🍲",
				Ingredients: []string{"Campbell's tomato soup", "sandwich bread", "American or cheddar cheese slices"},
				CookTime:    "15 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot", "skillet"},
				Servings:    2,
				Steps: []string{
					"Heat soup in a pot per can directions. Use milk instead of water for creamier soup.",
					"While soup heats: butter one side of 2 bread slices each.",
					"Place one slice butter-side-down in a skillet over medium heat. Add cheese slice(s). Top with second slice, butter-side-up.",
					"Cook 3 minutes per side until golden and cheese is melted.",
					"Cut grilled cheese in half. Dip in soup. Experience pure comfort.",
				},
				ProTips: []string{
					"Stir a spoonful of butter into the hot soup. Fancy restaurant secret.",
				},
			},
			{
				ID:          "soup-chicken-rice-stovetop",
				Name:        "Creamy Chicken & Rice Soup",
				Emoji:       "🍲",
				Ingredients: []string{"Campbell's cream of mushroom soup", "canned chicken (or leftover chicken)", "instant rice"},
				CookTime:    "15 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"pot with lid"},
				Servings:    2,
				Steps: []string{
					"In a pot, combine 1 can cream of mushroom soup, 1 can water, and a pinch of garlic powder. Stir and bring to a simmer over medium heat.",
					"Drain 1 can of chicken and break into chunks. Add to the pot. Stir.",
					"Add 1 cup instant rice. Stir everything together.",
					"Cover with lid. Reduce heat to low. Cook 5 minutes.",
					"Remove lid. Stir. The rice will have absorbed the liquid into a thick, creamy soup.",
					"Season with salt, pepper, and a dash of hot sauce if you like.",
				},
				ProTips: []string{
					"Use milk instead of water for an even creamier result.",
					"Leftover rotisserie chicken works perfectly here — just shred and toss it in.",
					"A handful of frozen peas in step 3 adds color and nutrition.",
				},
			},
		},
	}
}

func macAndCheeseUpgrade() domain.UpgradeBase {
	return domain.UpgradeBase{
		ID:          "mac-and-cheese-upgrade",
		Name:        "Mac & Cheese",
		Emoji:       "🧀",
		WhyIncluded: "Over 1 million boxes sold daily in the US and Canada. One of the most iconic NA pantry items.",
		Recipes: []domain.Recipe{
			{
				ID:          "mac-hotdog",
				Name:        "Hot Dog Mac & Cheese",
				Emoji:       "🌭",
				Ingredients: []string{"boxed mac & cheese", "hot dogs"},
				CookTime:    "15 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot", "skillet"},
				Servings:    2,
				Steps: []string{
					"Make boxed mac & cheese per box directions.",
					"While pasta boils: slice 3-4 hot dogs into coins.",
					"In a separate skillet, cook hot dog slices over medium heat 3-4 minutes until lightly browned on the edges.",
					"Stir hot dogs into finished mac & cheese.",
					"Optional: squirt of mustard or ketchup on top.",
				},
			},
			{
				ID:          "mac-broccoli-chicken",
				Name:        "Loaded Chicken Broccoli Mac",
				Emoji:       "🧀",
				Ingredients: []string{"boxed mac & cheese", "frozen broccoli", "canned chicken (or rotisserie chicken)"},
				CookTime:    "18 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot"},
				Servings:    2,
				Steps: []string{
					"Make boxed mac & cheese per box directions.",
					"During the last 3 minutes of pasta boiling, add 1 cup frozen broccoli florets directly to the pasta water.",
					"Drain together. Make the cheese sauce as normal.",
					"Stir in 1 can of drained chicken (or 1 cup shredded rotisserie chicken).",
					"Season with pepper and garlic powder. Stir. Eat.",
				},
			},
		},
	}
}

func cannedBeansUpgrade() domain.UpgradeBase {
	return domain.UpgradeBase{
		ID:          "canned-beans-upgrade",
		Name:        "Canned Beans",
		Emoji:       "🫘",
		WhyIncluded: "Top-20 grocery item. Extremely cheap ($1/can), shelf-stable, and a solid protein/fiber source.",
		Recipes: []domain.Recipe{
			{
				ID:          "beans-rice-salsa",
				Name:        "Beans & Rice Bowl",
				Emoji:       "🫘",
				Ingredients: []string{"canned black beans", "instant rice", "jarred salsa"},
				CookTime:    "12 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot", "small pot"},
				Servings:    2,
				Steps: []string{
					"Cook 1 cup instant rice per package directions.",
					"While rice cooks: drain and rinse 1 can of black beans. Pour into a small pot.",
					"Add 2-3 big spoonfuls of salsa to the beans. Heat over medium, stirring, for 3-4 minutes.",
					"Season with cumin, chili powder, salt, and pepper.",
					"Scoop rice into a bowl. Top with saucy beans.",
					"Optional: top with shredded cheese, sour cream, hot sauce.",
				},
			},
		},
	}
}
