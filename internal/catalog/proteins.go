package catalog

import "github.com/GitHubUser106/magic-meal/internal/domain"

// builtinProteins returns the protein groupings in display order. Order is
// meaningful: AllRecipes flattens in this order.
func builtinProteins() []domain.Protein {
	return []domain.Protein{
		chicken(),
		groundBeef(),
		eggs(),
		cannedTuna(),
		bacon(),
	}
}

func chicken() domain.Protein {
	return domain.Protein{
		ID:          "chicken",
		Name:        "Chicken",
		Emoji:       "🍗",
		Category:    "fresh",
		WhyIncluded: "#1 protein in America at 43% market share.",
		BuyingTip:   "Boneless skinless chicken breast or thighs. Pre-trimmed. About $3-5/lb.",
		StorageTip:  "Use within 2 days of buying, or freeze.",
		Recipes: []domain.Recipe{
			{
				ID:          "chicken-rice-broccoli",
				Name:        "One-Pan Chicken, Rice & Broccoli",
				Emoji:       "🍗",
				Ingredients: []string{"chicken breast", "instant/minute rice", "frozen broccoli"},
				Rationale:   "Rice is a top-5 pantry staple in NA. Frozen broccoli is the #1 frozen vegetable purchased. This is the classic American meal-prep combo.",
				CookTime:    "25 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"large skillet with lid"},
				Servings:    2,
				Steps: []string{
					"Cut 2 chicken breasts into bite-sized cubes. Season with salt, pepper, and garlic powder.",
					"Heat oil in a large skillet over medium-high heat. Cook chicken pieces 5-6 minutes, stirring occasionally, until cooked through (no pink inside). Remove to a plate.",
					"In the same skillet, add 1 cup instant rice, 1 cup water, and a pinch of salt. Stir.",
					"Pour 2 cups frozen broccoli on top of the rice. Do NOT stir.",
					"Cover with lid. Reduce heat to low. Cook 10 minutes.",
					"Remove lid. Fluff rice with a fork. Add chicken back in. Stir everything together.",
					"Optional: drizzle with soy sauce or squeeze of hot sauce.",
				},
				ProTips: []string{
					"If using regular long-grain rice, increase water to 2 cups and cook time to 20 minutes.",
					"Chicken thighs are more forgiving than breasts — harder to overcook.",
				},
			},
			{
				ID:          "chicken-tortilla-cheese",
				Name:        "Chicken Quesadillas",
				Emoji:       "🌮",
				Ingredients: []string{"chicken breast", "flour tortillas (large)", "shredded Mexican cheese blend"},
				Rationale:   "Tortillas are a top-10 grocery item. Shredded cheese is in 82% of households. Quesadillas are the quintessential lazy-cook meal.",
				CookTime:    "15 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"large skillet"},
				Servings:    2,
				Steps: []string{
					"Slice 1 chicken breast into very thin strips. Season with salt, pepper, chili powder, and cumin.",
					"Heat oil in skillet over medium-high. Cook chicken strips 4-5 minutes until done. Remove to plate and roughly chop.",
					"Wipe skillet. Place 1 large tortilla flat in skillet over medium heat.",
					"Sprinkle a generous handful of shredded cheese on one half of the tortilla. Add chicken on top of cheese. Add more cheese on top of chicken.",
					"Fold tortilla in half. Press down gently with spatula.",
					"Cook 2-3 minutes per side until tortilla is golden and cheese is melted.",
					"Repeat with remaining tortillas. Cut into wedges.",
					"Serve with salsa, sour cream, or hot sauce if you have them.",
				},
				ProTips: []string{
					"Use a rotisserie chicken from the store deli to skip the cooking step entirely — just shred it up.",
					"Medium heat is key. Too high and the tortilla burns before cheese melts.",
				},
			},
			{
				ID:          "chicken-pasta-jarredsauce",
				Name:        "Chicken Pasta with Marinara",
				Emoji:       "🍝",
				Ingredients: []string{"chicken breast", "pasta (penne or rotini)", "jarred marinara sauce"},
				Rationale:   "Pasta is a top pantry staple. Jarred marinara sauce is a top-20 grocery item. Classic comfort food combo.",
				CookTime:    "25 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"pot", "large skillet"},
				Servings:    3,
				Steps: []string{
					"Boil a pot of salted water. Cook pasta according to box directions. Drain.",
					"While pasta cooks: cut 2 chicken breasts into bite-sized pieces. Season with salt, pepper, garlic powder, and Italian seasoning.",
					"Heat oil in skillet over medium-high. Cook chicken 6-7 minutes until cooked through.",
					"Pour half a jar of marinara sauce into the skillet with the chicken. Stir. Let simmer 3 minutes.",
					"Add drained pasta to the skillet. Toss everything together.",
					"Optional: top with parmesan cheese if you have it.",
				},
				ProTips: []string{
					"Save a cup of pasta water before draining — add a splash if the dish seems dry.",
					"This is even faster with pre-cooked frozen grilled chicken strips from the freezer section.",
				},
			},
			{
				ID:          "chicken-bbqsauce-buns",
				Name:        "BBQ Chicken Sandwiches",
				Emoji:       "🥪",
				Ingredients: []string{"chicken breast", "BBQ sauce (bottle)", "hamburger or brioche buns"},
				Rationale:   "BBQ sauce is a top-5 condiment in America. Buns are a bread aisle staple. This mimics pulled chicken BBQ with zero effort.",
				CookTime:    "20 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot with lid or slow cooker"},
				Servings:    4,
				Steps: []string{
					"Place 2-3 chicken breasts in a pot. Pour enough BBQ sauce to mostly cover them (about 1 cup).",
					"Add a splash of water (1/4 cup). Cover with lid.",
					"Cook on medium-low heat for 15-18 minutes until chicken is cooked through (no pink when you cut the thickest piece).",
					"Use two forks to shred the chicken right in the pot. Stir into the sauce.",
					"Pile onto buns. Done.",
					"SLOW COOKER VERSION: Same thing but cook on LOW for 4-6 hours or HIGH for 2-3 hours.",
				},
				ProTips: []string{
					"The slow cooker version is the ultimate set-and-forget meal. Start it before work.",
					"Top with coleslaw from the deli section if you want to get fancy.",
				},
			},
		},
	}
}

func groundBeef() domain.Protein {
	return domain.Protein{
		ID:          "ground-beef",
		Name:        "Ground Beef",
		Emoji:       "🥩",
		Category:    "fresh",
		WhyIncluded: "#2 protein in America at 36% market share. Most affordable beef cut at ~$6/lb.",
		BuyingTip:   "80/20 ground beef (80% lean) is the sweet spot for flavor and price. 1 lb feeds 3-4 people.",
		StorageTip:  "Use within 2 days or freeze. Thaw in fridge overnight.",
		Recipes: []domain.Recipe{
			{
				ID:          "beef-pasta-jarredsauce",
				Name:        "Spaghetti with Meat Sauce",
				Emoji:       "🍝",
				Ingredients: []string{"ground beef", "spaghetti", "jarred marinara sauce"},
				Rationale:   "The single most iconic easy American dinner. Spaghetti + jarred sauce are in nearly every pantry.",
				CookTime:    "20 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"pot", "large skillet"},
				Servings:    4,
				Steps: []string{
					"Boil a big pot of salted water. Cook spaghetti per box directions. Drain.",
					"While pasta cooks: crumble 1 lb ground beef into a skillet over medium-high heat.",
					"Cook beef 6-8 minutes, breaking it into small pieces with a spoon, until no longer pink. Drain fat if there is a lot (tilt pan, spoon it out).",
					"Season beef with salt, pepper, garlic powder, and Italian seasoning.",
					"Pour in half to full jar of marinara sauce. Stir. Let simmer 5 minutes.",
					"Serve sauce over spaghetti.",
				},
				ProTips: []string{
					"A little sugar (1/2 tsp) in the sauce cuts acidity. Many jarred sauces already have it.",
					"Save pasta water — a splash loosens up the sauce perfectly.",
				},
			},
			{
				ID:          "beef-tortilla-cheese",
				Name:        "Beef Tacos",
				Emoji:       "🌮",
				Ingredients: []string{"ground beef", "taco shells or flour tortillas", "shredded cheddar or Mexican blend cheese"},
				Rationale:   "Tacos are the #1 most searched easy dinner in NA. Taco shells and shredded cheese are grocery staples.",
				CookTime:    "15 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    4,
				Steps: []string{
					"Crumble 1 lb ground beef into a skillet over medium-high heat. Cook 6-8 minutes until browned. Drain excess fat.",
					"Season with chili powder (2 tsp), cumin (1 tsp), garlic powder (1 tsp), salt, and pepper. Stir.",
					"Add 1/4 cup water. Stir and let simmer 2-3 minutes until it thickens slightly.",
					"Warm taco shells in oven (325°F, 5 min) or microwave tortillas 15 seconds each.",
					"Fill shells with beef. Top with cheese.",
					"Add whatever else you have: salsa, sour cream, hot sauce, lettuce, tomato.",
				},
				ProTips: []string{
					"Buy a $1 packet of taco seasoning to replace the individual spices if you want. That becomes a pantry staple.",
					"Soft flour tortillas are more forgiving than hard taco shells (which break).",
				},
			},
			{
				ID:          "beef-buns-cheese",
				Name:        "Smash Burgers",
				Emoji:       "🍔",
				Ingredients: []string{"ground beef", "hamburger buns", "American cheese slices or cheddar slices"},
				Rationale:   "Burgers are the most iconic American meal. Buns and cheese slices are always at the store. This method needs zero skill.",
				CookTime:    "10 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    4,
				Steps: []string{
					"Divide 1 lb ground beef into 4 balls (about the size of a golf ball for smash burgers, or tennis ball for thick patties).",
					"Heat skillet on HIGH heat with a thin coat of oil. Let it get really hot.",
					"Place a ball on the skillet. Use a spatula to SMASH it flat (press hard for 5 seconds). Season top with salt and pepper.",
					"Cook 2-3 minutes until edges are crispy and brown. Flip.",
					"Immediately place a cheese slice on top. Cook 1-2 more minutes.",
					"Place on bun. Repeat with remaining patties.",
					"Top with ketchup, mustard, pickles, whatever you like.",
				},
				ProTips: []string{
					"The smash technique gives you crispy edges like a diner burger. High heat is the secret.",
					"Don't press the burger AFTER you flip — only smash once at the start, or you squeeze out the juice.",
				},
			},
			{
				ID:          "beef-rice-frozenveg",
				Name:        "Beef & Rice Skillet",
				Emoji:       "🍚",
				Ingredients: []string{"ground beef", "instant/minute rice", "frozen mixed vegetables"},
				Rationale:   "Rice and frozen veggies are both top-10 pantry/freezer staples. This is the classic budget one-pan dinner.",
				CookTime:    "20 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"large skillet with lid"},
				Servings:    3,
				Steps: []string{
					"Brown 1 lb ground beef in a large skillet over medium-high heat, 6-8 minutes. Drain fat.",
					"Season with salt, pepper, garlic powder, and onion powder.",
					"Add 1 cup instant rice and 1 cup water (or beef bouillon). Stir.",
					"Pour 2 cups frozen mixed vegetables on top.",
					"Cover. Reduce heat to low. Cook 10 minutes.",
					"Remove lid. Fluff and stir everything together.",
					"Hit it with soy sauce or hot sauce to taste.",
				},
				ProTips: []string{
					"A splash of soy sauce at the end turns this into quasi-fried rice.",
					"Frozen stir-fry vegetable blends work great here too.",
				},
			},
		},
	}
}

func eggs() domain.Protein {
	return domain.Protein{
		ID:          "eggs",
		Name:        "Eggs",
		Emoji:       "🥚",
		Category:    "fresh",
		WhyIncluded: "Bought by 60% of all US households. Cheapest protein per gram. Most versatile ingredient in existence.",
		BuyingTip:   "Large eggs, any brand. About $3-6/dozen depending on the bird flu situation.",
		StorageTip:  "Keep refrigerated. Good for 3-5 weeks past purchase.",
		Recipes: []domain.Recipe{
			{
				ID:          "eggs-bread-cheese",
				Name:        "Egg & Cheese Sandwich",
				Emoji:       "🍳",
				Ingredients: []string{"eggs", "sandwich bread or English muffins", "American cheese slices or cheddar slices"},
				Rationale:   "Bread is a $10 billion/year grocery item in the US. Cheese is in 82% of households. This is the fastest hot meal in existence.",
				CookTime:    "5 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    1,
				Steps: []string{
					"Heat a skillet over medium heat with a little butter.",
					"Crack 2 eggs into the skillet. Break the yolks with a fork or leave them whole — your call.",
					"Season with salt and pepper.",
					"Cook about 2 minutes. Flip eggs (or don't — fold them over instead).",
					"Place cheese slice on top immediately. Cook 30 more seconds until cheese starts melting.",
					"Toast bread or English muffin while eggs cook.",
					"Slide eggs and cheese onto toast. Add ketchup or hot sauce if you want.",
				},
				ProTips: []string{
					"Medium heat is key — too hot and the eggs get rubbery.",
					"For a 'diner-style' egg: crack egg, immediately break yolk and swirl it around, flip once. Fast and even.",
				},
			},
			{
				ID:          "eggs-tortilla-cheese",
				Name:        "Breakfast Burritos",
				Emoji:       "🌯",
				Ingredients: []string{"eggs", "flour tortillas (large)", "shredded Mexican cheese blend"},
				Rationale:   "Tortillas + cheese = quesadilla territory. Add scrambled eggs and you have the most popular grab-and-go breakfast in America. Works for dinner too.",
				CookTime:    "10 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    2,
				Steps: []string{
					"Crack 4 eggs into a bowl. Add a pinch of salt and pepper. Beat with a fork until combined.",
					"Heat butter in a skillet over medium-low heat.",
					"Pour eggs in. Let them sit 30 seconds, then gently push/stir them with a spatula. Repeat until eggs are just barely set (slightly wet-looking is perfect — they keep cooking off heat).",
					"Remove eggs to a plate.",
					"Warm tortillas in the microwave (15 seconds) or on the skillet (10 seconds each side).",
					"Lay tortilla flat. Add scrambled eggs down the center. Top with a generous handful of shredded cheese.",
					"Fold bottom up, then fold sides in to make a burrito.",
					"Optional: add salsa, hot sauce, or sour cream.",
				},
				ProTips: []string{
					"Low and slow is the secret to creamy scrambled eggs. Don't rush them on high heat.",
					"Make a batch, wrap individually in foil, freeze. Microwave 90 seconds for breakfast all week.",
				},
			},
			{
				ID:          "eggs-rice-soysauce",
				Name:        "Egg Fried Rice",
				Emoji:       "🍚",
				Ingredients: []string{"eggs", "instant rice (or leftover rice)", "frozen peas and carrots mix"},
				Rationale:   "Rice is a pantry staple, soy sauce is free (pantry staple). Frozen peas/carrots are a freezer door classic. This is the cheapest delicious meal you can make.",
				CookTime:    "15 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"large skillet or pot"},
				Servings:    2,
				Steps: []string{
					"Cook 1 cup instant rice according to package. Spread on a plate to cool slightly (or use leftover rice — even better).",
					"Heat oil in a large skillet over HIGH heat. This needs to be hot.",
					"Add 1 cup frozen peas and carrots. Stir-fry 2-3 minutes until thawed and lightly cooked.",
					"Push veggies to one side. Crack 2-3 eggs into the empty side. Scramble them quickly with your spatula.",
					"Before eggs are fully set, add rice on top. Stir everything together vigorously.",
					"Add 2-3 tablespoons soy sauce. Stir-fry another 1-2 minutes.",
					"Season with pepper. Optional: drizzle sesame oil or hot sauce.",
				},
				ProTips: []string{
					"Day-old rice from the fridge makes MUCH better fried rice than fresh. The drier the better.",
					"High heat is essential. If your pan isn't sizzling, it's not hot enough.",
					"Keep everything moving in the pan — fried rice should never sit still.",
				},
			},
			{
				ID:          "eggs-banana-oats",
				Name:        "3-Ingredient Banana Pancakes",
				Emoji:       "🥞",
				Ingredients: []string{"eggs", "ripe bananas", "quick oats"},
				Rationale:   "Bananas are the #1 most purchased grocery item in America. Oats are a top pantry staple. These pancakes went viral for a reason — no flour needed.",
				CookTime:    "15 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"skillet", "fork or bowl"},
				Servings:    2,
				Steps: []string{
					"In a bowl, mash 2 ripe bananas with a fork until smooth-ish (some lumps are fine).",
					"Add 2 eggs and 1/2 cup quick oats. Stir with fork until combined. Let sit 5 minutes so oats absorb moisture.",
					"Heat a skillet over medium-low heat with butter or oil.",
					"Pour small pancakes (about 3 inches wide). These are delicate — keep them small.",
					"Cook 2-3 minutes until edges look set and bottom is golden. Carefully flip. Cook 1-2 more minutes.",
					"Serve with honey, maple syrup, or just eat them plain — the banana makes them sweet.",
				},
				ProTips: []string{
					"The riper the banana, the sweeter the pancakes. Brown-spotted bananas are ideal.",
					"These are MUCH more delicate than regular pancakes. Small size + gentle flip is the move.",
					"Add a pinch of cinnamon to the batter for extra flavor.",
				},
			},
		},
	}
}

func cannedTuna() domain.Protein {
	return domain.Protein{
		ID:          "canned-tuna",
		Name:        "Canned Tuna",
		Emoji:       "🐟",
		Category:    "canned",
		WhyIncluded: "#3 seafood in America. The ultimate pantry protein — cheap, shelf-stable, ready to eat.",
		BuyingTip:   "Chunk light tuna in water is cheapest. Albacore/white tuna is pricier but milder. About $1-3/can.",
		StorageTip:  "Shelf-stable for years. Once opened, use within 2 days refrigerated.",
		Recipes: []domain.Recipe{
			{
				ID:          "tuna-bread-lettuce",
				Name:        "Classic Tuna Salad Sandwich",
				Emoji:       "🥪",
				Ingredients: []string{"canned tuna", "sandwich bread", "celery or lettuce"},
				Rationale:   "Bread + mayo (free pantry staple) + tuna is arguably the most common workday lunch in America. Zero cooking required.",
				CookTime:    "5 minutes (no cooking)",
				Difficulty:  "beginner",
				Equipment:   []string{"bowl", "fork", "can opener"},
				Servings:    2,
				Steps: []string{
					"Drain 2 cans of tuna. Dump into a bowl.",
					"Add 2-3 tablespoons mayo. Mix with fork, breaking up chunks.",
					"Season with salt, pepper, and a tiny squeeze of mustard if you want.",
					"If you have celery: chop a stalk finely and mix in for crunch. If not, skip it — still good.",
					"Pile onto bread. Add lettuce if you have it. Done.",
					"Optional: add a squeeze of lemon juice, diced pickles, or hot sauce.",
				},
				ProTips: []string{
					"Drain the tuna WELL — squeeze the can lid down to press out water. Wet tuna = soggy sandwich.",
					"Toast the bread for a major upgrade with zero extra effort.",
				},
			},
			{
				ID:          "tuna-pasta-mayo",
				Name:        "Tuna Pasta Salad",
				Emoji:       "🍝",
				Ingredients: []string{"canned tuna", "pasta (elbow macaroni or rotini)", "frozen peas"},
				Rationale:   "Pasta + canned tuna is a pantry-only meal millions of North Americans grew up on. Frozen peas add color and nutrition with zero prep.",
				CookTime:    "15 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"pot", "colander", "bowl"},
				Servings:    3,
				Steps: []string{
					"Boil salted water. Cook 2 cups pasta according to box directions.",
					"During the last 2 minutes of cooking, toss 1 cup frozen peas directly into the pasta water.",
					"Drain pasta and peas together. Rinse with cold water to cool them down.",
					"Dump into a bowl. Add 2 drained cans of tuna.",
					"Add 3-4 tablespoons mayo. Season with salt, pepper, and garlic powder.",
					"Mix well. Eat warm, room temp, or cold — all good.",
					"Optional: splash of vinegar or lemon juice brightens it up.",
				},
				ProTips: []string{
					"This is great as next-day leftovers straight from the fridge.",
					"Mustard (1 tsp) in the mayo dressing is a classic move.",
				},
			},
			{
				ID:          "tuna-crackers-cheese",
				Name:        "Tuna Melt Nachos",
				Emoji:       "🧀",
				Ingredients: []string{"canned tuna", "Ritz-style crackers or tortilla chips", "shredded cheddar cheese"},
				Rationale:   "Snack foods are bought by 76% of households. Crackers/chips + cheese + tuna = a snack-dinner that requires almost zero effort.",
				CookTime:    "8 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"baking sheet", "oven"},
				Servings:    2,
				Steps: []string{
					"Preheat oven to 375°F (or use the broiler for speed).",
					"Spread crackers or tortilla chips in a single layer on a baking sheet.",
					"Drain 1-2 cans of tuna. Mix with a spoonful of mayo and a pinch of pepper.",
					"Drop small spoonfuls of tuna mixture onto the crackers/chips.",
					"Sprinkle shredded cheese generously over everything.",
					"Bake 5-7 minutes until cheese is melted and bubbly (or broil 2-3 minutes — watch carefully).",
					"Optional: hit with hot sauce or a squeeze of mustard.",
				},
				ProTips: []string{
					"Broiler is faster but will burn things in seconds if you look away. Stay by the oven.",
					"Tortilla chips hold up better than crackers under the tuna and cheese.",
				},
			},
		},
	}
}

func bacon() domain.Protein {
	return domain.Protein{
		ID:          "bacon",
		Name:        "Bacon",
		Emoji:       "🥓",
		Category:    "fresh/processed",
		WhyIncluded: "Americans consume roughly 18 lbs of bacon per capita annually. Top-5 breakfast meat and a universal flavor enhancer.",
		BuyingTip:   "Regular sliced bacon, any brand. About $5-8 per pack.",
		StorageTip:  "Use within 7 days of opening, or freeze individual portions in bags.",
		Recipes: []domain.Recipe{
			{
				ID:          "bacon-eggs-cheese",
				Name:        "Bacon, Egg & Cheese (the BEC)",
				Emoji:       "🥓",
				Ingredients: []string{"bacon", "eggs", "American cheese slices or cheddar"},
				Rationale:   "The BEC is America's #1 breakfast sandwich. Eggs and cheese are both top-5 grocery purchases. This is diner food at home.",
				CookTime:    "10 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    2,
				Steps: []string{
					"Lay 4-6 strips of bacon in a cold skillet. Turn heat to medium.",
					"Cook bacon 4-5 minutes per side until crispy to your liking. Remove to a plate with paper towel.",
					"Pour out most of the bacon grease (leave a little in the pan).",
					"Crack 2-4 eggs into the same skillet. Season with salt and pepper. Cook 2-3 minutes.",
					"Place cheese slice on each egg. Cover skillet for 30 seconds to melt cheese.",
					"Serve on toasted bread, English muffins, or a bun. Layer: bread, egg with cheese, bacon, bread.",
				},
				ProTips: []string{
					"Starting bacon in a COLD pan is the trick. It renders the fat evenly and prevents burning.",
					"Save the bacon grease — cooking eggs in it is what makes diner eggs taste so good.",
				},
			},
			{
				ID:          "bacon-pasta-cream",
				Name:        "Poor Man's Carbonara",
				Emoji:       "🍝",
				Ingredients: []string{"bacon", "spaghetti or any long pasta", "parmesan cheese (grated, from the green can is fine)"},
				Rationale:   "Pasta is a universal pantry staple. Real carbonara is bacon + egg + cheese + pasta — and eggs are a free staple when paired with bacon here.",
				CookTime:    "20 minutes",
				Difficulty:  "easy",
				Equipment:   []string{"pot", "skillet", "bowl"},
				Servings:    2,
				Steps: []string{
					"Boil salted water. Cook pasta per box directions. SAVE 1 CUP OF PASTA WATER before draining.",
					"While pasta cooks: chop 6 strips of bacon into small pieces. Cook in skillet over medium heat until crispy, 5-6 minutes.",
					"In a bowl, whisk 2 eggs with a big handful of parmesan cheese (about 1/2 cup). Add pepper.",
					"When pasta is drained, add it to the skillet with the bacon (heat OFF or very low).",
					"Pour the egg-cheese mixture over the hot pasta. TOSS QUICKLY with tongs or a fork. The hot pasta cooks the eggs into a creamy sauce.",
					"Add splashes of reserved pasta water as needed to keep it saucy (not dry).",
					"Top with more parmesan and black pepper.",
				},
				ProTips: []string{
					"The pan must NOT be on high heat when you add the egg mixture — or you get scrambled eggs instead of creamy sauce.",
					"Toss, toss, toss. The constant motion is what creates the silky texture.",
					"This is based on real Italian carbonara. You just made restaurant food.",
				},
			},
			{
				ID:          "bacon-bread-tomato",
				Name:        "BLT (Bacon Lettuce Tomato)",
				Emoji:       "🥪",
				Ingredients: []string{"bacon", "sandwich bread (white, toasted)", "tomato"},
				Rationale:   "The BLT is one of the top-5 sandwiches in America. Tomatoes are a top-selling produce item.",
				CookTime:    "10 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"skillet"},
				Servings:    2,
				Steps: []string{
					"Cook 6-8 strips of bacon in a skillet over medium heat until crispy. Remove to paper towel.",
					"Toast bread.",
					"Slice tomato into thick rounds.",
					"Spread mayo on both slices of toast.",
					"Layer: toast, bacon, tomato, lettuce (if you have it), toast.",
					"Cut diagonally. This is mandatory for BLTs. Don't ask why.",
				},
				ProTips: []string{
					"Toasting the bread is non-negotiable. A BLT on soggy bread is a tragedy.",
					"Season the tomato slices with a pinch of salt — transforms them completely.",
					"Summer tomatoes make this sandwich. Winter tomatoes... still fine but not life-changing.",
				},
			},
		},
	}
}
