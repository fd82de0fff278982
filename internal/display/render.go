package display

import (
	"fmt"
	"strings"

	"github.com/GitHubUser106/magic-meal/internal/catalog"
	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/grocery"
)

// RecipeCard renders the full detail view of one recipe.
func RecipeCard(r domain.Recipe, ctx domain.RecipeContext, saved, onList bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", r.Emoji, r.Name)
	if saved {
		title += " " + savedStyle.Render("♥")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	var meta []string
	if group := ctx.GroupName(); group != "" {
		meta = append(meta, group)
	}
	if r.CookTime != "" {
		meta = append(meta, r.CookTime)
	}
	if r.Difficulty != "" {
		meta = append(meta, r.Difficulty)
	}
	if r.Servings > 0 {
		meta = append(meta, fmt.Sprintf("serves %d", r.Servings))
	}
	if len(meta) > 0 {
		b.WriteString(metaStyle.Render(strings.Join(meta, "  ·  ")))
		b.WriteString("\n")
	}
	if onList {
		b.WriteString(secondaryStyle.Render("on your shopping list"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString(primaryStyle.Render("  • " + ing))
		b.WriteString("\n")
	}
	if len(r.Equipment) > 0 {
		b.WriteString(secondaryStyle.Render("  equipment: " + strings.Join(r.Equipment, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Steps"))
	b.WriteString("\n")
	for i, step := range r.Steps {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}

	if len(r.ProTips) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Pro tips"))
		b.WriteString("\n")
		for _, tip := range r.ProTips {
			b.WriteString(secondaryStyle.Render("  · " + tip))
			b.WriteString("\n")
		}
	}
	if r.Rationale != "" {
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("Why these pairings: " + r.Rationale))
		b.WriteString("\n")
	}
	return b.String()
}

// Overview renders the explore screen: proteins split into meat and
// meat-free, then the upgrade bases, each with its recipe lineup.
func Overview(meat, veggie []domain.Protein, bases []domain.UpgradeBase) string {
	var b strings.Builder

	if len(meat) > 0 {
		b.WriteString(sectionStyle.Render("Proteins"))
		b.WriteString("\n")
		writeProteins(&b, meat)
	}
	if len(veggie) > 0 {
		b.WriteString(sectionStyle.Render("Meat-free"))
		b.WriteString("\n")
		writeProteins(&b, veggie)
	}
	if len(bases) > 0 {
		b.WriteString(sectionStyle.Render("Doctor it up"))
		b.WriteString("\n")
		for _, base := range bases {
			b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s", base.Emoji, base.Name)))
			b.WriteString("\n")
			for _, r := range base.Recipes {
				writeRecipeLine(&b, r)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(secondaryStyle.Render("magicmeal recipe <id> for details  ·  magicmeal cook <id> to start"))
	b.WriteString("\n")
	return b.String()
}

func writeProteins(b *strings.Builder, proteins []domain.Protein) {
	for _, p := range proteins {
		b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s", p.Emoji, p.Name)))
		b.WriteString("\n")
		if p.BuyingTip != "" {
			b.WriteString(secondaryStyle.Render("    buy: " + p.BuyingTip))
			b.WriteString("\n")
		}
		for _, r := range p.Recipes {
			writeRecipeLine(b, r)
		}
	}
	b.WriteString("\n")
}

func writeRecipeLine(b *strings.Builder, r domain.Recipe) {
	b.WriteString(primaryStyle.Render(fmt.Sprintf("    %s %s", r.Emoji, r.Name)))
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  (%s)  %s", r.CookTime, r.ID)))
	b.WriteString("\n")
}

// RecipeList renders a flat result set (search, quick picks, time filter,
// saved recipes) with one line per recipe.
func RecipeList(title string, recipes []domain.Recipe) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	if len(recipes) == 0 {
		b.WriteString(secondaryStyle.Render("  nothing matched"))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range recipes {
		writeRecipeLine(&b, r)
	}
	return b.String()
}

// ShoppingList renders the grouped list: custom items first, then one
// section per store category in aisle order, with the to-buy badge on top.
func ShoppingList(g grocery.Grouped, unchecked int) string {
	var b strings.Builder

	total := len(g.Custom)
	for _, s := range g.Sections {
		total += len(s.Items)
	}
	if total == 0 {
		b.WriteString(secondaryStyle.Render("Your shopping list is empty. Add a recipe with: magicmeal list add <id>"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(sectionStyle.Render("Shopping list"))
	b.WriteString(badgeStyle.Render(fmt.Sprintf("  %d to buy", unchecked)))
	b.WriteString("\n\n")

	if len(g.Custom) > 0 {
		b.WriteString(titleStyle.Render("  📝 Your items"))
		b.WriteString("\n")
		for _, item := range g.Custom {
			writeItemLine(&b, item, false)
		}
		b.WriteString("\n")
	}
	for _, section := range g.Sections {
		b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s", section.Info.Emoji, section.Info.Label)))
		b.WriteString("\n")
		for _, item := range section.Items {
			writeItemLine(&b, item, true)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeItemLine(b *strings.Builder, item domain.ShoppingItem, showSource bool) {
	mark := "☐"
	style := primaryStyle
	if item.Checked {
		mark = "☑"
		style = checkedStyle
	}
	b.WriteString(style.Render(fmt.Sprintf("    %s %s", mark, item.Ingredient)))
	if showSource {
		b.WriteString(secondaryStyle.Render("  · " + item.RecipeName))
	}
	b.WriteString("\n")
}

// PrefsSummary renders the stored preferences.
func PrefsSummary(p domain.Preferences) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Preferences"))
	b.WriteString("\n")
	if !p.Onboarded {
		b.WriteString(secondaryStyle.Render("  not onboarded yet: run magicmeal prefs onboard"))
		b.WriteString("\n")
	}
	b.WriteString(primaryStyle.Render("  dietary:  " + string(p.Dietary)))
	b.WriteString("\n")
	b.WriteString(primaryStyle.Render(fmt.Sprintf("  household: %d", p.HouseholdSize)))
	b.WriteString("\n")
	b.WriteString(primaryStyle.Render("  comfort:  " + string(p.CookingComfort)))
	b.WriteString("\n")
	return b.String()
}

// Staples renders the free pantry staples reference.
func Staples(s catalog.PantryStaples) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Pantry staples (assumed free)"))
	b.WriteString("\n")
	writeStapleGroup(&b, "Basics", s.Basics)
	writeStapleGroup(&b, "Condiments", s.Condiments)
	writeStapleGroup(&b, "Sweeteners", s.Sweeteners)
	writeStapleGroup(&b, "Dried spices", s.DriedSpices)
	writeStapleGroup(&b, "Baking", s.Baking)
	writeStapleGroup(&b, "Liquids", s.Liquids)
	return b.String()
}

func writeStapleGroup(b *strings.Builder, label string, items []string) {
	b.WriteString(titleStyle.Render("  " + label))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(primaryStyle.Render("    • " + item))
		b.WriteString("\n")
	}
}

// MasterShoppingList renders the one-trip list covering every recipe.
func MasterShoppingList(m catalog.MasterList) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("One-trip master list"))
	b.WriteString("\n")
	writeStapleGroup(&b, "Proteins", m.Proteins)
	writeStapleGroup(&b, "Pairing ingredients", m.PairingIngredients)
	writeStapleGroup(&b, "Upgrade bases", m.UpgradeBases)
	b.WriteString(secondaryStyle.Render("  estimated cost: " + m.EstimatedCost))
	b.WriteString("\n")
	return b.String()
}
