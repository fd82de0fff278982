package domain

// Sentinel recipe id and display name carried by user-typed shopping items.
const (
	CustomRecipeID   = "custom"
	CustomRecipeName = "Your item"
)

// ShoppingItem is one line on the shopping list. Identity fields (everything
// but Checked) never change after creation.
type ShoppingItem struct {
	Ingredient string `json:"ingredient"`
	RecipeID   string `json:"recipeId"`
	RecipeName string `json:"recipeName"`
	Checked    bool   `json:"checked"`
	IsCustom   bool   `json:"isCustom,omitempty"`
}
