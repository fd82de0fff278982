// Package storage provides the durable key-value backends the stores
// persist through: one JSON file per key on disk, or an in-memory map for
// tests.
package storage

// Durable record keys. One logical record per key; the names are kept
// byte-for-byte stable so existing data directories keep working across
// releases.
const (
	KeyPreferences  = "magic_meal_preferences"
	KeySavedRecipes = "magic_meal_saved_recipes"
	KeyShoppingList = "magic_meal_shopping_list"

	// KeyLegacyChecklist predates the shopping list store. It is never
	// read; a factory wipe still deletes it so nothing is left behind.
	KeyLegacyChecklist = "magic_meal_checklist"
)

// AllKeys lists every durable key this application owns, legacy included.
// Used by the preference store's factory wipe.
var AllKeys = []string{
	KeyPreferences,
	KeySavedRecipes,
	KeyShoppingList,
	KeyLegacyChecklist,
}
