package shopping

import (
	"testing"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

// fakeCatalog serves a fixed recipe set so tests control ingredient order.
type fakeCatalog struct {
	recipes []domain.Recipe
}

func (f *fakeCatalog) AllRecipes() []domain.Recipe { return f.recipes }

func (f *fakeCatalog) ByID(id string) (*domain.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) ContextOf(id string) (domain.RecipeContext, error) {
	return domain.RecipeContext{}, domain.ErrNotFound
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{recipes: []domain.Recipe{
		{
			ID:          "chicken-bbq-sandwich",
			Name:        "BBQ Chicken Sandwich",
			Ingredients: []string{"chicken breast", "bread", "bbq sauce"},
		},
		{
			ID:          "eggs-toast",
			Name:        "Eggs on Toast",
			Ingredients: []string{"eggs", "bread"},
		},
	}}
}

func newTestStore() *Store {
	return New(storage.NewMemoryBackend(logging.Nop()), testCatalog(), logging.Nop())
}

func TestLoadFirstRun(t *testing.T) {
	store := newTestStore()
	items, status := store.Load()
	if status != domain.LoadFirstRun {
		t.Fatalf("status = %v, want first-run", status)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestAddRecipePreservesIngredientOrder(t *testing.T) {
	store := newTestStore()
	store.Load()

	if err := store.AddRecipeIngredients("chicken-bbq-sandwich"); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := store.Items()
	want := []string{"chicken breast", "bread", "bbq sauce"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i].Ingredient != w {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Ingredient, w)
		}
		if items[i].RecipeID != "chicken-bbq-sandwich" {
			t.Errorf("items[%d].RecipeID = %q", i, items[i].RecipeID)
		}
		if items[i].RecipeName != "BBQ Chicken Sandwich" {
			t.Errorf("items[%d].RecipeName = %q", i, items[i].RecipeName)
		}
		if items[i].Checked {
			t.Errorf("items[%d] added checked", i)
		}
	}
}

func TestAddRecipeIsIdempotent(t *testing.T) {
	store := newTestStore()
	store.Load()

	for range 3 {
		if err := store.AddRecipeIngredients("chicken-bbq-sandwich"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if got := len(store.Items()); got != 3 {
		t.Fatalf("got %d items after repeated adds, want 3", got)
	}
}

func TestAddUnknownRecipeIsNoOp(t *testing.T) {
	store := newTestStore()
	store.Load()

	if err := store.AddRecipeIngredients("no-such-recipe"); err != nil {
		t.Fatalf("add unknown: %v", err)
	}
	if got := len(store.Items()); got != 0 {
		t.Fatalf("got %d items, want 0", got)
	}
}

func TestRemoveRecipe(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("chicken-bbq-sandwich")
	store.AddRecipeIngredients("eggs-toast")

	if err := store.RemoveRecipe("chicken-bbq-sandwich"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.HasRecipe("chicken-bbq-sandwich") {
		t.Fatal("recipe still on list after removal")
	}
	if !store.HasRecipe("eggs-toast") {
		t.Fatal("unrelated recipe removed")
	}
	if got := len(store.Items()); got != 2 {
		t.Fatalf("got %d items, want 2", got)
	}
}

func TestToggleCheckedUsesCompositeKey(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("chicken-bbq-sandwich")
	store.AddRecipeIngredients("eggs-toast")

	// Both recipes contribute "bread"; only one copy should flip.
	if err := store.ToggleChecked("bread", "eggs-toast"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	for _, item := range store.Items() {
		want := item.Ingredient == "bread" && item.RecipeID == "eggs-toast"
		if item.Checked != want {
			t.Errorf("%s/%s checked = %v, want %v",
				item.Ingredient, item.RecipeID, item.Checked, want)
		}
	}
}

func TestClearCheckedKeepsUnchecked(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("chicken-bbq-sandwich")
	store.AddRecipeIngredients("eggs-toast")

	store.ToggleChecked("bbq sauce", "chicken-bbq-sandwich")
	store.ToggleChecked("eggs", "eggs-toast")

	if err := store.ClearChecked(); err != nil {
		t.Fatalf("clear checked: %v", err)
	}

	items := store.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for _, item := range items {
		if item.Checked {
			t.Errorf("checked item %q survived ClearChecked", item.Ingredient)
		}
	}
}

func TestCustomItemPrependedAndTrimmed(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("eggs-toast")

	if err := store.AddCustomItem("  paper towels  "); err != nil {
		t.Fatalf("add custom: %v", err)
	}

	items := store.Items()
	if items[0].Ingredient != "paper towels" {
		t.Fatalf("items[0] = %q, want trimmed custom item first", items[0].Ingredient)
	}
	if !items[0].IsCustom {
		t.Fatal("custom item not flagged")
	}
	if items[0].RecipeID != domain.CustomRecipeID || items[0].RecipeName != domain.CustomRecipeName {
		t.Fatalf("custom item attributed to %q/%q", items[0].RecipeID, items[0].RecipeName)
	}
}

func TestBlankCustomItemIsNoOp(t *testing.T) {
	store := newTestStore()
	store.Load()

	if err := store.AddCustomItem("   "); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	if got := len(store.Items()); got != 0 {
		t.Fatalf("blank input added %d items", got)
	}
}

func TestRemoveCustomItemLeavesRecipeItems(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("eggs-toast")
	store.AddCustomItem("bread")

	if err := store.RemoveCustomItem("bread"); err != nil {
		t.Fatalf("remove custom: %v", err)
	}

	for _, item := range store.Items() {
		if item.IsCustom {
			t.Fatalf("custom %q still on list", item.Ingredient)
		}
	}
	// The recipe's own bread must survive.
	found := false
	for _, item := range store.Items() {
		if item.Ingredient == "bread" && item.RecipeID == "eggs-toast" {
			found = true
		}
	}
	if !found {
		t.Fatal("recipe-sourced bread removed by RemoveCustomItem")
	}
}

func TestUncheckedCount(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("chicken-bbq-sandwich")

	if got := store.UncheckedCount(); got != 3 {
		t.Fatalf("unchecked = %d, want 3", got)
	}
	store.ToggleChecked("bread", "chicken-bbq-sandwich")
	if got := store.UncheckedCount(); got != 2 {
		t.Fatalf("unchecked = %d, want 2", got)
	}
	store.ToggleChecked("bread", "chicken-bbq-sandwich")
	if got := store.UncheckedCount(); got != 3 {
		t.Fatalf("unchecked = %d after untoggle, want 3", got)
	}
}

func TestListSurvivesReload(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	catalog := testCatalog()

	store := New(backend, catalog, logging.Nop())
	store.Load()
	store.AddRecipeIngredients("eggs-toast")
	store.AddCustomItem("coffee")
	store.ToggleChecked("eggs", "eggs-toast")

	reloaded := New(backend, catalog, logging.Nop())
	items, status := reloaded.Load()
	if status != domain.Loaded {
		t.Fatalf("status = %v, want loaded", status)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items after reload, want 3", len(items))
	}
	if items[0].Ingredient != "coffee" || !items[0].IsCustom {
		t.Fatalf("items[0] = %+v, want custom coffee first", items[0])
	}
	for _, item := range items {
		if item.Ingredient == "eggs" && !item.Checked {
			t.Fatal("checked state lost across reload")
		}
	}
}

func TestCorruptListStartsEmpty(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	backend.Write(storage.KeyShoppingList, []byte("{not json"))

	store := New(backend, testCatalog(), logging.Nop())
	items, status := store.Load()
	if status != domain.LoadRecovered {
		t.Fatalf("status = %v, want recovered", status)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items from corrupt data", len(items))
	}
}

func TestClearAll(t *testing.T) {
	store := newTestStore()
	store.Load()
	store.AddRecipeIngredients("chicken-bbq-sandwich")
	store.AddCustomItem("milk")

	if err := store.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if got := len(store.Items()); got != 0 {
		t.Fatalf("got %d items after ClearAll", got)
	}
	if got := store.UncheckedCount(); got != 0 {
		t.Fatalf("unchecked = %d after ClearAll", got)
	}
}
