// Package shopping implements the durable shopping list: an ordered
// collection of line items tied to source recipes or typed in by the user.
package shopping

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

// storedList is the durable JSON shape, kept compatible with existing data
// directories.
type storedList struct {
	Items []domain.ShoppingItem `json:"items"`
}

// Store is the shopping list. Recipe additions are idempotent per recipe
// id; only the Checked flag of an item ever mutates after creation. Every
// mutation persists the whole list synchronously. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	backend domain.Backend
	catalog domain.Catalog
	log     *zap.SugaredLogger
	items   []domain.ShoppingItem
}

// New creates a shopping list store. The catalog resolves recipe ids when
// ingredients are added in bulk.
func New(backend domain.Backend, catalog domain.Catalog, log *zap.SugaredLogger) *Store {
	return &Store{backend: backend, catalog: catalog, log: log}
}

// Load reads the durable list. Missing or corrupt data yields an empty
// list; no error is ever surfaced.
func (s *Store) Load() ([]domain.ShoppingItem, domain.LoadStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Read(storage.KeyShoppingList)
	if errors.Is(err, domain.ErrNotFound) {
		s.items = nil
		return nil, domain.LoadFirstRun
	}
	if err != nil {
		s.log.Warnw("shopping list unreadable, starting empty", "error", err)
		s.items = nil
		return nil, domain.LoadRecovered
	}

	var stored storedList
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.Warnw("shopping list corrupt, starting empty", "error", err)
		s.items = nil
		return nil, domain.LoadRecovered
	}
	s.items = stored.Items
	return s.copyItems(), domain.Loaded
}

// Items returns the current list in order.
func (s *Store) Items() []domain.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyItems()
}

// AddRecipeIngredients appends one unchecked item per ingredient of the
// recipe, in the recipe's ingredient order, then persists once for the
// whole batch. Adding a recipe already on the list is a no-op (membership
// is checked by recipe id, not ingredient text), as is an unknown recipe
// id — a stale id must not crash the list.
func (s *Store) AddRecipeIngredients(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasRecipe(recipeID) {
		s.log.Debugw("recipe already on list", "id", recipeID)
		return nil
	}

	recipe, err := s.catalog.ByID(recipeID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debugw("ignoring unknown recipe", "id", recipeID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up recipe %s: %w", recipeID, err)
	}

	next := s.copyItems()
	for _, ingredient := range recipe.Ingredients {
		next = append(next, domain.ShoppingItem{
			Ingredient: ingredient,
			RecipeID:   recipe.ID,
			RecipeName: recipe.Name,
		})
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	s.log.Infow("recipe added to list", "id", recipeID, "items", len(recipe.Ingredients))
	return nil
}

// RemoveRecipe removes every item sourced from the recipe and persists.
func (s *Store) RemoveRecipe(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterAndPersist(func(item domain.ShoppingItem) bool {
		return item.RecipeID != recipeID
	})
}

// HasRecipe reports whether any item was sourced from the recipe.
func (s *Store) HasRecipe(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasRecipe(recipeID)
}

// ToggleChecked flips the checked flag on the item matching both the
// ingredient text and the recipe id (the composite key — ingredient text
// alone is not unique across recipes) and persists.
func (s *Store) ToggleChecked(ingredient, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyItems()
	for i := range next {
		if next[i].Ingredient == ingredient && next[i].RecipeID == recipeID {
			next[i].Checked = !next[i].Checked
		}
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// ClearChecked removes every checked item and persists.
func (s *Store) ClearChecked() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterAndPersist(func(item domain.ShoppingItem) bool {
		return !item.Checked
	})
}

// ClearAll empties the list and persists.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(nil); err != nil {
		return err
	}
	s.items = nil
	return nil
}

// AddCustomItem prepends a user-typed item so the newest custom entries
// surface first. Blank input is a no-op. Duplicate custom entries are
// allowed.
func (s *Store) AddCustomItem(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.ShoppingItem, 0, len(s.items)+1)
	next = append(next, domain.ShoppingItem{
		Ingredient: trimmed,
		RecipeID:   domain.CustomRecipeID,
		RecipeName: domain.CustomRecipeName,
		IsCustom:   true,
	})
	next = append(next, s.items...)

	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	s.log.Debugw("custom item added", "text", trimmed)
	return nil
}

// RemoveCustomItem removes every custom item whose ingredient text exactly
// matches and persists. Recipe-sourced items with the same text stay.
func (s *Store) RemoveCustomItem(ingredient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterAndPersist(func(item domain.ShoppingItem) bool {
		return !(item.IsCustom && item.Ingredient == ingredient)
	})
}

// UncheckedCount counts items still to buy. Recomputed on demand.
func (s *Store) UncheckedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, item := range s.items {
		if !item.Checked {
			n++
		}
	}
	return n
}

func (s *Store) hasRecipe(recipeID string) bool {
	for _, item := range s.items {
		if item.RecipeID == recipeID {
			return true
		}
	}
	return false
}

// filterAndPersist keeps items passing the predicate. Caller holds the lock.
func (s *Store) filterAndPersist(keep func(domain.ShoppingItem) bool) error {
	next := make([]domain.ShoppingItem, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			next = append(next, item)
		}
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *Store) persist(items []domain.ShoppingItem) error {
	if items == nil {
		items = []domain.ShoppingItem{}
	}
	data, err := json.Marshal(storedList{Items: items})
	if err != nil {
		return fmt.Errorf("encoding shopping list: %w", err)
	}
	if err := s.backend.Write(storage.KeyShoppingList, data); err != nil {
		return fmt.Errorf("persisting shopping list: %w", err)
	}
	return nil
}

func (s *Store) copyItems() []domain.ShoppingItem {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]domain.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}
