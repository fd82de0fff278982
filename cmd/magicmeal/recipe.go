package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitHubUser106/magic-meal/internal/cookmode"
	"github.com/GitHubUser106/magic-meal/internal/display"
	"github.com/GitHubUser106/magic-meal/internal/domain"
)

func newRecipeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipe <id>",
		Short: "Show the full recipe card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			r, err := a.catalog.ByID(id)
			if errors.Is(err, domain.ErrNotFound) {
				// A stale id is an answer, not a failure.
				fmt.Printf("No recipe %q. Try: magicmeal explore\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			ctx, err := a.catalog.ContextOf(id)
			if err != nil {
				return err
			}
			fmt.Print(display.RecipeCard(*r, ctx, a.saved.IsSaved(id), a.shopping.HasRecipe(id)))
			return nil
		},
	}
}

func newCookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cook <id>",
		Short: "Cook a recipe step by step",
		Long:  "Walks through the recipe's steps with a checklist and a countdown timer for steps that mention a cook time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			r, err := a.catalog.ByID(id)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Printf("No recipe %q. Try: magicmeal explore\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			a.log.Infow("cook mode started", "recipe", id)
			return cookmode.Run(*r, a.log)
		},
	}
}

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Save a recipe, or un-save it if already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			r, err := a.catalog.ByID(id)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Printf("No recipe %q. Try: magicmeal explore\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			if err := a.saved.Toggle(id); err != nil {
				return err
			}
			if a.saved.IsSaved(id) {
				fmt.Printf("Saved %s.\n", r.Name)
			} else {
				fmt.Printf("Removed %s from saved recipes.\n", r.Name)
			}
			return nil
		},
	}
}

func newSavedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var recipes []domain.Recipe
			for _, id := range a.saved.IDs() {
				r, err := a.catalog.ByID(id)
				if errors.Is(err, domain.ErrNotFound) {
					// Saved before a dataset change; skip, keep the rest.
					a.log.Debugw("saved id no longer in catalog", "id", id)
					continue
				}
				if err != nil {
					return err
				}
				recipes = append(recipes, *r)
			}
			fmt.Print(display.RecipeList("Saved recipes", recipes))
			return nil
		},
	}
}
