package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/catalog"
	"github.com/GitHubUser106/magic-meal/internal/config"
	"github.com/GitHubUser106/magic-meal/internal/display"
	"github.com/GitHubUser106/magic-meal/internal/prefs"
	"github.com/GitHubUser106/magic-meal/internal/saved"
	"github.com/GitHubUser106/magic-meal/internal/shopping"
)

// app bundles the wired core for the command handlers.
type app struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	catalog  *catalog.Catalog
	prefs    *prefs.Store
	saved    *saved.Store
	shopping *shopping.Store
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "magicmeal",
		Short: "Three-ingredient dinners: browse, cook, and shop",
		Long:  "Magic Meal helps you pick a simple dinner, walks you through cooking it, and keeps your shopping list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(display.Banner())
			fmt.Println(display.RecipeList("Quick picks", a.catalog.QuickPicks()))
			fmt.Println("Try: magicmeal explore")
			return nil
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newExploreCmd(a),
		newRecipeCmd(a),
		newCookCmd(a),
		newSaveCmd(a),
		newSavedCmd(a),
		newListCmd(a),
		newPrefsCmd(a),
		newStaplesCmd(a),
	)
	return root
}
