package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitHubUser106/magic-meal/internal/catalog"
	"github.com/GitHubUser106/magic-meal/internal/display"
)

func newExploreCmd(a *app) *cobra.Command {
	var (
		maxMinutes int
		search     string
		quick      bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the recipe catalog",
		Long:  "Browse proteins and upgrade bases, or narrow down by cook time, search text, or the quick picks. The overview honors your stored dietary preference unless --all is passed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case search != "":
				results := a.catalog.Search(search)
				fmt.Print(display.RecipeList(fmt.Sprintf("Matches for %q", search), results))
				return nil

			case quick:
				fmt.Print(display.RecipeList("Quick picks", a.catalog.QuickPicks()))
				return nil

			case cmd.Flags().Changed("max-minutes"):
				results := a.catalog.MaxMinutes(maxMinutes)
				fmt.Print(display.RecipeList(fmt.Sprintf("Ready in %d minutes or less", maxMinutes), results))
				return nil
			}

			proteins := a.catalog.Proteins()
			if !all {
				proteins = a.catalog.ProteinsForDiet(a.prefs.Current().Dietary)
			}
			meat, veggie := catalog.SplitVeggie(proteins)
			fmt.Print(display.Overview(meat, veggie, a.catalog.Bases()))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxMinutes, "max-minutes", 0, "only recipes ready within this many minutes")
	cmd.Flags().StringVar(&search, "search", "", "search recipe names and ingredients")
	cmd.Flags().BoolVar(&quick, "quick", false, "show the curated quick picks")
	cmd.Flags().BoolVar(&all, "all", false, "ignore the stored dietary preference")
	return cmd
}
