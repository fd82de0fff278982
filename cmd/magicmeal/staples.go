package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GitHubUser106/magic-meal/internal/catalog"
	"github.com/GitHubUser106/magic-meal/internal/display"
)

func newStaplesCmd(a *app) *cobra.Command {
	var master bool

	cmd := &cobra.Command{
		Use:   "staples",
		Short: "Pantry staples and the one-trip master shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if master {
				fmt.Print(display.MasterShoppingList(catalog.ShoppingMasterList()))
				return nil
			}
			fmt.Print(display.Staples(catalog.Staples()))
			fmt.Println()
			fmt.Print(display.MasterShoppingList(catalog.ShoppingMasterList()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&master, "master", false, "only the one-trip master list")
	return cmd
}
