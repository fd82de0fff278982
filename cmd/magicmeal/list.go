package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GitHubUser106/magic-meal/internal/display"
	"github.com/GitHubUser106/magic-meal/internal/grocery"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show and manage the shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grouped := grocery.Group(a.shopping.Items())
			fmt.Print(display.ShoppingList(grouped, a.shopping.UncheckedCount()))
			return nil
		},
	}

	cmd.AddCommand(
		newListAddCmd(a),
		newListRemoveCmd(a),
		newListCheckCmd(a),
		newListCustomCmd(a),
		newListDropCmd(a),
		newListClearCmd(a),
	)
	return cmd
}

func newListAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <recipe-id>",
		Short: "Add a recipe's ingredients to the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if a.shopping.HasRecipe(id) {
				fmt.Printf("%s is already on the list.\n", id)
				return nil
			}
			if err := a.shopping.AddRecipeIngredients(id); err != nil {
				return err
			}
			if !a.shopping.HasRecipe(id) {
				fmt.Printf("No recipe %q. Try: magicmeal explore\n", id)
				return nil
			}
			fmt.Printf("Added. %d items to buy.\n", a.shopping.UncheckedCount())
			return nil
		},
	}
}

func newListRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <recipe-id>",
		Short: "Remove a recipe's ingredients from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shopping.RemoveRecipe(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed. %d items to buy.\n", a.shopping.UncheckedCount())
			return nil
		},
	}
}

func newListCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <ingredient> <recipe-id>",
		Short: "Check or uncheck one item",
		Long:  "Toggles the item matching both the ingredient text and the recipe id. Two recipes can both need bread; only the named one flips.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shopping.ToggleChecked(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%d items to buy.\n", a.shopping.UncheckedCount())
			return nil
		},
	}
}

func newListCustomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "custom <text>...",
		Short: "Add your own item to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				fmt.Println("Nothing to add.")
				return nil
			}
			if err := a.shopping.AddCustomItem(text); err != nil {
				return err
			}
			fmt.Printf("Added %q.\n", text)
			return nil
		},
	}
}

func newListDropCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <text>...",
		Short: "Remove one of your own items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shopping.RemoveCustomItem(strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Printf("%d items to buy.\n", a.shopping.UncheckedCount())
			return nil
		},
	}
}

func newListClearCmd(a *app) *cobra.Command {
	var checkedOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the list, or just the checked-off items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkedOnly {
				if err := a.shopping.ClearChecked(); err != nil {
					return err
				}
				fmt.Printf("Checked items cleared. %d items to buy.\n", a.shopping.UncheckedCount())
				return nil
			}
			if err := a.shopping.ClearAll(); err != nil {
				return err
			}
			fmt.Println("Shopping list cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkedOnly, "checked", false, "only remove checked-off items")
	return cmd
}
