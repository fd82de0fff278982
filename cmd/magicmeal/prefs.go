package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/GitHubUser106/magic-meal/internal/display"
	"github.com/GitHubUser106/magic-meal/internal/domain"
)

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(display.PrefsSummary(a.prefs.Current()))
			return nil
		},
	}

	cmd.AddCommand(
		newPrefsOnboardCmd(a),
		newPrefsResetCmd(a),
		newPrefsClearAllCmd(a),
	)
	return cmd
}

func newPrefsOnboardCmd(a *app) *cobra.Command {
	var (
		dietary   string
		household int
		comfort   string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set up your preferences",
		Long:  "Runs the interactive setup. Pass --dietary, --household, or --comfort to skip the prompts, for scripts or terminals without a TTY.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.PreferencesPatch

			interactive := !cmd.Flags().Changed("dietary") &&
				!cmd.Flags().Changed("household") &&
				!cmd.Flags().Changed("comfort")

			if interactive {
				p, err := runOnboardingForm(a.prefs.Current())
				if err != nil {
					return err
				}
				patch = p
			} else {
				p, err := patchFromFlags(cmd, dietary, household, comfort)
				if err != nil {
					return err
				}
				patch = p
			}

			updated, err := a.prefs.CompleteOnboarding(patch)
			if err != nil {
				return err
			}
			fmt.Println("You're set up.")
			fmt.Print(display.PrefsSummary(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&dietary, "dietary", "", "no-preference, no-red-meat, pescatarian, or vegetarian")
	cmd.Flags().IntVar(&household, "household", 0, "people you usually cook for (1-4)")
	cmd.Flags().StringVar(&comfort, "comfort", "", "beginner, some-experience, or comfortable")
	return cmd
}

// runOnboardingForm walks the three setup questions, starting from the
// current values so re-running keeps earlier answers.
func runOnboardingForm(current domain.Preferences) (domain.PreferencesPatch, error) {
	dietary := current.Dietary
	household := current.HouseholdSize
	comfort := current.CookingComfort

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Dietary]().
				Title("Any dietary preference?").
				Options(
					huh.NewOption("No preference", domain.DietNoPreference),
					huh.NewOption("No red meat", domain.DietNoRedMeat),
					huh.NewOption("Pescatarian", domain.DietPescatarian),
					huh.NewOption("Vegetarian", domain.DietVegetarian),
				).
				Value(&dietary),
			huh.NewSelect[int]().
				Title("How many people do you usually cook for?").
				Options(
					huh.NewOption("Just me", 1),
					huh.NewOption("Two of us", 2),
					huh.NewOption("Three", 3),
					huh.NewOption("Four or more", 4),
				).
				Value(&household),
			huh.NewSelect[domain.Comfort]().
				Title("How comfortable are you in the kitchen?").
				Options(
					huh.NewOption("Total beginner", domain.ComfortBeginner),
					huh.NewOption("I've cooked a bit", domain.ComfortSome),
					huh.NewOption("Pretty comfortable", domain.ComfortComfortable),
				).
				Value(&comfort),
		),
	)
	if err := form.Run(); err != nil {
		return domain.PreferencesPatch{}, fmt.Errorf("onboarding form: %w", err)
	}

	return domain.PreferencesPatch{
		Dietary:        &dietary,
		HouseholdSize:  &household,
		CookingComfort: &comfort,
	}, nil
}

// patchFromFlags builds a partial update from whichever flags were set.
// Invalid values fail up front instead of silently defaulting; typos on
// the command line deserve an error.
func patchFromFlags(cmd *cobra.Command, dietary string, household int, comfort string) (domain.PreferencesPatch, error) {
	var patch domain.PreferencesPatch

	if cmd.Flags().Changed("dietary") {
		d := domain.Dietary(dietary)
		if !d.Valid() {
			return patch, fmt.Errorf("unknown dietary preference %q", dietary)
		}
		patch.Dietary = &d
	}
	if cmd.Flags().Changed("household") {
		if household < domain.HouseholdMin || household > domain.HouseholdMax {
			return patch, fmt.Errorf("household size must be %d-%d", domain.HouseholdMin, domain.HouseholdMax)
		}
		patch.HouseholdSize = &household
	}
	if cmd.Flags().Changed("comfort") {
		c := domain.Comfort(comfort)
		if !c.Valid() {
			return patch, fmt.Errorf("unknown comfort level %q", comfort)
		}
		patch.CookingComfort = &c
	}
	return patch, nil
}

func newPrefsResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset preferences to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.prefs.Reset()
			if err != nil {
				return err
			}
			fmt.Println("Preferences reset.")
			fmt.Print(display.PrefsSummary(p))
			return nil
		},
	}
}

func newPrefsClearAllCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-all",
		Short: "Wipe everything: preferences, saved recipes, shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirm := false
				err := huh.NewConfirm().
					Title("Wipe preferences, saved recipes, and the shopping list?").
					Value(&confirm).
					Run()
				if err != nil {
					return err
				}
				if !confirm {
					fmt.Println("Nothing touched.")
					return nil
				}
			}
			if err := a.prefs.ClearAll(); err != nil {
				return err
			}
			// The other stores re-read from disk on next run; reset the
			// in-memory copies so this process agrees.
			a.saved.Load()
			a.shopping.Load()
			fmt.Println("All local data wiped.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
