package cmd

import (
	"fmt"
	"strings"

	"github.com/kerbaras/quran/pkg/data"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [language|theme <value>]",
	Short: "Show or change the saved preferences",
	Long:  "Without arguments, print the saved language and theme. With a key and value, change it.",
	Args:  cobra.MatchAll(cobra.MaximumNArgs(2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("missing value for %q", args[0])
		}
		return nil
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := openController()
		if err != nil {
			return err
		}
		defer controller.Close()

		prefs := controller.Preferences
		out := cmd.OutOrStdout()

		if len(args) == 2 {
			switch strings.ToLower(args[0]) {
			case "language", "lang":
				lang, err := data.ParseLanguage(args[1])
				if err != nil {
					return err
				}
				if err := prefs.SetLanguage(lang); err != nil {
					return err
				}
			case "theme":
				theme, err := data.ParseTheme(args[1])
				if err != nil {
					return err
				}
				if err := prefs.SetTheme(theme); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown setting %q, expected language or theme", args[0])
			}
		}

		state := prefs.State()
		fmt.Fprintf(out, "language: %s\n", state.Language)
		fmt.Fprintf(out, "theme:    %s\n", state.Theme)
		return nil
	},
}
