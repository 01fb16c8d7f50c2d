package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last read position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := openController()
		if err != nil {
			return err
		}
		defer controller.Close()

		out := cmd.OutOrStdout()
		lr := controller.Preferences.State().LastRead
		if lr == nil {
			fmt.Fprintln(out, "Nothing read yet.")
			return nil
		}

		revelation := ""
		if s, ok := controller.Catalog.Surah(lr.SurahNumber); ok {
			revelation = " • " + s.RevelationType
		}
		fmt.Fprintf(out, "%s (%s)\nAyah %d%s\n", lr.SurahEnglishName, lr.SurahName, lr.AyahNumber, revelation)
		fmt.Fprintf(out, "Continue with: quran read %d --from %d\n", lr.SurahNumber, lr.AyahNumber)
		return nil
	},
}
