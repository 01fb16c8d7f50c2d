package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <surah...>",
	Short: "Compile surahs into an EPub",
	Long:  "Compile one or more surahs with their translation into a single EPub file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langFlag, _ := cmd.Flags().GetString("lang")
		title, _ := cmd.Flags().GetString("title")
		output, _ := cmd.Flags().GetString("output")

		numbers := make([]int, len(args))
		for i, arg := range args {
			n, err := parseSurah(arg)
			if err != nil {
				return err
			}
			numbers[i] = n
		}

		if output != "" {
			cfg.ExportDir = output
		}

		controller, err := openReady(cmd.Context())
		if err != nil {
			return err
		}
		defer controller.Close()

		lang, err := resolveLanguage(langFlag, controller.Preferences)
		if err != nil {
			return err
		}

		path, err := controller.Export(cmd.Context(), numbers, lang, title)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "EPub saved to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("lang", "", "translation language: en, ru or ar (default: saved language)")
	exportCmd.Flags().String("title", "", "book title (default: derived from the surahs)")
	exportCmd.Flags().StringP("output", "o", "", "output directory (default: export.dir)")
}
