package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the verses",
	Long:  "Search the Arabic text or a translation for a literal substring and display the matching verses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		langFlag, _ := cmd.Flags().GetString("lang")

		controller, err := openReady(cmd.Context())
		if err != nil {
			return err
		}
		defer controller.Close()

		lang, err := resolveLanguage(langFlag, controller.Preferences)
		if err != nil {
			return err
		}

		results, err := controller.Reader.Search(cmd.Context(), query, lang)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}

		var (
			primary = lipgloss.Color("#1999b3")

			headerStyle = lipgloss.NewStyle().Foreground(primary).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(primary)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Surah", "Verse", "Text")

		for _, hit := range results {
			name := hit.SurahName
			text := hit.TextEN
			switch lang {
			case data.Russian:
				name, text = hit.SurahRussianName, hit.TextRU
			case data.Arabic:
				text = hit.TextAR
			}
			t.Row(name, fmt.Sprintf("%d:%d", hit.SurahNumber, hit.AyahNumber), truncateString(text, 70))
		}

		fmt.Fprintln(out, t)
		fmt.Fprintf(out, "%d results\n", len(results))
		return nil
	},
}

func init() {
	searchCmd.Flags().String("lang", "", "language to search: en, ru or ar (default: saved language)")
}
