package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var surahsCmd = &cobra.Command{
	Use:   "surahs [filter]",
	Short: "List the surahs",
	Long:  "Display the 114 surahs in a table, optionally filtered by name or number",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := openController()
		if err != nil {
			return err
		}
		defer controller.Close()

		lang := controller.Preferences.State().Language
		surahs := controller.Catalog.FilterSurahs(strings.Join(args, " "))
		out := cmd.OutOrStdout()

		if len(surahs) == 0 {
			fmt.Fprintln(out, "No surah matches the filter.")
			return nil
		}

		// Create table columns
		columns := []table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 22},
			{Title: "Arabic", Width: 14},
			{Title: "Meaning", Width: 28},
			{Title: "Verses", Width: 7},
			{Title: "Revealed", Width: 9},
		}

		rows := []table.Row{}
		for _, s := range surahs {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", s.Number),
				truncateString(s.DisplayName(lang), 20),
				s.Name,
				truncateString(s.Meaning(lang), 26),
				fmt.Sprintf("%d", s.NumberOfAyahs),
				s.RevelationType,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Cell
		t.SetStyles(s)

		fmt.Fprintf(out, "\nSurahs (%d)\n\n", len(surahs))
		fmt.Fprintln(out, t.View())
		return nil
	},
}
