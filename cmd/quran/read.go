package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <surah>",
	Short: "Print the verses of a surah",
	Long:  "Print the Arabic text and translation of a surah and save it as the last read position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := parseSurah(args[0])
		if err != nil {
			return err
		}
		langFlag, _ := cmd.Flags().GetString("lang")
		from, _ := cmd.Flags().GetInt("from")

		controller, err := openReady(cmd.Context())
		if err != nil {
			return err
		}
		defer controller.Close()

		lang, err := resolveLanguage(langFlag, controller.Preferences)
		if err != nil {
			return err
		}
		surah, err := controller.Surah(number)
		if err != nil {
			return err
		}
		verses, err := controller.Reader.VersesBySurah(cmd.Context(), number, lang)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1999b3"))
		muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))

		fmt.Fprintln(out, title.Render(fmt.Sprintf("%d. %s · %s", surah.Number, surah.DisplayName(lang), surah.Name)))
		fmt.Fprintln(out, muted.Render(fmt.Sprintf("%s • %s • %d verses", surah.Meaning(lang), surah.RevelationType, surah.NumberOfAyahs)))
		fmt.Fprintln(out)

		if len(verses) == 0 {
			fmt.Fprintf(out, "Text indexing in progress for Surah %d. Common Surahs and Juz Amma are ready.\n", number)
			return nil
		}

		if data.HasBismillah(number) && from <= 1 {
			fmt.Fprintf(out, "%s\n\n", data.Bismillah)
		}

		first := 0
		for _, verse := range verses {
			if verse.NumberInSurah < from {
				continue
			}
			if first == 0 {
				first = verse.NumberInSurah
			}
			fmt.Fprintf(out, "%s %s\n", title.Render(fmt.Sprintf("(%d)", verse.NumberInSurah)), verse.Text)
			if verse.Translation != "" {
				fmt.Fprintln(out, verse.Translation)
			}
			fmt.Fprintln(out)
		}
		if first == 0 {
			return fmt.Errorf("surah %d has no verse %d", number, from)
		}
		fmt.Fprintln(out, muted.Render("End of Surah"))

		if err := controller.Preferences.UpdateLastRead(surah, first); err != nil {
			cmd.PrintErrln("could not save the last read position:", err)
		}
		return nil
	},
}

func init() {
	readCmd.Flags().String("lang", "", "translation language: en, ru or ar (default: saved language)")
	readCmd.Flags().Int("from", 1, "first verse to print")
}
