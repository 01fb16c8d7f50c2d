package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what the database holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := openReady(cmd.Context())
		if err != nil {
			return err
		}
		defer controller.Close()

		stats, err := controller.Reader.Stats(cmd.Context())
		if err != nil {
			return err
		}
		status, err := controller.Seeder.Status(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Storage:      %s (%s)\n", cfg.Database.Path, controller.Store.Driver())
		fmt.Fprintf(out, "Total Surahs: %d\n", stats.SurahCount)
		fmt.Fprintf(out, "Total Ayahs:  %d\n", stats.VerseCount)
		fmt.Fprintf(out, "Complete:     %t (%d of %d verses)\n", status.Complete, status.Present, status.Expected)
		return nil
	},
}
