package cmd

import (
	"fmt"

	"github.com/kerbaras/quran/pkg/app/components"
	"github.com/kerbaras/quran/pkg/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the database and copy the Quran text into it",
	Long:  "Initialize the schema and seed the surahs and verses. Skipped when the database is already complete, unless --force is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		controller, err := openController()
		if err != nil {
			return err
		}
		defer controller.Close()

		out := cmd.OutOrStdout()
		done := make(chan struct{})
		go func() {
			defer close(done)
			for p := range controller.Seeder.GetProgressChannel() {
				switch p.Stage {
				case services.StageSurahs, services.StageVerses:
					fmt.Fprintf(out, "\r%-7s %s %d/%d", p.Stage, components.SimpleProgress(p.Done, p.Total, 30), p.Done, p.Total)
					if p.Done == p.Total {
						fmt.Fprintln(out)
					}
				}
			}
		}()

		res, err := controller.Bootstrap(cmd.Context(), force)
		controller.Seeder.Close()
		<-done
		if err != nil {
			return err
		}

		if res.Skipped {
			fmt.Fprintln(out, "Database already seeded, nothing to do. Use --force to reseed.")
			return nil
		}
		fmt.Fprintf(out, "Seeded %d surahs and %d verses into %s\n", res.Surahs, res.Verses, cfg.Database.Path)
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("force", false, "reseed even if the database is complete")
}
