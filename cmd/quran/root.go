package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kerbaras/quran/pkg/app"
	"github.com/kerbaras/quran/pkg/config"
	"github.com/kerbaras/quran/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "quran",
	Short: "An offline Quran reader for the terminal",
	Long:  "Read and search the Noble Quran with Arabic text and translations, fully offline",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		controller, err := openController()
		if err != nil {
			return err
		}
		defer controller.Close()

		a := app.NewApp(controller, logging.WithPrefix("tui"))
		return a.Run(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default <data-dir>/config.yaml)")
	flags.String("data-dir", "", "directory holding the database, preferences and logs (default ~/.quran)")
	flags.String("db-driver", "", "storage engine: sqlite or duckdb")
	flags.String("db-path", "", "database file, or :memory:")
	flags.String("catalog-dir", "", "directory with surahs.json and quran-*.txt to use instead of the bundled text")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	bindFlag(config.KeyConfigFile, "config")
	bindFlag(config.KeyDataDir, "data-dir")
	bindFlag(config.KeyDBDriver, "db-driver")
	bindFlag(config.KeyDBPath, "db-path")
	bindFlag(config.KeyCatalogDir, "catalog-dir")
	bindFlag(config.KeyLogLevel, "log-level")

	// Add all subcommands
	rootCmd.AddCommand(surahsCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(lastCmd)
}

func bindFlag(key, name string) {
	cobra.CheckErr(v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)))
}

func initConfig() {
	var err error
	cfg, err = config.Load(v)
	cobra.CheckErr(err)
	cobra.CheckErr(logging.Init(cfg.LogDir(), cfg.LogLevel))
	logging.Debug("config loaded", "data_dir", cfg.DataDir, "driver", cfg.Database.Driver, "db", cfg.Database.Path)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
