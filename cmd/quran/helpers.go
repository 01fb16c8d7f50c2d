package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/logging"
	"github.com/kerbaras/quran/pkg/services"
)

func openController() (*services.QuranController, error) {
	return services.NewQuranController(cfg, logging.Logger)
}

// openReady opens the controller and makes sure the store is seeded.
func openReady(ctx context.Context) (*services.QuranController, error) {
	controller, err := openController()
	if err != nil {
		return nil, err
	}
	if _, err := controller.Bootstrap(ctx, false); err != nil {
		controller.Close()
		return nil, err
	}
	return controller, nil
}

// resolveLanguage parses the --lang flag, falling back to the saved language.
func resolveLanguage(flag string, prefs *services.Preferences) (data.Language, error) {
	if flag == "" {
		return prefs.State().Language, nil
	}
	return data.ParseLanguage(flag)
}

func parseSurah(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > catalog.SurahCount {
		return 0, fmt.Errorf("%w: %q", services.ErrInvalidSurah, arg)
	}
	return n, nil
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
