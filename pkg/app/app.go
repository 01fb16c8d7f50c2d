package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/app/screens"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/services"
)

type App struct {
	controller *services.QuranController
	logger     *log.Logger
}

func NewApp(controller *services.QuranController, logger *log.Logger) *App {
	return &App{controller: controller, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	styles.Apply(a.controller.Preferences.State().Theme)
	model := screens.NewRootScreen(ctx, a.controller, a.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
