package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
)

const (
	languageRow = iota
	themeRow
	settingsRows
)

var (
	languages = []data.Language{data.English, data.Russian, data.Arabic}
	themes    = []data.Theme{data.Midnight, data.Sepia, data.Light}
)

// SettingsScreen edits the language and theme and shows storage stats.
type SettingsScreen struct {
	ctx        context.Context
	controller *services.QuranController
	logger     *log.Logger
	row        int
	stats      data.Stats
	err        error
	width      int
	height     int
}

func NewSettingsScreen(ctx context.Context, controller *services.QuranController, logger *log.Logger) *SettingsScreen {
	return &SettingsScreen{
		ctx:        ctx,
		controller: controller,
		logger:     logger,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.loadStats
}

func (s *SettingsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.row = (s.row + settingsRows - 1) % settingsRows
		case "down", "j":
			s.row = (s.row + 1) % settingsRows
		case "left", "h":
			return s, s.cycle(-1)
		case "right", "l", "enter", " ":
			return s, s.cycle(1)
		}

	case statsLoadedMsg:
		s.stats = msg.stats
		s.err = msg.err
	}

	return s, nil
}

// cycle moves the focused setting to the next or previous value. The new
// value holds for the session even when it cannot be saved.
func (s *SettingsScreen) cycle(dir int) tea.Cmd {
	prefs := s.controller.Preferences
	state := prefs.State()

	var err error
	switch s.row {
	case languageRow:
		err = prefs.SetLanguage(rotate(languages, state.Language, dir))
	case themeRow:
		err = prefs.SetTheme(rotate(themes, state.Theme, dir))
	}
	if err != nil {
		s.logger.Warn("failed to save preference", "err", err)
	}
	s.err = err
	return preferencesChanged
}

func (s *SettingsScreen) View() string {
	state := s.controller.Preferences.State()
	text := locale.For(state.Language)

	header := styles.TitleStyle.Render(text.TabSettings)

	langOptions := make([]string, len(languages))
	for i, l := range languages {
		langOptions[i] = renderOption(locale.LanguageLabel(l), l == state.Language)
	}
	themeOptions := make([]string, len(themes))
	for i, t := range themes {
		themeOptions[i] = renderOption(locale.ThemeLabel(t), t == state.Theme)
	}

	rows := []string{
		s.renderRow(languageRow, text.AppLanguage, langOptions),
		s.renderRow(themeRow, text.Appearance, themeOptions),
	}

	storage := styles.CardStyle.Width(max(s.width-4, 30)).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.VerseNumberStyle.Render(text.Storage),
		styles.TextStyle.Render(fmt.Sprintf("%s: %d", text.TotalAyahs, s.stats.VerseCount)),
		styles.TextStyle.Render(fmt.Sprintf("%s: %d", text.TotalSurahs, s.stats.SurahCount)),
		styles.MutedStyle.Render(s.controller.Store.Driver()),
	))

	parts := []string{header}
	parts = append(parts, rows...)
	parts = append(parts, "", storage)
	if s.err != nil {
		parts = append(parts, styles.StatusError.Render(fmt.Sprintf("%s: %s", text.Error, s.err)))
	}
	parts = append(parts, styles.HelpStyle.Render(
		"↑/k ↓/j: select • ←/h →/l: change • tab: switch view • q: quit",
	))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SettingsScreen) renderRow(row int, label string, options []string) string {
	marker := "  "
	labelStyle := styles.MutedStyle
	if s.row == row {
		marker = styles.VerseNumberStyle.Render("▌ ")
		labelStyle = styles.TextStyle.Bold(true)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		marker+labelStyle.Render(label),
		"  "+lipgloss.JoinHorizontal(lipgloss.Top, options...),
		"",
	)
}

func renderOption(label string, active bool) string {
	if active {
		return styles.ActiveTabStyle.Render(label)
	}
	return styles.InactiveTabStyle.Render(label)
}

// Messages
type statsLoadedMsg struct {
	stats data.Stats
	err   error
}

// Commands
func (s *SettingsScreen) loadStats() tea.Msg {
	stats, err := s.controller.Reader.Stats(s.ctx)
	return statsLoadedMsg{stats: stats, err: err}
}
