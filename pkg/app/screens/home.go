package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/app/components"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
)

// HomeScreen lists the surahs with a filter and the last read card.
type HomeScreen struct {
	ctx        context.Context
	controller *services.QuranController
	input      textinput.Model
	list       *components.SurahList
	onCard     bool
	status     string
	err        error
	width      int
	height     int
}

func NewHomeScreen(ctx context.Context, controller *services.QuranController) *HomeScreen {
	ti := textinput.New()
	ti.Placeholder = locale.For(controller.Preferences.State().Language).SearchSurah
	ti.CharLimit = 50
	ti.Width = 40

	return &HomeScreen{
		ctx:        ctx,
		controller: controller,
		input:      ti,
		list:       components.NewSurahList(),
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	s.refresh()
	s.onCard = s.hasCard()
	s.list.Focused = !s.onCard
	return nil
}

func (s *HomeScreen) refresh() {
	s.list.SetItems(s.controller.Catalog.FilterSurahs(s.input.Value()))
	if !s.hasCard() {
		s.onCard = false
	}
	s.list.Focused = !s.onCard
}

func (s *HomeScreen) lastRead() *data.LastRead {
	return s.controller.Preferences.State().LastRead
}

func (s *HomeScreen) hasCard() bool {
	return s.input.Value() == "" && s.lastRead() != nil
}

// CapturingInput reports whether key presses go to the filter.
func (s *HomeScreen) CapturingInput() bool {
	return s.input.Focused()
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 14

	case PreferencesChangedMsg:
		s.input.Placeholder = locale.For(s.controller.Preferences.State().Language).SearchSurah

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "esc", "enter", "down":
				s.input.Blur()
				return s, nil
			}
			s.input, cmd = s.input.Update(msg)
			s.refresh()
			return s, cmd
		}

		switch msg.String() {
		case "/":
			return s, s.input.Focus()
		case "esc":
			if s.input.Value() != "" {
				s.input.SetValue("")
				s.refresh()
			}
		case "up", "k":
			s.prev()
		case "down", "j":
			s.next()
		case "enter":
			return s, s.open()
		case "e":
			if selected := s.list.Selected(); selected != nil && !s.onCard {
				s.status = ""
				return s, s.export(selected.Number)
			}
		}

	case exportedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = fmt.Sprintf(locale.For(s.controller.Preferences.State().Language).Exported, msg.path)
		}
	}

	return s, cmd
}

func (s *HomeScreen) next() {
	if s.onCard {
		s.onCard = false
		s.list.SelectedIndex = 0
	} else {
		s.list.Next()
	}
	s.list.Focused = !s.onCard
}

func (s *HomeScreen) prev() {
	if !s.onCard && s.list.SelectedIndex == 0 && s.hasCard() {
		s.onCard = true
	} else if !s.onCard {
		s.list.Prev()
	}
	s.list.Focused = !s.onCard
}

func (s *HomeScreen) open() tea.Cmd {
	if s.onCard {
		lr := s.lastRead()
		return switchTo(ScreenReader, ReaderTarget{Surah: lr.SurahNumber, Ayah: lr.AyahNumber})
	}
	if selected := s.list.Selected(); selected != nil {
		return switchTo(ScreenReader, ReaderTarget{Surah: selected.Number})
	}
	return nil
}

func (s *HomeScreen) View() string {
	lang := s.controller.Preferences.State().Language
	text := locale.For(lang)

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.MarginBottom(0).Render(text.Title),
		styles.MutedStyle.Render(text.FullyOffline),
	)

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	parts := []string{header, inputView}

	if s.hasCard() {
		parts = append(parts, s.renderLastRead(lang, text))
	}

	if s.err != nil {
		parts = append(parts, styles.StatusError.Render(fmt.Sprintf("%s: %s", text.Error, s.err)))
	} else if s.status != "" {
		parts = append(parts, styles.StatusSuccess.Render(s.status))
	}

	parts = append(parts, s.list.View(lang))
	parts = append(parts, styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: read • /: filter • e: export EPUB • tab: switch view • q: quit",
	))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *HomeScreen) renderLastRead(lang data.Language, text locale.Strings) string {
	lr := s.lastRead()
	name := lr.SurahEnglishName
	revelation := ""
	if surah, ok := s.controller.Catalog.Surah(lr.SurahNumber); ok {
		name = surah.DisplayName(lang)
		revelation = surah.RevelationType
	}

	cardStyle := styles.CardStyle
	if s.onCard {
		cardStyle = styles.ActiveCardStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.VerseNumberStyle.Render(text.LastRead),
		styles.TextStyle.Bold(true).Render(name)+"  "+styles.MutedStyle.Render(lr.SurahName),
		styles.MutedStyle.Render(fmt.Sprintf("%s %d • %s", text.Ayah, lr.AyahNumber, revelation)),
	)
	return cardStyle.Width(max(s.width-4, 30)).Render(content)
}

// Messages
type exportedMsg struct {
	path string
	err  error
}

// Commands
func (s *HomeScreen) export(surah int) tea.Cmd {
	return func() tea.Msg {
		path, err := s.controller.Export(s.ctx, []int{surah}, s.controller.Preferences.State().Language, "")
		return exportedMsg{path: path, err: err}
	}
}
