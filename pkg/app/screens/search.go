package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
)

// resultHeight is the number of lines one rendered result takes.
const resultHeight = 5

type SearchScreen struct {
	ctx        context.Context
	controller *services.QuranController
	input      textinput.Model
	results    []data.SearchHit
	selected   int
	searching  bool
	searched   bool
	width      int
	height     int
	err        error
}

func NewSearchScreen(ctx context.Context, controller *services.QuranController) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = locale.For(controller.Preferences.State().Language).SearchVerses
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		ctx:        ctx,
		controller: controller,
		input:      ti,
		results:    []data.SearchHit{},
		selected:   0,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

// CapturingInput reports whether key presses go to the query input.
func (s *SearchScreen) CapturingInput() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case PreferencesChangedMsg:
		s.input.Placeholder = locale.For(s.controller.Preferences.State().Language).SearchVerses
		// results were matched against the previous language
		s.results = []data.SearchHit{}
		s.searched = false
		s.selected = 0

	case tea.KeyMsg:
		// If searching, don't process keys
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if strings.TrimSpace(query) != "" {
					s.searching = true
					return s, s.performSearch(query)
				}
			} else if len(s.results) > 0 {
				hit := s.results[s.selected]
				return s, switchTo(ScreenReader, ReaderTarget{Surah: hit.SurahNumber, Ayah: hit.AyahNumber})
			}
			return s, nil

		case "esc":
			// Switch focus between input and results
			if s.input.Focused() {
				s.input.Blur()
			} else {
				cmd = s.input.Focus()
			}
			return s, cmd

		case "up", "k":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected--
				if s.selected < 0 {
					s.selected = len(s.results) - 1
				}
				return s, nil
			}

		case "down", "j":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected++
				if s.selected >= len(s.results) {
					s.selected = 0
				}
				return s, nil
			}
		}

	case searchResultMsg:
		s.searching = false
		s.searched = true
		s.results = msg.results
		s.selected = 0
		s.err = msg.err
		if len(s.results) > 0 {
			s.input.Blur()
		}
	}

	// Update text input
	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	lang := s.controller.Preferences.State().Language
	text := locale.For(lang)

	header := styles.TitleStyle.Render(text.TabSearch)

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("%s: %s", text.Error, s.err))
		errorMsg += "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = styles.StatusBusy.Render(text.Searching)
	} else if len(s.results) > 0 {
		resultsView = s.renderResults(lang, text)
	} else if s.searched && s.err == nil {
		resultsView = styles.MutedStyle.Render(text.NoResults)
	}

	help := styles.HelpStyle.Render(
		"enter: search/read • esc: switch focus • ↑/k ↓/j: navigate • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s",
		header,
		inputView,
		errorMsg,
		resultsView,
		help,
	)
}

func (s *SearchScreen) renderResults(lang data.Language, text locale.Strings) string {
	var result string
	result += styles.SubtitleStyle.Render(fmt.Sprintf(text.FoundResults, len(s.results)))
	result += "\n"

	n := max((s.height-12)/resultHeight, 1)
	start := 0
	if s.selected >= n {
		start = s.selected - n + 1
	}
	end := min(start+n, len(s.results))

	width := max(s.width-6, 30)
	for i := start; i < end; i++ {
		hit := s.results[i]
		cardStyle := styles.CardStyle
		if i == s.selected && !s.input.Focused() {
			cardStyle = styles.ActiveCardStyle
		}

		name := hit.SurahName
		if lang == data.Russian {
			name = hit.SurahRussianName
		}
		title := styles.VerseNumberStyle.Render(fmt.Sprintf("%s %d:%d", name, hit.SurahNumber, hit.AyahNumber))

		var verse string
		switch lang {
		case data.Arabic:
			verse = styles.ArabicStyle.Width(width - 4).Render(hit.TextAR)
		case data.Russian:
			verse = styles.TextStyle.Width(width - 4).Render(hit.TextRU)
		default:
			verse = styles.TextStyle.Width(width - 4).Render(hit.TextEN)
		}

		card := cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, verse))
		result += card + "\n"
	}

	return result
}

// Messages
type searchResultMsg struct {
	results []data.SearchHit
	err     error
}

// Commands
func (s *SearchScreen) performSearch(query string) tea.Cmd {
	lang := s.controller.Preferences.State().Language
	return func() tea.Msg {
		results, err := s.controller.Reader.Search(s.ctx, query, lang)
		return searchResultMsg{results: results, err: err}
	}
}
