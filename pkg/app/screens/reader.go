package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
)

const (
	minFontSize     = 24
	maxFontSize     = 40
	fontSizeStep    = 4
	defaultFontSize = 28
	// verseHeight is the number of lines one rendered verse takes.
	verseHeight = 4
)

// nextFontSize cycles the text size through 24..40.
func nextFontSize(size int) int {
	if size >= maxFontSize {
		return minFontSize
	}
	return size + fontSizeStep
}

// ReaderScreen shows the verses of one surah. The verse under the cursor is
// the one being read and is saved as the last read position.
type ReaderScreen struct {
	ctx        context.Context
	controller *services.QuranController
	logger     *log.Logger
	surah      data.Surah
	startAyah  int
	lang       data.Language
	verses     []data.Ayah
	cursor     int
	offset     int
	fontSize   int
	loading    bool
	err        error
	width      int
	height     int
}

func NewReaderScreen(ctx context.Context, controller *services.QuranController, logger *log.Logger, surah data.Surah, startAyah int) *ReaderScreen {
	return &ReaderScreen{
		ctx:        ctx,
		controller: controller,
		logger:     logger,
		surah:      surah,
		startAyah:  startAyah,
		lang:       controller.Preferences.State().Language,
		fontSize:   defaultFontSize,
		loading:    true,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return s.loadVerses
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.ensureVisible()

	case versesLoadedMsg:
		s.loading = false
		s.verses = msg.verses
		s.err = msg.err
		if msg.err != nil {
			s.logger.Error("failed to load verses", "surah", s.surah.Number, "err", msg.err)
			return s, nil
		}
		s.cursor = 0
		for i, v := range s.verses {
			if v.NumberInSurah == s.startAyah {
				s.cursor = i
				break
			}
		}
		s.ensureVisible()
		s.markRead()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.move(-1)
		case "down", "j":
			s.move(1)
		case "pgup":
			s.move(-s.pageSize())
		case "pgdown", " ":
			s.move(s.pageSize())
		case "home", "g":
			s.move(-len(s.verses))
		case "end", "G":
			s.move(len(s.verses))
		case "+", "=":
			s.fontSize = nextFontSize(s.fontSize)
		case "esc", "backspace":
			return s, switchTo(ScreenHome, nil)
		}
	}

	return s, nil
}

func (s *ReaderScreen) move(delta int) {
	if len(s.verses) == 0 {
		return
	}
	next := s.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(s.verses) {
		next = len(s.verses) - 1
	}
	if next == s.cursor {
		return
	}
	s.cursor = next
	s.ensureVisible()
	s.markRead()
}

func (s *ReaderScreen) pageSize() int {
	n := (s.height - 8) / verseHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (s *ReaderScreen) ensureVisible() {
	n := s.pageSize()
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+n {
		s.offset = s.cursor - n + 1
	}
}

// markRead saves the verse under the cursor as the last read position.
func (s *ReaderScreen) markRead() {
	if len(s.verses) == 0 {
		return
	}
	ayah := s.verses[s.cursor].NumberInSurah
	if err := s.controller.Preferences.UpdateLastRead(s.surah, ayah); err != nil {
		s.logger.Warn("failed to save last read", "surah", s.surah.Number, "ayah", ayah, "err", err)
	}
}

func (s *ReaderScreen) showsBismillah() bool {
	return data.HasBismillah(s.surah.Number) && s.offset == 0 && len(s.verses) > 0
}

func (s *ReaderScreen) View() string {
	text := locale.For(s.lang)
	width := max(s.width, 40)

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.MarginBottom(0).Render(fmt.Sprintf("%s · %s", s.surah.DisplayName(s.lang), s.surah.Name)),
		styles.MutedStyle.Render(fmt.Sprintf("%s • %s • %d %s • Aa %d",
			text.FullyOffline, s.surah.RevelationType, s.surah.NumberOfAyahs, text.Verses, s.fontSize)),
	)

	var body string
	switch {
	case s.loading:
		body = styles.StatusBusy.Render(text.LoadingSurah)
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("%s: %s", text.Error, s.err))
	case len(s.verses) == 0:
		body = styles.MutedStyle.Render(fmt.Sprintf(text.NotIndexed, s.surah.Number))
	default:
		body = s.renderVerses(width, text)
	}

	help := styles.HelpStyle.Render("↑/k ↓/j: scroll • pgup/pgdown: page • +: text size • esc: back • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, help)
}

func (s *ReaderScreen) renderVerses(width int, text locale.Strings) string {
	arabic := styles.ArabicStyle.Width(width - 4)
	if s.fontSize >= 32 {
		arabic = arabic.Bold(true)
	}

	var b strings.Builder
	if s.showsBismillah() {
		b.WriteString(styles.ArabicStyle.Width(width - 4).Align(lipgloss.Center).Render(data.Bismillah))
		b.WriteString("\n\n")
	}

	end := min(s.offset+s.pageSize(), len(s.verses))
	for i := s.offset; i < end; i++ {
		v := s.verses[i]
		marker := "  "
		if i == s.cursor {
			marker = styles.VerseNumberStyle.Render("▌ ")
		}

		number := styles.VerseNumberStyle.Render(fmt.Sprintf("﴿%d﴾", v.NumberInSurah))
		b.WriteString(marker + number + "\n")
		b.WriteString(arabic.Render(v.Text) + "\n")
		if v.Translation != "" {
			b.WriteString(styles.TextStyle.Width(width - 4).Render(v.Translation) + "\n")
		}
		b.WriteString("\n")
	}

	if end == len(s.verses) {
		b.WriteString(styles.MutedStyle.Width(width - 4).Align(lipgloss.Center).Render(text.EndOfSurah))
	}
	return b.String()
}

// Messages
type versesLoadedMsg struct {
	verses []data.Ayah
	err    error
}

// Commands
func (s *ReaderScreen) loadVerses() tea.Msg {
	verses, err := s.controller.Reader.VersesBySurah(s.ctx, s.surah.Number, s.lang)
	return versesLoadedMsg{verses: verses, err: err}
}
