package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/data"
)

// cardHeight is the number of lines one rendered card takes.
const cardHeight = 4

type SurahList struct {
	Items         []data.Surah
	SelectedIndex int
	Width         int
	Height        int
	// Focused is false while the selection lives outside the list.
	Focused bool
}

func NewSurahList() *SurahList {
	return &SurahList{
		Items:         []data.Surah{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		Focused:       true,
	}
}

func (m *SurahList) SetItems(items []data.Surah) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *SurahList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *SurahList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *SurahList) Selected() *data.Surah {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// visibleRange returns the window of items that fits Height and holds the
// selection.
func (m *SurahList) visibleRange() (int, int) {
	n := m.Height / cardHeight
	if n < 1 {
		n = 1
	}
	if n >= len(m.Items) {
		return 0, len(m.Items)
	}
	start := m.SelectedIndex - n/2
	if start < 0 {
		start = 0
	}
	if start+n > len(m.Items) {
		start = len(m.Items) - n
	}
	return start, start + n
}

func (m *SurahList) View(lang data.Language) string {
	text := locale.For(lang)
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(text.NoResults)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		s := m.Items[i]
		cardStyle := styles.CardStyle
		if m.Focused && i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		inner := m.Width - 10
		if inner < 20 {
			inner = 20
		}

		number := styles.VerseNumberStyle.Render(fmt.Sprintf("%3d", s.Number))
		name := styles.TextStyle.Bold(true).Render(s.DisplayName(lang))
		left := lipgloss.JoinHorizontal(lipgloss.Top, number, "  ", name)
		arabic := styles.ArabicStyle.Width(inner - lipgloss.Width(left)).Render(s.Name)
		top := lipgloss.JoinHorizontal(lipgloss.Top, left, arabic)

		info := styles.MutedStyle.Render(
			fmt.Sprintf("     %s • %s • %d %s", s.Meaning(lang), s.RevelationType, s.NumberOfAyahs, text.Verses),
		)

		card := cardStyle.Width(m.Width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, top, info))
		b.WriteString(card)
		b.WriteString("\n")
	}

	if len(m.Items) > end-start {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d", m.SelectedIndex+1, len(m.Items))))
	}

	return b.String()
}
