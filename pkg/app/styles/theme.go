package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/data"
)

// Palette is the set of colors a reading theme maps to.
type Palette struct {
	Primary    lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

var palettes = map[data.Theme]Palette{
	data.Midnight: {
		Primary:    lipgloss.Color("#1999b3"),
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#f4f4f5"),
		Surface:    lipgloss.Color("#18181b"),
		Muted:      lipgloss.Color("#71717a"),
		Error:      lipgloss.Color("#f07178"),
		Success:    lipgloss.Color("#c3e88d"),
	},
	data.Sepia: {
		Primary:    lipgloss.Color("#1999b3"),
		Background: lipgloss.Color("#f4ecd8"),
		Foreground: lipgloss.Color("#433422"),
		Surface:    lipgloss.Color("#e8dcc0"),
		Muted:      lipgloss.Color("#8b7355"),
		Error:      lipgloss.Color("#b3261e"),
		Success:    lipgloss.Color("#386a20"),
	},
	data.Light: {
		Primary:    lipgloss.Color("#1999b3"),
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#18181b"),
		Surface:    lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#71717a"),
		Error:      lipgloss.Color("#b3261e"),
		Success:    lipgloss.Color("#386a20"),
	},
}

// PaletteFor returns the palette of a theme, Midnight for unknown themes.
func PaletteFor(theme data.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[data.Midnight]
}

var (
	// Current palette, set by Apply
	Current Palette
	Theme   data.Theme

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles, rebuilt by Apply
var (
	AppStyle           lipgloss.Style
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	TextStyle          lipgloss.Style
	ArabicStyle        lipgloss.Style
	MutedStyle         lipgloss.Style
	CardStyle          lipgloss.Style
	ActiveCardStyle    lipgloss.Style
	StatusError        lipgloss.Style
	StatusSuccess      lipgloss.Style
	StatusBusy         lipgloss.Style
	ProgressBarStyle   lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	ActiveTabStyle     lipgloss.Style
	InactiveTabStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	FocusedInputStyle  lipgloss.Style
	VerseNumberStyle   lipgloss.Style
)

func init() {
	Apply(data.Midnight)
}

// Apply switches every style to the palette of theme.
func Apply(theme data.Theme) {
	p := PaletteFor(theme)
	Current = p
	Theme = theme

	AppStyle = lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Foreground).
		Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	ArabicStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Align(lipgloss.Right)

	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Surface).
		Padding(0, 2)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(p.Primary).
		Padding(0, 2)

	StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	StatusBusy = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
		Foreground(p.Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Surface).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Muted).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(p.Primary).
		Padding(0, 1)

	VerseNumberStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
}
