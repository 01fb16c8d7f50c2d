package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/quran/pkg/services"
)

type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenSearch   Screen = "search"
	ScreenSettings Screen = "settings"
	ScreenReader   Screen = "reader"
)

// SwitchScreenMsg asks the root screen to show another screen.
type SwitchScreenMsg struct {
	Screen Screen
	Data   interface{}
}

// ReaderTarget opens the reader on a surah, at a verse when Ayah > 0.
type ReaderTarget struct {
	Surah int
	Ayah  int
}

// PreferencesChangedMsg is sent after the language or theme changed.
type PreferencesChangedMsg struct{}

// BootstrapDoneMsg ends the splash screen.
type BootstrapDoneMsg struct {
	Result services.SeedResult
	Err    error
}

func switchTo(screen Screen, data interface{}) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: screen, Data: data}
	}
}

func preferencesChanged() tea.Msg {
	return PreferencesChangedMsg{}
}

// rotate returns the item dir steps away from current, wrapping around.
func rotate[T comparable](items []T, current T, dir int) T {
	i := 0
	for j, item := range items {
		if item == current {
			i = j
		}
	}
	i = ((i+dir)%len(items) + len(items)) % len(items)
	return items[i]
}
