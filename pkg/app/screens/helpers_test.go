package screens

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/config"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
	"github.com/stretchr/testify/require"
)

// newTestController returns a controller over the bundled catalog, seeded
// into an in-memory store.
func newTestController(t *testing.T) *services.QuranController {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:   dir,
		Database:  data.Config{Driver: data.DriverSQLite, Path: data.MemoryPath},
		LogLevel:  "info",
		ExportDir: dir,
	}
	controller, err := services.NewQuranController(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { controller.Close() })

	_, err = controller.Bootstrap(context.Background(), false)
	require.NoError(t, err)
	return controller
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func size(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// run executes a command that is known not to block and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
