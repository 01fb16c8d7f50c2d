package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quran/pkg/app/components"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/services"
)

const (
	splashTitle    = "Noble Quran Engine"
	statusWaking   = "Waking up engine..."
	statusIndexing = "Pre-indexing Quran..."
	statusReady    = "Ready"
)

type bootstrapFunc func(ctx context.Context, force bool) (services.SeedResult, error)

// SplashScreen prepares the store and shows the seed progress.
type SplashScreen struct {
	ctx       context.Context
	bootstrap bootstrapFunc
	progress  <-chan services.SeedProgress
	tracker   *components.ProgressTracker
	status    string
	done      bool
	result    services.SeedResult
	err       error
	width     int
	height    int
}

func NewSplashScreen(ctx context.Context, bootstrap bootstrapFunc, progress <-chan services.SeedProgress) *SplashScreen {
	return &SplashScreen{
		ctx:       ctx,
		bootstrap: bootstrap,
		progress:  progress,
		tracker:   components.NewProgressTracker(40),
		status:    statusWaking,
	}
}

func (s *SplashScreen) Init() tea.Cmd {
	return tea.Batch(s.runBootstrap, s.listenForProgress)
}

func (s *SplashScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tracker.SetWidth(min(msg.Width-4, 60))

	case tea.KeyMsg:
		if msg.String() == "r" && s.err != nil {
			s.err = nil
			s.status = statusWaking
			return s, s.runBootstrap
		}

	case services.SeedProgress:
		s.tracker.Update(msg)
		s.status = statusFor(msg.Stage)
		if msg.Stage == services.StageDone || msg.Stage == services.StageSkipped {
			return s, nil
		}
		return s, s.listenForProgress

	case BootstrapDoneMsg:
		s.done = msg.Err == nil
		s.result = msg.Result
		s.err = msg.Err
		if s.done {
			s.status = statusReady
		}
	}

	return s, nil
}

func statusFor(stage string) string {
	switch stage {
	case services.StageSurahs, services.StageVerses:
		return statusIndexing
	case services.StageDone, services.StageSkipped:
		return statusReady
	default:
		return statusWaking
	}
}

func (s *SplashScreen) View() string {
	title := styles.TitleStyle.Render(splashTitle)

	var body string
	if s.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Center,
			styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)),
			styles.HelpStyle.Render("r: retry • q: quit"),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center,
			styles.StatusBusy.Render(s.status),
			"",
			s.tracker.View(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, body)
	if s.width == 0 {
		return content
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
}

// Commands
func (s *SplashScreen) runBootstrap() tea.Msg {
	res, err := s.bootstrap(s.ctx, false)
	return BootstrapDoneMsg{Result: res, Err: err}
}

func (s *SplashScreen) listenForProgress() tea.Msg {
	p, ok := <-s.progress
	if !ok {
		return nil
	}
	return p
}
