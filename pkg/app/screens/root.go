package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/app/locale"
	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/services"
)

type screenType int

const (
	splashView screenType = iota
	homeView
	searchView
	settingsView
	readerView
)

// tabViews are the screens reachable from the navbar, in tab order.
var tabViews = []screenType{homeView, searchView, settingsView}

// inputCapturer is implemented by screens with a text input that needs the
// keys otherwise bound globally.
type inputCapturer interface {
	CapturingInput() bool
}

type RootScreen struct {
	ctx        context.Context
	controller *services.QuranController
	logger     *log.Logger

	currentView screenType
	splash      *SplashScreen
	home        *HomeScreen
	search      *SearchScreen
	settings    *SettingsScreen
	reader      *ReaderScreen

	width  int
	height int
}

func NewRootScreen(ctx context.Context, controller *services.QuranController, logger *log.Logger) *RootScreen {
	return &RootScreen{
		ctx:         ctx,
		controller:  controller,
		logger:      logger,
		currentView: splashView,
		splash:      NewSplashScreen(ctx, controller.Bootstrap, controller.Seeder.GetProgressChannel()),
		home:        NewHomeScreen(ctx, controller),
		search:      NewSearchScreen(ctx, controller),
		settings:    NewSettingsScreen(ctx, controller, logger),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.splash.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !r.capturingInput() {
				return r, tea.Quit
			}
		case "tab", "shift+tab":
			if !r.showsTabs() {
				break
			}
			dir := 1
			if msg.String() == "shift+tab" {
				dir = -1
			}
			return r, r.show(rotate(tabViews, r.currentView, dir))
		}

	case BootstrapDoneMsg:
		r.splash.Update(msg)
		if msg.Err != nil {
			r.logger.Error("bootstrap failed", "err", msg.Err)
			return r, nil
		}
		r.logger.Info("store ready", "skipped", msg.Result.Skipped, "verses", msg.Result.Verses)
		return r, r.show(homeView)

	case SwitchScreenMsg:
		// Handle screen switching from sub-screens
		switch msg.Screen {
		case ScreenHome:
			cmd = r.show(homeView)
		case ScreenSearch:
			cmd = r.show(searchView)
		case ScreenSettings:
			cmd = r.show(settingsView)
		case ScreenReader:
			if target, ok := msg.Data.(ReaderTarget); ok {
				cmd = r.openReader(target)
			}
		}
		return r, cmd

	case PreferencesChangedMsg:
		styles.Apply(r.controller.Preferences.State().Theme)
		r.home.Update(msg)
		r.search.Update(msg)
		r.settings.Update(msg)
		return r, nil
	}

	// Forward message to active screen
	switch r.currentView {
	case splashView:
		newModel, newCmd := r.splash.Update(msg)
		r.splash = newModel.(*SplashScreen)
		return r, newCmd
	case homeView:
		newModel, newCmd := r.home.Update(msg)
		r.home = newModel.(*HomeScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case settingsView:
		newModel, newCmd := r.settings.Update(msg)
		r.settings = newModel.(*SettingsScreen)
		return r, newCmd
	case readerView:
		if r.reader != nil {
			newModel, newCmd := r.reader.Update(msg)
			r.reader = newModel.(*ReaderScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) show(view screenType) tea.Cmd {
	r.currentView = view
	switch view {
	case homeView:
		return r.home.Init()
	case searchView:
		return r.search.Init()
	case settingsView:
		return r.settings.Init()
	}
	return nil
}

func (r *RootScreen) openReader(target ReaderTarget) tea.Cmd {
	surah, err := r.controller.Surah(target.Surah)
	if err != nil {
		r.logger.Warn("cannot open reader", "surah", target.Surah, "err", err)
		return nil
	}
	r.reader = NewReaderScreen(r.ctx, r.controller, r.logger, surah, target.Ayah)
	r.reader.Update(r.contentSize())
	r.currentView = readerView
	return r.reader.Init()
}

// contentSize is the area left to screens inside the frame and navbar.
func (r *RootScreen) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: max(r.width-4, 0), Height: max(r.height-4, 0)}
}

func (r *RootScreen) resize() tea.Cmd {
	size := r.contentSize()
	r.splash.Update(size)
	r.home.Update(size)
	r.search.Update(size)
	r.settings.Update(size)
	if r.reader != nil {
		r.reader.Update(size)
	}
	return nil
}

func (r *RootScreen) capturingInput() bool {
	var active tea.Model
	switch r.currentView {
	case homeView:
		active = r.home
	case searchView:
		active = r.search
	}
	c, ok := active.(inputCapturer)
	return ok && c.CapturingInput()
}

func (r *RootScreen) showsTabs() bool {
	return r.currentView != splashView && r.currentView != readerView
}

func (r *RootScreen) View() string {
	// Render tabs
	tabs := r.renderTabs()

	// Render active screen
	var content string
	switch r.currentView {
	case splashView:
		content = r.splash.View()
	case homeView:
		content = r.home.View()
	case searchView:
		content = r.search.View()
	case settingsView:
		content = r.settings.View()
	case readerView:
		if r.reader != nil {
			content = r.reader.View()
		}
	}

	view := content
	if tabs != "" {
		view = fmt.Sprintf("%s\n\n%s", tabs, content)
	}
	if r.width == 0 {
		return view
	}
	return styles.AppStyle.Width(r.width).Height(r.height).Render(view)
}

func (r *RootScreen) renderTabs() string {
	if !r.showsTabs() {
		// Don't show tabs on the splash or in the reader
		return ""
	}

	text := locale.For(r.controller.Preferences.State().Language)
	labels := map[screenType]string{
		homeView:     text.TabQuran,
		searchView:   text.TabSearch,
		settingsView: text.TabSettings,
	}

	rendered := make([]string, len(tabViews))
	for i, view := range tabViews {
		if view == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(labels[view])
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(labels[view])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
