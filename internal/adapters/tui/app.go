package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"locator/internal/adapters/tui/views"
	"locator/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSearch ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state  ViewState
	search *views.SearchModel
	help   *views.HelpModel

	quitOnLaunch bool

	width  int
	height int
}

// Option configures the App
type Option func(*App)

// WithQuitOnLaunch exits the program after a successful launch
func WithQuitOnLaunch(quit bool) Option {
	return func(a *App) {
		a.quitOnLaunch = quit
	}
}

// NewApp creates a new TUI application
func NewApp(searcher ports.Searcher, launcher ports.Launcher, opts ...Option) *App {
	a := &App{
		state:  ViewSearch,
		search: views.NewSearchModel(searcher, launcher),
		help:   views.NewHelpModel(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, nil

	case views.LaunchedMsg:
		_, cmd := a.search.Update(msg)
		if msg.Err == nil && a.quitOnLaunch {
			return a, tea.Quit
		}
		return a, cmd
	}

	// Keys go to the visible view; everything else keeps the search
	// running underneath the help screen
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey && a.state == ViewHelp {
		_, cmd = a.help.Update(msg)
	} else {
		_, cmd = a.search.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.search.View()
	}
}
