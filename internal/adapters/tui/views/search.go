package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"locator/internal/adapters/tui/styles"
	"locator/internal/application/commands"
	"locator/internal/domain"
	"locator/internal/ports"
)

// DebounceDelay is how long typing must pause before a query runs
const DebounceDelay = 150 * time.Millisecond

const pageSize = 10

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Launch   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Clear    key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "prev page"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear/quit"),
	),
}

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	searcher ports.Searcher
	launcher ports.Launcher

	input     textinput.Model
	spinner   spinner.Model
	paginator *Paginator

	results   []domain.Resource
	query     string // query the results belong to
	pending   int    // id of the newest debounce tick
	searching bool
	cancel    context.CancelFunc

	copy func(string) error
}

// NewSearchModel creates a new search view model
func NewSearchModel(searcher ports.Searcher, launcher ports.Launcher) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Type to search applications and files..."
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &SearchModel{
		searcher:  searcher,
		launcher:  launcher,
		input:     input,
		spinner:   sp,
		paginator: NewPaginator(pageSize),
		cancel:    func() {},
		copy:      clipboard.WriteAll,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

type debounceMsg struct {
	id    int
	query string
}

type resultsMsg struct {
	result domain.SearchResult
}

// LaunchedMsg is sent after a resource was handed to the launcher
type LaunchedMsg struct {
	Resource domain.Resource
	Err      error
}

// SwitchToHelpMsg requests the help view
type SwitchToHelpMsg struct{}

// SwitchToSearchMsg requests the search view
type SwitchToSearchMsg struct{}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case debounceMsg:
		if msg.id != m.pending {
			return m, nil
		}
		return m, m.search(msg.query)

	case resultsMsg:
		if !m.searcher.IsCurrent(msg.result.Seq) {
			return m, nil
		}
		m.searching = false
		m.show(msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LaunchedMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else {
			m.SetMessage("Launched "+msg.Resource.Name(), false)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, SearchKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, SearchKeys.Launch):
			r, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, m.launch(r)

		case key.Matches(msg, SearchKeys.Copy):
			r, ok := m.Selected()
			if !ok {
				return m, nil
			}
			if err := m.copy(r.Target()); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied "+r.Target(), false)
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, SearchKeys.Clear):
			if m.input.Value() == "" {
				m.cancel()
				return m, tea.Quit
			}
			m.input.SetValue("")
			return m, m.queryChanged()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.queryChanged())
	}
	return m, cmd
}

// queryChanged schedules a debounced search for the current input. Older
// ticks still in flight are ignored when they fire.
func (m *SearchModel) queryChanged() tea.Cmd {
	m.ClearMessage()
	m.pending++
	id, query := m.pending, m.input.Value()

	if strings.TrimSpace(query) == "" {
		m.cancel()
		m.cancel = func() {}
		// A blank search takes a sequence number without touching the disk,
		// so a cancelled search that still reports back is no longer current
		result, _ := commands.NewSearchCommand(m.searcher, query).Execute(context.Background())
		m.show(result)
		m.searching = false
		return nil
	}

	return tea.Tick(DebounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{id: id, query: query}
	})
}

func (m *SearchModel) show(result domain.SearchResult) {
	m.query = result.Query
	m.results = result.Resources
	m.paginator.Load(len(m.results))
}

// search cancels the previous query and runs query in the background
func (m *SearchModel) search(query string) tea.Cmd {
	m.cancel()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.searching = true

	searcher := m.searcher
	run := func() tea.Msg {
		result, _ := commands.NewSearchCommand(searcher, query).Execute(ctx)
		return resultsMsg{result: result}
	}
	return tea.Batch(run, m.spinner.Tick)
}

func (m *SearchModel) launch(r domain.Resource) tea.Cmd {
	launcher := m.launcher
	return func() tea.Msg {
		err := commands.LaunchResource(context.Background(), launcher, r)
		return LaunchedMsg{Resource: r, Err: err}
	}
}

// Selected returns the resource under the cursor
func (m *SearchModel) Selected() (domain.Resource, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.results) {
		return domain.Resource{}, false
	}
	return m.results[i], true
}

// Results returns the displayed resources
func (m *SearchModel) Results() []domain.Resource {
	return m.results
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Locator")
	v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()

	switch {
	case m.searching && len(m.results) == 0:
		v.Line(m.spinner.View() + " Searching...")
	case strings.TrimSpace(m.input.Value()) == "":
		v.Muted("Start typing to find applications and files")
	case len(m.results) == 0 && strings.TrimSpace(m.query) != "":
		v.Muted("No results found")
	default:
		status := m.paginator.Status()
		if m.searching {
			status += " " + m.spinner.View()
		}
		v.Subtitle(status)
		v.Results(m.results, m.paginator, m.ContentWidth())
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Launch, SearchKeys.Copy, SearchKeys.Help, SearchKeys.Clear)
	return v.String()
}
