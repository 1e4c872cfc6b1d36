package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/browse"
	"github.com/five82/roster/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *browse.Session
	APIURL    string
	LogPath   string
	ThemeName string
	Columns   int // 0 picks from terminal width
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	session   *browse.Session
	apiURL    string
	logPath   string
	prefsPath string
	columns   int

	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	search  textinput.Model
	spinner spinner.Model

	detailViewport viewport.Model

	logViewport viewport.Model
	logState    logState

	notice   string
	noticeID int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search characters"
	search.Prompt = "/ "
	search.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		session:     opts.Session,
		apiURL:      opts.APIURL,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		columns:     opts.Columns,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewBrowse,
		search:      search,
		spinner:     spin,
		logState:    logState{follow: true},
	}
	m.applyThemeToInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.session != nil {
		cmds = append(cmds, listCmd(m.session.Mount()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.search.Width = max(m.width-8, 10)
		m.help.Width = m.width
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounceMsg:
		if m.session == nil {
			return m, nil
		}
		return m, listCmd(m.session.OnDebounce(msg.gen))

	case listResultMsg:
		if m.session == nil {
			return m, nil
		}
		return m, listCmd(m.session.ApplyList(browse.ListResult(msg)))

	case detailResultMsg:
		return m.handleDetailResult(browse.DetailResult(msg))

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case noticeClearMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.currentView == ViewBrowse && m.session != nil && m.session.State.ModalOpen() {
		return m.renderDetail()
	}
	return m.renderMain()
}

func (m Model) handleDetailResult(res browse.DetailResult) (tea.Model, tea.Cmd) {
	if m.session == nil || !m.session.ApplyDetail(res) {
		return m, nil
	}
	if res.Err != nil {
		return m, m.setNotice("Could not load details for " + res.Request.Name)
	}
	m.detailViewport.GotoTop()
	m.updateDetailViewport()
	return m, nil
}

// setNotice shows msg in the status line until NoticeTimeout passes.
func (m *Model) setNotice(msg string) tea.Cmd {
	m.noticeID++
	m.notice = msg
	id := m.noticeID
	return tea.Tick(NoticeTimeout, func(time.Time) tea.Msg {
		return noticeClearMsg{id: id}
	})
}

func (m *Model) applyThemeToInputs() {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
}

// Messages

type listResultMsg browse.ListResult

type detailResultMsg browse.DetailResult

type debounceMsg struct {
	gen uint64
}

type noticeClearMsg struct {
	id int
}

// Commands

func listCmd(work func() browse.ListResult) tea.Cmd {
	if work == nil {
		return nil
	}
	return func() tea.Msg {
		return listResultMsg(work())
	}
}

func detailCmd(work func() browse.DetailResult) tea.Cmd {
	if work == nil {
		return nil
	}
	return func() tea.Msg {
		return detailResultMsg(work())
	}
}

func debounceCmd(gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
