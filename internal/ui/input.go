package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/prefs"
)

// handleKey routes keyboard input: overlays first, then the focused input,
// then the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.session != nil && m.session.State.ModalOpen() && m.currentView == ViewBrowse {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyThemeToInputs()
		m.logState.rendered = false
		m.updateLogViewport()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Columns: m.columns})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		if m.currentView == ViewLogs {
			m.currentView = ViewBrowse
			return m, nil
		}
		m.currentView = ViewLogs
		return m, m.refreshLogs()
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleSearchKey feeds the search box. Every edit restarts the debounce
// timer; nothing is fetched until typing pauses.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.session == nil || m.search.Value() == before {
		return m, cmd
	}

	gen := m.session.OnSearchChange(m.search.Value(), time.Now())
	return m, tea.Batch(cmd, debounceCmd(gen, m.session.SearchDelay()))
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	s := m.session
	cols := m.gridColumns()

	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if s.State.Enriching {
			s.OnModalClose()
			return m, nil
		}
		if m.search.Value() == "" && s.State.SearchTerm == "" {
			return m, nil
		}
		m.search.SetValue("")
		gen := s.OnSearchClear(time.Now())
		return m, debounceCmd(gen, s.SearchDelay())

	case key.Matches(msg, m.keys.Left):
		s.State.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		s.State.MoveCursor(1)
	case key.Matches(msg, m.keys.Up):
		s.State.MoveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		s.State.MoveCursor(cols)

	case key.Matches(msg, m.keys.Open):
		if s.State.Enriching || !s.State.ShowPagination() {
			return m, nil
		}
		return m, detailCmd(s.OpenHighlighted())

	case key.Matches(msg, m.keys.Refresh):
		return m, listCmd(s.Refresh())

	case key.Matches(msg, m.keys.NextPage):
		return m, listCmd(s.NextPage())
	case key.Matches(msg, m.keys.PrevPage):
		return m, listCmd(s.PrevPage())
	case key.Matches(msg, m.keys.FirstPage):
		return m, listCmd(s.FirstPage())
	case key.Matches(msg, m.keys.LastPage):
		return m, listCmd(s.LastPage())

	case key.Matches(msg, m.keys.GoToPage):
		page, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		return m, listCmd(s.OnPageChange(page))
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Quit):
		m.session.OnModalClose()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}
