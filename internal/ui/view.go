package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

// renderMain renders the header, command bar and the active view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderBrowse())
	}
	return b.String()
}

// renderBrowse renders the search box, grid, pagination bar and status line.
func (m Model) renderBrowse() string {
	contentHeight := max(m.height-chromeHeight, cardHeight)

	var content string
	st := m.currentState()
	switch {
	case st.ShowLoading():
		content = m.renderCentered(m.spinner.View()+" Loading characters...", contentHeight)
	case st.ShowEmpty():
		content = m.renderEmpty(st, contentHeight)
	default:
		content = m.renderGrid(m.width, contentHeight)
	}

	parts := []string{
		m.renderSearch(),
		content,
		m.renderPagination(m.width),
		m.renderStatus(),
	}
	return strings.Join(parts, "\n")
}

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < LayoutCompactWidth
	st := m.currentState()

	parts := []string{bg.Render("roster", styles.Logo)}
	if !compact && m.apiURL != "" {
		parts = append(parts, bg.Render(truncateMiddle(displayHost(m.apiURL), 40), styles.MutedText))
	}

	switch {
	case st.Loading:
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+bg.Render("Loading", styles.WarningText))
	case st.LoadErr != nil:
		parts = append(parts, bg.Render("Offline", styles.DangerText))
	default:
		parts = append(parts, bg.Render(fmt.Sprintf("%d characters", st.Total), styles.Text))
	}

	parts = append(parts, bg.Render(fmt.Sprintf("Page %d/%d", st.CurrentPage, st.TotalPages), styles.AccentText))
	if st.Query != "" {
		parts = append(parts, bg.Render("search", styles.FaintText)+bg.Space()+
			bg.Render(truncate(st.Query, 24), styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewLogs:
		followLabel := "Pause"
		if !m.logState.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"L", "Characters"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"enter", "Details"},
			{"[/]", "Page"},
			{"r", "Reload"},
			{"L", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

func (m Model) renderSearch() string {
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(m.search.View())
}

func (m Model) renderEmpty(st state.State, height int) string {
	styles := m.theme.Styles()
	if st.LoadErr != nil {
		msg := styles.DangerText.Render("Failed to load characters") + "\n" +
			styles.FaintText.Render("press r to retry or L for the activity log")
		return m.renderCentered(msg, height)
	}
	msg := "No characters found"
	if st.Query != "" {
		msg = fmt.Sprintf("No characters match %q", truncate(st.Query, 40))
	}
	return m.renderCentered(styles.MutedText.Render(msg), height)
}

func (m Model) renderCentered(content string, height int) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatus renders the bottom line: a transient notice, the enrichment
// in progress or the visible range.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	st := m.currentState()

	var line string
	switch {
	case m.notice != "":
		line = styles.WarningText.Render(m.notice)
	case st.Enriching:
		name := ""
		if c, ok := st.Highlighted(); ok {
			name = " for " + c.Name
		}
		line = m.spinner.View() + styles.MutedText.Render(" Loading details"+name+"... esc to cancel")
	case st.ShowPagination():
		first, last := visibleRange(st)
		line = styles.FaintText.Render(fmt.Sprintf("Showing %d-%d of %d", first, last, st.Total))
	default:
		line = m.help.View(m.keys)
	}
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(truncate(line, max(m.width-2, 0)))
}

// currentState returns the session state, or the mount state when the model
// has no session.
func (m Model) currentState() state.State {
	if m.session == nil {
		return state.New()
	}
	return m.session.State
}

// visibleRange returns the 1-based positions of the first and last character
// on the current page.
func visibleRange(st state.State) (int, int) {
	if len(st.Characters) == 0 {
		return 0, 0
	}
	first := (st.CurrentPage-1)*state.ItemsPerPage + 1
	return first, first + len(st.Characters) - 1
}

func displayHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host + strings.TrimSuffix(u.Path, "/")
}
