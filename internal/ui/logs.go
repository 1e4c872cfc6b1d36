package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/logtail"
)

// logState holds the activity log view's state.
type logState struct {
	lines    []string
	err      error
	follow   bool
	rendered bool
}

type logLinesMsg struct {
	lines []string
	err   error
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-4, 10), max(m.height-5, 3))
}

// refreshLogs reads the tail of the log file off the event loop.
func (m Model) refreshLogs() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogLineLimit)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.FormatLines(lines)}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logState.err = msg.err
	if msg.err == nil {
		m.logState.lines = msg.lines
	}
	m.logState.rendered = false
	m.updateLogViewport()
}

// updateLogViewport sizes the viewport and re-renders content when stale.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	// Box height = m.height - 3 (header, cmdbar, status); inner = box - 2.
	m.logViewport.Width = max(m.width-4, 10)
	m.logViewport.Height = max(m.height-5, 3)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	if !m.logState.rendered {
		m.logViewport.SetContent(m.renderLogContent())
		m.logState.rendered = true
	}
	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBrowse
		return m, nil
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshLogs()
	case key.Matches(msg, m.keys.FirstPage):
		m.logState.follow = false
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.LastPage):
		m.logViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	if !m.logViewport.AtBottom() {
		m.logState.follow = false
	}
	return m, cmd
}

// renderLogs renders the log box and its status line.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	box := m.renderTitledBox("Activity Log", m.logViewport.View(), m.width, m.height-3)

	autoTail := "off"
	if m.logState.follow {
		autoTail = "on"
	}
	status := fmt.Sprintf("%d lines  auto-tail %s", len(m.logState.lines), autoTail)
	if m.logPath != "" {
		status += "  " + truncateMiddle(m.logPath, 50)
	}
	return box + "\n" + lipgloss.NewStyle().Padding(0, 1).Render(styles.FaintText.Render(status))
}

// renderLogContent colors each formatted entry by level.
func (m *Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.logViewport.Width

	if m.logState.err != nil {
		return bg.FillLine(bg.Render("Cannot read log: "+m.logState.err.Error(), styles.DangerText), width)
	}
	if len(m.logState.lines) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	var out []string
	for _, entry := range m.logState.lines {
		for _, line := range strings.Split(entry, "\n") {
			out = append(out, bg.FillLine(m.colorizeLogLine(line, styles, bg), width))
		}
	}
	return strings.Join(out, "\n")
}

// colorizeLogLine styles a formatted line: detail lines are dim, header
// lines get a colored level and component.
func (m *Model) colorizeLogLine(line string, styles Styles, bg BgStyle) string {
	if detail, ok := strings.CutPrefix(line, "    - "); ok {
		return bg.Spaces(4) + bg.Render(detail, styles.MutedText)
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return bg.Render(line, styles.Text)
	}
	// "date time LEVEL [component] – message"
	ts := fields[0] + " " + fields[1]
	level := fields[2]
	rest := strings.TrimPrefix(line, ts+" "+level)

	var b strings.Builder
	b.WriteString(bg.Render(ts, styles.FaintText))
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(level, styles.LevelStyle(level)))
	if component, tail, ok := cutComponent(rest); ok {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(component, styles.AccentText))
		rest = tail
	}
	b.WriteString(bg.Render(rest, styles.Text))
	return b.String()
}

// cutComponent splits a leading " [component]" from s.
func cutComponent(s string) (string, string, bool) {
	trimmed := strings.TrimPrefix(s, " ")
	if !strings.HasPrefix(trimmed, "[") {
		return "", s, false
	}
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return "", s, false
	}
	return trimmed[:end+1], trimmed[end+1:], true
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderFocus))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(m.theme.FocusBg))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	return top + "\n" + strings.Join(lines, "\n") + "\n" + bottom
}
