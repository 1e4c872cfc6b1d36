package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/catalog"
)

// gridColumns returns the number of card columns for the current width.
func (m Model) gridColumns() int {
	if m.columns > 0 {
		return m.columns
	}
	switch {
	case m.width >= LayoutThreeColumnWidth:
		return 3
	case m.width >= LayoutTwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// renderGrid lays out the current page as cards, scrolling by whole rows so
// the highlighted card stays visible.
func (m Model) renderGrid(width, height int) string {
	st := m.currentState()
	cols := m.gridColumns()
	cardWidth := max((width-2-(cols-1)*cardGap)/cols, 12)

	rows := (len(st.Characters) + cols - 1) / cols
	visible := max(height/cardHeight, 1)
	start, end := gridWindow(st.Cursor/cols, rows, visible)

	var lines []string
	for row := start; row < end; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(st.Characters) {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(st.Characters[idx], cardWidth, idx == st.Cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, grid)
}

// renderCard renders one character summary. The highlighted card uses the
// focus colors.
func (m Model) renderCard(c catalog.Character, width int, selected bool) string {
	borderColor := m.theme.Border
	bgColor := m.theme.SurfaceAlt
	if selected {
		borderColor = m.theme.BorderFocus
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	inner := width - 4

	name := bg.Render(truncate(c.Name, inner), styles.Text.Bold(true))
	born := bg.Render("Born", styles.FaintText) + bg.Space() +
		bg.Render(truncate(orDash(c.BirthYear), max(inner-5, 1)), styles.MutedText)
	gender := bg.Render("Gender", styles.FaintText) + bg.Space() +
		bg.Render(truncate(titleCase(orDash(c.Gender)), max(inner-7, 1)), styles.MutedText)

	body := strings.Join([]string{
		bg.FillLine(name, inner),
		bg.FillLine(born, inner),
		bg.FillLine(gender, inner),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}

// renderPagination renders prev, one button per page and next. Buttons
// outside the current bounds are dimmed.
func (m Model) renderPagination(width int) string {
	st := m.currentState()
	if !st.ShowPagination() {
		return ""
	}
	styles := m.theme.Styles()
	button := lipgloss.NewStyle().Padding(0, 1)

	prev := button.Inherit(styles.FaintText).Render("‹ Prev")
	if st.HasPrev() {
		prev = button.Inherit(styles.AccentText).Render("‹ Prev")
	}
	next := button.Inherit(styles.FaintText).Render("Next ›")
	if st.HasNext() {
		next = button.Inherit(styles.AccentText).Render("Next ›")
	}

	parts := []string{prev}
	for _, page := range st.PageButtons() {
		label := strconv.Itoa(page)
		if page == st.CurrentPage {
			parts = append(parts, button.Inherit(styles.Selected).Render(label))
			continue
		}
		parts = append(parts, button.Inherit(styles.MutedText).Render(label))
	}
	parts = append(parts, next)

	bar := strings.Join(parts, " ")
	return lipgloss.NewStyle().Padding(0, 1).Render(truncate(bar, max(width-2, 0)))
}

// gridWindow returns the [start, end) row range that shows cursorRow.
func gridWindow(cursorRow, rows, visible int) (int, int) {
	if rows <= visible {
		return 0, rows
	}
	start := 0
	if cursorRow >= visible {
		start = cursorRow - visible + 1
	}
	if start+visible > rows {
		start = rows - visible
	}
	return start, start + visible
}
