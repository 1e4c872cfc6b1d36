package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

const (
	detailMaxWidth  = 64
	detailMaxHeight = 24
)

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(detailMaxWidth-6, detailMaxHeight-6)
}

// detailSize returns the modal's outer width and height for the terminal.
func (m Model) detailSize() (int, int) {
	return min(detailMaxWidth, max(m.width-4, 20)), min(detailMaxHeight, max(m.height-2, 8))
}

// updateDetailViewport sizes the modal body and refreshes its content.
func (m *Model) updateDetailViewport() {
	if m.session == nil {
		return
	}
	w, h := m.detailSize()
	m.detailViewport.Width = w - 6  // border + padding
	m.detailViewport.Height = h - 6 // border, padding, title and footer
	if d := m.session.State.Selected; d != nil {
		m.detailViewport.SetContent(m.renderDetailBody(*d, m.detailViewport.Width))
	}
}

// renderDetail renders the detail modal centered over the screen.
func (m Model) renderDetail() string {
	d := m.session.State.Selected
	if d == nil {
		return m.renderMain()
	}
	styles := m.theme.Styles()
	w, _ := m.detailSize()

	title := styles.AccentText.Bold(true).Render(truncate(d.Name, w-6))
	footer := styles.FaintText.Render("esc close · j/k scroll")
	if m.detailViewport.TotalLineCount() > m.detailViewport.Height {
		footer += styles.FaintText.Render(fmt.Sprintf(" · %3.f%%", m.detailViewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.detailViewport.View(), footer)
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(w - 2).
		Render(body)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderDetailBody renders the enriched attributes and the film list.
func (m Model) renderDetailBody(d state.Detail, width int) string {
	styles := m.theme.Styles()
	labelStyle := styles.FaintText.Width(12)

	type field struct{ label, value string }
	fields := []field{
		{"Born", d.BirthYear},
		{"Gender", titleCase(d.Gender)},
		{"Homeworld", d.HomeworldName},
		{"Species", d.SpeciesName},
	}
	optional := []field{
		{"Height", d.Height},
		{"Mass", d.Mass},
		{"Hair", d.HairColor},
		{"Skin", d.SkinColor},
		{"Eyes", d.EyeColor},
	}
	for _, f := range optional {
		if strings.TrimSpace(f.value) != "" {
			fields = append(fields, f)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString(styles.Text.Render(truncate(orDash(f.value), max(width-12, 1))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("Films (%d)", len(d.FilmTitles))))
	b.WriteString("\n")
	if len(d.FilmTitles) == 0 {
		b.WriteString(styles.MutedText.Render("No film appearances"))
		return b.String()
	}
	for i, title := range d.FilmTitles {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%2d. ", i+1)))
		b.WriteString(styles.Text.Render(truncate(title, max(width-4, 1))))
		if i < len(d.FilmTitles)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
