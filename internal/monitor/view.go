package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boardwatch/internal/api"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderMemberCards())
	b.WriteString("\n")

	if m.logReady {
		b.WriteString(LogPaneStyle.Width(m.width - 2).Render(m.logViewport.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the session header: title, status, stage, speaker,
// and the age of the last applied snapshot.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("boardwatch")

	var parts []string

	switch {
	case m.starting:
		parts = append(parts, "starting...")
	case m.live:
		parts = append(parts, "live")
	case m.lastStatus == api.StatusCompleted:
		parts = append(parts, "completed")
	case m.lastStatus == api.StatusError:
		parts = append(parts, "errored")
	default:
		parts = append(parts, "idle")
	}

	if m.stage != "" {
		parts = append(parts, "stage "+m.stage)
	}
	if m.speaker != "" {
		parts = append(parts, "speaking: "+m.speaker)
	}
	if !m.lastUpdate.IsZero() {
		age := m.SecondsSinceUpdate()
		switch age {
		case 0:
			parts = append(parts, "updated just now")
		case 1:
			parts = append(parts, "updated 1s ago")
		default:
			parts = append(parts, fmt.Sprintf("updated %ds ago", age))
		}
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	return HeaderStyle.Render(title + stats)
}

// renderMemberCards renders the grid of member cards in creation order.
func (m Model) renderMemberCards() string {
	if len(m.order) == 0 {
		return m.renderEmptyState()
	}

	cardWidth := m.calculateCardWidth()

	var cards []string
	for _, id := range m.order {
		cards = append(cards, m.renderMemberCard(m.members[id], cardWidth))
	}

	return m.layoutCards(cards, cardWidth)
}

// calculateCardWidth determines the card width from the terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 {
		return 40 // Default width
	}
	if m.width >= 80 {
		return 38
	}
	return m.width - 4 // Single column with margin
}

// waveWidth is the waveform surface width in cells inside a card.
func (m Model) waveWidth() int {
	return m.calculateCardWidth() - 2
}

// layoutCards arranges cards in rows based on terminal width.
func (m Model) layoutCards(cards []string, cardWidth int) string {
	cardsPerRow := 1
	if m.width > 0 {
		// Account for card margins and borders
		effectiveCardWidth := cardWidth + 3
		cardsPerRow = m.width / effectiveCardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderEventLog renders log entries oldest-first for the viewport.
func (m Model) renderEventLog() string {
	entries := m.events.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(ColorTextMuted).Render("no events")
	}

	var lines []string
	for _, e := range entries {
		line := LogTimeStyle.Render(e.At.Format("15:04:05")) +
			" " +
			CategoryStyle(e.Category).Render(fmt.Sprintf("[%s]", e.Category)) +
			" " +
			ValueStyle.Render(e.Message)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"s start",
		"e end",
		"c clear log",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
