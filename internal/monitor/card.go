package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card layout constants
const (
	cardThoughtCount = 2 // most recent thoughts shown per card
)

// truncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

// renderMemberCard renders one board member: name line, vitals, waveform,
// stress readout, and the most recent thoughts.
func (m Model) renderMemberCard(mv *memberView, width int) string {
	style := CardStyle.Width(width)
	if mv.speaking {
		style = CardSpeakingStyle.Width(width)
	}

	inner := width - 2 // card padding

	var b strings.Builder

	name := MemberNameStyle.Render(mv.name)
	if mv.speaking {
		name = SpeakingMarkerStyle.Render(SpeakingMarker) + name
	}
	b.WriteString(name)
	b.WriteString("\n")

	vitals := fmt.Sprintf("health %d%%  ·  %d contributions",
		mv.display.HealthPercent, mv.display.Contributions)
	b.WriteString(LabelStyle.Render(vitals))
	b.WriteString("\n")

	b.WriteString(mv.anim.Render())
	b.WriteString("\n")

	stress := BandStyle(mv.display.Band).Render(
		fmt.Sprintf("stress %d%% %s", mv.display.StressPercent, mv.display.Band))
	b.WriteString(stress)

	for _, thought := range recentThoughts(mv.display.Thoughts, cardThoughtCount) {
		b.WriteString("\n")
		b.WriteString(ThoughtStyle.Render(truncateWithEllipsis("“"+thought+"”", inner)))
	}

	return style.Render(b.String())
}

// recentThoughts returns the last n thoughts, newest last.
func recentThoughts(thoughts []string, n int) []string {
	if len(thoughts) <= n {
		return thoughts
	}
	return thoughts[len(thoughts)-n:]
}

// renderEmptyState fills the card area before any member has appeared.
func (m Model) renderEmptyState() string {
	msg := "No board members yet"
	if !m.live && !m.starting {
		msg = "No meeting in progress — press s to start one"
	}
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(1, 2).
		Render(msg)
}
