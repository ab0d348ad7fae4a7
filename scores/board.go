package scores

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Leaderboard column widths. Player names grow with the data between these
// bounds; everything else is fixed.
const (
	rankWidth      = 5
	scoreWidth     = 8
	dateWidth      = 16
	minPlayerWidth = 6
	maxPlayerWidth = 20
)

// FormatLeaderboard renders score entries as a bordered table for terminal
// display. Entries appear in the order given; feed it the result of
// TopScores. When width is zero or negative the current terminal width is
// used, falling back to 80 when stdout is not a terminal.
func FormatLeaderboard(title string, entries []Entry, width int) string {
	if width <= 0 {
		width = 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		content = emptyStyle.Render("No scores recorded yet.")
	} else {
		content = renderScoreRows(entries, width)
	}

	box := boxStyle.Render(content)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Width(lipgloss.Width(box)).
		Align(lipgloss.Center)

	return titleStyle.Render(title) + "\n" + box
}

// renderScoreRows lays out the rank/player/score/date columns.
func renderScoreRows(entries []Entry, width int) string {
	playerWidth := minPlayerWidth
	for _, e := range entries {
		if len(e.Player) > playerWidth {
			playerWidth = len(e.Player)
		}
	}
	// Keep the box inside the terminal; fixed columns, gaps, and the
	// border take the rest of the line.
	fixed := rankWidth + scoreWidth + dateWidth + 10
	if max := width - fixed; playerWidth > max && max >= minPlayerWidth {
		playerWidth = max
	}
	if playerWidth > maxPlayerWidth {
		playerWidth = maxPlayerWidth
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(headerStyle.Render(
		fmt.Sprintf("%-*s  %-*s  %-*s  %s", rankWidth, "Rank", playerWidth, "Player", scoreWidth, "Score", "Date"),
	))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", rankWidth+playerWidth+scoreWidth+dateWidth+6))

	for i, e := range entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		if len(player) > playerWidth {
			player = player[:playerWidth-1] + "."
		}

		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Format("2006-01-02 15:04")
		}

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-*s  %-*s  %-*d  %s",
			rankWidth, fmt.Sprintf("#%d", i+1),
			playerWidth, player,
			scoreWidth, e.Score,
			dateStyle.Render(date),
		))
	}

	return b.String()
}
