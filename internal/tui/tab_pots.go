package tui

import (
	"fmt"
	"strings"

	"finboard/internal/cli"
	"finboard/internal/query"
	"finboard/internal/tui/components"
	"finboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPotsTab(cw int) string {
	t := theme.Active
	ds := a.ds
	var b strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	cards := []struct{ Label, Value, Note string }{
		{"Total Saved", cli.FormatMoney(query.TotalSaved(ds)), fmt.Sprintf("%d pots", len(ds.Pots))},
		{"Current Balance", cli.FormatMoney(ds.Balance.Current), "available to deposit"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(ds.Pots) == 0 {
		b.WriteString(components.ContentCard("Pots",
			mutedStyle.Render("No pots yet. Press [a] to add one."), cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 24
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	for i, p := range ds.Pots {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme)).Render("●")
		title := dot + " " + p.Name
		if i == a.pots.cursor {
			title = dot + " " + lipgloss.NewStyle().
				Foreground(t.AccentBright).Bold(true).Render(p.Name+" ◂")
		}

		pct := 0.0
		if p.Target > 0 {
			pct = p.Total / p.Target
		}

		var body strings.Builder
		body.WriteString(components.ProgressBar(pct, barW))
		body.WriteString("\n")
		fmt.Fprintf(&body, "%s %s %s %s\n",
			mutedStyle.Render("Saved"),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(cli.FormatMoney(p.Total)),
			mutedStyle.Render("of"),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(cli.FormatMoney(p.Target)))

		b.WriteString(components.ContentCard(title, body.String(), cw))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(" [j/k] select  [d]eposit  [w]ithdraw  [a]dd pot"))
	return b.String()
}
