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

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	summaries := query.BudgetSummaries(a.ds, a.refDate.Month(), a.refDate.Year())
	if len(summaries) == 0 {
		b.WriteString(components.ContentCard("Budgets",
			mutedStyle.Render("No budgets yet. Press [a] to add one."), cw))
		return b.String()
	}

	var totalSpent, totalMax float64
	for _, s := range summaries {
		totalSpent += s.Spent
		totalMax += s.Maximum
	}

	cards := []struct{ Label, Value, Note string }{
		{"Total Spent", cli.FormatMoney(totalSpent), ""},
		{"Total Limit", cli.FormatMoney(totalMax), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	for _, s := range summaries {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Theme)).Render("●")
		title := dot + " " + s.Category

		var body strings.Builder
		body.WriteString(components.UtilizationBar("", s.Utilization, 0, barW))
		body.WriteString("\n")
		fmt.Fprintf(&body, "%s %s %s %s\n",
			mutedStyle.Render("Spent"),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(cli.FormatMoney(s.Spent)),
			mutedStyle.Render("of"),
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(cli.FormatMoney(s.Maximum)))
		if s.Spent > s.Maximum {
			over := s.Spent - s.Maximum
			body.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(
				fmt.Sprintf("Over by %s", cli.FormatMoney(over))))
			body.WriteString("\n")
		} else {
			fmt.Fprintf(&body, "%s %s\n",
				mutedStyle.Render("Remaining"),
				lipgloss.NewStyle().Foreground(t.Green).Render(cli.FormatMoney(s.Remaining)))
		}

		// Latest three transactions in this category
		latest := query.LatestTransactionsByCategory(a.ds, s.Category, 3)
		if len(latest) > 0 {
			body.WriteString("\n")
			for _, tr := range latest {
				fmt.Fprintf(&body, "%s %s %s\n",
					mutedStyle.Render(fmt.Sprintf("%-20s", truncStr(tr.Name, 20))),
					mutedStyle.Render(cli.FormatDateShort(tr.Date)),
					amountStyled(tr.Amount))
			}
		}

		b.WriteString(components.ContentCard(title, body.String(), cw))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(" [a]dd budget"))
	return b.String()
}
