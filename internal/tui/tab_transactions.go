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

func (a App) renderTransactionsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Filter header
	category := categoryFilters()[a.tx.categoryIdx]
	sortLabel := query.SortOptions[a.tx.sortIdx].Label
	header := labelStyle.Render(" sort ") + valStyle.Render(sortLabel) +
		labelStyle.Render("  category ") + valStyle.Render(category)
	if a.tx.searching {
		header += labelStyle.Render("  search ") + a.tx.searchInput.View()
	} else if a.tx.searchQuery != "" {
		header += labelStyle.Render("  search ") + valStyle.Render(a.tx.searchQuery)
	}
	b.WriteString(header)
	b.WriteString("\n")

	res := a.txResult()
	if len(res.Transactions) == 0 {
		b.WriteString(components.ContentCard("Transactions", mutedStyle.Render("No transactions match."), cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 40
	if nameW < 12 {
		nameW = 12
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body strings.Builder
	for _, tr := range res.Transactions {
		fmt.Fprintf(&body, "%s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(tr.Name, nameW))),
			catStyle.Render(fmt.Sprintf("%-14s", truncStr(tr.Category, 14))),
			catStyle.Render(fmt.Sprintf("%11s", cli.FormatDate(tr.Date))),
			fmt.Sprintf("%12s", amountStyled(tr.Amount)))
	}

	b.WriteString(components.ContentCard("Transactions", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" Page %d of %d  ·  %d transactions  ·  [a]dd  [/]search",
		a.tx.page, res.TotalPages, res.TotalCount)))

	return b.String()
}
