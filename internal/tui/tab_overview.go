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

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	ds := a.ds
	var b strings.Builder

	// Row 1: balance cards
	totals := query.DerivedTotals(ds)
	cards := []struct{ Label, Value, Note string }{
		{"Current Balance", cli.FormatMoney(ds.Balance.Current), ""},
		{"Income", cli.FormatMoney(ds.Balance.Income), "all time " + cli.FormatMoney(totals.Income)},
		{"Expenses", cli.FormatMoney(ds.Balance.Expenses), "all time " + cli.FormatMoney(totals.Expenses)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	// Left: pots summary
	var potsBody strings.Builder
	potsBody.WriteString(mutedStyle.Render("Total Saved "))
	potsBody.WriteString(valueStyle.Render(cli.FormatMoney(query.TotalSaved(ds))))
	potsBody.WriteString("\n")
	limit := 4
	if len(ds.Pots) < limit {
		limit = len(ds.Pots)
	}
	for _, p := range ds.Pots[:limit] {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme)).Render("●")
		fmt.Fprintf(&potsBody, "%s %s %s\n",
			dot,
			nameStyle.Render(fmt.Sprintf("%-16s", truncStr(p.Name, 16))),
			mutedStyle.Render(cli.FormatMoney(p.Total)))
	}

	// Right: recent transactions
	var recentBody strings.Builder
	for _, tr := range query.RecentTransactions(ds, 5) {
		fmt.Fprintf(&recentBody, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", innerW-11, truncStr(tr.Name, innerW-12))),
			amountStyled(tr.Amount))
	}

	potsCard := components.ContentCard("Pots", potsBody.String(), halves[0])
	recentCard := components.ContentCard("Recent Transactions", recentBody.String(), halves[1])
	b.WriteString(components.CardRow([]string{potsCard, recentCard}))
	b.WriteString("\n")

	// Row 3: budgets for the reference month
	summaries := query.BudgetSummaries(ds, a.refDate.Month(), a.refDate.Year())
	if len(summaries) > 0 {
		labelW := 0
		for _, s := range summaries {
			if len(s.Category) > labelW {
				labelW = len(s.Category)
			}
		}
		barW := components.CardInnerWidth(cw) - labelW - 7
		if barW > 40 {
			barW = 40
		}
		if barW < 10 {
			barW = 10
		}
		var budgetBody strings.Builder
		for _, s := range summaries {
			budgetBody.WriteString(components.UtilizationBar(s.Category, s.Utilization, labelW, barW))
			budgetBody.WriteString("\n")
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Budgets (%s %d)", a.refDate.Month(), a.refDate.Year()),
			budgetBody.String(), cw))
		b.WriteString("\n")
	}

	// Row 4: recurring bills recap
	bills := query.RecurringBills(ds)
	if len(bills) > 0 {
		sum := query.SummarizeBills(bills, a.refDate)
		var billsBody strings.Builder
		fmt.Fprintf(&billsBody, "%s %s\n",
			mutedStyle.Render("Paid Bills      "),
			valueStyle.Render(cli.FormatMoney(sum.PaidAmount)))
		fmt.Fprintf(&billsBody, "%s %s\n",
			mutedStyle.Render("Total Upcoming  "),
			valueStyle.Render(cli.FormatMoney(sum.UpcomingAmount)))
		fmt.Fprintf(&billsBody, "%s %s\n",
			mutedStyle.Render("Due Soon        "),
			lipgloss.NewStyle().Foreground(t.Orange).Bold(true).Render(cli.FormatMoney(sum.DueSoonAmount)))
		b.WriteString(components.ContentCard("Recurring Bills", billsBody.String(), cw))
	}

	return b.String()
}

// amountStyled renders a signed amount, green for income.
func amountStyled(amount float64) string {
	t := theme.Active
	s := cli.FormatSignedMoney(amount)
	if amount > 0 {
		return lipgloss.NewStyle().Foreground(t.Green).Render(s)
	}
	return lipgloss.NewStyle().Foreground(t.TextPrimary).Render(s)
}
