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

func (a App) renderBillsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bills := query.RecurringBills(a.ds)
	sum := query.SummarizeBills(bills, a.refDate)

	cards := []struct{ Label, Value, Note string }{
		{"Paid Bills", cli.FormatMoney(sum.PaidAmount), fmt.Sprintf("%d bills", sum.PaidCount)},
		{"Total Upcoming", cli.FormatMoney(sum.UpcomingAmount), fmt.Sprintf("%d bills", sum.UpcomingCount)},
		{"Due Soon", cli.FormatMoney(sum.DueSoonAmount), fmt.Sprintf("%d bills", sum.DueSoonCount)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Filter header
	header := labelStyle.Render(" sort ") + valStyle.Render(a.bills.sortBy)
	if a.bills.searching {
		header += labelStyle.Render("  search ") + a.bills.searchInput.View()
	} else if a.bills.searchQuery != "" {
		header += labelStyle.Render("  search ") + valStyle.Render(a.bills.searchQuery)
	}
	b.WriteString(header)
	b.WriteString("\n")

	bills = query.SearchBills(bills, a.bills.searchQuery)
	bills = query.SortBills(bills, a.bills.sortBy)

	if len(bills) == 0 {
		b.WriteString(components.ContentCard("Bills", mutedStyle.Render("No bills match."), cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 38
	if nameW < 12 {
		nameW = 12
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	dueStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	var body strings.Builder
	for _, bill := range bills {
		status := query.ClassifyBill(bill, a.refDate)
		var statusStr string
		switch status {
		case query.BillPaid:
			statusStr = paidStyle.Render(fmt.Sprintf("%-8s", status))
		case query.BillDueSoon:
			statusStr = dueStyle.Render(fmt.Sprintf("%-8s", status))
		default:
			statusStr = mutedStyle.Render(fmt.Sprintf("%-8s", status))
		}
		fmt.Fprintf(&body, "%s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(bill.Name, nameW))),
			mutedStyle.Render(fmt.Sprintf("%-14s", cli.FormatMonthly(bill.Date))),
			statusStr,
			fmt.Sprintf("%12s", amountStyled(bill.Amount)))
	}

	b.WriteString(components.ContentCard("Bills", body.String(), cw))
	return b.String()
}
