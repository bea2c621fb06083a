package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finboard/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAddTransaction
	formAddBudget
	formAddPot
	formDeposit
	formWithdraw
)

// formValues backs the active huh form. Amounts stay strings until the
// form completes so the inputs can hold partial numbers while typing.
type formValues struct {
	name      string
	amount    string
	category  string
	date      string
	recurring bool
	theme     string
	target    string
	maximum   string
}

type searchInput = textinput.Model

func newSearchInput(current string) searchInput {
	ti := textinput.New()
	ti.Placeholder = "search by name"
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(current)
	ti.Focus()
	return ti
}

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.ThemeColors))
	for i, c := range model.ThemeColors {
		opts[i] = huh.NewOption(c.Name, c.Color)
	}
	return opts
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		opts[i] = huh.NewOption(c, c)
	}
	return opts
}

// openForm activates a modal form of the given kind.
func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.formVals = formValues{
		category: model.Categories[0],
		date:     time.Now().Local().Format("2006-01-02"),
		theme:    model.ThemeColors[0].Color,
	}

	v := &a.formVals
	switch kind {
	case formAddTransaction:
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.name),
			huh.NewInput().Title("Amount").
				Description("Negative for spending, positive for income").
				Value(&v.amount),
			huh.NewSelect[string]().Title("Category").
				Options(categoryOptions()...).
				Value(&v.category),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&v.date),
			huh.NewConfirm().Title("Recurring bill?").Value(&v.recurring),
		))
	case formAddBudget:
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Category").
				Options(categoryOptions()...).
				Value(&v.category),
			huh.NewInput().Title("Maximum").Placeholder("e.g. 75.00").Value(&v.maximum),
			huh.NewSelect[string]().Title("Theme").
				Options(themeOptions()...).
				Value(&v.theme),
		))
	case formAddPot:
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Pot Name").Value(&v.name),
			huh.NewInput().Title("Target").Placeholder("e.g. 2000").Value(&v.target),
			huh.NewSelect[string]().Title("Theme").
				Options(themeOptions()...).
				Value(&v.theme),
		))
	case formDeposit:
		pot := a.ds.Pots[a.pots.cursor]
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Deposit into %s", pot.Name)).
				Description(fmt.Sprintf("Available balance: %.2f", a.ds.Balance.Current)).
				Value(&v.amount),
		))
	case formWithdraw:
		pot := a.ds.Pots[a.pots.cursor]
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Withdraw from %s", pot.Name)).
				Description(fmt.Sprintf("Pot holds: %.2f", pot.Total)).
				Value(&v.amount),
		))
	default:
		return a, nil
	}

	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

// updateForm forwards messages to the active form and applies the result
// when the form completes.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.status = a.applyForm()
		a.form = nil
		a.formKind = formNone
		a.refresh()
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm commits the completed form against the store. The returned
// string is shown in the status bar; empty means success without comment.
func (a App) applyForm() string {
	v := a.formVals

	switch a.formKind {
	case formAddTransaction:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
		if err != nil {
			return fmt.Sprintf("invalid amount %q", v.amount)
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(v.date), time.Local)
		if err != nil {
			return fmt.Sprintf("invalid date %q, want YYYY-MM-DD", v.date)
		}
		t := model.Transaction{
			Name:      strings.TrimSpace(v.name),
			Category:  v.category,
			Date:      date,
			Amount:    amount,
			Recurring: v.recurring,
		}
		if err := a.store.AddTransaction(t); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("added %s", t.Name)

	case formAddBudget:
		maximum, err := strconv.ParseFloat(strings.TrimSpace(v.maximum), 64)
		if err != nil {
			return fmt.Sprintf("invalid maximum %q", v.maximum)
		}
		b := model.Budget{Category: v.category, Maximum: maximum, Theme: v.theme}
		if err := a.store.AddBudget(b); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("budget %s added", b.Category)

	case formAddPot:
		target, err := strconv.ParseFloat(strings.TrimSpace(v.target), 64)
		if err != nil {
			return fmt.Sprintf("invalid target %q", v.target)
		}
		p := model.Pot{Name: strings.TrimSpace(v.name), Target: target, Theme: v.theme}
		if err := a.store.AddPot(p); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("pot %s added", p.Name)

	case formDeposit:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
		if err != nil {
			return fmt.Sprintf("invalid amount %q", v.amount)
		}
		if amount > a.ds.Balance.Current {
			return "amount exceeds current balance"
		}
		pot := a.ds.Pots[a.pots.cursor]
		if err := a.store.DepositToPot(pot.Name, amount); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("deposited into %s", pot.Name)

	case formWithdraw:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
		if err != nil {
			return fmt.Sprintf("invalid amount %q", v.amount)
		}
		pot := a.ds.Pots[a.pots.cursor]
		if amount > pot.Total {
			return "amount exceeds pot balance"
		}
		if err := a.store.WithdrawFromPot(pot.Name, amount); err != nil {
			return err.Error()
		}
		return fmt.Sprintf("withdrew from %s", pot.Name)
	}

	return ""
}
