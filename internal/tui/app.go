// Package tui provides the interactive Bubble Tea dashboard for finboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"finboard/internal/config"
	"finboard/internal/model"
	"finboard/internal/query"
	"finboard/internal/store"
	"finboard/internal/tui/components"
	"finboard/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	cfg     config.Config
	ds      model.Dataset
	refDate time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Per-tab state
	tx    txState
	pots  potsState
	bills billsState

	// Modal form (add transaction, add budget, pot money moves)
	form     *huh.Form
	formKind formKind
	formVals formValues
}

type txState struct {
	searching   bool
	searchInput searchInput
	searchQuery string
	sortIdx     int
	categoryIdx int
	page        int
}

type potsState struct {
	cursor int
}

type billsState struct {
	searching   bool
	searchInput searchInput
	searchQuery string
	sortBy      string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5

	tabOverview     = 0
	tabTransactions = 1
	tabBudgets      = 2
	tabPots         = 3
	tabBills        = 4
)

// NewApp creates a new TUI app model over an already opened store.
func NewApp(s *store.Store, cfg config.Config, refDate time.Time) App {
	return App{
		store:   s,
		cfg:     cfg,
		ds:      s.Data(),
		refDate: refDate,
		tx:      txState{page: 1},
		bills:   billsState{sortBy: query.SortLatest},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// refresh re-reads the dataset after a mutation.
func (a *App) refresh() {
	a.ds = a.store.Data()
	if a.pots.cursor >= len(a.ds.Pots) {
		a.pots.cursor = len(a.ds.Pots) - 1
	}
	if a.pots.cursor < 0 {
		a.pots.cursor = 0
	}
}

// categoryFilters is the cycle order for the transactions category filter.
func categoryFilters() []string {
	return append([]string{model.AllTransactions}, model.Categories...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabTransactions && a.tx.page > 1 {
				a.tx.page--
			}
			if a.activeTab == tabPots && a.pots.cursor > 0 {
				a.pots.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabTransactions {
				if a.tx.page < a.txResult().TotalPages {
					a.tx.page++
				}
			}
			if a.activeTab == tabPots && a.pots.cursor < len(a.ds.Pots)-1 {
				a.pots.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.status = ""
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Active modal form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Search input modes intercept all keys
		if a.activeTab == tabTransactions && a.tx.searching {
			return a.updateTxSearch(msg)
		}
		if a.activeTab == tabBills && a.bills.searching {
			return a.updateBillsSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.status = ""

		// Per-tab keybindings
		switch a.activeTab {
		case tabTransactions:
			switch key {
			case "/":
				a.tx.searching = true
				a.tx.searchInput = newSearchInput(a.tx.searchQuery)
				return a, a.tx.searchInput.Cursor.BlinkCmd()
			case "esc":
				if a.tx.searchQuery != "" {
					a.tx.searchQuery = ""
					a.tx.page = 1
				}
				return a, nil
			case "s":
				a.tx.sortIdx = (a.tx.sortIdx + 1) % len(query.SortOptions)
				a.tx.page = 1
				return a, nil
			case "c":
				a.tx.categoryIdx = (a.tx.categoryIdx + 1) % len(categoryFilters())
				a.tx.page = 1
				return a, nil
			case "]", "n":
				if a.tx.page < a.txResult().TotalPages {
					a.tx.page++
				}
				return a, nil
			case "[", "N":
				if a.tx.page > 1 {
					a.tx.page--
				}
				return a, nil
			case "a":
				return a.openForm(formAddTransaction)
			}

		case tabBudgets:
			if key == "a" {
				return a.openForm(formAddBudget)
			}

		case tabPots:
			switch key {
			case "j", "down":
				if a.pots.cursor < len(a.ds.Pots)-1 {
					a.pots.cursor++
				}
				return a, nil
			case "k", "up":
				if a.pots.cursor > 0 {
					a.pots.cursor--
				}
				return a, nil
			case "a":
				return a.openForm(formAddPot)
			case "d":
				if len(a.ds.Pots) > 0 {
					return a.openForm(formDeposit)
				}
				return a, nil
			case "w":
				if len(a.ds.Pots) > 0 {
					return a.openForm(formWithdraw)
				}
				return a, nil
			}

		case tabBills:
			switch key {
			case "/":
				a.bills.searching = true
				a.bills.searchInput = newSearchInput(a.bills.searchQuery)
				return a, a.bills.searchInput.Cursor.BlinkCmd()
			case "esc":
				a.bills.searchQuery = ""
				return a, nil
			case "s":
				a.bills.sortBy = nextSort(a.bills.sortBy)
				return a, nil
			}
		}

		// Global quit
		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// nextSort cycles through the sort options in their display order.
func nextSort(current string) string {
	for i, opt := range query.SortOptions {
		if opt.Value == current {
			return query.SortOptions[(i+1)%len(query.SortOptions)].Value
		}
	}
	return query.SortOptions[0].Value
}

// txResult recomputes the transaction page for the current filter state.
func (a App) txResult() query.Result {
	category := categoryFilters()[a.tx.categoryIdx]
	return query.FilteredTransactions(a.ds, query.Filter{
		Search:   a.tx.searchQuery,
		SortBy:   query.SortOptions[a.tx.sortIdx].Value,
		Category: category,
		Page:     a.tx.page,
		PageSize: a.cfg.General.PageSize,
	})
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finboard needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o t b p i", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"[ ]", "Previous / Next page"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"/", "Search (transactions, bills)"},
		{"s", "Cycle sort order"},
		{"c", "Cycle category filter"},
		{"a", "Add (transaction, budget, pot)"},
		{"d w", "Deposit / Withdraw (pots)"},
		{"Esc", "Clear search / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	monthLabel := a.refDate.Format("Jan 2006")
	statusBar := components.RenderStatusBar(w, monthLabel)
	if a.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Yellow).Width(w)
		statusBar = statusStyle.Render(" "+a.status) + "\n" + statusBar
	}

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	case tabPots:
		content = a.renderPotsTab(cw)
	case tabBills:
		content = a.renderBillsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two-column separator between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}

// ─── Search Input ───────────────────────────────────────────────

// updateTxSearch handles key events while the transactions search is focused.
func (a App) updateTxSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.tx.searchQuery = strings.TrimSpace(a.tx.searchInput.Value())
		a.tx.searching = false
		a.tx.page = 1
		return a, nil
	case "esc":
		a.tx.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.tx.searchInput, cmd = a.tx.searchInput.Update(msg)
	return a, cmd
}

// updateBillsSearch handles key events while the bills search is focused.
func (a App) updateBillsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.bills.searchQuery = strings.TrimSpace(a.bills.searchInput.Value())
		a.bills.searching = false
		return a, nil
	case "esc":
		a.bills.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.bills.searchInput, cmd = a.bills.searchInput.Update(msg)
	return a, cmd
}
