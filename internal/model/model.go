// Package model defines the financial dataset types shared across the app.
package model

import "time"

// Transaction is a single ledger entry. Negative amounts are expenses,
// positive amounts are income. Transactions are immutable once created.
type Transaction struct {
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	Recurring bool      `json:"recurring"`
	Avatar    string    `json:"avatar,omitempty"`
}

// Valid reports whether the transaction has the required fields.
// Aggregations skip invalid records rather than failing.
func (t Transaction) Valid() bool {
	return t.Name != "" && t.Category != "" && !t.Date.IsZero()
}

// Budget is a monthly spending ceiling for one category.
// Category is the unique key.
type Budget struct {
	Category string  `json:"category"`
	Maximum  float64 `json:"maximum"`
	Theme    string  `json:"theme"`
}

// Pot is a named savings sub-balance funded from the main balance.
// Name is the unique key. Total is not clamped to Target.
type Pot struct {
	Name   string  `json:"name"`
	Target float64 `json:"target"`
	Total  float64 `json:"total"`
	Theme  string  `json:"theme"`
}

// Balance holds the spendable balance plus informational income/expense
// rollups. Income and Expenses are stored fields, not recomputed from the
// transaction log.
type Balance struct {
	Current  float64 `json:"current"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Dataset is the root aggregate: everything the dashboard derives from.
type Dataset struct {
	Balance      Balance       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Pots         []Pot         `json:"pots"`
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{Balance: d.Balance}
	if d.Transactions != nil {
		out.Transactions = make([]Transaction, len(d.Transactions))
		copy(out.Transactions, d.Transactions)
	}
	if d.Budgets != nil {
		out.Budgets = make([]Budget, len(d.Budgets))
		copy(out.Budgets, d.Budgets)
	}
	if d.Pots != nil {
		out.Pots = make([]Pot, len(d.Pots))
		copy(out.Pots, d.Pots)
	}
	return out
}

// BudgetByCategory returns the budget for a category, if present.
func (d Dataset) BudgetByCategory(category string) (Budget, bool) {
	for _, b := range d.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return Budget{}, false
}

// PotByName returns the pot with the given name, if present.
func (d Dataset) PotByName(name string) (Pot, bool) {
	for _, p := range d.Pots {
		if p.Name == name {
			return p, true
		}
	}
	return Pot{}, false
}

// Categories is the default transaction category set. User data may extend it;
// the engine treats categories as opaque strings.
var Categories = []string{
	"Entertainment",
	"Bills",
	"Groceries",
	"Dining Out",
	"Transportation",
	"Personal Care",
	"Education",
	"Lifestyle",
	"Shopping",
	"General",
}

// AllTransactions is the category filter value meaning "no category filter".
const AllTransactions = "All Transactions"

// ThemeColor pairs a display name with its color token, for pickers.
type ThemeColor struct {
	Name  string
	Color string
}

// ThemeColors is the ordered palette offered when creating budgets and pots.
var ThemeColors = []ThemeColor{
	{Name: "Green", Color: "#277C78"},
	{Name: "Yellow", Color: "#F4BC52"},
	{Name: "Cyan", Color: "#82C9D7"},
	{Name: "Navy", Color: "#626070"},
	{Name: "Red", Color: "#E36666"},
	{Name: "Purple", Color: "#826CB0"},
	{Name: "Turquoise", Color: "#5AC5C5"},
	{Name: "Brown", Color: "#BA9367"},
	{Name: "Magenta", Color: "#AD5D79"},
	{Name: "Blue", Color: "#5C7BC3"},
	{Name: "Navy Grey", Color: "#4B4D58"},
	{Name: "Army Green", Color: "#636E51"},
	{Name: "Pink", Color: "#E2949B"},
	{Name: "Gold", Color: "#D5A44A"},
	{Name: "Orange", Color: "#E98852"},
}
