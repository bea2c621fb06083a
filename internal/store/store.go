// Package store holds the canonical financial dataset and its persistence.
//
// The Store is the single source of truth: all mutation happens here, every
// mutation replaces the in-memory snapshot and writes it through to the KV
// collaborator under a fixed key. Reads are synchronous snapshot copies.
package store

import (
	"encoding/json"
	"errors"

	"finboard/internal/log"
	"finboard/internal/model"
)

// SnapshotKey is the fixed key the serialized dataset lives under.
const SnapshotKey = "finance_data"

// Shape violations the Store rejects. Business policy (overdraft checks,
// deposit ceilings) is validated at the UI boundary, not here.
var (
	ErrInvalidTransaction = errors.New("transaction requires name, category, date and a numeric amount")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidMaximum     = errors.New("budget maximum must be greater than zero")
	ErrInvalidTarget      = errors.New("pot target must be greater than zero")
	ErrDuplicateBudget    = errors.New("a budget for this category already exists")
	ErrDuplicatePot       = errors.New("a pot with this name already exists")
)

// Store owns the dataset snapshot. Not safe for concurrent use; the
// application is single-actor by design.
type Store struct {
	kv     KV
	logger *log.Logger
	data   model.Dataset
}

// Open initializes a Store from the persisted snapshot if one is present and
// structurally valid, falling back to the seed dataset otherwise. A corrupt
// snapshot is never fatal.
func Open(kv KV, logger *log.Logger) *Store {
	s := &Store{kv: kv, logger: logger}

	blob, ok, err := kv.Load(SnapshotKey)
	if err != nil {
		logger.Warn("loading persisted snapshot failed, using seed data", "error", err)
		s.data = Seed()
		return s
	}
	if !ok {
		s.data = Seed()
		return s
	}

	var ds model.Dataset
	if err := json.Unmarshal(blob, &ds); err != nil {
		logger.Warn("persisted snapshot is corrupt, using seed data", "error", err)
		s.data = Seed()
		return s
	}

	s.data = ds
	return s
}

// Data returns a deep copy of the current snapshot. Callers can never mutate
// the canonical dataset through it.
func (s *Store) Data() model.Dataset {
	return s.data.Clone()
}

// persist writes the full snapshot through to the KV store. A write failure
// is surfaced as a warning only; in-memory state stays authoritative for the
// session.
func (s *Store) persist() {
	blob, err := json.Marshal(s.data)
	if err != nil {
		s.logger.Warn("serializing snapshot failed, changes not persisted", "error", err)
		return
	}
	if err := s.kv.Save(SnapshotKey, blob); err != nil {
		s.logger.Warn("persisting snapshot failed, changes kept in memory only", "error", err)
	}
}

// AddTransaction prepends t to the transaction list. New transactions are
// most-recent-first by convention, not by enforced date order.
func (s *Store) AddTransaction(t model.Transaction) error {
	if !t.Valid() {
		return ErrInvalidTransaction
	}
	s.data.Transactions = append([]model.Transaction{t}, s.data.Transactions...)
	s.persist()
	return nil
}

// AddBudget creates a new budget. Category is the unique key.
func (s *Store) AddBudget(b model.Budget) error {
	if b.Category == "" || b.Maximum <= 0 {
		return ErrInvalidMaximum
	}
	if _, exists := s.data.BudgetByCategory(b.Category); exists {
		return ErrDuplicateBudget
	}
	s.data.Budgets = append(s.data.Budgets, b)
	s.persist()
	return nil
}

// UpdateBudget replaces the budget matching b.Category in place.
// An unmatched category is a silent no-op.
func (s *Store) UpdateBudget(b model.Budget) error {
	if b.Category == "" || b.Maximum <= 0 {
		return ErrInvalidMaximum
	}
	for i, existing := range s.data.Budgets {
		if existing.Category == b.Category {
			s.data.Budgets[i] = b
			s.persist()
			return nil
		}
	}
	return nil
}

// DeleteBudget removes the budget for the category. Unknown categories are a
// silent no-op.
func (s *Store) DeleteBudget(category string) {
	kept := s.data.Budgets[:0]
	removed := false
	for _, b := range s.data.Budgets {
		if b.Category == category {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.data.Budgets = kept
	if removed {
		s.persist()
	}
}

// AddPot creates a new pot with a zero starting total unless one is given.
// Name is the unique key.
func (s *Store) AddPot(p model.Pot) error {
	if p.Name == "" || p.Target <= 0 {
		return ErrInvalidTarget
	}
	if _, exists := s.data.PotByName(p.Name); exists {
		return ErrDuplicatePot
	}
	s.data.Pots = append(s.data.Pots, p)
	s.persist()
	return nil
}

// UpdatePot replaces the pot matching p.Name in place. An unmatched name is a
// silent no-op.
func (s *Store) UpdatePot(p model.Pot) error {
	if p.Name == "" || p.Target <= 0 {
		return ErrInvalidTarget
	}
	for i, existing := range s.data.Pots {
		if existing.Name == p.Name {
			s.data.Pots[i] = p
			s.persist()
			return nil
		}
	}
	return nil
}

// DeletePot removes the named pot and returns its entire total to the main
// balance. Unknown names are a silent no-op.
func (s *Store) DeletePot(name string) {
	for i, p := range s.data.Pots {
		if p.Name == name {
			s.data.Balance.Current += p.Total
			s.data.Pots = append(s.data.Pots[:i], s.data.Pots[i+1:]...)
			s.persist()
			return
		}
	}
}

// DepositToPot moves amount from the main balance into the named pot.
// The sum balance.Current + pot.Total is conserved. The Store does not check
// amount against the available balance; that policy lives at the UI boundary.
func (s *Store) DepositToPot(name string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	for i, p := range s.data.Pots {
		if p.Name == name {
			s.data.Pots[i].Total += amount
			s.data.Balance.Current -= amount
			s.persist()
			return nil
		}
	}
	return nil
}

// WithdrawFromPot moves amount from the named pot back to the main balance.
func (s *Store) WithdrawFromPot(name string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	for i, p := range s.data.Pots {
		if p.Name == name {
			s.data.Pots[i].Total -= amount
			s.data.Balance.Current += amount
			s.persist()
			return nil
		}
	}
	return nil
}

// Import replaces the entire dataset with ds and persists the new snapshot.
// A dataset containing any malformed transaction is rejected wholesale.
func (s *Store) Import(ds model.Dataset) error {
	for _, t := range ds.Transactions {
		if !t.Valid() {
			return ErrInvalidTransaction
		}
	}
	s.data = ds.Clone()
	s.persist()
	return nil
}

// Reset discards the persisted snapshot and reloads the seed dataset.
func (s *Store) Reset() error {
	if err := s.kv.Delete(SnapshotKey); err != nil {
		return err
	}
	s.data = Seed()
	return nil
}
