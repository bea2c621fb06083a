package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"finboard/internal/log"
	"finboard/internal/model"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "finboard.db"))
	if err != nil {
		t.Fatalf("OpenKV: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func testTransaction(name string, amount float64) model.Transaction {
	return model.Transaction{
		Name:     name,
		Category: "General",
		Date:     time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC),
		Amount:   amount,
	}
}

func TestOpen_NoSnapshotUsesSeed(t *testing.T) {
	kv := openTestKV(t)
	s := Open(kv, log.Discard())

	ds := s.Data()
	if len(ds.Transactions) == 0 {
		t.Fatal("seed dataset has no transactions")
	}
	if len(ds.Budgets) == 0 || len(ds.Pots) == 0 {
		t.Fatal("seed dataset missing budgets or pots")
	}
}

func TestOpen_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Save(SnapshotKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, log.Discard())
	if len(s.Data().Transactions) == 0 {
		t.Fatal("corrupt snapshot did not fall back to seed")
	}
}

func TestOpen_LoadsPersistedSnapshot(t *testing.T) {
	kv := openTestKV(t)

	want := model.Dataset{
		Balance: model.Balance{Current: 42.0},
		Transactions: []model.Transaction{
			testTransaction("Corner Cafe", -3.5),
		},
	}
	blob, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Save(SnapshotKey, blob); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, log.Discard())
	got := s.Data()
	if got.Balance.Current != 42.0 {
		t.Errorf("Balance.Current = %.2f, want 42.00", got.Balance.Current)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].Name != "Corner Cafe" {
		t.Errorf("Transactions = %+v, want the persisted single entry", got.Transactions)
	}
}

func TestMutationsPersistAcrossReopen(t *testing.T) {
	kv := openTestKV(t)

	s := Open(kv, log.Discard())
	before := len(s.Data().Transactions)
	if err := s.AddTransaction(testTransaction("Corner Cafe", -3.5)); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	reopened := Open(kv, log.Discard())
	ds := reopened.Data()
	if len(ds.Transactions) != before+1 {
		t.Fatalf("reopened transaction count = %d, want %d", len(ds.Transactions), before+1)
	}
	if ds.Transactions[0].Name != "Corner Cafe" {
		t.Errorf("newest transaction = %q, want prepended Corner Cafe", ds.Transactions[0].Name)
	}
}

func TestAddTransaction_RejectsInvalid(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())

	bad := model.Transaction{Name: "", Category: "Bills", Date: time.Now(), Amount: -5}
	if err := s.AddTransaction(bad); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("AddTransaction(no name) error = %v, want ErrInvalidTransaction", err)
	}
}

func TestPotDepositWithdrawConservation(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())

	ds := s.Data()
	pot := ds.Pots[0]
	sumBefore := ds.Balance.Current + pot.Total

	steps := []struct {
		deposit bool
		amount  float64
	}{
		{true, 50}, {true, 12.25}, {false, 30}, {true, 5}, {false, 37.25},
	}
	for _, step := range steps {
		var err error
		if step.deposit {
			err = s.DepositToPot(pot.Name, step.amount)
		} else {
			err = s.WithdrawFromPot(pot.Name, step.amount)
		}
		if err != nil {
			t.Fatalf("pot operation failed: %v", err)
		}
	}

	after := s.Data()
	got, _ := after.PotByName(pot.Name)
	sumAfter := after.Balance.Current + got.Total
	if diff := sumAfter - sumBefore; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("balance+pot sum changed by %.9f, want conserved", diff)
	}
}

func TestDepositToPot_RejectsNonPositiveAmount(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	name := s.Data().Pots[0].Name

	if err := s.DepositToPot(name, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("DepositToPot(0) error = %v, want ErrInvalidAmount", err)
	}
	if err := s.WithdrawFromPot(name, -10); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("WithdrawFromPot(-10) error = %v, want ErrInvalidAmount", err)
	}
}

func TestDepositToPot_UnknownPotIsNoOp(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	before := s.Data()

	if err := s.DepositToPot("No Such Pot", 25); err != nil {
		t.Fatalf("DepositToPot(unknown) error = %v, want nil no-op", err)
	}

	after := s.Data()
	if after.Balance.Current != before.Balance.Current {
		t.Errorf("balance changed on unknown pot deposit: %.2f -> %.2f",
			before.Balance.Current, after.Balance.Current)
	}
}

func TestDeletePot_ReturnsTotalToBalance(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())

	ds := s.Data()
	pot := ds.Pots[0]
	balanceBefore := ds.Balance.Current
	potCount := len(ds.Pots)

	s.DeletePot(pot.Name)

	after := s.Data()
	if len(after.Pots) != potCount-1 {
		t.Fatalf("pot count = %d, want %d", len(after.Pots), potCount-1)
	}
	if _, still := after.PotByName(pot.Name); still {
		t.Fatalf("pot %q still present after delete", pot.Name)
	}
	want := balanceBefore + pot.Total
	if after.Balance.Current != want {
		t.Errorf("Balance.Current = %.2f, want %.2f (credited pot total)", after.Balance.Current, want)
	}
}

func TestUpdateBudget_UnknownCategoryIsNoOp(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	before := s.Data()

	err := s.UpdateBudget(model.Budget{Category: "Skydiving", Maximum: 500, Theme: "#277C78"})
	if err != nil {
		t.Fatalf("UpdateBudget(unknown) error = %v, want nil no-op", err)
	}

	after := s.Data()
	if len(after.Budgets) != len(before.Budgets) {
		t.Errorf("budget count changed on unknown-key update: %d -> %d",
			len(before.Budgets), len(after.Budgets))
	}
	if _, found := after.BudgetByCategory("Skydiving"); found {
		t.Error("unknown-key update inserted a budget")
	}
}

func TestUpdateBudget_ReplacesInPlace(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	target := s.Data().Budgets[0]

	updated := target
	updated.Maximum = target.Maximum + 100
	if err := s.UpdateBudget(updated); err != nil {
		t.Fatalf("UpdateBudget: %v", err)
	}

	got, ok := s.Data().BudgetByCategory(target.Category)
	if !ok {
		t.Fatalf("budget %q missing after update", target.Category)
	}
	if got.Maximum != target.Maximum+100 {
		t.Errorf("Maximum = %.2f, want %.2f", got.Maximum, target.Maximum+100)
	}
}

func TestAddBudget_RejectsDuplicateCategory(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	existing := s.Data().Budgets[0]

	err := s.AddBudget(model.Budget{Category: existing.Category, Maximum: 10, Theme: "#626070"})
	if !errors.Is(err, ErrDuplicateBudget) {
		t.Errorf("AddBudget(duplicate) error = %v, want ErrDuplicateBudget", err)
	}
}

func TestDeleteBudget_UnknownCategoryIsNoOp(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	before := len(s.Data().Budgets)

	s.DeleteBudget("Skydiving")

	if got := len(s.Data().Budgets); got != before {
		t.Errorf("budget count = %d, want unchanged %d", got, before)
	}
}

func TestData_ReturnsIsolatedSnapshot(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())

	snap := s.Data()
	snap.Transactions[0].Name = "clobbered"
	snap.Balance.Current = -1

	fresh := s.Data()
	if fresh.Transactions[0].Name == "clobbered" {
		t.Error("mutating a returned snapshot leaked into the store")
	}
	if fresh.Balance.Current == -1 {
		t.Error("mutating a returned balance leaked into the store")
	}
}

// failingKV always fails writes, to verify in-memory state stays authoritative.
type failingKV struct{}

func (failingKV) Load(string) ([]byte, bool, error) { return nil, false, nil }
func (failingKV) Save(string, []byte) error         { return errors.New("disk full") }
func (failingKV) Delete(string) error               { return errors.New("disk full") }

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	s := Open(failingKV{}, log.Discard())
	before := len(s.Data().Transactions)

	if err := s.AddTransaction(testTransaction("Corner Cafe", -3.5)); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	if got := len(s.Data().Transactions); got != before+1 {
		t.Errorf("transaction count = %d, want %d despite persist failure", got, before+1)
	}
}

func TestReset_RestoresSeed(t *testing.T) {
	kv := openTestKV(t)
	s := Open(kv, log.Discard())

	seedCount := len(Seed().Transactions)
	if err := s.AddTransaction(testTransaction("Corner Cafe", -3.5)); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := len(s.Data().Transactions); got != seedCount {
		t.Errorf("transaction count after reset = %d, want seed count %d", got, seedCount)
	}

	reopened := Open(kv, log.Discard())
	if got := len(reopened.Data().Transactions); got != seedCount {
		t.Errorf("reopened count = %d, want seed count %d (snapshot deleted)", got, seedCount)
	}
}

func TestImport_ReplacesDatasetAndPersists(t *testing.T) {
	kv := openTestKV(t)
	s := Open(kv, log.Discard())

	replacement := model.Dataset{
		Balance:      model.Balance{Current: 100, Income: 200, Expenses: 50},
		Transactions: []model.Transaction{testTransaction("Corner Cafe", -3.5)},
	}
	if err := s.Import(replacement); err != nil {
		t.Fatalf("Import: %v", err)
	}

	reopened := Open(kv, log.Discard())
	ds := reopened.Data()
	if got := len(ds.Transactions); got != 1 {
		t.Fatalf("transaction count = %d, want 1", got)
	}
	if ds.Balance.Current != 100 {
		t.Errorf("balance = %v, want 100", ds.Balance.Current)
	}
}

func TestImport_RejectsMalformedTransaction(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())
	before := len(s.Data().Transactions)

	bad := model.Dataset{
		Transactions: []model.Transaction{{Name: "", Amount: -5}},
	}
	if err := s.Import(bad); !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("Import error = %v, want ErrInvalidTransaction", err)
	}
	if got := len(s.Data().Transactions); got != before {
		t.Errorf("dataset changed on rejected import: %d -> %d", before, got)
	}
}

func TestUpdatePot_ReplacesInPlaceAndIgnoresUnknown(t *testing.T) {
	s := Open(openTestKV(t), log.Discard())

	if err := s.AddPot(model.Pot{Name: "Camper Van", Target: 1000, Theme: "#277C78"}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdatePot(model.Pot{Name: "Camper Van", Target: 1500, Theme: "#F4BC52"}); err != nil {
		t.Fatalf("UpdatePot: %v", err)
	}

	pot, ok := s.Data().PotByName("Camper Van")
	if !ok {
		t.Fatal("pot missing after update")
	}
	if pot.Target != 1500 || pot.Theme != "#F4BC52" {
		t.Errorf("pot = %+v, want target 1500 theme #F4BC52", pot)
	}

	before := len(s.Data().Pots)
	if err := s.UpdatePot(model.Pot{Name: "Nope", Target: 10}); err != nil {
		t.Fatalf("UpdatePot unknown: %v", err)
	}
	if got := len(s.Data().Pots); got != before {
		t.Errorf("pot count changed on unknown update: %d -> %d", before, got)
	}
}
