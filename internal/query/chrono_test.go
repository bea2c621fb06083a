package query

import (
	"reflect"
	"testing"

	"finboard/internal/model"
)

func TestSortWithinDays_LatestDaysWithOldestTimeFirstInside(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "A", "General", "2024-08-19 09:00", -10),
		tx(t, "B", "General", "2024-08-19 15:00", -20),
		tx(t, "C", "General", "2024-08-20 10:00", -30),
	}

	got := SortWithinDays(txns, SortLatest)
	want := []string{"C", "A", "B"} // day 20 first, then day 19 oldest-time-first
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("order = %v, want %v", names(got), want)
	}
}

func TestSortWithinDays_OldestDayOrder(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "C", "General", "2024-08-20 10:00", -30),
		tx(t, "B", "General", "2024-08-19 15:00", -20),
		tx(t, "A", "General", "2024-08-19 09:00", -10),
	}

	got := SortWithinDays(txns, SortOldest)
	want := []string{"A", "B", "C"} // day 19 first, still oldest-time-first inside
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("order = %v, want %v", names(got), want)
	}
}

func TestSortWithinDays_UnknownSortDefaultsToLatest(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "A", "General", "2024-08-19 09:00", -10),
		tx(t, "C", "General", "2024-08-20 10:00", -30),
	}

	got := SortWithinDays(txns, "bogus")
	want := []string{"C", "A"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("order = %v, want newest day first %v", names(got), want)
	}
}

func TestSortWithinDays_StableForIdenticalTimestamps(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "First", "General", "2024-08-19 09:00", -10),
		tx(t, "Second", "General", "2024-08-19 09:00", -20),
		tx(t, "Third", "General", "2024-08-19 09:00", -30),
	}

	got := SortWithinDays(txns, SortLatest)
	want := []string{"First", "Second", "Third"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("order = %v, want input order preserved %v", names(got), want)
	}
}

func TestSortWithinDays_Empty(t *testing.T) {
	if got := SortWithinDays(nil, SortLatest); len(got) != 0 {
		t.Errorf("SortWithinDays(nil) returned %d entries, want 0", len(got))
	}
}

func TestSortWithinDays_PreservesAllEntries(t *testing.T) {
	txns := []model.Transaction{
		tx(t, "A", "General", "2024-08-19 09:00", -10),
		tx(t, "B", "General", "2024-08-17 15:00", -20),
		tx(t, "C", "General", "2024-08-19 11:00", -30),
		tx(t, "D", "General", "2024-08-18 10:00", -40),
		tx(t, "E", "General", "2024-08-17 08:00", -50),
	}

	got := SortWithinDays(txns, SortLatest)
	if len(got) != len(txns) {
		t.Fatalf("got %d entries, want %d", len(got), len(txns))
	}
	want := []string{"A", "C", "D", "E", "B"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("order = %v, want %v", names(got), want)
	}
}
