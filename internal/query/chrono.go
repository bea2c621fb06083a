package query

import (
	"sort"
	"time"

	"finboard/internal/model"
)

// SortWithinDays produces the two-level chronological ordering used by the
// transaction and bills lists: transactions are bucketed by local calendar
// day, buckets are ordered per sortBy (newest day first for "latest" and any
// unrecognized value, oldest first for "oldest"), and within each day entries
// always read oldest-time-first regardless of the day-level direction.
//
// Both levels are stable: entries with identical timestamps keep their
// relative input order.
func SortWithinDays(txns []model.Transaction, sortBy string) []model.Transaction {
	if len(txns) == 0 {
		return nil
	}

	type bucket struct {
		day     time.Time
		entries []model.Transaction
	}

	byDay := make(map[time.Time]*bucket)
	var order []*bucket
	for _, t := range txns {
		local := t.Date.Local()
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
		b, ok := byDay[day]
		if !ok {
			b = &bucket{day: day}
			byDay[day] = b
			order = append(order, b)
		}
		b.entries = append(b.entries, t)
	}

	// Within a day: oldest time first, always.
	for _, b := range order {
		sort.SliceStable(b.entries, func(i, j int) bool {
			return b.entries[i].Date.Before(b.entries[j].Date)
		})
	}

	// Day buckets: direction follows sortBy.
	ascending := sortBy == SortOldest
	sort.SliceStable(order, func(i, j int) bool {
		if ascending {
			return order[i].day.Before(order[j].day)
		}
		return order[i].day.After(order[j].day)
	})

	result := make([]model.Transaction, 0, len(txns))
	for _, b := range order {
		result = append(result, b.entries...)
	}
	return result
}
