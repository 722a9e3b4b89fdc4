package counter

import (
	"time"

	"github.com/winston6800/Jobclick/internal/storage"
)

// Stats are derived from a history and never stored.
type Stats struct {
	Total     int
	Last7Days int
	Best      storage.DayRecord
}

// ComputeStats folds the history into aggregates in one pass.
//
// Last7Days covers records from six calendar days before today through
// today, a seven-day window. The bounds are compared as strings, which
// is valid because DateLayout orders lexicographically. Best is the
// record with the highest count, ties going to the earliest list
// position; for an empty history it is the zero record.
func ComputeStats(h storage.History, today string) Stats {
	var st Stats
	floor := windowFloor(today)
	for i, rec := range h {
		st.Total += rec.Count
		if rec.Date >= floor && rec.Date <= today {
			st.Last7Days += rec.Count
		}
		if i == 0 || rec.Count > st.Best.Count {
			st.Best = rec
		}
	}
	return st
}

// windowFloor returns the date six calendar days before today.
func windowFloor(today string) string {
	t, err := time.ParseInLocation(DateLayout, today, time.Local)
	if err != nil {
		return today
	}
	return t.AddDate(0, 0, -6).Format(DateLayout)
}
