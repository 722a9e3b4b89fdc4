package counter

import (
	"errors"
	"time"

	"github.com/winston6800/Jobclick/internal/storage"
)

// DateLayout is the calendar-day format. It sorts lexicographically,
// which the trailing-window arithmetic in stats.go relies on.
const DateLayout = "2006-01-02"

// ErrNoRecord is returned when an operation targets a date that has no
// record yet. Callers go through EnsureToday first.
var ErrNoRecord = errors.New("no record for date")

// Today formats now as a local calendar date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// EnsureToday guarantees a record exists for date, prepending a
// zero-count record if absent. Repeated calls with the same date are
// no-ops once the record exists.
func EnsureToday(h storage.History, date string) storage.History {
	if indexOf(h, date) >= 0 {
		return h
	}
	out := make(storage.History, 0, len(h)+1)
	out = append(out, storage.DayRecord{Date: date})
	return append(out, h...)
}

// Increment adds one to the record for date.
func Increment(h storage.History, date string) (storage.History, error) {
	i := indexOf(h, date)
	if i < 0 {
		return h, ErrNoRecord
	}
	out := append(storage.History(nil), h...)
	out[i].Count++
	return out, nil
}

// Reset sets the record for date back to zero, leaving all other
// records untouched.
func Reset(h storage.History, date string) (storage.History, error) {
	i := indexOf(h, date)
	if i < 0 {
		return h, ErrNoRecord
	}
	out := append(storage.History(nil), h...)
	out[i].Count = 0
	return out, nil
}

// Count returns the count recorded for date, or 0 when absent.
func Count(h storage.History, date string) int {
	if i := indexOf(h, date); i >= 0 {
		return h[i].Count
	}
	return 0
}

func indexOf(h storage.History, date string) int {
	for i := range h {
		if h[i].Date == date {
			return i
		}
	}
	return -1
}
