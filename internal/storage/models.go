package storage

// DayRecord is one calendar day's application count. Dates are local
// time, formatted YYYY-MM-DD.
type DayRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// History is the full persisted record list, newest first. At most one
// record exists per date.
type History []DayRecord
