package counter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/winston6800/Jobclick/internal/storage"
)

func TestEnsureTodayIdempotent(t *testing.T) {
	h := storage.History{{Date: "2024-06-09", Count: 4}}

	once := EnsureToday(h, "2024-06-10")
	twice := EnsureToday(once, "2024-06-10")

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("EnsureToday twice = %v, want %v", twice, once)
	}
	if len(once) != 2 {
		t.Fatalf("len = %d, want 2", len(once))
	}
	if once[0].Date != "2024-06-10" || once[0].Count != 0 {
		t.Fatalf("prepended record = %+v, want {2024-06-10 0}", once[0])
	}
}

func TestIncrementThenReset(t *testing.T) {
	h := storage.History{
		{Date: "2024-06-10", Count: 1},
		{Date: "2024-06-09", Count: 4},
	}

	h, err := Increment(h, "2024-06-10")
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if got := Count(h, "2024-06-10"); got != 2 {
		t.Fatalf("count after increment = %d, want 2", got)
	}

	h, err = Reset(h, "2024-06-10")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := Count(h, "2024-06-10"); got != 0 {
		t.Fatalf("count after reset = %d, want 0", got)
	}
	if got := Count(h, "2024-06-09"); got != 4 {
		t.Fatalf("other record touched: count = %d, want 4", got)
	}
}

func TestIncrementMissingDate(t *testing.T) {
	h := storage.History{{Date: "2024-06-09", Count: 4}}

	if _, err := Increment(h, "2024-06-10"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("Increment err = %v, want ErrNoRecord", err)
	}
	if _, err := Reset(h, "2024-06-10"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("Reset err = %v, want ErrNoRecord", err)
	}
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	h := storage.History{{Date: "2024-06-10", Count: 1}}

	if _, err := Increment(h, "2024-06-10"); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if h[0].Count != 1 {
		t.Fatalf("input mutated: count = %d, want 1", h[0].Count)
	}
}

func TestComputeStatsTotal(t *testing.T) {
	tests := []struct {
		name string
		h    storage.History
		want int
	}{
		{"empty", storage.History{}, 0},
		{"single", storage.History{{Date: "2024-06-10", Count: 3}}, 3},
		{"several", storage.History{
			{Date: "2024-06-10", Count: 2},
			{Date: "2024-06-04", Count: 3},
			{Date: "2024-06-03", Count: 5},
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeStats(tt.h, "2024-06-10")
			if st.Total != tt.want {
				t.Fatalf("Total = %d, want %d", st.Total, tt.want)
			}
		})
	}
}

func TestComputeStatsLast7Days(t *testing.T) {
	h := storage.History{
		{Date: "2024-06-10", Count: 2},
		{Date: "2024-06-04", Count: 3},
		{Date: "2024-06-03", Count: 5},
	}

	st := ComputeStats(h, "2024-06-10")
	// 06-04 is the floor (6 days back); 06-03 falls outside the window.
	if st.Last7Days != 5 {
		t.Fatalf("Last7Days = %d, want 5", st.Last7Days)
	}
}

func TestComputeStatsBestDay(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		st := ComputeStats(storage.History{}, "2024-06-10")
		if st.Best.Count != 0 || st.Best.Date != "" {
			t.Fatalf("Best = %+v, want zero record", st.Best)
		}
	})

	t.Run("tie goes to first in list order", func(t *testing.T) {
		h := storage.History{
			{Date: "2024-06-10", Count: 5},
			{Date: "2024-06-09", Count: 5},
			{Date: "2024-06-08", Count: 1},
		}
		st := ComputeStats(h, "2024-06-10")
		if st.Best.Date != "2024-06-10" {
			t.Fatalf("Best.Date = %s, want 2024-06-10", st.Best.Date)
		}
	})

	t.Run("all zero counts", func(t *testing.T) {
		h := storage.History{
			{Date: "2024-06-10", Count: 0},
			{Date: "2024-06-09", Count: 0},
		}
		st := ComputeStats(h, "2024-06-10")
		if st.Best.Date != "2024-06-10" || st.Best.Count != 0 {
			t.Fatalf("Best = %+v, want first record", st.Best)
		}
	})
}

func TestFirstDayScenario(t *testing.T) {
	today := "2024-06-10"
	var h storage.History

	h = EnsureToday(h, today)
	if len(h) != 1 || h[0].Date != today || h[0].Count != 0 {
		t.Fatalf("after EnsureToday: %v", h)
	}

	var err error
	for i := 0; i < 2; i++ {
		if h, err = Increment(h, today); err != nil {
			t.Fatalf("Increment #%d: %v", i+1, err)
		}
	}
	if got := Count(h, today); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}

	st := ComputeStats(h, today)
	if st.Best.Count != 2 {
		t.Fatalf("Best.Count = %d, want 2", st.Best.Count)
	}
}

func TestWindowFloor(t *testing.T) {
	tests := []struct {
		today string
		want  string
	}{
		{"2024-06-10", "2024-06-04"},
		{"2024-03-03", "2024-02-26"}, // leap year boundary
		{"2024-01-02", "2023-12-27"},
	}

	for _, tt := range tests {
		if got := windowFloor(tt.today); got != tt.want {
			t.Fatalf("windowFloor(%s) = %s, want %s", tt.today, got, tt.want)
		}
	}
}
