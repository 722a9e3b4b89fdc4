package counter

import (
	"context"
	"database/sql"

	"github.com/winston6800/Jobclick/internal/storage"
)

// Service composes the pure history operations with persistence: load
// once, apply the update in memory, write the result back. The update
// functions themselves never touch storage.
type Service struct {
	histories *storage.HistoryRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{histories: storage.NewHistoryRepo(db)}
}

func (s *Service) HistoryRepo() *storage.HistoryRepo { return s.histories }

// Save persists the history. Empty histories are skipped so that a
// dashboard that has only rendered does not create state.
func (s *Service) Save(ctx context.Context, h storage.History) error {
	if len(h) == 0 {
		return nil
	}
	return s.histories.Save(ctx, h)
}

// Snapshot is what every command starts from: the stored history with
// a record guaranteed for today, plus derived stats. Warning is set
// when the stored value was unreadable and a fresh history was used.
type Snapshot struct {
	Today   string
	History storage.History
	Stats   Stats
	Warning string
}

func (s *Service) Snapshot(ctx context.Context, today string) (*Snapshot, error) {
	h, warn, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ensured := EnsureToday(h, today)
	if len(ensured) != len(h) {
		if err := s.Save(ctx, ensured); err != nil {
			return nil, err
		}
	}
	return &Snapshot{
		Today:   today,
		History: ensured,
		Stats:   ComputeStats(ensured, today),
		Warning: warn,
	}, nil
}

type TapResult struct {
	Date    string
	Count   int
	Warning string
}

// Tap ensures today's record exists and counts one more application.
func (s *Service) Tap(ctx context.Context, today string) (*TapResult, error) {
	h, warn, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	h = EnsureToday(h, today)
	h, err = Increment(h, today)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, h); err != nil {
		return nil, err
	}
	return &TapResult{Date: today, Count: Count(h, today), Warning: warn}, nil
}

type ResetResult struct {
	Date    string
	Before  int
	Warning string
}

// ResetToday zeroes today's count. Confirmation is the caller's job;
// the store itself does not gate the operation.
func (s *Service) ResetToday(ctx context.Context, today string) (*ResetResult, error) {
	h, warn, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	h = EnsureToday(h, today)
	before := Count(h, today)
	h, err = Reset(h, today)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, h); err != nil {
		return nil, err
	}
	return &ResetResult{Date: today, Before: before, Warning: warn}, nil
}

func (s *Service) load(ctx context.Context) (storage.History, string, error) {
	res, err := s.histories.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	return res.History, res.Warning, nil
}
