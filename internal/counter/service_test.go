package counter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/winston6800/Jobclick/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func TestTapPersists(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	today := "2024-06-10"

	for i := 1; i <= 3; i++ {
		res, err := svc.Tap(ctx, today)
		if err != nil {
			t.Fatalf("Tap #%d: %v", i, err)
		}
		if res.Count != i {
			t.Fatalf("Tap #%d count = %d, want %d", i, res.Count, i)
		}
	}

	loaded, err := svc.HistoryRepo().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Count(loaded.History, today); got != 3 {
		t.Fatalf("persisted count = %d, want 3", got)
	}
}

func TestResetTodayLeavesOtherDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.Tap(ctx, "2024-06-09"); err != nil {
		t.Fatalf("Tap yesterday: %v", err)
	}
	if _, err := svc.Tap(ctx, "2024-06-10"); err != nil {
		t.Fatalf("Tap today: %v", err)
	}

	res, err := svc.ResetToday(ctx, "2024-06-10")
	if err != nil {
		t.Fatalf("ResetToday: %v", err)
	}
	if res.Before != 1 {
		t.Fatalf("Before = %d, want 1", res.Before)
	}

	loaded, err := svc.HistoryRepo().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Count(loaded.History, "2024-06-10"); got != 0 {
		t.Fatalf("today = %d, want 0", got)
	}
	if got := Count(loaded.History, "2024-06-09"); got != 1 {
		t.Fatalf("yesterday = %d, want 1", got)
	}
}

func TestSnapshotCreatesTodayLazily(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx, "2024-06-10")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.History) != 1 {
		t.Fatalf("history len = %d, want 1", len(snap.History))
	}
	if snap.History[0].Date != "2024-06-10" || snap.History[0].Count != 0 {
		t.Fatalf("record = %+v, want {2024-06-10 0}", snap.History[0])
	}

	// A second snapshot for the same day must not add another record.
	snap2, err := svc.Snapshot(ctx, "2024-06-10")
	if err != nil {
		t.Fatalf("Snapshot again: %v", err)
	}
	if len(snap2.History) != 1 {
		t.Fatalf("history len after second snapshot = %d, want 1", len(snap2.History))
	}
}

func TestSnapshotRollsOverToNewDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.Tap(ctx, "2024-06-09"); err != nil {
		t.Fatalf("Tap: %v", err)
	}

	snap, err := svc.Snapshot(ctx, "2024-06-10")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.History) != 2 {
		t.Fatalf("history len = %d, want 2", len(snap.History))
	}
	if snap.History[0].Date != "2024-06-10" {
		t.Fatalf("newest record = %+v, want today first", snap.History[0])
	}
	if snap.Stats.Total != 1 || snap.Stats.Last7Days != 1 {
		t.Fatalf("stats = %+v, want total 1, last7 1", snap.Stats)
	}
}

func TestSaveSkipsEmptyHistory(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.Save(ctx, storage.History{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, found, err := svc.HistoryRepo().Raw(ctx)
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	if found {
		t.Fatalf("empty save wrote a row, want none")
	}
}
