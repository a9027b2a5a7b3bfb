package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeRows replays a fixed session/set join result through the scanSessionRows
// dest pointers, the way pgx would.
type fakeRows struct {
	rows [][]any
	pos  int
}

func (f *fakeRows) Next() bool {
	f.pos++
	return f.pos <= len(f.rows)
}

func (f *fakeRows) Err() error { return nil }

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.pos-1]
	*dest[0].(*uuid.UUID) = row[0].(uuid.UUID)
	*dest[1].(*int) = row[1].(int)
	*dest[2].(*string) = row[2].(string)
	*dest[3].(*time.Time) = row[3].(time.Time)
	if row[4] != nil {
		w := row[4].(float64)
		*dest[4].(**float64) = &w
	}
	if row[5] != nil {
		r := row[5].(int)
		*dest[5].(**int) = &r
	}
	if row[6] != nil {
		b := row[6].(bool)
		*dest[6].(**bool) = &b
	}
	return nil
}

func TestScanSessionRowsFoldsSets(t *testing.T) {
	sessionA := uuid.New()
	sessionB := uuid.New()
	day1 := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 7)

	rows := &fakeRows{rows: [][]any{
		{sessionA, 1, "deadlift", day1, 100.0, 5, false},
		{sessionA, 1, "deadlift", day1, 60.0, 10, true},
		{sessionB, 1, "deadlift", day2, 120.0, 3, false},
	}}

	records, err := scanSessionRows(rows)
	if err != nil {
		t.Fatalf("scanSessionRows: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if len(records[0].Sets) != 2 {
		t.Errorf("first session has %d sets, want 2", len(records[0].Sets))
	}
	if !records[0].Sets[1].IsWarmup {
		t.Error("second set should be a warmup")
	}
	if len(records[1].Sets) != 1 {
		t.Errorf("second session has %d sets, want 1", len(records[1].Sets))
	}
	if !records[1].LoggedAt.Equal(day2) {
		t.Errorf("LoggedAt = %v, want %v", records[1].LoggedAt, day2)
	}
}

// TestScanSessionRowsEmptySession verifies a session logged with no sets
// still comes back as a record with an empty set list.
func TestScanSessionRowsEmptySession(t *testing.T) {
	sessionA := uuid.New()
	day1 := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	rows := &fakeRows{rows: [][]any{
		{sessionA, 1, "dip", day1, nil, nil, nil},
	}}

	records, err := scanSessionRows(rows)
	if err != nil {
		t.Fatalf("scanSessionRows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(records[0].Sets) != 0 {
		t.Errorf("got %d sets, want 0", len(records[0].Sets))
	}
}
