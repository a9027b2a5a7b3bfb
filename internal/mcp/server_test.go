package mcp

import (
	"context"
	"testing"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// TestResolveExercise verifies that both catalog IDs and display names map to
// canonical exercise IDs.
func TestResolveExercise(t *testing.T) {
	tests := []struct {
		in     string
		wantID string
		wantOK bool
	}{
		{in: "barbell-bench-press", wantID: "barbell-bench-press", wantOK: true},
		{in: "Bench Press", wantID: "barbell-bench-press", wantOK: true},
		{in: "Deadlift", wantID: "deadlift", wantOK: true},
		{in: "pull-up", wantID: "pull-up", wantOK: true},
		{in: "underwater basket weaving", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, ok := resolveExercise(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}
