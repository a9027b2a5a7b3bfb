package mcp

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meltforce/ironlog/internal/analytics"
	"github.com/meltforce/ironlog/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler
// functions keyed by path. Verifies the HTTP client sends correct paths and
// query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestBests verifies the client builds the per-user exercise path and parses
// the personal-bests payload.
func TestBests(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/7/exercises/deadlift/bests": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.PersonalBests{
				HeaviestWeightKg: 180,
				Best1RM:          195.5,
				BestReps:         8,
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	bests, err := client.Bests(context.Background(), 7, "deadlift")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bests.HeaviestWeightKg != 180 {
		t.Errorf("HeaviestWeightKg = %v, want 180", bests.HeaviestWeightKg)
	}
	if math.Abs(bests.Best1RM-195.5) > 0.001 {
		t.Errorf("Best1RM = %v, want 195.5", bests.Best1RM)
	}
}

// TestStandardsLadder verifies the gender query param and ladder decoding.
func TestStandardsLadder(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises/barbell-back-squat/standards": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("gender"); got != "female" {
				t.Errorf("gender=%q, want female", got)
			}
			writeTestJSON(t, w, analytics.StandardsLadder{
				ExerciseID: "barbell-back-squat",
				Gender:     models.GenderFemale,
				Standards: []analytics.StrengthStandard{
					{Level: analytics.TierBeginner, Multiplier: 0.50},
				},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	ladder, err := client.StandardsLadder(context.Background(), "barbell-back-squat", models.GenderFemale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ladder.ExerciseID != "barbell-back-squat" || len(ladder.Standards) != 1 {
		t.Errorf("ladder = %+v", ladder)
	}
}

// TestStandardForNull verifies a null classification round-trips as nil.
func TestStandardForNull(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/7/exercises/deadlift/standard": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{"classification": nil})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	classification, err := client.StandardFor(context.Background(), 7, "deadlift")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if classification != nil {
		t.Errorf("classification = %+v, want nil", classification)
	}
}

// TestGetErrorStatus verifies non-200 responses surface as errors with the
// status code and body.
func TestGetErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/7/exercises/deadlift/records": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.ExerciseRecords(context.Background(), 7, "deadlift")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// TestProgressDates verifies timestamp decoding in the progress series.
func TestProgressDates(t *testing.T) {
	logged := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/3/exercises/barbell-bench-press/progress": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.ProgressPoint{
				{Date: logged, Max1RM: 100},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	points, err := client.Progress(context.Background(), 3, "barbell-bench-press")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || !points[0].Date.Equal(logged) {
		t.Errorf("points = %+v", points)
	}
}
