package importer

import (
	"os"
	"path/filepath"
	"testing"
)

// TestStateDBRoundTrip verifies the mark-then-check cycle and that a changed
// hash invalidates the entry.
func TestStateDBRoundTrip(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatalf("opening state db: %v", err)
	}
	defer state.Close()

	seen, err := state.IsImported("export.csv", 100, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen {
		t.Error("fresh db should not report file as imported")
	}

	if err := state.MarkImported("export.csv", 100, "abc"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	seen, err = state.IsImported("export.csv", 100, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seen {
		t.Error("marked file should report as imported")
	}

	// Same path, new content: must re-import.
	seen, err = state.IsImported("export.csv", 120, "def")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen {
		t.Error("changed file should not report as imported")
	}
}

// TestHashFileStable verifies identical content hashes identically.
func TestHashFileStable(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("1;100;5;1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ha, err := HashFile(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := HashFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Errorf("hashes differ for identical content: %s vs %s", ha, hb)
	}
}
