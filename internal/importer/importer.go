package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/meltforce/ironlog/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	SessionsParsed   int
	SessionsInserted int
	SetsReceived     int
}

// Importer reads training-log CSV exports from a sync directory and inserts
// the session history into the database.
type Importer struct {
	db     *storage.DB
	state  *StateDB
	log    *slog.Logger
	userID int
	dryRun bool
	stats  Stats
}

// New creates a new Importer. A nil state database disables file-level
// dedupe; every file is parsed on every run.
func New(db *storage.DB, state *StateDB, userID int, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, state: state, userID: userID, log: log, dryRun: dryRun}
}

// Import processes all .csv exports under dir, oldest file first, and records
// the run in import_logs. Parse failures skip the file; insert failures abort.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	start := time.Now()

	logID, err := imp.beginLog(ctx)
	if err != nil {
		return &imp.stats, err
	}

	importErr := imp.importDir(ctx, dir)
	imp.finishLog(ctx, logID, start, importErr)
	return &imp.stats, importErr
}

func (imp *Importer) importDir(ctx context.Context, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(files)

	for _, path := range files {
		skip, size, hash, err := imp.alreadyImported(path)
		if err != nil {
			imp.log.Warn("state check failed", "file", path, "error", err)
		}
		if skip {
			imp.stats.FilesSkipped++
			continue
		}

		if err := imp.importFile(ctx, path); err != nil {
			return err
		}

		if imp.state != nil && !imp.dryRun {
			if err := imp.state.MarkImported(filepath.Base(path), size, hash); err != nil {
				imp.log.Warn("marking file imported failed", "file", path, "error", err)
			}
		}
	}
	return nil
}

func (imp *Importer) importFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		imp.log.Warn("open failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return nil
	}
	defer f.Close()

	sessions, err := Parse(f)
	if err != nil {
		imp.log.Warn("parse failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return nil
	}
	if len(sessions) == 0 {
		imp.stats.FilesSkipped++
		return nil
	}

	imp.stats.FilesProcessed++
	imp.stats.SessionsParsed += len(sessions)

	for _, s := range sessions {
		payload := Convert(s, imp.userID)
		for _, ex := range payload.Exercises {
			imp.stats.SetsReceived += len(ex.Sets)
		}

		if imp.dryRun {
			imp.stats.SessionsInserted++
			continue
		}
		if err := imp.db.InsertSession(ctx, payload); err != nil {
			return fmt.Errorf("inserting session %s from %s: %w", s.Name, filepath.Base(path), err)
		}
		imp.stats.SessionsInserted++
	}

	imp.log.Info("imported file", "file", filepath.Base(path), "sessions", len(sessions))
	return nil
}

// alreadyImported reports whether the state database has seen this exact
// file content before, along with the size and hash for later marking.
func (imp *Importer) alreadyImported(path string) (bool, int64, string, error) {
	if imp.state == nil {
		return false, 0, "", nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, 0, "", err
	}
	hash, err := HashFile(path)
	if err != nil {
		return false, 0, "", err
	}
	seen, err := imp.state.IsImported(filepath.Base(path), info.Size(), hash)
	return seen, info.Size(), hash, err
}

func (imp *Importer) beginLog(ctx context.Context) (int64, error) {
	if imp.dryRun || imp.db == nil {
		return 0, nil
	}
	id, err := imp.db.InsertImportLog(ctx, storage.ImportLog{
		UserID: imp.userID,
		Source: "csv",
		Status: "running",
	})
	if err != nil {
		return 0, fmt.Errorf("recording import start: %w", err)
	}
	return id, nil
}

func (imp *Importer) finishLog(ctx context.Context, id int64, start time.Time, importErr error) {
	if id == 0 {
		return
	}
	durationMs := int(time.Since(start).Milliseconds())
	entry := storage.ImportLog{
		UserID:           imp.userID,
		Source:           "csv",
		Status:           "success",
		FilesProcessed:   imp.stats.FilesProcessed,
		FilesSkipped:     imp.stats.FilesSkipped,
		SessionsInserted: imp.stats.SessionsInserted,
		SetsReceived:     imp.stats.SetsReceived,
		DurationMs:       &durationMs,
	}
	if importErr != nil {
		msg := importErr.Error()
		entry.Status = "error"
		entry.ErrorMessage = &msg
	}
	if err := imp.db.UpdateImportLog(ctx, id, entry); err != nil {
		imp.log.Warn("updating import log failed", "error", err)
	}
}
