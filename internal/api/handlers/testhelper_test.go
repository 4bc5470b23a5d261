package handlers

import (
	"path/filepath"
	"testing"

	"rookery/internal/prefs"
	"rookery/internal/storage"
)

// newTestGameStore creates an in-memory SQLite store with migrations
// applied. It registers a cleanup function to close the database when the
// test completes.
func newTestGameStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return storage.NewStore(db)
}

// newTestPrefsStore creates a prefs store pointed at a file inside a fresh
// temp directory. The file does not exist yet.
func newTestPrefsStore(t *testing.T) *prefs.Store {
	t.Helper()
	return prefs.NewStore(filepath.Join(t.TempDir(), "preferences.json"))
}
