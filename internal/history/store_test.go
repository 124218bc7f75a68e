package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenPath(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenPath() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	entry := NewEntry(OpInstall, "/usr/bin/pacman", []string{"vim", "ripgrep"})
	entry.MarkSuccess()

	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.Operation != OpInstall {
		t.Errorf("operation = %q, want %q", got.Operation, OpInstall)
	}
	if len(got.Packages) != 2 {
		t.Errorf("packages = %v, want 2 entries", got.Packages)
	}
	if !got.Success {
		t.Error("entry should be marked successful")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i, op := range []Operation{OpRefresh, OpInstall, OpUpgrade} {
		entry := NewEntry(op, "/usr/bin/pacman", nil)
		// Distinct timestamps so the bucket ordering is deterministic.
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Second)
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Operation != OpUpgrade {
		t.Errorf("newest entry = %q, want %q", entries[0].Operation, OpUpgrade)
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		entry := NewEntry(OpRefresh, "/usr/bin/pacman", nil)
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Second)
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	entries, err := store.List(2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestLast(t *testing.T) {
	store := openTestStore(t)

	last, err := store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if last != nil {
		t.Errorf("expected nil for an empty history, got %+v", last)
	}

	entry := NewEntry(OpRemove, "/usr/bin/pacman", []string{"vim"})
	entry.MarkFailed(errors.New("error: target not found: vim"))
	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	last, err = store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if last == nil {
		t.Fatal("expected an entry")
	}
	if last.Success {
		t.Error("entry should be marked failed")
	}
	if last.Error == "" {
		t.Error("failed entry should carry the error text")
	}
}
