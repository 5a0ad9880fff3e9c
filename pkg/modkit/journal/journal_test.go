package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestJournal creates a journal backed by a temp directory.
func setupTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := j.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	return j
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates journal with valid directory", func(t *testing.T) {
		t.Parallel()
		j, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("New() error = %v, want nil", err)
		}
		if j == nil {
			t.Fatal("New() returned nil")
		}
	})

	t.Run("returns error for empty directory", func(t *testing.T) {
		t.Parallel()
		if _, err := New(""); err == nil {
			t.Fatal("New() error = nil, want error for empty directory")
		}
	})
}

func TestJournal_LogProjectWrite(t *testing.T) {
	t.Parallel()
	j := setupTestJournal(t)

	entry, err := j.LogProjectWrite("/mods/huge-scatter/level.r5v", 5000, 812)
	if err != nil {
		t.Fatalf("LogProjectWrite() error = %v", err)
	}

	if entry.Operation != OpProjectWrite {
		t.Errorf("Operation = %v, want %v", entry.Operation, OpProjectWrite)
	}
	if entry.OriginalSize != 5000 || entry.CompressedSize != 812 {
		t.Errorf("sizes = %d/%d, want 5000/812", entry.OriginalSize, entry.CompressedSize)
	}
	if !strings.HasPrefix(entry.ID, "project-write-") {
		t.Errorf("ID = %q, want project-write- prefix", entry.ID)
	}
	if entry.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestJournal_LogScaffold(t *testing.T) {
	t.Parallel()
	j := setupTestJournal(t)

	entry, err := j.LogScaffold("/mods/huge-scatter", "huge-scatter")
	if err != nil {
		t.Fatalf("LogScaffold() error = %v", err)
	}

	if entry.Operation != OpScaffold {
		t.Errorf("Operation = %v, want %v", entry.Operation, OpScaffold)
	}
	if entry.ModID != "huge-scatter" {
		t.Errorf("ModID = %q", entry.ModID)
	}
}

func TestJournal_List(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()
		j := setupTestJournal(t)

		for i := 0; i < 3; i++ {
			if _, err := j.LogProjectWrite("/w/p.r5v", int64(i), int64(i)); err != nil {
				t.Fatal(err)
			}
			time.Sleep(10 * time.Millisecond)
		}

		entries, err := j.List(0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("len(entries) = %d, want 3", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Timestamp.After(entries[i-1].Timestamp) {
				t.Error("entries not sorted newest first")
			}
		}
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()
		j := setupTestJournal(t)

		for i := 0; i < 5; i++ {
			if _, err := j.LogScaffold("/mods/m", "m"); err != nil {
				t.Fatal(err)
			}
		}

		entries, err := j.List(2)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("len(entries) = %d, want 2", len(entries))
		}
	})

	t.Run("missing directory yields empty list", func(t *testing.T) {
		t.Parallel()
		j, err := New(filepath.Join(t.TempDir(), "never-created"))
		if err != nil {
			t.Fatal(err)
		}

		entries, err := j.List(0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("len(entries) = %d, want 0", len(entries))
		}
	})

	t.Run("skips unparsable files", func(t *testing.T) {
		t.Parallel()
		j := setupTestJournal(t)

		if _, err := j.LogScaffold("/mods/m", "m"); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(j.dir, "garbage.json"), []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		entries, err := j.List(0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("len(entries) = %d, want 1", len(entries))
		}
	})
}

func TestJournal_Get(t *testing.T) {
	t.Parallel()
	j := setupTestJournal(t)

	created, err := j.LogProjectWrite("/w/p.r5v", 10, 34)
	if err != nil {
		t.Fatal(err)
	}

	got, err := j.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}

	if _, err := j.Get("no-such-entry"); err == nil {
		t.Error("Get() of unknown id should fail")
	}
	if _, err := j.Get(""); err == nil {
		t.Error("Get() of empty id should fail")
	}
}

func TestJournal_Cleanup(t *testing.T) {
	t.Parallel()
	j := setupTestJournal(t)

	entry, err := j.LogScaffold("/mods/old", "old")
	if err != nil {
		t.Fatal(err)
	}

	// Age the entry file past the retention window
	old := time.Now().AddDate(0, 0, -60)
	path := filepath.Join(j.dir, entry.ID+".json")
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	fresh, err := j.LogScaffold("/mods/new", "new")
	if err != nil {
		t.Fatal(err)
	}

	if err := j.Cleanup(30); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	entries, err := j.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 after cleanup", len(entries))
	}
	if entries[0].ID != fresh.ID {
		t.Errorf("surviving entry = %q, want %q", entries[0].ID, fresh.ID)
	}
}
