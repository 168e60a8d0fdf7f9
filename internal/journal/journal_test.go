package journal

import (
	"path/filepath"
	"testing"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndCount(t *testing.T) {
	j := newTestJournal(t)

	if err := j.Record("add_node", "node_1", "problem: p"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := j.Record("remove_node", "node_1", ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	n, err := j.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestRecent_NewestFirst(t *testing.T) {
	j := newTestJournal(t)
	_ = j.Record("add_node", "node_1", "")
	_ = j.Record("move_node", "node_1", "")

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Op != "move_node" || entries[1].Op != "add_node" {
		t.Errorf("order = %s, %s, want newest first", entries[0].Op, entries[1].Op)
	}
}

func TestNilJournalIsSafe(t *testing.T) {
	var j *Journal

	if err := j.Record("add_node", "node_1", ""); err != nil {
		t.Errorf("nil Record: %v", err)
	}
	if n, err := j.Count(); err != nil || n != 0 {
		t.Errorf("nil Count = %d, %v", n, err)
	}
	if err := j.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOpen_ReopensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j1, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = j1.Record("add_node", "node_1", "")
	if err := j1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	j2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()

	if n, _ := j2.Count(); n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}
