package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testStore returns an FS rooted in a temp dir with a live config in place.
// The tmux binary is deliberately bogus so Apply's reload signal always
// fails, which must not affect the outcome.
func testStore(t *testing.T, liveContent string) *FS {
	t.Helper()
	dir := t.TempDir()

	live := filepath.Join(dir, "tmux.conf")
	if err := os.WriteFile(live, []byte(liveContent), 0644); err != nil {
		t.Fatalf("failed to write live config: %v", err)
	}

	return NewFS(filepath.Join(dir, "snapshots"), live, filepath.Join(dir, "no-such-tmux"))
}

func TestListEmptyWhenDirMissing(t *testing.T) {
	s := testStore(t, "set -g mouse on\n")

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no snapshots, got %v", names)
	}
}

func TestSaveThenList(t *testing.T) {
	s := testStore(t, "set -g mouse on\n")

	if err := s.Save("dev"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("alpha.conf"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha.conf" || names[1] != "dev.conf" {
		t.Errorf("expected sorted [alpha.conf dev.conf], got %v", names)
	}

	content, err := s.Read("dev")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(content) != "set -g mouse on\n" {
		t.Errorf("snapshot content = %q, want live config content", content)
	}
}

func TestSaveRefusesExisting(t *testing.T) {
	s := testStore(t, "a\n")

	if err := s.Save("dev"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	err := s.Save("dev.conf")
	if !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestUpdateRequiresExisting(t *testing.T) {
	s := testStore(t, "a\n")

	err := s.Update("dev")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := s.Save("dev"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := os.WriteFile(s.LiveConf, []byte("b\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite live config: %v", err)
	}
	if err := s.Update("dev"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	content, err := s.Read("dev")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(content) != "b\n" {
		t.Errorf("updated snapshot = %q, want %q", content, "b\n")
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t, "a\n")

	if err := s.Save("dev"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete("dev"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := s.Delete("dev"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list after delete, got %v", names)
	}
}

func TestApplyCopiesAndSwallowsReloadFailure(t *testing.T) {
	s := testStore(t, "original\n")

	if err := s.Save("dev"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(s.LiveConf, []byte("drifted\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite live config: %v", err)
	}

	// TmuxBin does not exist, so the reload signal fails; Apply must
	// still succeed because the copy is the primary effect.
	if err := s.Apply("dev"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	live, err := os.ReadFile(s.LiveConf)
	if err != nil {
		t.Fatalf("failed to read live config: %v", err)
	}
	if string(live) != "original\n" {
		t.Errorf("live config = %q, want snapshot content restored", live)
	}
}

func TestApplyMissingSnapshot(t *testing.T) {
	s := testStore(t, "a\n")

	if err := s.Apply("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadMissingSnapshot(t *testing.T) {
	s := testStore(t, "a\n")

	if _, err := s.Read("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
