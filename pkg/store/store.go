package store

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muxcfg/muxcfg/internal/log"
)

// Store is the capability interface the TUI and one-shot commands consume.
// The concrete implementation is FS, but the interface allows an in-memory
// backend for tests.
type Store interface {
	List() ([]string, error)
	Save(name string) error
	Update(name string) error
	Delete(name string) error
	Apply(name string) error
	Read(name string) ([]byte, error)
	Path(name string) string
}

// FS stores snapshots as plain files in a single directory and treats one
// external path as the live tmux configuration.
type FS struct {
	Dir      string // snapshots directory
	LiveConf string // path the multiplexer actually reads
	TmuxBin  string // binary used for the best-effort reload signal
}

// NewFS creates a filesystem-backed store. The snapshots directory is
// created lazily on the first Save.
func NewFS(dir, liveConf, tmuxBin string) *FS {
	return &FS{Dir: dir, LiveConf: liveConf, TmuxBin: tmuxBin}
}

// List returns the sorted names of all snapshots. A missing snapshots
// directory is an empty list, not an error.
func (s *FS) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), SnapshotSuffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// Save copies the live configuration to a new snapshot. It refuses to
// overwrite: saving over an existing name returns ErrExists.
func (s *FS) Save(name string) error {
	name = Normalize(name)

	if _, err := os.Stat(s.Path(name)); err == nil {
		return fmt.Errorf("snapshot %s: %w", name, ErrExists)
	}

	return s.writeSnapshot(name)
}

// Update overwrites an existing snapshot with the live configuration.
// Updating a name that was never saved returns ErrNotFound.
func (s *FS) Update(name string) error {
	name = Normalize(name)

	if _, err := os.Stat(s.Path(name)); err != nil {
		return fmt.Errorf("snapshot %s: %w", name, ErrNotFound)
	}

	return s.writeSnapshot(name)
}

// Delete removes a snapshot.
func (s *FS) Delete(name string) error {
	name = Normalize(name)

	err := os.Remove(s.Path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("snapshot %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}

	return nil
}

// Apply copies a snapshot over the live configuration and asks tmux to
// re-source it. The copy is the primary effect; a failed reload (tmux not
// running) is logged and deliberately discarded.
func (s *FS) Apply(name string) error {
	name = Normalize(name)

	content, err := s.Read(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.LiveConf, content, 0644); err != nil {
		return fmt.Errorf("failed to write live config %s: %w", s.LiveConf, err)
	}

	if err := exec.Command(s.TmuxBin, "source-file", s.LiveConf).Run(); err != nil {
		log.Debugf("tmux reload skipped: %v", err)
	}

	return nil
}

// Read returns the contents of a snapshot.
func (s *FS) Read(name string) ([]byte, error) {
	name = Normalize(name)

	content, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("snapshot %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}

	return content, nil
}

// Path returns the absolute location of a snapshot, whether or not it
// exists yet.
func (s *FS) Path(name string) string {
	return filepath.Join(s.Dir, Normalize(name))
}

func (s *FS) writeSnapshot(name string) error {
	content, err := os.ReadFile(s.LiveConf)
	if err != nil {
		return fmt.Errorf("failed to read live config %s: %w", s.LiveConf, err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshots directory: %w", err)
	}

	if err := os.WriteFile(s.Path(name), content, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}

	return nil
}
