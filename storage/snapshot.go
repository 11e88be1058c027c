package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"halaqa_go/models"
)

// SnapshotFile persists the full state as one JSON document on disk.
// Struct marshalling keeps field order deterministic, so an unchanged
// snapshot writes byte-identical output.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile points the store at a snapshot path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Path returns the snapshot file location.
func (sf *SnapshotFile) Path() string {
	return sf.path
}

// Load reads the snapshot. A missing file is a first run, not an error:
// it returns (nil, nil).
func (sf *SnapshotFile) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save writes the snapshot atomically: marshal, write a sibling temp
// file, rename over the target. A crash mid-save leaves the previous
// snapshot intact.
func (sf *SnapshotFile) Save(snapshot *models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(sf.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(sf.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, sf.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
