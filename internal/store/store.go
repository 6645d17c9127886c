// Package store reads and writes the transmission log as a JSON document on disk.
package store

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/oszuidwest/zwfm-beacon/internal/apperrors"
	"github.com/oszuidwest/zwfm-beacon/internal/transmission"
)

// FileStore persists transmission state to a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. Nothing is touched on disk until Load or Persist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the store document.
// Failures are typed apperrors with codes CodeStoreMissing, CodeStoreRead or CodeStoreDecode.
// Negative timestamps count as a decode failure.
func (s *FileStore) Load() (transmission.State, error) {
	// #nosec G304 - path is operator configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		return transmission.State{}, apperrors.TranslateStoreReadError(s.path, err)
	}

	var state transmission.State
	if err := json.Unmarshal(data, &state); err != nil {
		return transmission.State{}, apperrors.StoreDecode(s.path, err)
	}
	if err := state.Validate(); err != nil {
		return transmission.State{}, apperrors.StoreDecode(s.path, err)
	}
	return state, nil
}

// Persist writes state as indented JSON, creating parent directories as needed.
// The document is written to a temporary file in the same directory and renamed
// over the target so readers never observe a partial file.
func (s *FileStore) Persist(state transmission.State) error {
	if state.Entries == nil {
		state.Entries = []transmission.Entry{}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return apperrors.StoreWrite("encode", s.path, err)
	}

	dir := filepath.Dir(s.path)
	// #nosec G301 - store directory is shared with operators inspecting the log
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.StoreWrite("mkdir", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return apperrors.StoreWrite("create temp", s.path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperrors.StoreWrite("write", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return apperrors.StoreWrite("sync", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.StoreWrite("close", s.path, err)
	}
	// #nosec G302 - the log is public site content
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return apperrors.StoreWrite("chmod", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return apperrors.StoreWrite("rename", s.path, err)
	}
	committed = true
	return nil
}
