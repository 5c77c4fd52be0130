// Package snapshot persists the whole state blob locally, as the offline
// fallback to remote sync. Backends store exactly what the remote document
// would hold: the sanitized state with the session stripped.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"stormfins/club-app/internal/domain"
)

// FileStore keeps the state as a JSON file under a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed snapshot store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot file. A missing file is not an error;
// it simply means no snapshot has been written yet.
func (f *FileStore) Load(ctx context.Context) (*domain.State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save writes the state atomically: encode to a temp file in the same
// directory, then rename over the target.
func (f *FileStore) Save(ctx context.Context, state *domain.State) error {
	data, err := json.MarshalIndent(state.Sanitized(), "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
