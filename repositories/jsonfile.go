package repositories

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a document-store record id does not exist.
var ErrNotFound = errors.New("record not found")

// jsonFile is a JSON-array file holding an entire collection. Every mutation
// rewrites the whole file; the mutex serializes read-modify-write cycles so
// concurrent handlers cannot silently lose each other's updates.
type jsonFile struct {
	mu   sync.Mutex
	path string
}

// read decodes the file into v. A missing, empty, or corrupt file counts as
// an empty collection.
func (f *jsonFile) read(v interface{}) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	// Corrupt content reads as empty, same as a fresh file.
	_ = json.Unmarshal(data, v)
	return nil
}

func (f *jsonFile) write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
