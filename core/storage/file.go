package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON file, giving state the same
// durability across process restarts that browser storage gives across tab
// reloads. Write errors are swallowed: storage degrades to in-memory rather
// than failing the caller.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFile opens (or creates) a file-backed store at path. A missing or
// unreadable file starts empty; a corrupt file is discarded.
func NewFile(path string) *File {
	f := &File{path: path, data: make(map[string]string)}

	if raw, err := os.ReadFile(path); err == nil {
		var data map[string]string
		if json.Unmarshal(raw, &data) == nil && data != nil {
			f.data = data
		}
	}
	return f
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.flush()
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.flush()
}

// flush writes the store atomically via a temp file rename.
// Caller must hold the lock.
func (f *File) flush() {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, f.path)
}
