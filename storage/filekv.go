package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// KV is a durable key-value namespace holding JSON documents.
type KV interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
	Delete(key string) error
}

// FileKV keeps the whole namespace in one JSON file. The file is re-read before
// every operation so several processes can share it. Writers hold an exclusive
// lock on <path>.lock from reload to rename, so a write only replaces its own key.
type FileKV struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
	data map[string]json.RawMessage
}

func OpenFileKV(path string) (*FileKV, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	kv := &FileKV{path: path, lock: flock.New(path + ".lock")}
	if err := kv.withLock(false, kv.reload); err != nil {
		return nil, err
	}
	return kv, nil
}

// withLock runs fn under the cross-process file lock. Callers hold s.mu.
func (s *FileKV) withLock(exclusive bool, fn func() error) error {
	var err error
	if exclusive {
		err = s.lock.Lock()
	} else {
		err = s.lock.RLock()
	}
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer s.lock.Unlock()

	return fn()
}

func (s *FileKV) reload() error {
	data := map[string]json.RawMessage{}

	raw, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("decode %s: %w", s.path, err)
		}
	}
	s.data = data
	return nil
}

func (s *FileKV) Get(key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw json.RawMessage
	err := s.withLock(false, func() error {
		if err := s.reload(); err != nil {
			return err
		}
		raw = s.data[key]
		return nil
	})
	if err != nil || raw == nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode key %s: %w", key, err)
	}
	return true, nil
}

func (s *FileKV) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withLock(true, func() error {
		if err := s.reload(); err != nil {
			return err
		}
		s.data[key] = raw
		return s.flush()
	})
}

func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withLock(true, func() error {
		if err := s.reload(); err != nil {
			return err
		}
		if _, ok := s.data[key]; !ok {
			return nil
		}
		delete(s.data, key)
		return s.flush()
	})
}

// flush replaces the file atomically via rename of a temp file in the same dir.
func (s *FileKV) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// Exists reports whether a data file is present, used to decide on migration.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
