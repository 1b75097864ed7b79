package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
)

// Storage is a size-limited string key-value store, the local-storage contract the vault sits on
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryStorage keeps values in a map and enforces a byte quota over keys and values
type MemoryStorage struct {
	mu     sync.RWMutex
	quota  int
	used   int
	values map[string]string
}

// NewMemoryStorage creates an in-memory storage limited to quota bytes
func NewMemoryStorage(quota int) *MemoryStorage {
	return &MemoryStorage{
		quota:  quota,
		values: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used
	if old, ok := s.values[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)
	if used > s.quota {
		return fmt.Errorf("set %s (%d bytes): %w", key, len(value), marketerrors.ErrQuotaExceeded)
	}
	s.values[key] = value
	s.used = used
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.values[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.values, key)
	}
	return nil
}

// Used returns the number of bytes currently stored
func (s *MemoryStorage) Used() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

// FileStorage keeps one file per key under dir, bounded by a byte quota across all files
type FileStorage struct {
	mu    sync.Mutex
	dir   string
	quota int
}

// NewFileStorage creates dir if needed and returns a storage rooted there
func NewFileStorage(dir string, quota int) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create vault dir %s: %w", dir, err)
	}
	return &FileStorage{dir: dir, quota: quota}, nil
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid storage key %q: %w", key, marketerrors.ErrInvalidInput)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStorage) Get(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *FileStorage) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	used, err := s.usedExcept(p)
	if err != nil {
		return err
	}
	if used+len(value) > s.quota {
		return fmt.Errorf("set %s (%d bytes): %w", key, len(value), marketerrors.ErrQuotaExceeded)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) Remove(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// usedExcept sums the sizes of every stored file other than skip
func (s *FileStorage) usedExcept(skip string) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("scan vault dir: %w", err)
	}
	total := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if filepath.Join(s.dir, e.Name()) == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += int(info.Size())
	}
	return total, nil
}
