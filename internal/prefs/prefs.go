// Package prefs handles shutter user preferences persistence.
// Preferences are stored in ~/.config/shutter/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// PreferenceStore is a small string key-value store.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Ensure both backends implement PreferenceStore at compile time.
var (
	_ PreferenceStore = (*FileStore)(nil)
	_ PreferenceStore = (*MemoryStore)(nil)
)

const (
	// GridLayoutKey holds the grid column count.
	GridLayoutKey = "gridLayout"

	// DefaultColumns is used when no valid column count is stored.
	DefaultColumns = 3
	MinColumns     = 2
	MaxColumns     = 6

	defaultPrefsPath = "~/.config/shutter/prefs.toml"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Columns reads the persisted column count, falling back to DefaultColumns
// when the entry is absent, unparseable or out of range.
func Columns(store PreferenceStore) int {
	if store == nil {
		return DefaultColumns
	}
	raw, ok := store.Get(GridLayoutKey)
	if !ok {
		return DefaultColumns
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinColumns || n > MaxColumns {
		return DefaultColumns
	}
	return n
}

// SetColumns persists n, clamped to the supported range, and returns the
// stored value.
func SetColumns(store PreferenceStore, n int) (int, error) {
	n = ClampColumns(n)
	if store == nil {
		return n, nil
	}
	return n, store.Set(GridLayoutKey, strconv.Itoa(n))
}

// ClampColumns limits n to MinColumns..MaxColumns.
func ClampColumns(n int) int {
	return min(max(n, MinColumns), MaxColumns)
}

// FileStore is a PreferenceStore backed by a flat TOML table. Every Set
// rewrites the file.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// Open reads preferences from the given path, falling back to an empty store
// when the file is missing or unreadable.
func Open(path string) *FileStore {
	fs := &FileStore{values: make(map[string]string)}

	resolved, err := resolvePath(path)
	if err != nil {
		return fs
	}
	fs.path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs
		}
		return fs // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fs // Graceful degradation
	}

	var raw map[string]any
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fs // Graceful degradation
	}
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fs.values[k] = val
		case int64:
			fs.values[k] = strconv.FormatInt(val, 10)
		}
	}
	return fs
}

// Path returns the resolved file path, or "" when it could not be resolved.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the stored value for key.
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set stores value and writes the file, creating directories as needed.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	if f.path == "" {
		return fmt.Errorf("resolve path: prefs path unavailable")
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(f.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// MemoryStore is an in-process PreferenceStore.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
