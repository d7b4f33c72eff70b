// Package history persists evaluation records across sessions.
package history

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// DefaultLimit bounds the on-disk record count when the config does
// not say otherwise.
const DefaultLimit = 1000

// Record is one finished evaluation. Either Result or ErrMsg is set.
type Record struct {
	Expr   string
	Result string
	ErrMsg string
	At     time.Time
}

// Failed reports whether the evaluation ended in an error.
func (r Record) Failed() bool { return r.ErrMsg != "" }

type payload struct {
	Schema  uint16
	Records []Record
}

// Store reads and writes the history file. Safe for concurrent use
// within one process; cross-process writers last-write-win.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

// Open places the store at the standard cache location
// ($XDG_CACHE_HOME/reckon/history.mp, falling back to ~/.cache).
func Open(app string, limit int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "history.mp"), limit), nil
}

// OpenAt places the store at an explicit path. Used by tests and by
// config overrides.
func OpenAt(path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{path: path, limit: limit}
}

// Load returns all records, oldest first. A missing file or a schema
// mismatch reads as empty; the next Append rewrites it.
func (s *Store) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var p payload
	if err := msgpack.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	if p.Schema != schemaVersion {
		return nil, nil
	}
	return p.Records, nil
}

// Append adds one record, trimming the file to the store's limit.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > s.limit {
		records = records[len(records)-s.limit:]
	}
	return s.write(records)
}

// Clear removes every record.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) write(records []Record) error {
	raw, err := msgpack.Marshal(payload{Schema: schemaVersion, Records: records})
	if err != nil {
		return err
	}
	// Atomic replace: write to a sibling temp file, then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
