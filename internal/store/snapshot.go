package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/timerd/internal/collection"
)

// Snapshot is the top-level durable shape. An absent trash array means an
// empty trash.
type Snapshot struct {
	Timers []Record `json:"timers"`
	Trash  []Record `json:"trash,omitempty"`
}

// Store reads and writes the timer snapshot at a fixed path. Writes go to a
// temporary file first and move into place with an atomic rename, so a crash
// mid-write leaves the previous snapshot intact.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Save(mgr *collection.Manager) error {
	snap := Snapshot{Timers: make([]Record, 0, mgr.Active.Len())}
	for _, t := range mgr.Active.Ordered() {
		snap.Timers = append(snap.Timers, EncodeTimer(t))
	}
	for _, t := range mgr.Trash.Ordered() {
		snap.Trash = append(snap.Trash, EncodeTimer(t))
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load rebuilds the collections from disk. A missing or unreadable snapshot
// yields empty collections; a malformed individual record is skipped while
// the rest still load. Duplicate ids get a fresh id before insertion so
// uniqueness holds across the union of both lists.
func (s *Store) Load(now time.Time) *collection.Manager {
	mgr := collection.NewManager()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return mgr
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return mgr
	}

	for _, rec := range snap.Timers {
		t := DecodeTimer(rec, now)
		if t == nil {
			continue
		}
		for mgr.Contains(t.ID) {
			t.ID = uuid.NewString()
		}
		_ = mgr.Add(t)
	}
	for _, rec := range snap.Trash {
		t := DecodeTimer(rec, now)
		if t == nil {
			continue
		}
		for mgr.Contains(t.ID) {
			t.ID = uuid.NewString()
		}
		_ = mgr.AddToTrash(t)
	}
	return mgr
}
