package snapshot

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a named snapshot does not exist.
var ErrNotFound = errors.New("snapshot: not found")

// Snapshot is one stored rendering of a tree.
type Snapshot struct {
	Name    string
	HTML    string
	TakenAt time.Time
}

// Store persists snapshots by name.
type Store interface {
	// Save stores the HTML under the name, replacing any previous snapshot.
	Save(ctx context.Context, name, html string) error

	// Load returns the named snapshot, or ErrNotFound.
	Load(ctx context.Context, name string) (*Snapshot, error)

	// List returns stored snapshot names in sorted order.
	List(ctx context.Context) ([]string, error)
}

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]*Snapshot)}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, name, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[name] = &Snapshot{Name: name, HTML: html, TakenAt: time.Now()}
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, name string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[name]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *snap
	return &copied, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.snapshots))
	for name := range s.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
