// Package ledger keeps the set of permanently defeated boss identifiers for a
// play session. Bosses consult it when they are created and write to it when
// they die; nothing ever removes a single id.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ItemKey is the save-data key the ledger is persisted under.
const ItemKey = "defeated_bosses"

// Store is durable save-data storage, normally gdata save data.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Ledger is a concurrency-safe set of defeated boss ids.
type Ledger struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	store Store

	// saveMu serializes writes so the last save always holds every id.
	saveMu sync.Mutex
}

// New creates an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

// Open creates a ledger backed by store, loading whatever was saved before.
// A nil store gives an in-memory ledger.
func Open(store Store) (*Ledger, error) {
	l := New()
	l.store = store
	if store == nil {
		return l, nil
	}

	data, err := store.LoadItem(ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ItemKey, err)
	}
	if len(data) == 0 {
		return l, nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ItemKey, err)
	}

	slog.Info("defeat ledger loaded", "bosses", l.Len())
	return l, nil
}

// Contains reports whether id has been defeated this session.
func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[id]
	return ok
}

// Add records id as defeated. Adding an id twice is a no-op. Persistence
// failures are logged and otherwise ignored; the in-memory set stays correct.
func (l *Ledger) Add(id string) {
	l.mu.Lock()
	if _, ok := l.ids[id]; ok {
		l.mu.Unlock()
		return
	}
	l.ids[id] = struct{}{}
	l.mu.Unlock()

	slog.Info("boss defeated", "id", id)

	if err := l.save(); err != nil {
		slog.Warn("could not persist defeat ledger", "id", id, "error", err)
	}
}

// Clear forgets every defeat. Only a new game should call it.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	l.ids = make(map[string]struct{})
	l.mu.Unlock()
	return l.save()
}

// Len returns the number of defeated bosses.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// IDs returns the defeated ids in sorted order.
func (l *Ledger) IDs() []string {
	l.mu.RLock()
	ids := make([]string, 0, len(l.ids))
	for id := range l.ids {
		ids = append(ids, id)
	}
	l.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the ledger as a sorted array of ids.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.IDs())
}

// UnmarshalJSON merges an array of ids into the ledger.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ids == nil {
		l.ids = make(map[string]struct{}, len(ids))
	}
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
	return nil
}

func (l *Ledger) save() error {
	if l.store == nil {
		return nil
	}
	l.saveMu.Lock()
	defer l.saveMu.Unlock()

	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return l.store.SaveItem(ItemKey, data)
}
