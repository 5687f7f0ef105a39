package ledger

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	items   map[string][]byte
	saveErr error
	loadErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items[key] = append([]byte(nil), data...)
	return nil
}

func TestContainsAndAdd(t *testing.T) {
	l := New()
	assert.False(t, l.Contains("MAP1_Dragon"))

	l.Add("MAP1_Dragon")
	assert.True(t, l.Contains("MAP1_Dragon"))
	assert.False(t, l.Contains("MAP2_Golem"))

	l.Add("MAP1_Dragon")
	assert.Equal(t, 1, l.Len())
}

func TestClear(t *testing.T) {
	l := New()
	l.Add("a")
	l.Add("b")
	require.NoError(t, l.Clear())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("a"))
}

func TestJSONRoundTrip(t *testing.T) {
	l := New()
	l.Add("zeta")
	l.Add("alpha")

	data, err := l.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["alpha","zeta"]`, string(data))

	restored := New()
	require.NoError(t, restored.UnmarshalJSON(data))
	assert.Equal(t, []string{"alpha", "zeta"}, restored.IDs())
}

func TestOpenLoadsAndWritesThrough(t *testing.T) {
	store := newMemStore()
	store.items[ItemKey] = []byte(`["MAP1_Dragon"]`)

	l, err := Open(store)
	require.NoError(t, err)
	assert.True(t, l.Contains("MAP1_Dragon"))

	l.Add("MAP2_Golem")
	assert.JSONEq(t, `["MAP1_Dragon","MAP2_Golem"]`, string(store.items[ItemKey]))

	reopened, err := Open(store)
	require.NoError(t, err)
	assert.True(t, reopened.Contains("MAP2_Golem"))
}

func TestOpenEmptyStore(t *testing.T) {
	l, err := Open(newMemStore())
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	l, err = Open(nil)
	require.NoError(t, err)
	l.Add("x")
	assert.True(t, l.Contains("x"))
}

func TestOpenErrors(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk on fire")
	_, err := Open(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.loadErr)

	store = newMemStore()
	store.items[ItemKey] = []byte(`{not json`)
	_, err = Open(store)
	assert.Error(t, err)
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")
	l, err := Open(store)
	require.NoError(t, err)

	l.Add("MAP1_Dragon")
	assert.True(t, l.Contains("MAP1_Dragon"))
	assert.Equal(t, 1, store.saves)
}

func TestConcurrentAddsOfDistinctIDs(t *testing.T) {
	store := newMemStore()
	l, err := Open(store)
	require.NoError(t, err)

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Add(fmt.Sprintf("boss-%02d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, l.Len())

	persisted := New()
	require.NoError(t, persisted.UnmarshalJSON(store.items[ItemKey]))
	assert.Equal(t, n, persisted.Len(), "last save holds every id")
}
