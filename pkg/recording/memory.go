package recording

import (
	"context"
	"sync"
	"time"
)

// MemoryStorer keeps a recording in process memory.
type MemoryStorer struct {
	mu      sync.RWMutex
	records []*Record
	byHash  map[string]*Record
}

// NewMemoryStorer creates an empty in-memory recording.
func NewMemoryStorer() *MemoryStorer {
	return &MemoryStorer{byHash: make(map[string]*Record)}
}

func (m *MemoryStorer) Append(_ context.Context, data string, at time.Time) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var parent *Record
	if n := len(m.records); n > 0 {
		parent = m.records[n-1]
	}

	r := NewRecord(data, parent, at)
	m.records = append(m.records, r)
	m.byHash[r.Hash] = r
	return r, nil
}

func (m *MemoryStorer) Get(_ context.Context, hash string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.byHash[hash]
	if !ok {
		return nil, ErrNotFound{Hash: hash}
	}
	return r, nil
}

func (m *MemoryStorer) Head(_ context.Context) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.records) == 0 {
		return nil, ErrNotFound{}
	}
	return m.records[len(m.records)-1], nil
}

func (m *MemoryStorer) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStorer) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records), nil
}

func (m *MemoryStorer) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	m.byHash = make(map[string]*Record)
	return nil
}

func (m *MemoryStorer) Close() error {
	return nil
}
