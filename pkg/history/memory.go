package history

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. When cap is positive
// the oldest records are discarded once the cap is reached.
type MemoryStore struct {
	mu   sync.RWMutex
	recs []Record
	cap  int
}

// NewMemoryStore creates an in-memory store. cap <= 0 means unbounded.
func NewMemoryStore(cap int) *MemoryStore {
	return &MemoryStore{cap: cap}
}

func (s *MemoryStore) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, rec)
	if s.cap > 0 && len(s.recs) > s.cap {
		s.recs = s.recs[len(s.recs)-s.cap:]
	}
	return nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > len(s.recs) {
		limit = len(s.recs)
	}

	out := make([]Record, 0, limit)
	for i := len(s.recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.recs[i])
	}
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

var _ Store = (*MemoryStore)(nil)
