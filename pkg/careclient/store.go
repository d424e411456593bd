package careclient

import (
	"context"
	"sync"
)

// Store caches one collection of a user's records. Records keep the order
// they were created in: the server lists oldest first, and confirmed creates
// append to the end. There is no local mutation beyond that append.
type Store struct {
	backend    Backend
	collection string

	mu      sync.Mutex
	records []*Record
	loaded  bool
}

func NewStore(backend Backend, collection string) *Store {
	return &Store{backend: backend, collection: collection}
}

// Collection returns the server collection this store reads and writes.
func (s *Store) Collection() string { return s.collection }

// List returns the records in insertion order, fetching from the server on
// first use. The returned slice is a copy; callers may not mutate the cache
// through it.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		records, err := s.backend.ListRecords(ctx, s.collection)
		if err != nil {
			return nil, &StoreError{Collection: s.collection, Err: err}
		}
		s.records = records
		s.loaded = true
	}

	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Create sends the fields to the server and appends the confirmed record.
// On failure the cached list is untouched.
func (s *Store) Create(ctx context.Context, fields map[string]any) (*Record, error) {
	rec, err := s.backend.CreateRecord(ctx, s.collection, fields)
	if err != nil {
		return nil, &StoreError{Collection: s.collection, Err: err}
	}

	s.mu.Lock()
	if s.loaded {
		s.records = append(s.records, rec)
	}
	s.mu.Unlock()
	return rec, nil
}

// Invalidate drops the cache so the next List refetches, used after the
// session changes.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.records = nil
	s.loaded = false
	s.mu.Unlock()
}
