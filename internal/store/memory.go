package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// MemoryStore implements Store with process-local maps: listings keyed by ID
// plus a secondary index from canonical VIN to listing IDs. A single RWMutex
// guards both structures so concurrent ingest and score requests against
// overlapping VINs do not race.
//
// Nothing is ever evicted or deleted; this backend exists for demo runs
// without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	byID     map[string]domain.Listing
	idsByVIN map[string][]string
	order    []string // listing IDs in insertion order, for stable reads
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:     make(map[string]domain.Listing),
		idsByVIN: make(map[string][]string),
	}
}

// Put stores a listing, assigning a UUID and creation timestamp when absent.
// Re-putting an existing ID overwrites the listing without duplicating it in
// the VIN index.
func (s *MemoryStore) Put(_ context.Context, l *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	vin := domain.CanonicalVIN(l.VIN)
	if _, exists := s.byID[l.ID]; !exists {
		s.order = append(s.order, l.ID)
	}
	s.byID[l.ID] = *l

	if !slices.Contains(s.idsByVIN[vin], l.ID) {
		s.idsByVIN[vin] = append(s.idsByVIN[vin], l.ID)
	}

	return nil
}

// List returns every stored listing, newest-created first. Scores recorded
// since ingestion are already present on the listings themselves.
func (s *MemoryStore) List(_ context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, 0, len(s.order))
	// Walk insertion order backwards so creation-time ties keep the most
	// recently inserted listing first.
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	slices.SortStableFunc(out, func(a, b domain.Listing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out, nil
}

// FindByVIN returns listing IDs stored under the canonicalized VIN in
// insertion order.
func (s *MemoryStore) FindByVIN(_ context.Context, vin string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.idsByVIN[domain.CanonicalVIN(vin)]
	return slices.Clone(ids), nil
}

// RecordScore writes the score fields onto every listing indexed under the
// canonicalized VIN. An unknown VIN updates nothing.
func (s *MemoryStore) RecordScore(
	_ context.Context,
	vin string,
	scoreVal int,
	buyMax float64,
	reasonCodes []string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.idsByVIN[domain.CanonicalVIN(vin)] {
		l, ok := s.byID[id]
		if !ok {
			continue
		}
		sv := scoreVal
		bm := buyMax
		l.Score = &sv
		l.BuyMax = &bm
		l.ReasonCodes = slices.Clone(reasonCodes)
		s.byID[id] = l
	}

	return nil
}

// Migrate is a no-op for the memory backend.
func (*MemoryStore) Migrate(context.Context) error { return nil }

// Ping always succeeds for the memory backend.
func (*MemoryStore) Ping(context.Context) error { return nil }
