package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dealscout/dealscout/pkg/types"
)

func TestMemoryStore_PutAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	l := domain.Listing{VIN: "X1", Make: "Honda", Model: "Accord", Price: 20000}

	require.NoError(t, s.Put(context.Background(), &l))

	assert.NotEmpty(t, l.ID)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestMemoryStore_PutPreservesExistingID(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	l := domain.Listing{ID: "fixed-id", VIN: "X1", CreatedAt: ts}

	require.NoError(t, s.Put(context.Background(), &l))

	assert.Equal(t, "fixed-id", l.ID)
	assert.Equal(t, ts, l.CreatedAt)
}

func TestMemoryStore_RePutDoesNotDuplicateVINIndex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	l := domain.Listing{ID: "same-id", VIN: "X1", Price: 20000}
	require.NoError(t, s.Put(ctx, &l))

	l.Price = 19500
	require.NoError(t, s.Put(ctx, &l))

	ids, err := s.FindByVIN(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, []string{"same-id"}, ids)

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 19500.0, listings[0].Price)
}

func TestMemoryStore_FindByVINCanonicalizes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	l := domain.Listing{VIN: "X1"}
	require.NoError(t, s.Put(ctx, &l))

	tests := []struct {
		name string
		vin  string
	}{
		{"exact", "X1"},
		{"lowercase", "x1"},
		{"padded", " x1 "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ids, err := s.FindByVIN(ctx, tt.vin)
			require.NoError(t, err)
			assert.Len(t, ids, 1)
		})
	}
}

func TestMemoryStore_RecordScoreMutatesAllMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 2; i++ {
		l := domain.Listing{VIN: "X1"}
		require.NoError(t, s.Put(ctx, &l))
	}
	other := domain.Listing{VIN: "Y2"}
	require.NoError(t, s.Put(ctx, &other))

	require.NoError(t, s.RecordScore(ctx, "x1", 72, 18500.00, []string{"LowMiles"}))

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	for _, l := range listings {
		if l.VIN == "X1" {
			require.NotNil(t, l.Score)
			assert.Equal(t, 72, *l.Score)
			require.NotNil(t, l.BuyMax)
			assert.Equal(t, 18500.00, *l.BuyMax)
			assert.Equal(t, []string{"LowMiles"}, l.ReasonCodes)
		} else {
			assert.Nil(t, l.Score)
			assert.Nil(t, l.BuyMax)
		}
	}
}

func TestMemoryStore_RecordScoreUnknownVINIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	l := domain.Listing{VIN: "X1"}
	require.NoError(t, s.Put(ctx, &l))

	require.NoError(t, s.RecordScore(ctx, "NOPE", 50, 1000, []string{"Heuristic"}))

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Nil(t, listings[0].Score)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	older := domain.Listing{
		VIN:       "OLD",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := domain.Listing{
		VIN:       "NEW",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(ctx, &older))
	require.NoError(t, s.Put(ctx, &newer))

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "NEW", listings[0].VIN)
	assert.Equal(t, "OLD", listings[1].VIN)
}

func TestMemoryStore_ListTieBreaksByInsertion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	first := domain.Listing{VIN: "FIRST", CreatedAt: ts}
	second := domain.Listing{VIN: "SECOND", CreatedAt: ts}
	require.NoError(t, s.Put(ctx, &first))
	require.NoError(t, s.Put(ctx, &second))

	listings, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "SECOND", listings[0].VIN, "equal timestamps keep the later insert first")
}

func TestMemoryStore_EmptyList(t *testing.T) {
	t.Parallel()

	listings, err := NewMemoryStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l := domain.Listing{VIN: "X1", Price: 20000}
			assert.NoError(t, s.Put(ctx, &l))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, s.RecordScore(ctx, "X1", 60, 20600, []string{"Heuristic"}))
		}()
	}
	wg.Wait()

	listings, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, 10)
}
