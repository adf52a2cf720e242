package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscout/dealscout/internal/store"
	domain "github.com/dealscout/dealscout/pkg/types"
)

func TestEngine_RescoreAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := store.NewMemoryStore()
	eng := New(mem)

	_, err := eng.IngestBatch(ctx, []domain.Listing{
		// Two listings for X1: the rescore must use the newest one's facts.
		{VIN: "X1", Price: 30000, Miles: 90000, DOM: 40},
		{VIN: "X1", Price: 20000, Miles: 30000, DOM: 10},
		{VIN: "Y2", Price: 10000, Miles: 60000, DOM: 50},
	})
	require.NoError(t, err)

	scored, err := eng.RescoreAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, scored, "one rescore per distinct VIN")

	listings, err := mem.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	for _, l := range listings {
		require.NotNil(t, l.Score, "every listing gets a score after rescore")
		switch l.VIN {
		case "X1":
			// Both X1 listings carry the score from the newest facts.
			assert.Equal(t, 59, *l.Score)
		case "Y2":
			require.NotNil(t, l.BuyMax)
			assert.Equal(t, 9800.00, *l.BuyMax)
			assert.Contains(t, l.ReasonCodes, domain.ReasonAgedInventory)
		}
	}
}

func TestEngine_RescoreAllEmpty(t *testing.T) {
	t.Parallel()

	eng := New(store.NewMemoryStore())

	scored, err := eng.RescoreAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, scored)
}
