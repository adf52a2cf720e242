package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscout/dealscout/internal/api/handlers"
	"github.com/dealscout/dealscout/internal/engine"
	"github.com/dealscout/dealscout/internal/store"
	domain "github.com/dealscout/dealscout/pkg/types"
)

func TestScoreHandler_Score(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := store.NewMemoryStore()
	eng := engine.New(mem)

	stored := domain.Listing{VIN: "AB12CD", Price: 21000}
	require.NoError(t, mem.Put(ctx, &stored))

	_, api := humatest.New(t)
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))

	resp := api.Post("/api/v1/score", []domain.ScoreRequest{
		{VIN: "ab12cd", Price: 20000, Miles: 30000, DOM: 10},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var responses []domain.ScoreResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &responses))
	require.Len(t, responses, 1)

	// Lowercase input VIN comes back verbatim.
	assert.Equal(t, "ab12cd", responses[0].VIN)
	assert.Equal(t, 59, responses[0].Score)
	assert.Equal(t, 20600.00, responses[0].BuyMax)
	assert.Equal(
		t,
		[]string{
			domain.ReasonPriceVsBaseline,
			domain.ReasonLowDOM,
			domain.ReasonLowMiles,
		},
		responses[0].ReasonCodes,
	)

	// Write-back landed on the stored listing under the canonical VIN.
	listings, err := mem.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].Score)
	assert.Equal(t, 59, *listings[0].Score)
}

func TestScoreHandler_UnknownVIN(t *testing.T) {
	t.Parallel()

	eng := engine.New(store.NewMemoryStore())

	_, api := humatest.New(t)
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))

	resp := api.Post("/api/v1/score", []domain.ScoreRequest{
		{VIN: "GHOST", Price: 10000, Miles: 60000, DOM: 50},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var responses []domain.ScoreResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &responses))
	require.Len(t, responses, 1)
	assert.Equal(t, "GHOST", responses[0].VIN)
	assert.Equal(t, 9800.00, responses[0].BuyMax)
	assert.Contains(t, responses[0].ReasonCodes, domain.ReasonAgedInventory)
}

func TestScoreHandler_EmptyBatch(t *testing.T) {
	t.Parallel()

	eng := engine.New(store.NewMemoryStore())

	_, api := humatest.New(t)
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))

	resp := api.Post("/api/v1/score", []domain.ScoreRequest{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}
