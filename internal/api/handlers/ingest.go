package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealscout/dealscout/internal/engine"
	domain "github.com/dealscout/dealscout/pkg/types"
)

// IngestHandler handles listing ingestion.
type IngestHandler struct {
	engine *engine.Engine
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(e *engine.Engine) *IngestHandler {
	return &IngestHandler{engine: e}
}

// --- Input/Output types ---

// IngestInput is a batch of raw listings to normalize and store.
type IngestInput struct {
	Body []domain.Listing
}

// IngestOutput returns the stored forms in input order, carrying the IDs
// and timestamps assigned by the store.
type IngestOutput struct {
	Body []domain.Listing
}

// --- Handlers ---

// Ingest normalizes and stores a batch of listings. There is no batch
// atomicity: on a store failure the request fails outright, but listings
// written before the failing item remain persisted.
func (h *IngestHandler) Ingest(
	ctx context.Context,
	input *IngestInput,
) (*IngestOutput, error) {
	stored, err := h.engine.IngestBatch(ctx, input.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("ingest failed: " + err.Error())
	}

	return &IngestOutput{Body: stored}, nil
}

// RegisterIngestRoutes registers ingestion endpoints with the Huma API.
func RegisterIngestRoutes(api huma.API, h *IngestHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/ingest",
		Summary:     "Ingest listings",
		Description: "Normalizes a batch of raw listings and stores them, returning the stored forms.",
		Tags:        []string{"listings"},
	}, h.Ingest)
}
