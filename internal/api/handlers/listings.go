package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealscout/dealscout/internal/store"
	domain "github.com/dealscout/dealscout/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// ListListingsInput is the (empty) input for listing listings.
type ListListingsInput struct{}

// ListListingsOutput is the response for listing listings: every stored
// listing joined with its VIN's latest score, newest first.
type ListListingsOutput struct {
	Body []domain.Listing
}

// --- Handlers ---

// ListListings returns all stored listings enriched with the latest known
// score per VIN.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	_ *ListListingsInput,
) (*ListListingsOutput, error) {
	listings, err := h.store.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	return &ListListingsOutput{Body: listings}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns all stored listings, each enriched with the latest score recorded for its VIN.",
		Tags:        []string{"listings"},
	}, h.ListListings)
}
