package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealscout/dealscout/internal/engine"
	domain "github.com/dealscout/dealscout/pkg/types"
)

// ScoreHandler handles scoring requests.
type ScoreHandler struct {
	engine *engine.Engine
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(e *engine.Engine) *ScoreHandler {
	return &ScoreHandler{engine: e}
}

// --- Input/Output types ---

// ScoreInput is a batch of minimal listing facts to score.
type ScoreInput struct {
	Body []domain.ScoreRequest
}

// ScoreOutput carries one response per input item, in input order.
type ScoreOutput struct {
	Body []domain.ScoreResponse
}

// --- Handlers ---

// Score computes the purchase heuristic for each item and writes the result
// back onto any stored listings sharing the item's VIN. Items whose VIN was
// never ingested still get a full response; only the write-back is skipped.
func (h *ScoreHandler) Score(
	ctx context.Context,
	input *ScoreInput,
) (*ScoreOutput, error) {
	responses, err := h.engine.ScoreBatch(ctx, input.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("score failed: " + err.Error())
	}

	return &ScoreOutput{Body: responses}, nil
}

// RegisterScoreRoutes registers scoring endpoints with the Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "score-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/score",
		Summary:     "Score listings",
		Description: "Computes the purchase-worthiness heuristic for a batch of listing facts and records the results against stored listings with matching VINs.",
		Tags:        []string{"scoring"},
	}, h.Score)
}
