// Package engine orchestrates the listing pipeline: normalization and
// storage on ingest, and heuristic scoring with write-back on score.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealscout/dealscout/internal/metrics"
	"github.com/dealscout/dealscout/internal/store"
	score "github.com/dealscout/dealscout/pkg/scorer"
	domain "github.com/dealscout/dealscout/pkg/types"
)

// Engine runs the ingestion and scoring pipelines against an injected Store.
// It holds no listing state of its own — every read and write goes through
// the store.
type Engine struct {
	store store.Store
	log   *slog.Logger
}

// New creates an Engine with injected dependencies.
func New(s store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: s,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// IngestBatch normalizes each raw listing and persists it, returning the
// stored forms (carrying assigned IDs and timestamps) in input order.
//
// Items are written sequentially with no batch-level atomicity: a failure
// partway through aborts the batch but leaves earlier writes committed. The
// returned error reflects the first failing item.
func (e *Engine) IngestBatch(
	ctx context.Context,
	items []domain.Listing,
) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0, len(items))

	for i, item := range items {
		l := item.Normalize()
		if err := e.store.Put(ctx, &l); err != nil {
			metrics.IngestionErrorsTotal.Inc()
			return nil, fmt.Errorf("storing listing %d (vin %s): %w", i, l.VIN, err)
		}
		metrics.IngestionListingsTotal.Inc()
		out = append(out, l)
	}

	e.log.Info("ingested listings", "count", len(out))
	return out, nil
}

// ScoreBatch computes the purchase heuristic for each request and records the
// result against every stored listing sharing the request's canonical VIN.
// Responses come back in input order and echo the caller's VIN verbatim,
// whether or not anything was stored under it — the write-back is a side
// effect, not a precondition.
func (e *Engine) ScoreBatch(
	ctx context.Context,
	reqs []domain.ScoreRequest,
) ([]domain.ScoreResponse, error) {
	out := make([]domain.ScoreResponse, 0, len(reqs))

	for _, req := range reqs {
		res := score.Score(score.Input{
			Price: req.Price,
			Miles: req.Miles,
			DOM:   req.DOM,
		})

		vin := domain.CanonicalVIN(req.VIN)
		ids, err := e.store.FindByVIN(ctx, vin)
		if err != nil {
			return nil, fmt.Errorf("finding listings for vin %s: %w", vin, err)
		}
		if len(ids) == 0 {
			metrics.ScoringUnmatchedTotal.Inc()
		}

		if err := e.store.RecordScore(ctx, vin, res.Score, res.BuyMax, res.ReasonCodes); err != nil {
			return nil, fmt.Errorf("recording score for vin %s: %w", vin, err)
		}

		metrics.ScoringRequestsTotal.Inc()
		metrics.ScoringDistribution.Observe(float64(res.Score))
		e.log.Debug("scored listing",
			"vin", vin,
			"score", res.Score,
			"buy_max", res.BuyMax,
			"matched_listings", len(ids),
		)

		out = append(out, domain.ScoreResponse{
			VIN:         req.VIN, // caller's casing, not the canonical form
			Score:       res.Score,
			BuyMax:      res.BuyMax,
			ReasonCodes: res.ReasonCodes,
		})
	}

	return out, nil
}
