package engine

import (
	"context"
	"fmt"

	"github.com/dealscout/dealscout/internal/metrics"
	score "github.com/dealscout/dealscout/pkg/scorer"
	domain "github.com/dealscout/dealscout/pkg/types"
)

// RescoreAll recomputes the heuristic for every stored VIN using the facts
// from that VIN's newest listing, and records the results. It returns the
// number of VINs rescored.
func (e *Engine) RescoreAll(ctx context.Context) (int, error) {
	listings, err := e.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing for rescore: %w", err)
	}

	// List is newest-first, so the first listing seen per VIN carries the
	// facts the rescore should use.
	seen := make(map[string]bool, len(listings))
	scored := 0

	for _, l := range listings {
		vin := domain.CanonicalVIN(l.VIN)
		if seen[vin] {
			continue
		}
		seen[vin] = true

		res := score.Score(score.Input{
			Price: l.Price,
			Miles: l.Miles,
			DOM:   l.DOM,
		})

		if err := e.store.RecordScore(ctx, vin, res.Score, res.BuyMax, res.ReasonCodes); err != nil {
			return scored, fmt.Errorf("recording rescore for vin %s: %w", vin, err)
		}

		metrics.ScoringDistribution.Observe(float64(res.Score))
		scored++
	}

	metrics.RescoredVINsTotal.Add(float64(scored))
	e.log.Info("rescore complete", "vins", scored, "listings", len(listings))
	return scored, nil
}
