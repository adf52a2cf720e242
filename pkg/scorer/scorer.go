// Package score implements the purchase-worthiness heuristic for vehicle
// listings. It is a pure function of price, mileage, and days on market —
// no I/O, no stored state.
package score

import (
	"math"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// Heuristic constants. These are intentionally naive demo baselines, not a
// learned model.
const (
	domWindow      = 30      // days on market beyond which the DOM factor is exhausted
	milesWindow    = 100_000 // mileage beyond which the miles factor is exhausted
	priceBaseline  = 25_000  // listings under this price earn a boost
	maxPriceBoost  = 20
	lowDOMCutoff   = 20
	lowMilesCutoff = 50_000
	agedDOMCutoff  = 45
)

// Input holds the facts the heuristic needs for one listing.
type Input struct {
	Price float64
	Miles int
	DOM   int
}

// Result is the heuristic output for one listing.
type Result struct {
	Score       int // 0–100 inclusive
	BuyMax      float64
	ReasonCodes []string
}

// Score computes the deterministic purchase-worthiness heuristic.
//
// Fresher, lower-mileage listings score higher: each of the DOM and mileage
// factors contributes up to 40 points, and cheap listings (under the price
// baseline) earn up to 20 more. buyMax allows a 3% wiggle above asking price,
// tightened to 2% below asking once the listing has sat past agedDOMCutoff
// days — the two buyMax policies are mutually exclusive.
//
// The composite is clamped to [0,100] and truncated to an integer. If no
// threshold fires, the reason codes default to a single Heuristic sentinel.
func Score(in Input) Result {
	var reasons []string

	domPenalty := clamp01(math.Max(0, float64(domWindow-in.DOM)) / domWindow)
	milesPenalty := clamp01(math.Max(0, float64(milesWindow-in.Miles)) / milesWindow)
	base := 40*domPenalty + 40*milesPenalty

	var priceBoost float64
	if in.Price < priceBaseline {
		priceBoost = math.Min(maxPriceBoost, (priceBaseline-in.Price)/1000)
		reasons = append(reasons, domain.ReasonPriceVsBaseline)
	}
	if in.DOM < lowDOMCutoff {
		reasons = append(reasons, domain.ReasonLowDOM)
	}
	if in.Miles < lowMilesCutoff {
		reasons = append(reasons, domain.ReasonLowMiles)
	}

	total := int(math.Max(0, math.Min(100, base+priceBoost)))

	buyMax := math.Max(0, in.Price*1.03)
	if in.DOM > agedDOMCutoff {
		buyMax = in.Price * 0.98
		reasons = append(reasons, domain.ReasonAgedInventory)
	}

	if len(reasons) == 0 {
		reasons = []string{domain.ReasonHeuristic}
	}

	return Result{
		Score:       total,
		BuyMax:      RoundCents(buyMax),
		ReasonCodes: reasons,
	}
}

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	return math.Min(1, v)
}
