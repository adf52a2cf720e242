// Package domain defines the core business types for dealscout.
package domain

import (
	"strings"
	"time"
)

// DefaultRadius is the search radius applied when a listing arrives
// without one.
const DefaultRadius = 25

// Reason codes emitted by the scoring heuristic.
const (
	ReasonPriceVsBaseline = "PriceVsBaseline"
	ReasonLowDOM          = "LowDOM"
	ReasonLowMiles        = "LowMiles"
	ReasonAgedInventory   = "AgedInventory"
	ReasonHeuristic       = "Heuristic"
)

// Listing represents one observed offer for a vehicle. The VIN is the join
// key between listings, vehicle metadata, and scores; it is stored in
// canonical (trimmed, uppercase) form but is not unique across listings —
// one vehicle may be listed by several sources at once.
type Listing struct {
	ID          string    `json:"id,omitempty"     db:"id"`
	VIN         string    `json:"vin"              db:"vin"`
	Year        int       `json:"year"             db:"year"`
	Make        string    `json:"make"             db:"make"`
	Model       string    `json:"model"            db:"model"`
	Trim        *string   `json:"trim,omitempty"   db:"trim"`
	Miles       int       `json:"miles"            db:"miles"`
	Price       float64   `json:"price"            db:"price"`
	DOM         int       `json:"dom"              db:"dom"`
	Source      *string   `json:"source,omitempty" db:"source"`
	Radius      int       `json:"radius"           db:"radius"`
	Score       *int      `json:"score,omitempty"  db:"score"`
	BuyMax      *float64  `json:"buyMax,omitempty" db:"buy_max"`
	ReasonCodes []string  `json:"reasonCodes"      db:"reason_codes"`
	CreatedAt   time.Time `json:"created_at"       db:"created_at"`
}

// CanonicalVIN returns the canonical form of a VIN: surrounding whitespace
// trimmed and all letters uppercased. An empty input yields an empty string.
func CanonicalVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// Normalize returns a canonicalized copy of the listing. It is idempotent:
// normalizing an already-normalized listing is a no-op.
//   - VIN trimmed and uppercased
//   - make/model (and trim, when present) trimmed
//   - zero or negative radius replaced with DefaultRadius
func (l Listing) Normalize() Listing {
	l.VIN = CanonicalVIN(l.VIN)
	l.Make = strings.TrimSpace(l.Make)
	l.Model = strings.TrimSpace(l.Model)
	if l.Trim != nil {
		t := strings.TrimSpace(*l.Trim)
		l.Trim = &t
	}
	if l.Radius <= 0 {
		l.Radius = DefaultRadius
	}
	return l
}

// ScoreRequest holds the minimal listing facts needed by the scoring
// heuristic.
type ScoreRequest struct {
	VIN    string  `json:"vin"`
	Price  float64 `json:"price"`
	Miles  int     `json:"miles"`
	DOM    int     `json:"dom"`
	Source *string `json:"source,omitempty"`
}

// ScoreResponse is the per-item result of a scoring pass. The VIN echoes the
// caller's input casing verbatim even though scores are stored under the
// canonical VIN; the front end matches responses back to its own requests.
type ScoreResponse struct {
	VIN         string   `json:"vin"`
	Score       int      `json:"score"       minimum:"0" maximum:"100"`
	BuyMax      float64  `json:"buyMax"`
	ReasonCodes []string `json:"reasonCodes"`
}

// ScoreRecord is one appended score row in the relational backend. Multiple
// records may exist per VIN; the newest by created_at is authoritative.
type ScoreRecord struct {
	VIN         string    `json:"vin"          db:"vin"`
	Score       int       `json:"score"        db:"score"`
	BuyMax      float64   `json:"buy_max"      db:"buy_max"`
	ReasonCodes []string  `json:"reason_codes" db:"reason_codes"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// Notification is one recorded notify request.
type Notification struct {
	VIN     string `json:"vin"`
	Channel string `json:"channel"`
	Message string `json:"message"`
}
