// Package store defines the datastore abstraction for dealscout.
// All business logic depends on the Store interface, never on concrete
// implementations. The backend (in-memory or PostgreSQL) is selected once at
// startup from configuration and injected into the pipeline; nothing below
// this interface ever branches on which backend is active.
package store

import (
	"context"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// maxListResults bounds List for the relational backend so an accumulated
// history can't produce unbounded result sets. The memory backend is
// demo-scale and unbounded.
const maxListResults = 500

// Store defines all data access operations for dealscout.
//
// Writes are immediately visible to subsequent reads; there is no eventual
// consistency. Backend errors propagate to the caller and fail the enclosing
// request — there is no fallback between backends.
type Store interface {
	// Put persists a listing, assigning an ID and creation timestamp when
	// absent, and fills them in on l. The relational backend also upserts
	// the vehicle record for l.VIN (last write wins).
	Put(ctx context.Context, l *domain.Listing) error

	// List returns all stored listings, each joined with the latest known
	// score for its VIN, newest-created first. The relational backend caps
	// the result at 500 rows.
	List(ctx context.Context) ([]domain.Listing, error)

	// FindByVIN returns the IDs of every listing stored under the
	// canonicalized VIN, in insertion order, without duplicates.
	FindByVIN(ctx context.Context, vin string) ([]string, error)

	// RecordScore attaches a score to every listing stored under the
	// canonicalized VIN. The relational backend appends a score record
	// (latest wins on read); the memory backend mutates the listings in
	// place. A VIN with no stored listings is a silent no-op — RecordScore
	// never creates listings.
	RecordScore(ctx context.Context, vin string, score int, buyMax float64, reasonCodes []string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
