package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/dealscout/dealscout/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// Listings, vehicle records, and scores live in separate related tables;
// the v_latest_scores view resolves the most recent score per VIN at read
// time. Scores are append-only — RecordScore never rewrites history.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// Put upserts the vehicle record for l.VIN and inserts the listing row in a
// single short transaction, filling in the assigned ID and timestamp.
// Batches are not wrapped in an outer transaction: each listing commits on
// its own, so a failure partway through a batch leaves earlier rows in place.
func (s *PostgresStore) Put(ctx context.Context, l *domain.Listing) error {
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling listing payload: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, queryUpsertVehicle, pgx.NamedArgs{
		"vin":   l.VIN,
		"year":  l.Year,
		"make":  l.Make,
		"model": l.Model,
		"trim":  l.Trim,
	}); err != nil {
		return fmt.Errorf("upserting vehicle: %w", err)
	}

	err = tx.QueryRow(ctx, queryInsertListing, pgx.NamedArgs{
		"vin":     l.VIN,
		"source":  l.Source,
		"price":   l.Price,
		"miles":   l.Miles,
		"dom":     l.DOM,
		"radius":  l.Radius,
		"payload": payload,
	}).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing listing: %w", err)
	}
	return nil
}

// List returns stored listings joined with vehicle metadata and each VIN's
// latest score, newest-created first, capped at maxListResults rows.
func (s *PostgresStore) List(ctx context.Context) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListListings, maxListResults)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.VIN,
			&l.Year, &l.Make, &l.Model, &l.Trim,
			&l.Miles, &l.Price, &l.DOM, &l.Source, &l.Radius,
			&l.Score, &l.BuyMax, &l.ReasonCodes,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		if l.ReasonCodes == nil {
			l.ReasonCodes = []string{}
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// FindByVIN returns the IDs of every listing stored under the canonicalized
// VIN, oldest first.
func (s *PostgresStore) FindByVIN(ctx context.Context, vin string) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryFindListingIDsByVIN, domain.CanonicalVIN(vin))
	if err != nil {
		return nil, fmt.Errorf("querying listing ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning listing id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// RecordScore appends a score record for the canonicalized VIN. VINs without
// a vehicle record are skipped silently — scoring never creates rows for
// vehicles that were never ingested.
func (s *PostgresStore) RecordScore(
	ctx context.Context,
	vin string,
	scoreVal int,
	buyMax float64,
	reasonCodes []string,
) error {
	_, err := s.pool.Exec(ctx, queryInsertScore,
		domain.CanonicalVIN(vin), scoreVal, buyMax, reasonCodes,
	)
	if err != nil {
		return fmt.Errorf("inserting score: %w", err)
	}
	return nil
}
