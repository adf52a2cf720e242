package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Vehicle queries.
const (
	// Latest ingested values for a VIN always win; there is no versioning.
	queryUpsertVehicle = `
		INSERT INTO vehicles (vin, year, make, model, trim)
		VALUES (@vin, @year, @make, @model, @trim)
		ON CONFLICT (vin) DO UPDATE SET
			year = EXCLUDED.year,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			trim = EXCLUDED.trim`
)

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (vin, source, price, miles, dom, radius, payload, created_at)
		VALUES (@vin, @source, @price, @miles, @dom, @radius, @payload, now())
		RETURNING id::text, created_at`

	queryListListings = `
		SELECT l.id::text, l.vin,
			COALESCE(v.year, 0), COALESCE(v.make, ''), COALESCE(v.model, ''), v.trim,
			l.miles, l.price, l.dom, l.source, l.radius,
			s.score, s.buy_max, s.reason_codes,
			l.created_at
		FROM listings l
		LEFT JOIN vehicles v ON v.vin = l.vin
		LEFT JOIN v_latest_scores s ON s.vin = l.vin
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $1`

	queryFindListingIDsByVIN = `
		SELECT id::text
		FROM listings
		WHERE vin = $1
		ORDER BY created_at, id`
)

// Score queries.
const (
	// Scores reference vehicles(vin); the WHERE EXISTS guard turns a score
	// for a never-ingested VIN into a silent no-op instead of a foreign key
	// violation.
	queryInsertScore = `
		INSERT INTO scores (vin, score, buy_max, reason_codes)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM vehicles WHERE vin = $1)`
)
