package domain

import "errors"

// Sentinel errors for the scraping run. Per-combination faults
// (ErrNoFlightsFound, ErrScrapeTimeout) are absorbed by the orchestrator
// and converted into result records; ErrInvalidConfig and ErrSinkWrite
// are the only errors that reach the operator.
var (
	// ErrInvalidConfig indicates a malformed or contradictory search plan.
	// Detected before the enumeration starts; the run never begins.
	ErrInvalidConfig = errors.New("invalid search configuration")

	// ErrNoFlightsFound indicates the search surface listed no matching
	// itinerary for a combination. Non-fatal.
	ErrNoFlightsFound = errors.New("no matching flights found")

	// ErrScrapeTimeout indicates a scrape exceeded the configured
	// per-combination timeout. Non-fatal; the combination is not retried.
	ErrScrapeTimeout = errors.New("scrape timed out")

	// ErrSinkWrite indicates the result sink could not durably record a
	// result. Fatal: a persistence failure invalidates the append-only
	// audit trail, so the run terminates immediately.
	ErrSinkWrite = errors.New("result sink write failed")
)
