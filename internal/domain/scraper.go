package domain

import "context"

//go:generate mockgen -source=scraper.go -destination=mock_scraper.go -package=domain

// ScrapeClient is the boundary to the external search surface. One client
// owns one interactive browsing session, so calls must never overlap.
type ScrapeClient interface {
	// Search retrieves the first-listed round-trip offer for the
	// combination. It must honor ctx's deadline itself and be safe to
	// invoke repeatedly. A nil error means the returned outcome is
	// StatusFound or StatusNotFound; timeouts surface as errors wrapping
	// ErrScrapeTimeout or context.DeadlineExceeded.
	Search(ctx context.Context, pair AirportPair, window DateWindow) (Outcome, error)
}

// ResultSink persists result records in insertion order. Append must be
// durable on return: the record is observable in the persisted artifact
// before the call comes back.
type ResultSink interface {
	Append(record ResultRecord) error
}
