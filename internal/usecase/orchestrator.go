// Package usecase contains the business logic for a scraping run.
// It walks the combination space strictly sequentially, one scrape in
// flight at a time, because the search surface is a single interactive
// browsing session whose navigation state cannot be shared.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memoryleak07/GFScraper/internal/domain"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/logger"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/timeutil"
)

// ScrapeOrchestrator drives the full combination space to completion.
type ScrapeOrchestrator interface {
	// Run enumerates every (airport pair, date window) combination of the
	// plan in total order, scrapes each one, and appends exactly one
	// record per combination to the sink before advancing. It returns a
	// non-nil report even on error. Only a sink write failure or context
	// cancellation aborts the run; scrape faults are absorbed into
	// records.
	Run(ctx context.Context, plan domain.SearchPlan) (*RunReport, error)
}

// Config contains optional dependencies for the orchestrator.
type Config struct {
	// Clock supplies record timestamps; defaults to the system clock.
	Clock timeutil.Clock

	// Logger receives per-combination progress; defaults to no output.
	Logger *logger.Logger
}

// scrapeOrchestrator implements ScrapeOrchestrator.
type scrapeOrchestrator struct {
	client domain.ScrapeClient
	sink   domain.ResultSink
	clock  timeutil.Clock
	log    *logger.Logger
}

// NewScrapeOrchestrator creates an orchestrator over the given scrape
// client and result sink. Both are owned exclusively by the orchestrator
// for the duration of a run. If cfg is nil, defaults are used.
func NewScrapeOrchestrator(client domain.ScrapeClient, sink domain.ResultSink, cfg *Config) ScrapeOrchestrator {
	o := &scrapeOrchestrator{
		client: client,
		sink:   sink,
		clock:  timeutil.NewRealClock(),
		log:    logger.Nop(),
	}
	if cfg != nil {
		if cfg.Clock != nil {
			o.clock = cfg.Clock
		}
		if cfg.Logger != nil {
			o.log = cfg.Logger
		}
	}
	return o
}

// RunReport summarizes one scraping run.
type RunReport struct {
	// Combinations is the total size of the combination space.
	Combinations int

	// Processed counts combinations that produced a record.
	Processed int

	// Per-status record counts.
	Found    int
	NotFound int
	TimedOut int
	Errors   int

	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns the wall-clock duration of the run.
func (r *RunReport) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// count registers one record in the per-status tallies.
func (r *RunReport) count(status domain.Status) {
	r.Processed++
	switch status {
	case domain.StatusFound:
		r.Found++
	case domain.StatusNotFound:
		r.NotFound++
	case domain.StatusTimedOut:
		r.TimedOut++
	case domain.StatusError:
		r.Errors++
	}
}

// Run implements ScrapeOrchestrator.Run.
func (o *scrapeOrchestrator) Run(ctx context.Context, plan domain.SearchPlan) (*RunReport, error) {
	report := &RunReport{StartedAt: o.clock.Now()}

	if err := plan.Validate(); err != nil {
		report.FinishedAt = o.clock.Now()
		return report, err
	}

	report.Combinations = plan.CombinationCount()
	o.log.Info().
		Int("combinations", report.Combinations).
		Bool("fast_mode", plan.FastMode).
		Dur("timeout", plan.Timeout()).
		Msg("Starting enumeration")

	for pair := range plan.AirportPairs() {
		routeLog := o.log.WithRoute(pair.Origin, pair.Destination)
		for window := range plan.DateWindows() {
			// Operator abort is the only external cancellation path;
			// the record for the in-flight combination is lost, all
			// previous ones are already durable.
			if err := ctx.Err(); err != nil {
				report.FinishedAt = o.clock.Now()
				return report, err
			}

			outcome := o.scrape(ctx, &plan, pair, window)
			record := domain.ResultRecord{
				Pair:      pair,
				Window:    window,
				Outcome:   outcome,
				ScrapedAt: o.clock.Now(),
			}

			if err := o.sink.Append(record); err != nil {
				if !errors.Is(err, domain.ErrSinkWrite) {
					err = fmt.Errorf("%w: %v", domain.ErrSinkWrite, err)
				}
				report.FinishedAt = o.clock.Now()
				return report, err
			}

			report.count(outcome.Status)
			routeLog.Debug().
				Str("outbound", window.Outbound.String()).
				Str("inbound", window.Inbound.String()).
				Str("status", string(outcome.Status)).
				Str("price", outcome.Price).
				Int("processed", report.Processed).
				Msg("Combination recorded")
		}
	}

	report.FinishedAt = o.clock.Now()
	o.log.Info().
		Int("processed", report.Processed).
		Int("found", report.Found).
		Int("not_found", report.NotFound).
		Int("timed_out", report.TimedOut).
		Int("errors", report.Errors).
		Dur("elapsed", report.Elapsed()).
		Msg("Enumeration finished")
	return report, nil
}

// scrape runs one combination against the client under the plan's timeout
// and classifies the result. Faults never escape: a timeout becomes a
// timed_out record and is not retried, anything else becomes an error
// record, and the loop moves on either way.
func (o *scrapeOrchestrator) scrape(ctx context.Context, plan *domain.SearchPlan, pair domain.AirportPair, window domain.DateWindow) domain.Outcome {
	scrapeCtx, cancel := context.WithTimeout(ctx, plan.Timeout())
	defer cancel()

	outcome, err := o.client.Search(scrapeCtx, pair, window)
	if err == nil {
		return outcome
	}

	// Clients normally report an empty results list as a NotFound outcome
	// with a nil error, but the sentinel is accepted here as well.
	if errors.Is(err, domain.ErrNoFlightsFound) {
		return domain.NotFound(err.Error())
	}

	if errors.Is(err, domain.ErrScrapeTimeout) || errors.Is(err, context.DeadlineExceeded) {
		o.log.Warn().
			Str("route", pair.String()).
			Str("outbound", window.Outbound.String()).
			Str("inbound", window.Inbound.String()).
			Msg("Scrape timed out, moving on")
		return domain.TimedOut()
	}

	o.log.Warn().
		Err(err).
		Str("route", pair.String()).
		Str("outbound", window.Outbound.String()).
		Msg("Scrape failed, moving on")
	return domain.Failed(err.Error())
}
