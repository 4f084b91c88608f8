// Package mock provides test doubles for the combination scraper.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted outcomes).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/memoryleak07/GFScraper/internal/domain"
)

// ScrapeClient is a configurable mock implementation of
// domain.ScrapeClient. It supports configurable delays, errors, and
// outcomes for testing timeout handling and fault classification without
// a browser.
type ScrapeClient struct {
	outcome domain.Outcome
	err     error
	delay   time.Duration

	mu    sync.Mutex
	calls []Call
}

// Call records one Search invocation.
type Call struct {
	Pair   domain.AirportPair
	Window domain.DateWindow
}

// NewScrapeClient creates a mock client that reports a found offer by
// default. Behavior is adjusted with the builder methods.
func NewScrapeClient() *ScrapeClient {
	return &ScrapeClient{
		outcome: domain.Found("€512", "ITA Airways"),
	}
}

// WithOutcome configures the client to return the given outcome.
func (c *ScrapeClient) WithOutcome(outcome domain.Outcome) *ScrapeClient {
	c.outcome = outcome
	return c
}

// WithError configures the client to return the given error.
func (c *ScrapeClient) WithError(err error) *ScrapeClient {
	c.err = err
	return c
}

// WithDelay configures the client to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (c *ScrapeClient) WithDelay(d time.Duration) *ScrapeClient {
	c.delay = d
	return c
}

// Search implements domain.ScrapeClient.Search. It respects context
// cancellation, applies the configured delay, and returns the configured
// outcome or error.
func (c *ScrapeClient) Search(ctx context.Context, pair domain.AirportPair, window domain.DateWindow) (domain.Outcome, error) {
	c.mu.Lock()
	c.calls = append(c.calls, Call{Pair: pair, Window: window})
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Outcome{}, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}

	if c.err != nil {
		return domain.Outcome{}, c.err
	}

	return c.outcome, nil
}

// CallCount returns the number of times Search was called.
func (c *ScrapeClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns a copy of the recorded invocations in order.
func (c *ScrapeClient) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// Ensure ScrapeClient implements domain.ScrapeClient at compile time.
var _ domain.ScrapeClient = (*ScrapeClient)(nil)
