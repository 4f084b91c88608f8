// Package integration provides helpers and integration tests for the
// combination scraper. Integration tests verify that the orchestrator, the
// CSV sink, and the mock scrape client work together correctly.
package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/memoryleak07/GFScraper/internal/adapter/sink"
	"github.com/memoryleak07/GFScraper/internal/domain"
	"github.com/memoryleak07/GFScraper/internal/usecase"
)

// DefaultPlan returns a small but representative search plan:
// 2 origins x 1 destination x 2 outbound dates x 3 inbound offsets,
// 12 combinations in total.
func DefaultPlan() domain.SearchPlan {
	return domain.SearchPlan{
		FromAirports:   []string{"FCO", "NAP"},
		ToAirports:     []string{"MDE"},
		OutboundStart:  domain.NewDate(2023, time.October, 1),
		DeltaDays:      20,
		FlexDays:       1,
		LastDate:       domain.NewDate(2023, time.October, 2),
		TimeoutSeconds: 1,
	}
}

// NewCSVSink creates a CSV sink in a per-test temporary directory and
// returns it with its file path.
func NewCSVSink(t *testing.T) (*sink.CSVSink, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	s, err := sink.NewCSVSink(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

// CreateOrchestrator creates an orchestrator with default configuration.
func CreateOrchestrator(client domain.ScrapeClient, resultSink domain.ResultSink) usecase.ScrapeOrchestrator {
	return usecase.NewScrapeOrchestrator(client, resultSink, nil)
}
