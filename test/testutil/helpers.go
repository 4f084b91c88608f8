// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/memoryleak07/GFScraper/internal/domain"
)

// ReadCSV reads a results file back with the standard library parser, so
// the writer is checked against an independent implementation.
// It fails the test on any I/O or parse error.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open results file %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse results file %s: %v", path, err)
	}
	return rows
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) domain.Date {
	t.Helper()
	parsed, err := domain.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}
