// Package sink persists result records. The CSV sink appends one row per
// combination and makes it durable before returning, so an interrupted run
// loses at most the single in-flight combination.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/memoryleak07/GFScraper/internal/domain"
)

// resultRow is the CSV projection of a result record.
type resultRow struct {
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Outbound    string `csv:"outbound"`
	Inbound     string `csv:"inbound"`
	Status      string `csv:"status"`
	Price       string `csv:"price"`
	Airline     string `csv:"airline"`
	Duration    string `csv:"duration"`
	Stops       string `csv:"stops"`
	Reason      string `csv:"reason"`
	ScrapedAt   string `csv:"scraped_at"`
}

// CSVSink writes result records to a CSV file in insertion order.
// It is owned by a single writer for the duration of a run.
type CSVSink struct {
	file *os.File
	path string
}

// NewCSVSink opens (or creates) the CSV file at path for appending and
// writes the header row if the file is empty. Appending to a non-empty
// file continues a previous artifact without duplicating the header.
func NewCSVSink(path string) (*CSVSink, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create results directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open results file %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat results file %s: %w", path, err)
	}
	if info.Size() == 0 {
		if err := gocsv.Marshal(&[]*resultRow{}, f); err != nil {
			f.Close()
			return nil, fmt.Errorf("write csv header: %w", err)
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return nil, fmt.Errorf("sync csv header: %w", err)
		}
	}

	return &CSVSink{file: f, path: path}, nil
}

// Append writes one record and makes it durable before returning.
// Failures wrap domain.ErrSinkWrite and are fatal to the run.
func (s *CSVSink) Append(record domain.ResultRecord) error {
	row := toRow(record)
	if err := gocsv.MarshalWithoutHeaders(&[]*resultRow{row}, s.file); err != nil {
		return fmt.Errorf("%w: append row: %v", domain.ErrSinkWrite, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %v", domain.ErrSinkWrite, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (s *CSVSink) Close() error {
	return s.file.Close()
}

// Path returns the location of the results file.
func (s *CSVSink) Path() string {
	return s.path
}

func toRow(record domain.ResultRecord) *resultRow {
	return &resultRow{
		Origin:      record.Pair.Origin,
		Destination: record.Pair.Destination,
		Outbound:    record.Window.Outbound.String(),
		Inbound:     record.Window.Inbound.String(),
		Status:      string(record.Outcome.Status),
		Price:       sanitize(record.Outcome.Price),
		Airline:     sanitize(record.Outcome.Airline),
		Duration:    sanitize(record.Outcome.Duration),
		Stops:       sanitize(record.Outcome.Stops),
		Reason:      sanitize(record.Outcome.Reason),
		ScrapedAt:   record.ScrapedAt.Format(time.RFC3339),
	}
}

// sanitize flattens scraped text onto a single line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", "/")
}

var _ domain.ResultSink = (*CSVSink)(nil)
