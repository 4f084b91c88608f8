// Package domain contains the core business entities and rules for the
// flight combination scraper. These entities are scraper-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// dateLayout is the calendar date format used throughout the system
// (settings file, search URLs, and CSV output).
const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given year, month, and day (UTC).
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parse date %s: expected a quoted YYYY-MM-DD string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AirportPair is one origin/destination combination. Pairs are generated
// lazily per combination and never persisted on their own.
type AirportPair struct {
	// Origin is the IATA code of the departure airport (e.g., "FCO")
	Origin string

	// Destination is the IATA code of the arrival airport (e.g., "NAP")
	Destination string
}

// String formats the pair as "FCO-NAP".
func (p AirportPair) String() string {
	return p.Origin + "-" + p.Destination
}

// DateWindow is one outbound/inbound date combination for a round trip.
// Inbound is always strictly after Outbound.
type DateWindow struct {
	// Outbound is the departure date of the first leg
	Outbound Date

	// Inbound is the departure date of the return leg
	Inbound Date
}

// SearchPlan defines the full combination space for one scraping run.
// It is loaded once from the settings file, validated, and read-only
// thereafter. Field names mirror the settings file keys.
type SearchPlan struct {
	// FromAirports is the ordered list of departure airport IATA codes
	FromAirports []string `json:"from"`

	// ToAirports is the ordered list of destination airport IATA codes
	ToAirports []string `json:"to"`

	// OutboundStart is the first candidate departure date
	OutboundStart Date `json:"outbound"`

	// DeltaDays is the nominal stay length in days before flexibility
	DeltaDays int `json:"delta"`

	// FlexDays is the symmetric window of alternate inbound dates tried
	// around the nominal delta
	FlexDays int `json:"flexdays"`

	// WeekendOnly retains only Saturday departures when true
	WeekendOnly bool `json:"weekendonly"`

	// LastDate is the inclusive upper bound on the outbound date
	LastDate Date `json:"lastdate"`

	// FastMode skips the return-leg detail step (duration, stops),
	// trading completeness for speed
	FastMode bool `json:"fastmode"`

	// TimeoutSeconds bounds each individual scrape attempt
	TimeoutSeconds int `json:"timeout"`

	// TravelClass is accepted for forward compatibility but not applied
	// to searches yet
	TravelClass string `json:"tclass"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// validTravelClasses defines the accepted travel classes.
var validTravelClasses = map[string]bool{
	"economy":  true,
	"business": true,
	"first":    true,
}

// defaultLastDateDays caps the enumeration one year out when the settings
// file gives no explicit last date.
const defaultLastDateDays = 365

// defaultTimeoutSeconds is the per-combination scrape timeout when the
// settings file gives none.
const defaultTimeoutSeconds = 10

// SetDefaults applies default values to empty optional fields.
func (p *SearchPlan) SetDefaults() {
	if p.LastDate.IsZero() && !p.OutboundStart.IsZero() {
		p.LastDate = p.OutboundStart.AddDays(defaultLastDateDays)
	}
	if p.TimeoutSeconds == 0 {
		p.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate checks that the plan is coherent before the run starts.
// Returns a wrapped ErrInvalidConfig error if validation fails, so a
// malformed plan never reaches the enumeration loop.
func (p *SearchPlan) Validate() error {
	if len(p.FromAirports) == 0 {
		return fmt.Errorf("%w: at least one departure airport is required", ErrInvalidConfig)
	}
	if len(p.ToAirports) == 0 {
		return fmt.Errorf("%w: at least one destination airport is required", ErrInvalidConfig)
	}
	for _, code := range p.FromAirports {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: departure airport must be a valid 3-letter IATA code, got %q", ErrInvalidConfig, code)
		}
	}
	for _, code := range p.ToAirports {
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: destination airport must be a valid 3-letter IATA code, got %q", ErrInvalidConfig, code)
		}
	}
	if p.OutboundStart.IsZero() {
		return fmt.Errorf("%w: outbound start date is required", ErrInvalidConfig)
	}
	if p.LastDate.IsZero() {
		return fmt.Errorf("%w: last departure date is required", ErrInvalidConfig)
	}
	if p.LastDate.Before(p.OutboundStart.Time) {
		return fmt.Errorf("%w: last date %s is before outbound start %s", ErrInvalidConfig, p.LastDate, p.OutboundStart)
	}
	if p.DeltaDays < 1 {
		return fmt.Errorf("%w: delta must be at least 1 day, got %d", ErrInvalidConfig, p.DeltaDays)
	}
	if p.FlexDays < 0 {
		return fmt.Errorf("%w: flexdays cannot be negative, got %d", ErrInvalidConfig, p.FlexDays)
	}
	// Keeps every inbound date strictly after its outbound date.
	if p.FlexDays >= p.DeltaDays {
		return fmt.Errorf("%w: flexdays (%d) must be less than delta (%d)", ErrInvalidConfig, p.FlexDays, p.DeltaDays)
	}
	if p.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %d", ErrInvalidConfig, p.TimeoutSeconds)
	}
	if p.TravelClass != "" && !validTravelClasses[p.TravelClass] {
		return fmt.Errorf("%w: tclass must be one of: economy, business, first; got %q", ErrInvalidConfig, p.TravelClass)
	}
	return nil
}

// Timeout returns the per-combination scrape timeout as a duration.
func (p *SearchPlan) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}
