package domain

import "time"

// Status classifies the outcome of one scrape attempt.
type Status string

// Possible scrape outcome statuses.
const (
	// StatusFound means a priced itinerary was listed for the combination.
	StatusFound Status = "found"

	// StatusNotFound means the search surface listed no matching flight.
	StatusNotFound Status = "not_found"

	// StatusTimedOut means the scrape exceeded the configured timeout.
	StatusTimedOut Status = "timed_out"

	// StatusError means the scrape failed for a reason other than a
	// timeout (e.g., an unexpected page layout).
	StatusError Status = "error"
)

// Outcome is the result of scraping one combination. Price and Airline are
// populated only for StatusFound. Duration and Stops describe the return
// leg and are populated only when fast mode is off and the detail step
// succeeded. Values are kept as scraped text; no numeric parsing is done.
type Outcome struct {
	Status   Status
	Price    string
	Airline  string
	Duration string
	Stops    string
	Reason   string
}

// Found builds a successful outcome carrying the first-listed price.
func Found(price, airline string) Outcome {
	return Outcome{Status: StatusFound, Price: price, Airline: airline}
}

// WithReturnDetail attaches return-leg duration and stop count to a found
// outcome.
func (o Outcome) WithReturnDetail(duration, stops string) Outcome {
	o.Duration = duration
	o.Stops = stops
	return o
}

// NotFound builds an outcome for a combination with no matching itinerary.
// The reason is the message shown on the search surface, if any.
func NotFound(reason string) Outcome {
	return Outcome{Status: StatusNotFound, Reason: reason}
}

// TimedOut builds an outcome for a scrape that exceeded its timeout.
func TimedOut() Outcome {
	return Outcome{Status: StatusTimedOut}
}

// Failed builds an outcome for a non-timeout scrape fault.
func Failed(reason string) Outcome {
	return Outcome{Status: StatusError, Reason: reason}
}

// ResultRecord is the unit handed to the result sink: one per combination
// attempt, created once, immutable, written immediately and never retained
// beyond the write.
type ResultRecord struct {
	Pair      AirportPair
	Window    DateWindow
	Outcome   Outcome
	ScrapedAt time.Time
}
