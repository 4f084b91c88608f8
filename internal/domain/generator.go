package domain

import (
	"iter"
	"time"
)

// AirportPairs returns the lazy sequence of origin/destination combinations:
// outer loop over FromAirports, inner loop over ToAirports, both in source
// order. Pairs with identical origin and destination are skipped silently.
// The sequence is a pure function of the plan and can be ranged repeatedly.
func (p *SearchPlan) AirportPairs() iter.Seq[AirportPair] {
	return func(yield func(AirportPair) bool) {
		for _, from := range p.FromAirports {
			for _, to := range p.ToAirports {
				if from == to {
					continue
				}
				if !yield(AirportPair{Origin: from, Destination: to}) {
					return
				}
			}
		}
	}
}

// DateWindows returns the lazy sequence of outbound/inbound date pairs for
// one airport pair. Outbound candidates start at OutboundStart and advance
// one calendar day at a time through LastDate inclusive; with WeekendOnly
// set, non-Saturday candidates are skipped. Each retained outbound date
// yields 2*FlexDays+1 windows whose inbound offsets around the nominal
// delta are ordered 0, -1, +1, -2, +2, ...
func (p *SearchPlan) DateWindows() iter.Seq[DateWindow] {
	return func(yield func(DateWindow) bool) {
		for day := p.OutboundStart; !day.After(p.LastDate.Time); day = day.AddDays(1) {
			if p.WeekendOnly && day.Weekday() != time.Saturday {
				continue
			}
			for _, offset := range flexOffsets(p.FlexDays) {
				window := DateWindow{
					Outbound: day,
					Inbound:  day.AddDays(p.DeltaDays + offset),
				}
				if !yield(window) {
					return
				}
			}
		}
	}
}

// flexOffsets expands a flexibility of n days into the symmetric offset
// set [-n, +n], nominal date first, closer alternatives before farther ones.
func flexOffsets(flex int) []int {
	offsets := make([]int, 0, 2*flex+1)
	offsets = append(offsets, 0)
	for i := 1; i <= flex; i++ {
		offsets = append(offsets, -i, i)
	}
	return offsets
}

// CombinationCount returns the total number of (airport pair, date window)
// combinations a run over this plan will process.
func (p *SearchPlan) CombinationCount() int {
	pairs := 0
	for range p.AirportPairs() {
		pairs++
	}
	windows := 0
	for range p.DateWindows() {
		windows++
	}
	return pairs * windows
}
