package googleflights

import (
	"fmt"

	"github.com/memoryleak07/GFScraper/internal/domain"
)

const baseURL = "https://www.google.com/travel/flights"

// SearchURL builds the round-trip query URL for one combination. The whole
// search is expressed through the q parameter as a natural-language query,
// e.g. "Flights to NAP from FCO on 2023-10-01 through 2023-10-21". A valid
// travel class appends a "... class" qualifier; anything else is ignored.
func SearchURL(pair domain.AirportPair, window domain.DateWindow, travelClass string) string {
	u := fmt.Sprintf("%s?q=Flights+to+%s+from+%s+on+%s+through+%s",
		baseURL, pair.Destination, pair.Origin, window.Outbound, window.Inbound)
	switch travelClass {
	case "economy", "business", "first":
		u += "%20" + travelClass + "%20class"
	}
	return u
}
