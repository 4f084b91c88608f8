package googleflights

// XPath selectors for the Google Flights results page. They address the
// first entry of the sorted results list and break whenever Google reshuffles
// the page structure, which surfaces as error records rather than crashes.
const (
	xpPrice   = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[3]/ul/li[1]/div/div[2]/div/div[2]/div[6]/div[1]/div[2]/span`
	xpAirline = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[3]/ul/li[1]/div/div[2]/div/div[2]/div[2]/div[2]`

	// Return-leg details, read after opening the first result.
	xpDuration = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[3]/ul/li[1]/div/div[2]/div/div[2]/div[3]/div`
	xpStops    = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[3]/ul/li[1]/div/div[2]/div/div[2]/div[4]/div[1]/span`

	// xpFirstResult opens the top-ranked itinerary to reveal the return leg.
	xpFirstResult = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[3]/ul/li[1]/div/div[2]`

	// xpNoFlightsMessage explains an empty results list, e.g. no flights on
	// the selected dates.
	xpNoFlightsMessage = `//*[@id="yDmH0d"]/c-wiz[2]/div/div[2]/c-wiz/div[1]/c-wiz/div[2]/div[2]/div[2]/p[2]`

	// xpConsentButton accepts the cookie dialog shown on fresh sessions.
	xpConsentButton = `//button[contains(., 'Accept all')]`
)
