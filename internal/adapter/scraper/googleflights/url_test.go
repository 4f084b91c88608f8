package googleflights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/memoryleak07/GFScraper/internal/domain"
)

func TestSearchURL(t *testing.T) {
	pair := domain.AirportPair{Origin: "FCO", Destination: "NAP"}
	window := domain.DateWindow{
		Outbound: domain.NewDate(2023, time.October, 1),
		Inbound:  domain.NewDate(2023, time.October, 21),
	}

	tests := []struct {
		name        string
		travelClass string
		want        string
	}{
		{
			name:        "no travel class",
			travelClass: "",
			want:        "https://www.google.com/travel/flights?q=Flights+to+NAP+from+FCO+on+2023-10-01+through+2023-10-21",
		},
		{
			name:        "business class",
			travelClass: "business",
			want:        "https://www.google.com/travel/flights?q=Flights+to+NAP+from+FCO+on+2023-10-01+through+2023-10-21%20business%20class",
		},
		{
			name:        "first class",
			travelClass: "first",
			want:        "https://www.google.com/travel/flights?q=Flights+to+NAP+from+FCO+on+2023-10-01+through+2023-10-21%20first%20class",
		},
		{
			name:        "unknown class is ignored",
			travelClass: "premium",
			want:        "https://www.google.com/travel/flights?q=Flights+to+NAP+from+FCO+on+2023-10-01+through+2023-10-21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchURL(pair, window, tt.travelClass))
		})
	}
}
