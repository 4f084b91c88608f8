package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPlan returns a plan that passes validation; tests mutate single
// fields to probe individual rules.
func validPlan() SearchPlan {
	return SearchPlan{
		FromAirports:   []string{"FCO", "NAP"},
		ToAirports:     []string{"MDE", "BOG"},
		OutboundStart:  NewDate(2023, time.October, 1),
		DeltaDays:      20,
		FlexDays:       4,
		LastDate:       NewDate(2024, time.February, 15),
		TimeoutSeconds: 10,
	}
}

func TestSearchPlanValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*SearchPlan)
		wantErr     bool
		wantMessage string
	}{
		{
			name:    "valid plan",
			mutate:  func(p *SearchPlan) {},
			wantErr: false,
		},
		{
			name:        "empty departure airports",
			mutate:      func(p *SearchPlan) { p.FromAirports = nil },
			wantErr:     true,
			wantMessage: "departure airport",
		},
		{
			name:        "empty destination airports",
			mutate:      func(p *SearchPlan) { p.ToAirports = []string{} },
			wantErr:     true,
			wantMessage: "destination airport",
		},
		{
			name:        "lowercase airport code",
			mutate:      func(p *SearchPlan) { p.FromAirports = []string{"fco"} },
			wantErr:     true,
			wantMessage: "IATA",
		},
		{
			name:        "four letter airport code",
			mutate:      func(p *SearchPlan) { p.ToAirports = []string{"MDEX"} },
			wantErr:     true,
			wantMessage: "IATA",
		},
		{
			name:        "missing outbound start",
			mutate:      func(p *SearchPlan) { p.OutboundStart = Date{} },
			wantErr:     true,
			wantMessage: "outbound start",
		},
		{
			name: "last date before outbound start",
			mutate: func(p *SearchPlan) {
				p.LastDate = NewDate(2023, time.September, 30)
			},
			wantErr:     true,
			wantMessage: "before outbound start",
		},
		{
			name:        "zero delta",
			mutate:      func(p *SearchPlan) { p.DeltaDays = 0 },
			wantErr:     true,
			wantMessage: "delta",
		},
		{
			name:        "negative flexdays",
			mutate:      func(p *SearchPlan) { p.FlexDays = -1 },
			wantErr:     true,
			wantMessage: "flexdays",
		},
		{
			name: "flexdays not below delta",
			mutate: func(p *SearchPlan) {
				p.DeltaDays = 3
				p.FlexDays = 3
			},
			wantErr:     true,
			wantMessage: "flexdays",
		},
		{
			name:        "zero timeout",
			mutate:      func(p *SearchPlan) { p.TimeoutSeconds = 0 },
			wantErr:     true,
			wantMessage: "timeout",
		},
		{
			name:        "unknown travel class",
			mutate:      func(p *SearchPlan) { p.TravelClass = "premium" },
			wantErr:     true,
			wantMessage: "tclass",
		},
		{
			name:    "travel class accepted when valid",
			mutate:  func(p *SearchPlan) { p.TravelClass = "business" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(&plan)

			err := plan.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error should wrap ErrInvalidConfig")
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestSearchPlanSetDefaults(t *testing.T) {
	t.Run("last date defaults to one year out", func(t *testing.T) {
		plan := validPlan()
		plan.LastDate = Date{}
		plan.SetDefaults()
		assert.Equal(t, plan.OutboundStart.AddDays(365), plan.LastDate)
	})

	t.Run("timeout defaults to ten seconds", func(t *testing.T) {
		plan := validPlan()
		plan.TimeoutSeconds = 0
		plan.SetDefaults()
		assert.Equal(t, 10*time.Second, plan.Timeout())
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		plan := validPlan()
		plan.SetDefaults()
		assert.Equal(t, NewDate(2024, time.February, 15), plan.LastDate)
		assert.Equal(t, 10, plan.TimeoutSeconds)
	})
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2023, time.October, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-10-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/10/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20231001`), &d))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2023, time.October, 31)
	assert.Equal(t, "2023-11-01", d.AddDays(1).String())
	assert.Equal(t, "2023-10-21", d.AddDays(-10).String())
}
