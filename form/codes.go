package form

import (
	"slices"
	"strings"
)

var defaultAirports = []string{
	"ATL", "BOS", "BWI", "CLT", "DAL", "DEN", "DFW", "DTW", "EWR", "FLL", "HOU", "IAD", "IAH",
	"IND", "JFK", "LAS", "LAX", "LGA", "MCO", "MIA", "MSP", "ORD", "PHL", "PHX", "SAN", "SEA",
	"SFO", "SLC", "TPA",
}

var defaultCarriers = []string{"AA", "DL", "WN"}

// Codes is the closed set of airports and carriers offered as choices.
type Codes struct {
	Airports []string
	Carriers []string
}

func DefaultCodes() Codes {
	return Codes{
		Airports: slices.Clone(defaultAirports),
		Carriers: slices.Clone(defaultCarriers),
	}
}

func (c Codes) HasAirport(code string) bool {
	return slices.Contains(c.Airports, strings.ToUpper(code))
}

func (c Codes) HasCarrier(code string) bool {
	return slices.Contains(c.Carriers, strings.ToUpper(code))
}
