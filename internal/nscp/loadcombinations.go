package nscp

import (
	"fmt"
	"math"
)

// LoadType identifies the source of a nodal load
type LoadType string

const (
	Dead       LoadType = "D"  // Dead load
	Live       LoadType = "L"  // Live load
	Roof       LoadType = "Lr" // Roof live load
	Wind       LoadType = "W"  // Wind load
	Earthquake LoadType = "E"  // Earthquake load
	Rain       LoadType = "R"  // Rain load
)

// LoadTypes lists every recognised load type in report order
var LoadTypes = []LoadType{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseLoadType validates a load type name. An empty name means dead load.
func ParseLoadType(s string) (LoadType, error) {
	if s == "" {
		return Dead, nil
	}
	for _, t := range LoadTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown load type %q (expected D, L, Lr, W, E or R)", s)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only frames
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// FindCombination looks up a combination by ID
func FindCombination(id string, combinations []LoadCombination) (LoadCombination, bool) {
	for _, c := range combinations {
		if c.ID == id {
			return c, true
		}
	}
	return LoadCombination{}, false
}

// Factor returns the load factor applied to the given load type
func (lc LoadCombination) Factor(t LoadType) float64 {
	switch t {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Apply sums the per-type load vectors scaled by their factors.
// All vectors must have the same length.
func (lc LoadCombination) Apply(loads map[LoadType][]float64) ([]float64, error) {
	n := -1
	for t, v := range loads {
		if n >= 0 && len(v) != n {
			return nil, fmt.Errorf("load vector for %s has length %d, expected %d", t, len(v), n)
		}
		n = len(v)
	}
	if n < 0 {
		return nil, nil
	}

	out := make([]float64, n)
	for _, t := range LoadTypes {
		f := lc.Factor(t)
		if f == 0 {
			continue
		}
		for i, p := range loads[t] {
			out[i] += f * p
		}
	}
	return out, nil
}

// Governing finds the combination whose response has the largest magnitude.
// values[i] is the response under combinations[i].
func Governing(values []float64, combinations []LoadCombination) (float64, LoadCombination) {
	var maxValue float64
	var governingCombo LoadCombination

	for i, combo := range combinations {
		if i >= len(values) {
			break
		}
		if i == 0 || math.Abs(values[i]) > math.Abs(maxValue) {
			maxValue = values[i]
			governingCombo = combo
		}
	}

	return maxValue, governingCombo
}
