package testkit

import (
	"seqhypo/domain/sequence"
	"seqhypo/domain/verdict"
)

// Scenario is a midpoint array with its known verification outcome.
type Scenario struct {
	Name      string
	Midpoints sequence.Midpoints
	Window    sequence.Window
	// K and Predicted are meaningless when Status is undefined
	K         int64
	Predicted int64
	Actual    int
	FirstS1   int32
	LastS1    int32
	Status    verdict.VerdictStatus
}

// Scenarios returns the reference cases. Each call returns fresh slices.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:      "linear",
			Midpoints: sequence.Midpoints{1, 2, 3, 4, 5},
			Window:    sequence.Window{Min: -10, Max: 10},
			K:         1, Predicted: 2, Actual: 2,
			FirstS1: 0, LastS1: 1,
			Status: verdict.StatusMatch,
		},
		{
			Name:      "uneven-diffs",
			Midpoints: sequence.Midpoints{2, 4, 7},
			Window:    sequence.Window{Min: -10, Max: 10},
			K:         2, Predicted: 3, Actual: 3,
			FirstS1: 0, LastS1: 2,
			Status: verdict.StatusMatch,
		},
		{
			Name:      "single-midpoint",
			Midpoints: sequence.Midpoints{5},
			Window:    sequence.Window{Min: 0, Max: 10},
			Actual:    6,
			FirstS1:   0, LastS1: 5,
			Status: verdict.StatusUndefined,
		},
		{
			// non-decreasing but not derivable from any integer source
			Name:      "plateau-mismatch",
			Midpoints: sequence.Midpoints{0, 0, 1, 1},
			Window:    sequence.Window{Min: -10, Max: 10},
			K:         0, Predicted: 1, Actual: 0,
			Status: verdict.StatusMismatch,
		},
	}
}

// ScenarioByName looks up one of Scenarios.
func ScenarioByName(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
