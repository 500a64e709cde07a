// Package nutrition holds the pure display arithmetic: per-serving rates,
// goal progress and weight deltas. Nothing here talks to the network or
// mutates state.
package nutrition

import "math"

// Default goals applied to a freshly authenticated session until the full
// profile arrives.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 150
	DefaultCarbsGoal   = 250
	DefaultFatsGoal    = 65
)

// PerServing derives the per-serving rate from a log's stored total.
// servings == 0 yields NaN, which renders as an undefined value rather
// than crashing the view.
func PerServing(total, servings float64) float64 {
	return total / servings
}

// ScaledTotal projects a pending servings edit from a fixed per-serving
// rate. The rate comes from the log's original totals, never from the live
// food record, so later food edits do not leak into past logs.
func ScaledTotal(perServing, servings float64) float64 {
	return math.Round(perServing * servings)
}

// CaloriesRemaining is clamped at zero; an over-goal day shows 0 left.
func CaloriesRemaining(goal, consumed float64) float64 {
	return math.Max(goal-consumed, 0)
}

// ProgressPercent is capped at 100 and guards a zero or negative goal.
func ProgressPercent(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(current/goal*100, 100)
}

// UnitsFromServings converts a servings multiplier into the food's serving
// unit, e.g. 2 servings of a 150g food = 300g.
func UnitsFromServings(servings, servingSize float64) float64 {
	return servings * servingSize
}

// ServingsFromUnits is the inverse toggle. servingSize == 0 yields NaN or
// Inf, matching PerServing's undefined-display behavior.
func ServingsFromUnits(units, servingSize float64) float64 {
	return units / servingSize
}

// Delta compares two chronologically adjacent weight entries. Label is
// "gain" or "loss" by sign, "" when unchanged; magnitude is rounded to one
// decimal.
func Delta(latest, previous float64) (magnitude float64, label string) {
	d := latest - previous
	magnitude = math.Round(math.Abs(d)*10) / 10
	switch {
	case d > 0:
		label = "gain"
	case d < 0:
		label = "loss"
	}
	return magnitude, label
}
