package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalingIsLinear(t *testing.T) {
	// Scaled totals follow food calories x servings exactly.
	for _, tc := range []struct {
		calories float64
		servings float64
		want     float64
	}{
		{95, 1, 95},
		{95, 2, 190},
		{200, 1.5, 300},
		{133, 0.75, 100}, // 99.75 rounds up
		{0, 3, 0},
	} {
		assert.Equal(t, tc.want, ScaledTotal(tc.calories, tc.servings),
			"%.0f kcal x %.2f servings", tc.calories, tc.servings)
	}
}

func TestUnitsToggleRoundTrip(t *testing.T) {
	// servings -> units -> servings returns the original value within
	// floating point tolerance.
	const servingSize = 150.0
	for _, servings := range []float64{0.5, 1, 1.5, 2.3333, 7} {
		units := UnitsFromServings(servings, servingSize)
		back := ServingsFromUnits(units, servingSize)
		assert.InDelta(t, servings, back, 1e-9)
	}
}

func TestPerServingRateIsFixed(t *testing.T) {
	// The rate derives from the log's original totals and stays constant
	// across pending servings edits.
	origTotal, origServings := 450.0, 3.0
	rate := PerServing(origTotal, origServings)
	assert.Equal(t, 150.0, rate)

	for _, newServings := range []float64{1, 2, 5} {
		assert.Equal(t, math.Round(150*newServings), ScaledTotal(rate, newServings))
		// Recomputing the rate from the originals gives the same answer.
		assert.Equal(t, rate, PerServing(origTotal, origServings))
	}
}

func TestPerServingZeroServings(t *testing.T) {
	// Division by zero renders as an undefined value, not a panic.
	assert.True(t, math.IsNaN(PerServing(0, 0)))
	assert.True(t, math.IsInf(PerServing(100, 0), 1))
}

func TestCaloriesRemainingClamped(t *testing.T) {
	assert.Equal(t, 0.0, CaloriesRemaining(2000, 2500))
	assert.Equal(t, 500.0, CaloriesRemaining(2000, 1500))
	assert.Equal(t, 2000.0, CaloriesRemaining(2000, 0))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ProgressPercent(50, 0), "zero goal guards divide-by-zero")
	assert.Equal(t, 0.0, ProgressPercent(50, -10))
	assert.Equal(t, 50.0, ProgressPercent(75, 150))
	assert.Equal(t, 100.0, ProgressPercent(300, 150), "capped at 100")
}

func TestDelta(t *testing.T) {
	mag, label := Delta(81.2, 80.0)
	assert.Equal(t, 1.2, mag)
	assert.Equal(t, "gain", label)

	mag, label = Delta(79.96, 80.3)
	assert.Equal(t, 0.3, mag, "magnitude rounds to one decimal")
	assert.Equal(t, "loss", label)

	mag, label = Delta(80, 80)
	assert.Equal(t, 0.0, mag)
	assert.Equal(t, "", label)
}
