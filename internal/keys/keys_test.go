package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"caltrack/internal/api"
)

func TestFoodsFilterNormalization(t *testing.T) {
	// The zero filter and an explicitly empty one produce the same key.
	assert.True(t, Foods(api.FoodFilter{}).Equal(Foods(api.FoodFilter{Search: "", Category: ""})))

	// Same field values, same key.
	a := Foods(api.FoodFilter{Search: "apple", Category: "fruit"})
	b := Foods(api.FoodFilter{Search: "apple", Category: "fruit"})
	assert.True(t, a.Equal(b))

	// Different filters key separate cache entries.
	c := Foods(api.FoodFilter{Search: "apple"})
	assert.False(t, a.Equal(c))
}

func TestFoodsPrefixCoversListsAndByID(t *testing.T) {
	p := FoodsPrefix()
	assert.True(t, Foods(api.FoodFilter{Search: "rice"}).HasPrefix(p))
	assert.True(t, Food("abc-123").HasPrefix(p))
	assert.False(t, Daily("2024-01-01").HasPrefix(p))
}

func TestDailyKeysAreDateScoped(t *testing.T) {
	assert.True(t, Daily("2024-03-05").Equal(Daily("2024-03-05")))
	assert.False(t, Daily("2024-03-05").Equal(Daily("2024-03-06")))
}

func TestWeightPrefixCoversAllWeightReads(t *testing.T) {
	p := WeightPrefix()
	assert.True(t, Weights().HasPrefix(p))
	assert.True(t, WeightLatest().HasPrefix(p))
	assert.True(t, WeightTrend(30).HasPrefix(p))
	assert.False(t, Profile().HasPrefix(p))
}

func TestWeightTrendKeyedByWindow(t *testing.T) {
	assert.False(t, WeightTrend(7).Equal(WeightTrend(30)))
}
