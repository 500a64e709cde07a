package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"caltrack/internal/api"
	"caltrack/internal/keys"
	"caltrack/internal/session"
	"caltrack/internal/stub"
)

// newTestApp spins up the stub server over a temp sqlite database and wires
// a full client stack against it, so these tests exercise the real HTTP
// round trip including the envelope and the cache.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()

	db, err := stub.Connect(filepath.Join(dir, "stub.db"))
	require.NoError(t, err)

	srv := httptest.NewServer(stub.NewRouter(db, stub.NewJWT("test-secret"), zap.NewNop(), stub.Options{}))
	t.Cleanup(srv.Close)

	sess := session.Load(filepath.Join(dir, "session.json"))
	client := api.NewClient(srv.URL+"/api", sess.Token, zap.NewNop())
	return New(client, sess, zap.NewNop())
}

func signUp(t *testing.T, a *App) api.User {
	t.Helper()
	u, err := a.Register(context.Background(), "ana@example.com", "password123", "Ana")
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T { return &v }

func TestRegisterInstallsSession(t *testing.T) {
	a := newTestApp(t)
	u := signUp(t, a)

	assert.True(t, a.Session.IsAuthenticated())
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, 2000.0, u.DailyCalorieGoal, "signup applies default goals")

	// The full profile landed in the cache during session install.
	_, ok := a.Cache.Peek(keys.Profile())
	assert.True(t, ok)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)

	_, err := a.Login(context.Background(), "ana@example.com", "wrong-password")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)

	_, err := a.Register(context.Background(), "ana@example.com", "password456", "Other Ana")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already in use", apiErr.Message)
}

func TestLogoutClearsSessionAndCache(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	_, err := a.Foods(ctx, api.FoodFilter{})
	require.NoError(t, err)

	require.NoError(t, a.Logout())
	assert.False(t, a.Session.IsAuthenticated())
	_, ok := a.Cache.Peek(keys.Profile())
	assert.False(t, ok)

	// Reads after logout hit the server without a token and fail.
	_, err = a.Foods(ctx, api.FoodFilter{})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
}

func TestFoodMutationsRefreshListings(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	foods, err := a.Foods(ctx, api.FoodFilter{})
	require.NoError(t, err)
	assert.Empty(t, foods)

	apple, err := a.CreateFood(ctx, api.CreateFoodInput{
		Name: "Apple", Calories: 95, Carbs: 25,
		ServingSize: 182, ServingUnit: "g", Category: "fruit",
	})
	require.NoError(t, err)
	require.NotEmpty(t, apple.ID)

	// The earlier empty listing was invalidated; the new food shows up.
	foods, err = a.Foods(ctx, api.FoodFilter{})
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Apple", foods[0].Name)

	// Search and category filters reach the server.
	foods, err = a.Foods(ctx, api.FoodFilter{Search: "app"})
	require.NoError(t, err)
	assert.Len(t, foods, 1)
	foods, err = a.Foods(ctx, api.FoodFilter{Category: "vegetable"})
	require.NoError(t, err)
	assert.Empty(t, foods)

	// A rename invalidates the cached byId entry too.
	_, err = a.FoodByID(ctx, apple.ID)
	require.NoError(t, err)
	_, err = a.UpdateFood(ctx, apple.ID, api.FoodUpdate{Name: ptr("Green Apple")})
	require.NoError(t, err)
	got, err := a.FoodByID(ctx, apple.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Apple", got.Name)

	require.NoError(t, a.DeleteFood(ctx, apple.ID))
	foods, err = a.Foods(ctx, api.FoodFilter{})
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestFoodNotFound(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)

	_, err := a.FoodByID(context.Background(), "no-such-id")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "Food not found", apiErr.Message)
}

func TestDisabledReads(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	_, err := a.FoodByID(ctx, "")
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = a.Daily(ctx, "")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestLogCreateUpdatesOnlyItsDate(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	rice, err := a.CreateFood(ctx, api.CreateFoodInput{
		Name: "Rice", Calories: 200, Protein: 4, Carbs: 44, Fats: 0.5,
		ServingSize: 100, ServingUnit: "g",
	})
	require.NoError(t, err)

	// Warm the cache for a neighboring date.
	other, err := a.Daily(ctx, "2024-06-02")
	require.NoError(t, err)
	assert.Empty(t, other.Logs)

	logged, err := a.CreateLog(ctx, api.CreateFoodLogInput{
		FoodID: rice.ID, Date: "2024-06-01", MealType: api.Lunch, Servings: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, logged.Calories, "totals denormalized at create time")
	assert.Equal(t, "Rice", logged.FoodName)

	day, err := a.Daily(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, day.Logs, 1)
	assert.Equal(t, 400.0, day.Summary.TotalCalories)
	assert.Equal(t, 8.0, day.Summary.TotalProtein)

	lunch := day.Summary.MealBreakdown["lunch"]
	require.NotNil(t, lunch)
	assert.Equal(t, 400.0, lunch.Calories)
	assert.Equal(t, 1, lunch.Count)
	breakfast := day.Summary.MealBreakdown["breakfast"]
	require.NotNil(t, breakfast, "every meal appears in the breakdown")
	assert.Equal(t, 0, breakfast.Count)

	// The neighboring date's cache entry was not touched.
	_, ok := a.Cache.Peek(keys.Daily("2024-06-02"))
	assert.True(t, ok)
	_, ok = a.Cache.Peek(keys.Daily("2024-06-01"))
	assert.True(t, ok)
}

func TestServingsEditRescalesFromLogRate(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	oats, err := a.CreateFood(ctx, api.CreateFoodInput{
		Name: "Oats", Calories: 100, Protein: 3,
		ServingSize: 40, ServingUnit: "g",
	})
	require.NoError(t, err)

	logged, err := a.CreateLog(ctx, api.CreateFoodLogInput{
		FoodID: oats.ID, Date: "2024-06-01", MealType: api.Breakfast, Servings: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, logged.Calories)

	// Editing the food afterwards must not reach back into the log.
	_, err = a.UpdateFood(ctx, oats.ID, api.FoodUpdate{Calories: ptr(999.0)})
	require.NoError(t, err)

	updated, err := a.UpdateLog(ctx, "2024-06-01", logged.ID, api.FoodLogUpdate{Servings: ptr(3.0)})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Calories, "rescaled from the log's own 100 kcal per serving")
	assert.Equal(t, 9.0, updated.Protein)
}

func TestDeleteLogClearsTotals(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	egg, err := a.CreateFood(ctx, api.CreateFoodInput{
		Name: "Egg", Calories: 78, Protein: 6, ServingSize: 1, ServingUnit: "piece",
	})
	require.NoError(t, err)

	logged, err := a.CreateLog(ctx, api.CreateFoodLogInput{
		FoodID: egg.ID, Date: "2024-06-03", MealType: api.Snack, Servings: 1,
	})
	require.NoError(t, err)

	require.NoError(t, a.DeleteLog(ctx, "2024-06-03", logged.ID))

	day, err := a.Daily(ctx, "2024-06-03")
	require.NoError(t, err)
	assert.Empty(t, day.Logs)
	assert.Equal(t, 0.0, day.Summary.TotalCalories)
}

func TestLogValidation(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	egg, err := a.CreateFood(ctx, api.CreateFoodInput{
		Name: "Egg", Calories: 78, ServingSize: 1, ServingUnit: "piece",
	})
	require.NoError(t, err)

	_, err = a.CreateLog(ctx, api.CreateFoodLogInput{
		FoodID: egg.ID, Date: "2024-06-01", MealType: "brunch", Servings: 0,
	})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	params := make([]string, 0, len(apiErr.Errors))
	for _, e := range apiErr.Errors {
		params = append(params, e.Param)
	}
	assert.ElementsMatch(t, []string{"mealType", "servings"}, params)
}

func TestCalculateTDEE(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	// Fresh profiles carry no body metrics.
	_, err := a.CalculateTDEE(ctx)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Errors)

	_, err = a.UpdateProfile(ctx, api.ProfileUpdate{
		CurrentWeight: ptr(80.0),
		Height:        ptr(180.0),
		Age:           ptr(30),
		Gender:        ptr("male"),
		ActivityLevel: ptr("moderate"),
	})
	require.NoError(t, err)

	res, err := a.CalculateTDEE(ctx)
	require.NoError(t, err)
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780, times 1.55 rounded.
	assert.Equal(t, 2759.0, res.TDEE)
}

func TestUpdateProfileRefreshesSessionAndCache(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	u, err := a.UpdateProfile(ctx, api.ProfileUpdate{
		Name:             ptr("Ana B"),
		DailyCalorieGoal: ptr(1800.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana B", u.Name)

	require.NotNil(t, a.Session.User())
	assert.Equal(t, "Ana B", a.Session.User().Name)
	assert.Equal(t, 1800.0, a.Goals().Calories)

	cached, ok := a.Cache.Peek(keys.Profile())
	require.True(t, ok, "response written straight into the profile cache")
	assert.Equal(t, "Ana B", cached.(api.User).Name)
}

func TestWeightFlow(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)
	ctx := context.Background()

	older := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	newer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := a.CreateWeight(ctx, api.CreateWeightInput{Weight: 80, Date: older})
	require.NoError(t, err)
	latest, err := a.CreateWeight(ctx, api.CreateWeightInput{Weight: 78.5, Date: newer, Notes: "after the trip"})
	require.NoError(t, err)

	got, err := a.LatestWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 78.5, got.Weight)

	all, err := a.Weights(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer, all[0].Date, "newest first")

	trend, err := a.WeightTrend(ctx, 30)
	require.NoError(t, err)
	require.Len(t, trend.Entries, 2)
	assert.Equal(t, -1.5, trend.Change)
	assert.Equal(t, "loss", trend.Direction)

	// A narrower window holds one entry and shows no direction.
	trend, err = a.WeightTrend(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, trend.Entries, 1)
	assert.Equal(t, "none", trend.Direction)

	// Deleting invalidates every weight read, latest included.
	require.NoError(t, a.DeleteWeight(ctx, latest.ID))
	got, err = a.LatestWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.Weight)
}

func TestLatestWeightEmpty(t *testing.T) {
	a := newTestApp(t)
	signUp(t, a)

	_, err := a.LatestWeight(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "No weight entries found", apiErr.Message)
}
