// Package app is the query/mutation layer: every read the views issue is a
// keyed, cached fetch; every write declares the cache keys it invalidates
// on success. Views never touch the API client or the cache directly.
package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"caltrack/internal/api"
	"caltrack/internal/keys"
	"caltrack/internal/nutrition"
	"caltrack/internal/querycache"
	"caltrack/internal/session"
)

// ErrDisabled is returned by reads whose prerequisite input (an id, a
// date) is not available yet. The read is constructed but not executed.
var ErrDisabled = errors.New("query disabled: missing prerequisite")

type App struct {
	API     *api.Client
	Cache   *querycache.Store
	Session *session.Store
	Log     *zap.Logger
}

func New(client *api.Client, sess *session.Store, log *zap.Logger) *App {
	return &App{
		API:     client,
		Cache:   querycache.NewStore(),
		Session: sess,
		Log:     log,
	}
}

// mutate fires a write and, on success, invalidates the keys it declares.
// A failed write leaves prior cache state untouched.
func mutate[T any](ctx context.Context, a *App, run func(context.Context) (T, error), invalidates func(T) []querycache.Key) (T, error) {
	out, err := run(ctx)
	if err != nil {
		return out, err
	}
	if ks := invalidates(out); len(ks) > 0 {
		a.Cache.Invalidate(ks...)
	}
	return out, nil
}

// ---- auth ----

// Login authenticates and installs the session: token plus a minimal
// profile with default goals, then a best-effort fetch of the full
// profile. A failed profile fetch does not fail the login.
func (a *App) Login(ctx context.Context, email, password string) (api.User, error) {
	res, err := a.API.Login(ctx, email, password)
	if err != nil {
		return api.User{}, err
	}
	return a.installSession(ctx, res)
}

func (a *App) Register(ctx context.Context, email, password, name string) (api.User, error) {
	res, err := a.API.Register(ctx, email, password, name)
	if err != nil {
		return api.User{}, err
	}
	return a.installSession(ctx, res)
}

func (a *App) installSession(ctx context.Context, res api.AuthResult) (api.User, error) {
	minimal := api.User{
		ID:               res.ID,
		Email:            res.Email,
		Name:             res.Name,
		DailyCalorieGoal: nutrition.DefaultCalorieGoal,
		ProteinGoal:      nutrition.DefaultProteinGoal,
		CarbsGoal:        nutrition.DefaultCarbsGoal,
		FatsGoal:         nutrition.DefaultFatsGoal,
	}
	if err := a.Session.SetAuth(res.Token, minimal); err != nil {
		return api.User{}, err
	}

	full, err := querycache.Fetch(ctx, a.Cache, keys.Profile(), a.API.Profile)
	if err != nil {
		// Session stays valid with the minimal profile.
		a.Log.Warn("profile fetch after login failed", zap.Error(err))
		return minimal, nil
	}
	if err := a.Session.SetUser(full); err != nil {
		return api.User{}, err
	}
	a.Cache.Put(keys.Me(), full)
	return full, nil
}

// Logout drops the session and everything cached under it.
func (a *App) Logout() error {
	a.Cache.Reset()
	return a.Session.Clear()
}

// ---- users ----

func (a *App) Profile(ctx context.Context) (api.User, error) {
	return querycache.Fetch(ctx, a.Cache, keys.Profile(), a.API.Profile)
}

// UpdateProfile overwrites the session user and the profile cache entry
// directly; the response already carries the new state, so no re-fetch.
func (a *App) UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (api.User, error) {
	u, err := a.API.UpdateProfile(ctx, upd)
	if err != nil {
		return api.User{}, err
	}
	if err := a.Session.SetUser(u); err != nil {
		return api.User{}, err
	}
	a.Cache.Put(keys.Profile(), u)
	return u, nil
}

func (a *App) CalculateTDEE(ctx context.Context) (api.TDEEResult, error) {
	return a.API.CalculateTDEE(ctx)
}

// ---- foods ----

func (a *App) Foods(ctx context.Context, f api.FoodFilter) ([]api.Food, error) {
	return querycache.Fetch(ctx, a.Cache, keys.Foods(f), func(ctx context.Context) ([]api.Food, error) {
		return a.API.Foods(ctx, f)
	})
}

func (a *App) FoodByID(ctx context.Context, id string) (api.Food, error) {
	if id == "" {
		return api.Food{}, ErrDisabled
	}
	return querycache.Fetch(ctx, a.Cache, keys.Food(id), func(ctx context.Context) (api.Food, error) {
		return a.API.Food(ctx, id)
	})
}

func (a *App) CreateFood(ctx context.Context, in api.CreateFoodInput) (api.Food, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.Food, error) { return a.API.CreateFood(ctx, in) },
		func(api.Food) []querycache.Key { return []querycache.Key{keys.FoodsPrefix()} })
}

func (a *App) UpdateFood(ctx context.Context, id string, upd api.FoodUpdate) (api.Food, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.Food, error) { return a.API.UpdateFood(ctx, id, upd) },
		func(api.Food) []querycache.Key { return []querycache.Key{keys.FoodsPrefix()} })
}

func (a *App) DeleteFood(ctx context.Context, id string) error {
	_, err := mutate(ctx, a,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, a.API.DeleteFood(ctx, id) },
		func(struct{}) []querycache.Key { return []querycache.Key{keys.FoodsPrefix()} })
	return err
}

// ---- logs ----

func (a *App) Daily(ctx context.Context, date string) (api.DailyData, error) {
	if date == "" {
		return api.DailyData{}, ErrDisabled
	}
	return querycache.Fetch(ctx, a.Cache, keys.Daily(date), func(ctx context.Context) (api.DailyData, error) {
		return a.API.DailyLogs(ctx, date)
	})
}

// RefreshDaily is the pull-to-refresh path: mark the date stale, fetch again.
func (a *App) RefreshDaily(ctx context.Context, date string) (api.DailyData, error) {
	a.Cache.Invalidate(keys.Daily(date))
	return a.Daily(ctx, date)
}

// Log mutations invalidate only the date they touch; other days keep
// their cache.

func (a *App) CreateLog(ctx context.Context, in api.CreateFoodLogInput) (api.FoodLog, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.FoodLog, error) { return a.API.CreateLog(ctx, in) },
		func(api.FoodLog) []querycache.Key { return []querycache.Key{keys.Daily(in.Date)} })
}

func (a *App) UpdateLog(ctx context.Context, date, id string, upd api.FoodLogUpdate) (api.FoodLog, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.FoodLog, error) { return a.API.UpdateLog(ctx, id, upd) },
		func(api.FoodLog) []querycache.Key { return []querycache.Key{keys.Daily(date)} })
}

func (a *App) DeleteLog(ctx context.Context, date, id string) error {
	_, err := mutate(ctx, a,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, a.API.DeleteLog(ctx, id) },
		func(struct{}) []querycache.Key { return []querycache.Key{keys.Daily(date)} })
	return err
}

// ---- weight ----

func (a *App) Weights(ctx context.Context) ([]api.WeightEntry, error) {
	return querycache.Fetch(ctx, a.Cache, keys.Weights(), a.API.Weights)
}

func (a *App) LatestWeight(ctx context.Context) (api.WeightEntry, error) {
	return querycache.Fetch(ctx, a.Cache, keys.WeightLatest(), a.API.LatestWeight)
}

func (a *App) WeightTrend(ctx context.Context, days int) (api.WeightTrend, error) {
	return querycache.Fetch(ctx, a.Cache, keys.WeightTrend(days), func(ctx context.Context) (api.WeightTrend, error) {
		return a.API.WeightTrend(ctx, days)
	})
}

func (a *App) CreateWeight(ctx context.Context, in api.CreateWeightInput) (api.WeightEntry, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.WeightEntry, error) { return a.API.CreateWeight(ctx, in) },
		func(api.WeightEntry) []querycache.Key { return []querycache.Key{keys.WeightPrefix()} })
}

func (a *App) UpdateWeight(ctx context.Context, id string, upd api.WeightUpdate) (api.WeightEntry, error) {
	return mutate(ctx, a,
		func(ctx context.Context) (api.WeightEntry, error) { return a.API.UpdateWeight(ctx, id, upd) },
		func(api.WeightEntry) []querycache.Key { return []querycache.Key{keys.WeightPrefix()} })
}

func (a *App) DeleteWeight(ctx context.Context, id string) error {
	_, err := mutate(ctx, a,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, a.API.DeleteWeight(ctx, id) },
		func(struct{}) []querycache.Key { return []querycache.Key{keys.WeightPrefix()} })
	return err
}

// Goals are the session user's targets, with the signup defaults when no
// profile is loaded yet.
type Goals struct {
	Calories, Protein, Carbs, Fats float64
}

func (a *App) Goals() Goals {
	g := Goals{
		Calories: nutrition.DefaultCalorieGoal,
		Protein:  nutrition.DefaultProteinGoal,
		Carbs:    nutrition.DefaultCarbsGoal,
		Fats:     nutrition.DefaultFatsGoal,
	}
	if u := a.Session.User(); u != nil {
		if u.DailyCalorieGoal > 0 {
			g.Calories = u.DailyCalorieGoal
		}
		if u.ProteinGoal > 0 {
			g.Protein = u.ProteinGoal
		}
		if u.CarbsGoal > 0 {
			g.Carbs = u.CarbsGoal
		}
		if u.FatsGoal > 0 {
			g.Fats = u.FatsGoal
		}
	}
	return g
}
