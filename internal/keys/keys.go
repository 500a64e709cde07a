// Package keys defines the cache key for every query the client issues.
// The shapes mirror the resources: mutations invalidate by the short
// prefixes below so a write hits exactly the reads it can affect.
package keys

import (
	"net/url"
	"strconv"

	"caltrack/internal/api"
	"caltrack/internal/querycache"
)

func Me() querycache.Key      { return querycache.Key{"auth", "me"} }
func Profile() querycache.Key { return querycache.Key{"users", "profile"} }

// Foods keys a filtered library listing. Both filter fields default to the
// empty string so that the zero filter and an explicitly empty one produce
// the same canonical key, and two filters compare by value.
func Foods(f api.FoodFilter) querycache.Key {
	v := url.Values{"search": {f.Search}, "category": {f.Category}}
	return querycache.Key{"foods", v.Encode()}
}

func Food(id string) querycache.Key { return querycache.Key{"foods", "byId", id} }

// FoodsPrefix matches every foods key: all filtered lists and all byId
// entries. A food edit can change what any listing shows.
func FoodsPrefix() querycache.Key { return querycache.Key{"foods"} }

// Daily keys one exact calendar date; log mutations invalidate only the
// date they touch.
func Daily(date string) querycache.Key { return querycache.Key{"logs", "daily", date} }

func Weights() querycache.Key      { return querycache.Key{"weight", "all"} }
func WeightLatest() querycache.Key { return querycache.Key{"weight", "latest"} }
func WeightTrend(days int) querycache.Key {
	return querycache.Key{"weight", "trend", strconv.Itoa(days)}
}
func WeightPrefix() querycache.Key { return querycache.Key{"weight"} }
