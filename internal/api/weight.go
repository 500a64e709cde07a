package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Weights returns every entry, newest first. Trend calculations rely on
// that ordering.
func (c *Client) Weights(ctx context.Context) ([]WeightEntry, error) {
	var out []WeightEntry
	err := c.do(ctx, http.MethodGet, "/weight", nil, nil, &out)
	return out, err
}

func (c *Client) LatestWeight(ctx context.Context) (WeightEntry, error) {
	var out WeightEntry
	err := c.do(ctx, http.MethodGet, "/weight/latest", nil, nil, &out)
	return out, err
}

func (c *Client) WeightTrend(ctx context.Context, days int) (WeightTrend, error) {
	var out WeightTrend
	err := c.do(ctx, http.MethodGet, "/weight/trend/"+strconv.Itoa(days), nil, nil, &out)
	return out, err
}

func (c *Client) CreateWeight(ctx context.Context, in CreateWeightInput) (WeightEntry, error) {
	var out WeightEntry
	err := c.do(ctx, http.MethodPost, "/weight", nil, in, &out)
	return out, err
}

func (c *Client) UpdateWeight(ctx context.Context, id string, upd WeightUpdate) (WeightEntry, error) {
	var out WeightEntry
	err := c.do(ctx, http.MethodPut, "/weight/"+url.PathEscape(id), nil, upd, &out)
	return out, err
}

func (c *Client) DeleteWeight(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/weight/"+url.PathEscape(id), nil, nil, nil)
}
