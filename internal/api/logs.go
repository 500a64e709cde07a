package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) DailyLogs(ctx context.Context, date string) (DailyData, error) {
	var out DailyData
	err := c.do(ctx, http.MethodGet, "/logs/daily/"+url.PathEscape(date), nil, nil, &out)
	return out, err
}

func (c *Client) CreateLog(ctx context.Context, in CreateFoodLogInput) (FoodLog, error) {
	var out FoodLog
	err := c.do(ctx, http.MethodPost, "/logs", nil, in, &out)
	return out, err
}

func (c *Client) UpdateLog(ctx context.Context, id string, upd FoodLogUpdate) (FoodLog, error) {
	var out FoodLog
	err := c.do(ctx, http.MethodPut, "/logs/"+url.PathEscape(id), nil, upd, &out)
	return out, err
}

func (c *Client) DeleteLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/logs/"+url.PathEscape(id), nil, nil, nil)
}
