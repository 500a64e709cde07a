package api

import (
	"context"
	"net/http"
	"net/url"
)

// FoodFilter narrows the food library listing. Zero value means all foods.
type FoodFilter struct {
	Search   string
	Category string
}

func (c *Client) Foods(ctx context.Context, f FoodFilter) ([]Food, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	var out []Food
	err := c.do(ctx, http.MethodGet, "/foods", q, nil, &out)
	return out, err
}

func (c *Client) Food(ctx context.Context, id string) (Food, error) {
	var out Food
	err := c.do(ctx, http.MethodGet, "/foods/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateFood(ctx context.Context, in CreateFoodInput) (Food, error) {
	var out Food
	err := c.do(ctx, http.MethodPost, "/foods", nil, in, &out)
	return out, err
}

func (c *Client) UpdateFood(ctx context.Context, id string, upd FoodUpdate) (Food, error) {
	var out Food
	err := c.do(ctx, http.MethodPut, "/foods/"+url.PathEscape(id), nil, upd, &out)
	return out, err
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/foods/"+url.PathEscape(id), nil, nil, nil)
}
