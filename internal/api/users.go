package api

import (
	"context"
	"net/http"
)

func (c *Client) Profile(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/users/profile", nil, upd, &out)
	return out, err
}

// CalculateTDEE asks the server for a calorie estimate from the stored body
// metrics. Fails with a validation error when weight, height, age, gender or
// activity level is missing from the profile.
func (c *Client) CalculateTDEE(ctx context.Context) (TDEEResult, error) {
	var out TDEEResult
	err := c.do(ctx, http.MethodGet, "/users/calculate-tdee", nil, nil, &out)
	return out, err
}
