/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"k8s.io/utils/ptr"
)

// OrderClient wraps the order endpoints.
type OrderClient struct {
	api *APIClient
}

// ListOrdersParams are the optional filters of the order listing, nil and
// empty values are left out of the query.
type ListOrdersParams struct {
	CourierID      *int
	NearestStation []string
	Limit          *int
	Page           *int
}

func (p ListOrdersParams) query() (url.Values, error) {
	query := url.Values{}

	if p.CourierID != nil {
		query.Set("courierId", strconv.Itoa(*p.CourierID))
	}

	if len(p.NearestStation) > 0 {
		// The service expects a JSON array, e.g. nearestStation=["110"].
		stations, err := json.Marshal(p.NearestStation)
		if err != nil {
			return nil, fmt.Errorf("encoding nearest stations: %w", err)
		}

		query.Set("nearestStation", string(stations))
	}

	if p.Limit != nil {
		query.Set("limit", strconv.Itoa(*p.Limit))
	}

	if p.Page != nil {
		query.Set("page", strconv.Itoa(*p.Page))
	}

	return query, nil
}

// Create places an order, 201 with a track number on success.
func (c *OrderClient) Create(ctx context.Context, order Order) (*Response, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.Orders(), nil, order)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return resp, nil
}

// Track looks an order up by its track number.
func (c *OrderClient) Track(ctx context.Context, track int) (*Response, error) {
	query := url.Values{}
	query.Set("t", strconv.Itoa(track))

	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.TrackOrder(), query, nil)
	if err != nil {
		return nil, fmt.Errorf("tracking order %d: %w", track, err)
	}

	return resp, nil
}

// Cancel cancels an order. Failures are logged, never returned.
func (c *OrderClient) Cancel(ctx context.Context, track int) {
	c.api.fireAndForget(ctx, http.MethodPut, c.api.endpoints.Orders(), nil, CancelOrderRequest{Track: track}, http.StatusOK)
}

// List fetches a page of orders.
func (c *OrderClient) List(ctx context.Context, params ListOrdersParams) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	resp, err := c.api.doRequest(ctx, http.MethodGet, c.api.endpoints.Orders(), query, nil)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return resp, nil
}

func (c *OrderClient) GetOrders(ctx context.Context) (*Response, error) {
	return c.List(ctx, ListOrdersParams{})
}

func (c *OrderClient) GetOrdersByCourierID(ctx context.Context, courierID int) (*Response, error) {
	return c.List(ctx, ListOrdersParams{CourierID: ptr.To(courierID)})
}

func (c *OrderClient) GetOrdersByNearestStation(ctx context.Context, stations ...string) (*Response, error) {
	return c.List(ctx, ListOrdersParams{NearestStation: stations})
}

func (c *OrderClient) GetOrdersWithLimit(ctx context.Context, limit int) (*Response, error) {
	return c.List(ctx, ListOrdersParams{Limit: ptr.To(limit)})
}

func (c *OrderClient) GetOrdersByPage(ctx context.Context, page int) (*Response, error) {
	return c.List(ctx, ListOrdersParams{Page: ptr.To(page)})
}
