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
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CourierClient wraps the courier endpoints.
type CourierClient struct {
	api *APIClient
}

// Login authenticates a courier. The service answers 200 with the courier ID,
// 400 when a field is missing and 404 when nothing matches.
func (c *CourierClient) Login(ctx context.Context, credentials CourierCredentials) (*Response, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.CourierLogin(), nil, credentials)
	if err != nil {
		return nil, fmt.Errorf("logging in courier: %w", err)
	}

	return resp, nil
}

// LoginID logs in and returns the courier ID if the credentials match an
// existing courier.
func (c *CourierClient) LoginID(ctx context.Context, credentials CourierCredentials) (int, bool) {
	resp, err := c.Login(ctx, credentials)
	if err != nil || resp.StatusCode != http.StatusOK {
		return 0, false
	}

	var login LoginResponse
	if err := resp.Decode(&login); err != nil || login.ID == nil {
		return 0, false
	}

	return *login.ID, true
}

// Create registers a courier: 201 on success, 409 for a taken login and 400
// when a field is missing.
func (c *CourierClient) Create(ctx context.Context, courier Courier) (*Response, error) {
	return c.CreateRaw(ctx, courier)
}

// CreateRaw posts an arbitrary JSON body to the courier endpoint.
func (c *CourierClient) CreateRaw(ctx context.Context, body any) (*Response, error) {
	resp, err := c.api.doRequest(ctx, http.MethodPost, c.api.endpoints.Couriers(), nil, body)
	if err != nil {
		return nil, fmt.Errorf("creating courier: %w", err)
	}

	return resp, nil
}

// Delete removes a courier. Failures are logged, never returned.
func (c *CourierClient) Delete(ctx context.Context, courierID int) {
	c.api.fireAndForget(ctx, http.MethodDelete, c.api.endpoints.Courier(courierID), nil, nil, http.StatusOK)
}

// Accept assigns the order with the given track to the courier. Failures are
// logged, never returned.
func (c *CourierClient) Accept(ctx context.Context, courierID, track int) {
	query := url.Values{}
	query.Set("courierId", strconv.Itoa(courierID))

	c.api.fireAndForget(ctx, http.MethodPut, c.api.endpoints.AcceptOrder(track), query, nil, http.StatusOK)
}
