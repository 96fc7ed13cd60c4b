/*
Copyright 2024-2025 the Unikorn Authors.
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
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Courier endpoints.
func (e *Endpoints) CourierLogin() string {
	return "/api/v1/courier/login"
}

func (e *Endpoints) Couriers() string {
	return "/api/v1/courier"
}

func (e *Endpoints) Courier(courierID int) string {
	return fmt.Sprintf("/api/v1/courier/%s",
		url.PathEscape(strconv.Itoa(courierID)))
}

// AcceptOrder is keyed by the order track, the courier goes in the query.
func (e *Endpoints) AcceptOrder(track int) string {
	return fmt.Sprintf("/api/v1/courier/%s",
		url.PathEscape(strconv.Itoa(track)))
}

// Order endpoints.
func (e *Endpoints) Orders() string {
	return "/api/v1/orders"
}

func (e *Endpoints) TrackOrder() string {
	return "/api/v1/orders/track"
}
