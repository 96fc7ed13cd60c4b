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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"
)

// CourierField names a courier payload field.
type CourierField string

const (
	FieldLogin     CourierField = "login"
	FieldPassword  CourierField = "password"
	FieldFirstName CourierField = "firstName"
)

// CourierPayloadBuilder builds courier payloads for testing.
type CourierPayloadBuilder struct {
	courier Courier
}

// NewCourierPayload creates a new courier payload builder with random defaults.
func NewCourierPayload() *CourierPayloadBuilder {
	return &CourierPayloadBuilder{
		courier: RandomCourier(),
	}
}

func (b *CourierPayloadBuilder) WithLogin(login string) *CourierPayloadBuilder {
	b.courier.Login = login
	return b
}

func (b *CourierPayloadBuilder) WithPassword(password string) *CourierPayloadBuilder {
	b.courier.Password = password
	return b
}

func (b *CourierPayloadBuilder) WithFirstName(firstName string) *CourierPayloadBuilder {
	b.courier.FirstName = firstName
	return b
}

// Without drops a field from the payload entirely.
func (b *CourierPayloadBuilder) Without(field CourierField) *CourierPayloadBuilder {
	switch field {
	case FieldLogin:
		b.courier.Login = ""
	case FieldPassword:
		b.courier.Password = ""
	case FieldFirstName:
		b.courier.FirstName = ""
	}

	return b
}

// Build returns the completed courier payload.
func (b *CourierPayloadBuilder) Build() Courier {
	return b.courier
}

// OrderPayloadBuilder builds order payloads for testing.
type OrderPayloadBuilder struct {
	order Order
}

// NewOrderPayload creates a new order payload builder with random defaults and
// no colors.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		order: RandomOrder(),
	}
}

func (b *OrderPayloadBuilder) WithColors(colors ...Color) *OrderPayloadBuilder {
	b.order.Color = append([]Color{}, colors...)
	return b
}

func (b *OrderPayloadBuilder) WithMetroStation(station int) *OrderPayloadBuilder {
	b.order.MetroStation = station
	return b
}

func (b *OrderPayloadBuilder) WithComment(comment string) *OrderPayloadBuilder {
	b.order.Comment = comment
	return b
}

// Build returns the completed order payload.
func (b *OrderPayloadBuilder) Build() Order {
	return b.order
}

// ExpectStatus asserts the status code, the response is printed on failure.
func ExpectStatus(resp *Response, status int) {
	GinkgoHelper()

	Expect(resp).NotTo(BeNil())
	Expect(resp.StatusCode).To(Equal(status), "unexpected response %s", resp)
}

// ExpectDecoded asserts the status, validates the body against the API schema
// and decodes it.
func ExpectDecoded[T any](client *APIClient, ctx context.Context, resp *Response, status int) *T {
	GinkgoHelper()

	ExpectStatus(resp, status)
	Expect(client.ValidateResponse(ctx, resp)).To(Succeed())

	out := new(T)
	Expect(resp.Decode(out)).To(Succeed())

	return out
}

// ExpectErrorMessage asserts a documented failure.
func ExpectErrorMessage(client *APIClient, ctx context.Context, resp *Response, status int, message string) {
	GinkgoHelper()

	body := ExpectDecoded[ErrorResponse](client, ctx, resp, status)
	Expect(body.Message).To(Equal(message))
}

// ExpectOrdersPage asserts a successful listing with the given paging and
// returns it.
func ExpectOrdersPage(client *APIClient, ctx context.Context, resp *Response, page, limit int) *OrdersPage {
	GinkgoHelper()

	orders := ExpectDecoded[OrdersPage](client, ctx, resp, http.StatusOK)
	Expect(orders.Orders).NotTo(BeNil())
	Expect(orders.AvailableStations).NotTo(BeNil())
	Expect(orders.PageInfo).NotTo(BeNil())
	Expect(orders.PageInfo.Page).To(Equal(page))
	Expect(orders.PageInfo.Limit).To(Equal(limit))

	return orders
}

// ExpectStationsOnly asserts the listing was narrowed to exactly the given
// stations, both the orders and the available stations.
func ExpectStationsOnly(orders *OrdersPage, stations ...string) {
	GinkgoHelper()

	expected := set.New[string](stations...)

	available := make([]string, 0, len(orders.AvailableStations))
	for _, station := range orders.AvailableStations {
		available = append(available, station.Number)
	}

	Expect(available).To(HaveLen(len(stations)))
	Expect(slices.Collect(set.New[string](available...).Difference(expected).All())).To(BeEmpty())

	for _, order := range orders.Orders {
		Expect(slices.Collect(set.New[string](order.MetroStation).Difference(expected).All())).To(BeEmpty(),
			"order %d is at station %s", order.ID, order.MetroStation)
	}
}

// CreateCourierWithCleanup registers a courier, logs it in and schedules its
// deletion. It returns the courier ID.
func CreateCourierWithCleanup(client *APIClient, ctx context.Context, courier Courier) int {
	GinkgoHelper()

	resp, err := client.Couriers().Create(ctx, courier)
	Expect(err).NotTo(HaveOccurred())

	created := ExpectDecoded[CreatedResponse](client, ctx, resp, http.StatusCreated)
	Expect(created.OK).To(BeTrue())

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCourierCleanup(client, ctx, courier.Credentials())

	resp, err = client.Couriers().Login(ctx, courier.Credentials())
	Expect(err).NotTo(HaveOccurred())

	login := ExpectDecoded[LoginResponse](client, ctx, resp, http.StatusOK)
	Expect(login.ID).NotTo(BeNil())

	GinkgoWriter.Printf("Created courier %s with ID: %d\n", courier.Login, *login.ID)

	return *login.ID
}

// DeferCourierCleanup schedules deletion of whatever courier the credentials
// log in as, if any. Scenarios that may or may not create a courier use it.
func DeferCourierCleanup(client *APIClient, ctx context.Context, credentials CourierCredentials) {
	DeferCleanup(func() {
		id, ok := client.Couriers().LoginID(ctx, credentials)
		if !ok {
			return
		}

		GinkgoWriter.Printf("Cleaning up courier: %d\n", id)
		client.Couriers().Delete(ctx, id)
	})
}

// CreateOrderWithCleanup places an order and schedules its cancellation. It
// returns the track number.
func CreateOrderWithCleanup(client *APIClient, ctx context.Context, order Order) int {
	GinkgoHelper()

	resp, err := client.Orders().Create(ctx, order)
	Expect(err).NotTo(HaveOccurred())

	created := ExpectDecoded[CreateOrderResponse](client, ctx, resp, http.StatusCreated)
	Expect(created.Track).NotTo(BeNil())

	track := *created.Track

	GinkgoWriter.Printf("Created order with track: %d\n", track)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cancelling order: %d\n", track)
		client.Orders().Cancel(ctx, track)
	})

	return track
}
