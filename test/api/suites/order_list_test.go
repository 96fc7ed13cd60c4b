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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/scooter-api-tests/test/api"
)

var _ = Describe("Order List", func() {
	Context("When listing orders without filters", func() {
		It("should return the first page with the default limit", func() {
			resp, err := client.Orders().GetOrders(ctx)
			Expect(err).NotTo(HaveOccurred())

			api.ExpectOrdersPage(client, ctx, resp, 0, api.DefaultPageLimit)
		})
	})

	Context("When listing orders by courier", func() {
		Describe("Given a courier with an accepted order", func() {
			It("should list the courier's orders", func() {
				courierID := api.CreateCourierWithCleanup(client, ctx, api.RandomCourier())
				track := api.CreateOrderWithCleanup(client, ctx, api.RandomOrder())

				client.Couriers().Accept(ctx, courierID, track)

				resp, err := client.Orders().GetOrdersByCourierID(ctx, courierID)
				Expect(err).NotTo(HaveOccurred())

				// A fresh courier has exactly the one order just accepted.
				orders := api.ExpectOrdersPage(client, ctx, resp, 0, api.DefaultPageLimit)
				Expect(orders.Orders).To(HaveLen(1))
				Expect(orders.Orders[0].Track).To(Equal(track))
				Expect(orders.Orders[0].CourierID).NotTo(BeNil())
				Expect(*orders.Orders[0].CourierID).To(Equal(courierID))
			})
		})

		Describe("Given a courier ID that does not exist", func() {
			It("should report the courier as not found", func() {
				resp, err := client.Orders().GetOrdersByCourierID(ctx, 0)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusNotFound, api.MessageCourierNotFound(0))
			})
		})
	})

	Context("When listing orders near a metro station", func() {
		It("should narrow orders and stations to that station", func() {
			resp, err := client.Orders().GetOrdersByNearestStation(ctx, "110")
			Expect(err).NotTo(HaveOccurred())

			orders := api.ExpectOrdersPage(client, ctx, resp, 0, api.DefaultPageLimit)
			api.ExpectStationsOnly(orders, "110")
		})
	})

	Context("When paging through orders", func() {
		It("should honour a limit below the maximum", func() {
			resp, err := client.Orders().GetOrdersWithLimit(ctx, 10)
			Expect(err).NotTo(HaveOccurred())

			orders := api.ExpectOrdersPage(client, ctx, resp, 0, 10)
			Expect(len(orders.Orders)).To(BeNumerically("<=", 10))
		})

		It("should cap a limit above the maximum", func() {
			resp, err := client.Orders().GetOrdersWithLimit(ctx, 35)
			Expect(err).NotTo(HaveOccurred())

			orders := api.ExpectOrdersPage(client, ctx, resp, 0, api.DefaultPageLimit)
			Expect(orders.Orders).To(HaveLen(api.DefaultPageLimit))
		})

		It("should return the requested page", func() {
			resp, err := client.Orders().GetOrdersByPage(ctx, 30)
			Expect(err).NotTo(HaveOccurred())

			api.ExpectOrdersPage(client, ctx, resp, 30, api.DefaultPageLimit)
		})
	})
})
