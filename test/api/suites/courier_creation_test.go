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

var _ = Describe("Courier Creation", func() {
	Context("When registering a new courier", func() {
		Describe("Given a complete payload with a fresh login", func() {
			It("should create the courier and allow it to log in", func() {
				courierID := api.CreateCourierWithCleanup(client, ctx, api.RandomCourier())

				Expect(courierID).To(BeNumerically(">", 0))
			})
		})

		Describe("Given a login that is already registered", func() {
			It("should reject the duplicate", func() {
				courier := api.RandomCourier()
				api.CreateCourierWithCleanup(client, ctx, courier)

				resp, err := client.Couriers().Create(ctx, courier)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusConflict, api.MessageLoginAlreadyInUse)
			})
		})

		Describe("Given a payload with a required field missing", func() {
			DescribeTable("should reject the courier",
				func(field api.CourierField) {
					courier := api.NewCourierPayload().Without(field).Build()

					// Nothing should be created, but if it is, remove it.
					api.DeferCourierCleanup(client, ctx, courier.Credentials())

					resp, err := client.Couriers().Create(ctx, courier)
					Expect(err).NotTo(HaveOccurred())

					api.ExpectErrorMessage(client, ctx, resp, http.StatusBadRequest, api.MessageNotEnoughDataToCreate)
				},
				Entry("without a login", api.FieldLogin),
				Entry("without a password", api.FieldPassword),
				Entry("without a first name", api.FieldFirstName),
			)
		})
	})
})
