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

var _ = Describe("Courier Authorization", func() {
	var courier api.Courier

	BeforeEach(func() {
		courier = api.RandomCourier()
		api.CreateCourierWithCleanup(client, ctx, courier)
	})

	Context("When logging in as a registered courier", func() {
		Describe("Given the correct credentials", func() {
			It("should return the courier ID", func() {
				resp, err := client.Couriers().Login(ctx, courier.Credentials())
				Expect(err).NotTo(HaveOccurred())

				login := api.ExpectDecoded[api.LoginResponse](client, ctx, resp, http.StatusOK)
				Expect(login.ID).NotTo(BeNil())
			})
		})

		Describe("Given incomplete credentials", func() {
			It("should reject a login without a login", func() {
				resp, err := client.Couriers().Login(ctx, api.CourierCredentials{Password: courier.Password})
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusBadRequest, api.MessageNotEnoughDataToLogin)
			})

			It("should reject a login without a password", func() {
				resp, err := client.Couriers().Login(ctx, api.CourierCredentials{Login: courier.Login})
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusBadRequest, api.MessageNotEnoughDataToLogin)
			})
		})

		Describe("Given credentials that match no account", func() {
			It("should reject an unknown login", func() {
				resp, err := client.Couriers().Login(ctx, api.CourierCredentials{
					Login:    courier.Login + "x",
					Password: courier.Password,
				})
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusNotFound, api.MessageAccountNotFound)
			})

			It("should reject a wrong password", func() {
				resp, err := client.Couriers().Login(ctx, api.CourierCredentials{
					Login:    courier.Login,
					Password: courier.Password + "x",
				})
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(client, ctx, resp, http.StatusNotFound, api.MessageAccountNotFound)
			})
		})
	})
})
