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

var _ = Describe("Order Creation", func() {
	Context("When placing an order", func() {
		DescribeTable("should create a trackable order for any color choice",
			func(colors []api.Color) {
				track := api.CreateOrderWithCleanup(client, ctx, api.NewOrderPayload().
					WithColors(colors...).
					Build())

				resp, err := client.Orders().Track(ctx, track)
				Expect(err).NotTo(HaveOccurred())

				tracked := api.ExpectDecoded[api.TrackOrderResponse](client, ctx, resp, http.StatusOK)
				Expect(tracked.Order).NotTo(BeNil())
				Expect(tracked.Order.Track).To(Equal(track))
			},
			Entry("black", []api.Color{api.ColorBlack}),
			Entry("grey", []api.Color{api.ColorGrey}),
			Entry("black and grey", []api.Color{api.ColorBlack, api.ColorGrey}),
			Entry("no color", []api.Color{}),
		)
	})
})
