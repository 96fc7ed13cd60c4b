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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/nscaledev/scooter-api-tests/test/api"
	"github.com/nscaledev/scooter-api-tests/test/fake"
)

// seededOrders is enough to fill more than one page at the capped limit.
const seededOrders = 40

var (
	client    *api.APIClient
	ctx       context.Context
	config    *api.TestConfig
	validator *api.SchemaValidator
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	if config.UseFakeServer {
		var options []fake.Option

		if config.LogRequests {
			logger := logrus.New()
			logger.SetOutput(GinkgoWriter)
			logger.SetLevel(logrus.DebugLevel)

			options = append(options, fake.WithLogger(logger))
		}

		server := fake.New(options...)

		orders := make([]api.Order, 0, seededOrders)
		for i := range seededOrders {
			order := api.RandomOrder()
			if i%4 == 0 {
				order.MetroStation = 110
			}

			orders = append(orders, order)
		}

		server.Seed(orders...)

		ts := httptest.NewServer(server.Handler())
		DeferCleanup(ts.Close)

		config.BaseURL = ts.URL

		GinkgoWriter.Printf("Using in-process scooter service at %s\n", ts.URL)
	}

	if config.ValidateSchema {
		validator, err = api.NewSchemaValidator(context.Background())
		Expect(err).NotTo(HaveOccurred())
	}
})

var _ = BeforeEach(func() {
	var options []api.Option
	if validator != nil {
		options = append(options, api.WithSchemaValidator(validator))
	}

	client = api.NewAPIClientWithConfig(config, options...)
	ctx = context.Background()
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Scooter API Test Suites")
}
