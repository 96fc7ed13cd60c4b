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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
)

//go:generate mockgen -destination=mock/interfaces.go -package=mock github.com/nscaledev/scooter-api-tests/test/api HTTPDoer

// HTTPDoer is the transport the client sends requests through.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	config    *TestConfig
	logger    logr.Logger
	endpoints *Endpoints
	validator *SchemaValidator
}

type Option func(*APIClient)

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithLogger replaces the default Ginkgo logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithSchemaValidator checks decoded responses against the API schema.
func WithSchemaValidator(validator *SchemaValidator) Option {
	return func(c *APIClient) {
		c.validator = validator
	}
}

// NewAPIClient returns a client for baseURL with default settings, an empty
// baseURL selects the public QA deployment.
func NewAPIClient(baseURL string, options ...Option) *APIClient {
	config := DefaultTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL, options...)
}

func NewAPIClientWithConfig(config *TestConfig, options ...Option) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL, options...)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, options ...Option) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		logger:    ginkgo.GinkgoLogr,
		endpoints: NewEndpoints(),
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// BaseURL returns the service root every request is resolved against.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) Couriers() *CourierClient {
	return &CourierClient{api: c}
}

func (c *APIClient) Orders() *OrderClient {
	return &OrderClient{api: c}
}

// createTraceParent creates a W3C traceparent header value.
// Every request gets a new trace so a failure can be found in the service logs.
func createTraceParent() string {
	traceID := strings.ReplaceAll(uuid.NewString(), "-", "")
	spanID := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest builds every request the suite sends: base URL, path, query, JSON
// headers and trace context. A non-nil body is marshaled to JSON. Any HTTP
// status is a successful call; only transport failures are returned as errors.
func (c *APIClient) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	fullURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing request URL: %w", err)
	}

	if len(query) > 0 {
		fullURL.RawQuery = query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log := c.logger.WithValues("method", method, "path", path, "traceparent", traceParent)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration)
		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", extractTraceID(traceParent), err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "duration", duration, "status", resp.StatusCode)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		log.Info("request complete", "query", fullURL.RawQuery, "status", resp.StatusCode, "duration", duration)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		log.Info("response body", "body", string(respBody))
	}

	return &Response{
		Method:      method,
		URL:         fullURL,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		TraceParent: traceParent,
	}, nil
}

// fireAndForget issues a request whose outcome the caller does not act on.
// Failures are logged and dropped.
func (c *APIClient) fireAndForget(ctx context.Context, method, path string, query url.Values, body any, expectedStatus int) {
	resp, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		c.logger.Info("Warning: best-effort request failed", "method", method, "path", path, "error", err.Error())
		return
	}

	if resp.StatusCode != expectedStatus {
		c.logger.Info("Warning: best-effort request returned unexpected status", "method", method, "path", path,
			"expected", expectedStatus, "status", resp.StatusCode, "body", string(resp.Body), "traceID", extractTraceID(resp.TraceParent))
	}
}
