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
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var openAPISpec []byte

// SchemaValidator checks responses against the documented API.
type SchemaValidator struct {
	router routers.Router
}

// NewSchemaValidator loads and validates the bundled OpenAPI document.
func NewSchemaValidator(ctx context.Context) (*SchemaValidator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &SchemaValidator{
		router: router,
	}, nil
}

// Validate checks the status and body of resp against the operation the
// request was routed to. Undocumented statuses are errors.
func (v *SchemaValidator) Validate(ctx context.Context, resp *Response) error {
	req, err := http.NewRequestWithContext(ctx, resp.Method, resp.URL.String(), nil)
	if err != nil {
		return fmt.Errorf("rebuilding request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", resp.Method, resp.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response %s does not match schema: %w", resp, err)
	}

	return nil
}

// ValidateResponse validates resp if schema validation is enabled.
func (c *APIClient) ValidateResponse(ctx context.Context, resp *Response) error {
	if c.validator == nil {
		return nil
	}

	return c.validator.Validate(ctx, resp)
}
