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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrEmptyBody = errors.New("response body is empty")

// Response is what every endpoint call hands back for assertion: the status
// and raw body, plus enough of the request to correlate and validate it.
type Response struct {
	Method      string
	URL         *url.URL
	StatusCode  int
	Header      http.Header
	Body        []byte
	TraceParent string
}

// Decode unmarshals the JSON body into out.
func (r *Response) Decode(out any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("decoding %s %s: %w", r.Method, r.requestURI(), ErrEmptyBody)
	}

	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decoding %s %s (status %d, trace ID: %s): %w", r.Method, r.requestURI(), r.StatusCode, extractTraceID(r.TraceParent), err)
	}

	return nil
}

// ErrorBody decodes the body as a failure message.
func (r *Response) ErrorBody() (*ErrorResponse, error) {
	out := &ErrorResponse{}
	if err := r.Decode(out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d %s (trace ID: %s)", r.Method, r.requestURI(), r.StatusCode, string(r.Body), extractTraceID(r.TraceParent))
}

func (r *Response) requestURI() string {
	if r.URL == nil {
		return ""
	}

	return r.URL.RequestURI()
}
