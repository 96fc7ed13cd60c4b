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

// Package api provides integration test utilities for the scooter delivery API.
//
// # Client
//
// APIClient builds every request in one place: the service base URL, the JSON
// content type and a W3C trace context per request so a failing call can be
// found in the service logs. CourierClient and OrderClient are thin typed
// wrappers over it. Endpoint calls return a Response carrying the status and
// raw body; only transport failures are errors, so scenarios assert on the
// documented 4xx outcomes the same way they assert on success.
//
// Teardown calls (deleting couriers, cancelling and accepting orders) are
// fire-and-forget. Their failures are logged and dropped, which means a
// failed cleanup can leave records behind on the shared QA deployment; the
// scooter-cleanup command removes them by hand.
//
// # Fixtures
//
// Payload builders start from randomized data (RandomCourier, RandomOrder) so
// repeated runs do not collide on logins. The Create...WithCleanup helpers
// register their teardown with Ginkgo's DeferCleanup.
//
// # Schema
//
// Decoded responses are checked against the bundled OpenAPI document when
// VALIDATE_SCHEMA is set, see SchemaValidator.
package api
