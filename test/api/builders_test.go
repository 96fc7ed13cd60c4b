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

package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/scooter-api-tests/test/api"
)

func TestRandomCourier(t *testing.T) {
	t.Parallel()

	a := api.RandomCourier()
	b := api.RandomCourier()

	require.NotEqual(t, a.Login, b.Login)
	require.Regexp(t, `^courier[0-9a-f]{10}$`, a.Login)
	require.NotEmpty(t, a.Password)
	require.NotEmpty(t, a.FirstName)
	require.Equal(t, api.CourierCredentials{Login: a.Login, Password: a.Password}, a.Credentials())
}

func TestRandomOrder(t *testing.T) {
	t.Parallel()

	order := api.RandomOrder(api.ColorBlack)

	require.Equal(t, []api.Color{api.ColorBlack}, order.Color)
	require.GreaterOrEqual(t, order.MetroStation, 1)
	require.GreaterOrEqual(t, order.RentTime, 1)

	date, err := time.Parse(time.DateOnly, order.DeliveryDate)
	require.NoError(t, err)
	require.True(t, date.After(time.Now().Add(-24*time.Hour)))
}

// TestOrderColorEncoding ensures an order without colors sends an empty list
// rather than null.
func TestOrderColorEncoding(t *testing.T) {
	t.Parallel()

	order := api.RandomOrder()
	order.Color = nil

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.JSONEq(t, `[]`, string(raw["color"]))

	data, err = json.Marshal(api.RandomOrder(api.ColorBlack, api.ColorGrey))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	require.JSONEq(t, `["BLACK","GREY"]`, string(raw["color"]))
}

func TestCourierPayloadBuilder(t *testing.T) {
	t.Parallel()

	courier := api.NewCourierPayload().WithLogin("tractor").Without(api.FieldPassword).Build()

	require.Equal(t, "tractor", courier.Login)
	require.Empty(t, courier.Password)
	require.NotEmpty(t, courier.FirstName)

	data, err := json.Marshal(courier)
	require.NoError(t, err)
	require.NotContains(t, string(data), "password")
}
