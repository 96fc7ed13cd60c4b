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

package fake

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/nscaledev/scooter-api-tests/test/api"
)

// stations is a slice of the metro catalog, anything else gets a generated
// name.
var stations = map[string]api.Station{
	"1":   {Name: "Бульвар Рокоссовского", Number: "1", Color: "#D92B2C"},
	"2":   {Name: "Черкизовская", Number: "2", Color: "#D92B2C"},
	"3":   {Name: "Преображенская площадь", Number: "3", Color: "#D92B2C"},
	"4":   {Name: "Сокольники", Number: "4", Color: "#D92B2C"},
	"5":   {Name: "Красносельская", Number: "5", Color: "#D92B2C"},
	"110": {Name: "Тушинская", Number: "110", Color: "#8E479C"},
}

func station(number string) api.Station {
	if s, ok := stations[number]; ok {
		return s
	}

	return api.Station{
		Name:   "Станция " + number,
		Number: number,
		Color:  "#999999",
	}
}

func availableStations(filter []string) []api.Station {
	numbers := filter

	if len(numbers) == 0 {
		numbers = make([]string, 0, len(stations))
		for number := range stations {
			numbers = append(numbers, number)
		}
	}

	slices.SortFunc(numbers, func(a, b string) int {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)

		return x - y
	})

	out := make([]api.Station, 0, len(numbers))
	for _, number := range numbers {
		out = append(out, station(number))
	}

	return out
}

type listParams struct {
	courierID *int
	stations  []string
	limit     int
	page      int
}

// parseListParams applies the listing defaults: page 0 and a limit of 30,
// which is also the maximum.
func parseListParams(query url.Values) (*listParams, error) {
	params := &listParams{
		limit: api.DefaultPageLimit,
	}

	if v := query.Get("courierId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid courierId %q: %w", v, err)
		}

		params.courierID = &id
	}

	if v := query.Get("nearestStation"); v != "" {
		if err := json.Unmarshal([]byte(v), &params.stations); err != nil {
			return nil, fmt.Errorf("invalid nearestStation %q: %w", v, err)
		}
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid limit %q: %w", v, err)
		}

		if limit > 0 && limit < api.DefaultPageLimit {
			params.limit = limit
		}
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q: %w", v, err)
		}

		if page > 0 {
			params.page = page
		}
	}

	return params, nil
}

func (p *listParams) matches(o *order) bool {
	if p.courierID != nil && (o.courierID == nil || *o.courierID != *p.courierID) {
		return false
	}

	if len(p.stations) > 0 && !slices.Contains(p.stations, o.metroStation()) {
		return false
	}

	return true
}
