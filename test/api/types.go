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
	"fmt"
)

// Messages returned by the service for documented failures.
const (
	MessageNotEnoughDataToLogin  = "Недостаточно данных для входа"
	MessageNotEnoughDataToCreate = "Недостаточно данных для создания учетной записи"
	MessageAccountNotFound       = "Учетная запись не найдена"
	MessageLoginAlreadyInUse     = "Этот логин уже используется"
)

// MessageCourierNotFound is returned when listing orders for an unknown courier.
func MessageCourierNotFound(courierID int) string {
	return fmt.Sprintf("Курьер с идентификатором %d не найден", courierID)
}

const (
	// DefaultPageLimit is both the default and the maximum page size.
	DefaultPageLimit = 30
)

// Courier is a courier account. Empty fields are omitted from the payload so
// requests with missing fields can be expressed.
type Courier struct {
	Login     string `json:"login,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
}

// Credentials returns the login half of the courier.
func (c Courier) Credentials() CourierCredentials {
	return CourierCredentials{
		Login:    c.Login,
		Password: c.Password,
	}
}

type CourierCredentials struct {
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
}

type Color string

const (
	ColorBlack Color = "BLACK"
	ColorGrey  Color = "GREY"
)

// Order is an order creation request.
type Order struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Address      string  `json:"address"`
	MetroStation int     `json:"metroStation"`
	Phone        string  `json:"phone"`
	RentTime     int     `json:"rentTime"`
	DeliveryDate string  `json:"deliveryDate"`
	Comment      string  `json:"comment"`
	Color        []Color `json:"color"`
}

// MarshalJSON always emits color as a list, the service treats null and
// missing differently from an empty selection.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order

	out := order(o)
	if out.Color == nil {
		out.Color = []Color{}
	}

	return json.Marshal(out)
}

type CancelOrderRequest struct {
	Track int `json:"track"`
}

type CreatedResponse struct {
	OK bool `json:"ok"`
}

type LoginResponse struct {
	ID *int `json:"id"`
}

// ErrorResponse is the body of every documented failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateOrderResponse struct {
	Track *int `json:"track"`
}

type TrackOrderResponse struct {
	Order *OrderDetails `json:"order"`
}

type OrderDetails struct {
	ID           int      `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Address      string   `json:"address"`
	MetroStation string   `json:"metroStation"`
	Phone        string   `json:"phone"`
	RentTime     int      `json:"rentTime"`
	DeliveryDate string   `json:"deliveryDate"`
	Track        int      `json:"track"`
	Color        []string `json:"color"`
	Comment      string   `json:"comment"`
	Status       int      `json:"status"`
	Cancelled    bool     `json:"cancelled"`
	Finished     bool     `json:"finished"`
	InDelivery   bool     `json:"inDelivery"`
	CourierName  *string  `json:"courierFirstName,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// OrdersPage is the body of the order listing.
type OrdersPage struct {
	Orders            []OrderSummary `json:"orders"`
	PageInfo          *PageInfo      `json:"pageInfo"`
	AvailableStations []Station      `json:"availableStations"`
}

type OrderSummary struct {
	ID           int      `json:"id"`
	CourierID    *int     `json:"courierId"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Address      string   `json:"address"`
	MetroStation string   `json:"metroStation"`
	Phone        string   `json:"phone"`
	RentTime     int      `json:"rentTime"`
	DeliveryDate string   `json:"deliveryDate"`
	Track        int      `json:"track"`
	Color        []string `json:"color"`
	Comment      string   `json:"comment"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
	Status       int      `json:"status"`
}

type PageInfo struct {
	Page  int `json:"page"`
	Total int `json:"total"`
	Limit int `json:"limit"`
}

type Station struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Color  string `json:"color"`
}
