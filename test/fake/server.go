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

// Package fake is an in-memory stand-in for the scooter service that answers
// with the documented status codes and messages. It lets the harness be tested,
// and the suites run, without the shared QA deployment.
package fake

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nscaledev/scooter-api-tests/test/api"
)

const (
	messageCourierIDNotFound = "Курьера с таким id нет."
	messageOrderNotFound     = "Заказ не найден"
	messageNotEnoughData     = "Недостаточно данных для поиска"
	messageOrderAccepted     = "Этот заказ уже в работе"
)

type courier struct {
	id                int
	login             string
	encryptedPassword []byte
	firstName         string
}

func (c *courier) passwordMatches(password string) bool {
	return bcrypt.CompareHashAndPassword(c.encryptedPassword, []byte(password)) == nil
}

type order struct {
	id        int
	track     int
	courierID *int
	request   api.Order
	createdAt time.Time
	cancelled bool
}

// Server holds the in-memory state behind the handler.
type Server struct {
	lock sync.Mutex

	nextCourierID int
	nextOrderID   int
	nextTrack     int

	couriersByLogin map[string]*courier
	couriersByID    map[int]*courier
	orders          map[int]*order

	logger logrus.FieldLogger
	router chi.Router
}

// New returns an empty server.
func New(options ...Option) *Server {
	s := &Server{
		nextCourierID:   1,
		nextOrderID:     1,
		nextTrack:       100000,
		couriersByLogin: map[string]*courier{},
		couriersByID:    map[int]*courier{},
		orders:          map[int]*order{},
		logger:          discardLogger(),
	}

	for _, o := range options {
		o(s)
	}

	router := chi.NewRouter()
	router.Use(s.logRequest)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/courier/login", s.loginCourier)
		r.Post("/courier", s.createCourier)
		r.Delete("/courier/{id}", s.deleteCourier)
		r.Put("/courier/{track}", s.acceptOrder)
		r.Post("/orders", s.createOrder)
		r.Put("/orders", s.cancelOrder)
		r.Get("/orders", s.listOrders)
		r.Get("/orders/track", s.trackOrder)
	})

	s.router = router

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Seed places orders directly and returns their track numbers.
func (s *Server) Seed(orders ...api.Order) []int {
	s.lock.Lock()
	defer s.lock.Unlock()

	tracks := make([]int, len(orders))

	for i := range orders {
		tracks[i] = s.addOrder(orders[i])
	}

	return tracks
}

// addOrder must be called with the lock held.
func (s *Server) addOrder(request api.Order) int {
	o := &order{
		id:        s.nextOrderID,
		track:     s.nextTrack,
		request:   request,
		createdAt: time.Now(),
	}

	s.nextOrderID++
	s.nextTrack++

	s.orders[o.track] = o

	return o.track
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func writeOK(w http.ResponseWriter, status int) {
	writeJSON(w, status, api.CreatedResponse{OK: true})
}

func (s *Server) loginCourier(w http.ResponseWriter, r *http.Request) {
	var credentials api.CourierCredentials

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil || credentials.Login == "" || credentials.Password == "" {
		writeError(w, http.StatusBadRequest, api.MessageNotEnoughDataToLogin)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.couriersByLogin[credentials.Login]
	if !ok || !c.passwordMatches(credentials.Password) {
		writeError(w, http.StatusNotFound, api.MessageAccountNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"id": c.id})
}

func (s *Server) createCourier(w http.ResponseWriter, r *http.Request) {
	var request api.Courier

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Login == "" || request.Password == "" || request.FirstName == "" {
		writeError(w, http.StatusBadRequest, api.MessageNotEnoughDataToCreate)
		return
	}

	encryptedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.couriersByLogin[request.Login]; ok {
		writeError(w, http.StatusConflict, api.MessageLoginAlreadyInUse)
		return
	}

	c := &courier{
		id:                s.nextCourierID,
		login:             request.Login,
		encryptedPassword: encryptedPassword,
		firstName:         request.FirstName,
	}

	s.nextCourierID++

	s.couriersByLogin[c.login] = c
	s.couriersByID[c.id] = c

	writeOK(w, http.StatusCreated)
}

func (s *Server) deleteCourier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.couriersByID[id]
	if !ok {
		writeError(w, http.StatusNotFound, messageCourierIDNotFound)
		return
	}

	delete(s.couriersByID, c.id)
	delete(s.couriersByLogin, c.login)

	writeOK(w, http.StatusOK)
}

func (s *Server) acceptOrder(w http.ResponseWriter, r *http.Request) {
	track, err := strconv.Atoi(chi.URLParam(r, "track"))
	if err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	courierID, err := strconv.Atoi(r.URL.Query().Get("courierId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.couriersByID[courierID]; !ok {
		writeError(w, http.StatusNotFound, messageCourierIDNotFound)
		return
	}

	o, ok := s.orders[track]
	if !ok || o.cancelled {
		writeError(w, http.StatusNotFound, messageOrderNotFound)
		return
	}

	if o.courierID != nil {
		writeError(w, http.StatusConflict, messageOrderAccepted)
		return
	}

	o.courierID = &courierID

	writeOK(w, http.StatusOK)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var request api.Order

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	track := s.addOrder(request)

	writeJSON(w, http.StatusCreated, map[string]int{"track": track})
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var request api.CancelOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Track == 0 {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	o, ok := s.orders[request.Track]
	if !ok || o.cancelled {
		writeError(w, http.StatusNotFound, messageOrderNotFound)
		return
	}

	o.cancelled = true

	writeOK(w, http.StatusOK)
}

func (s *Server) trackOrder(w http.ResponseWriter, r *http.Request) {
	track, err := strconv.Atoi(r.URL.Query().Get("t"))
	if err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	o, ok := s.orders[track]
	if !ok {
		writeError(w, http.StatusNotFound, messageOrderNotFound)
		return
	}

	writeJSON(w, http.StatusOK, api.TrackOrderResponse{
		Order: o.details(),
	})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params, err := parseListParams(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, messageNotEnoughData)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if params.courierID != nil {
		if _, ok := s.couriersByID[*params.courierID]; !ok {
			writeError(w, http.StatusNotFound, api.MessageCourierNotFound(*params.courierID))
			return
		}
	}

	matched := make([]*order, 0, len(s.orders))

	for _, o := range s.orders {
		if o.cancelled || !params.matches(o) {
			continue
		}

		matched = append(matched, o)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].id < matched[j].id
	})

	// Compare pages, not offsets, so a huge page cannot overflow.
	start := len(matched)
	if params.page <= len(matched)/params.limit {
		start = min(params.page*params.limit, len(matched))
	}

	end := min(start+params.limit, len(matched))

	orders := make([]api.OrderSummary, 0, end-start)
	for _, o := range matched[start:end] {
		orders = append(orders, o.summary())
	}

	writeJSON(w, http.StatusOK, api.OrdersPage{
		Orders: orders,
		PageInfo: &api.PageInfo{
			Page:  params.page,
			Total: len(matched),
			Limit: params.limit,
		},
		AvailableStations: availableStations(params.stations),
	})
}

func (o *order) metroStation() string {
	return strconv.Itoa(o.request.MetroStation)
}

func (o *order) colors() []string {
	colors := make([]string, 0, len(o.request.Color))
	for _, c := range o.request.Color {
		colors = append(colors, string(c))
	}

	return colors
}

func (o *order) status() int {
	switch {
	case o.cancelled:
		return -1
	case o.courierID != nil:
		return 1
	default:
		return 0
	}
}

func (o *order) details() *api.OrderDetails {
	return &api.OrderDetails{
		ID:           o.id,
		FirstName:    o.request.FirstName,
		LastName:     o.request.LastName,
		Address:      o.request.Address,
		MetroStation: o.metroStation(),
		Phone:        o.request.Phone,
		RentTime:     o.request.RentTime,
		DeliveryDate: o.request.DeliveryDate,
		Track:        o.track,
		Color:        o.colors(),
		Comment:      o.request.Comment,
		Status:       o.status(),
		Cancelled:    o.cancelled,
		InDelivery:   o.courierID != nil,
		CreatedAt:    o.createdAt.UTC().Format(time.RFC3339),
		UpdatedAt:    o.createdAt.UTC().Format(time.RFC3339),
	}
}

func (o *order) summary() api.OrderSummary {
	return api.OrderSummary{
		ID:           o.id,
		CourierID:    o.courierID,
		FirstName:    o.request.FirstName,
		LastName:     o.request.LastName,
		Address:      o.request.Address,
		MetroStation: o.metroStation(),
		Phone:        o.request.Phone,
		RentTime:     o.request.RentTime,
		DeliveryDate: o.request.DeliveryDate,
		Track:        o.track,
		Color:        o.colors(),
		Comment:      o.request.Comment,
		CreatedAt:    o.createdAt.UTC().Format(time.RFC3339),
		UpdatedAt:    o.createdAt.UTC().Format(time.RFC3339),
		Status:       o.status(),
	}
}
