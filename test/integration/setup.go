// Package integration provides helpers and integration tests for the booking
// engine. Integration tests verify that components work together correctly:
// HTTP handlers, the booking use case and the session store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skytrip/booking-engine/internal/adapter/http"
	"github.com/skytrip/booking-engine/internal/currency"
	"github.com/skytrip/booking-engine/internal/domain"
	"github.com/skytrip/booking-engine/internal/session"
	"github.com/skytrip/booking-engine/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *session.Memory
}

// NewTestServer creates a test server over an in-memory session store with
// the default catalogs and rate table, the same wiring main() uses.
func NewTestServer() *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	addOns := domain.DefaultAddOns()
	insurance := domain.DefaultInsurance()
	rates := currency.DefaultTable()

	store := session.NewMemory(time.Hour, nil)
	uc := usecase.NewBookingUseCase(store, usecase.NewLogGateway(nil), &usecase.Config{
		AddOns:    addOns,
		Insurance: insurance,
		Rates:     rates,
	})

	handler := httpAdapter.NewBookingHandler(uc, addOns, insurance, rates)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Store: store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateBooking starts a new booking session and returns its response.
func (ts *TestServer) CreateBooking() Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings",
	})
}

// GetBooking fetches the current snapshot of a booking session.
func (ts *TestServer) GetBooking(id string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/bookings/" + id,
	})
}

// SetPrice replaces the session's base fare and currency.
func (ts *TestServer) SetPrice(id string, basePrice float64, cur string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/bookings/" + id + "/price",
		Body:   map[string]interface{}{"basePrice": basePrice, "currency": cur},
	})
}

// UpdateAddOns replaces the session's selected add-on ids.
func (ts *TestServer) UpdateAddOns(id string, addOns []string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/bookings/" + id + "/addons",
		Body:   map[string]interface{}{"addOns": addOns},
	})
}

// UpdateInsurance sets or clears the session's insurance tier.
func (ts *TestServer) UpdateInsurance(id string, insurance *string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/bookings/" + id + "/insurance",
		Body:   map[string]interface{}{"insurance": insurance},
	})
}

// SelectFlight stores a flight offer on the session.
func (ts *TestServer) SelectFlight(id string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/bookings/" + id + "/flight",
		Body:   body,
	})
}

// Confirm finalizes the booking session.
func (ts *TestServer) Confirm(id string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/bookings/" + id + "/confirm",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// SessionSnapshot is the session payload decoded from a response envelope.
type SessionSnapshot struct {
	ID                string   `json:"id"`
	SelectedAddOns    []string `json:"selectedAddOns"`
	SelectedInsurance *string  `json:"selectedInsurance"`
	BasePrice         float64  `json:"basePrice"`
	Currency          string   `json:"currency"`
	AddOnsTotal       float64  `json:"addOnsTotal"`
	TotalPrice        float64  `json:"totalPrice"`
	FormattedTotal    string   `json:"formattedTotal"`
	Flight            *struct {
		IsLayover    bool  `json:"isLayover"`
		LayoverTimes []int `json:"layoverTimes"`
	} `json:"flight"`
}

// ParseSession decodes the response envelope into a session snapshot.
func (r Response) ParseSession() (*SessionSnapshot, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}

	var snapshot SessionSnapshot
	if err := json.Unmarshal(env.Data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// TwoLegFlight returns a flight selection body with one layover.
func TwoLegFlight() map[string]interface{} {
	return map[string]interface{}{
		"segments": []map[string]interface{}{
			{
				"flightNumber":  "GA-715",
				"origin":        "CGK",
				"destination":   "SIN",
				"departureTime": "7:00 PM",
				"arrivalTime":   "9:45 PM",
				"duration":      165,
			},
			{
				"flightNumber":  "SQ-638",
				"origin":        "SIN",
				"destination":   "NRT",
				"departureTime": "11:15 PM",
				"arrivalTime":   "7:00 AM",
				"duration":      465,
			},
		},
		"price":         420,
		"totalPrice":    840,
		"currency":      "USD",
		"cabinClass":    "economy",
		"totalDuration": 720,
	}
}
