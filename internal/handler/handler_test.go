package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/fatimaaziz27/busbooker/internal/handler/dto"
	hmocks "github.com/fatimaaziz27/busbooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBusSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	busSvc := hmocks.NewMockBusSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(busSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/buses", h.ListBuses)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.DELETE("/bookings", h.CancelBooking)
	}

	return busSvc, bookingSvc, r
}

// --- Buses ---

func TestHandler_ListBuses_Success(t *testing.T) {
	busSvc, _, r := setupRouter(t)

	buses := []*domain.Bus{
		{ID: 1, Route: "North Nazimabad - Power House", Time: "09:00 AM", Fare: 500, TotalSeats: 40, AvailableSeats: 38},
		{ID: 2, Route: "KDA - Gulshan", Time: "12:00 PM", Fare: 700, TotalSeats: 30, AvailableSeats: 30},
	}
	busSvc.EXPECT().List(mock.Anything).Return(buses, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/buses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].BusID)
	assert.Equal(t, "North Nazimabad - Power House", resp[0].Route)
	assert.Equal(t, 500, resp[0].Fare)
	assert.Equal(t, 40, resp[0].TotalSeats)
	assert.Equal(t, 38, resp[0].AvailableSeats)
}

func TestHandler_ListBuses_InternalError(t *testing.T) {
	busSvc, _, r := setupRouter(t)

	busSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/buses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	booking := &domain.Booking{
		ID:        "BK20250102150405",
		Name:      "Fatima Aziz",
		BusID:     1,
		Route:     "North Nazimabad - Power House",
		Time:      "09:00 AM",
		Seats:     2,
		TotalFare: 1000,
		CreatedAt: time.Now().UTC(),
	}
	bookingSvc.EXPECT().
		Create(mock.Anything, domain.CreateBookingInput{Name: "Fatima Aziz", BusID: 1, Seats: 2}).
		Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{Name: "Fatima Aziz", BusID: 1, Seats: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BK20250102150405", resp.BookingID)
	assert.Equal(t, "Fatima Aziz", resp.Name)
	assert.Equal(t, 2, resp.Seats)
	assert.Equal(t, 1000, resp.TotalFare)
	assert.NotEmpty(t, resp.BookingTime)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"Fatima Aziz"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_NegativeSeats(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"Fatima Aziz","bus_id":1,"seats":-1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"name":"   ","bus_id":1,"seats":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BusNotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, domain.CreateBookingInput{Name: "Y", BusID: 999, Seats: 1}).
		Return(nil, domain.ErrBusNotFound)

	body, _ := json.Marshal(dto.CreateBookingRequest{Name: "Y", BusID: 999, Seats: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_NotEnoughSeats(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, domain.CreateBookingInput{Name: "X", BusID: 1, Seats: 39}).
		Return(nil, domain.ErrNotEnoughSeats)

	body, _ := json.Marshal(dto.CreateBookingRequest{Name: "X", BusID: 1, Seats: 39})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "BK1", Name: "Fatima Aziz", BusID: 1, Seats: 2, CreatedAt: time.Now()},
		{ID: "BK2", Name: "X", BusID: 2, Seats: 1, CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().List(mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListBookings_Empty(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	cancelled := &domain.Booking{
		ID:        "BK20250102150405",
		Name:      "Fatima Aziz",
		BusID:     1,
		Seats:     2,
		CreatedAt: time.Now(),
	}
	bookingSvc.EXPECT().Cancel(mock.Anything, "Fatima Aziz").Return(cancelled, nil)

	body, _ := json.Marshal(dto.CancelBookingRequest{Name: "Fatima Aziz"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking cancelled successfully", resp.Message)
	assert.Equal(t, "BK20250102150405", resp.Booking.BookingID)
}

func TestHandler_CancelBooking_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "Nobody").Return(nil, domain.ErrBookingNotFound)

	body, _ := json.Marshal(dto.CancelBookingRequest{Name: "Nobody"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
