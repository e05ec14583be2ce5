package dto

import (
	"time"

	"github.com/fatimaaziz27/busbooker/internal/domain"
)

type BusResponse struct {
	BusID          int    `json:"bus_id"`
	Route          string `json:"route"`
	Time           string `json:"time"`
	Fare           int    `json:"fare"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

type BookingResponse struct {
	BookingID   string `json:"booking_id"`
	Name        string `json:"name"`
	BusID       int    `json:"bus_id"`
	Route       string `json:"route"`
	Time        string `json:"time"`
	Seats       int    `json:"seats"`
	TotalFare   int    `json:"total_fare"`
	BookingTime string `json:"booking_time"`
}

type CancelBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBusResponse(b *domain.Bus) BusResponse {
	return BusResponse{
		BusID:          b.ID,
		Route:          b.Route,
		Time:           b.Time,
		Fare:           b.Fare,
		TotalSeats:     b.TotalSeats,
		AvailableSeats: b.AvailableSeats,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:   b.ID,
		Name:        b.Name,
		BusID:       b.BusID,
		Route:       b.Route,
		Time:        b.Time,
		Seats:       b.Seats,
		TotalFare:   b.TotalFare,
		BookingTime: b.CreatedAt.Format(time.RFC3339),
	}
}
