package domain

import "time"

// Booking is a reservation of seats on a bus. Route, Time and
// TotalFare are snapshots taken at booking time, not live references
// into the catalog.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BusID     int       `json:"bus_id"`
	Route     string    `json:"route"`
	Time      string    `json:"time"`
	Seats     int       `json:"seats"`
	TotalFare int       `json:"total_fare"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	Name  string
	BusID int
	Seats int
}
