package dto

type CreateBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	BusID int    `json:"bus_id" binding:"required,gt=0"`
	Seats int    `json:"seats" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	Name string `json:"name" binding:"required"`
}
