package domain

import "errors"

var (
	ErrBusNotFound     = errors.New("bus not found")
	ErrBookingNotFound = errors.New("no booking found for this passenger")
)

var (
	ErrNotEnoughSeats = errors.New("not enough seats available")
)

var (
	ErrValidation = errors.New("validation error")
)
